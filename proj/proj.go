// Package proj implements the spherical (web) mercator projection used by
// EPSG:3857 and its deprecated aliases.
package proj

import (
	"errors"
	"math"
)

const pole = 6378137 * math.Pi // 20037508.342789244

// MaxLat is the latitude where the web mercator y reaches the pole value.
const MaxLat = 85.0511287798066

var ErrOutOfRange = errors.New("coordinate out of web mercator range")

func WgsToMerc(long, lat float64) (x, y float64) {
	x = long * pole / 180.0
	y = math.Log(math.Tan((90.0+lat)*math.Pi/360.0)) / math.Pi * pole
	return x, y
}

func MercToWgs(x, y float64) (long, lat float64) {
	long = 180.0 * x / pole
	lat = 180.0 / math.Pi * (2*math.Atan(math.Exp((y/pole)*math.Pi)) - math.Pi/2)
	return long, lat
}

// Forward projects long/lat in degrees and fails for the poles and
// non-finite input instead of returning infinite values.
func Forward(long, lat float64) (x, y float64, err error) {
	if math.Abs(lat) >= 90 || !finite(long) || !finite(lat) {
		return 0, 0, ErrOutOfRange
	}
	x, y = WgsToMerc(long, lat)
	return x, y, nil
}

// Inverse returns long/lat in degrees for x/y in metres.
func Inverse(x, y float64) (long, lat float64, err error) {
	if !finite(x) || !finite(y) {
		return 0, 0, ErrOutOfRange
	}
	long, lat = MercToWgs(x, y)
	return long, lat, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
