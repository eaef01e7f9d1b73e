package geom

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// Coord is a 2-D coordinate pair in the axis order of its reference
// system. Geographic coordinates of the reference system are
// (latitude, longitude) in degrees.
type Coord [2]float64

func (c Coord) String() string {
	return fmt.Sprintf("(%v, %v)", c[0], c[1])
}

// BBox is a geographic bounding box in degrees. West can be larger than
// East for boxes that cross the antimeridian.
type BBox struct {
	West  float64
	South float64
	East  float64
	North float64
}

func (b BBox) String() string {
	return fmt.Sprintf("[%v, %v, %v, %v]", b.West, b.South, b.East, b.North)
}

// Degenerate returns true if the box has no width or no height.
func (b BBox) Degenerate() bool {
	return b.West == b.East || b.South == b.North
}

// CrossesAntimeridian returns true if the longitude range wraps at 180°.
func (b BBox) CrossesAntimeridian() bool {
	return b.West > b.East
}

// Rect returns the box as s2 latitude/longitude rectangle.
func (b BBox) Rect() s2.Rect {
	return s2.Rect{
		Lat: r1.Interval{Lo: degrees(b.South), Hi: degrees(b.North)},
		Lng: s1.IntervalFromEndpoints(degrees(b.West), degrees(b.East)),
	}
}

// Contains checks whether lat/lon (in degrees) is within the box,
// boundaries included.
func (b BBox) Contains(lat, long float64) bool {
	return b.Rect().ContainsLatLng(s2.LatLngFromDegrees(lat, long))
}

func degrees(v float64) float64 {
	return (s1.Angle(v) * s1.Degree).Radians()
}

// MarshalJSON encodes the box as [west, south, east, north].
func (b BBox) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]float64{b.West, b.South, b.East, b.North})
}

func (b *BBox) UnmarshalJSON(data []byte) error {
	var values []float64
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	if values == nil {
		return nil
	}
	if len(values) != 4 {
		return errors.New("bounding box requires 4 values")
	}
	b.West, b.South, b.East, b.North = values[0], values[1], values[2], values[3]
	return nil
}

// FromSlice returns a BBox from a [west, south, east, north] slice.
func FromSlice(values []float64) (BBox, error) {
	if len(values) != 4 {
		return BBox{}, fmt.Errorf("bounding box requires 4 values, got %d", len(values))
	}
	return BBox{values[0], values[1], values[2], values[3]}, nil
}
