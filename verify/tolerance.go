package verify

import (
	"math"

	"github.com/omniscale/crscheck/engine"
	"github.com/pkg/errors"
)

const (
	// PrecisionMetreProjected is the accepted deviation of projected
	// coordinates.
	PrecisionMetreProjected = 0.01
	// PrecisionMetreGeographic is the accepted deviation of geographic
	// coordinates, as distance on the earth surface.
	PrecisionMetreGeographic = 1
	// EarthCircumference in metres, used to convert distances into
	// angles.
	EarthCircumference = 40076592
)

var MetrePerRadian = EarthCircumference / (2 * math.Pi)

// AngularTolerance converts a distance on the earth surface in metres
// into an angle of unit.
func AngularTolerance(metres float64, unit engine.Unit) (float64, error) {
	return engine.ConvertUnit(metres/MetrePerRadian, engine.Radian, unit)
}

func LinearTolerance(metres float64, unit engine.Unit) (float64, error) {
	return engine.ConvertUnit(metres, engine.Metre, unit)
}

// Tolerance for the comparison of a single coordinate component.
type Tolerance struct {
	// Forward applies to transformed coordinates in Unit.
	Forward float64
	// Reverse applies to reference coordinates in degrees.
	Reverse float64
	Unit    engine.Unit
}

// Tolerances returns the tolerances for a CRS with the given axis
// unit. Angular units are compared within PrecisionMetreGeographic,
// linear units within PrecisionMetreProjected. The inverse
// transformation back into the reference system is always compared
// within PrecisionMetreGeographic.
func Tolerances(unit engine.Unit) (Tolerance, error) {
	tol := Tolerance{Unit: unit}
	var err error
	switch unit.Kind {
	case engine.Angular:
		tol.Forward, err = AngularTolerance(PrecisionMetreGeographic, unit)
	case engine.Linear:
		tol.Forward, err = LinearTolerance(PrecisionMetreProjected, unit)
	default:
		err = errors.Errorf("unsupported axis unit %s (%s)", unit, unit.Kind)
	}
	if err != nil {
		return tol, err
	}
	tol.Reverse, err = AngularTolerance(PrecisionMetreGeographic, engine.Degree)
	return tol, err
}

// equal returns true for identical values (two NaN included) or values
// within delta.
func equal(expected, actual, delta float64) bool {
	if expected == actual {
		return true
	}
	if math.IsNaN(expected) && math.IsNaN(actual) {
		return true
	}
	return math.Abs(expected-actual) <= delta
}
