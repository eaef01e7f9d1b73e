package engine

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

type UnitKind int

const (
	Linear UnitKind = iota
	Angular
	Scale
)

func (k UnitKind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Angular:
		return "angular"
	default:
		return "scale"
	}
}

// Unit of measure of a coordinate system axis. Factor converts a value
// of this unit into the base unit of its kind (metre, radian, unity).
type Unit struct {
	Name   string
	Abbrev string
	Kind   UnitKind
	Factor float64
}

func (u Unit) String() string {
	return u.Name
}

func (u Unit) IsAngular() bool {
	return u.Kind == Angular
}

func (u Unit) IsLinear() bool {
	return u.Kind == Linear
}

// Compatible returns true if values can be converted between u and o.
func (u Unit) Compatible(o Unit) bool {
	return u.Kind == o.Kind
}

var (
	Metre        = Unit{"metre", "m", Linear, 1}
	Kilometre    = Unit{"kilometre", "km", Linear, 1000}
	Foot         = Unit{"foot", "ft", Linear, 0.3048}
	USSurveyFoot = Unit{"US survey foot", "us-ft", Linear, 1200.0 / 3937.0}
	Radian       = Unit{"radian", "rad", Angular, 1}
	Degree       = Unit{"degree", "deg", Angular, math.Pi / 180}
	Grad         = Unit{"grad", "grad", Angular, math.Pi / 200}
	ArcSecond    = Unit{"arc-second", "arcsec", Angular, math.Pi / 648000}
	Microradian  = Unit{"microradian", "urad", Angular, 1e-6}
	Unity        = Unit{"unity", "", Scale, 1}
)

var unitsByName = map[string]Unit{}

func init() {
	for _, u := range []Unit{Metre, Kilometre, Foot, USSurveyFoot, Radian, Degree, Grad, ArcSecond, Microradian, Unity} {
		unitsByName[strings.ToLower(u.Name)] = u
		if u.Abbrev != "" {
			unitsByName[u.Abbrev] = u
		}
	}
	for alias, u := range map[string]Unit{
		"meter":    Metre,
		"metres":   Metre,
		"meters":   Metre,
		"ftus":     USSurveyFoot,
		"us_ft":    USSurveyFoot,
		"gon":      Grad,
		"grads":    Grad,
		"degrees":  Degree,
		"radians":  Radian,
		"arc-sec":  ArcSecond,
		"unitless": Unity,
	} {
		unitsByName[alias] = u
	}
}

// UnitByName returns a known unit by name or abbreviation.
func UnitByName(name string) (Unit, error) {
	u, ok := unitsByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Unit{}, errors.Errorf("unknown unit %q", name)
	}
	return u, nil
}

// ConvertUnit converts value from one unit into another of the same kind.
func ConvertUnit(value float64, from, to Unit) (float64, error) {
	if !from.Compatible(to) {
		return 0, errors.Errorf("cannot convert %s (%s) to %s (%s)", from, from.Kind, to, to.Kind)
	}
	if from == to {
		return value, nil
	}
	return value * from.Factor / to.Factor, nil
}
