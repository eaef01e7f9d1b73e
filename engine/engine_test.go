package engine

import (
	"math"
	"testing"

	"github.com/pkg/errors"
)

func TestConvertUnit(t *testing.T) {
	for _, tt := range []struct {
		value    float64
		from, to Unit
		expected float64
	}{
		{1, Metre, Metre, 1},
		{0.01, Metre, Kilometre, 0.00001},
		{0.01, Metre, USSurveyFoot, 0.0328083333333},
		{1, Foot, Metre, 0.3048},
		{math.Pi, Radian, Degree, 180},
		{90, Degree, Grad, 100},
		{1, Degree, ArcSecond, 3600},
		{1, Microradian, Radian, 1e-6},
	} {
		got, err := ConvertUnit(tt.value, tt.from, tt.to)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(got-tt.expected) > 1e-12*math.Max(1, math.Abs(tt.expected)) {
			t.Errorf("%v %s in %s: expected %v, got %v", tt.value, tt.from, tt.to, tt.expected, got)
		}
	}

	if _, err := ConvertUnit(1, Metre, Degree); err == nil {
		t.Error("expected error for linear to angular conversion")
	}
	if _, err := ConvertUnit(1, Unity, Metre); err == nil {
		t.Error("expected error for scale to linear conversion")
	}
}

func TestUnitByName(t *testing.T) {
	for name, expected := range map[string]Unit{
		"metre":  Metre,
		"Meter":  Metre,
		"m":      Metre,
		"us-ft":  USSurveyFoot,
		"ftUS":   USSurveyFoot,
		"degree": Degree,
		"deg":    Degree,
		"gon":    Grad,
		"radian": Radian,
		" km ":   Kilometre,
		"unity":  Unity,
	} {
		u, err := UnitByName(name)
		if err != nil {
			t.Fatal(name, err)
		}
		if u != expected {
			t.Errorf("%q: expected %s, got %s", name, expected, u)
		}
	}
	if _, err := UnitByName("furlong"); err == nil {
		t.Error("expected error for unknown unit")
	}
}

func TestKindOf(t *testing.T) {
	if KindOf(nil) != KindNone {
		t.Error("nil is KindNone")
	}
	err := NewError(KindOperationNotFound, "EPSG:1", errors.New("no path"))
	if KindOf(err) != KindOperationNotFound {
		t.Error(KindOf(err))
	}
	wrapped := errors.Wrap(errors.Wrap(err, "inverse"), "verify")
	if KindOf(wrapped) != KindOperationNotFound {
		t.Error(KindOf(wrapped))
	}
	if KindOf(errors.New("boom")) != KindTransform {
		t.Error("unknown errors are transform errors")
	}
	if err.Error() != "operation not found error for EPSG:1: no path" {
		t.Error(err.Error())
	}
}

func TestOpenUnknown(t *testing.T) {
	if _, err := Open(Config{Type: "unknown"}); err == nil {
		t.Fatal("expected error")
	}
}
