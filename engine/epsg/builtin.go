package epsg

import (
	"math"

	"github.com/omniscale/crscheck/engine"
	"github.com/omniscale/crscheck/geom"
	"github.com/omniscale/crscheck/proj"
	"github.com/pkg/errors"
)

// transformer converts between the reference system and one definition.
type transformer interface {
	// forward converts EPSG:4326 latitude/longitude into the definition.
	forward(geom.Coord) (geom.Coord, error)
	inverse(geom.Coord) (geom.Coord, error)
	close()
}

// axes handles unit conversion and axis order of a definition for
// the builtin methods. base is the unit the method itself works in.
type axes struct {
	unit       engine.Unit
	base       engine.Unit
	northFirst bool
}

func newAxes(d *Definition, base engine.Unit) (axes, error) {
	unit, err := d.axisUnit(0)
	if err != nil {
		return axes{}, err
	}
	if !unit.Compatible(base) {
		return axes{}, errors.Errorf("%s: %s axis for %s method", d.Code, unit, d.Method)
	}
	return axes{unit: unit, base: base, northFirst: d.NorthFirst()}, nil
}

// output converts x/y (east/north) in base units into the axes.
func (a axes) output(x, y float64) (geom.Coord, error) {
	var err error
	if x, err = engine.ConvertUnit(x, a.base, a.unit); err != nil {
		return geom.Coord{}, err
	}
	if y, err = engine.ConvertUnit(y, a.base, a.unit); err != nil {
		return geom.Coord{}, err
	}
	if a.northFirst {
		return geom.Coord{y, x}, nil
	}
	return geom.Coord{x, y}, nil
}

// input returns x/y (east/north) in base units.
func (a axes) input(c geom.Coord) (x, y float64, err error) {
	x, y = c[0], c[1]
	if a.northFirst {
		x, y = y, x
	}
	if x, err = engine.ConvertUnit(x, a.unit, a.base); err != nil {
		return 0, 0, err
	}
	if y, err = engine.ConvertUnit(y, a.unit, a.base); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

type geographicMethod struct {
	axes
}

func (m *geographicMethod) forward(c geom.Coord) (geom.Coord, error) {
	return m.output(c[1], c[0])
}

func (m *geographicMethod) inverse(c geom.Coord) (geom.Coord, error) {
	long, lat, err := m.input(c)
	if err != nil {
		return geom.Coord{}, err
	}
	return geom.Coord{lat, long}, nil
}

func (m *geographicMethod) close() {}

type webMercatorMethod struct {
	axes
}

func (m *webMercatorMethod) forward(c geom.Coord) (geom.Coord, error) {
	x, y, err := proj.Forward(c[1], c[0])
	if err != nil {
		return geom.Coord{}, err
	}
	return m.output(x, y)
}

func (m *webMercatorMethod) inverse(c geom.Coord) (geom.Coord, error) {
	x, y, err := m.input(c)
	if err != nil {
		return geom.Coord{}, err
	}
	long, lat, err := proj.Inverse(x, y)
	if err != nil {
		return geom.Coord{}, err
	}
	return geom.Coord{lat, long}, nil
}

func (m *webMercatorMethod) close() {}

func newBuiltin(d *Definition) (transformer, error) {
	switch d.Method {
	case MethodGeographic:
		a, err := newAxes(d, engine.Degree)
		if err != nil {
			return nil, err
		}
		return &geographicMethod{a}, nil
	case MethodWebMercator:
		a, err := newAxes(d, engine.Metre)
		if err != nil {
			return nil, err
		}
		return &webMercatorMethod{a}, nil
	}
	return nil, errors.Errorf("%s: unknown method %q", d.Code, d.Method)
}

func finite(c geom.Coord) bool {
	for _, v := range c {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
