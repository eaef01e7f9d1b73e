// Package enginetest provides an in-memory engine with simple linear
// systems for tests of engine users.
package enginetest

import (
	"sort"
	"strings"

	"github.com/omniscale/crscheck/engine"
	"github.com/omniscale/crscheck/geom"
	"github.com/pkg/errors"
)

const Reference = "EPSG:4326"

// System converts from the reference system by scaling latitude and
// longitude. Forward returns (long*Scale+ForwardOffset, lat*Scale+ForwardOffset),
// the inverse adds InverseOffset to the resulting latitude and longitude.
type System struct {
	Code          string
	Name          string
	BBox          *geom.BBox
	Unit          engine.Unit
	Scale         float64
	ForwardOffset float64
	InverseOffset float64
	// NoOperation makes FindOperation fail for this system.
	NoOperation bool
	// TransformErr is returned by all transformations of this system.
	TransformErr error
}

type Engine struct {
	systems map[string]*System
	Closed  bool
}

func New(systems ...*System) *Engine {
	e := &Engine{systems: make(map[string]*System)}
	world := geom.BBox{West: -180, South: -90, East: 180, North: 90}
	e.Add(&System{Code: Reference, Name: "WGS 84", BBox: &world, Unit: engine.Degree, Scale: 1})
	for _, s := range systems {
		e.Add(s)
	}
	return e
}

// Projected returns a metre based system with bbox and scale.
func Projected(code string, bbox geom.BBox, scale float64) *System {
	return &System{Code: code, Name: code, BBox: &bbox, Unit: engine.Metre, Scale: scale}
}

func (e *Engine) Add(s *System) {
	e.systems[s.Code] = s
}

func (e *Engine) System(code string) *System {
	return e.systems[code]
}

type crs struct{ s *System }

func (c crs) Code() string { return c.s.Code }
func (c crs) Name() string { return c.s.Name }

func (e *Engine) Codes(authority string) ([]string, error) {
	var codes []string
	for code := range e.systems {
		if authority == "" || strings.HasPrefix(code, strings.ToUpper(authority)+":") {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return codes, nil
}

func (e *Engine) ResolveCRS(code string) (engine.CRS, error) {
	s, ok := e.systems[code]
	if !ok {
		return nil, engine.NewError(engine.KindResolution, code, errors.New("unknown code"))
	}
	return crs{s}, nil
}

func (e *Engine) BoundingBox(c engine.CRS) (geom.BBox, error) {
	s := c.(crs).s
	if s.BBox == nil {
		return geom.BBox{}, engine.NewError(engine.KindUnavailable, s.Code, errors.New("no bbox"))
	}
	return *s.BBox, nil
}

func (e *Engine) AxisUnit(c engine.CRS, axis int) (engine.Unit, error) {
	return c.(crs).s.Unit, nil
}

func (e *Engine) FindOperation(source, target engine.CRS) (engine.Operation, error) {
	src, dst := source.(crs).s, target.(crs).s
	for _, s := range []*System{src, dst} {
		if s.NoOperation {
			return nil, engine.NewError(engine.KindOperationNotFound, s.Code, errors.New("no operation"))
		}
	}
	return &operation{source: src, target: dst}, nil
}

func (e *Engine) Close() error {
	e.Closed = true
	return nil
}

type operation struct {
	source, target *System
}

func (o *operation) Source() engine.CRS { return crs{o.source} }
func (o *operation) Target() engine.CRS { return crs{o.target} }

func (o *operation) Transform(c geom.Coord) (geom.Coord, error) {
	if o.source.Code == o.target.Code {
		return c, nil
	}
	for _, s := range []*System{o.source, o.target} {
		if s.TransformErr != nil {
			return geom.Coord{}, engine.NewError(engine.KindTransform, s.Code, s.TransformErr)
		}
	}
	if o.source.Code != Reference {
		s := o.source
		c = geom.Coord{
			c[1]/s.Scale + s.InverseOffset,
			c[0]/s.Scale + s.InverseOffset,
		}
	}
	if o.target.Code != Reference {
		s := o.target
		c = geom.Coord{
			c[1]*s.Scale + s.ForwardOffset,
			c[0]*s.Scale + s.ForwardOffset,
		}
	}
	return c, nil
}
