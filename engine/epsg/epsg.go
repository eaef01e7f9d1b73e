// Package epsg implements the engine for EPSG codes.
//
// CRS definitions are read from a builtin registry, optionally extended
// with a YAML registry file, and kept in a store within a temporary
// directory that is removed by Close. Every definition describes how to
// convert from the reference system EPSG:4326 (latitude, longitude in
// degrees). Operations between two other systems are chained through the
// reference system.
package epsg

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/omniscale/crscheck/engine"
	"github.com/omniscale/crscheck/geom"
	"github.com/omniscale/crscheck/logging"
	"github.com/pebbe/proj/v5"
	"github.com/pkg/errors"
)

var log = logging.NewLogger("epsg")

// Reference is the code of the hub system of all operations.
const Reference = "EPSG:4326"

const codePrefix = "crs/"

type Engine struct {
	dir    string
	store  store
	ctx    *proj.Context
	projMu sync.Mutex

	mu           sync.Mutex
	transformers map[string]transformer
}

func init() {
	engine.Register("epsg", func(conf engine.Config) (engine.Engine, error) {
		return New(conf)
	})
}

func New(conf engine.Config) (*Engine, error) {
	defs, err := ParseRegistry([]byte(defaultRegistry))
	if err != nil {
		return nil, errors.Wrap(err, "builtin registry")
	}
	if conf.Registry != "" {
		extra, err := LoadRegistry(conf.Registry)
		if err != nil {
			return nil, err
		}
		defs = merge(defs, extra)
	}

	dir, err := ioutil.TempDir(conf.TempDir, "crscheck-epsg")
	if err != nil {
		return nil, errors.Wrap(err, "creating temp dir")
	}
	st, err := openStore(conf.Store, filepath.Join(dir, "definitions"))
	if err != nil {
		os.RemoveAll(dir)
		return nil, err
	}
	e := &Engine{
		dir:          dir,
		store:        st,
		transformers: make(map[string]transformer),
	}
	for _, d := range defs {
		data, err := marshalDefinition(d)
		if err != nil {
			e.Close()
			return nil, errors.Wrapf(err, "encoding %s", d.Code)
		}
		if err := st.Put([]byte(codePrefix+d.Code), data); err != nil {
			e.Close()
			return nil, errors.Wrapf(err, "storing %s", d.Code)
		}
	}
	log.Debugf("loaded %d definitions into %s", len(defs), dir)
	e.ctx = proj.NewContext()
	return e, nil
}

type crs struct {
	def *Definition
}

func (c *crs) Code() string { return c.def.Code }
func (c *crs) Name() string { return c.def.Name }

// NormalizeCode returns code with upper case authority, e.g. EPSG:4326
// for epsg:4326.
func NormalizeCode(code string) string {
	code = strings.TrimSpace(code)
	if i := strings.Index(code, ":"); i > 0 {
		return strings.ToUpper(code[:i]) + ":" + strings.TrimSpace(code[i+1:])
	}
	return code
}

func (e *Engine) Codes(authority string) ([]string, error) {
	prefix := codePrefix
	if authority != "" {
		prefix += strings.ToUpper(authority) + ":"
	}
	keys, err := e.store.Keys([]byte(prefix))
	if err != nil {
		return nil, err
	}
	codes := make([]string, 0, len(keys))
	for _, k := range keys {
		codes = append(codes, strings.TrimPrefix(string(k), codePrefix))
	}
	return codes, nil
}

func (e *Engine) ResolveCRS(code string) (engine.CRS, error) {
	code = NormalizeCode(code)
	data, err := e.store.Get([]byte(codePrefix + code))
	if err == NotFound {
		return nil, engine.NewError(engine.KindResolution, code, errors.New("unknown code"))
	}
	if err != nil {
		return nil, engine.NewError(engine.KindResolution, code, err)
	}
	def, err := unmarshalDefinition(data)
	if err != nil {
		return nil, engine.NewError(engine.KindResolution, code, err)
	}
	if def.Deprecated {
		log.Debugf("%s is deprecated", code)
	}
	return &crs{def: def}, nil
}

func (e *Engine) definition(c engine.CRS) (*Definition, error) {
	if c, ok := c.(*crs); ok {
		return c.def, nil
	}
	return nil, errors.Errorf("%s was not resolved by the epsg engine", c.Code())
}

func (e *Engine) BoundingBox(c engine.CRS) (geom.BBox, error) {
	def, err := e.definition(c)
	if err != nil {
		return geom.BBox{}, engine.NewError(engine.KindUnavailable, c.Code(), err)
	}
	bbox, ok := def.BBox()
	if !ok {
		return geom.BBox{}, engine.NewError(engine.KindUnavailable, c.Code(), errors.New("no domain of validity"))
	}
	return bbox, nil
}

func (e *Engine) AxisUnit(c engine.CRS, axis int) (engine.Unit, error) {
	def, err := e.definition(c)
	if err != nil {
		return engine.Unit{}, err
	}
	return def.axisUnit(axis)
}

// transformer returns the cached transformer of def.
func (e *Engine) transformer(def *Definition) (transformer, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if t, ok := e.transformers[def.Code]; ok {
		return t, nil
	}
	var t transformer
	var err error
	if def.Method != "" {
		t, err = newBuiltin(def)
	} else {
		t, err = newPipeline(e.ctx, &e.projMu, def)
	}
	if err != nil {
		return nil, err
	}
	e.transformers[def.Code] = t
	return t, nil
}

type step struct {
	t       transformer
	inverse bool
}

type operation struct {
	source, target engine.CRS
	steps          []step
}

func (o *operation) Source() engine.CRS { return o.source }
func (o *operation) Target() engine.CRS { return o.target }

func (o *operation) Transform(c geom.Coord) (geom.Coord, error) {
	var err error
	for _, s := range o.steps {
		if s.inverse {
			c, err = s.t.inverse(c)
		} else {
			c, err = s.t.forward(c)
		}
		if err != nil {
			return geom.Coord{}, engine.NewError(engine.KindTransform, o.target.Code(), err)
		}
		if !finite(c) {
			return geom.Coord{}, engine.NewError(engine.KindTransform, o.target.Code(),
				errors.Errorf("non-finite result %s", c))
		}
	}
	return c, nil
}

// FindOperation returns the operation from source to target. The
// operation is the identity for equal codes, otherwise it converts into
// the reference system if source is not the reference, and from there
// into target if target is not the reference.
func (e *Engine) FindOperation(source, target engine.CRS) (engine.Operation, error) {
	op := &operation{source: source, target: target}
	if source.Code() == target.Code() {
		return op, nil
	}
	if source.Code() != Reference {
		def, err := e.definition(source)
		if err != nil {
			return nil, engine.NewError(engine.KindOperationNotFound, source.Code(), err)
		}
		t, err := e.transformer(def)
		if err != nil {
			return nil, engine.NewError(engine.KindOperationNotFound, source.Code(), err)
		}
		op.steps = append(op.steps, step{t: t, inverse: true})
	}
	if target.Code() != Reference {
		def, err := e.definition(target)
		if err != nil {
			return nil, engine.NewError(engine.KindOperationNotFound, target.Code(), err)
		}
		t, err := e.transformer(def)
		if err != nil {
			return nil, engine.NewError(engine.KindOperationNotFound, target.Code(), err)
		}
		op.steps = append(op.steps, step{t: t})
	}
	return op, nil
}

// Close releases all PROJ objects and removes the temporary store.
func (e *Engine) Close() error {
	e.mu.Lock()
	for code, t := range e.transformers {
		t.close()
		delete(e.transformers, code)
	}
	e.mu.Unlock()
	if e.ctx != nil {
		e.ctx.Close()
		e.ctx = nil
	}
	var err error
	if e.store != nil {
		err = e.store.Close()
		e.store = nil
	}
	if rmErr := os.RemoveAll(e.dir); rmErr != nil && err == nil {
		err = rmErr
	}
	return err
}
