package epsg

import (
	"sync"

	"github.com/omniscale/crscheck/geom"
	"github.com/pebbe/proj/v5"
	"github.com/pkg/errors"
)

// pipelineTransformer evaluates the PROJ pipeline of a definition.
// PROJ objects are not safe for concurrent use, all calls are serialized.
type pipelineTransformer struct {
	mu       *sync.Mutex
	pj       *proj.PJ
	pipeline string
}

func newPipeline(ctx *proj.Context, mu *sync.Mutex, d *Definition) (*pipelineTransformer, error) {
	pipeline, err := d.PROJPipeline()
	if err != nil {
		return nil, err
	}
	mu.Lock()
	defer mu.Unlock()
	pj, err := ctx.Create(pipeline)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: creating PROJ pipeline %q", d.Code, pipeline)
	}
	return &pipelineTransformer{mu: mu, pj: pj, pipeline: pipeline}, nil
}

func (t *pipelineTransformer) trans(dir proj.Direction, c geom.Coord) (geom.Coord, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	out, err := t.pj.Trans(dir, proj.Coord{c[0], c[1], 0, 0})
	if err != nil {
		return geom.Coord{}, err
	}
	return geom.Coord{out[0], out[1]}, nil
}

func (t *pipelineTransformer) forward(c geom.Coord) (geom.Coord, error) {
	return t.trans(proj.Fwd, c)
}

func (t *pipelineTransformer) inverse(c geom.Coord) (geom.Coord, error) {
	return t.trans(proj.Inv, c)
}

func (t *pipelineTransformer) close() {
	t.mu.Lock()
	t.pj.Close()
	t.mu.Unlock()
}
