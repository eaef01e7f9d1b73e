// Package engine defines the interface of coordinate transformation
// engines that are exercised by the baseline generator and the verifier.
//
// Implementations register themselves with Register and are created with
// Open. The returned Engine is a scoped handle, callers need to Close it.
package engine

import (
	"github.com/omniscale/crscheck/geom"
	"github.com/pkg/errors"
)

// CRS is a coordinate reference system resolved by an engine.
type CRS interface {
	Code() string
	Name() string
}

// Operation converts coordinates from one CRS into another.
type Operation interface {
	Source() CRS
	Target() CRS
	Transform(geom.Coord) (geom.Coord, error)
}

type Engine interface {
	// Codes returns all CRS codes of the authority (e.g. "EPSG"), or of
	// all authorities if authority is empty. Codes are sorted.
	Codes(authority string) ([]string, error)
	ResolveCRS(code string) (CRS, error)
	FindOperation(source, target CRS) (Operation, error)
	// BoundingBox returns the domain of validity declared by the CRS
	// itself.
	BoundingBox(crs CRS) (geom.BBox, error)
	AxisUnit(crs CRS, axis int) (Unit, error)
	Close() error
}

type Config struct {
	Type string
	// Registry is an optional file with additional CRS definitions.
	Registry string
	// Store selects the backend of the definition store.
	Store string
	// TempDir is the parent of the temporary store directory, defaults
	// to the system temp dir.
	TempDir string
}

var engines map[string]func(Config) (Engine, error)

func init() {
	engines = make(map[string]func(Config) (Engine, error))
}

func Register(name string, f func(Config) (Engine, error)) {
	engines[name] = f
}

func Open(conf Config) (Engine, error) {
	newFunc, ok := engines[conf.Type]
	if !ok {
		return nil, errors.New("unsupported engine type: " + conf.Type)
	}

	e, err := newFunc(conf)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s engine", conf.Type)
	}
	return e, nil
}
