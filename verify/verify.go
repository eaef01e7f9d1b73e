// Package verify compares the transformations of an engine with a
// baseline and reconciles the failures with a list of known failures.
package verify

import (
	"fmt"

	"github.com/omniscale/crscheck/baseline"
	"github.com/omniscale/crscheck/engine"
	"github.com/omniscale/crscheck/geom"
	"github.com/omniscale/crscheck/logging"
	"github.com/pkg/errors"
)

var log = logging.NewLogger("verify")

type Kind int

const (
	KindNone Kind = iota
	KindResolution
	KindOperationNotFound
	KindUnavailable
	KindTransform
	KindToleranceExceeded
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindResolution:
		return "resolution"
	case KindOperationNotFound:
		return "operation not found"
	case KindUnavailable:
		return "unavailable"
	case KindTransform:
		return "transform"
	case KindToleranceExceeded:
		return "tolerance exceeded"
	case KindMalformed:
		return "malformed"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// KindOf classifies err.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	for e := err; e != nil; {
		switch e.(type) {
		case *ToleranceError:
			return KindToleranceExceeded
		case *MalformedError:
			return KindMalformed
		}
		c, ok := e.(causer)
		if !ok {
			break
		}
		e = c.Cause()
	}
	switch engine.KindOf(err) {
	case engine.KindResolution:
		return KindResolution
	case engine.KindOperationNotFound:
		return KindOperationNotFound
	case engine.KindUnavailable:
		return KindUnavailable
	default:
		return KindTransform
	}
}

type causer interface {
	Cause() error
}

type Outcome int

const (
	Passed Outcome = iota
	// Acknowledged failures are listed as known failing.
	Acknowledged
	Regression
)

func (o Outcome) String() string {
	switch o {
	case Passed:
		return "passed"
	case Acknowledged:
		return "acknowledged"
	default:
		return "regression"
	}
}

// Result of the verification of one record. The Outcome is set by Run.
type Result struct {
	Identifier string
	Kind       Kind
	Err        error
	Outcome    Outcome
}

func (r Result) Passed() bool {
	return r.Err == nil
}

type Verifier struct {
	Engine engine.Engine
	// Reference is the code of the system of the source coordinates,
	// EPSG:4326 by default.
	Reference string
}

func (v *Verifier) reference() string {
	if v.Reference == "" {
		return "EPSG:4326"
	}
	return v.Reference
}

func (v *Verifier) result(id string, err error) Result {
	return Result{Identifier: id, Kind: KindOf(err), Err: err}
}

// Verify transforms all source coordinates of the record and compares
// them with the transformed coordinates, and transforms all transformed
// coordinates back and compares them with the source coordinates.
func (v *Verifier) Verify(r baseline.Record) Result {
	if err := r.Validate(); err != nil {
		return v.result(r.Identifier, &MalformedError{err})
	}
	if !r.Available() {
		return v.result(r.Identifier, engine.NewError(engine.KindUnavailable, r.Identifier,
			errors.New("no transformed coordinates in baseline")))
	}

	ref, err := v.Engine.ResolveCRS(v.reference())
	if err != nil {
		return v.result(r.Identifier, errors.Wrap(err, "resolving reference system"))
	}
	crs, err := v.Engine.ResolveCRS(r.Identifier)
	if err != nil {
		return v.result(r.Identifier, err)
	}
	forward, err := v.Engine.FindOperation(ref, crs)
	if err != nil {
		return v.result(r.Identifier, err)
	}
	reverse, err := v.Engine.FindOperation(crs, ref)
	if err != nil {
		return v.result(r.Identifier, err)
	}
	unit, err := v.Engine.AxisUnit(crs, 0)
	if err != nil {
		return v.result(r.Identifier, errors.Wrap(err, "axis unit"))
	}
	tol, err := Tolerances(unit)
	if err != nil {
		return v.result(r.Identifier, err)
	}

	for i := range r.Source {
		if err := compare(forward, Forward, i, r.Source[i], r.Transformed[i], tol.Forward, unit); err != nil {
			return v.result(r.Identifier, err)
		}
		if err := compare(reverse, Reverse, i, r.Transformed[i], r.Source[i], tol.Reverse, engine.Degree); err != nil {
			return v.result(r.Identifier, err)
		}
	}
	return Result{Identifier: r.Identifier}
}

func compare(op engine.Operation, dir Direction, idx int, in, expected geom.Coord, delta float64, unit engine.Unit) error {
	actual, err := op.Transform(in)
	if err != nil {
		return errors.Wrapf(err, "%s transformation of point %d", dir, idx)
	}
	for axis := range expected {
		if !equal(expected[axis], actual[axis], delta) {
			return &ToleranceError{
				Direction: dir,
				Index:     idx,
				Axis:      axis,
				Expected:  expected[axis],
				Actual:    actual[axis],
				Delta:     delta,
				Unit:      unit,
			}
		}
	}
	return nil
}
