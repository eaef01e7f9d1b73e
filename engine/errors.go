package engine

import "fmt"

// Kind classifies a failure reported by an engine.
type Kind int

const (
	KindNone Kind = iota
	// KindResolution: the CRS code is not known to the engine.
	KindResolution
	// KindOperationNotFound: no operation between the two systems.
	KindOperationNotFound
	// KindUnavailable: the CRS has no geographic bounding box.
	KindUnavailable
	// KindTransform: numerical or domain failure while transforming.
	KindTransform
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
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is returned by all engine operations.
type Error struct {
	Kind Kind
	Code string
	Err  error
}

func NewError(kind Kind, code string, err error) *Error {
	return &Error{Kind: kind, Code: code, Err: err}
}

func (e *Error) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s error for %s: %v", e.Kind, e.Code, e.Err)
}

// Cause returns the underlying error, see github.com/pkg/errors.
func (e *Error) Cause() error {
	return e.Err
}

type causer interface {
	Cause() error
}

// KindOf returns the Kind of the first *Error in the cause chain of err,
// KindNone for nil and KindTransform for errors of unknown origin.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Kind
		}
		c, ok := err.(causer)
		if !ok {
			break
		}
		err = c.Cause()
	}
	return KindTransform
}
