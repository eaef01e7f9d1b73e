package verify

import (
	"fmt"
	"strings"

	"github.com/omniscale/crscheck/engine"
)

type Direction int

const (
	Forward Direction = iota
	Reverse
)

func (d Direction) String() string {
	if d == Forward {
		return "forward"
	}
	return "reverse"
}

// ToleranceError is returned for the first coordinate component that
// differs from the baseline by more than the tolerance. Index is the
// position of the point within the record.
type ToleranceError struct {
	Direction Direction
	Index     int
	Axis      int
	Expected  float64
	Actual    float64
	Delta     float64
	Unit      engine.Unit
}

func (e *ToleranceError) Error() string {
	return fmt.Sprintf("%s transformation of point %d axis %d: expected %v, got %v (difference %g > %g %s)",
		e.Direction, e.Index, e.Axis, e.Expected, e.Actual, e.Actual-e.Expected, e.Delta, e.Unit.Abbrev)
}

// MalformedError is returned for records that can not be verified.
type MalformedError struct {
	Err error
}

func (e *MalformedError) Error() string { return "malformed record: " + e.Err.Error() }
func (e *MalformedError) Cause() error  { return e.Err }

// ConsistencyError is returned when identifiers of the known-failing
// list did not pass the verification. The list needs to be updated
// after these identifiers were fixed or removed from the baseline.
type ConsistencyError struct {
	Remaining []string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("%d known failing identifiers remain: %s",
		len(e.Remaining), strings.Join(e.Remaining, ", "))
}
