package gridtui

import (
	"errors"
	"fmt"
)

// ErrDuplicateID is returned when a component is added under an id that is
// already present in the tree.
var ErrDuplicateID = errors.New("duplicate component id")

// UnitParseError reports a malformed unit string found while resolving a
// component's style. It aborts the resolution cycle.
type UnitParseError struct {
	NodeID string // id of the component whose style is malformed
	Field  string // style field name, e.g. "width"
	Err    error  // underlying *layout.ParseError
}

func (e *UnitParseError) Error() string {
	return fmt.Sprintf("component %q: field %s: %v", e.NodeID, e.Field, e.Err)
}

func (e *UnitParseError) Unwrap() error {
	return e.Err
}

// TreeLookupError reports an operation that referenced an id not present in
// the component tree.
type TreeLookupError struct {
	Op     string
	ID     string
	Reason string // empty means the id was not found
}

func (e *TreeLookupError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: component %q: %s", e.Op, e.ID, e.Reason)
	}
	return fmt.Sprintf("%s: component %q not found in the component tree", e.Op, e.ID)
}

// ValueRangeError reports a color channel, alpha, or spacing value outside
// its legal range.
type ValueRangeError struct {
	Field    string
	Value    float64
	Min, Max float64
}

func (e *ValueRangeError) Error() string {
	return fmt.Sprintf("%s = %g out of range [%g, %g]", e.Field, e.Value, e.Min, e.Max)
}
