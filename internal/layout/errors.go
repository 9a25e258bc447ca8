package layout

import "fmt"

// ParseError reports a unit string that is neither a number nor a percentage.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid unit string %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("invalid unit string %q", e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
