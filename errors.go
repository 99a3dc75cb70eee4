package timesystems

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat is wrapped by every ParseError so callers can match
// malformed input with errors.Is.
var ErrInvalidFormat = errors.New("invalid epoch format")

// ParseError describes an epoch string that does not have the shape
// YYYY-MM-DDTHH:MM:SS[.sss]Z.
type ParseError struct {
	Input string
	Field string // empty when the string could not be split into fields
	Err   error  // underlying strconv error, if any
}

func (e *ParseError) Error() string {
	switch {
	case e.Field == "":
		return fmt.Sprintf("parse epoch %q: %s", e.Input, ErrInvalidFormat)
	case e.Err == nil:
		return fmt.Sprintf("parse epoch %q: %s: %s", e.Input, e.Field, ErrInvalidFormat)
	default:
		return fmt.Sprintf("parse epoch %q: %s: %s", e.Input, e.Field, e.Err)
	}
}

func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidFormat
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
