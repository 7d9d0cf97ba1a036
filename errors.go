package truetype

import "fmt"

// Error is the single error kind raised by this package: a descriptive
// message, optionally chained to an underlying cause. Short reads, seeks
// past the end of a tape, unrecognized version constants, reserved bits set
// where zero is required, and cross-field inconsistencies all surface as an
// *Error.
type Error struct {
	Table string // table tag this error pertains to, or "" if not table-specific
	Msg   string
	Err   error
}

func (e *Error) Error() string {
	if e.Table != "" {
		if e.Err != nil {
			return fmt.Sprintf("%s: %s: %v", e.Table, e.Msg, e.Err)
		}
		return fmt.Sprintf("%s: %s", e.Table, e.Msg)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func errorf(table, format string, args ...interface{}) error {
	return &Error{Table: table, Msg: fmt.Sprintf(format, args...)}
}

func wrapf(table string, err error, format string, args ...interface{}) error {
	return &Error{Table: table, Msg: fmt.Sprintf(format, args...), Err: err}
}
