package errors

import (
	"errors"
	"fmt"
)

// ErrNoDataRegion is returned by region detection when no row of a sheet
// carries a resolvable month token. Per-sheet processing treats it as
// fatal; it must surface explicitly rather than as an out-of-range read.
var ErrNoDataRegion = errors.New("no data region found in sheet")

// RowError is a row-level data problem: an unresolvable month, a missing
// year with nothing to carry, or a failure while building one row's
// records. It aborts only the row it names, never the batch.
type RowError struct {
	Row int
	Err error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is treat any RowError as matching the zero RowError, so
// callers can classify without caring about the row index.
func (e RowError) Is(target error) bool {
	_, ok := target.(RowError)
	return ok
}

// IsRowError reports whether err is (or wraps) a row-level data error.
func IsRowError(err error) bool {
	var rowErr RowError
	return errors.As(err, &rowErr)
}
