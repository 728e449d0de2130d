package chart

import "fmt"

// MalformedDateError reports a date string that is not a valid YYYY-MM-DD date.
type MalformedDateError struct {
	Input string
	Err   error
}

func (e *MalformedDateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed date %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("malformed date %q", e.Input)
}

func (e *MalformedDateError) Unwrap() error { return e.Err }

// EmptyTableError reports a price table with no rows. Callers usually show a
// no-data state instead of treating it as a failure.
type EmptyTableError struct{}

func (e *EmptyTableError) Error() string { return "price table has no rows" }

// InvalidWindowError reports a non-positive moving-average window.
type InvalidWindowError struct {
	Window int
}

func (e *InvalidWindowError) Error() string {
	return fmt.Sprintf("invalid moving-average window %d: must be positive", e.Window)
}

// UnknownSeriesError reports a series kind that is not recognised.
type UnknownSeriesError struct {
	Kind string
}

func (e *UnknownSeriesError) Error() string {
	return fmt.Sprintf("unknown series kind %q", e.Kind)
}
