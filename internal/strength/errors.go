package strength

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionSingularity is returned when the formula denominator is zero or negative (reps >= 37).
	ErrDivisionSingularity = errors.New("one-rep-max formula is undefined for 37 or more reps")
	ErrInvalidReps         = errors.New("reps must be at least 1")
	ErrInvalidWeight       = errors.New("weight must not be negative")
)

// ParseError reports malformed stored text: a date or a "/"-delimited weights/reps field.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse %s %q: %s", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("parse %s %q", e.Field, e.Value)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SetError names the set of a log entry that could not be estimated.
type SetError struct {
	Index  int
	Weight float64
	Reps   int
	Err    error
}

func (e *SetError) Error() string {
	return fmt.Sprintf("set %d (%gx%d): %s", e.Index, e.Weight, e.Reps, e.Err)
}

func (e *SetError) Unwrap() error {
	return e.Err
}

// ConfigurationError is returned for invalid pipeline parameters, e.g. a top-N larger than the palette.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string {
	return "configuration: " + e.Msg
}

// LogError ties a row-level failure to the log entry that was excluded because of it.
type LogError struct {
	LogID uint
	Date  string
	Err   error
}

func (e *LogError) Error() string {
	return fmt.Sprintf("log %d (%s): %s", e.LogID, e.Date, e.Err)
}

func (e *LogError) Unwrap() error {
	return e.Err
}
