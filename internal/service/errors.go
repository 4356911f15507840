package service

import (
	"errors"
	"fmt"

	"github.com/alenapavlenkko/strengthstats/internal/strength"
)

// DataUnavailableError wraps any failure of the underlying store.
// Reads are not retried; the caller re-issues them.
type DataUnavailableError struct {
	Query string
	Err   error
}

func (e *DataUnavailableError) Error() string {
	return fmt.Sprintf("data unavailable (%s): %s", e.Query, e.Err)
}

func (e *DataUnavailableError) Unwrap() error {
	return e.Err
}

// ValidationError is returned for bad user input on writes.
type ValidationError struct {
	Msg string
	Err error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func IsDataUnavailable(err error) bool {
	var target *DataUnavailableError
	return errors.As(err, &target)
}

func IsConfigurationError(err error) bool {
	var target *strength.ConfigurationError
	return errors.As(err, &target)
}

func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}
