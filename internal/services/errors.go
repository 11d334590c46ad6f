package services

import (
	"errors"
	"fmt"
	"math"
)

// Domain errors. Controllers translate these into HTTP responses; none of them
// are fatal to the process.
var (
	// ErrNotFound means a referenced user, run or subscription does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidAction means an unknown run transition name was requested.
	ErrInvalidAction = errors.New("invalid action")

	// ErrConflict means a uniqueness rule was violated (duplicate subscription).
	ErrConflict = errors.New("already exists")
)

// InvalidTransitionError is returned when a run is not in the state the
// requested action expects. Carries the current status for the response body.
type InvalidTransitionError struct {
	Expected string
	Current  string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("the run status isn't '%s'", e.Expected)
}

// ValidationError is a field-level input error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func round(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
