package population

import (
	"errors"
	"strconv"
)

var (
	// ErrLoad matches every LoadError via errors.Is.
	ErrLoad = errors.New("population: load failed")

	// ErrNotFound matches every NotFoundError via errors.Is.
	ErrNotFound = errors.New("population: city not found")
)

// LoadError is returned when source data cannot be turned into a MapSource.
//
// Line is the 1-based line (or entry) the problem was found on, or 0 when the
// failure is not tied to a single line (for example, the file could not be opened).
type LoadError struct {
	Line   int
	Reason string

	// Err is the underlying cause, if any (I/O or strconv errors).
	Err error
}

// Error implements the error interface.
func (e LoadError) Error() string {
	// Example: population: load line 4: invalid population for "Lima": strconv.Atoi: ...
	msg := "population: load"
	if e.Line > 0 {
		msg += " line " + strconv.Itoa(e.Line)
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes the underlying cause.
func (e LoadError) Unwrap() error { return e.Err }

// Is reports whether target is ErrLoad.
func (e LoadError) Is(target error) bool { return target == ErrLoad }

// NotFoundError is returned by Source.Population when the city is unknown.
type NotFoundError struct{ Name string }

// Error implements the error interface.
func (e NotFoundError) Error() string {
	// Example: population: city "Atlantis" not found
	return "population: city " + strconv.Quote(e.Name) + " not found"
}

// Is reports whether target is ErrNotFound.
func (e NotFoundError) Is(target error) bool { return target == ErrNotFound }
