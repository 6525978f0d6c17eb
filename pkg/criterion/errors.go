package criterion

import (
	"errors"
	"fmt"
)

// Sentinel errors for matching with errors.Is.
var (
	// ErrInvalidArgument indicates an evaluation operation received an
	// argument outside its legal range, such as a page number below 1.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyResult indicates an aggregation was asked for a value the
	// empty filtered set cannot provide.
	ErrEmptyResult = errors.New("empty result")

	// ErrNotTranslatable indicates a predicate has no description form,
	// typically because it contains an opaque function leaf.
	ErrNotTranslatable = errors.New("not translatable")
)

// ArgumentError reports an invalid argument to an evaluation operation.
type ArgumentError struct {
	// Name is the parameter that was rejected.
	Name string

	// Reason says what a legal value looks like.
	Reason string
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Name, e.Reason)
}

// Unwrap returns ErrInvalidArgument for errors.Is matching.
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// EmptyResultError reports an aggregation over an empty filtered set.
// Minimum, maximum, average, and seeded reductions have no identity
// value, so the library refuses to guess one.
type EmptyResultError struct {
	// Op is the aggregation that had nothing to reduce.
	Op string
}

// Error implements the error interface.
func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("cannot compute %s of an empty filtered set", e.Op)
}

// Unwrap returns ErrEmptyResult for errors.Is matching.
func (e *EmptyResultError) Unwrap() error {
	return ErrEmptyResult
}

// TranslationError reports that a predicate or ordering could not be
// rendered as a description for an external translator. It is raised
// when translation is attempted, never during direct evaluation.
type TranslationError struct {
	// Reason identifies the part that has no description form.
	Reason string
}

// Error implements the error interface.
func (e *TranslationError) Error() string {
	return fmt.Sprintf("cannot translate: %s", e.Reason)
}

// Unwrap returns ErrNotTranslatable for errors.Is matching.
func (e *TranslationError) Unwrap() error {
	return ErrNotTranslatable
}
