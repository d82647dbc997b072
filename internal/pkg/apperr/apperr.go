package apperr

import "errors"

// The API distinguishes three caller-visible failure classes. Everything
// else (driver errors, filesystem trouble) stays unclassified and is mapped
// to a generic 500 by the controllers.

// ValidationError marks missing or malformed client input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError marks an id or slug that does not resolve, or a document
// that fails a visibility predicate such as "not published".
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// ConflictError marks a unique-key collision.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func Validation(msg string) error { return &ValidationError{Message: msg} }
func NotFound(msg string) error   { return &NotFoundError{Message: msg} }
func Conflict(msg string) error   { return &ConflictError{Message: msg} }

func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

func IsConflict(err error) bool {
	var e *ConflictError
	return errors.As(err, &e)
}
