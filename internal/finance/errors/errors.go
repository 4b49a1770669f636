package errors

import (
	"errors"
)

// ValidationError reports input that has the wrong shape or value at the API
// boundary. It never reaches persistence.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	ok := errors.As(err, &validationError)
	return ok
}

// ReferenceError reports a foreign key that names a row which does not exist.
type ReferenceError struct {
	Msg string
}

func (e *ReferenceError) Error() string {
	return e.Msg
}

func NewReferenceError(msg string) error {
	return &ReferenceError{Msg: msg}
}

func IsReferenceError(err error) bool {
	var referenceError *ReferenceError
	ok := errors.As(err, &referenceError)
	return ok
}

var (
	ErrCategoryNotFound    = errors.New("Category not found")
	ErrTransactionNotFound = errors.New("Transaction not found")
	ErrCategoryNameTaken   = errors.New("Category with this name already exists")
	ErrCategoryInUse       = errors.New("Category is still referenced by transactions")
)

var (
	ErrUnknownCategory    = NewReferenceError("Category not found")
	ErrUnknownNewCategory = NewReferenceError("New category not found")
)
