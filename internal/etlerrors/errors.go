// Package etlerrors defines the error taxonomy shared by all pipeline stages.
package etlerrors

import (
	"fmt"

	goerrors "github.com/go-errors/errors"
)

type ErrorType string

const (
	// ErrTypeMissingInput covers a missing input directory or dataset file.
	ErrTypeMissingInput ErrorType = "MISSING_INPUT"
	// ErrTypeEmptyDataset covers a dataset file that parsed to zero rows.
	ErrTypeEmptyDataset ErrorType = "EMPTY_DATASET"
	// ErrTypeMissingColumn covers a dataset missing a required column.
	ErrTypeMissingColumn ErrorType = "MISSING_COLUMN"
	ErrTypeInternal      ErrorType = "INTERNAL"
	ErrTypeUnavailable   ErrorType = "UNAVAILABLE"
)

// PipelineError carries the error class alongside the wrapped cause so
// callers can branch on taxonomy without string matching.
type PipelineError struct {
	Type    ErrorType
	Message string
	Err     error
	Stack   []byte
}

func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

func (e *PipelineError) StackTrace() []byte {
	return e.Stack
}

func New(errType ErrorType, message string, err error) *PipelineError {
	var stack []byte
	if err != nil {
		if stackErr, ok := err.(*goerrors.Error); ok {
			stack = stackErr.Stack()
		} else {
			stack = goerrors.Wrap(err, 2).Stack()
		}
	} else {
		stack = goerrors.New(message).Stack()
	}

	return &PipelineError{
		Type:    errType,
		Message: message,
		Err:     err,
		Stack:   stack,
	}
}

func MissingInput(message string, err error) *PipelineError {
	return New(ErrTypeMissingInput, message, err)
}

func EmptyDataset(message string, err error) *PipelineError {
	return New(ErrTypeEmptyDataset, message, err)
}

func MissingColumn(message string, err error) *PipelineError {
	return New(ErrTypeMissingColumn, message, err)
}

func Internal(message string, err error) *PipelineError {
	return New(ErrTypeInternal, message, err)
}

func Unavailable(message string, err error) *PipelineError {
	return New(ErrTypeUnavailable, message, err)
}

// IsType reports whether err is a PipelineError of the given type.
func IsType(err error, errType ErrorType) bool {
	for err != nil {
		if pe, ok := err.(*PipelineError); ok {
			return pe.Type == errType
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
