package service

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"cmsapi/internal/repository"
)

var (
	ErrNotFound       = errors.New("resource not found")
	ErrDuplicate      = errors.New("resource already exists")
	ErrInvalidRequest = errors.New("invalid request")
	ErrUnauthorized   = errors.New("unauthorized access")
	ErrFileUpload     = errors.New("file upload failed")
	ErrFileDelete     = errors.New("file delete failed")
	ErrValidation     = errors.New("validation failed")
)

// kindError carries a client-facing message and classifies it with one of the sentinels above.
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

func errorf(kind error, format string, args ...any) error {
	return &kindError{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// FieldError is a single failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every failed field of a request.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// repoError translates repository failures about the record described by format/args.
// Unknown errors are returned as they are.
func repoError(err error, format string, args ...any) error {
	what := fmt.Sprintf(format, args...)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return errorf(ErrNotFound, "%s not found", what)
	case errors.Is(err, repository.ErrDuplicate):
		return errorf(ErrDuplicate, "%s already exists", what)
	case errors.Is(err, repository.ErrReference):
		return errorf(ErrNotFound, "%s references a record that does not exist", what)
	case errors.Is(err, repository.ErrInvalidSort):
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return err
}
