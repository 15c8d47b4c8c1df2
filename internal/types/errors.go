package types

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrValidation          = errors.New("validation failed")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

type NotFoundError struct {
	Entity string
	Key    string
}

func NewNotFoundError(entity, key string) *NotFoundError {
	return &NotFoundError{Entity: entity, Key: key}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// UpstreamProtocolError reports a non-success status or a payload missing
// the embedded collection for Resource. Status is 0 when no response was read.
type UpstreamProtocolError struct {
	Resource string
	Status   int
	Err      error
}

func (e *UpstreamProtocolError) Error() string {
	msg := fmt.Sprintf("upstream %s request failed", e.Resource)
	if e.Status != 0 {
		msg = fmt.Sprintf("%s with status %d", msg, e.Status)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *UpstreamProtocolError) Unwrap() error {
	return e.Err
}

// HTTPStatus is the status returned to our own callers.
func (e *UpstreamProtocolError) HTTPStatus() int {
	if errors.Is(e.Err, ErrUpstreamUnavailable) {
		return http.StatusServiceUnavailable
	}
	return http.StatusBadGateway
}

type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
