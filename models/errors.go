package models

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a workflow failure. Every step of every workflow maps
// a specific failure condition to exactly one kind; anything unclassified is
// wrapped as Internal.
type ErrorKind string

const (
	KindUnauthenticated    ErrorKind = "Unauthenticated"
	KindPermissionDenied   ErrorKind = "PermissionDenied"
	KindInvalidArgument    ErrorKind = "InvalidArgument"
	KindNotFound           ErrorKind = "NotFound"
	KindAlreadyExists      ErrorKind = "AlreadyExists"
	KindFailedPrecondition ErrorKind = "FailedPrecondition"
	KindDeadlineExceeded   ErrorKind = "DeadlineExceeded"
	KindInternal           ErrorKind = "Internal"
)

// WorkflowError is the tagged error returned by every workflow entry point.
type WorkflowError struct {
	Kind    ErrorKind
	Message string
	Err     error // underlying cause, kept for logs
}

func (e *WorkflowError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *WorkflowError) Unwrap() error {
	return e.Err
}

// NewWorkflowError creates a tagged error with no underlying cause.
func NewWorkflowError(kind ErrorKind, message string) *WorkflowError {
	return &WorkflowError{Kind: kind, Message: message}
}

// WrapInternal wraps an unexpected failure as Internal, preserving the cause.
func WrapInternal(message string, err error) *WorkflowError {
	return &WorkflowError{Kind: KindInternal, Message: message, Err: err}
}

// KindOf extracts the kind from an error chain, defaulting to Internal.
func KindOf(err error) ErrorKind {
	var wf *WorkflowError
	if errors.As(err, &wf) {
		return wf.Kind
	}
	return KindInternal
}

// HTTPStatus maps an error kind to the HTTP status the controllers respond with.
func (k ErrorKind) HTTPStatus() int {
	switch k {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindPermissionDenied:
		return http.StatusForbidden
	case KindInvalidArgument:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindAlreadyExists:
		return http.StatusConflict
	case KindFailedPrecondition:
		return http.StatusPreconditionFailed
	case KindDeadlineExceeded:
		return http.StatusGone
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse builds the standard API envelope for a workflow error. The
// caller-facing message is generic for Internal errors; the underlying cause
// stays in the logs only.
func ErrorResponse(err error) (int, APIResponse) {
	kind := KindOf(err)
	details := err.Error()

	var wf *WorkflowError
	if errors.As(err, &wf) {
		details = wf.Message
	}
	if kind == KindInternal {
		details = "An unexpected error occurred"
	}

	status := kind.HTTPStatus()
	return status, APIResponse{
		Status:  "error",
		Code:    status,
		Message: details,
		Error: &APIError{
			Type:    string(kind),
			Details: details,
		},
	}
}
