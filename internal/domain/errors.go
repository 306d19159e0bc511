package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrValidation = errors.New("validation error")

	// ErrTransport marks failures of the exchange itself: connection,
	// timeout, circuit breaker rejection, unreadable or malformed response.
	ErrTransport = errors.New("transport failure")

	// ErrBackend marks exchanges that completed but carried one or more
	// error messages from the provisioning backend.
	ErrBackend = errors.New("backend failure")
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ErrorKind tags a WorkflowError as a transport or backend failure.
type ErrorKind int

const (
	KindTransport ErrorKind = iota + 1
	KindBackend
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindBackend:
		return "backend"
	default:
		return "unknown"
	}
}

// WorkflowError is the single error type produced by a remote call.
//
// For KindBackend, Messages holds every message the backend reported, in
// order; Error() joins them with "; ". For KindTransport, Err holds the cause
// and Error() returns its message. Operation names the remote operation
// (e.g. "serviceCreate") for logs; it is not part of the message.
//
// errors.Is(err, ErrBackend) and errors.Is(err, ErrTransport) select on kind.
type WorkflowError struct {
	Kind      ErrorKind
	Operation string
	Messages  []string
	Err       error
}

// NewTransportError wraps a transport-level cause.
func NewTransportError(operation string, cause error) *WorkflowError {
	return &WorkflowError{Kind: KindTransport, Operation: operation, Err: cause}
}

// NewBackendError records the backend-reported messages for operation.
func NewBackendError(operation string, messages []string) *WorkflowError {
	return &WorkflowError{Kind: KindBackend, Operation: operation, Messages: messages}
}

func (e *WorkflowError) Error() string {
	switch e.Kind {
	case KindBackend:
		if len(e.Messages) == 0 {
			return ErrBackend.Error()
		}
		return strings.Join(e.Messages, "; ")
	default:
		if e.Err == nil {
			return ErrTransport.Error()
		}
		return e.Err.Error()
	}
}

// Is reports whether target is the sentinel for this error's kind.
func (e *WorkflowError) Is(target error) bool {
	switch target {
	case ErrBackend:
		return e.Kind == KindBackend
	case ErrTransport:
		return e.Kind == KindTransport
	default:
		return false
	}
}

func (e *WorkflowError) Unwrap() error {
	return e.Err
}
