package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jsamuelsen11/replicator/internal/domain"
)

func TestWorkflowError_BackendMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		messages []string
		want     string
	}{
		{name: "single message", messages: []string{"project not found"}, want: "project not found"},
		{name: "messages joined in order", messages: []string{"a", "b", "c"}, want: "a; b; c"},
		{name: "no messages", messages: nil, want: "backend failure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := domain.NewBackendError("serviceCreate", tt.messages)
			if got := err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWorkflowError_TransportMessage(t *testing.T) {
	t.Parallel()

	cause := errors.New("dial tcp: connection refused")
	err := domain.NewTransportError("serviceConnect", cause)

	if err.Error() != cause.Error() {
		t.Errorf("Error() = %q, want %q", err.Error(), cause.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true via Unwrap")
	}
}

func TestWorkflowError_KindSentinels(t *testing.T) {
	t.Parallel()

	backend := domain.NewBackendError("op", []string{"x"})
	transport := domain.NewTransportError("op", errors.New("eof"))

	if !errors.Is(backend, domain.ErrBackend) || errors.Is(backend, domain.ErrTransport) {
		t.Error("backend error does not match only ErrBackend")
	}
	if !errors.Is(transport, domain.ErrTransport) || errors.Is(transport, domain.ErrBackend) {
		t.Error("transport error does not match only ErrTransport")
	}

	wrapped := fmt.Errorf("run: %w", backend)
	var werr *domain.WorkflowError
	if !errors.As(wrapped, &werr) {
		t.Fatal("errors.As through wrapping failed")
	}
	if len(werr.Messages) != 1 || werr.Messages[0] != "x" {
		t.Errorf("Messages = %v, want [x]", werr.Messages)
	}
}

func TestErrorKindString(t *testing.T) {
	t.Parallel()

	if domain.KindBackend.String() != "backend" {
		t.Errorf("KindBackend = %q", domain.KindBackend.String())
	}
	if domain.KindTransport.String() != "transport" {
		t.Errorf("KindTransport = %q", domain.KindTransport.String())
	}
	if domain.ErrorKind(0).String() != "unknown" {
		t.Errorf("ErrorKind(0) = %q", domain.ErrorKind(0).String())
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := &domain.ValidationError{Fields: map[string]string{"count": "must be between 1 and 10"}}

	if !errors.Is(err, domain.ErrValidation) {
		t.Error("ValidationError does not unwrap to ErrValidation")
	}
	if got := err.Error(); got != "validation error: count: must be between 1 and 10" {
		t.Errorf("Error() = %q", got)
	}
}
