package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/replicator/internal/domain"
	"github.com/jsamuelsen11/replicator/internal/platform/httpclient"
)

// Operation describes one GraphQL document. ReadOnly operations may be
// retried by the HTTP client; mutations are sent exactly once.
type Operation struct {
	Name     string
	Query    string
	ReadOnly bool
}

// request is the GraphQL request body.
type request struct {
	Query         string `json:"query"`
	OperationName string `json:"operationName,omitempty"`
	Variables     any    `json:"variables,omitempty"`
}

// Requester centralizes the GraphQL exchange for ACL clients: body
// marshaling, one POST to the configured endpoint through
// httpclient.Client, response body cleanup, and classification of the
// result into data or a *domain.WorkflowError.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client and logger.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// Do sends op with variables and decodes the response data into out (which
// may be nil). Every failure is a *domain.WorkflowError.
func (r *Requester) Do(ctx context.Context, op Operation, variables, out any) error {
	body, err := json.Marshal(request{Query: op.Query, OperationName: op.Name, Variables: variables})
	if err != nil {
		return domain.NewTransportError(op.Name, fmt.Errorf("marshaling request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.client.BaseURL(), bytes.NewReader(body))
	if err != nil {
		return domain.NewTransportError(op.Name, fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if op.ReadOnly {
		ctx = httpclient.MarkIdempotent(ctx)
	}

	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer r.closeBody(ctx, resp)
	}
	if err != nil && resp == nil {
		r.logger.ErrorContext(ctx, "graphql request failed",
			slog.String("operation", op.Name),
			slog.Any("error", err),
		)
		return domain.NewTransportError(op.Name, err)
	}

	// With retries exhausted on a retryable status, resp still carries the
	// last body, which may hold backend messages.
	if err := ClassifyResponse(op.Name, resp, out); err != nil {
		r.logger.ErrorContext(ctx, "graphql operation failed",
			slog.String("operation", op.Name),
			slog.Int("status", resp.StatusCode),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}

// ServiceName returns the downstream name of the underlying HTTP client.
func (r *Requester) ServiceName() string {
	return r.client.Name()
}

// HealthCheck maps the underlying circuit breaker state to a health result.
func (r *Requester) HealthCheck(ctx context.Context) error {
	return r.client.HealthCheck(ctx)
}

func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}
