package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/replicator/internal/platform/httpclient"
)

const (
	headerRequestID     = "X-Request-ID"
	headerCorrelationID = "X-Correlation-ID"
)

// Separate keys from httpclient's; middleware reads its own, httpclient
// reads its own.
type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID stores id in ctx and forwards it to httpclient so that calls
// to the provisioning backend carry the same X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, requestIDKey{}, id)
	return httpclient.WithRequestID(ctx, id)
}

// RequestIDFromContext returns the request ID, or "" if none is stored.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// WithCorrelationID stores id in ctx and forwards it to httpclient.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, correlationIDKey{}, id)
	return httpclient.WithCorrelationID(ctx, id)
}

// CorrelationIDFromContext returns the correlation ID, or "" if none is
// stored.
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// RequestID reuses an inbound X-Request-ID or generates a UUID v4, stores it
// in the request context and echoes it in the response.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(headerRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(headerRequestID, id)
			next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
		})
	}
}

// CorrelationID reuses an inbound X-Correlation-ID or falls back to the
// request ID. Must run after RequestID.
//
// A provisioned child that calls its own parent's endpoints can pass the
// parent's correlation ID along, tying a whole chain of levels together.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(headerCorrelationID)
			if id == "" {
				id = RequestIDFromContext(r.Context())
			}
			w.Header().Set(headerCorrelationID, id)
			next.ServeHTTP(w, r.WithContext(WithCorrelationID(r.Context(), id)))
		})
	}
}
