package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/replicator/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/replicator/internal/platform/config"
	"github.com/jsamuelsen11/replicator/internal/platform/httpclient"
)

func newTestHTTPClient(t *testing.T, baseURL string) *httpclient.Client {
	t.Helper()
	return httpclient.New(&config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry:   config.RetryConfig{MaxAttempts: 1},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}, "test", nil, discardLogger())
}

func TestRequestID_GeneratesUUID(t *testing.T) {
	t.Parallel()

	var gotID string
	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		gotID = middleware.RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	parsed, err := uuid.Parse(gotID)
	if err != nil {
		t.Fatalf("generated ID %q is not a UUID: %v", gotID, err)
	}
	if parsed.Version() != 4 {
		t.Errorf("UUID version = %d, want 4", parsed.Version())
	}
	if respID := rec.Header().Get("X-Request-ID"); respID != gotID {
		t.Errorf("response X-Request-ID = %q, want %q", respID, gotID)
	}
}

func TestRequestID_ReusesInboundHeader(t *testing.T) {
	t.Parallel()

	var gotID string
	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		gotID = middleware.RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("X-Request-ID", "incoming-123")
	handler.ServeHTTP(rec, req)

	if gotID != "incoming-123" {
		t.Errorf("RequestIDFromContext = %q, want %q", gotID, "incoming-123")
	}
	if respID := rec.Header().Get("X-Request-ID"); respID != "incoming-123" {
		t.Errorf("response X-Request-ID = %q, want %q", respID, "incoming-123")
	}
}

func TestRequestID_UniqueAcrossRequests(t *testing.T) {
	t.Parallel()

	ids := make(map[string]bool)
	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		ids[middleware.RequestIDFromContext(r.Context())] = true
	}))

	for range 100 {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	}

	if len(ids) != 100 {
		t.Errorf("unique IDs = %d, want 100", len(ids))
	}
}

func TestCorrelationID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		requestID   string
		correlation string
		want        string
	}{
		{name: "inbound header wins", requestID: "req-1", correlation: "corr-abc", want: "corr-abc"},
		{name: "falls back to request ID", requestID: "req-2", want: "req-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotID string
			handler := middleware.RequestID()(
				middleware.CorrelationID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
					gotID = middleware.CorrelationIDFromContext(r.Context())
				})),
			)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			req.Header.Set("X-Request-ID", tt.requestID)
			if tt.correlation != "" {
				req.Header.Set("X-Correlation-ID", tt.correlation)
			}
			handler.ServeHTTP(rec, req)

			if gotID != tt.want {
				t.Errorf("CorrelationIDFromContext = %q, want %q", gotID, tt.want)
			}
			if respID := rec.Header().Get("X-Correlation-ID"); respID != tt.want {
				t.Errorf("response X-Correlation-ID = %q, want %q", respID, tt.want)
			}
		})
	}
}

func TestIDsFromContext_Empty(t *testing.T) {
	t.Parallel()

	if id := middleware.RequestIDFromContext(context.Background()); id != "" {
		t.Errorf("RequestIDFromContext = %q, want empty", id)
	}
	if id := middleware.CorrelationIDFromContext(context.Background()); id != "" {
		t.Errorf("CorrelationIDFromContext = %q, want empty", id)
	}
}

func TestIDs_ForwardedToOutboundCalls(t *testing.T) {
	t.Parallel()

	var gotRequestID, gotCorrelationID string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-ID")
		gotCorrelationID = r.Header.Get("X-Correlation-ID")
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(backend.Close)

	client := newTestHTTPClient(t, backend.URL)

	ctx := middleware.WithCorrelationID(middleware.WithRequestID(context.Background(), "req-out"), "corr-out")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, backend.URL, http.NoBody)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	resp, err := client.Do(ctx, req)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	_ = resp.Body.Close()

	if gotRequestID != "req-out" || gotCorrelationID != "corr-out" {
		t.Errorf("outbound ids = %q/%q, want req-out/corr-out", gotRequestID, gotCorrelationID)
	}
}
