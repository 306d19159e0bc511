// Package httpclient provides the instrumented HTTP client used for calls to
// the provisioning backend. Every request passes through:
//
//	Circuit Breaker → Rate Limiter → Header Injection → OTEL Span → Retry → HTTP
//
// Construction:
//
//	client := httpclient.New(&cfg.Client, "provisioning-api", metrics, logger,
//	    httpclient.WithBearerToken(cfg.Provisioning.Token),
//	)
//
// Executing requests:
//
//	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, client.BaseURL(), body)
//	resp, err := client.Do(ctx, req)
//
// Retries are opt-in per request. Only a context marked with MarkIdempotent
// is retried; anything else is sent exactly once:
//
//	resp, err := client.Do(httpclient.MarkIdempotent(ctx), req)
//
// Context propagation for header injection (set by inbound middleware):
//
//	ctx = httpclient.WithRequestID(ctx, "req-123")
//	ctx = httpclient.WithCorrelationID(ctx, "corr-456")
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/replicator/internal/platform/config"
	"github.com/jsamuelsen11/replicator/internal/platform/telemetry"
)

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
	idempotentKey    struct{}
)

// WithRequestID returns a new context carrying the inbound request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID returns a new context carrying the correlation ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// MarkIdempotent returns a context that allows Do to retry the request.
func MarkIdempotent(ctx context.Context) context.Context {
	return context.WithValue(ctx, idempotentKey{}, true)
}

func isIdempotent(ctx context.Context) bool {
	v, _ := ctx.Value(idempotentKey{}).(bool)
	return v
}

// Option customizes a Client.
type Option func(*Client)

// WithBearerToken sets the credential sent as "Authorization: Bearer <token>"
// on every request. An empty token sends no Authorization header.
func WithBearerToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithTransport replaces the underlying round tripper.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) { c.httpClient.Transport = rt }
}

type retryConfig struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// Client is an instrumented HTTP client bound to one downstream service.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	serviceName string
	userAgent   string
	token       string
	breaker     *gobreaker.CircuitBreaker[struct{}]
	limiter     *rate.Limiter // nil when rate limiting is disabled
	retryCfg    retryConfig
	metrics     *telemetry.Metrics
	logger      *slog.Logger
}

// New creates a Client for the downstream identified by serviceName. A nil
// metrics skips metric recording.
func New(cfg *config.ClientConfig, serviceName string, metrics *telemetry.Metrics, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     cfg.BaseURL,
		serviceName: serviceName,
		userAgent:   cfg.UserAgent,
		breaker:     newBreaker(cfg.CircuitBreaker, serviceName, logger),
		retryCfg: retryConfig{
			maxAttempts:     cfg.Retry.MaxAttempts,
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		metrics: metrics,
		logger:  logger,
	}

	if cfg.RateLimit.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), max(cfg.RateLimit.BurstSize, 1))
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func newBreaker(cfg config.CircuitBreakerConfig, name string, logger *slog.Logger) *gobreaker.CircuitBreaker[struct{}] {
	return gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

// Do sends req through the breaker, limiter, tracing and retry layers.
//
// On success resp is non-nil and the caller must close its body. When the
// final attempt still returns a retryable status both resp and err are
// non-nil. A rejected breaker, a limiter wait failure or a network error
// return a nil resp.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()
	method := req.Method
	attempts := 1
	if isIdempotent(ctx) {
		attempts = c.retryCfg.maxAttempts
	}

	var resp *http.Response
	_, err := c.breaker.Execute(func() (struct{}, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return struct{}{}, fmt.Errorf("waiting for rate limiter: %w", err)
			}
		}

		c.injectHeaders(ctx, req)

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		req = req.WithContext(spanCtx)

		retryErr := c.doWithRetry(spanCtx, req, attempts, &resp)
		c.finishSpan(span, resp, retryErr)

		return struct{}{}, retryErr
	})

	c.recordMetrics(ctx, method, start, resp, err)

	return resp, err
}

// BaseURL returns the configured endpoint.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Name returns the downstream service identifier.
func (c *Client) Name() string {
	return c.serviceName
}

// BreakerState returns the current circuit breaker state as a string
// ("closed", "half-open" or "open").
func (c *Client) BreakerState() string {
	return c.breaker.State().String()
}

// HealthCheck maps the breaker state to a health result without making a
// network call. Closed is healthy; half-open and open are reported as errors.
func (c *Client) HealthCheck(_ context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.serviceName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.serviceName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.serviceName, state)
	}
}

func (c *Client) injectHeaders(ctx context.Context, req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		req.Header.Set("X-Request-ID", id)
	}
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok && id != "" {
		req.Header.Set("X-Correlation-ID", id)
	}
}

func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("httpclient")

	ctx, span := tracer.Start(ctx, fmt.Sprintf("HTTP %s %s", req.Method, c.serviceName),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
			attribute.String("peer.service", c.serviceName),
			attribute.Bool("http.idempotent", isIdempotent(ctx)),
		),
	)

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	return ctx, span
}

func (c *Client) finishSpan(span trace.Span, resp *http.Response, err error) {
	if resp != nil {
		span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// recordMetrics runs outside the breaker so rejected calls are counted too.
func (c *Client) recordMetrics(ctx context.Context, method string, start time.Time, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	statusCode := 0
	result := "error"
	if resp != nil {
		statusCode = resp.StatusCode
		if statusCode < http.StatusBadRequest {
			result = "success"
		}
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		result = "circuit_open"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(statusCode),
		telemetry.AttrPeerService.String(c.serviceName),
		telemetry.AttrResult.String(result),
	)

	c.metrics.ClientRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

// toUint32 clamps v into the uint32 range.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
