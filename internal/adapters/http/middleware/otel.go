package middleware

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/replicator/internal/platform/telemetry"
)

// OpenTelemetry creates a server span per request and records server
// request metrics. W3C Trace Context is extracted from the inbound headers,
// so a parent instance that calls a child's endpoint sees one connected
// trace. The span is renamed to the matched route once routing completes.
//
// A nil metrics skips metric recording.
func OpenTelemetry(metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))

			tracer := otel.GetTracerProvider().Tracer("middleware")
			ctx, span := tracer.Start(ctx, "HTTP "+r.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", r.Method),
					attribute.String("http.url", r.URL.String()),
				),
			)
			defer span.End()

			rw := newResponseWriter(w)
			r = r.WithContext(ctx)
			next.ServeHTTP(rw, r)

			route := routeLabel(r)
			status := rw.statusCode
			span.SetName("HTTP " + r.Method + " " + route)
			span.SetAttributes(
				attribute.String("http.route", route),
				attribute.Int("http.status_code", status),
			)
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}

			recordServerMetrics(ctx, metrics, r.Method, start, status)
		})
	}
}

// recordServerMetrics is safe to call with nil metrics.
func recordServerMetrics(ctx context.Context, metrics *telemetry.Metrics, method string, start time.Time, status int) {
	if metrics == nil {
		return
	}

	result := "success"
	if status >= http.StatusBadRequest {
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrResult.String(result),
	)

	metrics.ServerRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	metrics.ServerRequestTotal.Add(ctx, 1, attrs)
}
