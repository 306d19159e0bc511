package httpclient

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/jsamuelsen11/replicator/internal/platform/logging"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

// doWithRetry sends req up to attempts times, backing off exponentially
// between tries. The body is buffered so it can be replayed. The response is
// written through resp; the caller closes its body.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, attempts int, resp **http.Response) error {
	if attempts <= 0 {
		return fmt.Errorf("httpclient: attempts must be >= 1, got %d", attempts)
	}

	body, err := bufferRequestBody(req)
	if err != nil {
		return err
	}

	var lastErr error
	for attempt := range attempts {
		if attempt > 0 {
			if err := c.waitForRetry(ctx, req, attempt, attempts, lastErr); err != nil {
				return err
			}
		}

		resetRequestBody(req, body)

		r, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if !isRetryable(err) {
				return err
			}
			continue
		}

		if !isRetryableStatus(r.StatusCode) {
			*resp = r
			return nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.serviceName)
		if attempt == attempts-1 {
			*resp = r
			return lastErr
		}
		drainResponseBody(r)
	}

	return lastErr
}

func bufferRequestBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	_ = req.Body.Close()

	return b, nil
}

func resetRequestBody(req *http.Request, body []byte) {
	if body == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
}

// drainResponseBody discards the body so the connection can be reused.
func drainResponseBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

func (c *Client) waitForRetry(ctx context.Context, req *http.Request, attempt, attempts int, lastErr error) error {
	delay := backoff(attempt, c.retryCfg)

	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", attempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// backoff returns the delay before retry number attempt (1-indexed), capped
// at maxInterval and then jittered by ±25%.
func backoff(attempt int, cfg retryConfig) time.Duration {
	delay := float64(cfg.initialInterval) * math.Pow(cfg.multiplier, float64(attempt-1))
	delay = math.Min(delay, float64(cfg.maxInterval))

	jitter := delay * jitterFraction
	delay += jitter * (2*secureRandFloat64() - 1)

	return time.Duration(math.Max(delay, 0))
}

const (
	significandBits = 53
	uint64Bits      = 64
)

// secureRandFloat64 returns a random float64 in [0, 1).
func secureRandFloat64() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	return float64(binary.BigEndian.Uint64(b[:])>>(uint64Bits-significandBits)) / float64(uint64(1)<<significandBits)
}

// isRetryable reports whether a transport error may be retried. Cancellation
// and deadline expiry are final; everything else is retried.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus reports whether a status code may be retried: 429 and 5xx.
func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= http.StatusInternalServerError
}
