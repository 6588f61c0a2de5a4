package spotify

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"
)

const (
	defaultMaxRetries = 3
	defaultBackoffMs  = 500
)

// retryPolicy bounds attempts on 429 and 5xx responses.
type retryPolicy struct {
	maxRetries  int
	baseBackoff time.Duration
}

func retryPolicyFromEnv() retryPolicy {
	return retryPolicy{
		maxRetries:  envInt("SPOTIFY_MAX_RETRIES", defaultMaxRetries),
		baseBackoff: time.Duration(envInt("SPOTIFY_RETRY_BACKOFF_MS", defaultBackoffMs)) * time.Millisecond,
	}
}

func envInt(key string, fallback int) int {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
		log.Printf("WARN spotify adapter: ignoring %s=%q", key, raw)
	}
	return fallback
}

// delay is exponential in attempt unless the server asked for longer.
func (p retryPolicy) delay(attempt int, retryAfter time.Duration) time.Duration {
	if retryAfter > 0 {
		return retryAfter
	}
	base := p.baseBackoff
	if base <= 0 {
		base = time.Duration(defaultBackoffMs) * time.Millisecond
	}
	return base * time.Duration(1<<attempt)
}

func (p retryPolicy) attempts() int {
	if p.maxRetries <= 0 {
		return defaultMaxRetries
	}
	return p.maxRetries
}

// do sends a body-less request, retrying transient failures.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	limit := c.retry.attempts()

	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("spotify adapter: request canceled: %w", err)
		}

		resp, err := c.httpClient.Do(req)
		retryAfter, retry := shouldRetry(resp, err)
		if !retry {
			return resp, err
		}

		if err != nil {
			log.Printf("WARN spotify adapter: attempt %d/%d failed: %v", attempt+1, limit, err)
		} else {
			log.Printf("WARN spotify adapter: attempt %d/%d got status %d", attempt+1, limit, resp.StatusCode)
			_ = resp.Body.Close()
		}

		if attempt == limit-1 {
			if err != nil {
				return nil, fmt.Errorf("spotify adapter: request failed after %d attempts: %w", limit, err)
			}
			return nil, fmt.Errorf("spotify adapter: request failed after %d attempts: status %d", limit, resp.StatusCode)
		}

		if err := sleepWithContext(ctx, c.retry.delay(attempt, retryAfter)); err != nil {
			return nil, err
		}
	}
}

func shouldRetry(resp *http.Response, err error) (time.Duration, bool) {
	if err != nil {
		// The caller giving up is not transient.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return 0, false
		}
		return 0, true
	}
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
		return parseRetryAfter(resp.Header.Get("Retry-After")), true
	}
	return 0, false
}

// parseRetryAfter accepts delta-seconds or an HTTP date.
func parseRetryAfter(v string) time.Duration {
	if v == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	if when, err := http.ParseTime(v); err == nil {
		if until := time.Until(when); until > 0 {
			return until
		}
	}
	return 0
}

func sleepWithContext(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("spotify adapter: request canceled: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}
