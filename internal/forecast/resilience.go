package forecast

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// retryConfig controls exponential backoff for outbound feed calls.
type retryConfig struct {
	maxRetries      int
	initialInterval time.Duration
	maxInterval     time.Duration
}

func defaultRetryConfig() retryConfig {
	return retryConfig{
		maxRetries:      3,
		initialInterval: 500 * time.Millisecond,
		maxInterval:     5 * time.Second,
	}
}

var (
	errRateLimited = errors.New("rate limited")
	errServerError = errors.New("server error")
	errUnexpected  = errors.New("unexpected status code")
	errCircuitOpen = errors.New("circuit breaker open")
)

func newCircuit(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})
}

// fetchResilient executes the request built by buildRequest with retries,
// exponential backoff, and a circuit breaker. Requests are rebuilt per
// attempt so bodies and contexts stay fresh.
func fetchResilient(
	ctx context.Context,
	client *http.Client,
	cfg retryConfig,
	cb *gobreaker.CircuitBreaker,
	buildRequest func() (*http.Request, error),
) (*http.Response, error) {
	if client == nil {
		return nil, errors.New("http client not configured")
	}

	var attempt int
	var lastErr error

	for {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		req, err := buildRequest()
		if err != nil {
			return nil, err
		}
		req = req.WithContext(ctx)

		result, err := cb.Execute(func() (interface{}, error) {
			resp, execErr := client.Do(req)
			if execErr != nil {
				return nil, execErr
			}
			switch {
			case resp.StatusCode == http.StatusTooManyRequests:
				resp.Body.Close()
				return nil, errRateLimited
			case resp.StatusCode >= 500:
				resp.Body.Close()
				return nil, errServerError
			case resp.StatusCode < 200 || resp.StatusCode >= 300:
				resp.Body.Close()
				return nil, fmt.Errorf("%w: %d", errUnexpected, resp.StatusCode)
			}
			return resp, nil
		})

		if err == nil {
			resp, ok := result.(*http.Response)
			if !ok {
				return nil, errors.New("unexpected result type from circuit breaker")
			}
			return resp, nil
		}

		// An open circuit means the feed is down; propagate immediately
		// instead of burning retries.
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", errCircuitOpen, err)
		}

		lastErr = err
		if attempt >= cfg.maxRetries {
			return nil, lastErr
		}

		delay := cfg.initialInterval * time.Duration(math.Pow(2, float64(attempt)))
		if cfg.maxInterval > 0 && delay > cfg.maxInterval {
			delay = cfg.maxInterval
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		attempt++
	}
}
