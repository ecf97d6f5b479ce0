package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client downloads dataset containers over HTTP with bounded retries.
type Client struct {
	httpClient       *http.Client
	retryMaxAttempts int
	retryBaseDelay   time.Duration
	retryMaxDelay    time.Duration
}

// NewClient allows customizing HTTP timeout and retry/backoff behavior.
// Non-positive values fall back to defaults.
func NewClient(httpTimeout time.Duration, retryMax int, baseDelay, maxDelay time.Duration) *Client {
	if httpTimeout <= 0 {
		httpTimeout = 60 * time.Second
	}
	if retryMax <= 0 {
		retryMax = 3
	}
	if baseDelay <= 0 {
		baseDelay = 500 * time.Millisecond
	}
	if maxDelay <= 0 {
		maxDelay = 4 * time.Second
	}
	return &Client{
		httpClient:       &http.Client{Timeout: httpTimeout},
		retryMaxAttempts: retryMax,
		retryBaseDelay:   baseDelay,
		retryMaxDelay:    maxDelay,
	}
}

// Download fetches the container at rawURL and returns its bytes.
// 429 and 5xx responses and transient network errors are retried with
// exponential backoff; a Retry-After header is honored when present.
func (c *Client) Download(ctx context.Context, rawURL string) ([]byte, error) {
	if _, err := url.ParseRequestURI(rawURL); err != nil {
		return nil, fmt.Errorf("invalid dataset URL: %w", err)
	}
	maxAttempts := c.retryMaxAttempts
	backoff := c.retryBaseDelay

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		httpReq.Header.Set("User-Agent", "scfetch")

		resp, err := c.httpClient.Do(httpReq)
		if err != nil {
			if isRetryableNetErr(err) && attempt < maxAttempts {
				lastErr = err
				time.Sleep(backoff)
				backoff *= 2
				continue
			}
			return nil, &UnreachableError{URL: rawURL, Err: err}
		}

		body, retryable, err := c.readResponse(resp, rawURL)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !retryable || attempt >= maxAttempts {
			break
		}
		// Retry-After takes precedence over our own backoff schedule.
		var rle *RateLimitError
		if errors.As(err, &rle) && rle.RetryAfter > 0 {
			time.Sleep(rle.RetryAfter)
			continue
		}
		sleep := withJitter(backoff)
		if c.retryMaxDelay > 0 && sleep > c.retryMaxDelay {
			sleep = c.retryMaxDelay
		}
		time.Sleep(sleep)
		backoff *= 2
	}
	return nil, lastErr
}

// readResponse consumes one HTTP response, returning the payload on success
// or a classified error plus whether a retry is worthwhile.
func (c *Client) readResponse(resp *http.Response, rawURL string) (body []byte, retryable bool, err error) {
	defer resp.Body.Close()
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		b, rerr := io.ReadAll(resp.Body)
		if rerr != nil {
			return nil, true, fmt.Errorf("read response body: %w", rerr)
		}
		return b, false, nil
	}
	httpErr := &HTTPError{StatusCode: resp.StatusCode, URL: rawURL}
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		var ra time.Duration
		if v := resp.Header.Get("Retry-After"); v != "" {
			if secs, perr := parseRetryAfterSeconds(v); perr == nil && secs > 0 {
				ra = time.Duration(secs) * time.Second
			}
		}
		return nil, true, &RateLimitError{HTTPError: httpErr, RetryAfter: ra}
	case resp.StatusCode == http.StatusNotFound:
		return nil, false, &NotFoundError{HTTPError: httpErr}
	case resp.StatusCode >= 500 && resp.StatusCode <= 599:
		return nil, true, &ServerError{HTTPError: httpErr}
	default:
		return nil, false, httpErr
	}
}

func isRetryableNetErr(err error) bool {
	var nerr net.Error
	if errors.As(err, &nerr) {
		if nerr.Timeout() {
			return true
		}
	}
	if errors.Is(err, io.EOF) {
		return true
	}
	return false
}

// parseRetryAfterSeconds interprets a Retry-After value as seconds or HTTP date.
func parseRetryAfterSeconds(v string) (int, error) {
	if s, err := strconv.Atoi(v); err == nil {
		return s, nil
	}
	if t, err := http.ParseTime(v); err == nil {
		d := time.Until(t)
		if d < 0 {
			d = 0
		}
		return int(d.Seconds()), nil
	}
	return 0, fmt.Errorf("invalid Retry-After: %q", v)
}

// withJitter returns a backoff duration with +/- 20% jitter applied.
func withJitter(d time.Duration) time.Duration {
	if d <= 0 {
		return 500 * time.Millisecond
	}
	f := 0.8 + rand.Float64()*0.4
	out := time.Duration(float64(d) * f)
	if out <= 0 {
		return d
	}
	return out
}
