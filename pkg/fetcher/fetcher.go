package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// DefaultTimeout is the per-request inactivity budget. A request that
// exceeds it fails like any other transport error.
const DefaultTimeout = 30 * time.Second

// StatusError reports a non-2xx HTTP response. It is distinct from
// transport failures (timeouts, connection errors) which surface as
// wrapped client errors.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d for %s", e.StatusCode, e.URL)
}

// Fetcher performs single HTTP(S) GETs with a per-request timeout.
// Redirects, including relative ones, are followed by the underlying
// client.
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: DefaultTimeout},
	}
}

// SetRateLimit caps outgoing requests at rps per second, to stay
// polite toward shared mirrors. Zero or negative disables limiting.
func (f *Fetcher) SetRateLimit(rps float64) {
	if rps <= 0 {
		f.limiter = nil
		return
	}
	f.limiter = rate.NewLimiter(rate.Limit(rps), 1)
}

// GetText fetches the URL and returns the response body as text.
// Non-2xx responses yield a *StatusError.
func (f *Fetcher) GetText(url string) (string, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(context.Background()); err != nil {
			return "", fmt.Errorf("rate limiter: %w", err)
		}
	}

	resp, err := f.client.Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	return string(body), nil
}
