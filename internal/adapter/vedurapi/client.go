// Package vedurapi fetches XML feeds from the Icelandic Met Office.
package vedurapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/halldorv/vedurvakt/internal/domain"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// maxBodyBytes caps feed responses; vedur.is documents are a few KB.
const maxBodyBytes = 4 << 20

// Client fetches raw feed bodies over HTTP. A single circuit breaker
// guards all vedur.is endpoints since they share one upstream.
type Client struct {
	httpClient *http.Client
	circuit    *gobreaker.CircuitBreaker
	userAgent  string
	logger     *slog.Logger
}

// NewClient creates a feed client. The timeout bounds each request on
// top of whatever deadline the caller's context carries.
func NewClient(timeout time.Duration, logger *slog.Logger) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "vedurapi",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		circuit:   cb,
		userAgent: "vedurvakt/1.0",
		logger:    logger,
	}
}

// Fetch performs a single GET with no retries. Failed upstream calls
// trip the breaker; while it is open every Fetch fails fast.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	body, err := c.circuit.Execute(func() (any, error) {
		return c.doGet(ctx, url)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: circuit open for %s", domain.ErrFetchFailed, url)
		}
		return nil, err
	}
	return body.([]byte), nil
}

func (c *Client) doGet(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", domain.ErrFetchFailed, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/xml, text/xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrTimeout, url, err)
		}
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrFetchFailed, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, fmt.Errorf("%w: %s: status %d", domain.ErrFetchFailed, url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s: read body: %v", domain.ErrTimeout, url, err)
		}
		return nil, fmt.Errorf("%w: %s: read body: %v", domain.ErrFetchFailed, url, err)
	}
	return body, nil
}
