package flyer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/kagiso-dev/flyer-deals/internal/catalog"
	"github.com/kagiso-dev/flyer-deals/internal/metrics"
	domain "github.com/kagiso-dev/flyer-deals/pkg/types"
)

const maxErrorBody = 512

// HTTPClient implements CatalogClient against the OCR service's HTTP API.
type HTTPClient struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// HTTPOption configures the HTTPClient.
type HTTPOption func(*HTTPClient)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) HTTPOption {
	return func(c *HTTPClient) {
		c.client = hc
	}
}

// WithRateLimit applies a token-bucket limit to outgoing fetches so catalog
// refreshes stay polite toward the OCR service.
func WithRateLimit(perSecond float64, burst int) HTTPOption {
	return func(c *HTTPClient) {
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// NewHTTPClient creates a catalog client targeting the given base URL.
func NewHTTPClient(baseURL string, opts ...HTTPOption) *HTTPClient {
	c := &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchAll performs the initial bulk catalog fetch.
func (c *HTTPClient) FetchAll(ctx context.Context) ([]domain.Deal, error) {
	var resp dealsResponse
	if err := c.get(ctx, "/api/deals", &resp); err != nil {
		return nil, fmt.Errorf("fetching deals: %w", err)
	}
	return toDeals(resp.Deals), nil
}

// FetchEvents returns incremental catalog notifications after the cursor.
// An empty cursor starts from the service's current position.
func (c *HTTPClient) FetchEvents(
	ctx context.Context,
	cursor string,
) ([]catalog.Event, string, error) {
	path := "/api/deals/events"
	if cursor != "" {
		path += "?cursor=" + url.QueryEscape(cursor)
	}

	var resp eventsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, "", fmt.Errorf("fetching deal events: %w", err)
	}
	return toEvents(resp.Events), resp.Cursor, nil
}

func (c *HTTPClient) get(ctx context.Context, path string, dst any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter wait: %w", err)
		}
	}
	metrics.CatalogFetchesTotal.Inc()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.CatalogFetchErrorsTotal.Inc()
		return fmt.Errorf("performing request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	if resp.StatusCode != http.StatusOK {
		metrics.CatalogFetchErrorsTotal.Inc()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("catalog service returned %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		metrics.CatalogFetchErrorsTotal.Inc()
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
