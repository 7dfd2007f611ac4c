package api

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/qyinm/nearby/types"
)

const userAgent = "nearby-tui/1.0"

// StatusError is returned for any non-2xx API response
type StatusError struct {
	Code int
	Path string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d for %s", e.Code, e.Path)
}

// Client implements types.MarketSource over the places REST API.
type Client struct {
	baseURL string
	client  *http.Client
	log     *slog.Logger
}

// Compile-time interface check
var _ types.MarketSource = (*Client)(nil)

// New creates a Client for baseURL. A non-positive timeout falls back to 10s.
func New(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

// GetCategories fetches GET /categories.
func (c *Client) GetCategories(ctx context.Context) ([]types.Category, error) {
	body, err := c.get(ctx, "/categories")
	if err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}
	defer body.Close()

	categories, err := ParseCategories(body)
	if err != nil {
		return nil, fmt.Errorf("parse categories: %w", err)
	}
	return categories, nil
}

// GetMarketsByCategory fetches GET /markets/category/{categoryID}.
func (c *Client) GetMarketsByCategory(ctx context.Context, categoryID string) ([]types.Place, error) {
	body, err := c.get(ctx, "/markets/category/"+url.PathEscape(categoryID))
	if err != nil {
		return nil, fmt.Errorf("fetch markets: %w", err)
	}
	defer body.Close()

	markets, err := ParseMarkets(body)
	if err != nil {
		return nil, fmt.Errorf("parse markets: %w", err)
	}
	return markets, nil
}

// GetMarket fetches GET /markets/{id}.
func (c *Client) GetMarket(ctx context.Context, id string) (*types.PlaceDetail, error) {
	body, err := c.get(ctx, "/markets/"+url.PathEscape(id))
	if err != nil {
		return nil, fmt.Errorf("fetch market: %w", err)
	}
	defer body.Close()

	detail, err := ParseMarket(body)
	if err != nil {
		return nil, fmt.Errorf("parse market: %w", err)
	}
	return detail, nil
}

// get performs GET baseURL+path and returns the body of a 2xx response.
func (c *Client) get(ctx context.Context, path string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-Id", requestID)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Warn("api request failed", "path", path, "request_id", requestID, "error", err)
		return nil, err
	}

	c.log.Debug("api request",
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, &StatusError{Code: resp.StatusCode, Path: path}
	}
	return resp.Body, nil
}
