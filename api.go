package shophub

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultRequestTimeout = 10 * time.Second

// Client talks to the shophub catalog API.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	logger  *zap.Logger
}

// NewClient creates a Client for the API at baseURL
// (for example "http://localhost:5000").
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("shophub: base URL required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("shophub: invalid base URL: %w", err)
	}

	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		timeout: defaultRequestTimeout,
		logger:  zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// Products lists products matching the query.
func (c *Client) Products(ctx context.Context, q Query) ([]Product, error) {
	params := url.Values{}
	if q.Category != "" {
		params.Set("category", q.Category)
	}
	if q.MinPrice != nil {
		params.Set("minPrice", strconv.FormatFloat(*q.MinPrice, 'f', -1, 64))
	}
	if q.MaxPrice != nil {
		params.Set("maxPrice", strconv.FormatFloat(*q.MaxPrice, 'f', -1, 64))
	}
	if q.Sort != "" {
		params.Set("sort", q.Sort)
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}

	var products []Product
	if err := c.get(ctx, "/api/products", params, &products); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// Product fetches a single product by ID. A missing product returns
// ErrNotFound.
func (c *Client) Product(ctx context.Context, id string) (Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Product{}, fmt.Errorf("get product: %w: product ID required", ErrInvalidQuery)
	}

	var p Product
	if err := c.get(ctx, "/api/products/"+url.PathEscape(id), nil, &p); err != nil {
		return Product{}, fmt.Errorf("get product %s: %w", id, err)
	}
	return p, nil
}

// Suggest returns up to five autosuggest hits for the term, best rated
// first. An empty term returns ErrInvalidQuery without a network call.
func (c *Client) Suggest(ctx context.Context, term string) ([]Suggestion, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, fmt.Errorf("suggest: %w: search term required", ErrInvalidQuery)
	}

	params := url.Values{}
	params.Set("q", term)

	var suggestions []Suggestion
	if err := c.get(ctx, "/api/search", params, &suggestions); err != nil {
		return nil, fmt.Errorf("suggest %q: %w", term, err)
	}
	return suggestions, nil
}

// envelope is the API response wrapper. Data stays raw until the status is
// known, so error bodies never get decoded as payloads.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("request failed", zap.String("url", u), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("%w: read response: %w", ErrUnavailable, err)
	}

	var env envelope
	if jerr := json.Unmarshal(body, &env); jerr != nil && resp.StatusCode < 400 {
		return fmt.Errorf("decode response: %w", jerr)
	}

	if resp.StatusCode >= 400 || !env.Success {
		return apiError(resp.StatusCode, env.Message)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode payload: %w", err)
		}
	}
	return nil
}

// apiError maps an HTTP status onto the SDK sentinel errors, keeping the
// server message when there is one.
func apiError(status int, message string) error {
	var sentinel error
	switch {
	case status == http.StatusNotFound:
		sentinel = ErrNotFound
	case status >= 400 && status < 500:
		sentinel = ErrInvalidQuery
	default:
		sentinel = ErrUnavailable
	}

	if message == "" {
		return fmt.Errorf("%w (status %d)", sentinel, status)
	}
	return fmt.Errorf("%w: %s", sentinel, message)
}
