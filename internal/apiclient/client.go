// Package apiclient talks to the location and name-validity endpoints over
// HTTP. *Client satisfies form.LocationSource and form.NameChecker.
package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vcrobe/userform/internal/form"
)

const (
	locationsPath    = "/api/locations"
	nameValidityPath = "/api/names/validity"
	requestIDHeader  = "X-Request-ID"
)

var (
	_ form.LocationSource = (*Client)(nil)
	_ form.NameChecker    = (*Client)(nil)
)

// ErrUnexpectedStatus is wrapped by every non-2xx response error.
var ErrUnexpectedStatus = errors.New("apiclient: unexpected status")

// Client is an HTTP client for the collaborator API.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.SugaredLogger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(c *Client) { c.log = log }
}

// New returns a Client for the API rooted at baseURL (scheme and host,
// optionally a path prefix).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		log:     zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type locationsResponse struct {
	Locations []string `json:"locations"`
}

type nameValidityResponse struct {
	Name  string `json:"name"`
	Valid bool   `json:"valid"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// GetLocations returns the selectable locations in service order.
func (c *Client) GetLocations(ctx context.Context) ([]string, error) {
	var resp locationsResponse
	if err := c.get(ctx, locationsPath, nil, &resp); err != nil {
		return nil, fmt.Errorf("get locations: %w", err)
	}
	return resp.Locations, nil
}

// IsNameValid reports whether name is still available.
func (c *Client) IsNameValid(ctx context.Context, name string) (bool, error) {
	var resp nameValidityResponse
	q := url.Values{"name": {name}}
	if err := c.get(ctx, nameValidityPath, q, &resp); err != nil {
		return false, fmt.Errorf("check name: %w", err)
	}
	return resp.Valid, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	reqID := uuid.NewString()
	req.Header.Set(requestIDHeader, reqID)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		c.log.Warnw("api request failed", "path", path, "request_id", reqID, "error", err)
		return err
	}
	defer res.Body.Close()

	c.log.Debugw("api request",
		"path", path,
		"status", res.StatusCode,
		"duration_ms", float64(time.Since(start).Microseconds())/1000.0,
		"request_id", reqID,
	)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return statusError(res)
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func statusError(res *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(res.Body, 4<<10))
	var er errorResponse
	if json.Unmarshal(body, &er) == nil && er.Error.Message != "" {
		return fmt.Errorf("%w %d: %s: %s", ErrUnexpectedStatus, res.StatusCode, er.Error.Code, er.Error.Message)
	}
	return fmt.Errorf("%w %d", ErrUnexpectedStatus, res.StatusCode)
}
