// Package places is a typed client for the legacy Google Places web API
// (details, nearby search and text search).
//
// Client performs raw requests and returns the unparsed *Response. Service
// wraps a Client, turns non-200 responses into *HTTPError and parses
// successful bodies into the types in the models package. Neither adds
// authentication, retries, caching or rate limiting; supply an
// authenticated *http.Client (for example one built with golang.org/x/oauth2)
// through WithHTTPClient.
package places

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/places/pkg/places/models"
)

const (
	// DefaultBaseURL is the base URL of the legacy Places API.
	DefaultBaseURL = "https://maps.googleapis.com/maps/api/place/"

	// DefaultTimeout is the timeout of the HTTP client created when none is supplied.
	DefaultTimeout = 30 * time.Second
)

// HTTPDoer is the transport used to send requests. *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a raw Google Places API client.
type Client struct {
	baseURL    string
	apiKey     string
	language   string
	httpClient HTTPDoer
	logger     arbor.ILogger
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/") + "/"
	}
}

// WithHTTPClient sets the transport. A nil doer is ignored.
func WithHTTPClient(httpClient HTTPDoer) ClientOption {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithLogger sets a logger.
func WithLogger(logger arbor.ILogger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithAPIKey sends key with every request.
func WithAPIKey(key string) ClientOption {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithLanguage sets the language used when an options value leaves Language blank.
func WithLanguage(language string) ClientOption {
	return func(c *Client) {
		c.language = language
	}
}

// NewClient creates a new Google Places API client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BaseURL returns the base URL requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do validates options, sends the GET request and returns the raw response.
// A non-200 status is not an error at this level.
func (c *Client) Do(ctx context.Context, options RequestOptions) (*Response, error) {
	if options == nil {
		return nil, ErrNilOptions
	}

	req, err := options.Request()
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	for k, v := range req.Query {
		params[k] = append([]string(nil), v...)
	}
	if c.language != "" && params.Get("language") == "" && params.Get("pagetoken") == "" {
		params.Set("language", c.language)
	}

	// Redact API key in logs
	logURL := c.baseURL + req.Path + "?" + params.Encode()
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
		logURL += "&key=***REDACTED***"
	}
	reqURL := c.baseURL + req.Path + "?" + params.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	requestID := uuid.NewString()
	if c.logger != nil {
		c.logger.Debug().
			Str("request_id", requestID).
			Str("url", logURL).
			Msg("Google Places API request")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	elapsed := time.Since(start)

	if c.logger != nil {
		c.logger.Debug().
			Str("request_id", requestID).
			Str("path", req.Path).
			Int("status", resp.StatusCode).
			Int("bytes", len(body)).
			Dur("duration", elapsed).
			Msg("Google Places API response")
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
		URL:        logURL,
		RequestID:  requestID,
		Duration:   elapsed,
	}, nil
}

// GetDetails gets details about the place with the given ID.
func (c *Client) GetDetails(ctx context.Context, placeID string) (*Response, error) {
	if isBlank(placeID) {
		return nil, propertyNotSet("placeID")
	}
	return c.Do(ctx, NewDetailsOptions(placeID))
}

// GetDetailsWithOptions gets place details as described by options.
func (c *Client) GetDetailsWithOptions(ctx context.Context, options *DetailsOptions) (*Response, error) {
	if options == nil {
		return nil, ErrNilOptions
	}
	return c.Do(ctx, options)
}

// NearbySearch searches for places within radius meters of lat/lng.
func (c *Client) NearbySearch(ctx context.Context, lat, lng float64, radius int) (*Response, error) {
	return c.Do(ctx, NewNearbySearchOptions(lat, lng, radius))
}

// NearbySearchPoint searches for places within radius meters of location.
func (c *Client) NearbySearchPoint(ctx context.Context, location models.Point, radius int) (*Response, error) {
	if location == nil {
		return nil, propertyNotSet("location")
	}
	return c.Do(ctx, NewNearbySearchOptionsFromPoint(location, radius))
}

// NearbySearchPage gets the page of a previous nearby search identified by pageToken.
func (c *Client) NearbySearchPage(ctx context.Context, pageToken string) (*Response, error) {
	if isBlank(pageToken) {
		return nil, propertyNotSet("pageToken")
	}
	return c.Do(ctx, NewNearbySearchPageOptions(pageToken))
}

// NearbySearchWithOptions performs a nearby search described by options.
func (c *Client) NearbySearchWithOptions(ctx context.Context, options *NearbySearchOptions) (*Response, error) {
	if options == nil {
		return nil, ErrNilOptions
	}
	return c.Do(ctx, options)
}

// TextSearch searches for query. The API requires a location, so this only
// succeeds once one is configured; use TextSearchAt or TextSearchPoint.
func (c *Client) TextSearch(ctx context.Context, query string) (*Response, error) {
	if isBlank(query) {
		return nil, propertyNotSet("query")
	}
	return c.Do(ctx, NewTextSearchOptions(query))
}

// TextSearchAt searches for query within radius meters of lat/lng.
func (c *Client) TextSearchAt(ctx context.Context, query string, lat, lng float64, radius int) (*Response, error) {
	return c.Do(ctx, NewTextSearchOptionsAt(query, lat, lng, radius))
}

// TextSearchPoint searches for query within radius meters of location.
func (c *Client) TextSearchPoint(ctx context.Context, query string, location models.Point, radius int) (*Response, error) {
	if location == nil {
		return nil, propertyNotSet("location")
	}
	return c.Do(ctx, NewTextSearchOptionsFromPoint(query, location, radius))
}

// TextSearchWithOptions performs a text search described by options.
func (c *Client) TextSearchWithOptions(ctx context.Context, options *TextSearchOptions) (*Response, error) {
	if options == nil {
		return nil, ErrNilOptions
	}
	return c.Do(ctx, options)
}
