package places

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/ternarybob/places/pkg/places/models"
)

// Response is the raw result of a request.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	URL        string // API key redacted
	RequestID  string
	Duration   time.Duration
}

// BodyString returns the body as text.
func (r *Response) BodyString() string {
	return string(r.Body)
}

// DetailsResponse couples the raw response with its parsed body. The
// embedded Response.Body (raw bytes) is shadowed by the typed Body.
type DetailsResponse struct {
	*Response
	Body *models.DetailsResponseBody
}

// NearbySearchResponse couples the raw response with its parsed body.
type NearbySearchResponse struct {
	*Response
	Body *models.NearbySearchResponseBody
}

// TextSearchResponse couples the raw response with its parsed body.
type TextSearchResponse struct {
	*Response
	Body *models.TextSearchResponseBody
}

// checkResponse returns an *HTTPError for anything but 200 OK.
func checkResponse(resp *Response) error {
	if resp.StatusCode == http.StatusOK {
		return nil
	}

	httpErr := &HTTPError{
		Response:   resp,
		StatusCode: resp.StatusCode,
	}

	// TODO: parse the "errors" array of the envelope into HTTPError
	if envelope := gjson.GetBytes(resp.Body, "error"); envelope.IsObject() {
		httpErr.Code = int(envelope.Get("code").Int())
		httpErr.Message = envelope.Get("message").String()
	}
	if httpErr.Message == "" {
		httpErr.Message = strings.TrimSpace(resp.BodyString())
	}
	if httpErr.Message == "" {
		httpErr.Message = http.StatusText(resp.StatusCode)
	}

	return httpErr
}

func newDetailsResponse(resp *Response) (*DetailsResponse, error) {
	if err := checkResponse(resp); err != nil {
		return nil, err
	}
	body, err := models.ParseDetailsResponseBody(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode details response: %w", err)
	}
	return &DetailsResponse{Response: resp, Body: body}, nil
}

func newNearbySearchResponse(resp *Response) (*NearbySearchResponse, error) {
	if err := checkResponse(resp); err != nil {
		return nil, err
	}
	body, err := models.ParseNearbySearchResponseBody(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode nearby search response: %w", err)
	}
	return &NearbySearchResponse{Response: resp, Body: body}, nil
}

func newTextSearchResponse(resp *Response) (*TextSearchResponse, error) {
	if err := checkResponse(resp); err != nil {
		return nil, err
	}
	body, err := models.ParseTextSearchResponseBody(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode text search response: %w", err)
	}
	return &TextSearchResponse{Response: resp, Body: body}, nil
}
