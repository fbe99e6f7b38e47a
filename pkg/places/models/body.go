package models

import (
	"strings"

	"github.com/tidwall/gjson"
)

// DetailsResponseBody is the body of a successful details request.
type DetailsResponseBody struct {
	Status           ResponseStatusCode `json:"status"`
	ErrorMessage     string             `json:"error_message,omitempty"`
	HTMLAttributions []string           `json:"html_attributions"`
	Result           *PlaceDetails      `json:"result,omitempty"`
}

// SearchResponseBody is shared by the nearby and text search endpoints.
//
// Status must be checked explicitly: a non-OK status does not guarantee an
// empty Results slice, and an empty slice does not imply ZERO_RESULTS.
type SearchResponseBody struct {
	Status           ResponseStatusCode `json:"status"`
	ErrorMessage     string             `json:"error_message,omitempty"`
	HTMLAttributions []string           `json:"html_attributions"`
	Results          []*PlaceDetails    `json:"results"`
	NextPageToken    string             `json:"next_page_token,omitempty"`
}

// HasNextPageToken reports whether another page can be requested.
func (b *SearchResponseBody) HasNextPageToken() bool {
	return strings.TrimSpace(b.NextPageToken) != ""
}

// NearbySearchResponseBody is the body of a successful nearby search.
type NearbySearchResponseBody struct {
	SearchResponseBody
}

// TextSearchResponseBody is the body of a successful text search.
type TextSearchResponseBody struct {
	SearchResponseBody
}

// ParseDetailsResponseBody parses the JSON body of a details response.
func ParseDetailsResponseBody(data []byte) (*DetailsResponseBody, error) {
	root, err := parseRoot(data)
	if err != nil {
		return nil, err
	}
	return &DetailsResponseBody{
		Status:           ParseResponseStatusCode(root.Get("status").String()),
		ErrorMessage:     root.Get("error_message").String(),
		HTMLAttributions: getStringArray(root, "html_attributions"),
		Result:           getObject(root, "result", ParsePlaceDetails),
	}, nil
}

// ParseNearbySearchResponseBody parses the JSON body of a nearby search response.
func ParseNearbySearchResponseBody(data []byte) (*NearbySearchResponseBody, error) {
	root, err := parseRoot(data)
	if err != nil {
		return nil, err
	}
	return &NearbySearchResponseBody{SearchResponseBody: parseSearchBody(root)}, nil
}

// ParseTextSearchResponseBody parses the JSON body of a text search response.
func ParseTextSearchResponseBody(data []byte) (*TextSearchResponseBody, error) {
	root, err := parseRoot(data)
	if err != nil {
		return nil, err
	}
	return &TextSearchResponseBody{SearchResponseBody: parseSearchBody(root)}, nil
}

func parseSearchBody(root gjson.Result) SearchResponseBody {
	return SearchResponseBody{
		Status:           ParseResponseStatusCode(root.Get("status").String()),
		ErrorMessage:     root.Get("error_message").String(),
		HTMLAttributions: getStringArray(root, "html_attributions"),
		Results:          getObjectArray(root, "results", ParsePlaceDetails),
		NextPageToken:    root.Get("next_page_token").String(),
	}
}
