package places

import (
	"context"

	"github.com/ternarybob/places/pkg/places/models"
)

// Service is the typed layer over Client. Every method either returns a
// fully parsed response or an error; a non-200 HTTP status surfaces as
// *HTTPError before any body is parsed. An endpoint status other than OK
// (ZERO_RESULTS, OVER_QUERY_LIMIT, ...) is not an error: check Body.Status.
type Service struct {
	client *Client
}

// NewService creates a Service over client.
func NewService(client *Client) *Service {
	return &Service{client: client}
}

// Client returns the underlying raw client.
func (s *Service) Client() *Client {
	return s.client
}

// GetDetails gets details about the place with the given ID.
func (s *Service) GetDetails(ctx context.Context, placeID string) (*DetailsResponse, error) {
	resp, err := s.client.GetDetails(ctx, placeID)
	if err != nil {
		return nil, err
	}
	return newDetailsResponse(resp)
}

// GetDetailsWithOptions gets place details as described by options.
func (s *Service) GetDetailsWithOptions(ctx context.Context, options *DetailsOptions) (*DetailsResponse, error) {
	resp, err := s.client.GetDetailsWithOptions(ctx, options)
	if err != nil {
		return nil, err
	}
	return newDetailsResponse(resp)
}

// NearbySearch searches for places within radius meters of lat/lng.
func (s *Service) NearbySearch(ctx context.Context, lat, lng float64, radius int) (*NearbySearchResponse, error) {
	resp, err := s.client.NearbySearch(ctx, lat, lng, radius)
	if err != nil {
		return nil, err
	}
	return newNearbySearchResponse(resp)
}

// NearbySearchPoint searches for places within radius meters of location.
func (s *Service) NearbySearchPoint(ctx context.Context, location models.Point, radius int) (*NearbySearchResponse, error) {
	resp, err := s.client.NearbySearchPoint(ctx, location, radius)
	if err != nil {
		return nil, err
	}
	return newNearbySearchResponse(resp)
}

// NearbySearchPage gets the page of a previous nearby search identified by pageToken.
func (s *Service) NearbySearchPage(ctx context.Context, pageToken string) (*NearbySearchResponse, error) {
	resp, err := s.client.NearbySearchPage(ctx, pageToken)
	if err != nil {
		return nil, err
	}
	return newNearbySearchResponse(resp)
}

// NearbySearchWithOptions performs a nearby search described by options.
func (s *Service) NearbySearchWithOptions(ctx context.Context, options *NearbySearchOptions) (*NearbySearchResponse, error) {
	resp, err := s.client.NearbySearchWithOptions(ctx, options)
	if err != nil {
		return nil, err
	}
	return newNearbySearchResponse(resp)
}

// TextSearch searches for query. See Client.TextSearch.
func (s *Service) TextSearch(ctx context.Context, query string) (*TextSearchResponse, error) {
	resp, err := s.client.TextSearch(ctx, query)
	if err != nil {
		return nil, err
	}
	return newTextSearchResponse(resp)
}

// TextSearchAt searches for query within radius meters of lat/lng.
func (s *Service) TextSearchAt(ctx context.Context, query string, lat, lng float64, radius int) (*TextSearchResponse, error) {
	resp, err := s.client.TextSearchAt(ctx, query, lat, lng, radius)
	if err != nil {
		return nil, err
	}
	return newTextSearchResponse(resp)
}

// TextSearchPoint searches for query within radius meters of location.
func (s *Service) TextSearchPoint(ctx context.Context, query string, location models.Point, radius int) (*TextSearchResponse, error) {
	resp, err := s.client.TextSearchPoint(ctx, query, location, radius)
	if err != nil {
		return nil, err
	}
	return newTextSearchResponse(resp)
}

// TextSearchWithOptions performs a text search described by options.
func (s *Service) TextSearchWithOptions(ctx context.Context, options *TextSearchOptions) (*TextSearchResponse, error) {
	resp, err := s.client.TextSearchWithOptions(ctx, options)
	if err != nil {
		return nil, err
	}
	return newTextSearchResponse(resp)
}
