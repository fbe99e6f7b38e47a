package places

import "net/url"

// DetailsOptions are the parameters of a place details request.
type DetailsOptions struct {
	// PlaceID is required.
	PlaceID string

	// Language of the returned results. Optional.
	Language string
}

// NewDetailsOptions returns options for the given place.
func NewDetailsOptions(placeID string) *DetailsOptions {
	return &DetailsOptions{PlaceID: placeID}
}

// Request implements RequestOptions.
func (o *DetailsOptions) Request() (*Request, error) {
	if isBlank(o.PlaceID) {
		return nil, propertyNotSet("PlaceID")
	}

	query := url.Values{}
	query.Set("placeid", o.PlaceID)
	setIfNotBlank(query, "language", o.Language)

	return &Request{Path: DetailsPath, Query: query}, nil
}
