package places

import (
	"net/url"
	"strconv"

	"github.com/ternarybob/places/pkg/places/models"
)

// TextSearchOptions are the parameters of a text search.
//
// Location is required and must not be (0,0). At least one of Query and
// Type must be set.
type TextSearchOptions struct {
	Query    string
	Location models.Point `validate:"-"`

	// Radius in meters. Zero leaves it to the API.
	Radius int `validate:"gte=0,lte=50000"`

	Language string

	MinPrice models.PriceLevel `validate:"gte=0,lte=5"`
	MaxPrice models.PriceLevel `validate:"gte=0,lte=5"`

	Type      string
	PageToken string
}

// NewTextSearchOptions returns options for query. Location still has to be
// set before the options can be sent.
func NewTextSearchOptions(query string) *TextSearchOptions {
	return &TextSearchOptions{Query: query}
}

// NewTextSearchOptionsAt returns options for query around lat/lng.
func NewTextSearchOptionsAt(query string, lat, lng float64, radius int) *TextSearchOptions {
	return &TextSearchOptions{Query: query, Location: models.NewLocation(lat, lng), Radius: radius}
}

// NewTextSearchOptionsFromPoint returns options for query around location.
func NewTextSearchOptionsFromPoint(query string, location models.Point, radius int) *TextSearchOptions {
	return &TextSearchOptions{Query: query, Location: location, Radius: radius}
}

// Request implements RequestOptions.
func (o *TextSearchOptions) Request() (*Request, error) {
	if o.Location == nil {
		return nil, propertyNotSet("Location")
	}
	lat, lng := o.Location.Latitude(), o.Location.Longitude()
	if isUnsetLocation(lat, lng) {
		return nil, propertyNotSet("Location")
	}
	if err := checkCoordinates("Location", lat, lng); err != nil {
		return nil, err
	}
	if isBlank(o.Query) && isBlank(o.Type) {
		return nil, &ValidationError{Field: "Query", Reason: "query or type must be set", Err: ErrPropertyNotSet}
	}
	if err := validateStruct(o); err != nil {
		return nil, err
	}

	query := url.Values{}
	setIfNotBlank(query, "query", o.Query)
	query.Set("location", formatLocation(lat, lng))
	if o.Radius > 0 {
		query.Set("radius", strconv.Itoa(o.Radius))
	}
	setIfNotBlank(query, "language", o.Language)
	setPriceLevel(query, "minprice", o.MinPrice)
	setPriceLevel(query, "maxprice", o.MaxPrice)
	setIfNotBlank(query, "type", o.Type)
	setIfNotBlank(query, "pagetoken", o.PageToken)

	return &Request{Path: TextSearchPath, Query: query}, nil
}
