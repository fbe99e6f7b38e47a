package places

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/ternarybob/places/pkg/places/models"
)

// NearbySearchOptions are the parameters of a nearby search.
//
// A location other than (0,0) is required unless PageToken is set. When
// PageToken is set every other field is ignored and only the token is sent,
// since the API does not define combining a token with other parameters.
type NearbySearchOptions struct {
	Latitude  float64 `validate:"gte=-90,lte=90"`
	Longitude float64 `validate:"gte=-180,lte=180"`

	// Radius in meters. Zero leaves it to the API.
	Radius int `validate:"gte=0,lte=50000"`

	Keyword  string
	Language string

	MinPrice models.PriceLevel `validate:"gte=0,lte=5"`
	MaxPrice models.PriceLevel `validate:"gte=0,lte=5"`

	Name string

	// RankBy is always sent; the zero value is RankByProminence.
	RankBy models.RankBy

	Type      string
	PageToken string
	Fields    []string
}

// NewNearbySearchOptions returns options centred on lat/lng.
func NewNearbySearchOptions(lat, lng float64, radius int) *NearbySearchOptions {
	return &NearbySearchOptions{Latitude: lat, Longitude: lng, Radius: radius}
}

// NewNearbySearchOptionsFromPoint returns options centred on location.
// A nil location leaves the coordinates unset.
func NewNearbySearchOptionsFromPoint(location models.Point, radius int) *NearbySearchOptions {
	o := &NearbySearchOptions{Radius: radius}
	if location != nil {
		o.Latitude = location.Latitude()
		o.Longitude = location.Longitude()
	}
	return o
}

// NewNearbySearchPageOptions returns options requesting the page identified by pageToken.
func NewNearbySearchPageOptions(pageToken string) *NearbySearchOptions {
	return &NearbySearchOptions{PageToken: pageToken}
}

// Request implements RequestOptions.
func (o *NearbySearchOptions) Request() (*Request, error) {
	query := url.Values{}

	if !isBlank(o.PageToken) {
		query.Set("pagetoken", o.PageToken)
		return &Request{Path: NearbySearchPath, Query: query}, nil
	}

	if isUnsetLocation(o.Latitude, o.Longitude) {
		return nil, propertyNotSet("Latitude")
	}
	if err := validateStruct(o); err != nil {
		return nil, err
	}

	query.Set("location", formatLocation(o.Latitude, o.Longitude))
	if o.Radius > 0 {
		query.Set("radius", strconv.Itoa(o.Radius))
	}
	setIfNotBlank(query, "keyword", o.Keyword)
	setIfNotBlank(query, "language", o.Language)
	setPriceLevel(query, "minprice", o.MinPrice)
	setPriceLevel(query, "maxprice", o.MaxPrice)
	setIfNotBlank(query, "name", o.Name)
	query.Set("rankby", o.RankBy.String())
	setIfNotBlank(query, "type", o.Type)

	fields := make([]string, 0, len(o.Fields))
	for _, f := range o.Fields {
		if !isBlank(f) {
			fields = append(fields, strings.TrimSpace(f))
		}
	}
	if len(fields) > 0 {
		query.Set("fields", strings.Join(fields, ","))
	}

	return &Request{Path: NearbySearchPath, Query: query}, nil
}
