package places

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ternarybob/places/pkg/places/models"
)

const (
	// DetailsPath is the place details endpoint, relative to the base URL.
	DetailsPath = "details/json"

	// NearbySearchPath is the nearby search endpoint, relative to the base URL.
	NearbySearchPath = "nearbysearch/json"

	// TextSearchPath is the text search endpoint, relative to the base URL.
	TextSearchPath = "textsearch/json"

	// MaxRadius is the largest search radius, in meters, accepted by the API.
	MaxRadius = 50000
)

// Request is a validated, serialized endpoint call: a path relative to the
// client's base URL and the query parameters to send.
type Request struct {
	Path  string
	Query url.Values
}

// RequestOptions is implemented by every endpoint options type. Request
// validates the options and serializes them; it is the only point where
// required fields are checked.
type RequestOptions interface {
	Request() (*Request, error)
}

var validate = validator.New()

// validateStruct runs the struct tag rules and converts the first failure
// into a *ValidationError.
func validateStruct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return outOfRange(fe.Field(), fmt.Sprintf("%v violates %s=%s", fe.Value(), fe.Tag(), fe.Param()))
	}
	return fmt.Errorf("failed to validate options: %w", err)
}

// isUnsetLocation treats exactly (0,0) as "no location". The point lies in
// the Gulf of Guinea and is never a meaningful search origin.
func isUnsetLocation(lat, lng float64) bool {
	return lat == 0 && lng == 0
}

func checkCoordinates(field string, lat, lng float64) error {
	if lat < -90 || lat > 90 {
		return outOfRange(field, fmt.Sprintf("latitude %v outside [-90, 90]", lat))
	}
	if lng < -180 || lng > 180 {
		return outOfRange(field, fmt.Sprintf("longitude %v outside [-180, 180]", lng))
	}
	return nil
}

// formatLocation renders "lat,lng" with a period decimal point and no
// exponent or grouping, independent of any locale.
func formatLocation(lat, lng float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lng, 'f', -1, 64)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func setIfNotBlank(query url.Values, key, value string) {
	if !isBlank(value) {
		query.Set(key, value)
	}
}

func setPriceLevel(query url.Values, key string, level models.PriceLevel) {
	if wire, ok := level.Wire(); ok {
		query.Set(key, strconv.Itoa(wire))
	}
}
