package models

import (
	"strconv"
	"strings"
)

var enumSeparators = strings.NewReplacer("_", "", "-", "", " ", "")

// normalizeEnum folds case and separators so "ZERO_RESULTS", "zeroResults"
// and "zero-results" all compare equal.
func normalizeEnum(value string) string {
	return strings.ToLower(enumSeparators.Replace(strings.TrimSpace(value)))
}

// BusinessStatus is the operational status of a place, if it is a business.
type BusinessStatus int

const (
	// BusinessStatusUnspecified means the API did not return a status (or returned one this package does not know).
	BusinessStatusUnspecified BusinessStatus = iota
	BusinessStatusOperational
	BusinessStatusClosedTemporarily
	BusinessStatusClosedPermanently
)

var businessStatusNames = map[BusinessStatus]string{
	BusinessStatusUnspecified:       "",
	BusinessStatusOperational:       "OPERATIONAL",
	BusinessStatusClosedTemporarily: "CLOSED_TEMPORARILY",
	BusinessStatusClosedPermanently: "CLOSED_PERMANENTLY",
}

// ParseBusinessStatus maps the wire value to a BusinessStatus. Blank or
// unknown values yield BusinessStatusUnspecified.
func ParseBusinessStatus(value string) BusinessStatus {
	key := normalizeEnum(value)
	if key == "" {
		return BusinessStatusUnspecified
	}
	for status, name := range businessStatusNames {
		if name != "" && normalizeEnum(name) == key {
			return status
		}
	}
	return BusinessStatusUnspecified
}

// String returns the wire representation, or "" when unspecified.
func (s BusinessStatus) String() string {
	return businessStatusNames[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s BusinessStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// PriceLevel is the price range of a place. The zero value is
// PriceLevelUnspecified; the remaining values are offset by one from the
// 0-4 scale used on the wire.
type PriceLevel int

const (
	PriceLevelUnspecified PriceLevel = iota
	PriceLevelFree
	PriceLevelInexpensive
	PriceLevelModerate
	PriceLevelExpensive
	PriceLevelVeryExpensive
)

var priceLevelNames = map[PriceLevel]string{
	PriceLevelUnspecified:   "",
	PriceLevelFree:          "FREE",
	PriceLevelInexpensive:   "INEXPENSIVE",
	PriceLevelModerate:      "MODERATE",
	PriceLevelExpensive:     "EXPENSIVE",
	PriceLevelVeryExpensive: "VERY_EXPENSIVE",
}

// PriceLevelFromWire converts the API's 0-4 scale. Anything outside the
// scale yields PriceLevelUnspecified.
func PriceLevelFromWire(value int) PriceLevel {
	if value < 0 || value > 4 {
		return PriceLevelUnspecified
	}
	return PriceLevel(value + 1)
}

// ParsePriceLevel accepts either a name ("moderate", "VERY_EXPENSIVE") or a
// wire digit ("0" through "4").
func ParsePriceLevel(value string) PriceLevel {
	key := normalizeEnum(value)
	if key == "" {
		return PriceLevelUnspecified
	}
	if n, err := strconv.Atoi(key); err == nil {
		return PriceLevelFromWire(n)
	}
	key = strings.TrimPrefix(key, "pricelevel")
	for level, name := range priceLevelNames {
		if name != "" && normalizeEnum(name) == key {
			return level
		}
	}
	return PriceLevelUnspecified
}

// Wire returns the 0-4 value sent to and received from the API. ok is false
// for PriceLevelUnspecified and out of range values.
func (p PriceLevel) Wire() (value int, ok bool) {
	if p <= PriceLevelUnspecified || p > PriceLevelVeryExpensive {
		return 0, false
	}
	return int(p) - 1, true
}

func (p PriceLevel) String() string {
	return priceLevelNames[p]
}

// MarshalText implements encoding.TextMarshaler.
func (p PriceLevel) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// ResponseStatusCode is the endpoint status embedded in a response body. It
// is distinct from the HTTP status code.
type ResponseStatusCode int

const (
	// StatusUnspecified means the body had no status field, or an unknown one.
	StatusUnspecified ResponseStatusCode = iota
	StatusOk
	StatusZeroResults
	StatusOverQueryLimit
	StatusRequestDenied
	StatusInvalidRequest
	StatusNotFound
	StatusUnknownError
)

var statusNames = map[ResponseStatusCode]string{
	StatusUnspecified:    "",
	StatusOk:             "OK",
	StatusZeroResults:    "ZERO_RESULTS",
	StatusOverQueryLimit: "OVER_QUERY_LIMIT",
	StatusRequestDenied:  "REQUEST_DENIED",
	StatusInvalidRequest: "INVALID_REQUEST",
	StatusNotFound:       "NOT_FOUND",
	StatusUnknownError:   "UNKNOWN_ERROR",
}

// ParseResponseStatusCode never fails: blank or unknown values yield StatusUnspecified.
func ParseResponseStatusCode(value string) ResponseStatusCode {
	key := normalizeEnum(value)
	if key == "" {
		return StatusUnspecified
	}
	for code, name := range statusNames {
		if name != "" && normalizeEnum(name) == key {
			return code
		}
	}
	return StatusUnspecified
}

func (s ResponseStatusCode) String() string {
	return statusNames[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s ResponseStatusCode) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// IsOk reports whether Result/Results carry meaningful data.
func (s ResponseStatusCode) IsOk() bool {
	return s == StatusOk
}

// RankBy is the ordering of nearby search results. The zero value is
// RankByProminence, which is also the API default.
type RankBy int

const (
	RankByProminence RankBy = iota
	RankByDistance
)

// ParseRankBy returns false for anything other than "prominence" or "distance".
func ParseRankBy(value string) (RankBy, bool) {
	switch normalizeEnum(value) {
	case "", "prominence":
		return RankByProminence, true
	case "distance":
		return RankByDistance, true
	}
	return RankByProminence, false
}

// String returns the wire form ("prominence" or "distance").
func (r RankBy) String() string {
	if r == RankByDistance {
		return "distance"
	}
	return "prominence"
}
