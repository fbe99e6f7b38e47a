package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseResponseStatusCode(t *testing.T) {
	tests := []struct {
		input string
		want  ResponseStatusCode
	}{
		{"OK", StatusOk},
		{"ok", StatusOk},
		{"ZERO_RESULTS", StatusZeroResults},
		{"zeroResults", StatusZeroResults},
		{"OVER_QUERY_LIMIT", StatusOverQueryLimit},
		{"REQUEST_DENIED", StatusRequestDenied},
		{"INVALID_REQUEST", StatusInvalidRequest},
		{"NOT_FOUND", StatusNotFound},
		{"UNKNOWN_ERROR", StatusUnknownError},
		{"", StatusUnspecified},
		{"OVER_DAILY_LIMIT_v2", StatusUnspecified},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseResponseStatusCode(tt.input))
		})
	}

	assert.Equal(t, "ZERO_RESULTS", StatusZeroResults.String())
	assert.True(t, StatusOk.IsOk())
	assert.False(t, StatusZeroResults.IsOk())
}

func TestPriceLevel_Wire(t *testing.T) {
	tests := []struct {
		level    PriceLevel
		wantWire int
		wantOK   bool
	}{
		{PriceLevelUnspecified, 0, false},
		{PriceLevelFree, 0, true},
		{PriceLevelInexpensive, 1, true},
		{PriceLevelModerate, 2, true},
		{PriceLevelExpensive, 3, true},
		{PriceLevelVeryExpensive, 4, true},
		{PriceLevel(42), 0, false},
	}

	for _, tt := range tests {
		wire, ok := tt.level.Wire()
		assert.Equal(t, tt.wantOK, ok, "level %d", tt.level)
		assert.Equal(t, tt.wantWire, wire, "level %d", tt.level)
		if ok {
			assert.Equal(t, tt.level, PriceLevelFromWire(wire))
		}
	}

	assert.Equal(t, PriceLevelUnspecified, PriceLevelFromWire(-1))
	assert.Equal(t, PriceLevelUnspecified, PriceLevelFromWire(5))
}

func TestParsePriceLevel(t *testing.T) {
	assert.Equal(t, PriceLevelModerate, ParsePriceLevel("moderate"))
	assert.Equal(t, PriceLevelVeryExpensive, ParsePriceLevel("VERY_EXPENSIVE"))
	assert.Equal(t, PriceLevelVeryExpensive, ParsePriceLevel("PRICE_LEVEL_VERY_EXPENSIVE"))
	assert.Equal(t, PriceLevelFree, ParsePriceLevel("0"))
	assert.Equal(t, PriceLevelUnspecified, ParsePriceLevel(""))
	assert.Equal(t, PriceLevelUnspecified, ParsePriceLevel("cheap"))
}

func TestParseRankBy(t *testing.T) {
	r, ok := ParseRankBy("distance")
	assert.True(t, ok)
	assert.Equal(t, RankByDistance, r)

	r, ok = ParseRankBy("")
	assert.True(t, ok)
	assert.Equal(t, RankByProminence, r)

	_, ok = ParseRankBy("popularity")
	assert.False(t, ok)

	var zero RankBy
	assert.Equal(t, "prominence", zero.String())
}
