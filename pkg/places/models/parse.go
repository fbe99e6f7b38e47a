// Package models contains the typed entities returned by the legacy Google
// Places API and the parsers that build them.
//
// Parsing is tolerant: a missing nested object becomes nil, a missing array
// becomes an empty slice and an unknown enum value becomes the enum's
// Unspecified variant. Only a body that is not a JSON object is an error.
package models

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// ErrInvalidBody is returned when a response body is not a JSON object.
var ErrInvalidBody = errors.New("response body is not a JSON object")

func parseRoot(data []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, fmt.Errorf("%w: invalid JSON", ErrInvalidBody)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return gjson.Result{}, fmt.Errorf("%w: got %s", ErrInvalidBody, root.Type)
	}
	return root, nil
}

// getObject parses obj[key] with parse, or returns nil when the key is
// missing or not an object.
func getObject[T any](obj gjson.Result, key string, parse func(gjson.Result) *T) *T {
	value := obj.Get(key)
	if !value.IsObject() {
		return nil
	}
	return parse(value)
}

// getObjectArray parses every object in obj[key]. Non-object items are
// skipped. The result is never nil.
func getObjectArray[T any](obj gjson.Result, key string, parse func(gjson.Result) *T) []*T {
	items := make([]*T, 0)
	value := obj.Get(key)
	if !value.IsArray() {
		return items
	}
	value.ForEach(func(_, item gjson.Result) bool {
		if parsed := parse(item); parsed != nil {
			items = append(items, parsed)
		}
		return true
	})
	return items
}

// getStringArray never returns nil.
func getStringArray(obj gjson.Result, key string) []string {
	items := make([]string, 0)
	value := obj.Get(key)
	if !value.IsArray() {
		return items
	}
	for _, item := range value.Array() {
		items = append(items, item.String())
	}
	return items
}

func parsePriceLevel(value gjson.Result) PriceLevel {
	switch value.Type {
	case gjson.Number:
		return PriceLevelFromWire(int(value.Int()))
	case gjson.String:
		return ParsePriceLevel(value.Str)
	}
	return PriceLevelUnspecified
}
