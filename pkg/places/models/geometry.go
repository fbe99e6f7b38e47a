package models

import "github.com/tidwall/gjson"

// Point is anything that has a latitude and longitude. Location implements
// it, and callers can pass their own coordinate types to the search options.
type Point interface {
	Latitude() float64
	Longitude() float64
}

// Location is an immutable latitude/longitude pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// NewLocation returns a Location for the given coordinates.
func NewLocation(lat, lng float64) *Location {
	return &Location{Lat: lat, Lng: lng}
}

func (l Location) Latitude() float64  { return l.Lat }
func (l Location) Longitude() float64 { return l.Lng }

// Viewport is the bounding box suggested for displaying a place on a map.
type Viewport struct {
	NorthEast *Location `json:"northeast,omitempty"`
	SouthWest *Location `json:"southwest,omitempty"`
}

// Geometry holds the location and viewport of a place.
type Geometry struct {
	Location *Location `json:"location,omitempty"`
	Viewport *Viewport `json:"viewport,omitempty"`
}

// ParseLocation returns nil unless obj is a JSON object.
func ParseLocation(obj gjson.Result) *Location {
	if !obj.IsObject() {
		return nil
	}
	return &Location{
		Lat: obj.Get("lat").Float(),
		Lng: obj.Get("lng").Float(),
	}
}

// ParseViewport returns nil unless obj is a JSON object.
func ParseViewport(obj gjson.Result) *Viewport {
	if !obj.IsObject() {
		return nil
	}
	return &Viewport{
		NorthEast: getObject(obj, "northeast", ParseLocation),
		SouthWest: getObject(obj, "southwest", ParseLocation),
	}
}

// ParseGeometry returns nil unless obj is a JSON object.
func ParseGeometry(obj gjson.Result) *Geometry {
	if !obj.IsObject() {
		return nil
	}
	return &Geometry{
		Location: getObject(obj, "location", ParseLocation),
		Viewport: getObject(obj, "viewport", ParseViewport),
	}
}
