package models

import (
	"math"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// AddressComponent is one part of a place's structured address.
type AddressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

// ParseAddressComponent returns nil unless obj is a JSON object.
func ParseAddressComponent(obj gjson.Result) *AddressComponent {
	if !obj.IsObject() {
		return nil
	}
	return &AddressComponent{
		LongName:  obj.Get("long_name").String(),
		ShortName: obj.Get("short_name").String(),
		Types:     getStringArray(obj, "types"),
	}
}

// OpeningHoursPeriodItem is the open or close half of a period.
type OpeningHoursPeriodItem struct {
	Day  time.Weekday `json:"day"`
	Time string       `json:"time"` // 24h "HHMM"
}

// ParseOpeningHoursPeriodItem returns nil unless obj is a JSON object.
func ParseOpeningHoursPeriodItem(obj gjson.Result) *OpeningHoursPeriodItem {
	if !obj.IsObject() {
		return nil
	}
	return &OpeningHoursPeriodItem{
		Day:  time.Weekday(obj.Get("day").Int()),
		Time: obj.Get("time").String(),
	}
}

// OpeningHoursPeriod is a single opening period. A place open around the
// clock has an Open item and no Close item.
type OpeningHoursPeriod struct {
	Open  *OpeningHoursPeriodItem `json:"open,omitempty"`
	Close *OpeningHoursPeriodItem `json:"close,omitempty"`
}

func (p *OpeningHoursPeriod) HasOpen() bool  { return p.Open != nil }
func (p *OpeningHoursPeriod) HasClose() bool { return p.Close != nil }

// ParseOpeningHoursPeriod returns nil unless obj is a JSON object.
func ParseOpeningHoursPeriod(obj gjson.Result) *OpeningHoursPeriod {
	if !obj.IsObject() {
		return nil
	}
	return &OpeningHoursPeriod{
		Open:  getObject(obj, "open", ParseOpeningHoursPeriodItem),
		Close: getObject(obj, "close", ParseOpeningHoursPeriodItem),
	}
}

// OpeningHours describes when a place is open.
type OpeningHours struct {
	OpenNow     bool                  `json:"open_now"`
	Periods     []*OpeningHoursPeriod `json:"periods"`
	WeekdayText []string              `json:"weekday_text"`
}

// ParseOpeningHours returns nil unless obj is a JSON object.
func ParseOpeningHours(obj gjson.Result) *OpeningHours {
	if !obj.IsObject() {
		return nil
	}
	return &OpeningHours{
		OpenNow:     obj.Get("open_now").Bool(),
		Periods:     getObjectArray(obj, "periods", ParseOpeningHoursPeriod),
		WeekdayText: getStringArray(obj, "weekday_text"),
	}
}

// PlaceDetails is a single place as returned by the details and search
// endpoints. Search results carry a subset of the fields.
type PlaceDetails struct {
	AddressComponents        []*AddressComponent `json:"address_components"`
	AdrAddress               string              `json:"adr_address,omitempty"`
	BusinessStatus           BusinessStatus      `json:"business_status"`
	FormattedAddress         string              `json:"formatted_address,omitempty"`
	FormattedPhoneNumber     string              `json:"formatted_phone_number,omitempty"`
	Geometry                 *Geometry           `json:"geometry,omitempty"`
	Icon                     string              `json:"icon,omitempty"`
	InternationalPhoneNumber string              `json:"international_phone_number,omitempty"`
	Name                     string              `json:"name"`
	OpeningHours             *OpeningHours       `json:"opening_hours,omitempty"`
	PermanentlyClosed        bool                `json:"permanently_closed"`
	PlaceID                  string              `json:"place_id"`
	PriceLevel               PriceLevel          `json:"price_level"`
	Rating                   float32             `json:"rating"` // 0 when absent
	Reference                string              `json:"reference,omitempty"`
	Scope                    string              `json:"scope,omitempty"`
	Types                    []string            `json:"types"`
	URL                      string              `json:"url,omitempty"`
	UTCOffset                time.Duration       `json:"utc_offset"`
	Vicinity                 string              `json:"vicinity,omitempty"`
	Website                  string              `json:"website,omitempty"`
}

func (d *PlaceDetails) HasBusinessStatus() bool {
	return d.BusinessStatus != BusinessStatusUnspecified
}

func (d *PlaceDetails) HasPhoneNumber() bool {
	return strings.TrimSpace(d.FormattedPhoneNumber) != ""
}

func (d *PlaceDetails) HasOpeningHours() bool {
	return d.OpeningHours != nil
}

func (d *PlaceDetails) HasPriceLevel() bool {
	return d.PriceLevel != PriceLevelUnspecified
}

// HasRating reports whether the place has been rated. Ratings start at 1.0,
// so anything below the smallest positive float32 is treated as absent.
func (d *PlaceDetails) HasRating() bool {
	return d.Rating >= math.SmallestNonzeroFloat32
}

func (d *PlaceDetails) HasWebsite() bool {
	return strings.TrimSpace(d.Website) != ""
}

// ParsePlaceDetails returns nil unless obj is a JSON object.
func ParsePlaceDetails(obj gjson.Result) *PlaceDetails {
	if !obj.IsObject() {
		return nil
	}
	return &PlaceDetails{
		AddressComponents:        getObjectArray(obj, "address_components", ParseAddressComponent),
		AdrAddress:               obj.Get("adr_address").String(),
		BusinessStatus:           ParseBusinessStatus(obj.Get("business_status").String()),
		FormattedAddress:         obj.Get("formatted_address").String(),
		FormattedPhoneNumber:     obj.Get("formatted_phone_number").String(),
		Geometry:                 getObject(obj, "geometry", ParseGeometry),
		Icon:                     obj.Get("icon").String(),
		InternationalPhoneNumber: obj.Get("international_phone_number").String(),
		Name:                     obj.Get("name").String(),
		OpeningHours:             getObject(obj, "opening_hours", ParseOpeningHours),
		PermanentlyClosed:        obj.Get("permanently_closed").Bool(),
		PlaceID:                  obj.Get("place_id").String(),
		PriceLevel:               parsePriceLevel(obj.Get("price_level")),
		Rating:                   float32(obj.Get("rating").Float()),
		Reference:                obj.Get("reference").String(),
		Scope:                    obj.Get("scope").String(),
		Types:                    getStringArray(obj, "types"),
		URL:                      obj.Get("url").String(),
		UTCOffset:                time.Duration(obj.Get("utc_offset").Int()) * time.Minute,
		Vicinity:                 obj.Get("vicinity").String(),
		Website:                  obj.Get("website").String(),
	}
}
