// Package listing defines the listing record and its missing-field policy
package listing

import (
	"time"

	ptime "roamly/internal/platform/time"
)

// Kind discriminates the two listing shapes
type Kind string

const (
	// KindAccommodation is a lodging listing
	KindAccommodation Kind = "accommodation"
	// KindVehicle is a car rental listing
	KindVehicle Kind = "vehicle"
)

// Valid reports whether k is a known kind
func (k Kind) Valid() bool { return k == KindAccommodation || k == KindVehicle }

// DefaultCurrency is the single implied currency for all prices
const DefaultCurrency = "USD"

// Defaults applied when an upstream record omits an attribute.
// These live here, and only here, so every predicate, comparator, and
// renderer agrees on what a missing field means
const (
	// DefaultGuests is assumed when a listing does not state capacity
	DefaultGuests = 1
	// DefaultRating is assumed when a listing has no rating yet
	DefaultRating = 0.0
)

// Accommodation holds the lodging-only attributes
type Accommodation struct {
	Guests    int      `json:"guests,omitempty"`
	Bedrooms  int      `json:"bedrooms,omitempty"`
	Beds      int      `json:"beds,omitempty"`
	Baths     int      `json:"baths,omitempty"`
	Amenities []string `json:"amenities,omitempty"`
}

// Vehicle holds the car-only attributes
type Vehicle struct {
	Seats        int      `json:"seats,omitempty"`
	Transmission string   `json:"transmission,omitempty"`
	Fuel         string   `json:"fuel,omitempty"`
	Features     []string `json:"features,omitempty"`
}

// Listing is one candidate record as fetched from the catalog.
// Exactly one of Accommodation or Vehicle is populated, selected by Kind;
// Normalize enforces that after decode
type Listing struct {
	ID      string `json:"id"`
	Kind    Kind   `json:"kind"`
	Title   string `json:"title,omitempty"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`

	Price    float64  `json:"price"`
	Currency string   `json:"currency,omitempty"`
	Rating   *float64 `json:"rating,omitempty"`
	Reviews  int      `json:"reviews,omitempty"`

	CreatedAt *time.Time `json:"created_at,omitempty"`

	Images []string `json:"images,omitempty"`

	Accommodation *Accommodation `json:"accommodation,omitempty"`
	Vehicle       *Vehicle       `json:"vehicle,omitempty"`
}

// Normalize reconciles the record with its kind: the sub-shape not selected
// by Kind is dropped, a blank currency gets the default, and a negative
// price is clamped to zero. It never rejects; malformed-record rejection is
// the decoder's job
func (l *Listing) Normalize() {
	switch l.Kind {
	case KindAccommodation:
		l.Vehicle = nil
	case KindVehicle:
		l.Accommodation = nil
	}
	if l.Currency == "" {
		l.Currency = DefaultCurrency
	}
	if l.Price < 0 {
		l.Price = 0
	}
	if l.CreatedAt != nil {
		// a zero timestamp from upstream means undated
		l.CreatedAt = ptime.Ptr(*l.CreatedAt)
	}
}

// Features returns the amenity or feature tags for the populated shape.
// Nil for a record whose shape was never filled in
func (l *Listing) Features() []string {
	switch {
	case l.Kind == KindAccommodation && l.Accommodation != nil:
		return l.Accommodation.Amenities
	case l.Kind == KindVehicle && l.Vehicle != nil:
		return l.Vehicle.Features
	}
	return nil
}

// Capacity returns how many people the listing accommodates, defaulting to
// DefaultGuests when unstated. Vehicles count seats
func (l *Listing) Capacity() int {
	switch {
	case l.Kind == KindAccommodation && l.Accommodation != nil && l.Accommodation.Guests > 0:
		return l.Accommodation.Guests
	case l.Kind == KindVehicle && l.Vehicle != nil && l.Vehicle.Seats > 0:
		return l.Vehicle.Seats
	}
	return DefaultGuests
}

// EffectiveRating returns the rating or DefaultRating when unrated
func (l *Listing) EffectiveRating() float64 {
	if l.Rating == nil {
		return DefaultRating
	}
	return *l.Rating
}

// EffectiveCreatedAt returns the creation time, or now when the record has
// none. Undated records therefore sort to the top under a newest sort;
// that mirrors the product's historical behavior and is deliberately kept
// in one place so it can be revisited
func (l *Listing) EffectiveCreatedAt(now time.Time) time.Time {
	if l.CreatedAt == nil {
		return now
	}
	return *l.CreatedAt
}

// Thumbnail returns the canonical image URL, empty when the listing has none
func (l *Listing) Thumbnail() string {
	if len(l.Images) == 0 {
		return ""
	}
	return l.Images[0]
}
