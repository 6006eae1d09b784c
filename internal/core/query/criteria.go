// Package query holds the filter criteria, the predicate evaluator, and the
// sort comparator registry that derive the visible set from the canonical one
package query

import (
	perr "roamly/internal/platform/errors"

	"roamly/internal/core/listing"
)

// Criteria is the full multi-clause filter. The zero value is the
// all-permissive baseline: every clause inactive, every listing visible.
// Criteria is pure data; evaluation lives in predicate.go
type Criteria struct {
	// Location is matched case- and accent-insensitively as a substring of
	// city, country, or address. Empty means no location clause
	Location string `json:"location,omitempty"`

	// MinPrice and MaxPrice are inclusive bounds; nil means unbounded
	MinPrice *float64 `json:"min_price,omitempty"`
	MaxPrice *float64 `json:"max_price,omitempty"`

	// Kinds is the allow-set; empty means all kinds, not none
	Kinds []listing.Kind `json:"kinds,omitempty"`

	// Features must all be present on a listing (conjunction, not union)
	Features []string `json:"features,omitempty"`

	// MinGuests is a lower bound on capacity; 0 means inactive
	MinGuests int `json:"min_guests,omitempty"`
}

// Validate rejects criteria no evaluation could satisfy coherently
func (c Criteria) Validate() error {
	if c.MinPrice != nil && *c.MinPrice < 0 {
		return perr.InvalidArgf("min_price must be non-negative")
	}
	if c.MaxPrice != nil && *c.MaxPrice < 0 {
		return perr.InvalidArgf("max_price must be non-negative")
	}
	if c.MinPrice != nil && c.MaxPrice != nil && *c.MinPrice > *c.MaxPrice {
		return perr.InvalidArgf("min_price exceeds max_price")
	}
	if c.MinGuests < 0 {
		return perr.InvalidArgf("min_guests must be non-negative")
	}
	for _, k := range c.Kinds {
		if !k.Valid() {
			return perr.InvalidArgf("unknown kind %q", string(k))
		}
	}
	return nil
}

// Patch is a partial criteria edit. Nil fields leave the current value
// untouched; set fields replace it. Clearing everything at once goes
// through the store's ClearFilters instead
type Patch struct {
	Location  *string         `json:"location,omitempty"`
	MinPrice  *float64        `json:"min_price,omitempty"`
	MaxPrice  *float64        `json:"max_price,omitempty"`
	Kinds     *[]listing.Kind `json:"kinds,omitempty"`
	Features  *[]string       `json:"features,omitempty"`
	MinGuests *int            `json:"min_guests,omitempty"`
}

// Apply merges the patch into c and returns the result
func (p Patch) Apply(c Criteria) Criteria {
	if p.Location != nil {
		c.Location = *p.Location
	}
	if p.MinPrice != nil {
		c.MinPrice = p.MinPrice
	}
	if p.MaxPrice != nil {
		c.MaxPrice = p.MaxPrice
	}
	if p.Kinds != nil {
		c.Kinds = *p.Kinds
	}
	if p.Features != nil {
		c.Features = *p.Features
	}
	if p.MinGuests != nil {
		c.MinGuests = *p.MinGuests
	}
	return c
}
