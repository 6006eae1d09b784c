// Package domain holds DTOs for category http and service contracts
package domain

// NearbyInput asks for the near-you category over a session's loaded set.
// City and country override automatic geolocation; when both are absent the
// resolver decides, and its failure is the caller's cue to supply a place
type NearbyInput struct {
	SessionID string `json:"session_id" validate:"required,uuid4"`
	City      string `json:"city,omitempty" validate:"omitempty,max=100" example:"Lisbon"`
	Country   string `json:"country,omitempty" validate:"omitempty,max=100" example:"Portugal"`
	Limit     int    `json:"limit,omitempty" validate:"omitempty,min=1,max=100" example:"10"`
}

// LatestInput asks for the recently-listed category over a session's loaded set
type LatestInput struct {
	SessionID string `json:"session_id" validate:"required,uuid4"`
	Limit     int    `json:"limit,omitempty" validate:"omitempty,min=1,max=100" example:"10"`
}

// PlaceView is the place a nearby evaluation resolved to
type PlaceView struct {
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}

// Card is a listing rendered for a category rail
type Card struct {
	ID        string  `json:"id"`
	Kind      string  `json:"kind"`
	Title     string  `json:"title"`
	City      string  `json:"city,omitempty"`
	Country   string  `json:"country,omitempty"`
	Price     float64 `json:"price"`
	Currency  string  `json:"currency"`
	Rating    float64 `json:"rating"`
	Reviews   int     `json:"reviews"`
	Thumbnail string  `json:"thumbnail,omitempty"`
	Favorite  bool    `json:"favorite"`
}

// CategoryResponse is one evaluated category rail
type CategoryResponse struct {
	Name  string     `json:"name"`
	Items []Card     `json:"items"`
	Place *PlaceView `json:"place,omitempty"`
}
