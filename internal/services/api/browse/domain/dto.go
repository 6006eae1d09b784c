// Package domain holds DTOs for browse http and service contracts
package domain

// SessionInput creates a browse session over an upstream listings scope
type SessionInput struct {
	Owner    string `json:"owner,omitempty" validate:"omitempty,max=100" example:"host-42"`
	City     string `json:"city,omitempty" validate:"omitempty,max=100" example:"Lisbon"`
	Country  string `json:"country,omitempty" validate:"omitempty,max=100" example:"Portugal"`
	PageSize int    `json:"page_size,omitempty" validate:"omitempty,min=1,max=100" example:"12"`
}

// SessionRef addresses an existing session
type SessionRef struct {
	SessionID string `json:"session_id" validate:"required,uuid4" example:"9f1c7a1e-8c2d-4f7b-b0a3-2f3f5f8b9c6d"`
}

// SessionResponse returns the new session id
type SessionResponse struct {
	SessionID string `json:"session_id" example:"9f1c7a1e-8c2d-4f7b-b0a3-2f3f5f8b9c6d"`
}

// FilterInput is a partial criteria edit; absent fields keep their value
type FilterInput struct {
	SessionID string    `json:"session_id" validate:"required,uuid4"`
	Location  *string   `json:"location,omitempty" validate:"omitempty,max=200" example:"new york"`
	MinPrice  *float64  `json:"min_price,omitempty" validate:"omitempty,min=0" example:"100"`
	MaxPrice  *float64  `json:"max_price,omitempty" validate:"omitempty,min=0" example:"200"`
	Kinds     *[]string `json:"kinds,omitempty" validate:"omitempty,dive,oneof=accommodation vehicle"`
	Features  *[]string `json:"features,omitempty" validate:"omitempty,dive,min=1,max=100"`
	MinGuests *int      `json:"min_guests,omitempty" validate:"omitempty,min=0" example:"2"`
}

// SortInput switches the session ordering
type SortInput struct {
	SessionID string `json:"session_id" validate:"required,uuid4"`
	Key       string `json:"key" validate:"required,oneof=recommended price_low price_high rating newest" example:"price_low"`
}

// ToggleInput flips a favorite mark
type ToggleInput struct {
	SessionID string `json:"session_id" validate:"required,uuid4"`
	ListingID string `json:"listing_id" validate:"required,max=100" example:"lst-1001"`
}

// ListingView is a listing as rendered to clients, favorite mark merged in
type ListingView struct {
	ID        string   `json:"id"`
	Kind      string   `json:"kind"`
	Title     string   `json:"title"`
	Address   string   `json:"address,omitempty"`
	City      string   `json:"city,omitempty"`
	Country   string   `json:"country,omitempty"`
	Price     float64  `json:"price"`
	Currency  string   `json:"currency"`
	Rating    float64  `json:"rating"`
	Reviews   int      `json:"reviews"`
	Capacity  int      `json:"capacity"`
	Thumbnail string   `json:"thumbnail,omitempty"`
	Images    []string `json:"images,omitempty"`
	Features  []string `json:"features,omitempty"`
	CreatedAt string   `json:"created_at,omitempty"`
	Favorite  bool     `json:"favorite"`
}

// ListingsResponse is the visible set plus page state
type ListingsResponse struct {
	Items     []ListingView `json:"items"`
	Total     int           `json:"total"`
	Page      int           `json:"page"`
	PageSize  int           `json:"page_size"`
	HasMore   bool          `json:"has_more"`
	IsLoading bool          `json:"is_loading"`
	SortKey   string        `json:"sort_key"`
}

// LoadResponse reports the outcome of a load-next turn
type LoadResponse struct {
	Loaded  bool `json:"loaded"`
	Page    int  `json:"page"`
	HasMore bool `json:"has_more"`
}

// ToggleResponse reports the new favorite state
type ToggleResponse struct {
	ListingID string `json:"listing_id"`
	Favorite  bool   `json:"favorite"`
}

// FavoritesResponse lists the marked ids
type FavoritesResponse struct {
	IDs []string `json:"ids"`
}
