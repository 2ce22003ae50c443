package models

import (
	"time"
)

type Condition string

const (
	ConditionExcellent Condition = "Excellent"
	ConditionGood      Condition = "Good"
	ConditionFair      Condition = "Fair"
	ConditionPoor      Condition = "Poor"
)

func (c Condition) Valid() bool {
	switch c {
	case ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor:
		return true
	}
	return false
}

// Location is where a listing physically is.
type Location struct {
	City      string  `json:"city"`
	State     string  `json:"state"`
	ZipCode   string  `json:"zip_code"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// UserLocation is the browsing user's location. Coordinates are pointers
// because ZIP-to-coordinate resolution happens outside this system; until
// both are set the location filter stays inactive.
type UserLocation struct {
	ZipCode   string   `json:"zip_code"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (u UserLocation) Resolved() bool {
	return u.Latitude != nil && u.Longitude != nil
}

// Seller is the summary shown alongside a listing.
type Seller struct {
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
	Sales  int     `json:"sales"`
}

type Listing struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Condition      Condition `json:"condition"`
	Category       string    `json:"category"`
	PriceMin       float64   `json:"priceMin"`
	PriceMax       float64   `json:"priceMax"`
	SuggestedPrice float64   `json:"suggestedPrice"`
	Features       []string  `json:"features"`
	Images         []string  `json:"images"`
	Location       Location  `json:"location"`
	Seller         Seller    `json:"seller"`
	CreatedAt      time.Time `json:"created_at"`
}

// ListingDraft is the structured result the model collaborator returns for a
// set of item photos. Field names match the JSON shape the model is asked for.
type ListingDraft struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Condition      string   `json:"condition"`
	PriceMin       float64  `json:"priceMin"`
	PriceMax       float64  `json:"priceMax"`
	SuggestedPrice float64  `json:"suggestedPrice"`
	Category       string   `json:"category"`
	Features       []string `json:"features"`
}

// Validate checks required fields and numeric bounds. priceMin <= suggested
// <= priceMax is deliberately not enforced; the bounds are advisory.
func (d *ListingDraft) Validate() map[string]string {
	errors := make(map[string]string)

	if d.Title == "" {
		errors["title"] = "Title is required"
	}
	if d.Description == "" {
		errors["description"] = "Description is required"
	}
	if d.Category == "" {
		errors["category"] = "Category is required"
	}
	if !Condition(d.Condition).Valid() {
		errors["condition"] = "Condition must be one of Excellent, Good, Fair, Poor"
	}
	if d.SuggestedPrice <= 0 {
		errors["suggestedPrice"] = "Suggested price must be positive"
	}
	if d.PriceMin < 0 {
		errors["priceMin"] = "Minimum price cannot be negative"
	}
	if d.PriceMax < 0 {
		errors["priceMax"] = "Maximum price cannot be negative"
	}

	return errors
}

type PublishListingRequest struct {
	ListingDraft
	Images   []string `json:"images"`
	Location Location `json:"location"`
}

// Common listing categories, matching the seeded data.
var ListingCategories = []string{
	"Electronics",
	"Fashion",
	"Home & Garden",
	"Sports",
	"Books",
	"Toys & Games",
	"Automotive",
	"Music",
}
