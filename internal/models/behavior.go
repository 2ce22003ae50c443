package models

import (
	"time"
)

type SearchRecord struct {
	Query     string    `json:"query"`
	Timestamp time.Time `json:"timestamp"`
}

type ViewRecord struct {
	ListingID string    `json:"listing_id"`
	Category  string    `json:"category"`
	Timestamp time.Time `json:"timestamp"`
}

// BehaviorProfile accumulates one session's browsing signals. Histories are
// bounded (oldest evicted); category counts are monotonic for the session.
// CategoryOrder records the order in which categories were first counted and
// is the tie-break for equal counts.
type BehaviorProfile struct {
	Searches      []SearchRecord `json:"searches"`
	Views         []ViewRecord   `json:"views"`
	Categories    map[string]int `json:"categories"`
	CategoryOrder []string       `json:"category_order"`
}

func NewBehaviorProfile() *BehaviorProfile {
	return &BehaviorProfile{
		Searches:   []SearchRecord{},
		Views:      []ViewRecord{},
		Categories: make(map[string]int),
	}
}
