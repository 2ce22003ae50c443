package services

import (
	"strings"

	"github.com/quicklist/backend/internal/models"
)

// LocationFilter is the optional geo constraint for browsing. It only takes
// effect when Enabled and the user's coordinates are resolved.
type LocationFilter struct {
	Enabled     bool
	User        models.UserLocation
	RadiusMiles float64
}

// FilterListings applies the text query and location filter conjunctively,
// preserving input order. An empty query matches everything.
func FilterListings(listings []*models.Listing, query string, loc LocationFilter) []*models.Listing {
	query = strings.ToLower(strings.TrimSpace(query))

	results := make([]*models.Listing, 0, len(listings))
	for _, listing := range listings {
		if query != "" && !matchesQuery(listing, query) {
			continue
		}
		if loc.Enabled && !WithinRadius(loc.User, listing.Location, loc.RadiusMiles) {
			continue
		}
		results = append(results, listing)
	}
	return results
}

// matchesQuery does a case-insensitive substring match over title,
// description, category, and features. query must already be lowercased.
func matchesQuery(listing *models.Listing, query string) bool {
	if strings.Contains(strings.ToLower(listing.Title), query) ||
		strings.Contains(strings.ToLower(listing.Description), query) ||
		strings.Contains(strings.ToLower(listing.Category), query) {
		return true
	}
	for _, f := range listing.Features {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
