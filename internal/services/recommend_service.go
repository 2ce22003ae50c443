package services

import (
	"github.com/quicklist/backend/internal/models"
)

const recommendationSize = 6

// RecommendService orders listings by the session's top viewed categories.
type RecommendService struct {
	behavior *BehaviorService
}

func NewRecommendService(behavior *BehaviorService) *RecommendService {
	return &RecommendService{behavior: behavior}
}

// Personalized returns up to six listings. With no category signal it falls
// back to store order. Otherwise it is a stable two-bucket partition: listings
// in the session's top three categories first, everything else after, relative
// order preserved within each bucket. This is deliberately not a full sort by
// score; insertion order is the tiebreak inside each bucket.
func (s *RecommendService) Personalized(sessionID string, listings []*models.Listing) []*models.Listing {
	if len(listings) == 0 {
		return []*models.Listing{}
	}

	top := s.behavior.TopCategories(sessionID, 3)
	if len(top) == 0 {
		return firstN(listings, recommendationSize)
	}

	topSet := make(map[string]bool, len(top))
	for _, cat := range top {
		topSet[cat] = true
	}

	matched := make([]*models.Listing, 0, len(listings))
	others := make([]*models.Listing, 0, len(listings))
	for _, listing := range listings {
		if topSet[listing.Category] {
			matched = append(matched, listing)
		} else {
			others = append(others, listing)
		}
	}

	return firstN(append(matched, others...), recommendationSize)
}

func firstN(listings []*models.Listing, n int) []*models.Listing {
	if len(listings) > n {
		listings = listings[:n]
	}
	out := make([]*models.Listing, len(listings))
	copy(out, listings)
	return out
}
