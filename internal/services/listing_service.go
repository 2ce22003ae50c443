package services

import (
	"errors"
	"sync"
	"time"

	"github.com/quicklist/backend/internal/models"
)

var ErrListingNotFound = errors.New("listing not found")

// ListingService owns the set of listings. In-memory for the session; nothing
// here is durable.
type ListingService struct {
	mu       sync.RWMutex
	listings map[string]*models.Listing
	order    []string // newest first, matching browse order
}

func NewListingService() *ListingService {
	return &ListingService{
		listings: make(map[string]*models.Listing),
	}
}

// Seed loads the sample listings used for demo browsing.
func (s *ListingService) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, listing := range seedListings() {
		s.listings[listing.ID] = listing
		s.order = append(s.order, listing.ID)
	}
}

// Publish validates and inserts a user-authored listing. New listings go to
// the front of the browse order.
func (s *ListingService) Publish(req *models.PublishListingRequest) (*models.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	listing := &models.Listing{
		ID:             newULID(),
		Title:          req.Title,
		Description:    req.Description,
		Condition:      models.Condition(req.Condition),
		Category:       req.Category,
		PriceMin:       req.PriceMin,
		PriceMax:       req.PriceMax,
		SuggestedPrice: req.SuggestedPrice,
		Features:       append([]string{}, req.Features...),
		Images:         append([]string{}, req.Images...),
		Location:       req.Location,
		Seller: models.Seller{
			Name:   "You",
			Rating: 5.0,
		},
		CreatedAt: time.Now().UTC(),
	}

	s.listings[listing.ID] = listing
	s.order = append([]string{listing.ID}, s.order...)

	return listing, nil
}

func (s *ListingService) GetByID(id string) (*models.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	listing, exists := s.listings[id]
	if !exists {
		return nil, ErrListingNotFound
	}
	return listing, nil
}

// All returns every listing in browse order.
func (s *ListingService) All() []*models.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]*models.Listing, 0, len(s.order))
	for _, id := range s.order {
		results = append(results, s.listings[id])
	}
	return results
}

func (s *ListingService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listings)
}
