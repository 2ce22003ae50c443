package services

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/quicklist/backend/internal/models"
)

var ErrCartEmpty = errors.New("cart is empty")

// CartService holds each session's cart: a set of listing references keyed by
// listing ID. Adding a listing twice is a no-op.
type CartService struct {
	mu       sync.RWMutex
	listings *ListingService
	carts    map[string][]string // sessionID -> listingIDs in add order
}

func NewCartService(listings *ListingService) *CartService {
	return &CartService{
		listings: listings,
		carts:    make(map[string][]string),
	}
}

func (s *CartService) Add(sessionID, listingID string) (*models.Cart, error) {
	if _, err := s.listings.GetByID(listingID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	for _, id := range s.carts[sessionID] {
		if id == listingID {
			s.mu.Unlock()
			return s.Cart(sessionID), nil
		}
	}
	s.carts[sessionID] = append(s.carts[sessionID], listingID)
	s.mu.Unlock()

	return s.Cart(sessionID), nil
}

func (s *CartService) Remove(sessionID, listingID string) *models.Cart {
	s.mu.Lock()
	ids := s.carts[sessionID]
	for i, id := range ids {
		if id == listingID {
			s.carts[sessionID] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	return s.Cart(sessionID)
}

// Cart returns the session's cart contents and total (sum of suggested
// prices).
func (s *CartService) Cart(sessionID string) *models.Cart {
	s.mu.RLock()
	ids := append([]string{}, s.carts[sessionID]...)
	s.mu.RUnlock()

	cart := &models.Cart{Items: []*models.Listing{}}
	for _, id := range ids {
		listing, err := s.listings.GetByID(id)
		if err != nil {
			continue
		}
		cart.Items = append(cart.Items, listing)
		cart.Total += listing.SuggestedPrice
	}
	return cart
}

// Checkout completes the order and clears the cart. Request validation is the
// handler's job; an empty cart is the only service-level failure.
func (s *CartService) Checkout(sessionID string, req *models.CheckoutRequest) (*models.Order, error) {
	cart := s.Cart(sessionID)
	if len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}

	order := &models.Order{
		ID:        uuid.New().String(),
		Items:     cart.Items,
		Total:     cart.Total,
		Shipping:  req.Shipping,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	delete(s.carts, sessionID)
	s.mu.Unlock()

	return order, nil
}
