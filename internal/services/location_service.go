package services

import (
	"sync"

	"github.com/quicklist/backend/internal/models"
)

// LocationService stores each session's browsing location. Coordinates are
// expected to be resolved by the caller (ZIP geocoding is out of scope); until
// they are, the location filter stays inactive.
type LocationService struct {
	mu        sync.RWMutex
	locations map[string]models.UserLocation
}

func NewLocationService() *LocationService {
	return &LocationService{
		locations: make(map[string]models.UserLocation),
	}
}

func (s *LocationService) Set(sessionID string, loc models.UserLocation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locations[sessionID] = loc
}

func (s *LocationService) Get(sessionID string) models.UserLocation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locations[sessionID]
}
