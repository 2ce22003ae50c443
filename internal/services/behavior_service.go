package services

import (
	"sort"
	"sync"
	"time"

	"github.com/quicklist/backend/internal/models"
)

const (
	maxSearchHistory = 20
	maxViewHistory   = 50
)

// BehaviorService tracks per-session browsing behavior: recent searches,
// recent views, and category view counts. Counts are monotonic for the session
// lifetime; only the histories are bounded.
type BehaviorService struct {
	mu       sync.RWMutex
	profiles map[string]*models.BehaviorProfile
}

func NewBehaviorService() *BehaviorService {
	return &BehaviorService{
		profiles: make(map[string]*models.BehaviorProfile),
	}
}

func (s *BehaviorService) profile(sessionID string) *models.BehaviorProfile {
	p, exists := s.profiles[sessionID]
	if !exists {
		p = models.NewBehaviorProfile()
		s.profiles[sessionID] = p
	}
	return p
}

// RecordSearch appends a search to the session history, keeping the most
// recent entries. Empty queries are recorded as-is; the caller decides
// whether a query is worth tracking.
func (s *BehaviorService) RecordSearch(sessionID, query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.profile(sessionID)
	p.Searches = append(p.Searches, models.SearchRecord{
		Query:     query,
		Timestamp: time.Now().UTC(),
	})
	if len(p.Searches) > maxSearchHistory {
		p.Searches = p.Searches[len(p.Searches)-maxSearchHistory:]
	}
}

// RecordView appends a listing view and bumps the category counter.
func (s *BehaviorService) RecordView(sessionID string, listing *models.Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.profile(sessionID)
	p.Views = append(p.Views, models.ViewRecord{
		ListingID: listing.ID,
		Category:  listing.Category,
		Timestamp: time.Now().UTC(),
	})
	if len(p.Views) > maxViewHistory {
		p.Views = p.Views[len(p.Views)-maxViewHistory:]
	}

	if _, seen := p.Categories[listing.Category]; !seen {
		p.CategoryOrder = append(p.CategoryOrder, listing.Category)
	}
	p.Categories[listing.Category]++
}

// Profile returns a copy of the session's profile.
func (s *BehaviorService) Profile(sessionID string) *models.BehaviorProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, exists := s.profiles[sessionID]
	if !exists {
		return models.NewBehaviorProfile()
	}

	out := models.NewBehaviorProfile()
	out.Searches = append(out.Searches, p.Searches...)
	out.Views = append(out.Views, p.Views...)
	out.CategoryOrder = append(out.CategoryOrder, p.CategoryOrder...)
	for cat, n := range p.Categories {
		out.Categories[cat] = n
	}
	return out
}

// TopCategories returns up to n categories by view count, descending. Equal
// counts break toward the category counted first.
func (s *BehaviorService) TopCategories(sessionID string, n int) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, exists := s.profiles[sessionID]
	if !exists || len(p.Categories) == 0 {
		return nil
	}

	firstSeen := make(map[string]int, len(p.CategoryOrder))
	for i, cat := range p.CategoryOrder {
		firstSeen[cat] = i
	}

	cats := append([]string{}, p.CategoryOrder...)
	sort.SliceStable(cats, func(i, j int) bool {
		ci, cj := p.Categories[cats[i]], p.Categories[cats[j]]
		if ci != cj {
			return ci > cj
		}
		return firstSeen[cats[i]] < firstSeen[cats[j]]
	})

	if len(cats) > n {
		cats = cats[:n]
	}
	return cats
}
