package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/quicklist/backend/internal/middleware"
	"github.com/quicklist/backend/internal/models"
	"github.com/quicklist/backend/internal/services"
)

type ListingHandler struct {
	listings        *services.ListingService
	behavior        *services.BehaviorService
	recommend       *services.RecommendService
	location        *services.LocationService
	defaultRadiusMi float64
}

func NewListingHandler(listings *services.ListingService, behavior *services.BehaviorService, recommend *services.RecommendService, location *services.LocationService, defaultRadiusMi float64) *ListingHandler {
	return &ListingHandler{
		listings:        listings,
		behavior:        behavior,
		recommend:       recommend,
		location:        location,
		defaultRadiusMi: defaultRadiusMi,
	}
}

// PublishListing validates a draft and adds it to the store.
func (h *ListingHandler) PublishListing(w http.ResponseWriter, r *http.Request) {
	var req models.PublishListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Invalid request body"))
		return
	}

	if errors := req.Validate(); len(errors) > 0 {
		log.Printf("[PublishListing] Validation errors: %v", errors)
		writeJSON(w, http.StatusBadRequest, models.NewValidationErrorResponse(errors))
		return
	}

	// Published listings without photos get a category placeholder.
	if len(req.Images) == 0 {
		req.Images = []string{services.PlaceholderImage(req.Category)}
	}

	listing, err := h.listings.Publish(&req)
	if err != nil {
		log.Printf("[PublishListing] Service error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Failed to publish listing"))
		return
	}

	log.Printf("[PublishListing] Listing published: %s", listing.ID)
	writeJSON(w, http.StatusCreated, models.NewSuccessResponse(listing))
}

// ListListings is the browse endpoint: optional free-text query plus optional
// location filter, both conjunctive.
func (h *ListingHandler) ListListings(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	query := r.URL.Query()

	q := strings.TrimSpace(query.Get("q"))
	if q != "" {
		h.behavior.RecordSearch(sessionID, q)
	}

	results := services.FilterListings(h.listings.All(), q, h.locationFilter(sessionID, query.Get("local"), query.Get("radius")))
	writeJSON(w, http.StatusOK, models.NewSuccessResponse(results))
}

// Recommended returns the personalized first-six for the session.
func (h *ListingHandler) Recommended(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	results := h.recommend.Personalized(sessionID, h.listings.All())
	writeJSON(w, http.StatusOK, models.NewSuccessResponse(results))
}

// GetListing fetches one listing and records the view against the session's
// behavior profile.
func (h *ListingHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	listingID := chi.URLParam(r, "listingId")

	listing, err := h.listings.GetByID(listingID)
	if err != nil {
		if err == services.ErrListingNotFound {
			writeJSON(w, http.StatusNotFound, models.NewErrorResponse("Listing not found"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Failed to get listing"))
		return
	}

	h.behavior.RecordView(sessionID, listing)
	writeJSON(w, http.StatusOK, models.NewSuccessResponse(listing))
}

// SetLocation stores the session's browsing location. Coordinates arrive
// pre-resolved; geocoding is not this system's job.
func (h *ListingHandler) SetLocation(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())

	var loc models.UserLocation
	if err := json.NewDecoder(r.Body).Decode(&loc); err != nil {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Invalid request body"))
		return
	}

	h.location.Set(sessionID, loc)
	writeJSON(w, http.StatusOK, models.NewSuccessResponse(loc))
}

func (h *ListingHandler) locationFilter(sessionID, local, radiusStr string) services.LocationFilter {
	if local != "true" && local != "1" {
		return services.LocationFilter{}
	}

	radius := h.defaultRadiusMi
	if v, err := strconv.ParseFloat(radiusStr, 64); err == nil && v > 0 {
		radius = v
	}

	return services.LocationFilter{
		Enabled:     true,
		User:        h.location.Get(sessionID),
		RadiusMiles: radius,
	}
}
