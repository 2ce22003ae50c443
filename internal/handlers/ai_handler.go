package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/quicklist/backend/internal/middleware"
	"github.com/quicklist/backend/internal/models"
	"github.com/quicklist/backend/internal/services"
)

// AIHandler fronts the model collaborator: photo analysis for listing drafts
// and image-based search. Failures abandon the action; nothing partial is
// created.
type AIHandler struct {
	draft           *services.DraftService
	listings        *services.ListingService
	behavior        *services.BehaviorService
	location        *services.LocationService
	defaultRadiusMi float64
}

func NewAIHandler(draft *services.DraftService, listings *services.ListingService, behavior *services.BehaviorService, location *services.LocationService, defaultRadiusMi float64) *AIHandler {
	return &AIHandler{
		draft:           draft,
		listings:        listings,
		behavior:        behavior,
		location:        location,
		defaultRadiusMi: defaultRadiusMi,
	}
}

type analyzeRequest struct {
	Images []string `json:"images"`
}

type imageSearchRequest struct {
	Image string `json:"image"`
}

type imageSearchResponse struct {
	Query    string            `json:"query"`
	Listings []*models.Listing `json:"listings"`
}

// AnalyzeImages turns uploaded photos into an editable listing draft.
func (h *AIHandler) AnalyzeImages(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Invalid request body"))
		return
	}
	if len(req.Images) == 0 {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("At least one image is required"))
		return
	}

	draft, err := h.draft.AnalyzeImages(r.Context(), req.Images)
	if err != nil {
		log.Printf("[AnalyzeImages] model error: %v", err)
		msg := "Failed to analyze images. Please try again."
		if errors.Is(err, services.ErrInvalidDraft) {
			msg = "The analysis did not produce a usable listing. Please try again."
		}
		writeJSON(w, http.StatusBadGateway, models.NewErrorResponse(msg))
		return
	}

	writeJSON(w, http.StatusOK, models.NewSuccessResponse(draft))
}

// ImageSearch converts an uploaded image into a keyword query, records the
// search, and runs the keywords through the regular text-search pipeline.
func (h *AIHandler) ImageSearch(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())

	var req imageSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Invalid request body"))
		return
	}
	if req.Image == "" {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("An image is required"))
		return
	}

	keywords, err := h.draft.SearchKeywords(r.Context(), req.Image)
	if err != nil {
		log.Printf("[ImageSearch] model error: %v", err)
		writeJSON(w, http.StatusBadGateway, models.NewErrorResponse("Failed to analyze search image. Please try again."))
		return
	}

	if keywords != "" {
		h.behavior.RecordSearch(sessionID, keywords)
	}

	loc := h.searchLocationFilter(sessionID, r.URL.Query().Get("local"), r.URL.Query().Get("radius"))
	results := services.FilterListings(h.listings.All(), keywords, loc)

	writeJSON(w, http.StatusOK, models.NewSuccessResponse(imageSearchResponse{
		Query:    keywords,
		Listings: results,
	}))
}

func (h *AIHandler) searchLocationFilter(sessionID, local, radiusStr string) services.LocationFilter {
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
