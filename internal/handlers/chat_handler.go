package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quicklist/backend/internal/middleware"
	"github.com/quicklist/backend/internal/models"
	"github.com/quicklist/backend/internal/services"
)

type ChatHandler struct {
	chat *services.ChatService
}

func NewChatHandler(chat *services.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// StartConversation gets or creates the session's conversation for a listing.
func (h *ChatHandler) StartConversation(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	listingID := chi.URLParam(r, "listingId")

	conv, err := h.chat.GetOrCreateConversation(sessionID, listingID)
	if err != nil {
		if err == services.ErrListingNotFound {
			writeJSON(w, http.StatusNotFound, models.NewErrorResponse("Listing not found"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Failed to start conversation"))
		return
	}

	writeJSON(w, http.StatusOK, models.NewSuccessResponse(conv))
}

func (h *ChatHandler) ListConversations(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	writeJSON(w, http.StatusOK, models.NewSuccessResponse(h.chat.Conversations(sessionID)))
}

func (h *ChatHandler) GetConversation(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	convID := chi.URLParam(r, "conversationId")

	conv, err := h.chat.GetConversation(sessionID, convID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, models.NewErrorResponse("Conversation not found"))
		return
	}

	writeJSON(w, http.StatusOK, models.NewSuccessResponse(conv))
}

// PostMessage appends a buyer message. Empty text is an inert no-op: the
// conversation comes back unchanged rather than as an error.
func (h *ChatHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	convID := chi.URLParam(r, "conversationId")

	var req models.PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Invalid request body"))
		return
	}

	_, err := h.chat.PostMessage(sessionID, convID, req.Text)
	if err != nil && err != services.ErrEmptyMessage {
		writeJSON(w, http.StatusNotFound, models.NewErrorResponse("Conversation not found"))
		return
	}

	conv, err := h.chat.GetConversation(sessionID, convID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, models.NewErrorResponse("Conversation not found"))
		return
	}
	writeJSON(w, http.StatusOK, models.NewSuccessResponse(conv))
}

// PostOffer appends a pending offer. A non-positive amount is an inert no-op,
// same contract as PostMessage.
func (h *ChatHandler) PostOffer(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	convID := chi.URLParam(r, "conversationId")

	var req models.PostOfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Invalid request body"))
		return
	}

	_, err := h.chat.PostOffer(sessionID, convID, req.Amount)
	if err != nil && err != services.ErrInvalidOfferAmount {
		writeJSON(w, http.StatusNotFound, models.NewErrorResponse("Conversation not found"))
		return
	}

	conv, err := h.chat.GetConversation(sessionID, convID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, models.NewErrorResponse("Conversation not found"))
		return
	}
	writeJSON(w, http.StatusOK, models.NewSuccessResponse(conv))
}
