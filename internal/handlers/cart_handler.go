package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quicklist/backend/internal/middleware"
	"github.com/quicklist/backend/internal/models"
	"github.com/quicklist/backend/internal/services"
)

type CartHandler struct {
	cart *services.CartService
}

func NewCartHandler(cart *services.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

// AddToCart adds a listing; adding one already in the cart is a no-op.
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	listingID := chi.URLParam(r, "listingId")

	cart, err := h.cart.Add(sessionID, listingID)
	if err != nil {
		if err == services.ErrListingNotFound {
			writeJSON(w, http.StatusNotFound, models.NewErrorResponse("Listing not found"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Failed to add to cart"))
		return
	}

	writeJSON(w, http.StatusOK, models.NewSuccessResponse(cart))
}

func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	listingID := chi.URLParam(r, "listingId")

	writeJSON(w, http.StatusOK, models.NewSuccessResponse(h.cart.Remove(sessionID, listingID)))
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	writeJSON(w, http.StatusOK, models.NewSuccessResponse(h.cart.Cart(sessionID)))
}

// Checkout validates shipping and billing, completes the order, and clears
// the cart. No payment is processed.
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())

	var req models.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Invalid request body"))
		return
	}

	if errors := req.Validate(); len(errors) > 0 {
		writeJSON(w, http.StatusBadRequest, models.NewValidationErrorResponse(errors))
		return
	}

	order, err := h.cart.Checkout(sessionID, &req)
	if err != nil {
		if err == services.ErrCartEmpty {
			writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Cart is empty"))
			return
		}
		log.Printf("[Checkout] Service error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Failed to complete order"))
		return
	}

	log.Printf("[Checkout] Order completed: %s", order.ID)
	writeJSON(w, http.StatusCreated, models.NewSuccessResponse(order))
}
