package services

import (
	"errors"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/quicklist/backend/internal/models"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrEmptyMessage         = errors.New("message text is empty")
	ErrInvalidOfferAmount   = errors.New("offer amount must be positive")
)

// SellerResponder picks the simulated seller's reply to a buyer message. The
// contract is only that some reply text arrives after the delay; the policy is
// pluggable.
type SellerResponder interface {
	Reply(conv *models.Conversation, msg models.Message) string
}

// OfferDecider resolves a pending offer to a terminal status.
type OfferDecider interface {
	Decide(conv *models.Conversation, offer models.Offer) models.OfferStatus
}

var cannedReplies = []string{
	"Thanks for your interest! Let me know if you have any questions.",
	"Happy to answer any questions about the item!",
	"Feel free to make an offer if you're interested.",
	"I'm flexible on the price. What were you thinking?",
}

// CannedResponder replies with a uniformly random canned message.
type CannedResponder struct{}

func (CannedResponder) Reply(_ *models.Conversation, _ models.Message) string {
	return cannedReplies[rand.Intn(len(cannedReplies))]
}

// CoinFlipDecider accepts or declines with equal probability.
type CoinFlipDecider struct{}

func (CoinFlipDecider) Decide(_ *models.Conversation, _ models.Offer) models.OfferStatus {
	if rand.Intn(2) == 0 {
		return models.OfferAccepted
	}
	return models.OfferDeclined
}

// ChatService manages per-listing negotiation threads. Mutation is
// synchronous; the simulated counterparty (seller replies, offer resolutions)
// arrives via fire-and-forget timers keyed to the entity they mutate. Those
// timers are not durable: a torn-down process simply drops them.
type ChatService struct {
	mu            sync.RWMutex
	listings      *ListingService
	conversations map[string]*models.Conversation // convID -> conversation
	byListing     map[string]map[string]string    // sessionID -> listingID -> convID
	convOrder     map[string][]string             // sessionID -> convIDs in creation order

	responder  SellerResponder
	decider    OfferDecider
	replyDelay time.Duration
	offerDelay time.Duration
}

func NewChatService(listings *ListingService, responder SellerResponder, decider OfferDecider, replyDelay, offerDelay time.Duration) *ChatService {
	return &ChatService{
		listings:      listings,
		conversations: make(map[string]*models.Conversation),
		byListing:     make(map[string]map[string]string),
		convOrder:     make(map[string][]string),
		responder:     responder,
		decider:       decider,
		replyDelay:    replyDelay,
		offerDelay:    offerDelay,
	}
}

// GetOrCreateConversation looks up the session's conversation for a listing,
// creating an empty one if absent. Idempotent: a second call for the same
// listing returns the same conversation.
func (s *ChatService) GetOrCreateConversation(sessionID, listingID string) (*models.Conversation, error) {
	listing, err := s.listings.GetByID(listingID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if convID, exists := s.byListing[sessionID][listingID]; exists {
		return copyConversation(s.conversations[convID]), nil
	}

	conv := &models.Conversation{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		ListingID: listing.ID,
		Listing:   listing,
		Seller:    listing.Seller,
		Messages:  []models.Message{},
		Offers:    []models.Offer{},
		CreatedAt: time.Now().UTC(),
	}

	s.conversations[conv.ID] = conv
	if s.byListing[sessionID] == nil {
		s.byListing[sessionID] = make(map[string]string)
	}
	s.byListing[sessionID][listing.ID] = conv.ID
	s.convOrder[sessionID] = append(s.convOrder[sessionID], conv.ID)

	return copyConversation(conv), nil
}

// GetConversation returns the conversation if it belongs to the session.
func (s *ChatService) GetConversation(sessionID, convID string) (*models.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conv, exists := s.conversations[convID]
	if !exists || conv.SessionID != sessionID {
		return nil, ErrConversationNotFound
	}
	return copyConversation(conv), nil
}

// Conversations lists the session's conversations in creation order.
func (s *ChatService) Conversations(sessionID string) []*models.Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Conversation, 0, len(s.convOrder[sessionID]))
	for _, convID := range s.convOrder[sessionID] {
		out = append(out, copyConversation(s.conversations[convID]))
	}
	return out
}

// PostMessage appends a buyer message and schedules exactly one simulated
// seller reply. Whitespace-only text is rejected with ErrEmptyMessage, which
// callers treat as an inert no-op.
func (s *ChatService) PostMessage(sessionID, convID, text string) (*models.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	conv, exists := s.conversations[convID]
	if !exists || conv.SessionID != sessionID {
		return nil, ErrConversationNotFound
	}

	msg := models.Message{
		ID:        newULID(),
		Text:      text,
		Sender:    models.SenderBuyer,
		Timestamp: time.Now().UTC(),
	}
	conv.Messages = append(conv.Messages, msg)

	time.AfterFunc(s.replyDelay, func() {
		s.appendSellerReply(convID, msg)
	})

	return &msg, nil
}

func (s *ChatService) appendSellerReply(convID string, buyerMsg models.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, exists := s.conversations[convID]
	if !exists {
		return
	}

	conv.Messages = append(conv.Messages, models.Message{
		ID:        newULID(),
		Text:      s.responder.Reply(conv, buyerMsg),
		Sender:    models.SenderSeller,
		Timestamp: time.Now().UTC(),
	})
}

// PostOffer appends a pending offer and schedules exactly one resolution.
// Non-positive amounts are rejected with ErrInvalidOfferAmount; callers treat
// that as an inert no-op.
func (s *ChatService) PostOffer(sessionID, convID string, amount int) (*models.Offer, error) {
	if amount <= 0 {
		return nil, ErrInvalidOfferAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	conv, exists := s.conversations[convID]
	if !exists || conv.SessionID != sessionID {
		return nil, ErrConversationNotFound
	}

	offer := models.Offer{
		ID:        newULID(),
		Amount:    amount,
		Status:    models.OfferPending,
		Timestamp: time.Now().UTC(),
	}
	conv.Offers = append(conv.Offers, offer)

	time.AfterFunc(s.offerDelay, func() {
		s.resolveOffer(convID, offer.ID)
	})

	return &offer, nil
}

// resolveOffer flips a pending offer to a terminal status. Already-resolved
// offers are left untouched, so resolution happens at most once.
func (s *ChatService) resolveOffer(convID, offerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, exists := s.conversations[convID]
	if !exists {
		return
	}

	for i := range conv.Offers {
		if conv.Offers[i].ID != offerID {
			continue
		}
		if conv.Offers[i].Status != models.OfferPending {
			return
		}

		status := s.decider.Decide(conv, conv.Offers[i])
		if !status.Terminal() {
			log.Printf("[Chat] decider returned non-terminal status %q for offer %s, declining", status, offerID)
			status = models.OfferDeclined
		}
		conv.Offers[i].Status = status
		return
	}
}

// copyConversation snapshots a conversation so callers never observe the
// timer goroutines appending to the live slices.
func copyConversation(conv *models.Conversation) *models.Conversation {
	out := *conv
	out.Messages = append([]models.Message{}, conv.Messages...)
	out.Offers = append([]models.Offer{}, conv.Offers...)
	return &out
}
