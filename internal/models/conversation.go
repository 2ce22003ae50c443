package models

import (
	"strings"
	"time"
)

type SenderRole string

const (
	SenderBuyer  SenderRole = "buyer"
	SenderSeller SenderRole = "seller"
)

type OfferStatus string

const (
	OfferPending  OfferStatus = "pending"
	OfferAccepted OfferStatus = "accepted"
	OfferDeclined OfferStatus = "declined"
)

// Terminal reports whether the status is a final one. A resolved offer never
// changes status again.
func (s OfferStatus) Terminal() bool {
	return s == OfferAccepted || s == OfferDeclined
}

type Message struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	Sender    SenderRole `json:"sender"`
	Timestamp time.Time  `json:"timestamp"`
}

type Offer struct {
	ID        string      `json:"id"`
	Amount    int         `json:"amount"`
	Status    OfferStatus `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
}

// Conversation is the per-listing negotiation thread. Messages and offers are
// independent append-only sequences, each ordered by append time.
type Conversation struct {
	ID        string    `json:"id"`
	SessionID string    `json:"-"`
	ListingID string    `json:"listing_id"`
	Listing   *Listing  `json:"listing"`
	Seller    Seller    `json:"seller"`
	Messages  []Message `json:"messages"`
	Offers    []Offer   `json:"offers"`
	CreatedAt time.Time `json:"created_at"`
}

type PostMessageRequest struct {
	Text string `json:"text"`
}

// Empty reports whether the message would be a silent no-op.
func (r *PostMessageRequest) Empty() bool {
	return strings.TrimSpace(r.Text) == ""
}

type PostOfferRequest struct {
	Amount int `json:"amount"`
}
