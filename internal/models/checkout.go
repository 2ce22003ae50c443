package models

import (
	"time"
)

// Cart is the session's current cart: listings keyed by ID, no duplicates.
type Cart struct {
	Items []*Listing `json:"items"`
	Total float64    `json:"total"`
}

type ShippingInfo struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zip_code"`
	Country  string `json:"country"`
}

func (s *ShippingInfo) Validate() map[string]string {
	errors := make(map[string]string)

	if s.FullName == "" {
		errors["full_name"] = "Full name is required"
	}
	if s.Email == "" {
		errors["email"] = "Email is required"
	}
	if s.Address == "" {
		errors["address"] = "Address is required"
	}
	if s.City == "" {
		errors["city"] = "City is required"
	}
	if s.State == "" {
		errors["state"] = "State is required"
	}
	if s.ZipCode == "" {
		errors["zip_code"] = "ZIP code is required"
	}

	return errors
}

// BillingInfo is collected but never charged; there is no payment processing.
type BillingInfo struct {
	CardNumber string `json:"card_number"`
	CardName   string `json:"card_name"`
	ExpiryDate string `json:"expiry_date"`
	CVV        string `json:"cvv"`
}

func (b *BillingInfo) Validate() map[string]string {
	errors := make(map[string]string)

	if b.CardNumber == "" {
		errors["card_number"] = "Card number is required"
	}
	if b.CardName == "" {
		errors["card_name"] = "Name on card is required"
	}
	if b.ExpiryDate == "" {
		errors["expiry_date"] = "Expiry date is required"
	}
	if b.CVV == "" {
		errors["cvv"] = "CVV is required"
	}

	return errors
}

type CheckoutRequest struct {
	Shipping ShippingInfo `json:"shipping"`
	Billing  BillingInfo  `json:"billing"`
}

func (r *CheckoutRequest) Validate() map[string]string {
	errors := r.Shipping.Validate()
	for field, msg := range r.Billing.Validate() {
		errors[field] = msg
	}
	return errors
}

type Order struct {
	ID        string       `json:"id"`
	Items     []*Listing   `json:"items"`
	Total     float64      `json:"total"`
	Shipping  ShippingInfo `json:"shipping"`
	CreatedAt time.Time    `json:"created_at"`
}
