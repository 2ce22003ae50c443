package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quicklist/backend/internal/models"
)

func TestCart_AddIsIdempotent(t *testing.T) {
	t.Parallel()

	listings := NewListingService()
	listing := publishTestListing(t, listings)
	svc := NewCartService(listings)

	cart, err := svc.Add("s1", listing.ID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)

	cart, err = svc.Add("s1", listing.ID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1, "adding the same listing twice is a no-op")
}

func TestCart_AddUnknownListing(t *testing.T) {
	t.Parallel()

	svc := NewCartService(NewListingService())
	_, err := svc.Add("s1", "nope")
	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestCart_TotalSumsSuggestedPrices(t *testing.T) {
	t.Parallel()

	listings := NewListingService()
	listings.Seed()
	svc := NewCartService(listings)

	all := listings.All()
	var want float64
	for _, listing := range all[:3] {
		_, err := svc.Add("s1", listing.ID)
		require.NoError(t, err)
		want += listing.SuggestedPrice
	}

	cart := svc.Cart("s1")
	assert.Len(t, cart.Items, 3)
	assert.Equal(t, want, cart.Total)
}

func TestCart_Remove(t *testing.T) {
	t.Parallel()

	listings := NewListingService()
	listing := publishTestListing(t, listings)
	svc := NewCartService(listings)

	_, err := svc.Add("s1", listing.ID)
	require.NoError(t, err)

	cart := svc.Remove("s1", listing.ID)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Total)

	// Removing something not in the cart is harmless.
	cart = svc.Remove("s1", listing.ID)
	assert.Empty(t, cart.Items)
}

func TestCheckout_CompletesAndClearsCart(t *testing.T) {
	t.Parallel()

	listings := NewListingService()
	listing := publishTestListing(t, listings)
	svc := NewCartService(listings)

	_, err := svc.Add("s1", listing.ID)
	require.NoError(t, err)

	order, err := svc.Checkout("s1", &models.CheckoutRequest{
		Shipping: models.ShippingInfo{FullName: "Pat Doe", Email: "pat@example.com", Address: "1 Main St", City: "Austin", State: "TX", ZipCode: "73301"},
	})
	require.NoError(t, err)
	assert.Len(t, order.Items, 1)
	assert.Equal(t, listing.SuggestedPrice, order.Total)
	assert.NotEmpty(t, order.ID)

	assert.Empty(t, svc.Cart("s1").Items, "checkout clears the cart")
}

func TestCheckout_EmptyCart(t *testing.T) {
	t.Parallel()

	svc := NewCartService(NewListingService())
	_, err := svc.Checkout("s1", &models.CheckoutRequest{})
	assert.ErrorIs(t, err, ErrCartEmpty)
}
