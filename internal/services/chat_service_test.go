package services

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quicklist/backend/internal/models"
)

type staticResponder struct {
	text string
}

func (r staticResponder) Reply(_ *models.Conversation, _ models.Message) string {
	return r.text
}

type staticDecider struct {
	status models.OfferStatus
	calls  *int32
}

func (d staticDecider) Decide(_ *models.Conversation, _ models.Offer) models.OfferStatus {
	if d.calls != nil {
		atomic.AddInt32(d.calls, 1)
	}
	return d.status
}

func publishTestListing(t *testing.T, listings *ListingService) *models.Listing {
	t.Helper()
	listing, err := listings.Publish(&models.PublishListingRequest{
		ListingDraft: models.ListingDraft{
			Title:          "Fender Stratocaster",
			Description:    "Sunburst finish, barely played",
			Condition:      "Good",
			PriceMin:       1100,
			PriceMax:       1300,
			SuggestedPrice: 1200,
			Category:       "Music",
			Features:       []string{"Includes hard case"},
		},
	})
	require.NoError(t, err)
	return listing
}

func newTestChatService(t *testing.T, decider OfferDecider) (*ChatService, *models.Listing) {
	t.Helper()
	listings := NewListingService()
	listing := publishTestListing(t, listings)
	svc := NewChatService(listings, staticResponder{text: "Happy to help!"}, decider, 10*time.Millisecond, 10*time.Millisecond)
	return svc, listing
}

func TestGetOrCreateConversation_Idempotent(t *testing.T) {
	t.Parallel()

	svc, listing := newTestChatService(t, staticDecider{status: models.OfferAccepted})

	first, err := svc.GetOrCreateConversation("s1", listing.ID)
	require.NoError(t, err)
	second, err := svc.GetOrCreateConversation("s1", listing.ID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, svc.Conversations("s1"), 1)
}

func TestGetOrCreateConversation_UnknownListing(t *testing.T) {
	t.Parallel()

	svc, _ := newTestChatService(t, staticDecider{status: models.OfferAccepted})

	_, err := svc.GetOrCreateConversation("s1", "no-such-listing")
	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestGetOrCreateConversation_SeparateSessionsGetSeparateThreads(t *testing.T) {
	t.Parallel()

	svc, listing := newTestChatService(t, staticDecider{status: models.OfferAccepted})

	a, err := svc.GetOrCreateConversation("s1", listing.ID)
	require.NoError(t, err)
	b, err := svc.GetOrCreateConversation("s2", listing.ID)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestPostMessage_EmptyTextIsInert(t *testing.T) {
	t.Parallel()

	svc, listing := newTestChatService(t, staticDecider{status: models.OfferAccepted})
	conv, err := svc.GetOrCreateConversation("s1", listing.ID)
	require.NoError(t, err)

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := svc.PostMessage("s1", conv.ID, text)
		assert.ErrorIs(t, err, ErrEmptyMessage)
	}

	got, err := svc.GetConversation("s1", conv.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Messages, "message sequence must be unchanged")
}

func TestPostMessage_SellerReplyArrives(t *testing.T) {
	t.Parallel()

	svc, listing := newTestChatService(t, staticDecider{status: models.OfferAccepted})
	conv, err := svc.GetOrCreateConversation("s1", listing.ID)
	require.NoError(t, err)

	msg, err := svc.PostMessage("s1", conv.ID, "Is this still available?")
	require.NoError(t, err)
	assert.Equal(t, models.SenderBuyer, msg.Sender)

	require.Eventually(t, func() bool {
		got, err := svc.GetConversation("s1", conv.ID)
		return err == nil && len(got.Messages) == 2
	}, time.Second, 5*time.Millisecond)

	got, err := svc.GetConversation("s1", conv.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SenderSeller, got.Messages[1].Sender)
	assert.Equal(t, "Happy to help!", got.Messages[1].Text)
	assert.False(t, got.Messages[1].Timestamp.Before(got.Messages[0].Timestamp))
}

func TestPostOffer_InvalidAmountIsInert(t *testing.T) {
	t.Parallel()

	svc, listing := newTestChatService(t, staticDecider{status: models.OfferAccepted})
	conv, err := svc.GetOrCreateConversation("s1", listing.ID)
	require.NoError(t, err)

	for _, amount := range []int{0, -1, -100} {
		_, err := svc.PostOffer("s1", conv.ID, amount)
		assert.ErrorIs(t, err, ErrInvalidOfferAmount)
	}

	got, err := svc.GetConversation("s1", conv.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Offers)
}

func TestPostOffer_PendingThenResolvedExactlyOnce(t *testing.T) {
	t.Parallel()

	var calls int32
	svc, listing := newTestChatService(t, staticDecider{status: models.OfferAccepted, calls: &calls})
	conv, err := svc.GetOrCreateConversation("s1", listing.ID)
	require.NoError(t, err)

	offer, err := svc.PostOffer("s1", conv.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, models.OfferPending, offer.Status)

	require.Eventually(t, func() bool {
		got, err := svc.GetConversation("s1", conv.ID)
		return err == nil && got.Offers[0].Status.Terminal()
	}, time.Second, 5*time.Millisecond)

	got, err := svc.GetConversation("s1", conv.ID)
	require.NoError(t, err)
	assert.Equal(t, offer.ID, got.Offers[0].ID)
	assert.Equal(t, models.OfferAccepted, got.Offers[0].Status)

	// The decider ran once and the status never reverts.
	time.Sleep(50 * time.Millisecond)
	got, err = svc.GetConversation("s1", conv.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OfferAccepted, got.Offers[0].Status)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestPostOffer_EachOfferResolvesIndependently(t *testing.T) {
	t.Parallel()

	svc, listing := newTestChatService(t, staticDecider{status: models.OfferDeclined})
	conv, err := svc.GetOrCreateConversation("s1", listing.ID)
	require.NoError(t, err)

	first, err := svc.PostOffer("s1", conv.ID, 100)
	require.NoError(t, err)
	second, err := svc.PostOffer("s1", conv.ID, 120)
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID, "a new offer is a new entity")

	require.Eventually(t, func() bool {
		got, err := svc.GetConversation("s1", conv.ID)
		if err != nil {
			return false
		}
		return got.Offers[0].Status.Terminal() && got.Offers[1].Status.Terminal()
	}, time.Second, 5*time.Millisecond)

	got, err := svc.GetConversation("s1", conv.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OfferDeclined, got.Offers[0].Status)
	assert.Equal(t, models.OfferDeclined, got.Offers[1].Status)
}

func TestCoinFlipDecider_AlwaysTerminal(t *testing.T) {
	t.Parallel()

	d := CoinFlipDecider{}
	for i := 0; i < 50; i++ {
		assert.True(t, d.Decide(nil, models.Offer{}).Terminal())
	}
}

func TestCannedResponder_ReturnsKnownReply(t *testing.T) {
	t.Parallel()

	r := CannedResponder{}
	for i := 0; i < 20; i++ {
		assert.Contains(t, cannedReplies, r.Reply(nil, models.Message{}))
	}
}
