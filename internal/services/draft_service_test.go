package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quicklist/backend/internal/anthropic"
)

// fakeModelServer answers like the messages API, returning the given text as
// the single content block.
func fakeModelServer(t *testing.T, responseText string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":   "msg_test",
			"type": "message",
			"role": "assistant",
			"content": []map[string]string{
				{"type": "text", "text": responseText},
			},
		})
	}))
}

func newTestDraftService(t *testing.T, responseText string) *DraftService {
	t.Helper()
	srv := fakeModelServer(t, responseText)
	t.Cleanup(srv.Close)
	client := anthropic.NewClient(srv.URL, "test-key", 5*time.Second)
	return NewDraftService(client, "test-model")
}

const validDraftJSON = `{
  "title": "Vintage Film Camera",
  "description": "Fully working 35mm camera with original leather case.",
  "condition": "Good",
  "priceMin": 80,
  "priceMax": 140,
  "suggestedPrice": 110,
  "category": "Electronics",
  "features": ["Original case", "New light seals", "Clean lens"]
}`

func TestAnalyzeImages_ParsesEmbeddedJSON(t *testing.T) {
	t.Parallel()

	svc := newTestDraftService(t, "Here is the listing you asked for:\n\n"+validDraftJSON+"\n\nGood luck with the sale!")

	draft, err := svc.AnalyzeImages(context.Background(), []string{"data:image/jpeg;base64,aGVsbG8="})
	require.NoError(t, err)
	assert.Equal(t, "Vintage Film Camera", draft.Title)
	assert.Equal(t, "Good", draft.Condition)
	assert.Equal(t, 110.0, draft.SuggestedPrice)
	assert.Len(t, draft.Features, 3)
}

func TestAnalyzeImages_NoJSONInResponse(t *testing.T) {
	t.Parallel()

	svc := newTestDraftService(t, "Sorry, I can't tell what this item is.")

	_, err := svc.AnalyzeImages(context.Background(), []string{"aGVsbG8="})
	assert.ErrorIs(t, err, ErrInvalidDraft)
}

func TestAnalyzeImages_MalformedJSON(t *testing.T) {
	t.Parallel()

	svc := newTestDraftService(t, `{"title": "Broken", "priceMin": "not a number"}`)

	_, err := svc.AnalyzeImages(context.Background(), []string{"aGVsbG8="})
	assert.ErrorIs(t, err, ErrInvalidDraft)
}

func TestAnalyzeImages_DraftFailsValidation(t *testing.T) {
	t.Parallel()

	// Parseable JSON but missing required fields and a bad condition.
	svc := newTestDraftService(t, `{"title": "", "condition": "Mint", "suggestedPrice": 0}`)

	_, err := svc.AnalyzeImages(context.Background(), []string{"aGVsbG8="})
	assert.ErrorIs(t, err, ErrInvalidDraft)
}

func TestAnalyzeImages_NoImages(t *testing.T) {
	t.Parallel()

	svc := newTestDraftService(t, validDraftJSON)
	_, err := svc.AnalyzeImages(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoImages)
}

func TestAnalyzeImages_ServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	svc := NewDraftService(anthropic.NewClient(srv.URL, "test-key", 5*time.Second), "test-model")
	_, err := svc.AnalyzeImages(context.Background(), []string{"aGVsbG8="})
	assert.Error(t, err)
}

func TestSearchKeywords_TrimsResponse(t *testing.T) {
	t.Parallel()

	svc := newTestDraftService(t, "  vintage camera film 35mm  \n")

	got, err := svc.SearchKeywords(context.Background(), "aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "vintage camera film 35mm", got)
}

func TestSearchKeywords_EmptyImage(t *testing.T) {
	t.Parallel()

	svc := newTestDraftService(t, "anything")
	_, err := svc.SearchKeywords(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrNoImages)
}

func TestExtractJSONObject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"bare object", `{"a":1}`, `{"a":1}`, true},
		{"surrounded by prose", `Sure! {"a":1} Hope that helps.`, `{"a":1}`, true},
		{"nested objects", `{"a":{"b":2}}`, `{"a":{"b":2}}`, true},
		{"brace inside string", `{"a":"}"}`, `{"a":"}"}`, true},
		{"escaped quote inside string", `{"a":"say \"}\" loudly"}`, `{"a":"say \"}\" loudly"}`, true},
		{"first object wins", `{"a":1} {"b":2}`, `{"a":1}`, true},
		{"no object", "nothing here", "", false},
		{"unterminated", `{"a":1`, "", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := extractJSONObject(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStripDataURI(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "aGVsbG8=", stripDataURI("data:image/jpeg;base64,aGVsbG8="))
	assert.Equal(t, "aGVsbG8=", stripDataURI("aGVsbG8="))
}
