package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/quicklist/backend/internal/anthropic"
	"github.com/quicklist/backend/internal/models"
)

var (
	ErrNoImages     = errors.New("no images provided")
	ErrInvalidDraft = errors.New("model response did not contain a valid listing draft")
)

const draftPrompt = `Analyze these images of an item being sold. Create a marketplace listing with:
1. A catchy, descriptive title (max 60 chars)
2. A detailed description (2-3 sentences)
3. Condition rating (Excellent/Good/Fair/Poor)
4. Estimated price range in USD
5. Category
6. Key features (3-5 bullet points)

Return ONLY valid JSON in this exact format:
{
  "title": "string",
  "description": "string",
  "condition": "string",
  "priceMin": number,
  "priceMax": number,
  "suggestedPrice": number,
  "category": "string",
  "features": ["string", "string", "string"]
}`

const keywordsPrompt = "Describe this item in 3-5 keywords for searching. Return only the keywords separated by spaces, no other text."

// DraftService turns item photos into listing drafts and search keywords via
// the model collaborator. One request per user action; failures abort the
// action with nothing created.
type DraftService struct {
	client *anthropic.Client
	model  string
}

func NewDraftService(client *anthropic.Client, model string) *DraftService {
	return &DraftService{
		client: client,
		model:  model,
	}
}

// AnalyzeImages asks the model for a structured listing draft. The response
// text is expected to contain exactly one embedded JSON object; the first
// top-level {...} span is extracted, parsed, and validated. Anything malformed
// means no draft.
func (s *DraftService) AnalyzeImages(ctx context.Context, images []string) (*models.ListingDraft, error) {
	if len(images) == 0 {
		return nil, ErrNoImages
	}

	content := make([]anthropic.ContentBlock, 0, len(images)+1)
	for _, img := range images {
		content = append(content, anthropic.ImageBlock("image/jpeg", stripDataURI(img)))
	}
	content = append(content, anthropic.TextBlock(draftPrompt))

	resp, err := s.client.CreateMessage(ctx, &anthropic.MessageRequest{
		Model:     s.model,
		MaxTokens: 1000,
		Messages:  []anthropic.Message{{Role: "user", Content: content}},
	})
	if err != nil {
		return nil, err
	}

	raw, ok := extractJSONObject(resp.Text())
	if !ok {
		log.Printf("[Draft] model response contained no JSON object")
		return nil, ErrInvalidDraft
	}

	var draft models.ListingDraft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		log.Printf("[Draft] failed to parse draft JSON: %v", err)
		return nil, ErrInvalidDraft
	}

	if errs := draft.Validate(); len(errs) > 0 {
		log.Printf("[Draft] draft failed validation: %v", errs)
		return nil, fmt.Errorf("%w: %d invalid fields", ErrInvalidDraft, len(errs))
	}

	return &draft, nil
}

// SearchKeywords asks the model to describe one image as a short keyword
// query.
func (s *DraftService) SearchKeywords(ctx context.Context, image string) (string, error) {
	if strings.TrimSpace(image) == "" {
		return "", ErrNoImages
	}

	resp, err := s.client.CreateMessage(ctx, &anthropic.MessageRequest{
		Model:     s.model,
		MaxTokens: 500,
		Messages: []anthropic.Message{{
			Role: "user",
			Content: []anthropic.ContentBlock{
				anthropic.ImageBlock("image/jpeg", stripDataURI(image)),
				anthropic.TextBlock(keywordsPrompt),
			},
		}},
	})
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.Text()), nil
}

// stripDataURI accepts either raw base64 or a data URI and returns the base64
// payload.
func stripDataURI(img string) string {
	if i := strings.Index(img, ","); i >= 0 && strings.HasPrefix(img, "data:") {
		return img[i+1:]
	}
	return img
}

// extractJSONObject returns the first top-level {...} span in text, found by
// brace-depth scanning. Braces inside JSON strings are accounted for.
func extractJSONObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}
