package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/pgvector/pgvector-go"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"
)

// PlaceSummary is the slice of a place an AI provider needs to group a trip.
type PlaceSummary struct {
	ContentID string
	Title     string
	Category  string
	Latitude  float64
	Longitude float64
}

// AIClientInterface groups places into trip days and embeds free text.
type AIClientInterface interface {
	GenerateDayGroupingJSON(ctx context.Context, start PlaceSummary, places []PlaceSummary, dayCount int) (string, error)
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
	Provider() string
	Close() error
}

func buildDayGroupingPrompt(start PlaceSummary, places []PlaceSummary, dayCount int) string {
	var buf strings.Builder
	for _, p := range places {
		fmt.Fprintf(&buf, "- ID:%s | Name:%s | Category:%s | Lat:%.6f | Lng:%.6f\n",
			p.ContentID, p.Title, p.Category, p.Latitude, p.Longitude)
	}

	return fmt.Sprintf(`
You are grouping places into a %d-day trip. Return JSON only, matching exactly:
{"days":[{"day":1,"content_ids":["<ID from list>"]}]}

Trip starts at: %s (Lat:%.6f Lng:%.6f)

Places (use IDs from here only, every ID exactly once):
%s
Hard constraints:
- Exactly %d entries in "days", day = 1..%d with no gaps.
- Keep places that are geographically close on the same day.
- At most one place with Category "accommodation" per day.

Return JSON only. No comments, no markdown.
`, dayCount, start.Title, start.Latitude, start.Longitude, buf.String(), dayCount, dayCount)
}

// ---------------- OpenAI ----------------

type OpenAIClient struct {
	client         *openai.Client
	chatModel      string
	embeddingModel openai.EmbeddingModel
}

func NewOpenAIClient(apiKey, chatModel string) *OpenAIClient {
	if chatModel == "" {
		chatModel = openai.GPT4oMini
	}
	return &OpenAIClient{
		client:         openai.NewClient(apiKey),
		chatModel:      chatModel,
		embeddingModel: openai.SmallEmbedding3,
	}
}

func (c *OpenAIClient) Provider() string { return "openai" }

func (c *OpenAIClient) GenerateDayGroupingJSON(ctx context.Context, start PlaceSummary, places []PlaceSummary, dayCount int) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are a travel itinerary planner that answers with JSON only."},
			{Role: openai.ChatMessageRoleUser, Content: buildDayGroupingPrompt(start, places, dayCount)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject},
		Temperature:    0.1,
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no choices")
	}

	content := resp.Choices[0].Message.Content
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("openai: not valid json")
	}
	return content, nil
}

func (c *OpenAIClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: c.embeddingModel,
	})
	if err != nil {
		return pgvector.Vector{}, fmt.Errorf("openai embedding: %w", err)
	}
	if len(resp.Data) == 0 {
		return pgvector.Vector{}, fmt.Errorf("openai embedding: empty response")
	}
	return pgvector.NewVector(resp.Data[0].Embedding), nil
}

func (c *OpenAIClient) Close() error { return nil }

// ---------------- Gemini ----------------

type GeminiClient struct {
	client         *genai.Client
	model          string
	embeddingModel string
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client:         client,
		model:          model,
		embeddingModel: "text-embedding-004",
	}, nil
}

func (c *GeminiClient) Provider() string { return "gemini" }

func (c *GeminiClient) GenerateDayGroupingJSON(ctx context.Context, start PlaceSummary, places []PlaceSummary, dayCount int) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)
	m.SetTopP(0.5)

	resp, err := m.GenerateContent(ctx, genai.Text(buildDayGroupingPrompt(start, places, dayCount)))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	content := sb.String()
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("gemini: not valid json")
	}
	return content, nil
}

func (c *GeminiClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	res, err := c.client.EmbeddingModel(c.embeddingModel).EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return pgvector.Vector{}, fmt.Errorf("gemini embedding: %w", err)
	}
	if res.Embedding == nil {
		return pgvector.Vector{}, fmt.Errorf("gemini embedding: empty response")
	}
	return pgvector.NewVector(res.Embedding.Values), nil
}

func (c *GeminiClient) Close() error {
	return c.client.Close()
}

// NewAIClient builds the configured provider. Returns (nil, nil) for provider "none".
func NewAIClient(ctx context.Context, provider, apiKey, model string) (AIClientInterface, error) {
	switch strings.ToLower(provider) {
	case "", "none":
		return nil, nil
	case "openai":
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required when using OpenAI provider")
		}
		return NewOpenAIClient(apiKey, model), nil
	case "gemini":
		if apiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required when using Gemini provider")
		}
		return NewGeminiClient(ctx, apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'openai', 'gemini' or 'none'", provider)
	}
}
