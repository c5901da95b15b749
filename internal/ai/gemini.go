package ai

import (
	"context"
	"net/http"
)

const (
	DefaultGeminiModel = "gemini-1.5-flash"
	// GeminiBaseURL is the OpenAI compatible surface of the Gemini API.
	GeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
	geminiName    = "gemini"
)

type GeminiParams struct {
	APIKey     string
	Model      string
	BaseURL    string // empty means GeminiBaseURL
	HTTPClient *http.Client
}

// Gemini talks to Gemini through its OpenAI compatible chat completions endpoint.
type Gemini struct {
	chat *OpenAI
}

func NewGemini(params GeminiParams) *Gemini {
	model := params.Model
	if model == "" {
		model = DefaultGeminiModel
	}
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = GeminiBaseURL
	}

	return &Gemini{
		chat: newChatClient(geminiName, OpenAIParams{
			APIKey:     params.APIKey,
			Model:      model,
			BaseURL:    baseURL,
			HTTPClient: params.HTTPClient,
		}),
	}
}

func (g *Gemini) Name() string {
	return geminiName
}

func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	return g.chat.Generate(ctx, prompt)
}
