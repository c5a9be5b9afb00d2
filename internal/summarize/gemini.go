package summarize

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/leafecho/leafecho/prompts"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-2.5-flash"

// generateFunc sends one system + user prompt and returns the reply text.
type generateFunc func(ctx context.Context, model, system, prompt string) (string, error)

// Gemini summarizes through Google's Gemini API.
type Gemini struct {
	model    string
	generate generateFunc
}

// NewGemini creates a Gemini summarizer.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	generate := func(ctx context.Context, model, system, prompt string) (string, error) {
		resp, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
			ResponseMIMEType:  "application/json",
			Temperature:       genai.Ptr[float32](0.7),
		})
		if err != nil {
			return "", err
		}
		return resp.Text(), nil
	}

	return &Gemini{model: model, generate: generate}, nil
}

// Summarize implements Summarizer.
func (g *Gemini) Summarize(ctx context.Context, pairs []Pair) (*Result, error) {
	prompt, err := BuildPrompt(pairs)
	if err != nil {
		return nil, err
	}

	text, err := g.generate(ctx, g.model, prompts.SummarySystemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}
	return ParseResponse(text)
}

// Name returns the provider and model.
func (g *Gemini) Name() string {
	return "gemini:" + g.model
}
