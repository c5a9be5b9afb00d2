package summarize

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/leafecho/leafecho/prompts"
)

// Defaults for the DeepSeek chat completion endpoint.
const (
	DefaultDeepSeekURL   = "https://api.deepseek.com/v1/chat/completions"
	DefaultDeepSeekModel = "deepseek-chat"
)

// DeepSeek summarizes through an OpenAI-compatible chat completion API.
type DeepSeek struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// NewDeepSeek creates a DeepSeek summarizer. An empty endpoint or model
// selects the defaults; timeout bounds each request.
func NewDeepSeek(apiKey, model, endpoint string, timeout time.Duration) (*DeepSeek, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("deepseek API key is required")
	}
	if model == "" {
		model = DefaultDeepSeekModel
	}
	if endpoint == "" {
		endpoint = DefaultDeepSeekURL
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &DeepSeek{
		apiKey:   apiKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}, nil
}

// Summarize implements Summarizer.
func (d *DeepSeek) Summarize(ctx context.Context, pairs []Pair) (*Result, error) {
	prompt, err := BuildPrompt(pairs)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(chatRequest{
		Model: d.model,
		Messages: []chatMessage{
			{Role: "system", Content: prompts.SummarySystemPrompt},
			{Role: "user", Content: prompt},
		},
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+d.apiKey)

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("deepseek request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("deepseek returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices", ErrMalformed)
	}
	return ParseResponse(parsed.Choices[0].Message.Content)
}

// Name returns the provider and model.
func (d *DeepSeek) Name() string {
	return "deepseek:" + d.model
}
