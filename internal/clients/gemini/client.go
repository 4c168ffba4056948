// Package gemini wraps the Google Gemini generative text API.
package gemini

import (
	"context"
	"errors"
	"fmt"

	"github.com/aristath/impact/internal/domain"
	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

var _ domain.TextGenerator = (*Client)(nil)

// DefaultModel is used when no model name is configured.
const DefaultModel = "gemini-1.5-flash-latest"

// ErrDisabled is returned by Generate when no API key is configured.
var ErrDisabled = errors.New("gemini: no API key configured")

// Client generates text with a single Gemini model.
// A Client built without an API key is valid but disabled.
type Client struct {
	genai *genai.Client
	model string
	log   zerolog.Logger
}

// NewClient creates a Gemini client. An empty apiKey returns a disabled client
// without contacting the API.
func NewClient(ctx context.Context, apiKey, model string, log zerolog.Logger) (*Client, error) {
	if model == "" {
		model = DefaultModel
	}

	c := &Client{
		model: model,
		log:   log.With().Str("client", "gemini").Str("model", model).Logger(),
	}

	if apiKey == "" {
		c.log.Info().Msg("Gemini API key not set, AI scoring disabled")
		return c, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	c.genai = client

	return c, nil
}

// Enabled reports whether the client can make requests.
func (c *Client) Enabled() bool {
	return c != nil && c.genai != nil
}

// Generate sends prompt as a single user turn and returns the response text.
func (c *Client) Generate(ctx context.Context, prompt string, opts domain.GenerateOptions) (string, error) {
	if !c.Enabled() {
		return "", ErrDisabled
	}

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(opts.Temperature),
		MaxOutputTokens: opts.MaxOutputTokens,
	}

	resp, err := c.genai.Models.GenerateContent(ctx, c.model, []*genai.Content{
		{
			Role: genai.RoleUser,
			Parts: []*genai.Part{
				genai.NewPartFromText(prompt),
			},
		},
	}, config)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("gemini: empty response")
	}

	c.log.Debug().Int("prompt_chars", len(prompt)).Int("response_chars", len(text)).Msg("Generated content")
	return text, nil
}
