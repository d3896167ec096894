// Package llm asks a chat-completion model for theme suggestions
package llm

//go:generate mockgen -destination=mock/mock_client.go -package=llmmock github.com/KirkDiggler/rpg-progression/internal/clients/llm Client

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// DefaultModel is used when Config.Model is empty
const DefaultModel = "gpt-4o-mini"

const suggestionPrompt = `You advise a Dungeons & Dragons game master on character themes.
Given the character and campaign context as JSON, suggest up to five themes the character could
transition into next. Prefer themes listed under "available_themes" and reference them by "theme_id".

For each suggestion return:
- theme_id: the id of an available theme (optional when inventing a new one)
- name: the theme name
- reason: one sentence explaining the fit

Return ONLY a valid JSON array, no other text.`

// Client defines the interface for theme suggestion providers
type Client interface {
	// GetThemeSuggestions returns loosely structured suggestions for the
	// given context. Latency is unbounded; callers apply a timeout.
	GetThemeSuggestions(ctx context.Context, context map[string]any) ([]map[string]any, error)
}

// Config contains configuration for the OpenAI-backed client
type Config struct {
	APIKey string
	Model  string
	// BaseURL overrides the API endpoint, e.g. for a compatible gateway
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.APIKey == "" {
		return errors.InvalidArgument("OpenAI API key is required")
	}
	return nil
}

type client struct {
	client *openai.Client
	model  string
}

// NewOpenAI creates a Client backed by OpenAI chat completions
func NewOpenAI(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	oaConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oaConfig.BaseURL = cfg.BaseURL
	}
	if cfg.HTTPClient != nil {
		oaConfig.HTTPClient = cfg.HTTPClient
	}

	model := DefaultModel
	if cfg.Model != "" {
		model = cfg.Model
	}

	return &client{
		client: openai.NewClientWithConfig(oaConfig),
		model:  model,
	}, nil
}

func (c *client) GetThemeSuggestions(ctx context.Context, suggestionContext map[string]any) ([]map[string]any, error) {
	contextJSON, err := json.Marshal(suggestionContext)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal suggestion context")
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: suggestionPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: string(contextJSON),
			},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "theme suggestion request failed")
	}

	if len(resp.Choices) == 0 {
		return nil, errors.Unavailable("no response from suggestion model")
	}

	content := cleanJSONResponse(resp.Choices[0].Message.Content)

	var suggestions []map[string]any
	if err := json.Unmarshal([]byte(content), &suggestions); err != nil {
		return nil, errors.Wrapf(err, "failed to parse suggestions (response: %s)", content)
	}

	return suggestions, nil
}

// cleanJSONResponse removes markdown code blocks if present.
func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimSuffix(content, "```")
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
	}

	return strings.TrimSpace(content)
}
