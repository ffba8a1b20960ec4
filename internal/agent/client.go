// Package agent implements the LLM co-design tooling: generating game
// concepts, developing them into runnable prototypes, combining them,
// and running designer/developer conversations.
package agent

import (
	"context"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"
)

// DefaultModel is used when no model override is given.
const DefaultModel = "gemini-2.5-flash"

// Client is the minimal LLM surface the agents need.
type Client interface {
	// Complete sends a prompt and returns the completion.
	Complete(ctx context.Context, prompt string) (string, error)

	// CompleteWithSystem sends a prompt with a system message.
	CompleteWithSystem(ctx context.Context, system, prompt string) (string, error)

	// CompleteCapped sends a prompt with a system message and limits the
	// reply to maxTokens output tokens. Zero means no limit.
	CompleteCapped(ctx context.Context, system, prompt string, maxTokens int32) (string, error)
}

// GeminiClient implements Client using the Google GenAI SDK.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini-backed client.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("agent: Gemini API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("agent: cannot create GenAI client: %w", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

// NewClientFromEnv builds a client from GEMINI_API_KEY or GOOGLE_API_KEY.
func NewClientFromEnv(ctx context.Context, model string) (Client, error) {
	key := os.Getenv("GEMINI_API_KEY")
	if key == "" {
		key = os.Getenv("GOOGLE_API_KEY")
	}
	if key == "" {
		return nil, fmt.Errorf("agent: set GEMINI_API_KEY to use the agent commands")
	}
	return NewGeminiClient(ctx, key, model)
}

// Complete sends a prompt and returns the completion.
func (c *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	return c.CompleteWithSystem(ctx, "", prompt)
}

// CompleteWithSystem sends a prompt with a system message.
func (c *GeminiClient) CompleteWithSystem(ctx context.Context, system, prompt string) (string, error) {
	return c.CompleteCapped(ctx, system, prompt, 0)
}

// CompleteCapped sends a prompt with a system message and a reply token
// cap.
func (c *GeminiClient) CompleteCapped(ctx context.Context, system, prompt string, maxTokens int32) (string, error) {
	cfg := &genai.GenerateContentConfig{}
	if system != "" {
		cfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}
	if maxTokens > 0 {
		cfg.MaxOutputTokens = maxTokens
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("agent: completion failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("agent: empty completion")
	}
	return text, nil
}

// Model returns the model in use.
func (c *GeminiClient) Model() string {
	return c.model
}
