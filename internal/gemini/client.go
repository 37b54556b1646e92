// Package gemini wraps the Google generative-language SDK behind small
// interfaces so handlers can be tested without network access.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"search-relay/internal/common/config"
	apierrors "search-relay/internal/common/errors"
	"search-relay/internal/common/logger"
)

// Turn is a single prior exchange used to seed a conversation.
type Turn struct {
	Role string // "user" or "model"
	Text string
}

// Result carries the model's reply text plus any grounding metadata attached
// to the first candidate.
type Result struct {
	Text     string
	Metadata *GroundingMetadata
}

// Conversation is a stateful chat whose history grows with each exchange.
type Conversation interface {
	SendMessage(ctx context.Context, text string) (*Result, error)
}

// Client starts grounded conversations with the configured model.
type Client interface {
	StartConversation(ctx context.Context, history []Turn) (Conversation, error)
}

type googleClient struct {
	client *genai.Client
	cfg    config.GeminiConfig
	log    logger.Logger
}

// NewClient creates a Client backed by the Gemini API.
func NewClient(ctx context.Context, cfg config.GeminiConfig, log logger.Logger) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &googleClient{client: client, cfg: cfg, log: log}, nil
}

func (c *googleClient) StartConversation(ctx context.Context, history []Turn) (Conversation, error) {
	genConfig := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(c.cfg.Temperature)),
		TopP:            genai.Ptr(float32(c.cfg.TopP)),
		TopK:            genai.Ptr(float32(c.cfg.TopK)),
		MaxOutputTokens: int32(c.cfg.MaxOutputTokens),
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	}

	var contents []*genai.Content
	for _, turn := range history {
		var role genai.Role = genai.RoleUser
		if turn.Role == "model" {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}

	chat, err := c.client.Chats.Create(ctx, c.cfg.Model, genConfig, contents)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat: %w", err)
	}

	return &googleConversation{chat: chat, log: c.log}, nil
}

type googleConversation struct {
	chat *genai.Chat
	log  logger.Logger
}

func (c *googleConversation) SendMessage(ctx context.Context, text string) (*Result, error) {
	resp, err := c.chat.SendMessage(ctx, genai.Part{Text: text})
	if err != nil {
		return nil, fmt.Errorf("generate content failed: %w", err)
	}

	replyText := strings.TrimSpace(resp.Text())
	if replyText == "" {
		return nil, apierrors.NewEmptyResponseError()
	}

	result := &Result{Text: replyText}
	if len(resp.Candidates) > 0 && resp.Candidates[0].GroundingMetadata != nil {
		result.Metadata = fromGenAI(resp.Candidates[0].GroundingMetadata)
		c.log.Debug("Grounding metadata received", map[string]interface{}{
			"chunks":   len(result.Metadata.Chunks),
			"supports": len(result.Metadata.Supports),
		})
	}

	return result, nil
}
