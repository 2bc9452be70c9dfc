package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/phperfect/backend/internal/domain"
	"go.uber.org/zap"
)

// Client handles chat-completion calls to the OpenAI API
type Client struct {
	client *resty.Client
	model  string
}

// chatRequest is the chat-completions request body
type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the subset of the chat-completions response we read
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// NewClient creates a new OpenAI client. The API key is mandatory: the advice
// provider is the one collaborator whose absence fails construction.
func NewClient(apiKey, baseURL, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: OpenAI", domain.ErrMissingAPIKey)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(60 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+apiKey)

	return &Client{
		client: client,
		model:  model,
	}, nil
}

// GenerateAdvice sends a system role string and user prompt to the
// chat-completions endpoint and returns the generated text
func (c *Client) GenerateAdvice(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	req := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		MaxTokens: maxTokens,
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAdviceUnavailable, err)
	}

	if resp.StatusCode() != http.StatusOK {
		zap.L().Warn("openai returned error status",
			zap.Int("status", resp.StatusCode()),
			zap.String("model", c.model))
		return "", fmt.Errorf("%w: status %d", domain.ErrAdviceUnavailable, resp.StatusCode())
	}

	var result chatResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAdviceUnavailable, err)
	}

	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: empty completion", domain.ErrAdviceUnavailable)
	}

	return result.Choices[0].Message.Content, nil
}
