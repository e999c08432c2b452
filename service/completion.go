package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/voyage-finance/ask-server/config"
	"github.com/voyage-finance/ask-server/models"
)

const (
	SystemPrompt = "You are a helpful assistant. Provide clear, concise, and accurate answers."
	MaxTokens    = 500
	Temperature  = 0.7
)

// Completer turns a question into the raw text of the first generated
// message. An empty string with a nil error means the service produced no
// content.
type Completer interface {
	Complete(ctx context.Context, question string) (string, error)
}

// OpenAI is a Completer backed by the chat completions API.
type OpenAI struct {
	Client *resty.Client
	URL    string
	Model  string
	APIKey string
}

func NewOpenAI(cfg config.Config) *OpenAI {
	client := resty.New().SetTimeout(cfg.UpstreamTimeout)
	return &OpenAI{
		Client: client,
		URL:    cfg.CompletionsURL,
		Model:  cfg.Model,
		APIKey: cfg.APIKey,
	}
}

// NewCompletionRequest builds the fixed prompt around question.
func NewCompletionRequest(model, question string) models.CompletionRequest {
	return models.CompletionRequest{
		Model: model,
		Messages: []models.Message{
			{Role: "system", Content: SystemPrompt},
			{Role: "user", Content: question},
		},
		MaxTokens:   MaxTokens,
		Temperature: Temperature,
	}
}

func (c *OpenAI) Complete(ctx context.Context, question string) (string, error) {
	resp, err := c.Client.R().
		SetContext(ctx).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", c.APIKey)).
		SetHeader("Content-Type", "application/json").
		SetBody(NewCompletionRequest(c.Model, question)).
		Post(c.URL)
	if err != nil {
		return "", fmt.Errorf("calling completion service: %w", err)
	}

	var rsp models.CompletionResponse
	if !resp.IsSuccess() {
		// best effort, only for the operator log
		_ = json.Unmarshal(resp.Body(), &rsp)
		statusErr := &UpstreamStatusError{StatusCode: resp.StatusCode()}
		if rsp.Error != nil {
			statusErr.Message = rsp.Error.Message
		}
		return "", statusErr
	}

	if err := json.Unmarshal(resp.Body(), &rsp); err != nil {
		return "", fmt.Errorf("decoding completion response: %w", err)
	}
	if rsp.Choices == nil {
		return "", ErrNoChoices
	}
	if len(rsp.Choices) == 0 || rsp.Choices[0].Message == nil {
		return "", nil
	}
	return rsp.Choices[0].Message.Content, nil
}
