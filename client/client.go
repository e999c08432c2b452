// Package client talks to a running ask server the same way the web page
// does.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/voyage-finance/ask-server/models"
)

const FailureMessage = "Sorry, I couldn't process your question. Please try again."

var ErrEmptyQuestion = errors.New("question is empty")

type Client struct {
	HTTP    *resty.Client
	BaseURL string
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		HTTP:    resty.New().SetTimeout(timeout),
		BaseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Ask posts question to /api/ask. The returned text is what the page would
// display: the answer, the server's error message, or FailureMessage when
// the server could not be reached or replied with something unreadable. The
// error is non-nil whenever no answer came back.
func (c *Client) Ask(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", ErrEmptyQuestion
	}

	resp, err := c.HTTP.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.AskRequest{Question: question}).
		Post(c.BaseURL + "/api/ask")
	if err != nil {
		return FailureMessage, fmt.Errorf("posting question: %w", err)
	}

	var result models.AnswerResult
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return FailureMessage, fmt.Errorf("decoding answer (status %d): %w", resp.StatusCode(), err)
	}
	if result.Answer != "" {
		return result.Answer, nil
	}
	if result.Error != "" {
		return result.Error, fmt.Errorf("server returned %d: %s", resp.StatusCode(), result.Error)
	}
	return FailureMessage, fmt.Errorf("server returned %d without an answer", resp.StatusCode())
}
