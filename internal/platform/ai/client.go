// Package ai wraps the external LLM proxy: a serverless function that
// accepts {type, prompt, context, model} and returns {success, content,
// model}. The pipeline consumes its free-text output and extracts code
// suggestions by line-based pattern matching; no stronger validation is
// performed.
package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

type Request struct {
	Type    string `json:"type"`
	Prompt  string `json:"prompt"`
	Context string `json:"context,omitempty"`
	Model   string `json:"model,omitempty"`
}

type Response struct {
	Success bool   `json:"success"`
	Content string `json:"content"`
	Model   string `json:"model"`
	Error   string `json:"error,omitempty"`
}

type Client struct {
	httpClient *resty.Client
	logger     zerolog.Logger
}

func NewClient(baseURL, apiKey string, logger zerolog.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(60 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if apiKey != "" {
		httpClient.SetAuthToken(apiKey)
	}
	return &Client{httpClient: httpClient, logger: logger}
}

// Complete sends one request to the proxy and returns the generated text.
func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	var response Response
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&response).
		Post("/generate")
	if err != nil {
		c.logger.Error().Err(err).Str("type", req.Type).Msg("ai proxy call failed")
		return "", fmt.Errorf("calling ai proxy: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("ai proxy returned status %d", resp.StatusCode())
	}
	if !response.Success {
		return "", fmt.Errorf("ai proxy error: %s", response.Error)
	}

	c.logger.Debug().
		Str("type", req.Type).
		Str("model", response.Model).
		Int("content_len", len(response.Content)).
		Msg("ai proxy response")

	return response.Content, nil
}
