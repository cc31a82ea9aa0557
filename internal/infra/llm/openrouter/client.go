package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/yanqian/what-to-wear/pkg/errors"
)

const defaultTimeout = 30 * time.Second

// Message mirrors the OpenAI-compatible chat message structure.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

// Client performs chat completion requests against an OpenAI-compatible
// endpoint such as OpenRouter.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewClient constructs an LLM client with a bounded per-request timeout.
func NewClient(endpoint, apiKey string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(endpoint) == "" {
		return nil, errors.New("llm endpoint cannot be empty")
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("llm api key cannot be empty")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Complete sends a single-message user prompt and returns the raw response
// body on success. One attempt per call.
func (c *Client) Complete(ctx context.Context, model, prompt string) ([]byte, error) {
	payload, err := json.Marshal(completionRequest{
		Model:    model,
		Messages: []Message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, "encode completion request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, "build completion request", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeServiceUnavailable, "llm endpoint unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, apperrors.WrapStatus(apperrors.CodeLLMProvider,
			fmt.Sprintf("llm request failed: status=%d body=%s", resp.StatusCode, string(body)),
			resp.StatusCode, nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeServiceUnavailable, "read completion response", err)
	}
	return body, nil
}
