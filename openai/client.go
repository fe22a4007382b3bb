package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hellodash/hellodash/apierror"
	"github.com/hellodash/hellodash/health"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	chatEndpoint   = "/chat/completions"
	modelsEndpoint = "/models"

	// Completions can be slow; validation probes must not be.
	defaultTimeout  = 30 * time.Second
	validateTimeout = 10 * time.Second

	// DefaultModel is used when the request does not name one.
	DefaultModel = "gpt-3.5-turbo"

	emptyReplyFallback = "No response generated"
)

// Client wraps the OpenAI chat-completion API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new OpenAI client. The connection is not probed here;
// use Validate for an explicit health check.
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}

	client := &Client{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logger,
	}

	for _, opt := range opts {
		opt(client)
	}
	client.baseURL = strings.TrimRight(client.baseURL, "/")

	return client, nil
}

// Validate performs one bounded GET against the models endpoint and
// classifies the outcome. It never retries.
func (c *Client) Validate(ctx context.Context) health.Result {
	if c.apiKey == "" {
		return health.TransientError
	}

	ctx, cancel := context.WithTimeout(ctx, validateTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+modelsEndpoint, nil)
	if err != nil {
		return health.TransientError
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Err(err).Msg("OpenAI validation transport failure")
		return health.ClassifyTransport(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		c.logger.Debug().Err(err).Msg("OpenAI validation read failure")
		return health.TransientError
	}

	return health.ClassifyResponse(resp.StatusCode, body)
}

// Complete sends one chat-completion request and normalizes the reply.
//
// An empty transcript is rejected locally without network I/O. The request
// issues exactly one outbound call and never retries.
func (c *Client) Complete(ctx context.Context, request ChatRequest) (*ChatResult, error) {
	if len(request.Messages) == 0 {
		return nil, ErrEmptyConversation
	}
	if request.Model == "" {
		request.Model = DefaultModel
	}

	payload, err := json.Marshal(chatRequest{
		Model:       request.Model,
		Messages:    request.Messages,
		Temperature: request.Temperature,
		MaxTokens:   request.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chat request: %w", err)
	}

	body, err := c.doPost(ctx, chatEndpoint, payload)
	if err != nil {
		return nil, err
	}

	var raw chatResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode chat response: %w", err)
	}

	result := &ChatResult{
		Reply:        emptyReplyFallback,
		Model:        raw.Model,
		FinishReason: "unknown",
		Usage:        raw.Usage,
	}
	if result.Model == "" {
		result.Model = request.Model
	}
	if len(raw.Choices) > 0 {
		result.Reply = raw.Choices[0].Message.Content
		if raw.Choices[0].FinishReason != "" {
			result.FinishReason = raw.Choices[0].FinishReason
		}
	}

	c.logger.Debug().
		Str("model", result.Model).
		Int("total_tokens", result.Usage.TotalTokens).
		Str("finish_reason", result.FinishReason).
		Msg("Received chat completion from OpenAI")

	return result, nil
}

// Models returns the available chat-capable models.
func (c *Client) Models(ctx context.Context) ([]Model, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+modelsEndpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var raw modelsResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode models response: %w", err)
	}

	var models []Model
	for _, m := range raw.Data {
		if strings.HasPrefix(m.ID, "gpt-") || strings.HasPrefix(m.ID, "claude-") {
			models = append(models, m)
		}
	}
	return models, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
}

func (c *Client) doPost(ctx context.Context, endpoint string, payload []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	return c.do(req)
}

// do executes one request. Non-2xx responses become *apierror.StatusError;
// transport errors pass through for classification at the caller.
func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &apierror.StatusError{
			Service:    "openai",
			StatusCode: resp.StatusCode,
			Body:       string(body[:min(len(body), 4096)]),
		}
	}

	return body, nil
}
