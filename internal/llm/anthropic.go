package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// anthropicVersion is the required API version header value.
const anthropicVersion = "2023-06-01"

// defaultAnthropicEndpoint is used when no endpoint override is configured.
const defaultAnthropicEndpoint = "https://api.anthropic.com"

// anthropicProvider speaks the Anthropic messages API.
type anthropicProvider struct {
	client   *http.Client
	endpoint string
	apiKey   string
	model    string
}

func newAnthropicProvider(model, endpoint, apiKey string) *anthropicProvider {
	if endpoint == "" || strings.Contains(endpoint, "openai.com") {
		endpoint = defaultAnthropicEndpoint
	}

	return &anthropicProvider{
		client:   &http.Client{Timeout: requestTimeout},
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKey:   apiKey,
		model:    model,
	}
}

func (p *anthropicProvider) Name() string {
	return "anthropic"
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateMessage asks the model for a commit message.
func (p *anthropicProvider) GenerateMessage(ctx context.Context, req Request) (string, error) {
	payload := anthropicRequest{
		Model:     p.model,
		MaxTokens: maxMessageTokens,
		System:    systemPrompt,
		Messages: []anthropicMessage{
			{Role: "user", Content: userPrompt(req)},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := p.endpoint + "/v1/messages"

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", p.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)

	slog.Debug("requesting commit message", "provider", p.Name(), "model", p.model)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("call model API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var parsed anthropicResponse

	err = json.Unmarshal(respBody, &parsed)
	if err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return "", fmt.Errorf("model API error (%d): %s", resp.StatusCode, parsed.Error.Message)
		}

		return "", fmt.Errorf("model API error: status %d", resp.StatusCode)
	}

	for _, block := range parsed.Content {
		if block.Type == "text" && block.Text != "" {
			return cleanCompletion(block.Text), nil
		}
	}

	return "", ErrEmptyCompletion
}
