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

// openaiProvider speaks the OpenAI chat completions API. It also covers
// self-hosted OpenAI-compatible servers through the endpoint override.
type openaiProvider struct {
	client   *http.Client
	endpoint string
	apiKey   string
	model    string
}

func newOpenAIProvider(model, endpoint, apiKey string) *openaiProvider {
	return &openaiProvider{
		client:   &http.Client{Timeout: requestTimeout},
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKey:   apiKey,
		model:    model,
	}
}

func (p *openaiProvider) Name() string {
	return "openai"
}

type openaiRequest struct {
	Model     string          `json:"model"`
	MaxTokens int             `json:"max_tokens"`
	Messages  []openaiMessage `json:"messages"`
}

type openaiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openaiResponse struct {
	Choices []struct {
		Message openaiMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateMessage asks the model for a commit message.
func (p *openaiProvider) GenerateMessage(ctx context.Context, req Request) (string, error) {
	payload := openaiRequest{
		Model:     p.model,
		MaxTokens: maxMessageTokens,
		Messages: []openaiMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt(req)},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := p.endpoint + "/chat/completions"

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

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

	var parsed openaiResponse

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

	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", ErrEmptyCompletion
	}

	return cleanCompletion(parsed.Choices[0].Message.Content), nil
}
