// Package llm generates commit messages from staged diffs through hosted
// language model APIs. Two wire formats are supported: the Anthropic
// messages API for claude models and the OpenAI chat completions API for
// everything else.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrMissingAPIKey indicates the configured API key variable is unset.
var ErrMissingAPIKey = errors.New("API key environment variable is not set")

// ErrEmptyCompletion indicates the model returned no usable text.
var ErrEmptyCompletion = errors.New("model returned an empty completion")

// requestTimeout bounds a single generation call.
const requestTimeout = 60 * time.Second

// maxDiffChars caps the diff text sent to the model.
const maxDiffChars = 16000

// maxMessageTokens caps the completion length. A commit subject plus a short
// body fits comfortably.
const maxMessageTokens = 256

// systemPrompt instructs the model on output shape.
const systemPrompt = "You write git commit messages in the conventional " +
	"commits style: a type, an optional scope, and an imperative subject " +
	"under 72 characters. Reply with the commit message only, no quoting, " +
	"no markdown, no explanation."

// Request describes the staged change handed to the model.
type Request struct {
	// Paths are the staged paths.
	Paths []string
	// Diff is the unified diff of the staged change.
	Diff string
	// Branch is the current branch name, for context.
	Branch string
}

// Provider generates a commit message for a staged change.
type Provider interface {
	// GenerateMessage returns a single-line (or subject plus body) commit
	// message for the request.
	GenerateMessage(ctx context.Context, req Request) (string, error)
	// Name identifies the provider for logging.
	Name() string
}

// New builds a provider for the given model. Models named claude-* speak
// the Anthropic API; everything else goes through the OpenAI-compatible
// endpoint.
func New(model, endpoint, apiKey string) (Provider, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	if strings.HasPrefix(model, "claude") {
		return newAnthropicProvider(model, endpoint, apiKey), nil
	}

	return newOpenAIProvider(model, endpoint, apiKey), nil
}

// userPrompt renders the request as the user turn sent to the model.
func userPrompt(req Request) string {
	var b strings.Builder

	if req.Branch != "" {
		fmt.Fprintf(&b, "Branch: %s\n", req.Branch)
	}

	if len(req.Paths) > 0 {
		fmt.Fprintf(&b, "Staged files:\n")

		for _, p := range req.Paths {
			fmt.Fprintf(&b, "  %s\n", p)
		}
	}

	diff := req.Diff
	if len(diff) > maxDiffChars {
		diff = diff[:maxDiffChars] + "\n... (diff truncated)\n"
	}

	if diff != "" {
		fmt.Fprintf(&b, "\nDiff:\n%s", diff)
	}

	return b.String()
}

// cleanCompletion strips quoting and fencing models sometimes add despite
// instructions.
func cleanCompletion(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.Trim(cleaned, "\"'`")

	return strings.TrimSpace(cleaned)
}
