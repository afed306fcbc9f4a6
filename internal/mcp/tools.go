package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/shiptools/shiptools/internal/classify"
	"github.com/shiptools/shiptools/internal/gitrepo"
	"github.com/shiptools/shiptools/internal/render"
	"github.com/shiptools/shiptools/internal/shipit"
)

// Tool name constants.
const (
	ToolNameBatteryStatus = "battery_status"
	ToolNameSuggestCommit = "suggest_commit"
)

const batteryToolDescription = "Read the current macOS battery state " +
	"(charge, health, cycles, temperature, charger) as structured JSON."

const suggestToolDescription = "Classify the staged changes of a git " +
	"repository and suggest a conventional commit message."

// Sentinel errors for tool input validation.
var (
	// ErrEmptyRepoPath indicates the repo_path parameter is empty.
	ErrEmptyRepoPath = errors.New("repo_path parameter is required and must not be empty")
	// ErrRepoPathNotAbsolute indicates the repo_path is not an absolute path.
	ErrRepoPathNotAbsolute = errors.New("repo_path must be an absolute path")
	// ErrRepoNotFound indicates the repository path does not exist.
	ErrRepoNotFound = errors.New("repository path does not exist")
)

// BatteryStatusInput is the input schema for the battery_status tool.
type BatteryStatusInput struct{}

// SuggestCommitInput is the input schema for the suggest_commit tool.
type SuggestCommitInput struct {
	RepoPath string `json:"repo_path" jsonschema:"absolute path to a Git repository with staged changes"`
}

// SuggestCommitOutput is the structured result of the suggest_commit tool.
type SuggestCommitOutput struct {
	Message string   `json:"message"`
	Type    string   `json:"type"`
	Scope   string   `json:"scope,omitempty"`
	Paths   []string `json:"paths"`
}

// ToolOutput is a generic wrapper for tool results.
type ToolOutput struct {
	Data any `json:"data"`
}

func (s *Server) handleBatteryStatus(
	ctx context.Context,
	_ *mcpsdk.CallToolRequest,
	_ BatteryStatusInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	snapshot, err := s.collector.Collect(ctx)
	if err != nil {
		return errorResult(err)
	}

	return jsonResult(render.BuildPayload(snapshot))
}

func handleSuggestCommit(
	_ context.Context,
	_ *mcpsdk.CallToolRequest,
	input SuggestCommitInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	err := validateRepoPath(input.RepoPath)
	if err != nil {
		return errorResult(err)
	}

	repo, err := gitrepo.Open(input.RepoPath)
	if err != nil {
		return errorResult(err)
	}
	defer repo.Free()

	changes, err := shipit.BuildChangeSet(repo)
	if err != nil {
		return errorResult(err)
	}

	msg, err := classify.Classify(changes)
	if err != nil {
		return errorResult(err)
	}

	return jsonResult(SuggestCommitOutput{
		Message: msg.String(),
		Type:    msg.Type,
		Scope:   msg.Scope,
		Paths:   changes.Paths,
	})
}

func validateRepoPath(path string) error {
	if path == "" {
		return ErrEmptyRepoPath
	}

	if !filepath.IsAbs(path) {
		return ErrRepoPathNotAbsolute
	}

	_, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrRepoNotFound, path)
	}

	return nil
}

// errorResult builds a CallToolResult with isError set.
func errorResult(err error) (*mcpsdk.CallToolResult, ToolOutput, error) {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: err.Error()},
		},
		IsError: true,
	}, ToolOutput{}, nil
}

// jsonResult builds a CallToolResult with JSON-encoded content.
func jsonResult(value any) (*mcpsdk.CallToolResult, ToolOutput, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return errorResult(fmt.Errorf("encode result: %w", err))
	}

	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: string(data)},
		},
	}, ToolOutput{Data: value}, nil
}
