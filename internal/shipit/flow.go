package shipit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"

	"github.com/shiptools/shiptools/internal/classify"
	"github.com/shiptools/shiptools/internal/config"
	"github.com/shiptools/shiptools/internal/gitrepo"
	"github.com/shiptools/shiptools/internal/llm"
	"github.com/shiptools/shiptools/internal/prompt"
)

// ErrNothingStaged indicates there is nothing to commit.
var ErrNothingStaged = errors.New("nothing staged; stage changes or pass --auto")

// ErrAborted indicates the user declined the commit.
var ErrAborted = errors.New("commit aborted")

// ErrUnknownRemote indicates the requested push remote is not configured in
// the repository.
var ErrUnknownRemote = errors.New("unknown push remote")

// GitRunner executes the git mutations of the flow.
// *gitcmd.Runner satisfies it.
type GitRunner interface {
	AddAll(ctx context.Context) error
	Commit(ctx context.Context, message string, noVerify bool) error
	Push(ctx context.Context, remote, branch string) error
}

// Options are the per-invocation settings of the commit flow.
type Options struct {
	// Message skips classification and uses this text verbatim.
	Message string
	// AutoStage stages every working tree change first.
	AutoStage bool
	// UseAI generates the message with a language model, falling back to
	// the classifier when the model is unreachable.
	UseAI bool
	// Model overrides the configured model for AI generation.
	Model string
	// Edit opens the proposed message in an editor before committing.
	Edit bool
	// DryRun previews the git commands without running them.
	DryRun bool
	// Branch overrides the push branch.
	Branch string
	// Remote overrides the push remote.
	Remote string
	// Yes skips the confirmation prompt.
	Yes bool
	// NoVerify passes --no-verify to git commit.
	NoVerify bool
	// RepoPath is the repository to operate on. Empty means the current
	// directory.
	RepoPath string
}

// Flow runs the end-to-end commit helper. Injectable fields default to
// production implementations.
type Flow struct {
	Config *config.Config
	Git    GitRunner
	In     io.Reader
	Out    io.Writer

	// OpenRepo opens the repository for inspection. Nil uses gitrepo.Open.
	OpenRepo func(path string) (Repo, error)
	// NewProvider builds the AI provider. Nil uses llm.New.
	NewProvider func(model, endpoint, apiKey string) (llm.Provider, error)
	// EditMessage opens the editor. Nil uses prompt.EditMessage.
	EditMessage func(editor, initial string) (string, error)
}

// Run executes the commit flow.
func (f *Flow) Run(ctx context.Context, opts Options) error {
	if opts.AutoStage {
		err := f.Git.AddAll(ctx)
		if err != nil {
			return err
		}
	}

	repo, err := f.openRepo(opts.RepoPath)
	if err != nil {
		return err
	}
	defer repo.Free()

	changes, err := BuildChangeSet(repo)
	if err != nil {
		return err
	}

	if len(changes.Paths) == 0 {
		return ErrNothingStaged
	}

	message, err := f.resolveMessage(ctx, repo, changes, opts)
	if err != nil {
		return err
	}

	message, err = f.confirmMessage(message, opts)
	if err != nil {
		return err
	}

	err = f.Git.Commit(ctx, message, opts.NoVerify || f.Config.Commit.NoVerify)
	if err != nil {
		return err
	}

	return f.push(ctx, repo, opts)
}

// resolveMessage picks the commit message: explicit text first, then the
// model, then the classifier.
func (f *Flow) resolveMessage(
	ctx context.Context,
	repo Repo,
	changes classify.ChangeSet,
	opts Options,
) (string, error) {
	if opts.Message != "" {
		return opts.Message, nil
	}

	if opts.UseAI {
		message, err := f.generateMessage(ctx, repo, changes, opts)
		if err == nil {
			return message, nil
		}

		color.New(color.FgYellow).Fprintf(f.Out,
			"AI generation failed (%v); falling back to classification\n", err)
	}

	msg, err := classify.Classify(changes)
	if err != nil {
		return "", err
	}

	return msg.String(), nil
}

// generateMessage asks the configured model for a commit message.
func (f *Flow) generateMessage(
	ctx context.Context,
	repo Repo,
	changes classify.ChangeSet,
	opts Options,
) (string, error) {
	model := opts.Model
	if model == "" {
		model = f.Config.AI.Model
	}

	newProvider := f.NewProvider
	if newProvider == nil {
		newProvider = llm.New
	}

	provider, err := newProvider(model, f.Config.AI.Endpoint, os.Getenv(f.Config.AI.APIKeyEnv))
	if err != nil {
		return "", err
	}

	patch, err := repo.StagedPatch()
	if err != nil {
		slog.Debug("staged patch unavailable", "error", err)
	}

	branch, err := repo.HeadBranch()
	if err != nil {
		branch = ""
	}

	return provider.GenerateMessage(ctx, llm.Request{
		Paths:  changes.Paths,
		Diff:   patch,
		Branch: branch,
	})
}

// confirmMessage runs the edit flag and the interactive prompt.
func (f *Flow) confirmMessage(message string, opts Options) (string, error) {
	editMessage := f.EditMessage
	if editMessage == nil {
		editMessage = prompt.EditMessage
	}

	if opts.Edit {
		return editMessage(prompt.ResolveEditor(f.Config.Commit.Editor), message)
	}

	if opts.Yes {
		return message, nil
	}

	outcome, err := prompt.Confirm(f.In, f.Out, message)
	if err != nil {
		return "", err
	}

	switch outcome.Action {
	case prompt.ActionAccept, prompt.ActionReplace:
		return outcome.Message, nil
	case prompt.ActionEdit:
		return editMessage(prompt.ResolveEditor(f.Config.Commit.Editor), outcome.Message)
	case prompt.ActionAbort:
	}

	return "", ErrAborted
}

// push pushes the new commit. When the implicit default remote is missing
// the push downgrades to a warning so local-only repositories still work;
// a remote named explicitly via flag or config must exist.
func (f *Flow) push(ctx context.Context, repo Repo, opts Options) error {
	remote := opts.Remote
	explicit := remote != ""

	if remote == "" {
		remote = f.Config.Commit.Remote
		explicit = remote != config.DefaultRemote
	}

	if !opts.DryRun && !repo.RemoteExists(remote) {
		if explicit {
			return fmt.Errorf("%w: %q", ErrUnknownRemote, remote)
		}

		color.New(color.FgYellow).Fprintf(f.Out,
			"remote %q not configured; skipping push\n", remote)

		return nil
	}

	branch := opts.Branch
	if branch == "" {
		branch = f.Config.Commit.Branch
	}

	if branch == "" {
		headBranch, err := repo.HeadBranch()
		if err != nil {
			return fmt.Errorf("resolve push branch: %w", err)
		}

		branch = headBranch
	}

	return f.Git.Push(ctx, remote, branch)
}

func (f *Flow) openRepo(path string) (Repo, error) {
	if f.OpenRepo != nil {
		return f.OpenRepo(path)
	}

	if path == "" {
		path = "."
	}

	return gitrepo.Open(path)
}
