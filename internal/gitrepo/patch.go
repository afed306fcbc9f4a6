package gitrepo

import (
	"fmt"
	"strings"

	git2go "github.com/libgit2/git2go/v34"
)

// StagedPatch renders the diff between HEAD and the index as unified patch
// text.
func (r *Repository) StagedPatch() (string, error) {
	tree, err := r.headTree()
	if err != nil {
		return "", err
	}

	if tree != nil {
		defer tree.Free()
	}

	idx, err := r.repo.Index()
	if err != nil {
		return "", fmt.Errorf("get index: %w", err)
	}
	defer idx.Free()

	opts, err := git2go.DefaultDiffOptions()
	if err != nil {
		return "", fmt.Errorf("get diff options: %w", err)
	}

	diff, err := r.repo.DiffTreeToIndex(tree, idx, &opts)
	if err != nil {
		return "", fmt.Errorf("diff HEAD to index: %w", err)
	}

	defer func() {
		_ = diff.Free()
	}()

	count, err := diff.NumDeltas()
	if err != nil {
		return "", fmt.Errorf("count deltas: %w", err)
	}

	var b strings.Builder

	for i := 0; i < count; i++ {
		patch, patchErr := diff.Patch(i)
		if patchErr != nil {
			return "", fmt.Errorf("get patch %d: %w", i, patchErr)
		}

		text, textErr := patch.String()
		if textErr == nil {
			b.WriteString(text)
		}

		_ = patch.Free()

		if textErr != nil {
			return "", fmt.Errorf("render patch %d: %w", i, textErr)
		}
	}

	return b.String(), nil
}
