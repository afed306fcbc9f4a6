package gitrepo

import (
	"fmt"

	git2go "github.com/libgit2/git2go/v34"
)

// StagedChanges lists staged paths and the subset newly added to the index.
// Both slices are repository-relative with forward slashes, in index order.
func (r *Repository) StagedChanges() (paths, added []string, err error) {
	opts := &git2go.StatusOptions{
		Show: git2go.StatusShowIndexOnly,
	}

	list, err := r.repo.StatusList(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("get status list: %w", err)
	}
	defer list.Free()

	count, err := list.EntryCount()
	if err != nil {
		return nil, nil, fmt.Errorf("count status entries: %w", err)
	}

	for i := 0; i < count; i++ {
		entry, entryErr := list.ByIndex(i)
		if entryErr != nil {
			return nil, nil, fmt.Errorf("get status entry %d: %w", i, entryErr)
		}

		path := entry.HeadToIndex.NewFile.Path
		if path == "" {
			path = entry.HeadToIndex.OldFile.Path
		}

		if path == "" {
			continue
		}

		paths = append(paths, path)

		if entry.Status&git2go.StatusIndexNew != 0 {
			added = append(added, path)
		}
	}

	return paths, added, nil
}

// StagedDiffStat summarizes the diff between HEAD and the index. On an
// unborn HEAD the whole index counts as insertions.
func (r *Repository) StagedDiffStat() (filesChanged, insertions, deletions int, err error) {
	tree, err := r.headTree()
	if err != nil {
		return 0, 0, 0, err
	}

	if tree != nil {
		defer tree.Free()
	}

	idx, err := r.repo.Index()
	if err != nil {
		return 0, 0, 0, fmt.Errorf("get index: %w", err)
	}
	defer idx.Free()

	opts, err := git2go.DefaultDiffOptions()
	if err != nil {
		return 0, 0, 0, fmt.Errorf("get diff options: %w", err)
	}

	diff, err := r.repo.DiffTreeToIndex(tree, idx, &opts)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("diff HEAD to index: %w", err)
	}

	defer func() {
		if freeErr := diff.Free(); freeErr != nil && err == nil {
			err = fmt.Errorf("free diff: %w", freeErr)
		}
	}()

	stats, err := diff.Stats()
	if err != nil {
		return 0, 0, 0, fmt.Errorf("get diff stats: %w", err)
	}

	defer func() {
		if freeErr := stats.Free(); freeErr != nil && err == nil {
			err = fmt.Errorf("free diff stats: %w", freeErr)
		}
	}()

	return stats.FilesChanged(), stats.Insertions(), stats.Deletions(), nil
}
