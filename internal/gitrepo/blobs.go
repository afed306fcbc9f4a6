package gitrepo

import (
	"fmt"

	git2go "github.com/libgit2/git2go/v34"
)

// HeadBlob returns the HEAD contents of path. Returns nil without error when
// HEAD is unborn or the path does not exist in the HEAD tree.
func (r *Repository) HeadBlob(path string) ([]byte, error) {
	tree, err := r.headTree()
	if err != nil {
		return nil, err
	}

	if tree == nil {
		return nil, nil
	}
	defer tree.Free()

	entry, err := tree.EntryByPath(path)
	if err != nil {
		if git2go.IsErrorCode(err, git2go.ErrorCodeNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("lookup tree entry %q: %w", path, err)
	}

	blob, err := r.repo.LookupBlob(entry.Id)
	if err != nil {
		return nil, fmt.Errorf("lookup blob %q: %w", path, err)
	}
	defer blob.Free()

	contents := blob.Contents()
	copied := make([]byte, len(contents))
	copy(copied, contents)

	return copied, nil
}

// IndexBlob returns the staged contents of path. Returns nil without error
// when the path is not in the index.
func (r *Repository) IndexBlob(path string) ([]byte, error) {
	idx, err := r.repo.Index()
	if err != nil {
		return nil, fmt.Errorf("get index: %w", err)
	}
	defer idx.Free()

	count := idx.EntryCount()
	for i := uint(0); i < count; i++ {
		entry, entryErr := idx.EntryByIndex(i)
		if entryErr != nil {
			return nil, fmt.Errorf("get index entry %d: %w", i, entryErr)
		}

		if entry.Path != path {
			continue
		}

		blob, blobErr := r.repo.LookupBlob(entry.Id)
		if blobErr != nil {
			return nil, fmt.Errorf("lookup blob %q: %w", path, blobErr)
		}

		contents := blob.Contents()
		copied := make([]byte, len(contents))
		copy(copied, contents)
		blob.Free()

		return copied, nil
	}

	return nil, nil
}

// StagedContents returns the staged contents of every path in paths, keyed
// by path. Paths missing from the index are skipped.
func (r *Repository) StagedContents(paths []string) (map[string][]byte, error) {
	wanted := make(map[string]bool, len(paths))
	for _, p := range paths {
		wanted[p] = true
	}

	idx, err := r.repo.Index()
	if err != nil {
		return nil, fmt.Errorf("get index: %w", err)
	}
	defer idx.Free()

	contents := make(map[string][]byte, len(paths))

	count := idx.EntryCount()
	for i := uint(0); i < count; i++ {
		entry, entryErr := idx.EntryByIndex(i)
		if entryErr != nil {
			return nil, fmt.Errorf("get index entry %d: %w", i, entryErr)
		}

		if !wanted[entry.Path] {
			continue
		}

		blob, blobErr := r.repo.LookupBlob(entry.Id)
		if blobErr != nil {
			return nil, fmt.Errorf("lookup blob %q: %w", entry.Path, blobErr)
		}

		data := blob.Contents()
		copied := make([]byte, len(data))
		copy(copied, data)
		blob.Free()

		contents[entry.Path] = copied
	}

	return contents, nil
}
