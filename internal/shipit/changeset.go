// Package shipit orchestrates the commit flow: change classification,
// message confirmation, and the git invocations that record and push the
// result.
package shipit

import (
	"log/slog"

	"github.com/shiptools/shiptools/internal/classify"
)

// Repo is the read-side repository access the commit flow needs.
// *gitrepo.Repository satisfies it.
type Repo interface {
	StagedChanges() (paths, added []string, err error)
	StagedDiffStat() (filesChanged, insertions, deletions int, err error)
	StagedPatch() (string, error)
	StagedContents(paths []string) (map[string][]byte, error)
	HeadBlob(path string) ([]byte, error)
	IndexBlob(path string) ([]byte, error)
	HeadBranch() (string, error)
	RemoteExists(name string) bool
	Free()
}

// BuildChangeSet assembles everything the classifier needs from the staged
// state of the repository.
func BuildChangeSet(repo Repo) (classify.ChangeSet, error) {
	paths, added, err := repo.StagedChanges()
	if err != nil {
		return classify.ChangeSet{}, err
	}

	changes := classify.ChangeSet{Paths: paths, Added: added}
	if len(paths) == 0 {
		return changes, nil
	}

	filesChanged, insertions, deletions, err := repo.StagedDiffStat()
	if err != nil {
		slog.Debug("staged diff stat unavailable", "error", err)
	} else {
		changes.Stat = &classify.DiffStat{
			FilesChanged: filesChanged,
			Insertions:   insertions,
			Deletions:    deletions,
		}
	}

	changes.Bump = detectVersionBump(repo, paths)
	changes.SourceLabel = detectSourceLabel(repo, paths)

	return changes, nil
}

// detectVersionBump compares HEAD and index contents of every staged
// manifest and reports the first version change found.
func detectVersionBump(repo Repo, paths []string) *classify.VersionBump {
	for _, p := range paths {
		if !classify.IsManifest(p) {
			continue
		}

		oldContent, err := repo.HeadBlob(p)
		if err != nil {
			slog.Debug("read HEAD manifest failed", "path", p, "error", err)

			continue
		}

		newContent, err := repo.IndexBlob(p)
		if err != nil {
			slog.Debug("read staged manifest failed", "path", p, "error", err)

			continue
		}

		if bump := classify.DetectVersionBump(p, oldContent, newContent); bump != nil {
			return bump
		}
	}

	return nil
}

// detectSourceLabel names the dominant language of the staged source files.
func detectSourceLabel(repo Repo, paths []string) string {
	contents, err := repo.StagedContents(paths)
	if err != nil {
		slog.Debug("read staged contents failed", "error", err)

		return ""
	}

	return classify.DetectSourceLabel(contents)
}
