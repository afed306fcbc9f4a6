package classify

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// DiffStat summarizes the staged diff.
type DiffStat struct {
	FilesChanged int
	Insertions   int
	Deletions    int
}

// Suffix renders the stat as a parenthesized subject suffix, for example
// " (3 files, +120/-45)". A nil or empty stat renders as an empty string.
func (s *DiffStat) Suffix() string {
	if s == nil || s.FilesChanged == 0 {
		return ""
	}

	noun := "files"
	if s.FilesChanged == 1 {
		noun = "file"
	}

	return fmt.Sprintf(" (%d %s, +%s/-%s)",
		s.FilesChanged, noun,
		humanize.Comma(int64(s.Insertions)),
		humanize.Comma(int64(s.Deletions)))
}
