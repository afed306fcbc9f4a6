package classify

import (
	"path"
	"regexp"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// VersionBump records a manifest version change between HEAD and the index.
type VersionBump struct {
	Old string
	New string
}

// manifestVersionPatterns extract the version value from a manifest line,
// keyed by file name.
var manifestVersionPatterns = map[string]*regexp.Regexp{
	"pyproject.toml": regexp.MustCompile(`^\s*version\s*=\s*"([^"]+)"`),
	"Cargo.toml":     regexp.MustCompile(`^\s*version\s*=\s*"([^"]+)"`),
	"package.json":   regexp.MustCompile(`^\s*"version"\s*:\s*"([^"]+)"`),
	"setup.cfg":      regexp.MustCompile(`^\s*version\s*=\s*(\S+)`),
}

// IsManifest reports whether p is a manifest file with a recognized version
// field.
func IsManifest(p string) bool {
	_, ok := manifestVersionPatterns[path.Base(p)]

	return ok
}

// DetectVersionBump compares the HEAD and index contents of a manifest and
// returns the version change, or nil when the version field did not move.
// The diff runs in line mode so only changed lines are inspected.
func DetectVersionBump(manifestPath string, oldContent, newContent []byte) *VersionBump {
	pattern, ok := manifestVersionPatterns[path.Base(manifestPath)]
	if !ok {
		return nil
	}

	dmp := diffmatchpatch.New()

	oldChars, newChars, lines := dmp.DiffLinesToChars(string(oldContent), string(newContent))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(oldChars, newChars, false), lines)

	var oldVersion, newVersion string

	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			if v := firstVersionMatch(pattern, d.Text); v != "" && oldVersion == "" {
				oldVersion = v
			}
		case diffmatchpatch.DiffInsert:
			if v := firstVersionMatch(pattern, d.Text); v != "" && newVersion == "" {
				newVersion = v
			}
		case diffmatchpatch.DiffEqual:
		}
	}

	if newVersion == "" || newVersion == oldVersion {
		return nil
	}

	return &VersionBump{Old: oldVersion, New: newVersion}
}

func firstVersionMatch(pattern *regexp.Regexp, text string) string {
	for _, line := range strings.Split(text, "\n") {
		if m := pattern.FindStringSubmatch(line); m != nil {
			return m[1]
		}
	}

	return ""
}
