package classify

import (
	"path"
	"strings"
)

// Category identifies the area of the tree a staged path belongs to.
type Category string

// Category tokens used for scope and focus-text derivation.
const (
	CategoryCode    Category = "code"
	CategoryDocs    Category = "docs"
	CategoryTests   Category = "tests"
	CategoryScripts Category = "scripts"
	CategoryConfig  Category = "config"
)

// sourcePrefix is the tree prefix that marks application source.
const sourcePrefix = "src/"

// lockFiles are dependency lock files recognized by the lock rule.
var lockFiles = map[string]bool{
	"uv.lock":           true,
	"poetry.lock":       true,
	"package-lock.json": true,
	"Cargo.lock":        true,
	"go.sum":            true,
}

// ignoreFiles are repository ignore files recognized by the ignore rule.
var ignoreFiles = map[string]bool{
	".gitignore":     true,
	".gitattributes": true,
	".dockerignore":  true,
}

// configFiles are well-known configuration file names.
var configFiles = map[string]bool{
	"pyproject.toml":          true,
	"setup.cfg":               true,
	"package.json":            true,
	"Cargo.toml":              true,
	"go.mod":                  true,
	"Makefile":                true,
	".editorconfig":           true,
	".pre-commit-config.yaml": true,
	".golangci.yml":           true,
}

// configExtensions mark root-level files as configuration by extension.
var configExtensions = map[string]bool{
	".toml": true,
	".ini":  true,
	".cfg":  true,
	".yaml": true,
	".yml":  true,
	".json": true,
}

// docsExtensions mark documentation by extension anywhere in the tree.
var docsExtensions = map[string]bool{
	".md":  true,
	".rst": true,
	".txt": true,
}

func isSource(p string) bool {
	return strings.HasPrefix(p, sourcePrefix)
}

func isDocs(p string) bool {
	if strings.HasPrefix(p, "docs/") || strings.HasPrefix(p, "doc/") {
		return true
	}

	return docsExtensions[strings.ToLower(path.Ext(p))]
}

func isTests(p string) bool {
	return strings.HasPrefix(p, "tests/") || strings.HasPrefix(p, "test/")
}

func isScripts(p string) bool {
	return strings.HasPrefix(p, "scripts/")
}

// isConfig recognizes well-known config files plus root-level files with a
// config extension. Nested paths only match by exact file name.
func isConfig(p string) bool {
	base := path.Base(p)
	if configFiles[base] {
		return true
	}

	if strings.Contains(p, "/") {
		return false
	}

	return configExtensions[strings.ToLower(path.Ext(p))]
}

func isLockFile(p string) bool {
	return lockFiles[path.Base(p)] && !strings.Contains(p, "/")
}

func isIgnoreFile(p string) bool {
	return ignoreFiles[path.Base(p)] && !strings.Contains(p, "/")
}

// categoryOf maps a staged path to its category token. Paths that match no
// recognized area count as code.
func categoryOf(p string) Category {
	switch {
	case isDocs(p):
		return CategoryDocs
	case isTests(p):
		return CategoryTests
	case isScripts(p):
		return CategoryScripts
	case isConfig(p):
		return CategoryConfig
	default:
		return CategoryCode
	}
}

func allMatch(paths []string, pred func(string) bool) bool {
	for _, p := range paths {
		if !pred(p) {
			return false
		}
	}

	return true
}

func anyMatch(paths []string, pred func(string) bool) bool {
	for _, p := range paths {
		if pred(p) {
			return true
		}
	}

	return false
}
