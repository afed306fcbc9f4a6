// Package classify derives conventional commit messages from staged change
// sets. Rules are evaluated in priority order: release bumps and
// housekeeping files first, homogeneous category sets next, source changes
// after that, and a mixed-category fallback last.
package classify

import (
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
)

// ErrEmptyChangeSet indicates classification was attempted with nothing
// staged.
var ErrEmptyChangeSet = errors.New("no staged changes to classify")

// maxFocusTokens is the largest number of category tokens spelled out in the
// mixed-change subject before collapsing to a generic phrase.
const maxFocusTokens = 2

// multipleAreasFocus replaces the token list when a mixed change touches
// more than maxFocusTokens categories.
const multipleAreasFocus = "multiple areas"

// defaultSourceLabel names source changes when no language was detected.
const defaultSourceLabel = "source"

// ChangeSet describes the staged state of a repository for classification.
type ChangeSet struct {
	// Paths are all staged paths, repository-relative with forward slashes.
	Paths []string
	// Added is the subset of Paths that are newly added to the index.
	Added []string
	// Bump is the manifest version change, if one was detected.
	Bump *VersionBump
	// Stat is the staged diff statistic, if available.
	Stat *DiffStat
	// SourceLabel names the dominant language of staged source files.
	// Empty falls back to a generic label.
	SourceLabel string
}

// Message is a conventional commit message split into its parts.
type Message struct {
	Type    string
	Scope   string
	Subject string
}

// String renders the message as "type(scope): subject" or "type: subject".
func (m Message) String() string {
	if m.Scope != "" {
		return fmt.Sprintf("%s(%s): %s", m.Type, m.Scope, m.Subject)
	}

	return fmt.Sprintf("%s: %s", m.Type, m.Subject)
}

// Classify derives a commit message for the change set. Rules run in
// priority order and the first match wins.
func Classify(changes ChangeSet) (Message, error) {
	if len(changes.Paths) == 0 {
		return Message{}, ErrEmptyChangeSet
	}

	suffix := changes.Stat.Suffix()

	if changes.Bump != nil {
		return Message{
			Type:    "chore",
			Scope:   "release",
			Subject: fmt.Sprintf("v%s%s", changes.Bump.New, suffix),
		}, nil
	}

	if len(changes.Paths) == 1 && isLockFile(changes.Paths[0]) {
		return Message{
			Type:    "chore",
			Scope:   "lock",
			Subject: fmt.Sprintf("update %s%s", path.Base(changes.Paths[0]), suffix),
		}, nil
	}

	if len(changes.Paths) == 1 && isIgnoreFile(changes.Paths[0]) {
		return Message{
			Type:    "chore",
			Scope:   "git",
			Subject: fmt.Sprintf("update %s%s", path.Base(changes.Paths[0]), suffix),
		}, nil
	}

	if msg, ok := classifyHomogeneous(changes.Paths, suffix); ok {
		return msg, nil
	}

	if msg, ok := classifySource(changes, suffix); ok {
		return msg, nil
	}

	return classifyMixed(changes, suffix), nil
}

// classifyHomogeneous handles sets where every path falls in a single
// non-source category.
func classifyHomogeneous(paths []string, suffix string) (Message, bool) {
	switch {
	case allMatch(paths, isDocs):
		return Message{Type: "docs", Subject: "update documentation" + suffix}, true
	case allMatch(paths, isTests):
		return Message{Type: "test", Subject: "update tests" + suffix}, true
	case allMatch(paths, isScripts):
		return Message{Type: "chore", Scope: "scripts", Subject: "update scripts" + suffix}, true
	case allMatch(paths, isConfig):
		return Message{Type: "chore", Scope: "config", Subject: "update configuration" + suffix}, true
	}

	return Message{}, false
}

// classifySource handles sets that touch the source tree. Newly added source
// files make it a feature, otherwise a fix.
func classifySource(changes ChangeSet, suffix string) (Message, bool) {
	if !anyMatch(changes.Paths, isSource) {
		return Message{}, false
	}

	commitType := "fix"
	if anyMatch(changes.Added, isSource) {
		commitType = "feat"
	}

	label := changes.SourceLabel
	if label == "" {
		label = defaultSourceLabel
	}

	return Message{
		Type:    commitType,
		Subject: fmt.Sprintf("update %s%s", label, suffix),
	}, true
}

// classifyMixed is the fallback for sets spanning several categories. Up to
// two category tokens name the focus; beyond that the subject collapses to a
// generic phrase.
func classifyMixed(changes ChangeSet, suffix string) Message {
	tokens := categoryTokens(changes.Paths)

	msg := Message{Type: mixedType(tokens, changes)}

	switch {
	case len(tokens) == 1:
		if msg.Type != "docs" && msg.Type != "test" {
			msg.Scope = string(tokens[0])
		}

		msg.Subject = fmt.Sprintf("update %s%s", tokens[0], suffix)
	case len(tokens) <= maxFocusTokens:
		parts := make([]string, len(tokens))
		for i, tok := range tokens {
			parts[i] = string(tok)
		}

		msg.Subject = fmt.Sprintf("update %s%s", strings.Join(parts, " and "), suffix)
	default:
		msg.Subject = fmt.Sprintf("update %s%s", multipleAreasFocus, suffix)
	}

	return msg
}

// mixedType picks the commit type for a mixed set by category presence.
func mixedType(tokens []Category, changes ChangeSet) string {
	hasCode := false
	for _, tok := range tokens {
		if tok == CategoryCode {
			hasCode = true
		}
	}

	if hasCode {
		codeAdded := func(p string) bool {
			return categoryOf(p) == CategoryCode
		}
		if anyMatch(changes.Added, codeAdded) {
			return "feat"
		}

		return "fix"
	}

	if len(tokens) == 1 {
		switch tokens[0] {
		case CategoryDocs:
			return "docs"
		case CategoryTests:
			return "test"
		}
	}

	return "chore"
}

// categoryTokens returns the sorted distinct categories present in paths.
func categoryTokens(paths []string) []Category {
	seen := map[Category]bool{}
	for _, p := range paths {
		seen[categoryOf(p)] = true
	}

	tokens := make([]Category, 0, len(seen))
	for tok := range seen {
		tokens = append(tokens, tok)
	}

	sort.Slice(tokens, func(i, j int) bool { return tokens[i] < tokens[j] })

	return tokens
}
