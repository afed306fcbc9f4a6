package classify

import (
	"fmt"
	"sort"

	"github.com/src-d/enry/v2"
)

// DetectSourceLabel names the dominant programming language among staged
// source files, given their paths and contents. Ties break alphabetically.
// Returns "" when no language could be identified.
func DetectSourceLabel(contents map[string][]byte) string {
	votes := map[string]int{}

	for p, data := range contents {
		if !isSource(p) {
			continue
		}

		lang := enry.GetLanguage(p, data)
		if lang == "" || lang == enry.OtherLanguage {
			continue
		}

		votes[lang]++
	}

	if len(votes) == 0 {
		return ""
	}

	langs := make([]string, 0, len(votes))
	for lang := range votes {
		langs = append(langs, lang)
	}

	sort.Slice(langs, func(i, j int) bool {
		if votes[langs[i]] != votes[langs[j]] {
			return votes[langs[i]] > votes[langs[j]]
		}

		return langs[i] < langs[j]
	})

	return fmt.Sprintf("%s sources", langs[0])
}
