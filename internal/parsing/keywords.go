// Package parsing analyzes job description text into structured
// requirements and keyword checklists.
package parsing

import (
	"regexp"
	"sort"
	"strings"
)

const (
	// keywordLimit caps the checklist at the 15 most frequent terms.
	keywordLimit = 15
	// minTokenLength drops filler words such as "and" or "the".
	minTokenLength = 4
)

// tokenRe matches alphanumeric runs, the same token shape as \w+
// without the underscore class (underscores in job postings are noise).
var tokenRe = regexp.MustCompile(`[a-z0-9]+`)

// RequiredKeywords returns the top 15 most frequent significant tokens
// of the job description, lowercased. Tokens of length <= 3 are
// discarded before counting. Ordering is a stable sort by descending
// frequency with first-encounter order as the tie break.
func RequiredKeywords(jobDescription string) []string {
	tokens := tokenRe.FindAllString(strings.ToLower(jobDescription), -1)

	freq := make(map[string]int)
	order := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if len(tok) < minTokenLength {
			continue
		}
		if _, seen := freq[tok]; !seen {
			order = append(order, tok)
		}
		freq[tok]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return freq[order[i]] > freq[order[j]]
	})

	if len(order) > keywordLimit {
		order = order[:keywordLimit]
	}
	return order
}
