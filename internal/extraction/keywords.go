// Package extraction derives candidate profiles from free text using
// fixed skill vocabularies.
package extraction

import "strings"

// Skill vocabularies. These are immutable process-wide tables; the
// pipeline only ever reads them, so concurrent requests need no
// coordination.
var (
	ProgrammingLanguages = []string{"Python", "JavaScript", "Java", "C++", "Go", "Rust", "Scala"}
	Frameworks           = []string{"React", "Angular", "Django", "Flask", "Spring", "Node.js"}
	Tools                = []string{"Git", "Docker", "Kubernetes", "AWS", "Azure", "Jenkins"}
	SoftSkills           = []string{"leadership", "communication", "teamwork"}
)

// MatchVocabulary returns the vocabulary entries whose lowercase form
// occurs as a substring of the lowercased text.
//
// Substring matching is deliberately imprecise: "Go" matches text
// containing "Gonzalez". This is documented compatibility behavior;
// switching to word-boundary matching would change scores and must be
// flagged as a behavior change, not made silently.
func MatchVocabulary(text string, vocabulary []string) []string {
	lower := strings.ToLower(text)
	matched := make([]string, 0, len(vocabulary))
	for _, entry := range vocabulary {
		if strings.Contains(lower, strings.ToLower(entry)) {
			matched = append(matched, entry)
		}
	}
	return matched
}
