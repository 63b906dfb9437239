package parsing

import (
	"github.com/AlenSaijo/career-roadmap-generator/internal/extraction"
	"github.com/AlenSaijo/career-roadmap-generator/internal/types"
)

// AnalyzeJob derives the skill requirements of a job description.
// RequiredSkills is the deduplicated union of the vocabulary categories
// found in the text. PreferredSkills, Responsibilities and
// PriorityRanking are extension points that stay empty; callers depend
// on the empty defaults being present in the JSON output.
func AnalyzeJob(jobDescription string) *types.JobRequirements {
	return &types.JobRequirements{
		RequiredSkills:   extractJobSkills(jobDescription),
		PreferredSkills:  []string{},
		Responsibilities: []string{},
		PriorityRanking:  map[string]int{},
	}
}

// extractJobSkills unions the programming, framework and tool
// vocabularies against the job description, deduplicating while
// keeping first-seen order so the output is deterministic.
func extractJobSkills(text string) []string {
	seen := make(map[string]bool)
	skills := make([]string, 0)
	for _, vocab := range [][]string{
		extraction.ProgrammingLanguages,
		extraction.Frameworks,
		extraction.Tools,
	} {
		for _, skill := range extraction.MatchVocabulary(text, vocab) {
			if !seen[skill] {
				seen[skill] = true
				skills = append(skills, skill)
			}
		}
	}
	return skills
}
