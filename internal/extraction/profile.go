package extraction

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/AlenSaijo/career-roadmap-generator/internal/types"
)

// Candidate experience levels.
const (
	LevelBeginner = "Beginner"
	LevelAdvanced = "Advanced"
)

const maxProjects = 5

var (
	projectRe    = regexp.MustCompile(`(?i)project[:\s]+([^\n]+)`)
	experienceRe = regexp.MustCompile(`(\d+)\+?\s*years?`)
)

// AnalyzeProfile builds a candidate Profile from resume text plus
// optional GitHub and LinkedIn text. The output is a pure function of
// its inputs and the static vocabularies; calling it twice with the
// same input yields identical output.
func AnalyzeProfile(resume, github, linkedin string) *types.Profile {
	code := resume + github
	return &types.Profile{
		Skills: types.SkillSet{
			Programming: MatchVocabulary(code, ProgrammingLanguages),
			Frameworks:  MatchVocabulary(code, Frameworks),
			Tools:       MatchVocabulary(code, Tools),
			SoftSkills:  MatchVocabulary(resume+linkedin, SoftSkills),
			Level:       AssessLevel(code),
		},
		Projects:        extractProjects(code),
		ExperienceYears: EstimateExperience(resume),
	}
}

// AssessLevel classifies a candidate as Advanced when the text mentions
// "senior" (case-insensitive), Beginner otherwise.
func AssessLevel(text string) string {
	if strings.Contains(strings.ToLower(text), "senior") {
		return LevelAdvanced
	}
	return LevelBeginner
}

// extractProjects pulls up to 5 project titles from lines of the form
// "Project: <title>".
func extractProjects(text string) []string {
	matches := projectRe.FindAllStringSubmatch(text, maxProjects)
	projects := make([]string, 0, len(matches))
	for _, m := range matches {
		projects = append(projects, m[1])
	}
	return projects
}

// EstimateExperience returns the first "<N> years" figure found in the
// text, defaulting to 1.0 when none is present.
func EstimateExperience(text string) float64 {
	m := experienceRe.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return 1.0
	}
	years, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 1.0
	}
	return years
}
