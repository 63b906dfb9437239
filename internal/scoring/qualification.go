// Package scoring computes qualification verdicts from resume and job
// description text.
package scoring

import (
	"math"
	"strings"

	"github.com/AlenSaijo/career-roadmap-generator/internal/parsing"
	"github.com/AlenSaijo/career-roadmap-generator/internal/types"
)

// Score thresholds for the verdict table.
const (
	highlyQualifiedScore = 70
	potentialMatchScore  = 40
)

// Assess classifies how well a resume matches a job description. The
// top-15 keyword checklist from the job description is checked against
// the lowercased resume via substring matching; the score is the
// rounded matched percentage, or 0 when the checklist is empty.
func Assess(resumeText, jobDescription string) *types.QualificationAssessment {
	keywords := parsing.RequiredKeywords(jobDescription)
	resumeLower := strings.ToLower(resumeText)

	matched := make([]string, 0, len(keywords))
	missing := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if strings.Contains(resumeLower, kw) {
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}

	score := 0
	if len(keywords) > 0 {
		score = int(math.Round(float64(len(matched)) / float64(len(keywords)) * 100))
	}

	assessment := &types.QualificationAssessment{
		Score:         score,
		MatchedSkills: matched,
		MissingSkills: missing,
	}

	switch {
	case score >= highlyQualifiedScore:
		assessment.Status = "Highly Qualified"
		assessment.Color = "green"
		assessment.Message = "Your resume is a strong match! You are ready to apply."
	case score >= potentialMatchScore:
		assessment.Status = "Potential Match"
		assessment.Color = "orange"
		assessment.Message = "You have some key skills, but gaps exist. Focus on the missing keywords."
	default:
		assessment.Status = "Not Qualified Yet"
		assessment.Color = "red"
		assessment.Message = "Significant skill gaps detected. Follow the roadmap to bridge them."
	}

	return assessment
}
