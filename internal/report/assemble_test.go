package report

import (
	"math/rand"
	"testing"

	"github.com/AlenSaijo/career-roadmap-generator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	specResume   = "Experienced Python developer with Docker and AWS, 5 years experience"
	specJobDesc  = "We need a Python developer with Docker, AWS, and Kubernetes experience"
	specJobTitle = "Senior Python Developer"
)

func specReport() *types.Report {
	return Generate(Options{
		Resume:         specResume,
		JobDescription: specJobDesc,
		JobTitle:       specJobTitle,
		HoursPerDay:    2,
		Sampler:        rand.New(rand.NewSource(1)),
	})
}

func TestGenerate_SpecScenario(t *testing.T) {
	rep := specReport()

	require.Len(t, rep.Roadmap, 30)
	assert.Equal(t, specJobTitle, rep.TargetRole.Title)
	assert.Contains(t, []string{"Potential Match", "Highly Qualified"},
		rep.ExtraFeatures.ResumeAnalysis.Status)

	// Required skills from the description are Python, Docker,
	// Kubernetes, AWS; the resume covers three of the four.
	assert.Equal(t, 75, rep.TargetRole.MatchPercentage)
	assert.Equal(t, 1, rep.GapAnalysis.SkillGapsCount)
}

func TestGenerate_TotalPointsMatchesRoadmapSum(t *testing.T) {
	rep := specReport()

	sum := 0
	for _, e := range rep.Roadmap {
		sum += e.Points
	}
	assert.Equal(t, sum, rep.Gamification.TotalPoints)
}

func TestGenerate_RoadmapDaysContiguous(t *testing.T) {
	rep := specReport()

	for i, e := range rep.Roadmap {
		assert.Equal(t, i+1, e.Day)
	}
}

func TestGenerate_FullyQualifiedProfileGetsDefaultFocus(t *testing.T) {
	// Resume covers every required skill, so week 1 draws from the
	// fixed filler focus set.
	rep := Generate(Options{
		Resume:         "Python, Docker, Kubernetes and AWS daily",
		JobDescription: "Python Docker Kubernetes AWS",
		JobTitle:       "Engineer",
		HoursPerDay:    2,
		Sampler:        rand.New(rand.NewSource(1)),
	})

	assert.Equal(t, 0, rep.GapAnalysis.SkillGapsCount)
	fillerSet := map[string]bool{
		"Advanced Concepts": true, "System Design": true,
		"Best Practices": true, "Review": true,
	}
	for _, e := range rep.Roadmap[:7] {
		assert.True(t, fillerSet[e.Focus], "unexpected week-1 focus %q", e.Focus)
	}
}

func TestGenerate_DefaultHoursPerDay(t *testing.T) {
	rep := Generate(Options{
		Resume:         specResume,
		JobDescription: specJobDesc,
		JobTitle:       "Engineer",
		Sampler:        rand.New(rand.NewSource(1)),
	})

	assert.Equal(t, DefaultHoursPerDay, rep.Roadmap[0].DurationHours)
}

func TestGenerate_SalaryUsesResumeExperience(t *testing.T) {
	rep := specReport()

	// Senior title bonus plus 5 years from the resume: 90000*1.75.
	assert.Equal(t, "$147,500", rep.ExtraFeatures.Salary.Min)
	assert.Equal(t, "$172,500", rep.ExtraFeatures.Salary.Max)
	assert.Equal(t, "USD", rep.ExtraFeatures.Salary.Currency)
}

func TestGenerate_SkillCheckDefaultsToPython(t *testing.T) {
	rep := specReport()

	assert.Equal(t, "What is the output of print(2 ** 3)?", rep.ExtraFeatures.SkillCheck.Question)
}

func TestGenerate_InterviewQuestionsSampled(t *testing.T) {
	rep := specReport()

	assert.NotEmpty(t, rep.ExtraFeatures.InterviewQs)
	assert.LessOrEqual(t, len(rep.ExtraFeatures.InterviewQs), 5)
}

func TestMatchPercentage_EmptyRequirementsDefaultsToFifty(t *testing.T) {
	profile := &types.Profile{}
	jobReq := &types.JobRequirements{RequiredSkills: []string{}}

	assert.Equal(t, 50, MatchPercentage(profile, jobReq))
}

func TestMatchPercentage_Rounds(t *testing.T) {
	profile := &types.Profile{Skills: types.SkillSet{Programming: []string{"Python"}}}
	jobReq := &types.JobRequirements{RequiredSkills: []string{"Python", "Go", "Rust"}}

	// 1/3 rounds to 33.
	assert.Equal(t, 33, MatchPercentage(profile, jobReq))
}
