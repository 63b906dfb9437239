// Package report orchestrates the analysis pipeline into a full
// career-development report.
package report

import (
	"math"

	"github.com/AlenSaijo/career-roadmap-generator/internal/extraction"
	"github.com/AlenSaijo/career-roadmap-generator/internal/gaps"
	"github.com/AlenSaijo/career-roadmap-generator/internal/interview"
	"github.com/AlenSaijo/career-roadmap-generator/internal/parsing"
	"github.com/AlenSaijo/career-roadmap-generator/internal/quiz"
	"github.com/AlenSaijo/career-roadmap-generator/internal/roadmap"
	"github.com/AlenSaijo/career-roadmap-generator/internal/salary"
	"github.com/AlenSaijo/career-roadmap-generator/internal/scoring"
	"github.com/AlenSaijo/career-roadmap-generator/internal/types"
)

// DefaultHoursPerDay is used when a request leaves the study budget unset.
const DefaultHoursPerDay = 3

// defaultQuizSkill seeds the report's skill check.
const defaultQuizSkill = "python"

// emptyRequirementsMatch is the match percentage reported when the job
// yields no required skills. It deliberately differs from the scorer's
// 0 default for an empty keyword checklist: the two are independent
// formulas for different report fields.
const emptyRequirementsMatch = 50

// Options carries the inputs for a full report.
type Options struct {
	Resume         string
	JobDescription string
	JobTitle       string
	HoursPerDay    int
	// FutureCategory selects the future-skills table; empty means the
	// default Cloud category.
	FutureCategory string
	// Sampler drives interview question sampling. Nil uses a
	// time-seeded source; tests inject a fixed seed.
	Sampler interview.Source
}

// Generate runs the full pipeline: profile and job analysis, gap
// computation, roadmap assembly, and the ancillary lookups. Apart from
// interview question sampling the output is a pure function of the
// inputs and the static tables.
func Generate(opts Options) *types.Report {
	if opts.HoursPerDay == 0 {
		opts.HoursPerDay = DefaultHoursPerDay
	}
	category := opts.FutureCategory
	if category == "" {
		category = gaps.DefaultCategory
	}

	profile := extraction.AnalyzeProfile(opts.Resume, "", "")
	jobReq := parsing.AnalyzeJob(opts.JobDescription)
	gapReport := gaps.IdentifyWithCategory(profile, jobReq, category)
	plan := roadmap.Build(gapReport, opts.JobTitle, opts.HoursPerDay)

	return &types.Report{
		TargetRole: types.TargetRole{
			Title:           opts.JobTitle,
			MatchPercentage: MatchPercentage(profile, jobReq),
		},
		Gamification: types.Gamification{TotalPoints: roadmap.TotalPoints(plan)},
		GapAnalysis:  types.GapSummary{SkillGapsCount: len(gapReport.CriticalMissing)},
		Roadmap:      plan,
		ExtraFeatures: types.ExtraFeatures{
			ResumeAnalysis: *scoring.Assess(opts.Resume, opts.JobDescription),
			Salary:         salary.Predict(opts.JobTitle, profile.ExperienceYears),
			InterviewQs:    interview.Questions(opts.JobTitle, opts.Sampler),
			SkillCheck:     quiz.Lookup(defaultQuizSkill),
		},
	}
}

// MatchPercentage is the share of the job's required skills present in
// the profile, rounded to an integer percentage. An empty requirement
// set reports 50.
func MatchPercentage(profile *types.Profile, jobReq *types.JobRequirements) int {
	if len(jobReq.RequiredSkills) == 0 {
		return emptyRequirementsMatch
	}

	have := make(map[string]bool)
	for _, skill := range profile.AllSkills() {
		have[skill] = true
	}
	matched := 0
	for _, skill := range jobReq.RequiredSkills {
		if have[skill] {
			matched++
		}
	}
	return int(math.Round(float64(matched) / float64(len(jobReq.RequiredSkills)) * 100))
}
