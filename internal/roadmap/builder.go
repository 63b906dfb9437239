// Package roadmap builds the 30-day learning plan from a gap report.
package roadmap

import (
	"fmt"
	"strings"

	"github.com/AlenSaijo/career-roadmap-generator/internal/types"
)

// Calendar layout. Days 15-30 are labeled week 4: week 3 is never
// emitted. The gap is preserved for compatibility with existing
// consumers; renumbering must be an explicit, flagged change.
const (
	totalDays = 30
	week1End  = 7
	week2End  = 14

	skillDaysPerSkill = 3
	maxFocusSkills    = 3
	integrationSkills = 2

	basePoints        = 10
	pointsPerOffset   = 5
	reviewPoints      = 5
	reviewHours       = 2
	integrationPoints = 25
	prepPoints        = 20
)

// DefaultFocusSkills fills week 1 when the gap report has no critical
// missing skills, so the roadmap is never starved of focus topics.
var DefaultFocusSkills = []string{"Advanced Concepts", "System Design", "Best Practices"}

// Build produces exactly 30 sequential day entries for the given gaps,
// job title and study hours per day. The output is fully deterministic
// for fixed inputs. HoursPerDay is taken verbatim as the duration of
// non-review entries; callers are expected to have validated it at the
// boundary.
func Build(gaps *types.GapReport, jobTitle string, hoursPerDay int) []types.RoadmapEntry {
	critical := DefaultFocusSkills
	if gaps != nil && len(gaps.CriticalMissing) > 0 {
		critical = gaps.CriticalMissing
	}

	entries := make([]types.RoadmapEntry, 0, totalDays)
	day := 1

	// Week 1: up to three consecutive days per focus skill. The cutoff
	// fires after the day counter is advanced, so day 7 is always
	// emitted before the loop exits.
	focus := critical
	if len(focus) > maxFocusSkills {
		focus = focus[:maxFocusSkills]
	}
skillLoop:
	for _, skill := range focus {
		for offset := 0; offset < skillDaysPerSkill; offset++ {
			entries = append(entries, types.RoadmapEntry{
				Day:           day,
				Week:          1,
				Focus:         skill,
				Task:          skillTask(skill, offset),
				Points:        basePoints + offset*pointsPerOffset,
				DurationHours: hoursPerDay,
			})
			day++
			if day > week1End {
				break skillLoop
			}
		}
	}
	for ; day <= week1End; day++ {
		entries = append(entries, types.RoadmapEntry{
			Day:           day,
			Week:          1,
			Focus:         "Review",
			Task:          "Review Week 1 Concepts",
			Points:        reviewPoints,
			DurationHours: reviewHours,
		})
	}

	// Week 2: one integration project entry per day.
	pair := critical
	if len(pair) > integrationSkills {
		pair = pair[:integrationSkills]
	}
	integrationTask := fmt.Sprintf("Build app using %s", strings.Join(pair, ", "))
	for ; day <= week2End; day++ {
		entries = append(entries, types.RoadmapEntry{
			Day:           day,
			Week:          2,
			Focus:         "Integration Project",
			Task:          integrationTask,
			Points:        integrationPoints,
			DurationHours: hoursPerDay,
		})
	}

	// Days 15-30, labeled week 4.
	prepTask := fmt.Sprintf("Interview Prep for %s", jobTitle)
	for ; day <= totalDays; day++ {
		entries = append(entries, types.RoadmapEntry{
			Day:           day,
			Week:          4,
			Focus:         "Advanced Prep",
			Task:          prepTask,
			Points:        prepPoints,
			DurationHours: hoursPerDay,
		})
	}

	return entries
}

// skillTask frames day 0 of a skill as fundamentals and later days as a
// mini-project.
func skillTask(skill string, offset int) string {
	if offset == 0 {
		return fmt.Sprintf("Learn %s fundamentals", skill)
	}
	return fmt.Sprintf("Build a %s mini-project", skill)
}

// TotalPoints sums points across roadmap entries.
func TotalPoints(entries []types.RoadmapEntry) int {
	total := 0
	for _, e := range entries {
		total += e.Points
	}
	return total
}
