package roadmap

import (
	"testing"

	"github.com/AlenSaijo/career-roadmap-generator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gapsWith(critical ...string) *types.GapReport {
	return &types.GapReport{CriticalMissing: critical}
}

func TestBuild_ThirtyContiguousDays(t *testing.T) {
	entries := Build(gapsWith("Kubernetes", "Terraform"), "Platform Engineer", 3)

	require.Len(t, entries, 30)
	for i, e := range entries {
		assert.Equal(t, i+1, e.Day)
	}
}

func TestBuild_WeekLabels(t *testing.T) {
	entries := Build(gapsWith("Kubernetes"), "SRE", 2)

	weeks := make(map[int]bool)
	for _, e := range entries {
		weeks[e.Week] = true
	}
	// Week 3 is never emitted; days 15-30 carry week 4.
	assert.Equal(t, map[int]bool{1: true, 2: true, 4: true}, weeks)
	assert.Equal(t, 2, entries[7].Week)
	assert.Equal(t, 4, entries[14].Week)
	assert.Equal(t, 4, entries[29].Week)
}

func TestBuild_WeekOneSkillRotation(t *testing.T) {
	entries := Build(gapsWith("Kubernetes", "Terraform", "Ansible"), "DevOps Engineer", 4)

	// Three days per skill: fundamentals then mini-projects, 10/15/20
	// points, until the day counter passes 7.
	assert.Equal(t, "Learn Kubernetes fundamentals", entries[0].Task)
	assert.Equal(t, 10, entries[0].Points)
	assert.Equal(t, "Build a Kubernetes mini-project", entries[1].Task)
	assert.Equal(t, 15, entries[1].Points)
	assert.Equal(t, 20, entries[2].Points)
	assert.Equal(t, "Learn Terraform fundamentals", entries[3].Task)
	assert.Equal(t, "Ansible", entries[6].Focus)
	assert.Equal(t, 10, entries[6].Points)
}

func TestBuild_WeekOneReviewFiller(t *testing.T) {
	entries := Build(gapsWith("Kubernetes"), "SRE", 3)

	// One skill covers days 1-3; days 4-7 fall back to review entries
	// with fixed points and duration.
	for day := 4; day <= 7; day++ {
		e := entries[day-1]
		assert.Equal(t, "Review", e.Focus)
		assert.Equal(t, "Review Week 1 Concepts", e.Task)
		assert.Equal(t, 5, e.Points)
		assert.Equal(t, 2, e.DurationHours)
	}
}

func TestBuild_WeekTwoIntegration(t *testing.T) {
	entries := Build(gapsWith("Kubernetes", "Terraform", "Ansible"), "DevOps Engineer", 3)

	for day := 8; day <= 14; day++ {
		e := entries[day-1]
		assert.Equal(t, "Integration Project", e.Focus)
		assert.Equal(t, "Build app using Kubernetes, Terraform", e.Task)
		assert.Equal(t, 25, e.Points)
		assert.Equal(t, 3, e.DurationHours)
	}
}

func TestBuild_InterviewPrepReferencesJobTitle(t *testing.T) {
	entries := Build(gapsWith("Kubernetes"), "Senior Python Developer", 3)

	for day := 15; day <= 30; day++ {
		e := entries[day-1]
		assert.Equal(t, "Advanced Prep", e.Focus)
		assert.Equal(t, "Interview Prep for Senior Python Developer", e.Task)
		assert.Equal(t, 20, e.Points)
	}
}

func TestBuild_EmptyGapsUseDefaultFocus(t *testing.T) {
	entries := Build(&types.GapReport{}, "Engineer", 3)

	require.Len(t, entries, 30)
	focuses := map[string]bool{}
	for _, e := range entries[:7] {
		focuses[e.Focus] = true
	}
	for focus := range focuses {
		assert.Contains(t, append(DefaultFocusSkills, "Review"), focus)
	}
	assert.Equal(t, "Build app using Advanced Concepts, System Design", entries[7].Task)
}

func TestBuild_NilGaps(t *testing.T) {
	entries := Build(nil, "Engineer", 3)

	require.Len(t, entries, 30)
	assert.Equal(t, "Learn Advanced Concepts fundamentals", entries[0].Task)
}

func TestBuild_Deterministic(t *testing.T) {
	a := Build(gapsWith("Kubernetes", "Terraform"), "SRE", 2)
	b := Build(gapsWith("Kubernetes", "Terraform"), "SRE", 2)

	assert.Equal(t, a, b)
}

func TestBuild_HoursPropagateVerbatim(t *testing.T) {
	// The builder does not validate hours; rejection happens at the
	// request boundary.
	entries := Build(gapsWith("Kubernetes"), "SRE", 0)

	assert.Equal(t, 0, entries[0].DurationHours)
	assert.Equal(t, 2, entries[3].DurationHours) // review filler keeps its fixed duration
}

func TestTotalPoints_FullGapSet(t *testing.T) {
	entries := Build(gapsWith("Kubernetes", "Terraform", "Ansible"), "SRE", 3)

	// Week 1: 10+15+20 twice plus a trailing 10; week 2: 7x25; week 4: 16x20.
	assert.Equal(t, 100+175+320, TotalPoints(entries))
}
