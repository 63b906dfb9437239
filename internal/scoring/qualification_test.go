package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssess_EmptyJobDescription(t *testing.T) {
	a := Assess("Experienced Python developer", "")

	assert.Equal(t, 0, a.Score)
	assert.Equal(t, "Not Qualified Yet", a.Status)
	assert.Equal(t, "red", a.Color)
	assert.Empty(t, a.MatchedSkills)
	assert.Empty(t, a.MissingSkills)
}

func TestAssess_FullMatch(t *testing.T) {
	resume := "python docker kubernetes"
	jd := "python docker kubernetes"

	a := Assess(resume, jd)

	assert.Equal(t, 100, a.Score)
	assert.Equal(t, "Highly Qualified", a.Status)
	assert.Equal(t, "green", a.Color)
	assert.ElementsMatch(t, []string{"python", "docker", "kubernetes"}, a.MatchedSkills)
}

func TestAssess_ScoreWithinRange(t *testing.T) {
	resumes := []string{"", "python", "python docker aws terraform kubernetes"}
	jd := "python docker aws kubernetes terraform ansible"

	for _, resume := range resumes {
		a := Assess(resume, jd)
		assert.GreaterOrEqual(t, a.Score, 0)
		assert.LessOrEqual(t, a.Score, 100)
	}
}

func TestAssess_SpecScenario(t *testing.T) {
	resume := "Experienced Python developer with Docker and AWS, 5 years experience"
	jd := "We need a Python developer with Docker, AWS, and Kubernetes experience"

	a := Assess(resume, jd)

	assert.Contains(t, []string{"Potential Match", "Highly Qualified"}, a.Status)
	assert.Contains(t, a.MissingSkills, "kubernetes")
}

func TestAssess_ScoreRounds(t *testing.T) {
	// Two of three keywords matched: 66.67 rounds to 67.
	a := Assess("alpha bravo", "alpha bravo charlie")

	assert.Equal(t, 67, a.Score)
	assert.Equal(t, "Potential Match", a.Status)
}
