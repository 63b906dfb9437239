package parsing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequiredKeywords_DropsShortTokens(t *testing.T) {
	keywords := RequiredKeywords("We are the top team and you can join")

	assert.ElementsMatch(t, []string{"team", "join"}, keywords)
}

func TestRequiredKeywords_FrequencyRanking(t *testing.T) {
	jd := "python python python docker docker kubernetes"

	keywords := RequiredKeywords(jd)

	assert.Equal(t, []string{"python", "docker", "kubernetes"}, keywords)
}

func TestRequiredKeywords_TieBreakByFirstAppearance(t *testing.T) {
	// zulu and alpha both occur once; zulu appears first in the text and
	// must stay ahead after the stable sort.
	keywords := RequiredKeywords("zulu alpha")

	assert.Equal(t, []string{"zulu", "alpha"}, keywords)
}

func TestRequiredKeywords_CapsAtFifteen(t *testing.T) {
	words := []string{
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf",
		"hotel", "india", "juliett", "kilo", "lima", "mike", "november",
		"oscar", "papa", "quebec",
	}
	keywords := RequiredKeywords(strings.Join(words, " "))

	assert.Len(t, keywords, 15)
	assert.Equal(t, "alpha", keywords[0])
	assert.NotContains(t, keywords, "quebec")
}

func TestRequiredKeywords_Empty(t *testing.T) {
	assert.Empty(t, RequiredKeywords(""))
}

func TestAnalyzeJob_RequiredSkills(t *testing.T) {
	jd := "We need a Python developer with Docker, AWS, and Kubernetes experience"

	req := AnalyzeJob(jd)

	assert.ElementsMatch(t, []string{"Python", "Docker", "Kubernetes", "AWS"}, req.RequiredSkills)
	assert.Empty(t, req.PreferredSkills)
	assert.Empty(t, req.Responsibilities)
	assert.Empty(t, req.PriorityRanking)
}

func TestAnalyzeJob_EmptyDefaultsAreNonNil(t *testing.T) {
	req := AnalyzeJob("")

	assert.NotNil(t, req.PreferredSkills)
	assert.NotNil(t, req.Responsibilities)
	assert.NotNil(t, req.PriorityRanking)
}

func TestAnalyzeJob_Idempotent(t *testing.T) {
	jd := "Go services on Kubernetes with Jenkins pipelines"

	assert.Equal(t, AnalyzeJob(jd), AnalyzeJob(jd))
}
