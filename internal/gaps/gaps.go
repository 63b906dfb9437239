// Package gaps computes the skills a candidate is missing for a target
// job and suggests future-proofing topics.
package gaps

import (
	"github.com/AlenSaijo/career-roadmap-generator/internal/types"
)

// DefaultCategory is the future-skills category used when a job gives
// no hint; the current reference always selects Cloud.
const DefaultCategory = "Cloud"

const futureSkillCount = 3

// futureSkills maps a technology category to emerging skills worth
// learning ahead of demand.
var futureSkills = map[string][]string{
	"AI/ML":    {"MLOps", "LLM Fine-tuning", "Vector Databases", "Prompt Engineering", "AI Safety"},
	"Cloud":    {"Kubernetes", "Terraform", "Serverless", "Multi-cloud", "FinOps"},
	"Data":     {"Real-time Analytics", "Data Mesh", "dbt", "Streaming", "DataOps"},
	"Security": {"Zero Trust", "DevSecOps", "Cloud Security", "AI Security", "Privacy Engineering"},
	"Web":      {"WebAssembly", "Edge Computing", "Micro-frontends", "Web3", "Progressive Web Apps"},
}

// Identify computes the gap report for a profile against a job using
// the default future-skills category.
func Identify(profile *types.Profile, job *types.JobRequirements) *types.GapReport {
	return IdentifyWithCategory(profile, job, DefaultCategory)
}

// IdentifyWithCategory is Identify with an explicit future-skills
// category. CriticalMissing and NiceToHave are set differences and
// carry no ordering guarantee beyond first-seen order of the job's
// skill lists. Underdeveloped is an extension point that stays empty.
func IdentifyWithCategory(profile *types.Profile, job *types.JobRequirements, category string) *types.GapReport {
	have := make(map[string]bool)
	for _, skill := range profile.AllSkills() {
		have[skill] = true
	}

	return &types.GapReport{
		CriticalMissing: subtract(job.RequiredSkills, have),
		NiceToHave:      subtract(job.PreferredSkills, have),
		Underdeveloped:  []string{},
		FutureProof:     SuggestFutureSkills(category),
	}
}

// SuggestFutureSkills returns the first three future skills for a
// category, or an empty slice for an unknown category.
func SuggestFutureSkills(category string) []string {
	skills, ok := futureSkills[category]
	if !ok {
		return []string{}
	}
	if len(skills) > futureSkillCount {
		skills = skills[:futureSkillCount]
	}
	out := make([]string, len(skills))
	copy(out, skills)
	return out
}

// subtract returns the members of skills absent from have, keeping
// input order and dropping duplicates.
func subtract(skills []string, have map[string]bool) []string {
	missing := make([]string, 0, len(skills))
	seen := make(map[string]bool)
	for _, skill := range skills {
		if !have[skill] && !seen[skill] {
			seen[skill] = true
			missing = append(missing, skill)
		}
	}
	return missing
}
