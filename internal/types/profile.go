// Package types provides type definitions for structured data used throughout the career roadmap generator.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SkillSet groups the skills extracted from candidate text by category.
type SkillSet struct {
	Programming []string `json:"programming"`
	Frameworks  []string `json:"frameworks"`
	Tools       []string `json:"tools"`
	SoftSkills  []string `json:"soft_skills"`
	Level       string   `json:"level"` // "Beginner" or "Advanced"
}

// Profile represents a candidate profile derived from resume text
// (plus optional GitHub/LinkedIn text). It is built per request and
// never persisted.
type Profile struct {
	Skills          SkillSet `json:"skills"`
	Projects        []string `json:"projects"`
	ExperienceYears float64  `json:"experience_years"`
}

// AllSkills returns the union of the profile's programming, framework
// and tool skills. Soft skills are excluded from gap analysis.
func (p *Profile) AllSkills() []string {
	all := make([]string, 0, len(p.Skills.Programming)+len(p.Skills.Frameworks)+len(p.Skills.Tools))
	all = append(all, p.Skills.Programming...)
	all = append(all, p.Skills.Frameworks...)
	all = append(all, p.Skills.Tools...)
	return all
}
