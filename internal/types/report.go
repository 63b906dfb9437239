package types

// RoadmapEntry is a single day of the 30-day learning plan.
// Week is 1, 2 or 4: days 15-30 are labeled week 4 and week 3 is never
// emitted. Renumbering the weeks would be a breaking change for
// existing consumers of the JSON report.
type RoadmapEntry struct {
	Day           int    `json:"day"`
	Week          int    `json:"week"`
	Focus         string `json:"focus"`
	Task          string `json:"task"`
	Points        int    `json:"points"`
	DurationHours int    `json:"duration_hours"`
}

// QualificationAssessment is the verdict of the resume-vs-job keyword check.
type QualificationAssessment struct {
	Status        string   `json:"status"`
	Score         int      `json:"score"`
	Color         string   `json:"color"`
	Message       string   `json:"message"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	// Feedback duplicates Message on the /generate path for clients that
	// read the older field name.
	Feedback string `json:"feedback,omitempty"`
}

// SalaryEstimate is a predicted salary band.
type SalaryEstimate struct {
	Min      string `json:"min"`
	Max      string `json:"max"`
	Currency string `json:"currency"`
}

// QuizItem is a single multiple-choice skill question.
type QuizItem struct {
	Question string   `json:"q"`
	Options  []string `json:"options"`
	Correct  string   `json:"correct"`
}

// TargetRole describes the job being targeted and how well the
// candidate currently matches it.
type TargetRole struct {
	Title           string `json:"title"`
	MatchPercentage int    `json:"match_percentage"`
}

// Gamification aggregates the points available across the roadmap.
type Gamification struct {
	TotalPoints int `json:"total_points"`
}

// GapSummary is the headline gap count surfaced on the report.
type GapSummary struct {
	SkillGapsCount int `json:"skill_gaps_count"`
}

// ExtraFeatures bundles the ancillary lookups attached to a report.
type ExtraFeatures struct {
	ResumeAnalysis QualificationAssessment `json:"resume_analysis"`
	Salary         SalaryEstimate          `json:"salary"`
	InterviewQs    []string                `json:"interview_questions"`
	SkillCheck     QuizItem                `json:"skill_check"`
}

// Report is the full career-development report returned by /generate.
type Report struct {
	TargetRole    TargetRole     `json:"target_role"`
	Gamification  Gamification   `json:"gamification"`
	GapAnalysis   GapSummary     `json:"gap_analysis"`
	Roadmap       []RoadmapEntry `json:"roadmap"`
	ExtraFeatures ExtraFeatures  `json:"extra_features"`
}
