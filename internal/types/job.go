package types

// JobRequirements represents the skill demands derived from a job
// description. RequiredSkills carries unordered set semantics and is
// deduplicated. PreferredSkills, Responsibilities and PriorityRanking
// are extension points that are currently always empty; their empty
// defaults are part of the wire contract and must be preserved.
type JobRequirements struct {
	RequiredSkills   []string       `json:"required_skills"`
	PreferredSkills  []string       `json:"preferred_skills"`
	Responsibilities []string       `json:"responsibilities"`
	PriorityRanking  map[string]int `json:"priority_ranking"`
}

// GapReport holds the skills a candidate is missing relative to a job.
type GapReport struct {
	CriticalMissing []string `json:"critical_missing"`
	NiceToHave      []string `json:"nice_to_have"`
	Underdeveloped  []string `json:"underdeveloped"`
	FutureProof     []string `json:"future_proof"`
}
