package model

// ActionType identifies which video field a remediation action targets.
type ActionType string

const (
	ActionTitle       ActionType = "title"
	ActionDescription ActionType = "description"
	ActionTags        ActionType = "tags"
	ActionEngagement  ActionType = "engagement"
)

// Action is a copy-paste-ready remediation suggestion tied to one failed
// scoring rule. Only the fields relevant to the rule are populated.
type Action struct {
	Type        ActionType `json:"type"`
	Issue       string     `json:"issue"`
	Current     string     `json:"current,omitempty"`
	Recommended string     `json:"recommended,omitempty"`
	Why         string     `json:"why,omitempty"`

	Alternatives []string `json:"alternatives,omitempty"`
	Template     string   `json:"template,omitempty"`
	AddThese     []string `json:"addThese,omitempty"`
	Actions      []string `json:"actions,omitempty"`
	Suggestions  []string `json:"suggestions,omitempty"`
}

// ScoreResult is the outcome of scoring a single video. Score starts at 100,
// is only ever decremented by fixed per-rule penalties, and is clamped into
// [0,100]. Produced fresh per video per analysis run; never mutated after.
type ScoreResult struct {
	Score           int      `json:"score"`
	Issues          []string `json:"issues"`
	Strengths       []string `json:"strengths"`
	SpecificActions []Action `json:"specificActions"`
}
