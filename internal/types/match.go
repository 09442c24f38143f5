// Package types provides type definitions for structured data used throughout the cv-analyzer system.
package types

// Severity classifies an interpretation tier for display purposes.
type Severity string

const (
	SeverityDanger  Severity = "danger"
	SeverityWarning Severity = "warning"
	SeveritySuccess Severity = "success"
)

// Interpretation is one of the five fixed score tiers with its display text.
// The text is static configuration, never computed.
type Interpretation struct {
	Status   string   `json:"status"`
	Emoji    string   `json:"emoji"`
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Severity Severity `json:"color"`
}

// Stats holds the aggregate counts of an analysis. Keyword counts are
// unique-value counts, not occurrence counts.
type Stats struct {
	CVKeywords     int `json:"cv_keywords"`
	JobKeywords    int `json:"job_keywords"`
	CommonKeywords int `json:"common_keywords"`
	CVSkills       int `json:"cv_skills"`
	JobSkills      int `json:"job_skills"`
	CommonSkills   int `json:"common_skills"`
}

// SkillBreakdown lists the skills shared between the CV and the job
// posting and the ones the job asks for that the CV lacks. Both lists
// are sorted.
type SkillBreakdown struct {
	Common  []string `json:"common"`
	Missing []string `json:"missing"`
}

// RankedKeyword is one entry of the top-keywords panel: a job keyword,
// its occurrence count in the posting, and whether the CV mentions it.
type RankedKeyword struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
	InCV  bool   `json:"in_cv"`
}

// SkillSuggestion recommends adding a missing skill to the CV.
// Priority is CRITIQUE for the handful of must-have skills, IMPORTANT
// for the rest.
type SkillSuggestion struct {
	Skill    string `json:"skill"`
	Priority string `json:"priority"`
}

// KeywordSuggestion recommends adding a frequent job keyword absent
// from the CV.
type KeywordSuggestion struct {
	Keyword   string `json:"keyword"`
	Frequency int    `json:"frequency"`
}

// Suggestions groups the two suggestion kinds.
type Suggestions struct {
	Skills   []SkillSuggestion   `json:"skills"`
	Keywords []KeywordSuggestion `json:"keywords"`
}

// Improvement is the bounded score-improvement estimate. Estimated is
// hard-capped at 30; Gain may be zero or negative when the current
// score already exceeds the cap.
type Improvement struct {
	Current   float64 `json:"current"`
	Estimated float64 `json:"estimated"`
	Gain      float64 `json:"gain"`
}

// MatchResult is the single output record of an analysis, immutable
// once constructed. Interpretation is nil for non-junior profiles,
// which are a defined but unimplemented extension point.
type MatchResult struct {
	Score          float64         `json:"score"`
	Interpretation *Interpretation `json:"interpretation"`
	Stats          Stats           `json:"stats"`
	Skills         SkillBreakdown  `json:"skills"`
	TopKeywords    []RankedKeyword `json:"top_keywords"`
	Suggestions    Suggestions     `json:"suggestions"`
	Improvement    Improvement     `json:"improvement"`
}
