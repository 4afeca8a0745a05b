// Package model contains domain models passed between layers.
package model

import "time"

// Goal is a stated objective for the scoring window, immutable once loaded.
type Goal struct {
	ID          string      `json:"id"`          // stable identifier, e.g. a slug
	Title       string      `json:"title"`       // short goal title
	Description string      `json:"description"` // free-text description
	KeyResults  []KeyResult `json:"key_results,omitempty"`
}

// KeyResult is a sub-target under a goal. A nil Target marks it as
// non-quantitative; such KRs are excluded from the progress sub-score.
type KeyResult struct {
	Description string   `json:"description"`
	Target      *float64 `json:"target,omitempty"`
	Achieved    *float64 `json:"achieved,omitempty"`
}

// EvidenceItem is one observed work item: a change record, a document
// edit, or a planning-tool record, already attributed to the actor.
type EvidenceItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	Timestamp time.Time `json:"timestamp,omitzero"`
	Files     []string  `json:"files,omitempty"`  // changed paths, used for noise/area classification
	Magnitude int       `json:"magnitude"`        // size of change; narrative only, never scored
	Source    string    `json:"source,omitempty"` // origin hint, e.g. "pr", "doc", "ticket"
}

// OwnershipSignal is one recognized indicator that the actor drove work
// independently rather than merely executing assigned tasks.
type OwnershipSignal string

// Recognized ownership indicator categories.
const (
	SignalIndependentScoping    OwnershipSignal = "independent_scoping"
	SignalGapIdentification     OwnershipSignal = "gap_identification"
	SignalDecisionDriving       OwnershipSignal = "decision_driving"
	SignalCrossTeamCoordination OwnershipSignal = "cross_team_coordination"
	SignalMentoring             OwnershipSignal = "mentoring"
)

// TenureProfile captures how long the actor has been in role.
type TenureProfile struct {
	MonthsInRole int `json:"months_in_role"`
	// ExceptionalInitiative is supplied by the caller and lifts the
	// new-tenure score ceiling. It is never inferred by the engine.
	ExceptionalInitiative bool `json:"exceptional_initiative,omitempty"`
	// Assumed is set when no tenure data was available and the engine
	// fell back to the most conservative (senior) profile.
	Assumed bool `json:"assumed,omitempty"`
}

// AlignmentScore is the scored outcome for a single goal.
type AlignmentScore struct {
	GoalID          string   `json:"goal_id"`
	EvidenceScore   int      `json:"evidence_score"` // 0..40
	KeywordScore    int      `json:"keyword_score"`  // 0..30
	KRScore         int      `json:"kr_score"`       // 0..30
	Total           int      `json:"total"`          // clamped to [0,100], after tenure calibration
	Band            string   `json:"band"`
	MatchedEvidence int      `json:"matched_evidence"` // distinct items that matched this goal
	KRExceeded      bool     `json:"kr_exceeded"`      // some KR landed above its target
	TenureCapped    bool     `json:"tenure_capped"`
	Gaps            []string `json:"gaps,omitempty"` // terse gap notes, no prose
}

// RawCompetency is an externally supplied competency score, known to
// trend high from the upstream analyzer.
type RawCompetency struct {
	CompetencyID string `json:"id"`
	Score        int    `json:"score"` // 0..100
}

// CompetencyScore is a recalibrated competency outcome.
type CompetencyScore struct {
	CompetencyID   string `json:"id"`
	RawScore       int    `json:"raw_score"`
	Cap            int    `json:"cap"` // tenure/ownership-adjusted score ceiling
	CalibratedBand string `json:"calibrated_band"`
	VsTarget       string `json:"vs_target,omitempty"` // level-relative label, empty when no level known
}

// ReviewRequest is one scoring invocation: a snapshot of goals, evidence,
// tenure and raw competency scores for a single actor and window.
type ReviewRequest struct {
	Actor           string          `json:"actor"`
	WindowStart     time.Time       `json:"window_start,omitzero"`
	WindowEnd       time.Time       `json:"window_end,omitzero"`
	Goals           []Goal          `json:"goals,omitempty"`
	Evidence        []EvidenceItem  `json:"evidence,omitempty"`
	Tenure          *TenureProfile  `json:"tenure,omitempty"` // nil when the roster had no record
	RawCompetencies []RawCompetency `json:"competencies,omitempty"`
	Level           string          `json:"level,omitempty"` // optional engineer level, e.g. "P3"
}

// ReviewReport is the structured output consumed by an external
// narrative renderer. The engine never formats prose.
type ReviewReport struct {
	Actor        string            `json:"actor"`
	WindowStart  time.Time         `json:"window_start,omitzero"`
	WindowEnd    time.Time         `json:"window_end,omitzero"`
	Alignments   []AlignmentScore  `json:"alignments,omitempty"`
	Competencies []CompetencyScore `json:"competencies,omitempty"`
	TenureBand   string            `json:"tenure_band"`
	Warnings     []string          `json:"warnings,omitempty"`
}
