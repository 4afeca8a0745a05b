// Package alignment combines evidence-volume, keyword-relevance and
// key-result-progress sub-scores into one 0-100 goal alignment score
// with a status band and gap notes.
package alignment

import (
	"context"
	"math"
	"strings"

	"github.com/okian/gauge/internal/domain/band"
	"github.com/okian/gauge/internal/domain/dedupe"
	"github.com/okian/gauge/internal/domain/evidence"
	"github.com/okian/gauge/internal/domain/keyword"
	"github.com/okian/gauge/internal/domain/model"
	"github.com/okian/gauge/internal/domain/tenure"
)

// Sub-score ceilings and the total clamp range.
const (
	maxEvidenceScore = 40
	maxKeywordScore  = 30
	maxKRScore       = 30
	maxTotal         = 100
)

// overachieveEpsilon is the slack allowed above a KR target before the
// ratio is truncated. Anything above target lands in the top bucket and
// is flagged as exceeded either way.
const overachieveEpsilon = 0.05

// Status band labels for the default alignment table.
const (
	BandNeedsAttention = "Needs Attention"
	BandInProgress     = "In Progress"
	BandOnTrack        = "On Track"
	BandStrong         = "Strong"
	BandExceeded       = "Exceeded"
)

// Gap note strings. Terse by contract: the narrative renderer owns prose.
const (
	gapNoEvidence   = "no supporting evidence found"
	gapNoKRProgress = "no key-result progress recorded"
	gapNoOwnership  = "no ownership evidence"
	gapMalformed    = "goal missing title or description"
)

// DefaultBands is the stock alignment status table.
func DefaultBands() *band.Table {
	return band.MustNew([]band.Interval{
		{Lo: 0, Hi: 20, Label: BandNeedsAttention},
		{Lo: 21, Hi: 40, Label: BandInProgress},
		{Lo: 41, Hi: 60, Label: BandOnTrack},
		{Lo: 61, Hi: 80, Label: BandStrong},
		{Lo: 81, Hi: 100, Label: BandExceeded},
	})
}

// Aggregator scores goals. It is stateless between calls; every Score
// invocation builds fresh working state and never mutates its inputs.
type Aggregator struct {
	policy    EvidencePolicy
	bands     *band.Table
	dropNoise bool
}

// Option applies a configuration option to the Aggregator.
type Option func(*Aggregator)

// WithPolicy selects the evidence volume table variant.
func WithPolicy(p EvidencePolicy) Option {
	return func(a *Aggregator) {
		a.policy = p
	}
}

// WithBands overrides the status band table.
func WithBands(t *band.Table) Option {
	return func(a *Aggregator) {
		if t != nil {
			a.bands = t
		}
	}
}

// WithNoiseFiltering controls whether items classified as generated,
// vendored or build output are excluded from matching. On by default.
func WithNoiseFiltering(enabled bool) Option {
	return func(a *Aggregator) {
		a.dropNoise = enabled
	}
}

// New constructs an Aggregator, validating the selected policy. An
// invalid policy or band table is a startup failure, never a silent
// misscore.
func New(opts ...Option) (*Aggregator, error) {
	a := &Aggregator{
		policy:    OwnershipWeightedPolicy(),
		bands:     DefaultBands(),
		dropNoise: true,
	}
	for _, opt := range opts {
		opt(a)
	}
	if err := a.policy.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Bands exposes the status table in use, for callers that need ranks.
func (a *Aggregator) Bands() *band.Table {
	return a.bands
}

// Score computes the alignment of one goal against the actor's evidence
// in the scoring window. Items outside the window are the caller's
// responsibility; duplicates by ID are dropped here.
func (a *Aggregator) Score(ctx context.Context, goal model.Goal, items []model.EvidenceItem, profile model.TenureProfile) model.AlignmentScore {
	out := model.AlignmentScore{GoalID: goal.ID}

	malformed := strings.TrimSpace(goal.Title) == "" || strings.TrimSpace(goal.Description) == ""
	kws := keyword.Extract(goal.Title, goal.Description)

	// De-duplicate, drop noise, and classify what remains.
	seen := dedupe.NewInMemory()
	matched := 0
	ownership := false
	for _, item := range items {
		if item.ID != "" && seen.SeenAndRecord(ctx, item.ID) {
			continue
		}
		m := evidence.MatchItem(item, kws)
		if a.dropNoise && m.Category.IsNoise() {
			continue
		}
		if m.Strength == evidence.StrengthNone {
			continue
		}
		matched++
		if m.HasOwnership() {
			ownership = true
		}
		if !malformed {
			out.KeywordScore += int(m.Strength)
		}
	}
	if out.KeywordScore > maxKeywordScore {
		out.KeywordScore = maxKeywordScore
	}
	out.MatchedEvidence = matched
	out.EvidenceScore = a.policy.Points(matched, ownership)

	out.KRScore, out.KRExceeded = scoreKeyResults(goal.KeyResults)

	subtotal := clampTotal(out.EvidenceScore + out.KeywordScore + out.KRScore)

	// Tenure ceiling applies before banding.
	cal := tenure.Calibrate(subtotal, profile)
	out.Total = cal.Score
	out.TenureCapped = cal.Capped
	out.Band = a.bandFor(out.Total, ownership, cal.OwnershipGate)

	out.Gaps = a.gapNotes(goal, matched, ownership, out.KRScore, malformed)
	return out
}

// bandFor maps a calibrated total to its status band and applies the
// ownership demotion rules: the top band always requires ownership
// evidence, and senior tenure gates every band from Strong upward.
func (a *Aggregator) bandFor(total int, ownership, gate bool) string {
	label := a.bands.Lookup(total)
	if !ownership {
		top := a.bands.LabelAt(a.bands.Rank(BandExceeded))
		if label == top {
			label = a.bands.Demote(label)
		}
		if gate {
			strongRank := a.bands.Rank(BandStrong)
			if strongRank > 0 && a.bands.Rank(label) >= strongRank {
				label = a.bands.LabelAt(strongRank - 1)
			}
		}
	}
	return label
}

func (a *Aggregator) gapNotes(goal model.Goal, matched int, ownership bool, krScore int, malformed bool) []string {
	var gaps []string
	if malformed {
		gaps = append(gaps, gapMalformed)
	}
	if matched == 0 {
		gaps = append(gaps, gapNoEvidence)
	}
	if krScore == 0 {
		gaps = append(gaps, gapNoKRProgress)
	}
	if !ownership {
		gaps = append(gaps, gapNoOwnership)
	}
	return gaps
}

// scoreKeyResults buckets each quantitative KR's achieved/target ratio
// and averages across them. Goals with no quantitative KRs score zero.
func scoreKeyResults(krs []model.KeyResult) (score int, exceeded bool) {
	sum, n := 0, 0
	for _, kr := range krs {
		if kr.Target == nil || *kr.Target <= 0 {
			continue
		}
		achieved := 0.0
		if kr.Achieved != nil {
			achieved = *kr.Achieved
		}
		ratio := achieved / *kr.Target
		if ratio > 1 {
			exceeded = true
			if ratio > 1+overachieveEpsilon {
				ratio = 1 + overachieveEpsilon
			}
		}
		sum += krBucket(ratio)
		n++
	}
	if n == 0 {
		return 0, false
	}
	return int(math.Round(float64(sum) / float64(n))), exceeded
}

// krBucket maps a progress ratio to points. Monotonic step table; over
// 100% pays the same as 100%.
func krBucket(ratio float64) int {
	switch {
	case ratio <= 0:
		return 0
	case ratio <= 0.25:
		return 8
	case ratio <= 0.50:
		return 15
	case ratio <= 0.75:
		return 22
	default:
		return maxKRScore
	}
}

func clampTotal(v int) int {
	if v < 0 {
		return 0
	}
	if v > maxTotal {
		return maxTotal
	}
	return v
}
