// Package competency remaps raw, inflation-prone competency scores into
// conservative qualitative bands, and hosts the upstream signal
// analyzer that produces raw scores from evidence.
package competency

import (
	"github.com/okian/gauge/internal/domain/band"
	"github.com/okian/gauge/internal/domain/model"
	"github.com/okian/gauge/internal/domain/tenure"
)

// Calibrated band labels.
const (
	BandGap         = "Gap"
	BandDeveloping  = "Developing"
	BandSolid       = "Solid"
	BandStrong      = "Strong"
	BandVeryStrong  = "Very Strong"
	BandExceptional = "Exceptional"
)

// rawDowngradeThreshold: raw scores at or above this are treated as
// upstream inflation and held at Strong unless ownership evidence backs
// them up.
const rawDowngradeThreshold = 78

// DefaultBands is the fixed calibration table.
func DefaultBands() *band.Table {
	return band.MustNew([]band.Interval{
		{Lo: 0, Hi: 20, Label: BandGap},
		{Lo: 21, Hi: 40, Label: BandDeveloping},
		{Lo: 41, Hi: 55, Label: BandSolid},
		{Lo: 56, Hi: 70, Label: BandStrong},
		{Lo: 71, Hi: 85, Label: BandVeryStrong},
		{Lo: 86, Hi: 100, Label: BandExceptional},
	})
}

// Recalibrator applies the mandatory downgrade rules.
type Recalibrator struct {
	bands *band.Table
}

// Option applies a configuration option to the Recalibrator.
type Option func(*Recalibrator)

// WithBands overrides the calibration table.
func WithBands(t *band.Table) Option {
	return func(r *Recalibrator) {
		if t != nil {
			r.bands = t
		}
	}
}

// NewRecalibrator constructs a Recalibrator with the fixed default table.
func NewRecalibrator(opts ...Option) *Recalibrator {
	r := &Recalibrator{bands: DefaultBands()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Recalibrate maps one raw competency score to its calibrated band.
// Raw scores >= 78 downgrade to at most Strong without ownership
// evidence; tenure under 6 months caps the band at Solid regardless of
// the raw score.
func (r *Recalibrator) Recalibrate(raw model.RawCompetency, profile model.TenureProfile, ownership bool) model.CompetencyScore {
	score := raw.Score
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	maxRank := len(r.bands.Labels()) - 1
	if score >= rawDowngradeThreshold && !ownership {
		if sr := r.bands.Rank(BandStrong); sr >= 0 && sr < maxRank {
			maxRank = sr
		}
	}
	if tenure.BandFor(profile) == tenure.BandNew {
		if sr := r.bands.Rank(BandSolid); sr >= 0 && sr < maxRank {
			maxRank = sr
		}
	}

	label := r.bands.Lookup(score)
	if r.bands.Rank(label) > maxRank {
		label = r.bands.LabelAt(maxRank)
	}

	return model.CompetencyScore{
		CompetencyID:   raw.CompetencyID,
		RawScore:       score,
		Cap:            r.bands.Ceiling(r.bands.LabelAt(maxRank)),
		CalibratedBand: label,
	}
}
