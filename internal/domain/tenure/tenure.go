// Package tenure applies tenure-based ceilings to raw scores. Short
// tenure caps the achievable score; long tenure gates the top bands on
// ownership evidence so execution volume alone cannot reach them.
package tenure

import (
	"github.com/okian/gauge/internal/domain/model"
)

// Band is the coarse months-in-role bucket.
type Band string

// Tenure bands.
const (
	BandNew         Band = "new"         // under 6 months
	BandEstablished Band = "established" // 6 to 12 months
	BandSenior      Band = "senior"      // 12 months and up
)

// Band boundaries and the new-tenure score ceiling.
const (
	establishedMonths = 6
	seniorMonths      = 12
	newTenureCap      = 60
)

// BandFor buckets months-in-role. A profile marked Assumed is always
// senior: the most conservative default when the roster had no record.
func BandFor(p model.TenureProfile) Band {
	switch {
	case p.Assumed || p.MonthsInRole >= seniorMonths:
		return BandSenior
	case p.MonthsInRole >= establishedMonths:
		return BandEstablished
	default:
		return BandNew
	}
}

// Outcome is a calibrated score plus the band-eligibility flags the
// banding step needs. The flags pass through unchanged from the rules;
// this step never invents or drops ownership evidence.
type Outcome struct {
	Score  int
	Band   Band
	Capped bool
	// OwnershipGate is set when the top bands require explicit
	// ownership evidence (senior tenure).
	OwnershipGate bool
}

// Calibrate applies the tenure rules to a raw alignment or competency
// score. New tenure caps the score at 60 unless the caller supplied the
// exceptional-initiative override; established and senior tenure leave
// the score untouched, but senior tenure flags the ownership gate.
func Calibrate(score int, p model.TenureProfile) Outcome {
	out := Outcome{Score: score, Band: BandFor(p)}

	switch out.Band {
	case BandNew:
		if !p.ExceptionalInitiative && score > newTenureCap {
			out.Score = newTenureCap
			out.Capped = true
		}
	case BandSenior:
		out.OwnershipGate = true
	case BandEstablished:
		// No ceiling, no gate.
	}
	return out
}
