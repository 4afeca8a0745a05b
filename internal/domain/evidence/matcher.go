// Package evidence classifies single work items against a goal's
// keyword set and scans them for ownership indicators. It never
// aggregates across items.
package evidence

import (
	"strings"

	"github.com/okian/gauge/internal/domain/keyword"
	"github.com/okian/gauge/internal/domain/model"
)

// Strength grades how well one item matches a keyword set.
type Strength int

// Match strengths. The numeric value doubles as the per-item keyword
// point contribution used by the aggregator.
const (
	StrengthNone     Strength = 0
	StrengthWeak     Strength = 1
	StrengthModerate Strength = 2
	StrengthStrong   Strength = 3
)

// String returns the lower-case name of the strength.
func (s Strength) String() string {
	switch s {
	case StrengthWeak:
		return "weak"
	case StrengthModerate:
		return "moderate"
	case StrengthStrong:
		return "strong"
	default:
		return "none"
	}
}

// Match is the classification of a single evidence item.
type Match struct {
	Strength Strength
	Signals  []model.OwnershipSignal
	Category Category // feature, test, or a noise class
	Areas    []string // inferred work areas, narrative only
}

// HasOwnership reports whether any ownership indicator was detected.
func (m Match) HasOwnership() bool {
	return len(m.Signals) > 0
}

// MatchItem scores one item against a keyword set. The strength is the
// tier of the highest-tier keyword found in the item's text; ownership
// signals come from the enumerated indicator predicates.
func MatchItem(item model.EvidenceItem, kws keyword.Set) Match {
	text := strings.ToLower(item.Title + " " + item.Body)

	best := StrengthNone
	for _, tok := range keyword.Tokenize(text) {
		if tier, ok := kws[tok]; ok && Strength(tier) > best {
			best = Strength(tier)
		}
	}

	return Match{
		Strength: best,
		Signals:  DetectOwnership(text),
		Category: CategorizeItem(item.Files),
		Areas:    AreasOf(item.Files),
	}
}
