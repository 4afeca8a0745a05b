package alignment

import (
	"fmt"
)

// VolumeBand maps a matched-evidence count range to sub-score points.
// Max < 0 marks an open-ended top band. Execution applies when no
// ownership signal was found among matched items; Ownership when at
// least one was.
type VolumeBand struct {
	Min       int
	Max       int
	Execution int
	Ownership int
}

// EvidencePolicy is the versioned evidence volume table. The source
// material carried two competing versions, so the table is selectable
// configuration rather than a hard-coded constant.
type EvidencePolicy struct {
	Name  string
	Bands []VolumeBand
}

// Built-in policy names.
const (
	PolicyOwnershipWeighted = "ownership-weighted"
	PolicyLinear            = "linear"
)

// OwnershipWeightedPolicy is the conservative default: high evidence
// bands pay out only when ownership evidence is present, and pure
// execution volume tops out at 25 of the 40 points.
func OwnershipWeightedPolicy() EvidencePolicy {
	return EvidencePolicy{
		Name: PolicyOwnershipWeighted,
		Bands: []VolumeBand{
			{Min: 0, Max: 0, Execution: 0, Ownership: 0},
			{Min: 1, Max: 2, Execution: 10, Ownership: 10},
			{Min: 3, Max: 5, Execution: 15, Ownership: 20},
			{Min: 6, Max: 10, Execution: 20, Ownership: 30},
			{Min: 11, Max: -1, Execution: 25, Ownership: 40},
		},
	}
}

// LinearPolicy is the simpler variant from the source material: points
// scale with count alone and ownership changes nothing.
func LinearPolicy() EvidencePolicy {
	return EvidencePolicy{
		Name: PolicyLinear,
		Bands: []VolumeBand{
			{Min: 0, Max: 0, Execution: 0, Ownership: 0},
			{Min: 1, Max: 2, Execution: 10, Ownership: 10},
			{Min: 3, Max: 5, Execution: 20, Ownership: 20},
			{Min: 6, Max: 10, Execution: 30, Ownership: 30},
			{Min: 11, Max: -1, Execution: 40, Ownership: 40},
		},
	}
}

// PolicyByName resolves a configured policy name.
func PolicyByName(name string) (EvidencePolicy, error) {
	switch name {
	case "", PolicyOwnershipWeighted:
		return OwnershipWeightedPolicy(), nil
	case PolicyLinear:
		return LinearPolicy(), nil
	default:
		return EvidencePolicy{}, fmt.Errorf("%w: unknown evidence policy %q", ErrInvalidPolicy, name)
	}
}

// Validate checks that bands cover counts from 0 upward with no gaps,
// end open-ended, stay within the 0-40 sub-score range, and that both
// point columns are monotonically non-decreasing in count.
func (p EvidencePolicy) Validate() error {
	if len(p.Bands) == 0 {
		return fmt.Errorf("%w: no volume bands", ErrInvalidPolicy)
	}
	next := 0
	prevExec, prevOwn := -1, -1
	for i, b := range p.Bands {
		if b.Min != next {
			return fmt.Errorf("%w: band %d starts at %d, want %d", ErrInvalidPolicy, i, b.Min, next)
		}
		last := i == len(p.Bands)-1
		if last != (b.Max < 0) {
			return fmt.Errorf("%w: only the final band may be open-ended", ErrInvalidPolicy)
		}
		if !last && b.Max < b.Min {
			return fmt.Errorf("%w: band %d is inverted", ErrInvalidPolicy, i)
		}
		if b.Execution < 0 || b.Execution > maxEvidenceScore || b.Ownership < 0 || b.Ownership > maxEvidenceScore {
			return fmt.Errorf("%w: band %d points outside [0,%d]", ErrInvalidPolicy, i, maxEvidenceScore)
		}
		if b.Execution < prevExec || b.Ownership < prevOwn {
			return fmt.Errorf("%w: band %d breaks monotonicity", ErrInvalidPolicy, i)
		}
		prevExec, prevOwn = b.Execution, b.Ownership
		next = b.Max + 1
	}
	return nil
}

// Points maps a matched-evidence count to sub-score points. Presence of
// any ownership signal among matched items selects the ownership
// column; absence keeps the count on the execution-only column no
// matter how high it climbs.
func (p EvidencePolicy) Points(count int, ownership bool) int {
	if count < 0 {
		count = 0
	}
	for _, b := range p.Bands {
		if count >= b.Min && (b.Max < 0 || count <= b.Max) {
			if ownership {
				return b.Ownership
			}
			return b.Execution
		}
	}
	return 0
}
