// Package band models ordered score-to-label tables as closed integer
// intervals with a single invariant-checked construction step.
package band

import "fmt"

// Interval is one closed [Lo, Hi] score range mapped to a label.
type Interval struct {
	Lo    int
	Hi    int
	Label string
}

// Table maps every score in [0,100] to exactly one label. Construct via
// New; a Table that failed validation never exists.
type Table struct {
	intervals []Interval
}

// New validates that the intervals partition [0,100] with no gaps,
// overlaps, or zero-length bands, in ascending order.
func New(intervals []Interval) (*Table, error) {
	if len(intervals) == 0 {
		return nil, fmt.Errorf("%w: empty table", ErrScoreBandConfig)
	}
	next := 0
	for i, iv := range intervals {
		if iv.Label == "" {
			return nil, fmt.Errorf("%w: interval %d has no label", ErrScoreBandConfig, i)
		}
		if iv.Lo != next {
			return nil, fmt.Errorf("%w: interval %q starts at %d, want %d", ErrScoreBandConfig, iv.Label, iv.Lo, next)
		}
		if iv.Hi <= iv.Lo {
			return nil, fmt.Errorf("%w: interval %q has zero or negative length", ErrScoreBandConfig, iv.Label)
		}
		next = iv.Hi + 1
	}
	if next != 101 {
		return nil, fmt.Errorf("%w: table ends at %d, want 100", ErrScoreBandConfig, next-1)
	}
	cp := make([]Interval, len(intervals))
	copy(cp, intervals)
	return &Table{intervals: cp}, nil
}

// MustNew is for hard-coded tables that are validated by tests.
func MustNew(intervals []Interval) *Table {
	t, err := New(intervals)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the label for a score. Scores outside [0,100] are
// clamped first, so Lookup never fails on a constructed Table.
func (t *Table) Lookup(score int) string {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	for _, iv := range t.intervals {
		if score >= iv.Lo && score <= iv.Hi {
			return iv.Label
		}
	}
	// Unreachable on a validated table.
	return t.intervals[len(t.intervals)-1].Label
}

// Rank returns the position of a label in the table, lowest band first,
// or -1 when the label is not part of the table.
func (t *Table) Rank(label string) int {
	for i, iv := range t.intervals {
		if iv.Label == label {
			return i
		}
	}
	return -1
}

// LabelAt returns the label at a rank, clamping out-of-range ranks to
// the table edges.
func (t *Table) LabelAt(rank int) string {
	if rank < 0 {
		rank = 0
	}
	if rank >= len(t.intervals) {
		rank = len(t.intervals) - 1
	}
	return t.intervals[rank].Label
}

// Demote returns the label one band below the given one. The lowest
// band demotes to itself.
func (t *Table) Demote(label string) string {
	r := t.Rank(label)
	if r <= 0 {
		return t.LabelAt(0)
	}
	return t.LabelAt(r - 1)
}

// Ceiling returns the upper bound of the interval carrying the label,
// or 100 when the label is unknown.
func (t *Table) Ceiling(label string) int {
	for _, iv := range t.intervals {
		if iv.Label == label {
			return iv.Hi
		}
	}
	return 100
}

// Labels returns the labels lowest band first.
func (t *Table) Labels() []string {
	out := make([]string, len(t.intervals))
	for i, iv := range t.intervals {
		out[i] = iv.Label
	}
	return out
}
