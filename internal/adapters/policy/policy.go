// Package policy loads scoring-policy overrides from YAML: the evidence
// volume table variant and custom band tables. Tables are validated on
// load; a table that does not partition [0,100] aborts startup.
package policy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/okian/gauge/internal/domain/alignment"
	"github.com/okian/gauge/internal/domain/band"
)

// file mirrors the YAML document layout.
type file struct {
	EvidencePolicy *struct {
		Name  string `yaml:"name"`
		Bands []struct {
			Min       int `yaml:"min"`
			Max       int `yaml:"max"`
			Execution int `yaml:"execution"`
			Ownership int `yaml:"ownership"`
		} `yaml:"bands"`
	} `yaml:"evidence_policy"`
	AlignmentBands  []interval `yaml:"alignment_bands"`
	CompetencyBands []interval `yaml:"competency_bands"`
}

type interval struct {
	Lo    int    `yaml:"lo"`
	Hi    int    `yaml:"hi"`
	Label string `yaml:"label"`
}

// Overrides carries whatever the policy file supplied. Nil fields mean
// "keep the built-in default".
type Overrides struct {
	Evidence        *alignment.EvidencePolicy
	AlignmentBands  *band.Table
	CompetencyBands *band.Table
}

// Load reads and validates a policy file.
func Load(path string) (Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Overrides{}, fmt.Errorf("%w: %v", ErrReadPolicy, err)
	}
	return Parse(data)
}

// Parse decodes and validates a policy document.
func Parse(data []byte) (Overrides, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Overrides{}, fmt.Errorf("%w: %v", ErrBadPolicy, err)
	}

	var out Overrides

	if f.EvidencePolicy != nil {
		p := alignment.EvidencePolicy{Name: f.EvidencePolicy.Name}
		for _, b := range f.EvidencePolicy.Bands {
			p.Bands = append(p.Bands, alignment.VolumeBand{
				Min: b.Min, Max: b.Max, Execution: b.Execution, Ownership: b.Ownership,
			})
		}
		if err := p.Validate(); err != nil {
			return Overrides{}, err
		}
		out.Evidence = &p
	}

	if len(f.AlignmentBands) > 0 {
		t, err := band.New(toIntervals(f.AlignmentBands))
		if err != nil {
			return Overrides{}, err
		}
		out.AlignmentBands = t
	}

	if len(f.CompetencyBands) > 0 {
		t, err := band.New(toIntervals(f.CompetencyBands))
		if err != nil {
			return Overrides{}, err
		}
		out.CompetencyBands = t
	}

	return out, nil
}

func toIntervals(in []interval) []band.Interval {
	out := make([]band.Interval, len(in))
	for i, iv := range in {
		out[i] = band.Interval{Lo: iv.Lo, Hi: iv.Hi, Label: iv.Label}
	}
	return out
}
