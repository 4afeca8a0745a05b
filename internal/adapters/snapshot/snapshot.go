// Package snapshot loads review snapshot JSON produced by the external
// retrieval layer into domain models. Parsing is tolerant: optional
// fields default rather than fail, since upstream exporters vary.
package snapshot

import (
	"fmt"
	"os"
	"time"

	"github.com/tidwall/gjson"

	"github.com/okian/gauge/internal/domain/model"
)

// Load reads and parses a snapshot file.
func Load(path string) (model.ReviewRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.ReviewRequest{}, fmt.Errorf("%w: %v", ErrReadSnapshot, err)
	}
	return Parse(data)
}

// Parse decodes a snapshot document.
func Parse(data []byte) (model.ReviewRequest, error) {
	if !gjson.ValidBytes(data) {
		return model.ReviewRequest{}, fmt.Errorf("%w: not valid JSON", ErrBadSnapshot)
	}
	doc := gjson.ParseBytes(data)

	req := model.ReviewRequest{
		Actor: doc.Get("actor").String(),
		Level: doc.Get("level").String(),
	}

	if t := doc.Get("tenure"); t.Exists() {
		req.Tenure = &model.TenureProfile{
			MonthsInRole:          int(t.Get("months_in_role").Int()),
			ExceptionalInitiative: t.Get("exceptional_initiative").Bool(),
		}
		if req.Tenure.MonthsInRole < 0 {
			return model.ReviewRequest{}, fmt.Errorf("%w: negative months_in_role", ErrBadSnapshot)
		}
	}

	doc.Get("goals").ForEach(func(_, g gjson.Result) bool {
		goal := model.Goal{
			ID:          g.Get("id").String(),
			Title:       g.Get("title").String(),
			Description: g.Get("description").String(),
		}
		g.Get("key_results").ForEach(func(_, kr gjson.Result) bool {
			goal.KeyResults = append(goal.KeyResults, parseKeyResult(kr))
			return true
		})
		req.Goals = append(req.Goals, goal)
		return true
	})

	doc.Get("evidence").ForEach(func(_, e gjson.Result) bool {
		item := model.EvidenceItem{
			ID:        e.Get("id").String(),
			Title:     e.Get("title").String(),
			Body:      e.Get("body").String(),
			Magnitude: int(e.Get("magnitude").Int()),
			Source:    e.Get("source").String(),
		}
		if ts := e.Get("timestamp"); ts.Exists() {
			if parsed, err := time.Parse(time.RFC3339, ts.String()); err == nil {
				item.Timestamp = parsed.UTC()
			}
		}
		e.Get("files").ForEach(func(_, f gjson.Result) bool {
			item.Files = append(item.Files, f.String())
			return true
		})
		req.Evidence = append(req.Evidence, item)
		return true
	})

	doc.Get("competencies").ForEach(func(_, c gjson.Result) bool {
		req.RawCompetencies = append(req.RawCompetencies, model.RawCompetency{
			CompetencyID: c.Get("id").String(),
			Score:        int(c.Get("score").Int()),
		})
		return true
	})

	return req, nil
}

// parseKeyResult keeps target/achieved optional: a KR without a numeric
// target is non-quantitative and excluded from the progress sub-score
// downstream.
func parseKeyResult(kr gjson.Result) model.KeyResult {
	out := model.KeyResult{Description: kr.Get("description").String()}
	if t := kr.Get("target"); t.Exists() && t.Type == gjson.Number {
		v := t.Float()
		out.Target = &v
	}
	if a := kr.Get("achieved"); a.Exists() && a.Type == gjson.Number {
		v := a.Float()
		out.Achieved = &v
	}
	return out
}
