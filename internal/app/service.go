// Package service wires the scoring components into the engine invoked
// per review request by an external orchestrator.
package service

import (
	"context"
	"strings"
	"time"

	"github.com/okian/gauge/internal/domain/alignment"
	"github.com/okian/gauge/internal/domain/band"
	"github.com/okian/gauge/internal/domain/competency"
	"github.com/okian/gauge/internal/domain/dedupe"
	"github.com/okian/gauge/internal/domain/evidence"
	"github.com/okian/gauge/internal/domain/model"
	"github.com/okian/gauge/internal/domain/tenure"
	"github.com/okian/gauge/pkg/logger"
	"github.com/okian/gauge/pkg/metrics"
)

// Warning strings attached to reports.
const (
	warnTenureAssumed = "tenure unknown; scored with conservative senior profile"
	warnGoalFailed    = "goal scoring failed and was isolated"
)

// Service implements the scoring engine. It holds configuration only;
// every ScoreReview call works on fresh state and identical inputs
// always produce identical output.
type Service struct {
	aggregator   *alignment.Aggregator
	recalibrator *competency.Recalibrator
	compBands    *band.Table
	logger       logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*settings)

type settings struct {
	policy    alignment.EvidencePolicy
	bands     *band.Table
	compBands *band.Table
	dropNoise bool
	logger    logger.Logger
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithEvidencePolicy selects the evidence volume table variant.
func WithEvidencePolicy(p alignment.EvidencePolicy) Option {
	return func(s *settings) {
		s.policy = p
	}
}

// WithAlignmentBands overrides the alignment status table.
func WithAlignmentBands(t *band.Table) Option {
	return func(s *settings) {
		if t != nil {
			s.bands = t
		}
	}
}

// WithCompetencyBands overrides the competency calibration table.
func WithCompetencyBands(t *band.Table) Option {
	return func(s *settings) {
		if t != nil {
			s.compBands = t
		}
	}
}

// WithNoiseFiltering controls generated/vendor evidence exclusion.
func WithNoiseFiltering(enabled bool) Option {
	return func(s *settings) {
		s.dropNoise = enabled
	}
}

// New constructs the Service. Table and policy validation failures are
// startup failures; a Service that could misscore never exists.
func New(opts ...Option) (*Service, error) {
	cfg := &settings{
		policy:    alignment.OwnershipWeightedPolicy(),
		bands:     alignment.DefaultBands(),
		compBands: competency.DefaultBands(),
		dropNoise: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	agg, err := alignment.New(
		alignment.WithPolicy(cfg.policy),
		alignment.WithBands(cfg.bands),
		alignment.WithNoiseFiltering(cfg.dropNoise),
	)
	if err != nil {
		return nil, err
	}

	return &Service{
		aggregator:   agg,
		recalibrator: competency.NewRecalibrator(competency.WithBands(cfg.compBands)),
		compBands:    cfg.compBands,
		logger:       cfg.logger,
	}, nil
}

// ScoreReview scores every goal and recalibrates every supplied
// competency score for one actor. Goals are scored independently: a
// failure in one is recorded on that goal and never aborts the rest.
func (s *Service) ScoreReview(ctx context.Context, req model.ReviewRequest) (model.ReviewReport, error) {
	start := time.Now()

	report := model.ReviewReport{
		Actor:       req.Actor,
		WindowStart: req.WindowStart,
		WindowEnd:   req.WindowEnd,
	}

	profile := s.resolveTenure(ctx, req.Tenure, &report)
	items := dedupeEvidence(ctx, req.Evidence)
	ownership := ownershipPresent(items)

	for _, goal := range req.Goals {
		score := s.scoreGoal(ctx, goal, items, profile, &report)
		report.Alignments = append(report.Alignments, score)

		metrics.RecordGoalScored()
		metrics.RecordEvidenceMatched(score.MatchedEvidence)
		metrics.RecordAlignment(score.Total, score.Band)
		metrics.RecordGapNotes(len(score.Gaps))
		if score.TenureCapped {
			metrics.RecordTenureCap()
		}
	}

	for _, raw := range req.RawCompetencies {
		cs := s.recalibrator.Recalibrate(raw, profile, ownership)
		cs.VsTarget = competency.VsTarget(cs.RawScore, competency.Competency(cs.CompetencyID), req.Level)
		report.Competencies = append(report.Competencies, cs)

		downgraded := s.compBands.Lookup(cs.RawScore) != cs.CalibratedBand
		metrics.RecordCompetencyCalibrated(downgraded)
	}

	report.TenureBand = string(tenure.BandFor(profile))

	metrics.RecordReviewScored()
	metrics.RecordScoringDuration(float64(time.Since(start).Nanoseconds()) / 1e6)

	if s.logger != nil {
		s.logger.Info(ctx, "review scored",
			logger.String("actor", req.Actor),
			logger.Int("goals", len(report.Alignments)),
			logger.Int("competencies", len(report.Competencies)),
			logger.String("tenure_band", report.TenureBand),
		)
	}
	return report, nil
}

// scoreGoal isolates one goal's scoring so a panic in a single goal
// degrades to a zero score with a gap note instead of failing the run.
func (s *Service) scoreGoal(ctx context.Context, goal model.Goal, items []model.EvidenceItem, profile model.TenureProfile, report *model.ReviewReport) (out model.AlignmentScore) {
	defer func() {
		if r := recover(); r != nil {
			metrics.RecordGoalFailed()
			if s.logger != nil {
				s.logger.Error(ctx, "goal scoring failed",
					logger.String("goal", goal.ID),
					logger.Any("panic", r),
				)
			}
			out = model.AlignmentScore{
				GoalID: goal.ID,
				Band:   s.aggregator.Bands().LabelAt(0),
				Gaps:   []string{"scoring failed for this goal"},
			}
			report.Warnings = append(report.Warnings, warnGoalFailed)
		}
	}()
	return s.aggregator.Score(ctx, goal, items, profile)
}

// resolveTenure applies the missing-tenure policy: no roster record
// defaults to the senior profile, the most conservative assumption,
// with a warning attached to the output.
func (s *Service) resolveTenure(ctx context.Context, p *model.TenureProfile, report *model.ReviewReport) model.TenureProfile {
	if p != nil {
		return *p
	}
	metrics.RecordTenureAssumed()
	report.Warnings = append(report.Warnings, warnTenureAssumed)
	if s.logger != nil {
		s.logger.Warn(ctx, "no tenure record; assuming senior profile",
			logger.String("actor", report.Actor),
		)
	}
	return model.TenureProfile{Assumed: true}
}

// dedupeEvidence drops repeated evidence IDs without mutating the
// input slice. The aggregator dedupes again per goal; doing it here
// keeps the duplicate count observable once per run.
func dedupeEvidence(ctx context.Context, items []model.EvidenceItem) []model.EvidenceItem {
	seen := dedupe.NewInMemory()
	out := make([]model.EvidenceItem, 0, len(items))
	for _, item := range items {
		if item.ID != "" && seen.SeenAndRecord(ctx, item.ID) {
			metrics.RecordDuplicateEvidence()
			continue
		}
		out = append(out, item)
	}
	return out
}

// ownershipPresent reports whether any non-noise evidence item carries
// an ownership indicator. Feeds the competency downgrade rule.
func ownershipPresent(items []model.EvidenceItem) bool {
	for _, item := range items {
		if evidence.CategorizeItem(item.Files).IsNoise() {
			continue
		}
		text := strings.ToLower(item.Title + " " + item.Body)
		if len(evidence.DetectOwnership(text)) > 0 {
			return true
		}
	}
	return false
}
