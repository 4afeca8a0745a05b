// Package metrics provides Prometheus metrics for the gauge scoring engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the scoring engine.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Scoring throughput
	reviewsScored       prometheus.Counter
	goalsScored         prometheus.Counter
	goalsFailed         prometheus.Counter
	evidenceMatched     prometheus.Counter
	duplicateEvidence   prometheus.Counter
	scoringDurationMs   prometheus.Histogram
	alignmentTotals     prometheus.Histogram
	alignmentBandCounts *prometheus.CounterVec

	// Calibration outcomes
	competenciesCalibrated prometheus.Counter
	calibrationDowngrades  prometheus.Counter
	tenureCapsApplied      prometheus.Counter
	gapNotes               prometheus.Counter
	tenureAssumed          prometheus.Counter
}

var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "gauge",
		subsystem:        "scoring",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.reviewsScored = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "reviews_scored_total",
		Help:      "Total review requests scored",
	})
	m.goalsScored = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "goals_scored_total",
		Help:      "Total goals scored across all reviews",
	})
	m.goalsFailed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "goals_failed_total",
		Help:      "Goals whose scoring was isolated after a failure",
	})
	m.evidenceMatched = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "evidence_matched_total",
		Help:      "Evidence items that matched some goal",
	})
	m.duplicateEvidence = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "evidence_duplicates_total",
		Help:      "Evidence items dropped as duplicates",
	})
	m.scoringDurationMs = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "duration_milliseconds",
		Help:      "Wall time of one review scoring pass",
		Buckets:   m.histogramBuckets,
	})
	m.alignmentTotals = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "alignment_total",
		Help:      "Distribution of calibrated alignment totals",
		Buckets:   []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
	})
	m.alignmentBandCounts = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "alignment_band_total",
		Help:      "Alignment outcomes by status band",
	}, []string{"band"})

	m.competenciesCalibrated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "competencies_calibrated_total",
		Help:      "Raw competency scores recalibrated",
	})
	m.calibrationDowngrades = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "calibration_downgrades_total",
		Help:      "Competency scores held below their raw band",
	})
	m.tenureCapsApplied = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "tenure_caps_total",
		Help:      "Scores reduced by the tenure ceiling",
	})
	m.gapNotes = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "gap_notes_total",
		Help:      "Gap notes attached to alignment scores",
	})
	m.tenureAssumed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "tenure_assumed_total",
		Help:      "Reviews scored with the conservative default tenure",
	})
}

// RecordReviewScored increments the reviews scored counter.
func RecordReviewScored() {
	globalManager.reviewsScored.Inc()
}

// RecordGoalScored increments the goals scored counter.
func RecordGoalScored() {
	globalManager.goalsScored.Inc()
}

// RecordGoalFailed increments the isolated-failure counter.
func RecordGoalFailed() {
	globalManager.goalsFailed.Inc()
}

// RecordEvidenceMatched adds matched evidence items.
func RecordEvidenceMatched(n int) {
	globalManager.evidenceMatched.Add(float64(n))
}

// RecordDuplicateEvidence increments the duplicate evidence counter.
func RecordDuplicateEvidence() {
	globalManager.duplicateEvidence.Inc()
}

// RecordScoringDuration records one scoring pass in milliseconds.
func RecordScoringDuration(ms float64) {
	globalManager.scoringDurationMs.Observe(ms)
}

// RecordAlignment records a calibrated total and its band.
func RecordAlignment(total int, bandLabel string) {
	globalManager.alignmentTotals.Observe(float64(total))
	globalManager.alignmentBandCounts.WithLabelValues(bandLabel).Inc()
}

// RecordCompetencyCalibrated increments the calibration counter, and
// the downgrade counter when the band was held below the raw band.
func RecordCompetencyCalibrated(downgraded bool) {
	globalManager.competenciesCalibrated.Inc()
	if downgraded {
		globalManager.calibrationDowngrades.Inc()
	}
}

// RecordTenureCap increments the tenure ceiling counter.
func RecordTenureCap() {
	globalManager.tenureCapsApplied.Inc()
}

// RecordGapNotes adds attached gap notes.
func RecordGapNotes(n int) {
	globalManager.gapNotes.Add(float64(n))
}

// RecordTenureAssumed increments the conservative-default counter.
func RecordTenureAssumed() {
	globalManager.tenureAssumed.Inc()
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
