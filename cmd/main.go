package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/okian/gauge/internal/adapters/policy"
	"github.com/okian/gauge/internal/adapters/snapshot"
	app "github.com/okian/gauge/internal/app"
	"github.com/okian/gauge/internal/config"
	"github.com/okian/gauge/internal/domain/alignment"
	"github.com/okian/gauge/internal/domain/band"
	"github.com/okian/gauge/internal/domain/daterange"
	"github.com/okian/gauge/internal/domain/model"
	"github.com/okian/gauge/pkg/logger"
	"github.com/okian/gauge/pkg/metrics"
)

// HTTP server timeout constants for the optional metrics endpoint.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

// envelope wraps the report with run metadata. The report body stays
// deterministic; only the envelope varies between runs.
type envelope struct {
	RunID       string             `json:"run_id"`
	GeneratedAt time.Time          `json:"generated_at"`
	Window      string             `json:"window,omitempty"`
	Report      model.ReviewReport `json:"report"`
}

func main() {
	os.Exit(run())
}

func run() int {
	// Initialize logging
	if err := logger.Init(); err != nil {
		// Logger is not available yet, write directly.
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return 1
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return 1
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	snapshotPath := cfg.SnapshotFile
	if len(os.Args) > 1 {
		snapshotPath = os.Args[1]
	}
	if snapshotPath == "" {
		log.Error(ctx, "no snapshot file given; set GAUGE_SNAPSHOT_FILE or pass a path")
		return 1
	}

	// Policy overrides are validated on load. A band table that does not
	// partition the score range is fatal; scoring with it could misband.
	overrides, err := loadOverrides(ctx, log, cfg)
	if err != nil {
		if errors.Is(err, band.ErrScoreBandConfig) {
			log.Error(ctx, "band table does not partition the score range", logger.Error(err))
		} else {
			log.Error(ctx, "failed to load policy overrides", logger.Error(err))
		}
		return 1
	}

	window, err := daterange.Resolve(cfg.Window, time.Now())
	if err != nil {
		log.Error(ctx, "unresolvable scoring window", logger.String("window", cfg.Window), logger.Error(err))
		return 1
	}

	req, err := snapshot.Load(snapshotPath)
	if err != nil {
		log.Error(ctx, "failed to load snapshot", logger.String("path", snapshotPath), logger.Error(err))
		return 1
	}
	req.WindowStart = window.Start
	req.WindowEnd = window.End
	req.Evidence = filterWindow(req.Evidence, window)

	svc, err := app.New(serviceOptions(cfg, overrides, log)...)
	if err != nil {
		log.Error(ctx, "failed to construct scoring service", logger.Error(err))
		return 1
	}

	report, err := svc.ScoreReview(ctx, req)
	if err != nil {
		log.Error(ctx, "scoring failed", logger.Error(err))
		return 1
	}

	env := envelope{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Window:      cfg.Window,
		Report:      report,
	}
	if err := writeReport(env, cfg.OutputFile); err != nil {
		log.Error(ctx, "failed to write report", logger.Error(err))
		return 1
	}
	log.Info(ctx, "report written",
		logger.String("run_id", env.RunID),
		logger.String("actor", report.Actor),
		logger.String("output", outputName(cfg.OutputFile)),
	)

	// With a metrics address configured, keep serving the run's counters
	// until interrupted so a scraper can collect them.
	if cfg.MetricsAddr != "" {
		serveMetrics(ctx, log, cfg.MetricsAddr)
	}
	return 0
}

// loadOverrides reads the optional policy file. No file means built-in
// defaults throughout.
func loadOverrides(ctx context.Context, log logger.Logger, cfg *config.Config) (policy.Overrides, error) {
	if cfg.PolicyFile == "" {
		return policy.Overrides{}, nil
	}
	o, err := policy.Load(cfg.PolicyFile)
	if err != nil {
		return policy.Overrides{}, err
	}
	log.Info(ctx, "policy overrides loaded", logger.String("path", cfg.PolicyFile))
	return o, nil
}

// serviceOptions merges file overrides over the config-selected
// built-ins. The override table wins where both are present.
func serviceOptions(cfg *config.Config, o policy.Overrides, log logger.Logger) []app.Option {
	opts := []app.Option{app.WithLogger(log)}

	switch {
	case o.Evidence != nil:
		opts = append(opts, app.WithEvidencePolicy(*o.Evidence))
	case cfg.EvidencePolicy != "":
		// Config loading already rejected unknown names.
		if p, err := alignment.PolicyByName(cfg.EvidencePolicy); err == nil {
			opts = append(opts, app.WithEvidencePolicy(p))
		}
	}
	if o.AlignmentBands != nil {
		opts = append(opts, app.WithAlignmentBands(o.AlignmentBands))
	}
	if o.CompetencyBands != nil {
		opts = append(opts, app.WithCompetencyBands(o.CompetencyBands))
	}
	return opts
}

// filterWindow keeps evidence inside the scoring window. Items without
// a timestamp are kept; the exporter may omit times for documents.
func filterWindow(items []model.EvidenceItem, window daterange.Range) []model.EvidenceItem {
	out := make([]model.EvidenceItem, 0, len(items))
	for _, item := range items {
		if item.Timestamp.IsZero() || window.Contains(item.Timestamp) {
			out = append(out, item)
		}
	}
	return out
}

func writeReport(env envelope, path string) error {
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func outputName(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}

// serveMetrics exposes the run's Prometheus counters until the context
// is cancelled by SIGINT/SIGTERM.
func serveMetrics(ctx context.Context, log logger.Logger, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "serving metrics", logger.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error(ctx, "metrics server failed", logger.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "metrics server shutdown failed", logger.Error(err))
	}
	log.Info(ctx, "metrics server stopped")
}
