// Package config defines process configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New(...Option) initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// SnapshotFile is the review snapshot JSON to score.
	SnapshotFile string `koanf:"snapshot_file"`

	// OutputFile receives the report JSON; empty means stdout.
	OutputFile string `koanf:"output_file"`

	// PolicyFile optionally overrides band tables and the evidence
	// volume table from a YAML file.
	PolicyFile string `koanf:"policy_file"`

	// EvidencePolicy selects the built-in evidence volume table
	// variant: "ownership-weighted" or "linear".
	EvidencePolicy string `koanf:"evidence_policy"`

	// Window is the scoring window token, e.g. "Q4 2025", "last 30
	// days". Empty resolves to the last 90 days.
	Window string `koanf:"window"`

	// MetricsAddr, when set, exposes Prometheus metrics on that
	// address after a run, e.g. ":9090".
	MetricsAddr string `koanf:"metrics_addr"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		EvidencePolicy: "ownership-weighted",
	}
}
