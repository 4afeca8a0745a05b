package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/gauge/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func clearConfigEnvVars() {
	for _, k := range []string{
		"GAUGE_CONFIG",
		"GAUGE_LOG_LEVEL",
		"GAUGE_SNAPSHOT_FILE",
		"GAUGE_OUTPUT_FILE",
		"GAUGE_POLICY_FILE",
		"GAUGE_EVIDENCE_POLICY",
		"GAUGE_WINDOW",
		"GAUGE_METRICS_ADDR",
	} {
		_ = os.Unsetenv(k)
	}
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
				convey.So(cfg.EvidencePolicy, convey.ShouldEqual, "ownership-weighted")
				convey.So(cfg.Window, convey.ShouldEqual, "")
				convey.So(cfg.OutputFile, convey.ShouldEqual, "")
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("GAUGE_LOG_LEVEL", "debug")
			_ = os.Setenv("GAUGE_WINDOW", "Q4 2025")
			_ = os.Setenv("GAUGE_EVIDENCE_POLICY", "linear")
			_ = os.Setenv("GAUGE_SNAPSHOT_FILE", "/tmp/snap.json")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.Window, convey.ShouldEqual, "Q4 2025")
				convey.So(cfg.EvidencePolicy, convey.ShouldEqual, "linear")
				convey.So(cfg.SnapshotFile, convey.ShouldEqual, "/tmp/snap.json")
			})
		})

		convey.Convey("When loading config from a YAML file", func() {
			clearConfigEnvVars()

			dir := t.TempDir()
			path := filepath.Join(dir, "gauge.yaml")
			doc := "log_level: warn\nwindow: last 30 days\nmetrics_addr: \":9100\"\n"
			convey.So(os.WriteFile(path, []byte(doc), 0o600), convey.ShouldBeNil)
			_ = os.Setenv("GAUGE_CONFIG", path)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then the file layers over the defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "warn")
				convey.So(cfg.Window, convey.ShouldEqual, "last 30 days")
				convey.So(cfg.MetricsAddr, convey.ShouldEqual, ":9100")
				convey.So(cfg.EvidencePolicy, convey.ShouldEqual, "ownership-weighted")
			})

			convey.Convey("And env vars still win over the file", func() {
				_ = os.Setenv("GAUGE_LOG_LEVEL", "error")

				cfg, err := config.Load(ctx)

				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "error")
			})
		})

		convey.Convey("When the configured file does not exist", func() {
			clearConfigEnvVars()
			_ = os.Setenv("GAUGE_CONFIG", "/does/not/exist.yaml")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then loading fails with the load error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the evidence policy name is unknown", func() {
			clearConfigEnvVars()
			_ = os.Setenv("GAUGE_EVIDENCE_POLICY", "quadratic")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then loading fails with the invalid-config error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})
	})
}
