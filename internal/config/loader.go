package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if GAUGE_CONFIG is set
//  3. env (prefix GAUGE_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("GAUGE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: GAUGE_SNAPSHOT_FILE, GAUGE_WINDOW, ...
	// Keys keep their underscores to match the koanf tags on the struct.
	envProvider := env.Provider("GAUGE_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "gauge_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	switch cfg.EvidencePolicy {
	case "", "ownership-weighted", "linear":
	default:
		return nil, fmt.Errorf("%w: unknown evidence_policy %q", ErrInvalidConfig, cfg.EvidencePolicy)
	}
	return &cfg, nil
}
