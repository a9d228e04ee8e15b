// Package config holds the shared configuration helpers used by the
// command entry points.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every env tag, so configs declare `env:"SEED"`
// and read GRANDPRIX_SEED.
const EnvPrefix = "GRANDPRIX_"

// ParseEnv loads configuration from EnvPrefix-ed environment variables.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
