// Package championship parses championship command flags and runs a season.
package championship

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"

	"github.com/louisbranch/grandprix/internal/championship"
	"github.com/louisbranch/grandprix/internal/championship/render"
	"github.com/louisbranch/grandprix/internal/core/random"
	entrypoint "github.com/louisbranch/grandprix/internal/platform/cmd"
	"github.com/louisbranch/grandprix/internal/platform/id"
)

// Config holds championship command configuration.
type Config struct {
	Seed    int64  `env:"SEED"`
	Locale  string `env:"LOCALE"  envDefault:"en-US"`
	Verbose bool   `env:"VERBOSE"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 draws one)")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "output locale")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "log diagnostics to stderr")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run simulates the default season, printing every round and the final
// standings to out.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	logOut := io.Discard
	if cfg.Verbose {
		logOut = errOut
	}
	logger := log.New(logOut, "", 0)

	rng, seed, err := random.NewSeeded(cfg.Seed)
	if err != nil {
		return fmt.Errorf("seed random source: %w", err)
	}
	runID, err := id.NewID()
	if err != nil {
		return fmt.Errorf("generate run id: %w", err)
	}

	renderer := render.New(out, cfg.Locale)
	logger.Printf("run %s: seed %d, locale %s", runID, seed, renderer.Locale())

	runner, err := championship.NewRunner(championship.DefaultSeason(), rng,
		championship.WithReporter(renderer),
		championship.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	if _, err := runner.Run(ctx); err != nil {
		return fmt.Errorf("run %s: %w", runID, err)
	}
	return nil
}
