package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
)

type testConfig struct {
	Locale string `env:"CMD_TEST_LOCALE" envDefault:"en-US"`
	Seed   int64  `env:"CMD_TEST_SEED"`
}

func TestParseConfigReadsEnvAndFlags(t *testing.T) {
	t.Setenv("GRANDPRIX_CMD_TEST_LOCALE", "pt-BR")
	t.Setenv("GRANDPRIX_CMD_TEST_SEED", "7")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := testConfig{}
	if err := ParseConfig(&cfg); err != nil {
		t.Fatalf("load config defaults: %v", err)
	}
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed")

	if err := ParseArgs(fs, []string{"-seed", "42"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfg.Seed != 42 {
		t.Fatalf("expected flag value for seed, got %d", cfg.Seed)
	}
	if cfg.Locale != "pt-BR" {
		t.Fatalf("expected env locale, got %q", cfg.Locale)
	}
}

func TestParseConfigRejectsNilTarget(t *testing.T) {
	if err := ParseConfig[testConfig](nil); err == nil {
		t.Fatal("expected nil target error")
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	if err := ParseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	if err := RunWithTelemetry(context.Background(), "", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetry(context.Background(), ServiceChampionship, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunWithTelemetryReturnsRunError(t *testing.T) {
	t.Setenv("GRANDPRIX_OTEL_ENDPOINT", "")
	want := errors.New("season aborted")

	err := RunWithTelemetry(context.Background(), ServiceChampionship, func(context.Context) error {
		return want
	})
	if !errors.Is(err, want) {
		t.Fatalf("expected run error, got %v", err)
	}
}
