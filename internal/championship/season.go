// Package championship runs a season of events and keeps the standings.
package championship

import (
	"context"
	"fmt"
	"io"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/grandprix/internal/core/random"
	apperrors "github.com/louisbranch/grandprix/internal/platform/errors"
	"github.com/louisbranch/grandprix/internal/race"
)

const tracerName = "github.com/louisbranch/grandprix/internal/championship"

// Season is the fixed input of a championship run.
type Season struct {
	Name     string
	Roster   []race.Competitor
	Calendar []race.Track
	Points   []int
	// FixedWeather names the tracks that always run at FixedSeverity.
	FixedWeather map[string]bool
	Policies     []race.Policy
}

// Validate rejects a season that cannot produce a single event.
func (s Season) Validate() error {
	if err := race.ValidateRoster(s.Roster); err != nil {
		return err
	}
	if len(s.Calendar) == 0 {
		return apperrors.New(apperrors.CodeCalendarEmpty, "calendar is empty")
	}
	for _, track := range s.Calendar {
		if err := race.ValidateTrack(track); err != nil {
			return err
		}
	}
	if len(s.Points) == 0 {
		return apperrors.New(apperrors.CodePointsScheduleEmpty, "points schedule is empty")
	}
	return nil
}

// EventReport is one finished round.
type EventReport struct {
	Round    int
	Track    race.Track
	Laps     int
	Severity float64
	Outcome  race.Outcome
	Awards   []Award
}

// Reporter receives rounds as they finish and the final standings.
type Reporter interface {
	ReportEvent(report EventReport) error
	ReportStandings(season string, standings Standings) error
}

// Option configures a Runner.
type Option func(*Runner)

// WithReporter sets the reporter that receives every round.
func WithReporter(reporter Reporter) Option {
	return func(r *Runner) {
		r.reporter = reporter
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *log.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Runner drives a season one event at a time.
type Runner struct {
	season    Season
	rng       random.Source
	simulator *race.Simulator
	reporter  Reporter
	logger    *log.Logger
	tracer    trace.Tracer
	standings Standings
}

// NewRunner validates season and prepares a runner drawing from rng.
func NewRunner(season Season, rng random.Source, opts ...Option) (*Runner, error) {
	if err := season.Validate(); err != nil {
		return nil, fmt.Errorf("validate season: %w", err)
	}
	r := &Runner{
		season:    season,
		rng:       rng,
		simulator: race.NewSimulator(rng, season.Policies...),
		logger:    log.New(io.Discard, "", 0),
		tracer:    otel.Tracer(tracerName),
		standings: NewStandings(season.Roster),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Standings returns the tally so far.
func (r *Runner) Standings() Standings {
	return r.standings
}

// Run plays every round of the calendar in order and reports the final
// standings. Cancellation is honored between rounds.
func (r *Runner) Run(ctx context.Context) (Standings, error) {
	ctx, span := r.tracer.Start(ctx, "championship.season", trace.WithAttributes(
		attribute.String("championship.season", r.season.Name),
		attribute.Int("championship.rounds", len(r.season.Calendar)),
		attribute.Int("championship.competitors", len(r.season.Roster)),
	))
	defer span.End()

	for i, track := range r.season.Calendar {
		if err := ctx.Err(); err != nil {
			span.SetStatus(codes.Error, "season interrupted")
			return r.standings, fmt.Errorf("season stopped before round %d: %w", i+1, err)
		}
		report, err := r.RunEvent(ctx, i+1, track)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "event failed")
			return r.standings, err
		}
		if r.reporter != nil {
			if err := r.reporter.ReportEvent(report); err != nil {
				return r.standings, fmt.Errorf("report round %d: %w", report.Round, err)
			}
		}
	}

	if r.reporter != nil {
		if err := r.reporter.ReportStandings(r.season.Name, r.standings); err != nil {
			return r.standings, fmt.Errorf("report standings: %w", err)
		}
	}
	return r.standings, nil
}

// RunEvent plays one round: it draws the lap count and, unless the track
// has fixed weather, the severity; simulates the event; scores it; and adds
// the awards to the standings.
func (r *Runner) RunEvent(ctx context.Context, round int, track race.Track) (EventReport, error) {
	_, span := r.tracer.Start(ctx, "championship.event", trace.WithAttributes(
		attribute.Int("championship.round", round),
		attribute.String("championship.track", track.Name),
	))
	defer span.End()

	laps := r.rng.IntRange(MinLaps, MaxLaps)
	severity := FixedSeverity
	if !r.season.FixedWeather[track.Name] {
		severity = r.rng.Uniform(MinSeverity, MaxSeverity)
	}

	outcome, err := r.simulator.Simulate(r.season.Roster, track, severity, laps)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "simulate")
		return EventReport{}, fmt.Errorf("simulate %s: %w", track.Name, err)
	}

	awards := Score(r.rng, r.season.Points, outcome.Finishers)
	standings, err := r.standings.Apply(awards)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "apply awards")
		return EventReport{}, fmt.Errorf("score %s: %w", track.Name, err)
	}
	r.standings = standings

	span.SetAttributes(
		attribute.Int("championship.laps", laps),
		attribute.String("race.weather", string(outcome.Weather)),
		attribute.Int("race.finishers", len(outcome.Finishers)),
		attribute.Int("race.incidents", len(outcome.Incidents)),
	)
	r.logger.Printf("round %d %s: %d laps, severity %.1f, %s, %d finishers, %d incidents",
		round, track.Name, laps, severity, outcome.Weather, len(outcome.Finishers), len(outcome.Incidents))

	return EventReport{
		Round:    round,
		Track:    track,
		Laps:     laps,
		Severity: severity,
		Outcome:  outcome,
		Awards:   awards,
	}, nil
}
