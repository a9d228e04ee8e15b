package race

import (
	"math"
	"sort"
	"strconv"

	"github.com/louisbranch/grandprix/internal/core/random"
	apperrors "github.com/louisbranch/grandprix/internal/platform/errors"
)

// Simulator runs single events against a random source.
type Simulator struct {
	rng      random.Source
	policies []Policy
}

// NewSimulator returns a Simulator drawing from rng. Policies run on the
// sorted finisher list in the order given.
func NewSimulator(rng random.Source, policies ...Policy) *Simulator {
	return &Simulator{rng: rng, policies: policies}
}

// Simulate runs one event.
//
// Inputs are validated before any draw. Competitors are processed in roster
// order; each may retire with a mechanical failure before the start, collect
// a penalty, and is then timed from their jittered performance factors. Lap
// events may deploy the safety car or retire a running competitor. Finishers
// are sorted by total time (stable on ties), passed through the policies, and
// their gaps to the winner rounded to two decimals.
//
// A composite performance that is not a positive finite number is reported
// as CodeCompositePerformanceInvalid rather than producing a meaningless time.
func (s *Simulator) Simulate(roster []Competitor, track Track, severity float64, laps int) (Outcome, error) {
	if err := ValidateEvent(roster, track, severity, laps); err != nil {
		return Outcome{}, err
	}

	outcome := Outcome{Weather: random.WeightedChoice(s.rng, weatherCategories, weatherWeights)}
	baseTime := BaseLapTime * float64(laps)

	active := make([]Competitor, 0, len(roster))
	finishers := make([]Finisher, 0, len(roster))
	for _, c := range roster {
		if s.rng.Float64() < MechanicalFailureChance {
			outcome.Incidents = append(outcome.Incidents, Incident{
				Competitor: c.Name,
				Kind:       IncidentMechanicalFailure,
			})
			continue
		}
		active = append(active, c)

		finisher, penalty, err := s.drive(c, roster, track, severity, outcome.Weather, baseTime)
		if err != nil {
			return Outcome{}, err
		}
		if penalty != nil {
			outcome.Incidents = append(outcome.Incidents, *penalty)
		}
		finishers = append(finishers, finisher)
	}

	for lap := 1; lap <= laps; lap++ {
		u := s.rng.Float64()
		switch {
		case u < SafetyCarChance:
			outcome.LapEvents = append(outcome.LapEvents, LapEvent{Lap: lap, Kind: LapEventSafetyCar})
		case u < CrashChance && len(active) > 0:
			idx := s.rng.Intn(len(active))
			retired := active[idx]
			active = append(active[:idx], active[idx+1:]...)
			finishers = removeFinisher(finishers, retired.Name)
			outcome.Incidents = append(outcome.Incidents, Incident{Competitor: retired.Name, Kind: IncidentCrash})
			outcome.LapEvents = append(outcome.LapEvents, LapEvent{Lap: lap, Kind: LapEventCrash, Competitor: retired.Name})
		}
	}

	sort.SliceStable(finishers, func(i, j int) bool {
		return finishers[i].Time < finishers[j].Time
	})
	for _, policy := range s.policies {
		finishers = policy(s.rng, finishers)
	}
	if len(finishers) > 0 {
		winner := finishers[0].Time
		for i := range finishers {
			finishers[i].Gap = RoundGap(finishers[i].Time - winner)
		}
	}
	outcome.Finishers = finishers
	return outcome, nil
}

// drive draws one competitor's race. The returned incident is non-nil when
// race control handed out a penalty.
func (s *Simulator) drive(c Competitor, roster []Competitor, track Track, severity float64, weather Weather, baseTime float64) (Finisher, *Incident, error) {
	skill := c.Skill * s.rng.Uniform(0.9, 1.1)
	car := c.Car * s.rng.Uniform(0.95, 1.05)
	trackFactor := track.Difficulty * s.rng.Uniform(0.9, 1.1)
	weatherFactor := severity * s.rng.Uniform(0.85, 1.15)
	tire := random.Choice(s.rng, TiresFor(weather))
	pitStop := s.rng.Uniform(1, 5)
	historical := c.HistoricalMultiplier() * s.rng.Uniform(0.95, 1.05)

	var penalty *Incident
	penaltySeconds := 0
	if s.rng.Float64() < PenaltyChance {
		incident := s.penalize(c, roster)
		penalty = &incident
		penaltySeconds = incident.Seconds
	}

	composite := (skill+car+trackFactor+weatherFactor)*tire.Multiplier() - pitStop*historical
	if !(composite > 0) || math.IsInf(composite, 0) {
		return Finisher{}, nil, apperrors.WithMetadata(apperrors.CodeCompositePerformanceInvalid,
			"composite performance must be positive for "+c.Name,
			map[string]string{
				"Competitor": c.Name,
				"Value":      strconv.FormatFloat(composite, 'f', 3, 64),
			})
	}

	return Finisher{
		Name:    c.Name,
		Time:    baseTime/(composite/100) + float64(penaltySeconds),
		Penalty: penaltySeconds,
		Tire:    tire,
	}, penalty, nil
}

func (s *Simulator) penalize(c Competitor, roster []Competitor) Incident {
	rule := random.WeightedChoice(s.rng, penaltyRules, penaltyWeights)
	incident := Incident{
		Competitor: c.Name,
		Kind:       IncidentPenalty,
		Penalty:    rule.Type,
		Seconds:    rule.Seconds[0],
	}
	if len(rule.Seconds) > 1 {
		incident.Seconds = random.Choice(s.rng, rule.Seconds)
	}
	if rule.Type == PenaltyCollision {
		others := make([]Competitor, 0, len(roster)-1)
		for _, other := range roster {
			if other.Name != c.Name {
				others = append(others, other)
			}
		}
		if len(others) > 0 {
			incident.Partner = random.Choice(s.rng, others).Name
		}
	}
	return incident
}

func removeFinisher(finishers []Finisher, name string) []Finisher {
	out := finishers[:0]
	for _, f := range finishers {
		if f.Name != name {
			out = append(out, f)
		}
	}
	return out
}

// RoundGap rounds a time gap to two decimal places.
func RoundGap(gap float64) float64 {
	return math.Round(gap*100) / 100
}
