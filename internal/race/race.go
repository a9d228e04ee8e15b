// Package race simulates a single championship event.
//
// A Simulator turns a roster, a track, a weather severity and a lap count
// into an Outcome: the realized weather, the lap-by-lap race-control events,
// the classified finishers and the incidents of the day. All randomness comes
// from the injected random.Source.
package race

// Nominal per-lap time, in seconds, before performance scaling.
const BaseLapTime = 90.0

const (
	MechanicalFailureChance = 0.05
	PenaltyChance           = 0.10
	SafetyCarChance         = 0.05
	// CrashChance is cumulative with SafetyCarChance: a lap draw in
	// [SafetyCarChance, CrashChance) retires a competitor.
	CrashChance = 0.10
)

// PodiumSize is the number of classified positions on the podium.
const PodiumSize = 3

// Competitor is a roster entry. History is the historical-performance
// multiplier; zero means it was not provided and 1.0 applies.
type Competitor struct {
	Name    string
	Skill   float64
	Car     float64
	History float64
}

// HistoricalMultiplier returns History, defaulting to 1.0 when unset.
func (c Competitor) HistoricalMultiplier() float64 {
	if c.History == 0 {
		return 1.0
	}
	return c.History
}

// Track is a championship venue.
type Track struct {
	Name       string
	Difficulty float64
}

// Weather is the realized weather category of an event.
type Weather string

const (
	WeatherDry       Weather = "Dry"
	WeatherLightRain Weather = "Light Rain"
	WeatherHeavyRain Weather = "Heavy Rain"
)

var (
	weatherCategories = []Weather{WeatherDry, WeatherLightRain, WeatherHeavyRain}
	weatherWeights    = []float64{0.7, 0.2, 0.1}
)

// Wet reports whether the category calls for rain tires.
func (w Weather) Wet() bool {
	return w != WeatherDry
}

// Key returns the catalog key suffix for the category.
func (w Weather) Key() string {
	switch w {
	case WeatherLightRain:
		return "light_rain"
	case WeatherHeavyRain:
		return "heavy_rain"
	default:
		return "dry"
	}
}

// Tire is a tire compound.
type Tire string

const (
	TireSoft         Tire = "soft"
	TireMedium       Tire = "medium"
	TireHard         Tire = "hard"
	TireIntermediate Tire = "intermediate"
	TireWet          Tire = "wet"
)

var (
	dryTires = []Tire{TireSoft, TireMedium, TireHard}
	wetTires = []Tire{TireIntermediate, TireWet}
)

// TiresFor returns the compounds available in the given weather.
func TiresFor(w Weather) []Tire {
	if w.Wet() {
		return wetTires
	}
	return dryTires
}

// Multiplier returns the compound's performance multiplier.
func (t Tire) Multiplier() float64 {
	switch t {
	case TireSoft:
		return 1.05
	case TireHard:
		return 0.95
	case TireIntermediate:
		return 0.90
	case TireWet:
		return 0.85
	default:
		return 1.00
	}
}

// Finisher is a classified result. Time is the classified time in seconds
// for the position, Gap the rounded distance to the winner, Penalty the
// seconds race control added to this competitor.
//
// Time usually is the competitor's own race time, but a Policy that moves a
// competitor leaves times with their positions. After a demotion Time may
// belong to another competitor and need not include this Penalty.
type Finisher struct {
	Name    string
	Time    float64
	Gap     float64
	Penalty int
	Tire    Tire
}

// Outcome is everything one event produced.
type Outcome struct {
	Weather   Weather
	LapEvents []LapEvent
	Finishers []Finisher
	Incidents []Incident
}
