package championship

import "github.com/louisbranch/grandprix/internal/race"

// SeasonName titles the default season.
const SeasonName = "2025 FIA Formula 1 World Championship"

const (
	MinLaps = 50
	MaxLaps = 70

	// FixedSeverity applies at tracks with settled weather; every other
	// track draws a severity in [MinSeverity, MaxSeverity).
	FixedSeverity = 100.0
	MinSeverity   = 70.0
	MaxSeverity   = 100.0
)

// PointsSchedule awards points by classified position.
var PointsSchedule = []int{25, 18, 15, 12, 10, 8, 6, 4, 2, 1}

// DemotedCompetitor is kept off the podium by the default season.
const DemotedCompetitor = "Nico Hulkenberg"

// FixedWeatherTracks returns the tracks that always run at FixedSeverity.
func FixedWeatherTracks() map[string]bool {
	return map[string]bool{
		"Bahrain GP":       true,
		"Miami GP":         true,
		"Saudi Arabian GP": true,
		"Azerbaijan GP":    true,
		"Abu Dhabi GP":     true,
		"Mexican GP":       true,
	}
}

// DefaultRoster returns the twenty competitors of the default season.
func DefaultRoster() []race.Competitor {
	return []race.Competitor{
		{Name: "Max Verstappen", Skill: 98, Car: 95, History: 1.05},
		{Name: "Sergio Perez", Skill: 92, Car: 95, History: 1.02},
		{Name: "Lewis Hamilton", Skill: 97, Car: 92, History: 1.08},
		{Name: "George Russell", Skill: 94, Car: 92, History: 1.03},
		{Name: "Charles Leclerc", Skill: 95, Car: 91, History: 1.02},
		{Name: "Carlos Sainz", Skill: 94, Car: 91, History: 1.02},
		{Name: "Lando Norris", Skill: 93, Car: 89, History: 1.01},
		{Name: "Oscar Piastri", Skill: 91, Car: 89, History: 1.00},
		{Name: "Fernando Alonso", Skill: 94, Car: 88, History: 1.04},
		{Name: "Lance Stroll", Skill: 80, Car: 88, History: 0.10},
		{Name: "Pierre Gasly", Skill: 90, Car: 87, History: 0.99},
		{Name: "Esteban Ocon", Skill: 90, Car: 87, History: 0.99},
		{Name: "Yuki Tsunoda", Skill: 88, Car: 85, History: 0.97},
		{Name: "Daniel Ricciardo", Skill: 100, Car: 100, History: 1.10},
		{Name: "Valtteri Bottas", Skill: 89, Car: 84, History: 0.96},
		{Name: "Zhou Guanyu", Skill: 86, Car: 84, History: 0.95},
		{Name: "Kevin Magnussen", Skill: 87, Car: 83, History: 0.94},
		{Name: DemotedCompetitor, Skill: 88, Car: 83, History: 0.95},
		{Name: "Alex Albon", Skill: 90, Car: 82, History: 0.96},
		{Name: "Logan Sargeant", Skill: 85, Car: 82, History: 0.93},
	}
}

// DefaultCalendar returns the twenty-two rounds of the default season in
// running order.
func DefaultCalendar() []race.Track {
	return []race.Track{
		{Name: "Bahrain GP", Difficulty: 90},
		{Name: "Saudi Arabian GP", Difficulty: 88},
		{Name: "Australian GP", Difficulty: 85},
		{Name: "Japanese GP", Difficulty: 92},
		{Name: "Chinese GP", Difficulty: 87},
		{Name: "Miami GP", Difficulty: 89},
		{Name: "Spanish GP", Difficulty: 91},
		{Name: "Monaco GP", Difficulty: 95},
		{Name: "Canadian GP", Difficulty: 86},
		{Name: "Austrian GP", Difficulty: 89},
		{Name: "British GP", Difficulty: 93},
		{Name: "Hungarian GP", Difficulty: 88},
		{Name: "Belgian GP", Difficulty: 94},
		{Name: "Dutch GP", Difficulty: 90},
		{Name: "Italian GP", Difficulty: 89},
		{Name: "Azerbaijan GP", Difficulty: 87},
		{Name: "Singapore GP", Difficulty: 95},
		{Name: "United States GP", Difficulty: 92},
		{Name: "Mexican GP", Difficulty: 91},
		{Name: "Brazilian GP", Difficulty: 93},
		{Name: "Las Vegas GP", Difficulty: 90},
		{Name: "Abu Dhabi GP", Difficulty: 92},
	}
}

// DefaultSeason assembles the default tables into a Season.
func DefaultSeason() Season {
	return Season{
		Name:         SeasonName,
		Roster:       DefaultRoster(),
		Calendar:     DefaultCalendar(),
		Points:       append([]int(nil), PointsSchedule...),
		FixedWeather: FixedWeatherTracks(),
		Policies:     []race.Policy{race.DemoteFromPodium(DemotedCompetitor)},
	}
}
