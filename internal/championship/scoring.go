package championship

import (
	"github.com/louisbranch/grandprix/internal/core/random"
	"github.com/louisbranch/grandprix/internal/race"
)

const (
	// WinnerFastestLapChance is the winner's chance of the fastest lap.
	WinnerFastestLapChance = 0.5
	// FastestLapChance is each other top-ten finisher's independent chance.
	FastestLapChance = 0.1
	// FastestLapPositions bounds the positions eligible for a fastest lap.
	FastestLapPositions = 10
)

// MaxEventPoints is the most one event can award under points: the sum of
// the schedule.
func MaxEventPoints(points []int) int {
	total := 0
	for _, p := range points {
		total += p
	}
	return total
}

// Award is what one classified position earns.
type Award struct {
	Name       string
	Position   int
	Points     int
	Win        bool
	Podium     bool
	FastestLap bool
}

// Score turns a classification into awards for the top min(len(points),
// len(finishers)) positions. Fastest laps are independent draws, so an
// event may produce none or several.
func Score(rng random.Source, points []int, finishers []race.Finisher) []Award {
	n := len(finishers)
	if len(points) < n {
		n = len(points)
	}
	awards := make([]Award, 0, n)
	for i := 0; i < n; i++ {
		position := i + 1
		award := Award{
			Name:     finishers[i].Name,
			Position: position,
			Points:   points[i],
			Win:      position == 1,
			Podium:   position <= race.PodiumSize,
		}
		switch {
		case position == 1:
			award.FastestLap = rng.Float64() < WinnerFastestLapChance
		case position <= FastestLapPositions:
			award.FastestLap = rng.Float64() < FastestLapChance
		}
		awards = append(awards, award)
	}
	return awards
}
