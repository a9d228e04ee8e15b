package race

import "github.com/louisbranch/grandprix/internal/core/random"

// Policy adjusts the sorted finisher list before gaps are computed. Policies
// run in order and may reorder entries but must not add or drop any.
type Policy func(rng random.Source, finishers []Finisher) []Finisher

// DemoteFromPodium keeps the named competitor off the podium. When they
// classify in the top PodiumSize and more than PodiumSize competitors
// finished, they trade places with a uniformly chosen competitor from the
// remaining positions.
//
// Classified times stay with their positions so the order remains ascending
// by time and gaps stay non-negative.
func DemoteFromPodium(name string) Policy {
	return func(rng random.Source, finishers []Finisher) []Finisher {
		if len(finishers) <= PodiumSize {
			return finishers
		}
		for i := 0; i < PodiumSize; i++ {
			if finishers[i].Name != name {
				continue
			}
			j := rng.IntRange(PodiumSize, len(finishers)-1)
			finishers[i], finishers[j] = finishers[j], finishers[i]
			finishers[i].Time, finishers[j].Time = finishers[j].Time, finishers[i].Time
			break
		}
		return finishers
	}
}
