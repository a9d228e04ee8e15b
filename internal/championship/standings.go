package championship

import (
	"sort"

	apperrors "github.com/louisbranch/grandprix/internal/platform/errors"
	"github.com/louisbranch/grandprix/internal/race"
)

// Record is one competitor's season tally.
type Record struct {
	Name        string
	Points      int
	Wins        int
	Podiums     int
	FastestLaps int
}

// Standings accumulates Records keyed by competitor name. The zero value
// knows no competitors; use NewStandings.
//
// Apply never mutates its receiver, so a Standings value can be shared
// freely between the runner and reporters.
type Standings struct {
	order   []string
	records map[string]Record
}

// NewStandings returns a zeroed tally for every roster member.
func NewStandings(roster []race.Competitor) Standings {
	s := Standings{
		order:   make([]string, 0, len(roster)),
		records: make(map[string]Record, len(roster)),
	}
	for _, c := range roster {
		if _, ok := s.records[c.Name]; ok {
			continue
		}
		s.order = append(s.order, c.Name)
		s.records[c.Name] = Record{Name: c.Name}
	}
	return s
}

// Apply returns the standings after adding one event's awards.
func (s Standings) Apply(awards []Award) (Standings, error) {
	next := Standings{
		order:   s.order,
		records: make(map[string]Record, len(s.records)),
	}
	for name, record := range s.records {
		next.records[name] = record
	}

	for _, award := range awards {
		record, ok := next.records[award.Name]
		if !ok {
			return s, apperrors.WithMetadata(apperrors.CodeCompetitorUnknown,
				"award for competitor outside the roster: "+award.Name,
				map[string]string{"Competitor": award.Name})
		}
		record.Points += award.Points
		if award.Win {
			record.Wins++
		}
		if award.Podium {
			record.Podiums++
		}
		if award.FastestLap {
			record.FastestLaps++
		}
		next.records[award.Name] = record
	}
	return next, nil
}

// Record returns the tally for name.
func (s Standings) Record(name string) (Record, bool) {
	record, ok := s.records[name]
	return record, ok
}

// Len returns the number of competitors tracked.
func (s Standings) Len() int {
	return len(s.order)
}

// Ranked returns every record by points, highest first. Equal points keep
// roster order.
func (s Standings) Ranked() []Record {
	ranked := make([]Record, 0, len(s.order))
	for _, name := range s.order {
		ranked = append(ranked, s.records[name])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Points > ranked[j].Points
	})
	return ranked
}

// TotalPoints sums points across all competitors.
func (s Standings) TotalPoints() int {
	total := 0
	for _, record := range s.records {
		total += record.Points
	}
	return total
}
