package race

import (
	"math"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/grandprix/internal/platform/errors"
)

// ValidateRoster rejects an empty roster and blank or duplicate names.
func ValidateRoster(roster []Competitor) error {
	if len(roster) == 0 {
		return apperrors.New(apperrors.CodeRosterEmpty, "roster is empty")
	}
	seen := make(map[string]struct{}, len(roster))
	for _, c := range roster {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return apperrors.New(apperrors.CodeCompetitorNameEmpty, "competitor name is empty")
		}
		if _, dup := seen[name]; dup {
			return apperrors.WithMetadata(apperrors.CodeCompetitorDuplicate,
				"duplicate competitor "+name,
				map[string]string{"Competitor": name})
		}
		seen[name] = struct{}{}
	}
	return nil
}

// ValidateTrack rejects a non-positive difficulty.
func ValidateTrack(track Track) error {
	if !(track.Difficulty > 0) || math.IsInf(track.Difficulty, 0) {
		return apperrors.WithMetadata(apperrors.CodeTrackInvalidDifficulty,
			"track difficulty must be positive",
			map[string]string{
				"Track":      track.Name,
				"Difficulty": formatFloat(track.Difficulty),
			})
	}
	return nil
}

// ValidateEvent checks every input of a simulation before any draw is made.
func ValidateEvent(roster []Competitor, track Track, severity float64, laps int) error {
	if err := ValidateRoster(roster); err != nil {
		return err
	}
	if err := ValidateTrack(track); err != nil {
		return err
	}
	if !(severity > 0) || math.IsInf(severity, 0) {
		return apperrors.WithMetadata(apperrors.CodeWeatherInvalidSeverity,
			"weather severity must be positive",
			map[string]string{"Severity": formatFloat(severity)})
	}
	if laps <= 0 {
		return apperrors.WithMetadata(apperrors.CodeLapsInvalid,
			"lap count must be positive",
			map[string]string{"Laps": strconv.Itoa(laps)})
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
