// Package errors provides structured error handling with i18n support.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Roster errors
	CodeRosterEmpty         Code = "ROSTER_EMPTY"
	CodeCompetitorNameEmpty Code = "COMPETITOR_NAME_EMPTY"
	CodeCompetitorDuplicate Code = "COMPETITOR_DUPLICATE"
	CodeCompetitorUnknown   Code = "COMPETITOR_UNKNOWN"

	// Event input errors
	CodeTrackInvalidDifficulty Code = "TRACK_INVALID_DIFFICULTY"
	CodeWeatherInvalidSeverity Code = "WEATHER_INVALID_SEVERITY"
	CodeLapsInvalid            Code = "LAPS_INVALID"

	// Season errors
	CodeCalendarEmpty       Code = "CALENDAR_EMPTY"
	CodePointsScheduleEmpty Code = "POINTS_SCHEDULE_EMPTY"

	// Simulation invariants
	CodeCompositePerformanceInvalid Code = "COMPOSITE_PERFORMANCE_INVALID"
)

// Category groups codes by the layer that should have prevented them.
type Category string

const (
	// CategoryConfiguration marks input rejected before a simulation starts.
	CategoryConfiguration Category = "CONFIGURATION"
	// CategoryInternal marks a violated simulation invariant.
	CategoryInternal Category = "INTERNAL"
)

// Category maps domain codes to their error category.
func (c Code) Category() Category {
	switch c {
	case CodeRosterEmpty,
		CodeCompetitorNameEmpty,
		CodeCompetitorDuplicate,
		CodeTrackInvalidDifficulty,
		CodeWeatherInvalidSeverity,
		CodeLapsInvalid,
		CodeCalendarEmpty,
		CodePointsScheduleEmpty:
		return CategoryConfiguration
	default:
		return CategoryInternal
	}
}
