package race

import "fmt"

// PenaltyType is a race-control penalty category.
type PenaltyType string

const (
	PenaltyTrackLimits       PenaltyType = "Track Limits"
	PenaltyUnsafeRelease     PenaltyType = "Unsafe Release"
	PenaltyCollision         PenaltyType = "Collision"
	PenaltyOvertakingUnderSC PenaltyType = "Overtaking Under SC"
	PenaltyIgnoringBlueFlags PenaltyType = "Ignoring Blue Flags"
)

type penaltyRule struct {
	Type    PenaltyType
	Weight  float64
	Seconds []int
	Reason  string
}

var penaltyRules = []penaltyRule{
	{Type: PenaltyTrackLimits, Weight: 0.4, Seconds: []int{5, 10}, Reason: "Repeated violations"},
	{Type: PenaltyUnsafeRelease, Weight: 0.2, Seconds: []int{5, 10}, Reason: "Dangerous pit exit"},
	{Type: PenaltyCollision, Weight: 0.2, Seconds: []int{5, 10, 15}, Reason: "Caused collision"},
	{Type: PenaltyOvertakingUnderSC, Weight: 0.1, Seconds: []int{10}, Reason: "Gained advantage under Safety Car"},
	{Type: PenaltyIgnoringBlueFlags, Weight: 0.1, Seconds: []int{5}, Reason: "Failed to let leaders through"},
}

var penaltyWeights = func() []float64 {
	out := make([]float64, len(penaltyRules))
	for i, rule := range penaltyRules {
		out[i] = rule.Weight
	}
	return out
}()

// Key returns the catalog key suffix for the penalty type.
func (p PenaltyType) Key() string {
	switch p {
	case PenaltyTrackLimits:
		return "track_limits"
	case PenaltyUnsafeRelease:
		return "unsafe_release"
	case PenaltyCollision:
		return "collision"
	case PenaltyOvertakingUnderSC:
		return "overtaking_under_sc"
	case PenaltyIgnoringBlueFlags:
		return "ignoring_blue_flags"
	default:
		return "unknown"
	}
}

// Reason returns the stewards' reason for the penalty type.
func (p PenaltyType) Reason() string {
	for _, rule := range penaltyRules {
		if rule.Type == p {
			return rule.Reason
		}
	}
	return ""
}

// IncidentKind classifies an incident.
type IncidentKind int

const (
	IncidentMechanicalFailure IncidentKind = iota + 1
	IncidentCrash
	IncidentPenalty
)

// Incident is a mechanical failure, crash or penalty. Penalty, Seconds and
// Partner are only set for penalties; Partner only for collisions.
type Incident struct {
	Competitor string
	Kind       IncidentKind
	Penalty    PenaltyType
	Seconds    int
	Partner    string
}

// DNF reports whether the incident retired the competitor.
func (i Incident) DNF() bool {
	return i.Kind == IncidentMechanicalFailure || i.Kind == IncidentCrash
}

// String renders the incident narrative.
func (i Incident) String() string {
	switch i.Kind {
	case IncidentMechanicalFailure:
		return fmt.Sprintf("%s - DNF (Mechanical Failure)", i.Competitor)
	case IncidentCrash:
		return fmt.Sprintf("%s - DNF (Crash)", i.Competitor)
	case IncidentPenalty:
		reason := i.Penalty.Reason()
		if i.Penalty == PenaltyCollision && i.Partner != "" {
			reason = fmt.Sprintf("%s with %s", reason, i.Partner)
		}
		return fmt.Sprintf("%s - %ds penalty (%s - %s)", i.Competitor, i.Seconds, i.Penalty, reason)
	default:
		return i.Competitor
	}
}

// LapEventKind classifies a race-control lap event.
type LapEventKind int

const (
	LapEventSafetyCar LapEventKind = iota + 1
	LapEventCrash
)

// LapEvent is a race-control event on a given lap. Competitor is set for
// crashes.
type LapEvent struct {
	Lap        int
	Kind       LapEventKind
	Competitor string
}

// String renders the lap-event narrative.
func (e LapEvent) String() string {
	if e.Kind == LapEventCrash {
		return fmt.Sprintf("Lap %d: %s crashes out!", e.Lap, e.Competitor)
	}
	return fmt.Sprintf("Lap %d: Safety Car Deployed!", e.Lap)
}
