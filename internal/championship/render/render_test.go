package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/louisbranch/grandprix/internal/championship"
	"github.com/louisbranch/grandprix/internal/race"
)

func sampleReport() championship.EventReport {
	return championship.EventReport{
		Round:    8,
		Track:    race.Track{Name: "Monaco GP", Difficulty: 95},
		Laps:     61,
		Severity: 84.2,
		Outcome: race.Outcome{
			Weather: race.WeatherLightRain,
			LapEvents: []race.LapEvent{
				{Lap: 4, Kind: race.LapEventSafetyCar},
				{Lap: 17, Kind: race.LapEventCrash, Competitor: "Logan Sargeant"},
			},
			Incidents: []race.Incident{
				{Competitor: "Zhou Guanyu", Kind: race.IncidentMechanicalFailure},
				{Competitor: "Lando Norris", Kind: race.IncidentPenalty, Penalty: race.PenaltyCollision, Seconds: 10, Partner: "Oscar Piastri"},
				{Competitor: "Logan Sargeant", Kind: race.IncidentCrash},
			},
			Finishers: []race.Finisher{
				{Name: "Charles Leclerc", Time: 5400, Gap: 0, Tire: race.TireIntermediate},
				{Name: "Lando Norris", Time: 5412.345, Gap: 12.35, Penalty: 10, Tire: race.TireWet},
			},
		},
	}
}

func TestReportEventEnglish(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, "en-US")
	if err := r.ReportEvent(sampleReport()); err != nil {
		t.Fatalf("report event: %v", err)
	}

	want := strings.Join([]string{
		"",
		"🏁 Monaco GP (Light Rain Conditions, 61 laps)",
		strings.Repeat("=", 50),
		"",
		"Race Events:",
		"⚡ Lap 4: Safety Car Deployed!",
		"⚡ Lap 17: Logan Sargeant crashes out!",
		"",
		"Incidents:",
		"⚠️ Zhou Guanyu - DNF (Mechanical Failure)",
		"⚠️ Lando Norris - 10s penalty (Collision - Caused collision with Oscar Piastri)",
		"⚠️ Logan Sargeant - DNF (Crash)",
		"",
		"Race Results:",
		"1. Charles Leclerc (+0.00s) (intermediate tires)",
		"2. Lando Norris (+12.35s) [Penalty: +10s] (wet tires)",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Fatalf("output mismatch\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestReportEventMatchesIncidentNarrative(t *testing.T) {
	incidents := []race.Incident{
		{Competitor: "A", Kind: race.IncidentPenalty, Penalty: race.PenaltyTrackLimits, Seconds: 5},
		{Competitor: "A", Kind: race.IncidentPenalty, Penalty: race.PenaltyUnsafeRelease, Seconds: 10},
		{Competitor: "A", Kind: race.IncidentPenalty, Penalty: race.PenaltyCollision, Seconds: 15},
		{Competitor: "A", Kind: race.IncidentPenalty, Penalty: race.PenaltyOvertakingUnderSC, Seconds: 10},
		{Competitor: "A", Kind: race.IncidentPenalty, Penalty: race.PenaltyIgnoringBlueFlags, Seconds: 5},
	}
	r := New(&bytes.Buffer{}, "en-US")
	for _, incident := range incidents {
		if got, want := r.incident(incident), incident.String(); got != want {
			t.Fatalf("rendered %q, narrative %q", got, want)
		}
	}
}

func TestReportEventNoFinishers(t *testing.T) {
	report := championship.EventReport{
		Track: race.Track{Name: "Bahrain GP", Difficulty: 90},
		Laps:  55,
		Outcome: race.Outcome{
			Weather: race.WeatherDry,
			Incidents: []race.Incident{
				{Competitor: "Max Verstappen", Kind: race.IncidentMechanicalFailure},
			},
		},
	}
	var buf bytes.Buffer
	if err := New(&buf, "en-US").ReportEvent(report); err != nil {
		t.Fatalf("report event: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "🏁 Bahrain GP (Dry Conditions, 55 laps)") {
		t.Fatalf("missing header:\n%s", out)
	}
	if !strings.HasSuffix(out, "\nRace Results: No finishers!\n") {
		t.Fatalf("missing no-finishers line:\n%s", out)
	}
	if strings.Contains(out, "Race Events:") {
		t.Fatalf("quiet race printed an events section:\n%s", out)
	}
}

func TestReportEventPortuguese(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, "pt-BR")
	if r.Locale() != "pt-BR" {
		t.Fatalf("locale = %q", r.Locale())
	}
	if err := r.ReportEvent(sampleReport()); err != nil {
		t.Fatalf("report event: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Condições: Chuva Fraca",
		"Volta 4: Safety Car na pista!",
		"Lando Norris - punição de 10s (Colisão - Causou colisão com Oscar Piastri)",
		"Resultado da Corrida:",
		"(pneus de chuva)",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestUnknownLocaleFallsBack(t *testing.T) {
	r := New(&bytes.Buffer{}, "xx-YY")
	if r.Locale() != "en-US" {
		t.Fatalf("locale = %q, want en-US", r.Locale())
	}
}

func TestReportStandings(t *testing.T) {
	roster := []race.Competitor{
		{Name: "Alpha", Skill: 90, Car: 90},
		{Name: "Bravo", Skill: 90, Car: 90},
	}
	standings, err := championship.NewStandings(roster).Apply([]championship.Award{
		{Name: "Bravo", Position: 1, Points: 25, Win: true, Podium: true, FastestLap: true},
		{Name: "Alpha", Position: 2, Points: 18, Podium: true},
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	var buf bytes.Buffer
	if err := New(&buf, "en-US").ReportStandings("Test Season", standings); err != nil {
		t.Fatalf("report standings: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("lines = %d:\n%s", len(lines), buf.String())
	}
	if lines[1] != "🏆 Test Season Final Standings 🏆" {
		t.Fatalf("title = %q", lines[1])
	}
	if lines[2] != strings.Repeat("=", 70) {
		t.Fatalf("rule = %q", lines[2])
	}
	if !strings.HasPrefix(lines[3], "1. Bravo") || !strings.Contains(lines[3], "25 pts | Wins: 1 | Podiums: 1 | Fastest Laps: 1") {
		t.Fatalf("leader row = %q", lines[3])
	}
	if !strings.HasPrefix(lines[4], "2. Alpha") || !strings.Contains(lines[4], "18 pts | Wins: 0 | Podiums: 1 | Fastest Laps: 0") {
		t.Fatalf("second row = %q", lines[4])
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestReportEventWriteError(t *testing.T) {
	if err := New(failingWriter{}, "en-US").ReportEvent(sampleReport()); err == nil {
		t.Fatal("expected write error")
	}
}
