// Package render writes championship progress as localized text lines.
package render

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/louisbranch/grandprix/internal/championship"
	"github.com/louisbranch/grandprix/internal/platform/i18n/catalog"
	"github.com/louisbranch/grandprix/internal/race"
)

const (
	eventRuleWidth     = 50
	standingsRuleWidth = 70
)

// Renderer is a championship.Reporter that prints to a writer.
type Renderer struct {
	out     io.Writer
	locale  string
	printer *message.Printer
}

var _ championship.Reporter = (*Renderer)(nil)

// New returns a Renderer for locale. Unknown locales fall back to the base
// catalog locale.
func New(out io.Writer, locale string) *Renderer {
	resolved := catalog.Default().ResolveLocale(locale)
	return &Renderer{
		out:     out,
		locale:  resolved,
		printer: message.NewPrinter(language.Make(resolved)),
	}
}

// Locale returns the locale the renderer resolved to.
func (r *Renderer) Locale() string {
	return r.locale
}

// ReportEvent prints one round: header, race-control events, incidents and
// the classification.
func (r *Renderer) ReportEvent(report championship.EventReport) error {
	w := &lineWriter{out: r.out}
	outcome := report.Outcome

	w.blank()
	w.line(r.printer.Sprintf("championship.event.header",
		report.Track.Name, r.weather(outcome.Weather), report.Laps))
	w.line(strings.Repeat("=", eventRuleWidth))

	if len(outcome.LapEvents) > 0 {
		w.blank()
		w.line(r.printer.Sprintf("championship.event.lap_events"))
		for _, event := range outcome.LapEvents {
			w.line(r.printer.Sprintf("championship.event.lap_event", r.lapEvent(event)))
		}
	}

	if len(outcome.Incidents) > 0 {
		w.blank()
		w.line(r.printer.Sprintf("championship.event.incidents"))
		for _, incident := range outcome.Incidents {
			w.line(r.printer.Sprintf("championship.event.incident", r.incident(incident)))
		}
	}

	w.blank()
	if len(outcome.Finishers) == 0 {
		w.line(r.printer.Sprintf("championship.event.no_finishers"))
		return w.err
	}
	w.line(r.printer.Sprintf("championship.event.results"))
	for i, f := range outcome.Finishers {
		penalty := ""
		if f.Penalty > 0 {
			penalty = r.printer.Sprintf("championship.event.result_penalty", f.Penalty)
		}
		w.line(r.printer.Sprintf("championship.event.result", i+1, f.Name, f.Gap, penalty, r.tire(f.Tire)))
	}
	return w.err
}

// ReportStandings prints the final table.
func (r *Renderer) ReportStandings(season string, standings championship.Standings) error {
	w := &lineWriter{out: r.out}
	w.blank()
	w.line(r.printer.Sprintf("championship.standings.title", season))
	w.line(strings.Repeat("=", standingsRuleWidth))
	for i, record := range standings.Ranked() {
		w.line(r.printer.Sprintf("championship.standings.row",
			i+1, record.Name, record.Points, record.Wins, record.Podiums, record.FastestLaps))
	}
	return w.err
}

func (r *Renderer) weather(w race.Weather) string {
	return r.printer.Sprintf("race.weather." + w.Key())
}

func (r *Renderer) tire(t race.Tire) string {
	return r.printer.Sprintf("race.tire." + string(t))
}

func (r *Renderer) lapEvent(event race.LapEvent) string {
	if event.Kind == race.LapEventCrash {
		return r.printer.Sprintf("race.lap.crash", event.Lap, event.Competitor)
	}
	return r.printer.Sprintf("race.lap.safety_car", event.Lap)
}

func (r *Renderer) incident(incident race.Incident) string {
	switch incident.Kind {
	case race.IncidentMechanicalFailure:
		return r.printer.Sprintf("race.incident.mechanical_failure", incident.Competitor)
	case race.IncidentCrash:
		return r.printer.Sprintf("race.incident.crash", incident.Competitor)
	case race.IncidentPenalty:
		key := "race.penalty." + incident.Penalty.Key()
		var reason string
		switch {
		case incident.Penalty == race.PenaltyCollision && incident.Partner != "":
			reason = r.printer.Sprintf(key+".reason", incident.Partner)
		case incident.Penalty == race.PenaltyCollision:
			reason = r.printer.Sprintf(key + ".reason_unnamed")
		default:
			reason = r.printer.Sprintf(key + ".reason")
		}
		return r.printer.Sprintf("race.incident.penalty",
			incident.Competitor, incident.Seconds, r.printer.Sprintf(key), reason)
	default:
		return incident.String()
	}
}

// lineWriter keeps the first write error so rendering code stays linear.
type lineWriter struct {
	out io.Writer
	err error
}

func (w *lineWriter) line(s string) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintln(w.out, s)
}

func (w *lineWriter) blank() {
	w.line("")
}
