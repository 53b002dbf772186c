package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/zaibaitech/asrar-core/internal/domain/entities"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	dayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	nightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	markStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

const clockLayout = "15:04"

// renderWheel prints the 24-hour table, marking the hour containing at.
func renderWheel(wheel entities.HourWheel, at time.Time) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Planetary hours — %s, ruled by %s %s",
		wheel.Sunrise.Format("Mon 2 Jan 2006"), wheel.DayRuler, wheel.DayRuler.Symbol())))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("sunrise %s · sunset %s · next sunrise %s",
		wheel.Sunrise.Format(clockLayout), wheel.Sunset.Format(clockLayout), wheel.NextSunrise.Format(clockLayout))))
	b.WriteString("\n\n")

	for _, h := range wheel.Hours {
		style := nightStyle
		phase := "night"
		if h.Daytime {
			style = dayStyle
			phase = "day"
		}
		line := fmt.Sprintf("%2d  %s %-7s  %s – %s  %s",
			h.Index, h.Planet.Symbol(), h.Planet,
			h.Start.Format(clockLayout), h.End.Format(clockLayout), phase)
		if h.Contains(at) {
			line = markStyle.Render(line + "  ← now")
		} else {
			line = style.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// renderCurrentHour prints the hour containing at and the countdown to the
// next one.
func renderCurrentHour(wheel entities.HourWheel, current entities.PlanetaryHour, at time.Time) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Hour of %s %s (%s)",
		current.Planet, current.Planet.Symbol(), current.Planet.ArabicName())))
	b.WriteString("\n")
	phase := "night hour"
	if current.Daytime {
		phase = "day hour"
	}
	b.WriteString(fmt.Sprintf("Hour %d of 24 (%s), %s – %s\n",
		current.Index, phase, current.Start.Format(clockLayout), current.End.Format(clockLayout)))
	b.WriteString(fmt.Sprintf("Remaining: %s\n", current.Remaining(at).Round(time.Second)))
	if next, err := wheel.HourAfter(at); err == nil {
		b.WriteString(dimStyle.Render(fmt.Sprintf("Next: %s %s at %s",
			next.Planet, next.Planet.Symbol(), next.Start.Format(clockLayout))))
		b.WriteString("\n")
	}
	return b.String()
}

// renderDignity prints one planet's dignity evaluation.
func renderDignity(result entities.DignityResult, provenance entities.Provenance) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %s at %.1f° %s %s",
		result.Planet, result.Planet.Symbol(), result.Degree, result.Sign, result.Sign.Symbol())))
	b.WriteString("\n")

	for _, e := range result.Entries {
		sign := " "
		if e.Score > 0 {
			sign = "+"
		}
		b.WriteString(fmt.Sprintf("  %-10s (%s)  %s%d\n", e.Rule, e.Label, sign, e.Score))
	}
	if result.Retrograde {
		b.WriteString(fmt.Sprintf("  %-10s       %d\n", "Retrograde", entities.RetrogradePenalty))
	}

	b.WriteString(fmt.Sprintf("Total %+d → %s (%s)\n", result.Total, result.Tier, result.Tier.ArabicName()))
	if primary, ok := result.Primary(); ok {
		b.WriteString(dimStyle.Render(fmt.Sprintf("Primary: %s", primary.Rule)))
		b.WriteString("\n")
	}
	b.WriteString(provenanceNote(provenance))
	return b.String()
}

// renderAlignment prints the element harmony line.
func renderAlignment(a entities.Alignment) string {
	return fmt.Sprintf("Alignment: %s with %s hour → %d/100, %s\n",
		a.UserElement, a.HourElement, a.Score, markStyle.Render(a.Advisory.String()))
}

// provenanceNote returns the non-authoritative indicator, or nothing for
// live/snapshot positions.
func provenanceNote(p entities.Provenance) string {
	if p == "" || p.Authoritative() {
		return ""
	}
	return warnStyle.Render("⚠ approximate positions (no fresh ephemeris)") + "\n"
}
