package entities

import (
	"fmt"
	"time"
)

// HoursPerDay is the number of planetary hours in one solar day.
const HoursPerDay = 24

// DayHours is the number of planetary hours between sunrise and sunset.
const DayHours = 12

// PlanetaryHour is one of the 24 unequal hours of a solar day. Its interval
// is closed-open: an instant equal to End belongs to the following hour.
type PlanetaryHour struct {
	Planet  Planet    `json:"planet"`
	Index   int       `json:"index"` // 1..24; 1..12 are daytime
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Daytime bool      `json:"daytime"`
}

// Contains reports whether t falls inside the hour's [Start,End) interval.
func (h PlanetaryHour) Contains(t time.Time) bool {
	return !t.Before(h.Start) && t.Before(h.End)
}

// Duration returns the length of the hour.
func (h PlanetaryHour) Duration() time.Duration {
	return h.End.Sub(h.Start)
}

// Remaining returns how long the hour has left at t. Negative when t is
// past End; callers inside the hour always see a positive value.
func (h PlanetaryHour) Remaining(t time.Time) time.Duration {
	return h.End.Sub(t)
}

// HourWheel is the full set of 24 planetary hours for one solar day,
// tiling [Sunrise, NextSunrise) exactly. It is a computed value: built
// fresh per (date, location) query and never mutated.
type HourWheel struct {
	Sunrise     time.Time                  `json:"sunrise"`
	Sunset      time.Time                  `json:"sunset"`
	NextSunrise time.Time                  `json:"next_sunrise"`
	DayRuler    Planet                     `json:"day_ruler"`
	Hours       [HoursPerDay]PlanetaryHour `json:"hours"`
}

// HourAt returns the hour containing t. The instant shared by two adjacent
// hours belongs to the later one. Returns an error when t falls outside
// [Sunrise, NextSunrise); the caller must then recompute the wheel for the
// correct calendar day — the wheel does not roll dates itself.
func (w HourWheel) HourAt(t time.Time) (PlanetaryHour, error) {
	for _, h := range w.Hours {
		if h.Contains(t) {
			return h, nil
		}
	}
	return PlanetaryHour{}, fmt.Errorf("instant %s outside solar day [%s, %s)",
		t.Format(time.RFC3339), w.Sunrise.Format(time.RFC3339), w.NextSunrise.Format(time.RFC3339))
}

// HourAfter returns the hour that follows the one containing t. For the
// last hour of the solar day there is no successor within this wheel.
func (w HourWheel) HourAfter(t time.Time) (PlanetaryHour, error) {
	current, err := w.HourAt(t)
	if err != nil {
		return PlanetaryHour{}, err
	}
	if current.Index == HoursPerDay {
		return PlanetaryHour{}, fmt.Errorf("hour %d is the last of the solar day", current.Index)
	}
	return w.Hours[current.Index], nil
}
