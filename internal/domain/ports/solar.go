// Package ports defines interfaces for external collaborators.
package ports

import (
	"context"
	"time"
)

// SunTimes holds the sunrise and sunset instants for one civil day.
type SunTimes struct {
	Sunrise time.Time
	Sunset  time.Time
}

// SolarPositionProvider supplies sunrise and sunset for a calendar date
// and location. Implementations must guarantee sunrise < sunset for the
// same civil day; no guarantee is made for pathological polar inputs.
type SolarPositionProvider interface {
	// SunTimes returns sunrise and sunset for the civil day containing
	// date, in date's time zone.
	SunTimes(ctx context.Context, date time.Time, latitude, longitude float64) (SunTimes, error)
}
