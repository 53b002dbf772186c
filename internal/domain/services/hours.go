package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zaibaitech/asrar-core/internal/domain/entities"
	"github.com/zaibaitech/asrar-core/internal/domain/ports"
	"github.com/zaibaitech/asrar-core/internal/domain/tables"
)

// ErrNonPositiveDuration is returned when the supplied sun times produce a
// zero or negative day or night duration.
var ErrNonPositiveDuration = errors.New("day and night durations must be strictly positive")

// HourService computes the planetary hour wheel for a solar day.
type HourService struct {
	solar ports.SolarPositionProvider
}

// NewHourService creates a new hour service.
func NewHourService(solar ports.SolarPositionProvider) *HourService {
	return &HourService{solar: solar}
}

// WheelFor computes the 24 planetary hours of the solar day containing
// now at the given location. When now precedes today's sunrise the wheel
// is built from the previous civil day, so that pre-dawn instants land in
// the night hours of the day that began at the previous sunrise.
func (s *HourService) WheelFor(ctx context.Context, now time.Time, latitude, longitude float64) (entities.HourWheel, error) {
	today, err := s.solar.SunTimes(ctx, now, latitude, longitude)
	if err != nil {
		return entities.HourWheel{}, fmt.Errorf("computing sun times: %w", err)
	}

	if now.Before(today.Sunrise) {
		prev, err := s.solar.SunTimes(ctx, now.AddDate(0, 0, -1), latitude, longitude)
		if err != nil {
			return entities.HourWheel{}, fmt.Errorf("computing previous day sun times: %w", err)
		}
		return BuildWheel(prev.Sunrise, prev.Sunset, today.Sunrise)
	}

	tomorrow, err := s.solar.SunTimes(ctx, now.AddDate(0, 0, 1), latitude, longitude)
	if err != nil {
		return entities.HourWheel{}, fmt.Errorf("computing next day sun times: %w", err)
	}
	return BuildWheel(today.Sunrise, today.Sunset, tomorrow.Sunrise)
}

// BuildWheel partitions the solar day [sunrise, nextSunrise) into the 24
// planetary hours: 12 equal sub-intervals of daytime and 12 of nighttime,
// with rulers walking the Chaldean rotation from the weekday ruler of the
// sunrise day. These are seasonal hours; their length varies with latitude
// and season and must not be approximated as 60-minute clock hours.
func BuildWheel(sunrise, sunset, nextSunrise time.Time) (entities.HourWheel, error) {
	dayDur := sunset.Sub(sunrise)
	nightDur := nextSunrise.Sub(sunset)
	if dayDur <= 0 || nightDur <= 0 {
		return entities.HourWheel{}, fmt.Errorf("%w: day %s, night %s", ErrNonPositiveDuration, dayDur, nightDur)
	}

	ruler := tables.DayRuler(sunrise.Weekday())
	wheel := entities.HourWheel{
		Sunrise:     sunrise,
		Sunset:      sunset,
		NextSunrise: nextSunrise,
		DayRuler:    ruler,
	}

	// Boundaries are computed as fractions of the full duration rather
	// than by accumulating a rounded slot length, so the 12th boundary
	// lands exactly on sunset / next sunrise and the slots tile the solar
	// day with no gaps.
	planet := ruler
	for i := 0; i < entities.DayHours; i++ {
		wheel.Hours[i] = entities.PlanetaryHour{
			Planet:  planet,
			Index:   i + 1,
			Start:   sunrise.Add(dayDur * time.Duration(i) / entities.DayHours),
			End:     sunrise.Add(dayDur * time.Duration(i+1) / entities.DayHours),
			Daytime: true,
		}
		planet = planet.ChaldeanNext()
	}
	for i := 0; i < entities.DayHours; i++ {
		wheel.Hours[entities.DayHours+i] = entities.PlanetaryHour{
			Planet:  planet,
			Index:   entities.DayHours + i + 1,
			Start:   sunset.Add(nightDur * time.Duration(i) / entities.DayHours),
			End:     sunset.Add(nightDur * time.Duration(i+1) / entities.DayHours),
			Daytime: false,
		}
		planet = planet.ChaldeanNext()
	}

	return wheel, nil
}
