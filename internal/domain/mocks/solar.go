// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/zaibaitech/asrar-core/internal/domain/ports"
)

// SolarProvider is a mock implementation of ports.SolarPositionProvider.
// Times are keyed by the civil date (year, month, day) of the query.
type SolarProvider struct {
	Times map[string]ports.SunTimes
	Err   error
}

// SunTimes returns the configured times for the query date or the error.
// Querying a date with no configured times is an error, so a test asking
// for the wrong day fails with the date rather than a zero sun time.
func (m *SolarProvider) SunTimes(ctx context.Context, date time.Time, latitude, longitude float64) (ports.SunTimes, error) {
	if m.Err != nil {
		return ports.SunTimes{}, m.Err
	}
	key := date.Format(time.DateOnly)
	times, ok := m.Times[key]
	if !ok {
		return ports.SunTimes{}, fmt.Errorf("no sun times configured for %s", key)
	}
	return times, nil
}
