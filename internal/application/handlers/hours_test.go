package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaibaitech/asrar-core/internal/domain/entities"
	"github.com/zaibaitech/asrar-core/internal/domain/mocks"
	"github.com/zaibaitech/asrar-core/internal/domain/ports"
	"github.com/zaibaitech/asrar-core/internal/domain/services"
)

// 2024-03-20 is a Wednesday: Mercury rules the day.
var (
	sunrise     = time.Date(2024, time.March, 20, 6, 0, 0, 0, time.UTC)
	sunset      = time.Date(2024, time.March, 20, 18, 0, 0, 0, time.UTC)
	nextSunrise = time.Date(2024, time.March, 21, 6, 0, 0, 0, time.UTC)
)

func solarMock() *mocks.SolarProvider {
	return &mocks.SolarProvider{
		Times: map[string]ports.SunTimes{
			"2024-03-20": {Sunrise: sunrise, Sunset: sunset},
			"2024-03-21": {Sunrise: nextSunrise, Sunset: nextSunrise.Add(12 * time.Hour)},
		},
	}
}

func TestHoursHandler_Handle(t *testing.T) {
	handler := NewHoursHandler(services.NewHourService(solarMock()))

	// 07:30 falls in the second day hour (each is exactly one clock hour
	// on this synthetic 12/12 day).
	now := time.Date(2024, time.March, 20, 7, 30, 0, 0, time.UTC)
	result, err := handler.Handle(context.Background(), now, 21.42, 39.83)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Current.Index)
	assert.Equal(t, entities.Mercury.ChaldeanNext(), result.Current.Planet)
	assert.Equal(t, 30*time.Minute, result.Remaining)
	require.True(t, result.HasNext)
	assert.Equal(t, 3, result.Next.Index)
}

func TestHoursHandler_Handle_LastHourHasNoNext(t *testing.T) {
	handler := NewHoursHandler(services.NewHourService(solarMock()))

	now := nextSunrise.Add(-10 * time.Minute)
	result, err := handler.Handle(context.Background(), now, 21.42, 39.83)
	require.NoError(t, err)

	assert.Equal(t, entities.HoursPerDay, result.Current.Index)
	assert.False(t, result.HasNext)
}

func TestHoursHandler_Handle_SolarError(t *testing.T) {
	handler := NewHoursHandler(services.NewHourService(&mocks.SolarProvider{Err: assert.AnError}))

	_, err := handler.Handle(context.Background(), time.Now(), 0, 0)
	assert.Error(t, err)
}
