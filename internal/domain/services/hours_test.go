package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaibaitech/asrar-core/internal/domain/entities"
	"github.com/zaibaitech/asrar-core/internal/domain/mocks"
	"github.com/zaibaitech/asrar-core/internal/domain/ports"
)

// 2024-03-20 is a Wednesday, so the day ruler is Mercury.
var (
	equinoxSunrise = time.Date(2024, time.March, 20, 6, 0, 0, 0, time.UTC)
	equinoxSunset  = time.Date(2024, time.March, 20, 18, 11, 0, 0, time.UTC)
	nextSunrise    = time.Date(2024, time.March, 21, 5, 58, 0, 0, time.UTC)
)

func TestBuildWheel_TilesTheSolarDay(t *testing.T) {
	wheel, err := BuildWheel(equinoxSunrise, equinoxSunset, nextSunrise)
	require.NoError(t, err)

	// Hour 1 starts at sunrise, hour 13 at sunset, hour 24 ends at the
	// next sunrise, and every boundary is shared without gap or overlap.
	assert.True(t, wheel.Hours[0].Start.Equal(equinoxSunrise))
	assert.True(t, wheel.Hours[11].End.Equal(equinoxSunset))
	assert.True(t, wheel.Hours[12].Start.Equal(equinoxSunset))
	assert.True(t, wheel.Hours[23].End.Equal(nextSunrise))
	for i := 0; i < entities.HoursPerDay-1; i++ {
		assert.True(t, wheel.Hours[i].End.Equal(wheel.Hours[i+1].Start),
			"hour %d must end where hour %d starts", i+1, i+2)
	}
}

func TestBuildWheel_UnequalHours(t *testing.T) {
	// A short winter day: 8h of daylight, 16h of night.
	sunrise := time.Date(2024, time.December, 21, 8, 0, 0, 0, time.UTC)
	sunset := sunrise.Add(8 * time.Hour)
	next := sunrise.Add(24 * time.Hour)

	wheel, err := BuildWheel(sunrise, sunset, next)
	require.NoError(t, err)

	// Day hours are 40 minutes, night hours 80: seasonal hours are not
	// clock hours.
	assert.Equal(t, 40*time.Minute, wheel.Hours[0].Duration())
	assert.Equal(t, 80*time.Minute, wheel.Hours[12].Duration())
}

func TestBuildWheel_DayRulerAndChaldeanWalk(t *testing.T) {
	wheel, err := BuildWheel(equinoxSunrise, equinoxSunset, nextSunrise)
	require.NoError(t, err)

	// Hour 1 is daytime and ruled by the weekday ruler.
	assert.Equal(t, entities.Mercury, wheel.DayRuler)
	assert.Equal(t, entities.Mercury, wheel.Hours[0].Planet)
	assert.True(t, wheel.Hours[0].Daytime)

	// Every following hour is the Chaldean successor of the previous,
	// unbroken across the sunset boundary.
	for i := 0; i < entities.HoursPerDay-1; i++ {
		assert.Equal(t, wheel.Hours[i].Planet.ChaldeanNext(), wheel.Hours[i+1].Planet)
	}

	// 24 slots from Mercury land hour 24 on Saturn: (5 + 23) mod 7 = 0.
	assert.Equal(t, entities.Saturn, wheel.Hours[23].Planet)
}

func TestBuildWheel_IndicesAndPhases(t *testing.T) {
	wheel, err := BuildWheel(equinoxSunrise, equinoxSunset, nextSunrise)
	require.NoError(t, err)

	for i, h := range wheel.Hours {
		assert.Equal(t, i+1, h.Index)
		assert.Equal(t, i < entities.DayHours, h.Daytime)
	}
}

func TestBuildWheel_RejectsNonPositiveDurations(t *testing.T) {
	tests := []struct {
		name        string
		sunrise     time.Time
		sunset      time.Time
		nextSunrise time.Time
	}{
		{
			name:        "sunset before sunrise",
			sunrise:     equinoxSunset,
			sunset:      equinoxSunrise,
			nextSunrise: nextSunrise,
		},
		{
			name:        "sunset equal to sunrise",
			sunrise:     equinoxSunrise,
			sunset:      equinoxSunrise,
			nextSunrise: nextSunrise,
		},
		{
			name:        "next sunrise before sunset",
			sunrise:     equinoxSunrise,
			sunset:      equinoxSunset,
			nextSunrise: equinoxSunset.Add(-time.Minute),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildWheel(tt.sunrise, tt.sunset, tt.nextSunrise)
			assert.ErrorIs(t, err, ErrNonPositiveDuration)
		})
	}
}

func TestBuildWheel_ExtremePolarDurations(t *testing.T) {
	// Near-polar day: the arithmetic still yields 12 very long day slots
	// and 12 very short night slots.
	sunrise := time.Date(2024, time.June, 21, 1, 0, 0, 0, time.UTC)
	sunset := sunrise.Add(23 * time.Hour)
	next := sunrise.Add(24 * time.Hour)

	wheel, err := BuildWheel(sunrise, sunset, next)
	require.NoError(t, err)
	assert.Equal(t, 115*time.Minute, wheel.Hours[0].Duration())
	assert.Equal(t, 5*time.Minute, wheel.Hours[12].Duration())
	assert.True(t, wheel.Hours[23].End.Equal(next))
}

func newMockSolar() *mocks.SolarProvider {
	return &mocks.SolarProvider{
		Times: map[string]ports.SunTimes{
			"2024-03-19": {
				Sunrise: time.Date(2024, time.March, 19, 6, 2, 0, 0, time.UTC),
				Sunset:  time.Date(2024, time.March, 19, 18, 10, 0, 0, time.UTC),
			},
			"2024-03-20": {Sunrise: equinoxSunrise, Sunset: equinoxSunset},
			"2024-03-21": {Sunrise: nextSunrise, Sunset: time.Date(2024, time.March, 21, 18, 12, 0, 0, time.UTC)},
		},
	}
}

func TestHourService_WheelFor(t *testing.T) {
	service := NewHourService(newMockSolar())

	now := time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)
	wheel, err := service.WheelFor(context.Background(), now, 21.42, 39.83)
	require.NoError(t, err)

	assert.True(t, wheel.Sunrise.Equal(equinoxSunrise))
	assert.True(t, wheel.NextSunrise.Equal(nextSunrise))

	current, err := wheel.HourAt(now)
	require.NoError(t, err)
	assert.True(t, current.Daytime)
}

func TestHourService_WheelFor_PreDawnUsesPreviousDay(t *testing.T) {
	service := NewHourService(newMockSolar())

	// 03:00 is before today's sunrise: the solar day that contains it
	// began at yesterday's sunrise.
	now := time.Date(2024, time.March, 20, 3, 0, 0, 0, time.UTC)
	wheel, err := service.WheelFor(context.Background(), now, 21.42, 39.83)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, time.March, 19, 6, 2, 0, 0, time.UTC), wheel.Sunrise)
	assert.True(t, wheel.NextSunrise.Equal(equinoxSunrise))

	current, err := wheel.HourAt(now)
	require.NoError(t, err)
	assert.False(t, current.Daytime)
}

func TestHourService_WheelFor_UnconfiguredDate(t *testing.T) {
	service := NewHourService(newMockSolar())

	// A date outside the mock's configured range fails naming the date,
	// not with a zero-duration artifact.
	now := time.Date(2024, time.April, 1, 12, 0, 0, 0, time.UTC)
	_, err := service.WheelFor(context.Background(), now, 21.42, 39.83)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2024-04-01")
	assert.NotErrorIs(t, err, ErrNonPositiveDuration)
}

func TestHourService_WheelFor_ProviderError(t *testing.T) {
	service := NewHourService(&mocks.SolarProvider{Err: assert.AnError})

	_, err := service.WheelFor(context.Background(), time.Now(), 0, 0)
	assert.Error(t, err)
}
