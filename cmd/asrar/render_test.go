package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaibaitech/asrar-core/internal/domain/services"
)

func TestRenderCurrentHour(t *testing.T) {
	sunrise := time.Date(2024, time.March, 20, 6, 0, 0, 0, time.UTC)
	wheel, err := services.BuildWheel(sunrise, sunrise.Add(12*time.Hour), sunrise.Add(24*time.Hour))
	require.NoError(t, err)

	// Halfway through hour 2 (07:00–08:00).
	at := sunrise.Add(90 * time.Minute)
	current, err := wheel.HourAt(at)
	require.NoError(t, err)

	out := renderCurrentHour(wheel, current, at)
	assert.Contains(t, out, "Hour 2 of 24")
	assert.Contains(t, out, "day hour")
	assert.Contains(t, out, "Remaining: 30m0s")
	assert.Contains(t, out, "Next:")
	assert.Contains(t, out, "08:00")
}

func TestRenderCurrentHour_LastHourHasNoNext(t *testing.T) {
	sunrise := time.Date(2024, time.March, 20, 6, 0, 0, 0, time.UTC)
	next := sunrise.Add(24 * time.Hour)
	wheel, err := services.BuildWheel(sunrise, sunrise.Add(12*time.Hour), next)
	require.NoError(t, err)

	at := next.Add(-10 * time.Minute)
	current, err := wheel.HourAt(at)
	require.NoError(t, err)

	out := renderCurrentHour(wheel, current, at)
	assert.Contains(t, out, "Hour 24 of 24")
	assert.Contains(t, out, "night hour")
	assert.NotContains(t, out, "Next:")
}
