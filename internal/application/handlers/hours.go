// Package handlers wires domain services to the CLI surface.
package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/zaibaitech/asrar-core/internal/domain/entities"
	"github.com/zaibaitech/asrar-core/internal/domain/services"
)

// HoursHandler handles planetary hour queries.
type HoursHandler struct {
	hourService *services.HourService
}

// NewHoursHandler creates a new hours handler.
func NewHoursHandler(hourService *services.HourService) *HoursHandler {
	return &HoursHandler{
		hourService: hourService,
	}
}

// HoursResult contains the hour wheel and, when the query instant falls
// inside it, the current and next hours.
type HoursResult struct {
	At        time.Time
	Wheel     entities.HourWheel
	Current   entities.PlanetaryHour
	Next      entities.PlanetaryHour
	HasNext   bool
	Remaining time.Duration
}

// Handle computes the hour wheel for the solar day containing now.
func (h *HoursHandler) Handle(ctx context.Context, now time.Time, latitude, longitude float64) (*HoursResult, error) {
	wheel, err := h.hourService.WheelFor(ctx, now, latitude, longitude)
	if err != nil {
		return nil, fmt.Errorf("computing hour wheel: %w", err)
	}

	current, err := wheel.HourAt(now)
	if err != nil {
		return nil, fmt.Errorf("locating current hour: %w", err)
	}

	result := &HoursResult{
		At:        now,
		Wheel:     wheel,
		Current:   current,
		Remaining: current.Remaining(now),
	}
	if next, err := wheel.HourAfter(now); err == nil {
		result.Next = next
		result.HasNext = true
	}
	return result, nil
}
