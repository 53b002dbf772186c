package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/zaibaitech/asrar-core/internal/domain/entities"
	"github.com/zaibaitech/asrar-core/internal/domain/ports"
	"github.com/zaibaitech/asrar-core/internal/domain/services"
)

// DignityHandler handles essential dignity queries.
type DignityHandler struct {
	dignityService *services.DignityService
	hourService    *services.HourService
	ephemeris      ports.EclipticPositionProvider
}

// NewDignityHandler creates a new dignity handler.
func NewDignityHandler(dignityService *services.DignityService, hourService *services.HourService, ephemeris ports.EclipticPositionProvider) *DignityHandler {
	return &DignityHandler{
		dignityService: dignityService,
		hourService:    hourService,
		ephemeris:      ephemeris,
	}
}

// DignityQueryResult contains one planet's evaluated dignity along with
// the position it was evaluated from and that position's provenance.
type DignityQueryResult struct {
	Result     entities.DignityResult
	Position   entities.EclipticPosition
	Provenance entities.Provenance
}

// Handle evaluates the dignity of a planet at a moment and location. The
// day/night flag is taken from the planetary hour containing the moment.
func (h *DignityHandler) Handle(ctx context.Context, planet entities.Planet, now time.Time, latitude, longitude float64) (*DignityQueryResult, error) {
	wheel, err := h.hourService.WheelFor(ctx, now, latitude, longitude)
	if err != nil {
		return nil, fmt.Errorf("computing hour wheel: %w", err)
	}
	current, err := wheel.HourAt(now)
	if err != nil {
		return nil, fmt.Errorf("locating current hour: %w", err)
	}

	set, err := h.ephemeris.Positions(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("fetching ecliptic positions: %w", err)
	}
	pos, ok := set.ByPlanet(planet)
	if !ok {
		return nil, fmt.Errorf("ephemeris returned no position for %s", planet)
	}

	result, err := h.dignityService.EvaluatePosition(pos, current.Daytime)
	if err != nil {
		return nil, fmt.Errorf("evaluating %s: %w", planet, err)
	}

	return &DignityQueryResult{
		Result:     result,
		Position:   pos,
		Provenance: set.Provenance,
	}, nil
}

// HandlePlacement evaluates a caller-supplied placement directly, with no
// ephemeris involved.
func (h *DignityHandler) HandlePlacement(planet entities.Planet, sign entities.ZodiacSign, degree float64, day, retrograde bool) (*DignityQueryResult, error) {
	result, err := h.dignityService.Evaluate(planet, sign, degree, day, retrograde)
	if err != nil {
		return nil, fmt.Errorf("evaluating %s: %w", planet, err)
	}
	return &DignityQueryResult{
		Result: result,
		Position: entities.EclipticPosition{
			Planet:     planet,
			Sign:       sign,
			Degree:     degree,
			Retrograde: retrograde,
		},
	}, nil
}
