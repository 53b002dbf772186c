package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zaibaitech/asrar-core/internal/domain/entities"
	"github.com/zaibaitech/asrar-core/internal/domain/ports"
)

// ReadingService assembles a full reading: the hour wheel, the current
// hour, every planet's dignity and the user-element alignment.
type ReadingService struct {
	hours     *HourService
	dignity   *DignityService
	alignment *AlignmentService
	ephemeris ports.EclipticPositionProvider
}

// NewReadingService creates a new reading service.
func NewReadingService(hours *HourService, dignity *DignityService, alignment *AlignmentService, ephemeris ports.EclipticPositionProvider) *ReadingService {
	return &ReadingService{
		hours:     hours,
		dignity:   dignity,
		alignment: alignment,
		ephemeris: ephemeris,
	}
}

// Compose builds the reading for a moment, location and user element.
// The day/night flag fed to the dignity evaluation comes from the hour
// containing the moment, so a planet's triplicity follows the sect of the
// chart being read.
func (s *ReadingService) Compose(ctx context.Context, now time.Time, latitude, longitude float64, user entities.Element) (entities.Reading, error) {
	wheel, err := s.hours.WheelFor(ctx, now, latitude, longitude)
	if err != nil {
		return entities.Reading{}, fmt.Errorf("computing hour wheel: %w", err)
	}

	current, err := wheel.HourAt(now)
	if err != nil {
		return entities.Reading{}, fmt.Errorf("locating current hour: %w", err)
	}

	set, err := s.ephemeris.Positions(ctx, now)
	if err != nil {
		return entities.Reading{}, fmt.Errorf("fetching ecliptic positions: %w", err)
	}
	if err := set.Validate(); err != nil {
		return entities.Reading{}, fmt.Errorf("validating ecliptic positions: %w", err)
	}

	dignities := make([]entities.DignityResult, 0, entities.PlanetCount)
	for _, planet := range entities.Planets {
		pos, ok := set.ByPlanet(planet)
		if !ok {
			return entities.Reading{}, fmt.Errorf("ephemeris returned no position for %s", planet)
		}
		result, err := s.dignity.EvaluatePosition(pos, current.Daytime)
		if err != nil {
			return entities.Reading{}, fmt.Errorf("evaluating %s: %w", planet, err)
		}
		dignities = append(dignities, result)
	}

	return entities.Reading{
		ID:          uuid.New().String(),
		At:          now,
		Latitude:    latitude,
		Longitude:   longitude,
		Wheel:       wheel,
		CurrentHour: current,
		Dignities:   dignities,
		Alignment:   s.alignment.Score(user, current.Planet.Element()),
		Provenance:  set.Provenance,
	}, nil
}
