package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/zaibaitech/asrar-core/internal/application/handlers"
	"github.com/zaibaitech/asrar-core/internal/domain/entities"
	"github.com/zaibaitech/asrar-core/internal/domain/ports"
	"github.com/zaibaitech/asrar-core/internal/domain/services"
	"github.com/zaibaitech/asrar-core/internal/infrastructure/config"
	"github.com/zaibaitech/asrar-core/internal/infrastructure/ephemeris/approx"
	"github.com/zaibaitech/asrar-core/internal/infrastructure/ephemeris/snapshot"
	"github.com/zaibaitech/asrar-core/internal/infrastructure/solar"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services and adapters are internal.
type Deps struct {
	Config         *config.Config
	Latitude       float64
	Longitude      float64
	HoursHandler   *handlers.HoursHandler
	DignityHandler *handlers.DignityHandler
	ReadingHandler *handlers.ReadingHandler
}

// UserElement resolves the configured user element.
func (d *Deps) UserElement() (entities.Element, error) {
	return d.Config.UserElement()
}

// withDeps loads config and builds dependencies, then calls the provided
// function.
func withDeps(fn func(*Deps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	latitude := cfg.Location.Latitude
	if globalLatitude != latitudeUnset {
		latitude = globalLatitude
	}
	longitude := cfg.Location.Longitude
	if globalLongitude != longitudeUnset {
		longitude = globalLongitude
	}

	solarCalc := solar.NewCalculator()
	ephemeris := newEphemeris(cfg, cwd)

	hourService := services.NewHourService(solarCalc)
	dignityService := services.NewDignityService()
	alignmentService := services.NewAlignmentService()
	readingService := services.NewReadingService(hourService, dignityService, alignmentService, ephemeris)

	deps := &Deps{
		Config:         cfg,
		Latitude:       latitude,
		Longitude:      longitude,
		HoursHandler:   handlers.NewHoursHandler(hourService),
		DignityHandler: handlers.NewDignityHandler(dignityService, hourService, ephemeris),
		ReadingHandler: handlers.NewReadingHandler(readingService),
	}

	return fn(deps)
}

// newEphemeris builds the position provider: the cached snapshot when one
// is fresh, falling back to the mean-motion approximation otherwise. The
// fallback's provenance flows through to the output so approximate
// results are never shown as live.
func newEphemeris(cfg *config.Config, basePath string) ports.EclipticPositionProvider {
	return &fallbackEphemeris{
		primary:  snapshot.NewProvider(cfg.SnapshotFilePath(basePath), cfg.SnapshotMaxAge()),
		fallback: approx.NewProvider(),
	}
}

// fallbackEphemeris tries the primary provider and silently degrades to
// the fallback on any failure. Degradation is visible to users through the
// position set's provenance, not through an error.
type fallbackEphemeris struct {
	primary  ports.EclipticPositionProvider
	fallback ports.EclipticPositionProvider
}

func (f *fallbackEphemeris) Positions(ctx context.Context, at time.Time) (entities.PositionSet, error) {
	set, err := f.primary.Positions(ctx, at)
	if err == nil {
		return set, nil
	}
	return f.fallback.Positions(ctx, at)
}
