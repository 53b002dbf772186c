// Package integration exercises the full stack with real adapters: the
// NOAA solar calculator and the approximate ephemeris, wired through the
// domain services and application handlers with no mocks.
package integration

import (
	"github.com/zaibaitech/asrar-core/internal/application/handlers"
	"github.com/zaibaitech/asrar-core/internal/domain/ports"
	"github.com/zaibaitech/asrar-core/internal/domain/services"
	"github.com/zaibaitech/asrar-core/internal/infrastructure/ephemeris/approx"
	"github.com/zaibaitech/asrar-core/internal/infrastructure/solar"
)

// Mecca, the app's default location.
const (
	meccaLat = 21.4225
	meccaLon = 39.8262
)

type stack struct {
	hours   *handlers.HoursHandler
	dignity *handlers.DignityHandler
	reading *handlers.ReadingHandler
}

// newStack wires the real solar calculator with the given ephemeris.
func newStack(ephemeris ports.EclipticPositionProvider) *stack {
	hourService := services.NewHourService(solar.NewCalculator())
	dignityService := services.NewDignityService()
	alignmentService := services.NewAlignmentService()

	return &stack{
		hours:   handlers.NewHoursHandler(hourService),
		dignity: handlers.NewDignityHandler(dignityService, hourService, ephemeris),
		reading: handlers.NewReadingHandler(services.NewReadingService(
			hourService, dignityService, alignmentService, ephemeris,
		)),
	}
}

// newApproxStack uses the mean-motion ephemeris, the configuration every
// install can run offline.
func newApproxStack() *stack {
	return newStack(approx.NewProvider())
}
