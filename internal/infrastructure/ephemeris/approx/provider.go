// Package approx implements the ecliptic position port with a mean-motion
// approximation: each planet's mean longitude at the J2000 epoch advanced
// by its mean daily motion. It is the always-available fallback when no
// live or cached ephemeris can be used, and its output is flagged as
// non-authoritative.
package approx

import (
	"context"
	"math"
	"time"

	"github.com/zaibaitech/asrar-core/internal/domain/entities"
)

// j2000 is the J2000.0 epoch: 2000-01-01 12:00 TT, taken as UTC here,
// which is well inside the error budget of a mean-motion model.
var j2000 = time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)

// meanElements holds a planet's mean ecliptic longitude at J2000 and its
// mean daily motion, both in degrees.
type meanElements struct {
	epochLongitude float64
	dailyMotion    float64
}

var elements = map[entities.Planet]meanElements{
	entities.Sun:     {epochLongitude: 280.460, dailyMotion: 0.98564736},
	entities.Moon:    {epochLongitude: 218.316, dailyMotion: 13.17639648},
	entities.Mercury: {epochLongitude: 252.251, dailyMotion: 4.09233445},
	entities.Venus:   {epochLongitude: 181.980, dailyMotion: 1.60213034},
	entities.Mars:    {epochLongitude: 355.433, dailyMotion: 0.52403304},
	entities.Jupiter: {epochLongitude: 34.351, dailyMotion: 0.08308687},
	entities.Saturn:  {epochLongitude: 50.077, dailyMotion: 0.03344414},
}

// Provider implements ports.EclipticPositionProvider.
type Provider struct{}

// NewProvider creates a new approximate ephemeris provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Positions returns mean-motion positions for all seven planets at the
// given moment. A mean-motion model cannot see retrograde loops, so
// Retrograde is always false and the set's provenance is Approximate.
func (p *Provider) Positions(ctx context.Context, at time.Time) (entities.PositionSet, error) {
	days := at.Sub(j2000).Hours() / 24

	positions := make([]entities.EclipticPosition, 0, entities.PlanetCount)
	for _, planet := range entities.Planets {
		el := elements[planet]
		longitude := mod360(el.epochLongitude + el.dailyMotion*days)
		sign, degree := entities.SignForLongitude(longitude)
		positions = append(positions, entities.EclipticPosition{
			Planet: planet,
			Sign:   sign,
			Degree: degree,
		})
	}

	return entities.PositionSet{
		At:         at,
		Provenance: entities.ProvenanceApproximate,
		Positions:  positions,
	}, nil
}

func mod360(deg float64) float64 {
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}
	return m
}
