package mocks

import (
	"context"
	"time"

	"github.com/zaibaitech/asrar-core/internal/domain/entities"
)

// EphemerisProvider is a mock implementation of ports.EclipticPositionProvider.
type EphemerisProvider struct {
	Set entities.PositionSet
	Err error
}

// Positions returns the configured position set or error.
func (m *EphemerisProvider) Positions(ctx context.Context, at time.Time) (entities.PositionSet, error) {
	if m.Err != nil {
		return entities.PositionSet{}, m.Err
	}
	set := m.Set
	if set.At.IsZero() {
		set.At = at
	}
	return set, nil
}
