package ports

import (
	"context"
	"time"

	"github.com/zaibaitech/asrar-core/internal/domain/entities"
)

// EclipticPositionProvider supplies planetary zodiacal positions for a
// moment. A live or cached provider may fail (outage, stale cache); the
// calling layer is then expected to substitute the approximate provider
// and surface the resulting provenance, rather than block.
type EclipticPositionProvider interface {
	// Positions returns the positions of all seven planets at the given
	// moment, tagged with their provenance.
	Positions(ctx context.Context, at time.Time) (entities.PositionSet, error)
}
