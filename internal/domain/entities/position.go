package entities

import (
	"fmt"
	"time"
)

// Provenance describes where a set of ecliptic positions came from.
type Provenance string

const (
	// ProvenanceLive marks positions fetched from a live ephemeris.
	ProvenanceLive Provenance = "live"
	// ProvenanceSnapshot marks positions read from a cached snapshot.
	ProvenanceSnapshot Provenance = "snapshot"
	// ProvenanceApproximate marks positions from the mean-motion fallback.
	// Approximate positions carry no retrograde information.
	ProvenanceApproximate Provenance = "approximate"
)

// Authoritative reports whether positions of this provenance may be shown
// without an "approximate" indicator.
func (p Provenance) Authoritative() bool {
	return p == ProvenanceLive || p == ProvenanceSnapshot
}

// EclipticPosition is a planet's zodiacal position at some moment.
// Degree is the offset within the sign and must lie in [0,30).
type EclipticPosition struct {
	Planet     Planet     `json:"planet" yaml:"planet"`
	Sign       ZodiacSign `json:"sign" yaml:"sign"`
	Degree     float64    `json:"degree" yaml:"degree"`
	Retrograde bool       `json:"retrograde" yaml:"retrograde"`
}

// Validate checks the position against the input contract: a known planet,
// a known sign, and a degree in [0,30). A degree of exactly 30 is rejected
// rather than wrapped; wrapping would misattribute Terms and Face ranges at
// sign boundaries.
func (p EclipticPosition) Validate() error {
	if !p.Planet.IsValid() {
		return fmt.Errorf("invalid planet %d", int(p.Planet))
	}
	if !p.Sign.IsValid() {
		return fmt.Errorf("invalid zodiac sign %d", int(p.Sign))
	}
	if p.Degree < 0 || p.Degree >= SignSpan {
		return fmt.Errorf("degree %v out of range [0,%v)", p.Degree, SignSpan)
	}
	return nil
}

// PositionSet is the full set of planetary positions at one moment,
// tagged with its provenance.
type PositionSet struct {
	At         time.Time          `json:"at" yaml:"at"`
	Provenance Provenance         `json:"provenance" yaml:"provenance"`
	Positions  []EclipticPosition `json:"positions" yaml:"positions"`
}

// ByPlanet returns the position of the given planet, if present.
func (s PositionSet) ByPlanet(p Planet) (EclipticPosition, bool) {
	for _, pos := range s.Positions {
		if pos.Planet == p {
			return pos, true
		}
	}
	return EclipticPosition{}, false
}

// Validate checks every position in the set.
func (s PositionSet) Validate() error {
	for _, pos := range s.Positions {
		if err := pos.Validate(); err != nil {
			return fmt.Errorf("position for %s: %w", pos.Planet, err)
		}
	}
	return nil
}
