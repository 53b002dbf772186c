// Package snapshot implements the ecliptic position port from a YAML file
// of cached live positions. A snapshot is only served while fresh; a
// missing or stale file is an error so the caller can fall back to the
// approximate provider and flag the provenance.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zaibaitech/asrar-core/internal/domain/entities"
)

// DefaultMaxAge is how long a snapshot stays usable after capture.
const DefaultMaxAge = 24 * time.Hour

// ErrStale is returned when the snapshot is older than the freshness
// window relative to the queried moment.
var ErrStale = errors.New("position snapshot is stale")

// ErrNotFound is returned when no snapshot file exists.
var ErrNotFound = errors.New("position snapshot not found")

// file is the on-disk snapshot format.
type file struct {
	CapturedAt time.Time      `yaml:"captured_at"`
	Source     string         `yaml:"source,omitempty"`
	Positions  []filePosition `yaml:"positions"`
}

type filePosition struct {
	Planet     string  `yaml:"planet"`
	Sign       string  `yaml:"sign"`
	Degree     float64 `yaml:"degree"`
	Retrograde bool    `yaml:"retrograde,omitempty"`
}

// Provider implements ports.EclipticPositionProvider from a snapshot file.
type Provider struct {
	path   string
	maxAge time.Duration
}

// NewProvider creates a snapshot provider reading from path. A maxAge of
// zero selects DefaultMaxAge.
func NewProvider(path string, maxAge time.Duration) *Provider {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	return &Provider{path: path, maxAge: maxAge}
}

// Positions returns the snapshotted positions when the snapshot is fresh
// relative to at. The snapshot's own capture time is reported in the set
// so callers can show how old the data is.
func (p *Provider) Positions(ctx context.Context, at time.Time) (entities.PositionSet, error) {
	data, err := os.ReadFile(p.path)
	if os.IsNotExist(err) {
		return entities.PositionSet{}, fmt.Errorf("%w: %s", ErrNotFound, p.path)
	}
	if err != nil {
		return entities.PositionSet{}, fmt.Errorf("reading snapshot: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return entities.PositionSet{}, fmt.Errorf("parsing snapshot: %w", err)
	}

	age := at.Sub(f.CapturedAt)
	if age < 0 {
		age = -age
	}
	if age > p.maxAge {
		return entities.PositionSet{}, fmt.Errorf("%w: captured %s, queried %s",
			ErrStale, f.CapturedAt.Format(time.RFC3339), at.Format(time.RFC3339))
	}

	set := entities.PositionSet{
		At:         f.CapturedAt,
		Provenance: entities.ProvenanceSnapshot,
	}
	for _, fp := range f.Positions {
		planet, err := entities.ParsePlanet(fp.Planet)
		if err != nil {
			return entities.PositionSet{}, fmt.Errorf("parsing snapshot: %w", err)
		}
		sign, err := entities.ParseSign(fp.Sign)
		if err != nil {
			return entities.PositionSet{}, fmt.Errorf("parsing snapshot: %w", err)
		}
		pos := entities.EclipticPosition{
			Planet:     planet,
			Sign:       sign,
			Degree:     fp.Degree,
			Retrograde: fp.Retrograde,
		}
		if err := pos.Validate(); err != nil {
			return entities.PositionSet{}, fmt.Errorf("snapshot position for %s: %w", planet, err)
		}
		set.Positions = append(set.Positions, pos)
	}

	return set, nil
}

// Write saves a position set to path in the snapshot format.
func Write(path string, set entities.PositionSet, source string) error {
	f := file{
		CapturedAt: set.At,
		Source:     source,
	}
	for _, pos := range set.Positions {
		f.Positions = append(f.Positions, filePosition{
			Planet:     strings.ToLower(pos.Planet.String()),
			Sign:       strings.ToLower(pos.Sign.String()),
			Degree:     pos.Degree,
			Retrograde: pos.Retrograde,
		})
	}

	data, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
