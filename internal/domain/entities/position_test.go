package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEclipticPosition_Validate(t *testing.T) {
	tests := []struct {
		name    string
		pos     EclipticPosition
		wantErr bool
	}{
		{
			name: "valid position",
			pos:  EclipticPosition{Planet: Sun, Sign: Leo, Degree: 19},
		},
		{
			name: "zero degree is valid",
			pos:  EclipticPosition{Planet: Moon, Sign: Cancer, Degree: 0},
		},
		{
			name:    "degree thirty rejected, not wrapped",
			pos:     EclipticPosition{Planet: Sun, Sign: Leo, Degree: 30},
			wantErr: true,
		},
		{
			name:    "negative degree rejected",
			pos:     EclipticPosition{Planet: Sun, Sign: Leo, Degree: -0.5},
			wantErr: true,
		},
		{
			name:    "unknown planet rejected",
			pos:     EclipticPosition{Planet: Planet(9), Sign: Leo, Degree: 10},
			wantErr: true,
		},
		{
			name:    "unknown sign rejected",
			pos:     EclipticPosition{Planet: Sun, Sign: ZodiacSign(15), Degree: 10},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pos.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPositionSet_ByPlanet(t *testing.T) {
	set := PositionSet{
		Provenance: ProvenanceSnapshot,
		Positions: []EclipticPosition{
			{Planet: Sun, Sign: Leo, Degree: 19},
			{Planet: Moon, Sign: Cancer, Degree: 4},
		},
	}

	pos, ok := set.ByPlanet(Moon)
	assert.True(t, ok)
	assert.Equal(t, Cancer, pos.Sign)

	_, ok = set.ByPlanet(Saturn)
	assert.False(t, ok)
}

func TestProvenance_Authoritative(t *testing.T) {
	assert.True(t, ProvenanceLive.Authoritative())
	assert.True(t, ProvenanceSnapshot.Authoritative())
	assert.False(t, ProvenanceApproximate.Authoritative())
}
