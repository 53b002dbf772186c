package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaibaitech/asrar-core/internal/domain/entities"
)

func TestFaceRuler_KnownDecans(t *testing.T) {
	tests := []struct {
		name     string
		sign     entities.ZodiacSign
		degree   float64
		expected entities.Planet
	}{
		{name: "aries first decan is mars", sign: entities.Aries, degree: 0, expected: entities.Mars},
		{name: "aries second decan is sun", sign: entities.Aries, degree: 10, expected: entities.Sun},
		{name: "aries third decan is venus", sign: entities.Aries, degree: 29.9, expected: entities.Venus},
		{name: "leo middle decan is jupiter", sign: entities.Leo, degree: 19, expected: entities.Jupiter},
		{name: "taurus first decan is mercury", sign: entities.Taurus, degree: 3, expected: entities.Mercury},
		{name: "pisces last decan is mars", sign: entities.Pisces, degree: 25, expected: entities.Mars},
		{name: "decan boundary belongs to the next decan", sign: entities.Aries, degree: 20, expected: entities.Venus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ruler, err := FaceRuler(tt.sign, tt.degree)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ruler)
		})
	}
}

// TestFaceRuler_ChaldeanWalk checks that consecutive decans through the
// whole zodiac follow the Chaldean rotation without a break.
func TestFaceRuler_ChaldeanWalk(t *testing.T) {
	var previous entities.Planet
	for i, sign := range entities.Signs {
		for decan := 0; decan < DecansPerSign; decan++ {
			ruler, err := FaceRuler(sign, float64(decan)*DecanWidth)
			require.NoError(t, err)
			if i == 0 && decan == 0 {
				assert.Equal(t, entities.Mars, ruler)
			} else {
				assert.Equal(t, previous.ChaldeanNext(), ruler,
					"%s decan %d must follow %s", sign, decan+1, previous)
			}
			previous = ruler
		}
	}
}

func TestFaceRuler_DegreeOutOfRange(t *testing.T) {
	_, err := FaceRuler(entities.Aries, 30)
	assert.Error(t, err)

	_, err = FaceRuler(entities.Aries, -0.1)
	assert.Error(t, err)
}

func TestHasFace(t *testing.T) {
	assert.True(t, HasFace(entities.Jupiter, entities.Leo, 15))
	assert.False(t, HasFace(entities.Sun, entities.Leo, 15))
}
