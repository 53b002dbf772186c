package tables

import (
	"fmt"

	"github.com/zaibaitech/asrar-core/internal/domain/entities"
)

// DecansPerSign is the number of 10°-wide faces in each sign.
const DecansPerSign = 3

// DecanWidth is the width of one face in degrees.
const DecanWidth = 10.0

// firstDecanRuler anchors the face rotation: the faces walk the Chaldean
// order continuously through all 36 decans of the zodiac, starting from
// Mars at the first decan of Aries.
const firstDecanRuler = entities.Mars

// FaceRuler returns the planet ruling the face containing the degree of
// the sign. The degree must lie in [0,30).
func FaceRuler(s entities.ZodiacSign, degree float64) (entities.Planet, error) {
	if degree < 0 || degree >= entities.SignSpan {
		return 0, fmt.Errorf("degree %v out of range [0,%v)", degree, entities.SignSpan)
	}
	decan := int(degree / DecanWidth)
	if decan >= DecansPerSign {
		decan = DecansPerSign - 1
	}
	absolute := int(s)*DecansPerSign + decan
	return entities.Planet((int(firstDecanRuler) + absolute) % entities.PlanetCount), nil
}

// HasFace reports whether the planet rules the face containing the degree.
func HasFace(p entities.Planet, s entities.ZodiacSign, degree float64) bool {
	ruler, err := FaceRuler(s, degree)
	return err == nil && ruler == p
}
