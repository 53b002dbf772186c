package tables

import "github.com/zaibaitech/asrar-core/internal/domain/entities"

// Exaltation pairs a planet's exaltation sign with its traditional exact
// degree. The degree is metadata for display; the dignity applies across
// the whole sign.
type Exaltation struct {
	Sign   entities.ZodiacSign
	Degree int
}

// exaltations lists the classical exaltation of each of the seven planets.
// The lunar nodes are excluded from this table.
var exaltations = map[entities.Planet]Exaltation{
	entities.Sun:     {Sign: entities.Aries, Degree: 19},
	entities.Moon:    {Sign: entities.Taurus, Degree: 3},
	entities.Mercury: {Sign: entities.Virgo, Degree: 15},
	entities.Venus:   {Sign: entities.Pisces, Degree: 27},
	entities.Mars:    {Sign: entities.Capricorn, Degree: 28},
	entities.Jupiter: {Sign: entities.Cancer, Degree: 15},
	entities.Saturn:  {Sign: entities.Libra, Degree: 21},
}

// ExaltationOf returns the planet's exaltation sign and degree.
func ExaltationOf(p entities.Planet) Exaltation {
	return exaltations[p]
}

// InExaltation reports whether the sign is the planet's exaltation sign.
func InExaltation(p entities.Planet, s entities.ZodiacSign) bool {
	return exaltations[p].Sign == s
}

// FallSign returns the sign opposite the planet's exaltation.
func FallSign(p entities.Planet) entities.ZodiacSign {
	return exaltations[p].Sign.Opposite()
}

// InFall reports whether the sign is the planet's fall sign.
func InFall(p entities.Planet, s entities.ZodiacSign) bool {
	return FallSign(p) == s
}
