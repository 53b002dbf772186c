// Package tables holds the immutable reference tables the calculators are
// built on: rulerships, exaltations, triplicities, Egyptian Terms, Faces
// and weekday rulers. Every lookup is a pure function over fixed data.
package tables

import "github.com/zaibaitech/asrar-core/internal/domain/entities"

// domicileSigns maps each planet to the sign(s) it rules. The luminaries
// rule one sign each, the five planets rule two.
var domicileSigns = map[entities.Planet][]entities.ZodiacSign{
	entities.Sun:     {entities.Leo},
	entities.Moon:    {entities.Cancer},
	entities.Mercury: {entities.Gemini, entities.Virgo},
	entities.Venus:   {entities.Taurus, entities.Libra},
	entities.Mars:    {entities.Aries, entities.Scorpio},
	entities.Jupiter: {entities.Sagittarius, entities.Pisces},
	entities.Saturn:  {entities.Capricorn, entities.Aquarius},
}

// DomicileSigns returns the sign(s) the planet rules.
func DomicileSigns(p entities.Planet) []entities.ZodiacSign {
	signs := domicileSigns[p]
	out := make([]entities.ZodiacSign, len(signs))
	copy(out, signs)
	return out
}

// InDomicile reports whether the planet rules the sign.
func InDomicile(p entities.Planet, s entities.ZodiacSign) bool {
	for _, sign := range domicileSigns[p] {
		if sign == s {
			return true
		}
	}
	return false
}

// DetrimentSigns returns the sign(s) opposite the planet's domiciles.
func DetrimentSigns(p entities.Planet) []entities.ZodiacSign {
	signs := domicileSigns[p]
	out := make([]entities.ZodiacSign, len(signs))
	for i, sign := range signs {
		out[i] = sign.Opposite()
	}
	return out
}

// InDetriment reports whether the sign opposes one of the planet's
// domiciles.
func InDetriment(p entities.Planet, s entities.ZodiacSign) bool {
	return InDomicile(p, s.Opposite())
}

// SignRuler returns the domicile ruler of the sign.
func SignRuler(s entities.ZodiacSign) entities.Planet {
	for _, p := range entities.Planets {
		if InDomicile(p, s) {
			return p
		}
	}
	// Unreachable: every sign has exactly one domicile ruler.
	return entities.Sun
}
