package tables

import "github.com/zaibaitech/asrar-core/internal/domain/entities"

// triplicityRulers assigns a single ruler per element per sect, after the
// Dorothean primary rulers. No participating ruler is modeled; the table
// is carried over as-is rather than re-derived, since classical sources
// disagree on the third ruler.
var triplicityRulers = map[entities.Element]struct {
	day   entities.Planet
	night entities.Planet
}{
	entities.Fire:  {day: entities.Sun, night: entities.Jupiter},
	entities.Earth: {day: entities.Venus, night: entities.Moon},
	entities.Air:   {day: entities.Saturn, night: entities.Mercury},
	entities.Water: {day: entities.Venus, night: entities.Mars},
}

// TriplicityRuler returns the triplicity ruler of the element for a day or
// night chart. The sect flag is load-bearing: the ruler differs between
// day and night.
func TriplicityRuler(e entities.Element, day bool) entities.Planet {
	rulers := triplicityRulers[e]
	if day {
		return rulers.day
	}
	return rulers.night
}

// HasTriplicity reports whether the planet rules the sign's element for
// the given sect.
func HasTriplicity(p entities.Planet, s entities.ZodiacSign, day bool) bool {
	return TriplicityRuler(s.Element(), day) == p
}
