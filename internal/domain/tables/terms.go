package tables

import (
	"fmt"

	"github.com/zaibaitech/asrar-core/internal/domain/entities"
)

// Term is one bound of the Egyptian Terms table: the planet rules degrees
// [From, To) of the sign. Bounds are unequal-width and sign-specific.
type Term struct {
	Planet entities.Planet
	From   int
	To     int
}

// egyptianTerms is the canonical Egyptian Terms table: five unequal bounds
// per sign, covering [0,30) exactly.
var egyptianTerms = [entities.SignCount][5]Term{
	entities.Aries: {
		{entities.Jupiter, 0, 6}, {entities.Venus, 6, 12}, {entities.Mercury, 12, 20},
		{entities.Mars, 20, 25}, {entities.Saturn, 25, 30},
	},
	entities.Taurus: {
		{entities.Venus, 0, 8}, {entities.Mercury, 8, 14}, {entities.Jupiter, 14, 22},
		{entities.Saturn, 22, 27}, {entities.Mars, 27, 30},
	},
	entities.Gemini: {
		{entities.Mercury, 0, 6}, {entities.Jupiter, 6, 12}, {entities.Venus, 12, 17},
		{entities.Mars, 17, 24}, {entities.Saturn, 24, 30},
	},
	entities.Cancer: {
		{entities.Mars, 0, 7}, {entities.Venus, 7, 13}, {entities.Mercury, 13, 19},
		{entities.Jupiter, 19, 26}, {entities.Saturn, 26, 30},
	},
	entities.Leo: {
		{entities.Jupiter, 0, 6}, {entities.Venus, 6, 11}, {entities.Saturn, 11, 18},
		{entities.Mercury, 18, 24}, {entities.Mars, 24, 30},
	},
	entities.Virgo: {
		{entities.Mercury, 0, 7}, {entities.Venus, 7, 17}, {entities.Jupiter, 17, 21},
		{entities.Mars, 21, 28}, {entities.Saturn, 28, 30},
	},
	entities.Libra: {
		{entities.Saturn, 0, 6}, {entities.Mercury, 6, 14}, {entities.Jupiter, 14, 21},
		{entities.Venus, 21, 28}, {entities.Mars, 28, 30},
	},
	entities.Scorpio: {
		{entities.Mars, 0, 7}, {entities.Venus, 7, 11}, {entities.Mercury, 11, 19},
		{entities.Jupiter, 19, 24}, {entities.Saturn, 24, 30},
	},
	entities.Sagittarius: {
		{entities.Jupiter, 0, 12}, {entities.Venus, 12, 17}, {entities.Mercury, 17, 21},
		{entities.Saturn, 21, 26}, {entities.Mars, 26, 30},
	},
	entities.Capricorn: {
		{entities.Mercury, 0, 7}, {entities.Jupiter, 7, 14}, {entities.Venus, 14, 22},
		{entities.Saturn, 22, 26}, {entities.Mars, 26, 30},
	},
	entities.Aquarius: {
		{entities.Mercury, 0, 7}, {entities.Venus, 7, 13}, {entities.Jupiter, 13, 20},
		{entities.Mars, 20, 25}, {entities.Saturn, 25, 30},
	},
	entities.Pisces: {
		{entities.Venus, 0, 12}, {entities.Jupiter, 12, 16}, {entities.Mercury, 16, 19},
		{entities.Mars, 19, 28}, {entities.Saturn, 28, 30},
	},
}

// TermsOf returns the five bounds of the sign.
func TermsOf(s entities.ZodiacSign) [5]Term {
	return egyptianTerms[s]
}

// TermRuler returns the planet ruling the bound that contains the degree.
// Bounds are half-open on degree, so a degree equal to a boundary belongs
// to the following bound. The degree must lie in [0,30).
func TermRuler(s entities.ZodiacSign, degree float64) (entities.Planet, error) {
	if degree < 0 || degree >= entities.SignSpan {
		return 0, fmt.Errorf("degree %v out of range [0,%v)", degree, entities.SignSpan)
	}
	for _, term := range egyptianTerms[s] {
		if degree >= float64(term.From) && degree < float64(term.To) {
			return term.Planet, nil
		}
	}
	// Unreachable: the bounds tile [0,30).
	return 0, fmt.Errorf("no term found for %s at %v", s, degree)
}

// HasTerm reports whether the planet rules the bound containing the degree.
func HasTerm(p entities.Planet, s entities.ZodiacSign, degree float64) bool {
	ruler, err := TermRuler(s, degree)
	return err == nil && ruler == p
}
