package entities

import (
	"fmt"
	"strings"
)

// ZodiacSign is one of the twelve signs, in ecliptic order starting at Aries.
type ZodiacSign int

const (
	Aries ZodiacSign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

// SignCount is the number of zodiac signs.
const SignCount = 12

// SignSpan is the width of one sign in ecliptic degrees.
const SignSpan = 30.0

// Signs lists all twelve signs in ecliptic order.
var Signs = [SignCount]ZodiacSign{
	Aries, Taurus, Gemini, Cancer, Leo, Virgo,
	Libra, Scorpio, Sagittarius, Capricorn, Aquarius, Pisces,
}

// Modality is a sign's mode of expression.
type Modality int

const (
	Cardinal Modality = iota
	Fixed
	Mutable
)

var modalityNames = [3]string{"Cardinal", "Fixed", "Mutable"}

// String returns the English modality name.
func (m Modality) String() string {
	if m < Cardinal || m > Mutable {
		return fmt.Sprintf("Modality(%d)", int(m))
	}
	return modalityNames[m]
}

type signInfo struct {
	name   string
	arabic string
	symbol string
}

var signTable = [SignCount]signInfo{
	Aries:       {name: "Aries", arabic: "الحمل", symbol: "♈"},
	Taurus:      {name: "Taurus", arabic: "الثور", symbol: "♉"},
	Gemini:      {name: "Gemini", arabic: "الجوزاء", symbol: "♊"},
	Cancer:      {name: "Cancer", arabic: "السرطان", symbol: "♋"},
	Leo:         {name: "Leo", arabic: "الأسد", symbol: "♌"},
	Virgo:       {name: "Virgo", arabic: "العذراء", symbol: "♍"},
	Libra:       {name: "Libra", arabic: "الميزان", symbol: "♎"},
	Scorpio:     {name: "Scorpio", arabic: "العقرب", symbol: "♏"},
	Sagittarius: {name: "Sagittarius", arabic: "القوس", symbol: "♐"},
	Capricorn:   {name: "Capricorn", arabic: "الجدي", symbol: "♑"},
	Aquarius:    {name: "Aquarius", arabic: "الدلو", symbol: "♒"},
	Pisces:      {name: "Pisces", arabic: "الحوت", symbol: "♓"},
}

// IsValid reports whether s is one of the twelve signs.
func (s ZodiacSign) IsValid() bool {
	return s >= Aries && s <= Pisces
}

// String returns the English sign name.
func (s ZodiacSign) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("ZodiacSign(%d)", int(s))
	}
	return signTable[s].name
}

// ArabicName returns the Arabic name of the sign.
func (s ZodiacSign) ArabicName() string {
	if !s.IsValid() {
		return ""
	}
	return signTable[s].arabic
}

// Symbol returns the astrological glyph for the sign.
func (s ZodiacSign) Symbol() string {
	if !s.IsValid() {
		return "?"
	}
	return signTable[s].symbol
}

// Element returns the sign's element. The elements cycle
// Fire, Earth, Air, Water through the zodiac starting at Aries.
func (s ZodiacSign) Element() Element {
	return Element(int(s) % ElementCount)
}

// Modality returns the sign's modality. The modalities cycle
// Cardinal, Fixed, Mutable through the zodiac starting at Aries.
func (s ZodiacSign) Modality() Modality {
	return Modality(int(s) % 3)
}

// Opposite returns the sign 180 degrees across the zodiac.
func (s ZodiacSign) Opposite() ZodiacSign {
	return ZodiacSign((int(s) + SignCount/2) % SignCount)
}

// SignForLongitude converts an absolute ecliptic longitude in [0,360) to
// the containing sign and the degree within that sign.
func SignForLongitude(longitude float64) (ZodiacSign, float64) {
	sign := ZodiacSign(int(longitude/SignSpan) % SignCount)
	return sign, longitude - float64(int(longitude/SignSpan))*SignSpan
}

// ParseSign converts a case-insensitive English sign name to a ZodiacSign.
func ParseSign(name string) (ZodiacSign, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, s := range Signs {
		if strings.ToLower(signTable[s].name) == normalized {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown zodiac sign %q", name)
}
