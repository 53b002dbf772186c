package entities

import (
	"fmt"
	"strings"
)

// Element is one of the four classical elements. Zodiac signs and planets
// each carry exactly one.
type Element int

const (
	Fire Element = iota
	Earth
	Air
	Water
)

// ElementCount is the number of classical elements.
const ElementCount = 4

// Elements lists all four elements.
var Elements = [ElementCount]Element{Fire, Earth, Air, Water}

var elementNames = [ElementCount]string{
	Fire:  "Fire",
	Earth: "Earth",
	Air:   "Air",
	Water: "Water",
}

var elementArabic = [ElementCount]string{
	Fire:  "نار",
	Earth: "تراب",
	Air:   "هواء",
	Water: "ماء",
}

// IsValid reports whether e is one of the four classical elements.
func (e Element) IsValid() bool {
	return e >= Fire && e <= Water
}

// String returns the English element name.
func (e Element) String() string {
	if !e.IsValid() {
		return fmt.Sprintf("Element(%d)", int(e))
	}
	return elementNames[e]
}

// ArabicName returns the Arabic name of the element.
func (e Element) ArabicName() string {
	if !e.IsValid() {
		return ""
	}
	return elementArabic[e]
}

// Complements reports whether e and other form a classically complementary
// pair: Fire with Air, Water with Earth.
func (e Element) Complements(other Element) bool {
	switch {
	case e == Fire && other == Air, e == Air && other == Fire:
		return true
	case e == Water && other == Earth, e == Earth && other == Water:
		return true
	default:
		return false
	}
}

// ParseElement converts a case-insensitive English element name to an Element.
func ParseElement(name string) (Element, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, e := range Elements {
		if strings.ToLower(elementNames[e]) == normalized {
			return e, nil
		}
	}
	return 0, fmt.Errorf("unknown element %q", name)
}
