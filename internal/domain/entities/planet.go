// Package entities contains core domain data structures.
package entities

import (
	"fmt"
	"strings"
)

// Planet is one of the seven classical planets. The declaration order is
// the Chaldean order (slowest to fastest), so the integer value doubles as
// the planet's position in the hour-ruler rotation.
type Planet int

const (
	Saturn Planet = iota
	Jupiter
	Mars
	Sun
	Venus
	Mercury
	Moon
)

// PlanetCount is the number of classical planets.
const PlanetCount = 7

// Planets lists all seven planets in Chaldean order.
var Planets = [PlanetCount]Planet{Saturn, Jupiter, Mars, Sun, Venus, Mercury, Moon}

// planetInfo holds fixed per-planet metadata.
type planetInfo struct {
	name    string
	arabic  string
	symbol  string
	element Element
}

var planetTable = [PlanetCount]planetInfo{
	Saturn:  {name: "Saturn", arabic: "زحل", symbol: "♄", element: Earth},
	Jupiter: {name: "Jupiter", arabic: "المشتري", symbol: "♃", element: Fire},
	Mars:    {name: "Mars", arabic: "المريخ", symbol: "♂", element: Fire},
	Sun:     {name: "Sun", arabic: "الشمس", symbol: "☉", element: Fire},
	Venus:   {name: "Venus", arabic: "الزهرة", symbol: "♀", element: Earth},
	Mercury: {name: "Mercury", arabic: "عطارد", symbol: "☿", element: Air},
	Moon:    {name: "Moon", arabic: "القمر", symbol: "☽", element: Water},
}

// IsValid reports whether p is one of the seven classical planets.
func (p Planet) IsValid() bool {
	return p >= Saturn && p <= Moon
}

// String returns the English planet name.
func (p Planet) String() string {
	if !p.IsValid() {
		return fmt.Sprintf("Planet(%d)", int(p))
	}
	return planetTable[p].name
}

// ArabicName returns the classical Arabic name of the planet.
func (p Planet) ArabicName() string {
	if !p.IsValid() {
		return ""
	}
	return planetTable[p].arabic
}

// Symbol returns the astronomical glyph for the planet.
func (p Planet) Symbol() string {
	if !p.IsValid() {
		return "?"
	}
	return planetTable[p].symbol
}

// Element returns the planet's home element, used for day-ruler
// descriptions and alignment scoring.
func (p Planet) Element() Element {
	if !p.IsValid() {
		return Fire
	}
	return planetTable[p].element
}

// ChaldeanNext returns the planet that follows p in the Chaldean rotation,
// wrapping from Moon back to Saturn.
func (p Planet) ChaldeanNext() Planet {
	return Planet((int(p) + 1) % PlanetCount)
}

// ParsePlanet converts a case-insensitive English planet name to a Planet.
func ParsePlanet(name string) (Planet, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, p := range Planets {
		if strings.ToLower(planetTable[p].name) == normalized {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown planet %q", name)
}
