package entities

import "time"

// Reading is one combined report for a moment and location: the day's hour
// wheel, the hour containing the moment, every planet's dignity, and the
// user-element alignment. Assembled fresh per request.
type Reading struct {
	ID          string          `json:"id"`
	At          time.Time       `json:"at"`
	Latitude    float64         `json:"latitude"`
	Longitude   float64         `json:"longitude"`
	Wheel       HourWheel       `json:"wheel"`
	CurrentHour PlanetaryHour   `json:"current_hour"`
	Dignities   []DignityResult `json:"dignities"`
	Alignment   Alignment       `json:"alignment"`
	Provenance  Provenance      `json:"provenance"`
}
