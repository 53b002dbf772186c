package main

import (
	"fmt"
	"time"
)

// Sentinel values for unset coordinate flags; real coordinates never reach
// these magnitudes.
const (
	latitudeUnset  = 999.0
	longitudeUnset = 999.0
)

// whenLayouts are the accepted formats for the --at flag, tried in order.
var whenLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseWhen resolves the --at flag to an instant, defaulting to now.
// Layouts without a zone are read in the local time zone.
func parseWhen(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}
	for _, layout := range whenLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q (try RFC 3339 or '2006-01-02 15:04')", raw)
}
