package tables

import (
	"time"

	"github.com/zaibaitech/asrar-core/internal/domain/entities"
)

// dayRulers maps each weekday to its ruling planet.
var dayRulers = [7]entities.Planet{
	time.Sunday:    entities.Sun,
	time.Monday:    entities.Moon,
	time.Tuesday:   entities.Mars,
	time.Wednesday: entities.Mercury,
	time.Thursday:  entities.Jupiter,
	time.Friday:    entities.Venus,
	time.Saturday:  entities.Saturn,
}

// DayRuler returns the planet ruling the given weekday. The day's first
// planetary hour is always ruled by this planet.
func DayRuler(weekday time.Weekday) entities.Planet {
	return dayRulers[weekday]
}
