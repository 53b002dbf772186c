// Package solar implements the solar position port with the NOAA-style
// sunrise equation, so sun times can be computed offline from a date and
// coordinates alone.
package solar

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/zaibaitech/asrar-core/internal/domain/ports"
)

// ErrPolarDayNight is returned when the sun does not cross the horizon on
// the requested day (midnight sun or polar night).
var ErrPolarDayNight = errors.New("sun does not rise or set at this latitude on this date")

const (
	// j2000 is the Julian date of the J2000.0 epoch.
	j2000 = 2451545.0
	// unixEpochJD is the Julian date of the Unix epoch.
	unixEpochJD = 2440587.5
	// obliquity is the Earth's axial tilt in degrees.
	obliquity = 23.4397
	// sunAltitude is the standard altitude of the sun's center at rise
	// and set, accounting for refraction and the solar disc radius.
	sunAltitude = -0.833
)

// Calculator implements ports.SolarPositionProvider.
type Calculator struct{}

// NewCalculator creates a new solar calculator.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// SunTimes returns sunrise and sunset for the civil day containing date,
// expressed in date's time zone. Latitude must lie in [-90,90] and
// longitude in [-180,180], east positive.
func (c *Calculator) SunTimes(ctx context.Context, date time.Time, latitude, longitude float64) (ports.SunTimes, error) {
	if latitude < -90 || latitude > 90 {
		return ports.SunTimes{}, fmt.Errorf("latitude %v out of range [-90,90]", latitude)
	}
	if longitude < -180 || longitude > 180 {
		return ports.SunTimes{}, fmt.Errorf("longitude %v out of range [-180,180]", longitude)
	}

	// Anchor the computation on the civil day's local noon.
	year, month, day := date.Date()
	noon := time.Date(year, month, day, 12, 0, 0, 0, date.Location())
	n := math.Round(julianDate(noon) - j2000)

	// Mean solar time at the observer's meridian.
	jStar := n - longitude/360

	// Solar mean anomaly and equation of the center.
	meanAnomaly := mod360(357.5291 + 0.98560028*jStar)
	center := 1.9148*sinDeg(meanAnomaly) + 0.02*sinDeg(2*meanAnomaly) + 0.0003*sinDeg(3*meanAnomaly)

	// Ecliptic longitude of the sun.
	eclipticLon := mod360(meanAnomaly + center + 180 + 102.9372)

	// Solar transit (local solar noon) as a Julian date.
	transit := j2000 + jStar + 0.0053*sinDeg(meanAnomaly) - 0.0069*sinDeg(2*eclipticLon)

	// Declination of the sun.
	sinDecl := sinDeg(eclipticLon) * sinDeg(obliquity)
	cosDecl := math.Cos(math.Asin(sinDecl))

	// Hour angle of sunrise/sunset.
	cosHourAngle := (sinDeg(sunAltitude) - sinDeg(latitude)*sinDecl) / (cosDeg(latitude) * cosDecl)
	if cosHourAngle < -1 || cosHourAngle > 1 {
		return ports.SunTimes{}, fmt.Errorf("%w: latitude %v", ErrPolarDayNight, latitude)
	}
	hourAngle := math.Acos(cosHourAngle) * 180 / math.Pi

	return ports.SunTimes{
		Sunrise: fromJulianDate(transit - hourAngle/360).In(date.Location()),
		Sunset:  fromJulianDate(transit + hourAngle/360).In(date.Location()),
	}, nil
}

// julianDate converts an instant to a Julian date.
func julianDate(t time.Time) float64 {
	return float64(t.UnixMilli())/86400000 + unixEpochJD
}

// fromJulianDate converts a Julian date back to an instant in UTC.
func fromJulianDate(jd float64) time.Time {
	millis := (jd - unixEpochJD) * 86400000
	return time.UnixMilli(int64(math.Round(millis))).UTC()
}

func sinDeg(deg float64) float64 { return math.Sin(deg * math.Pi / 180) }

func cosDeg(deg float64) float64 { return math.Cos(deg * math.Pi / 180) }

func mod360(deg float64) float64 {
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}
	return m
}
