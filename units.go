package nmea

import (
	"fmt"
	"time"
)

// Degree is an angle in decimal degrees.
type Degree float64

// Minute is an angle in arc minutes.
type Minute float64

// Second is a duration in seconds, as used for differential correction age.
type Second float64

// Meter is a length in meters.
type Meter float64

// Knot is a speed in nautical miles per hour.
type Knot float64

// DBHz is a carrier-to-noise density ratio.
type DBHz float64

// Time is a UTC time of day as reported by the receiver.
type Time struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d.%03d", t.Hour, t.Minute, t.Second, t.Nanosecond/int(time.Millisecond))
}

func (t Time) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Duration returns the time elapsed since midnight.
func (t Time) Duration() time.Duration {
	return time.Duration(t.Hour)*time.Hour +
		time.Duration(t.Minute)*time.Minute +
		time.Duration(t.Second)*time.Second +
		time.Duration(t.Nanosecond)
}

// Date is a calendar date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// At combines the date with a time of day into a UTC timestamp.
func (d Date) At(t Time) time.Time {
	return time.Date(d.Year, d.Month, d.Day, t.Hour, t.Minute, t.Second, t.Nanosecond, time.UTC)
}

// SatelliteInView describes one satellite slot of a GSV sentence.
type SatelliteInView struct {
	ID        *uint8
	Elevation *uint8  // degrees
	Azimuth   *uint16 // degrees true
	SNR       *DBHz
}
