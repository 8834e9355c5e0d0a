// Package fixlog keeps a history of position fixes in an SQLite database.
package fixlog

import (
	"time"

	"calmh.dev/nmea"
)

// Fix is one recorded position.
type Fix struct {
	ID        int64
	Time      time.Time // UTC
	Talker    string
	Code      string
	Latitude  float64
	Longitude float64
	Altitude  *float64 // meters above mean sea level
	Quality   string
}

// FromSentence extracts a fix from a GGA, GLL, GNS or RMC sentence. It is
// false for other sentences and for sentences that report no valid
// position. Sentences without a date are placed on the UTC date of
// received.
func FromSentence(s nmea.Sentence, received time.Time) (Fix, bool) {
	f := Fix{Talker: s.Talker.String(), Code: s.Message.Code()}
	var (
		p  nmea.Point
		ok bool
		t  *nmea.Time
	)

	switch m := s.Message.(type) {
	case nmea.GGA:
		if m.Quality == nmea.QualityNoFix {
			return Fix{}, false
		}
		p, ok = m.Point()
		t = m.Time
		f.Quality = m.Quality.String()
		if m.Altitude != nil {
			alt := float64(*m.Altitude)
			f.Altitude = &alt
		}

	case nmea.GLL:
		if m.Status != nmea.StatusValid || m.Mode == nmea.ModeNoFix {
			return Fix{}, false
		}
		p, ok = m.Point()
		t = m.Time
		f.Quality = m.Mode.String()

	case nmea.GNS:
		mode, fixed := bestMode(m.Modes)
		if !fixed {
			return Fix{}, false
		}
		p, ok = m.Point()
		t = m.Time
		f.Quality = mode.String()
		if m.Altitude != nil {
			alt := float64(*m.Altitude)
			f.Altitude = &alt
		}

	case nmea.RMC:
		if m.Status != nmea.StatusValid || m.Mode == nmea.ModeNoFix {
			return Fix{}, false
		}
		p, ok = m.Point()
		f.Quality = m.Mode.String()
		if m.Date != nil && m.Time != nil {
			f.Time = m.Date.At(*m.Time)
		} else {
			t = m.Time
		}

	default:
		return Fix{}, false
	}
	if !ok {
		return Fix{}, false
	}

	f.Latitude = p.Latitude
	f.Longitude = p.Longitude
	if f.Time.IsZero() {
		received = received.UTC()
		day := time.Date(received.Year(), received.Month(), received.Day(), 0, 0, 0, 0, time.UTC)
		if t != nil {
			f.Time = day.Add(t.Duration())
		} else {
			f.Time = received
		}
	}
	return f, true
}

// bestMode returns the first constellation mode that is a fix.
func bestMode(modes []nmea.FixMode) (nmea.FixMode, bool) {
	for _, m := range modes {
		if m != nmea.ModeNoFix {
			return m, true
		}
	}
	return nmea.ModeNoFix, false
}
