package nmea

import (
	"math"
	"strings"
	"testing"

	gonmea "github.com/adrianmo/go-nmea"
)

// Sentences decoded by both this package and github.com/adrianmo/go-nmea
// must agree on the values both of them expose.

func otherParse(t *testing.T, line string) gonmea.Sentence {
	t.Helper()
	s, err := gonmea.Parse(strings.TrimSpace(line))
	if err != nil {
		t.Fatalf("go-nmea: %q: %v", line, err)
	}
	return s
}

func sameFloat(t *testing.T, name string, ours, theirs float64) {
	t.Helper()
	if math.Abs(ours-theirs) > 1e-7 {
		t.Errorf("%s: ours %v, go-nmea %v", name, ours, theirs)
	}
}

func sameTime(t *testing.T, ours *Time, theirs gonmea.Time) {
	t.Helper()
	if ours == nil || !theirs.Valid {
		t.Fatal("missing time")
	}
	if ours.Hour != theirs.Hour || ours.Minute != theirs.Minute || ours.Second != theirs.Second ||
		ours.Nanosecond/1e6 != theirs.Millisecond {
		t.Errorf("time: ours %v, go-nmea %v", ours, theirs)
	}
}

func TestCrossImplGGA(t *testing.T) {
	for _, line := range []string{
		"$GPGGA,092725.00,4717.11399,N,00833.91590,E,1,08,1.01,499.6,M,48.0,M,,*5B\r\n",
		frame("GPGGA,172814.0,3723.46587704,S,12202.26957864,W,2,6,1.2,18.893,M,-25.669,M,2.0,0031"),
	} {
		s, err := Parse(line)
		if err != nil {
			t.Fatal(err)
		}
		ours := s.Message.(GGA)
		theirs := otherParse(t, line).(gonmea.GGA)

		p, ok := ours.Point()
		if !ok {
			t.Fatal("no point")
		}
		sameFloat(t, "latitude", p.Latitude, theirs.Latitude)
		sameFloat(t, "longitude", p.Longitude, theirs.Longitude)
		sameTime(t, ours.Time, theirs.Time)
		sameFloat(t, "hdop", *ours.HDOP, theirs.HDOP)
		sameFloat(t, "altitude", float64(*ours.Altitude), theirs.Altitude)
		sameFloat(t, "separation", float64(*ours.GeoidSeparation), theirs.Separation)
		if int64(*ours.SatellitesUsed) != theirs.NumSatellites {
			t.Error("satellites", *ours.SatellitesUsed, theirs.NumSatellites)
		}
	}
}

func TestCrossImplRMC(t *testing.T) {
	line := "$GPRMC,083559.00,A,4717.11437,N,00833.91522,E,0.004,77.52,091202,,,A,V*2D\r\n"
	s, err := Parse(line)
	if err != nil {
		t.Fatal(err)
	}
	ours := s.Message.(RMC)
	theirs := otherParse(t, line).(gonmea.RMC)

	p, _ := ours.Point()
	sameFloat(t, "latitude", p.Latitude, theirs.Latitude)
	sameFloat(t, "longitude", p.Longitude, theirs.Longitude)
	sameTime(t, ours.Time, theirs.Time)
	sameFloat(t, "speed", float64(*ours.Speed), theirs.Speed)
	sameFloat(t, "course", float64(*ours.Course), theirs.Course)
	if ours.Date.Day != theirs.Date.DD || int(ours.Date.Month) != theirs.Date.MM || ours.Date.Year%100 != theirs.Date.YY {
		t.Error("date", ours.Date, theirs.Date)
	}
}

func TestCrossImplGLL(t *testing.T) {
	line := "$GPGLL,4717.11364,N,00833.91565,E,092321.00,A,A*60\r\n"
	s, err := Parse(line)
	if err != nil {
		t.Fatal(err)
	}
	ours := s.Message.(GLL)
	theirs := otherParse(t, line).(gonmea.GLL)

	p, _ := ours.Point()
	sameFloat(t, "latitude", p.Latitude, theirs.Latitude)
	sameFloat(t, "longitude", p.Longitude, theirs.Longitude)
	sameTime(t, ours.Time, theirs.Time)
}

func TestCrossImplZDA(t *testing.T) {
	line := "$GPZDA,082710.00,16,09,2002,00,00*64\r\n"
	s, err := Parse(line)
	if err != nil {
		t.Fatal(err)
	}
	ours := s.Message.(ZDA)
	theirs := otherParse(t, line).(gonmea.ZDA)

	sameTime(t, ours.Time, theirs.Time)
	if int64(*ours.Day) != theirs.Day || int64(*ours.Month) != theirs.Month || int64(*ours.Year) != theirs.Year {
		t.Error("date", *ours.Day, *ours.Month, *ours.Year, theirs)
	}
}

func TestCrossImplVTG(t *testing.T) {
	line := "$GPVTG,77.52,T,,M,0.004,N,0.008,K,A*06\r\n"
	s, err := Parse(line)
	if err != nil {
		t.Fatal(err)
	}
	ours := s.Message.(VTG)
	theirs := otherParse(t, line).(gonmea.VTG)

	sameFloat(t, "true track", float64(*ours.CourseTrue), theirs.TrueTrack)
	sameFloat(t, "knots", float64(*ours.SpeedKnots), theirs.GroundSpeedKnots)
	sameFloat(t, "kph", *ours.SpeedKmh, theirs.GroundSpeedKPH)
}
