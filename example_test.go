package nmea_test

import (
	"errors"
	"fmt"
	"strings"

	"calmh.dev/nmea"
)

func ExampleParse() {
	s, err := nmea.Parse("$GPGGA,092725.00,4717.11399,N,00833.91590,E,1,08,1.01,499.6,M,48.0,M,,*5B\r\n")
	if err != nil {
		fmt.Println(err)
		return
	}
	switch m := s.Message.(type) {
	case nmea.GGA:
		fmt.Println(s.Talker, m.Time, m.Quality)
		fmt.Printf("%.6f %v %.6f %v\n", *m.Latitude, m.NorthSouth, *m.Longitude, m.EastWest)
	}
	// Output:
	// GPS 09:27:25.000 AutonomousGNSSFix
	// 47.285233 North 8.565265 East
}

func ExampleFramer() {
	stream := "$UPGBQ,RMC*21\r\n$GPGGA,bad*00\r\n$GPFOO,1*4C\r\n"
	framer := nmea.NewFramer(strings.NewReader(stream))
	for {
		line, err := framer.Read()
		if err != nil {
			break
		}
		s, err := nmea.Parse(line)
		switch {
		case errors.Is(err, nmea.ErrChecksumMismatch):
			fmt.Println("corrupt")
		case err != nil:
			fmt.Println(nmea.ErrorKind(err))
		default:
			fmt.Println(s.Message.Code())
		}
	}
	// Output:
	// GBQ
	// corrupt
	// unknown_message
}
