// Package nmea decodes NMEA-0183 sentences into typed messages.
//
// A sentence is accepted only when its frame marker, checksum, terminator,
// talker and message code are all valid and every field matches the
// grammar of its message. Failures are reported as *ParseError wrapping
// one of the Err sentinels.
//
//	s, err := nmea.Parse("$GPGGA,092725.00,4717.11399,N,00833.91590,E,1,08,1.01,499.6,M,48.0,M,,*5B\r\n")
//	if err != nil {
//		return err
//	}
//	switch m := s.Message.(type) {
//	case nmea.GGA:
//		fmt.Println(m.Quality, *m.Latitude)
//	}
//
// Decoding is a pure function of the input. Framer splits a byte stream
// from a serial port or file into candidate sentences.
package nmea
