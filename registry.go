package nmea

import (
	"fmt"
	"sort"
)

// Message is the decoded body of a sentence. The set of implementations
// is closed; switch on the concrete type to handle a message.
type Message interface {
	// Code is the three-letter message code, such as "GGA".
	Code() string
	isMessage()
}

type decodeFunc func(r *fieldReader) (Message, error)

var decoders = make(map[string]decodeFunc)

// register adds a message decoder to the dispatch table. It is called from
// init in the file that defines the message.
func register[M Message](code string, fn func(r *fieldReader) (M, error)) {
	if _, ok := decoders[code]; ok {
		panic(fmt.Sprintf("nmea: decoder for %s registered twice", code))
	}
	decoders[code] = func(r *fieldReader) (Message, error) {
		m, err := fn(r)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}

func lookupDecoder(code string) (decodeFunc, error) {
	if fn, ok := decoders[code]; ok {
		return fn, nil
	}
	e := newError(StageMessage, ErrUnknownMessage, code)
	if _, ok := knownCodes[code]; ok {
		e.Err = ErrUnsupportedMessage
	}
	e.Code = code
	return nil, e
}

// SupportedCodes returns the message codes Decode understands, sorted.
func SupportedCodes() []string {
	codes := make([]string, 0, len(decoders))
	for c := range decoders {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// Describe returns a short description of a standard message code,
// whether or not it is supported.
func Describe(code string) string {
	return knownCodes[code]
}

// knownCodes lists standard NMEA-0183 message codes. Codes listed here but
// without a decoder are reported as ErrUnsupportedMessage rather than
// ErrUnknownMessage.
var knownCodes = map[string]string{
	"AAM": "Waypoint arrival alarm",
	"ABK": "AIS addressed and binary broadcast acknowledgement",
	"ACA": "AIS channel assignment",
	"ALM": "GPS almanac data",
	"ALR": "Set alarm state",
	"APA": "Autopilot sentence A",
	"APB": "Autopilot sentence B",
	"BOD": "Bearing origin to destination",
	"BWC": "Bearing and distance to waypoint, great circle",
	"BWR": "Bearing and distance to waypoint, rhumb line",
	"BWW": "Bearing waypoint to waypoint",
	"DBK": "Depth below keel",
	"DBS": "Depth below surface",
	"DBT": "Depth below transducer",
	"DPT": "Depth of water",
	"DSC": "Digital selective calling information",
	"DTM": "Datum reference",
	"GBQ": "Poll a standard message (talker BeiDou)",
	"GBS": "GNSS satellite fault detection",
	"GGA": "Global positioning system fix data",
	"GLL": "Latitude and longitude, with time of position fix and status",
	"GLQ": "Poll a standard message (talker GLONASS)",
	"GNQ": "Poll a standard message (talker GNSS)",
	"GNS": "GNSS fix data",
	"GPQ": "Poll a standard message (talker GPS)",
	"GRS": "GNSS range residuals",
	"GSA": "GNSS DOP and active satellites",
	"GST": "GNSS pseudorange error statistics",
	"GSV": "GNSS satellites in view",
	"HDG": "Heading, deviation and variation",
	"HDM": "Heading, magnetic",
	"HDT": "Heading, true",
	"MSK": "Beacon receiver control",
	"MSS": "Beacon receiver status",
	"MTW": "Water temperature",
	"MWD": "Wind direction and speed",
	"MWV": "Wind speed and angle",
	"RMA": "Recommended minimum Loran-C data",
	"RMB": "Recommended minimum navigation information",
	"RMC": "Recommended minimum data",
	"ROT": "Rate of turn",
	"RPM": "Revolutions",
	"RSA": "Rudder sensor angle",
	"RTE": "Routes",
	"STN": "Multiple data ID",
	"THS": "True heading and status",
	"TRF": "Transit fix data",
	"TXT": "Text transmission",
	"VBW": "Dual ground/water speed",
	"VDM": "AIS VHF data-link message",
	"VDO": "AIS VHF data-link own-vessel report",
	"VHW": "Water speed and heading",
	"VLW": "Dual ground/water distance",
	"VTG": "Course over ground and ground speed",
	"VWR": "Relative wind speed and angle",
	"WCV": "Waypoint closure velocity",
	"WPL": "Waypoint location",
	"XDR": "Transducer measurement",
	"XTC": "Cross track error",
	"XTE": "Cross track error, measured",
	"ZDA": "Time and date",
	"ZTG": "UTC and time to destination waypoint",
}
