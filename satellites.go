package nmea

// GSA is GNSS DOP and active satellites. Unused satellite slots are nil.
type GSA struct {
	OperationMode  OperationMode
	NavigationMode NavigationMode
	SatelliteIDs   [12]*uint8
	PDOP           *float64
	HDOP           *float64
	VDOP           *float64
	SystemID       *uint8 // NMEA 4.10 and later
}

// GSV is one part of a GNSS satellites in view report. A full report is
// spread over TotalMessages sentences of up to four satellites each.
type GSV struct {
	TotalMessages    uint8
	MessageNumber    uint8
	SatellitesInView uint8
	Satellites       [4]SatelliteInView
	SignalID         *uint8 // NMEA 4.10 and later
}

func (GSA) Code() string { return "GSA" }
func (GSV) Code() string { return "GSV" }

func (GSA) isMessage() {}
func (GSV) isMessage() {}

func init() {
	register("GSA", decodeGSA)
	register("GSV", decodeGSV)
}

func decodeGSA(r *fieldReader) (m GSA, err error) {
	if m.OperationMode, err = code(r, operationCodes); err != nil {
		return
	}
	if m.NavigationMode, err = code(r, navigationCodes); err != nil {
		return
	}
	for i := range m.SatelliteIDs {
		if m.SatelliteIDs[i], err = r.uint8(); err != nil {
			return
		}
	}
	if m.PDOP, err = r.float(); err != nil {
		return
	}
	if m.HDOP, err = r.float(); err != nil {
		return
	}
	if m.VDOP, err = r.float(); err != nil {
		return
	}
	if !r.exhausted() {
		m.SystemID, err = r.uint8()
	}
	return
}

func decodeGSV(r *fieldReader) (m GSV, err error) {
	if m.TotalMessages, err = r.requiredUint8(); err != nil {
		return
	}
	if m.MessageNumber, err = r.requiredUint8(); err != nil {
		return
	}
	if m.SatellitesInView, err = r.requiredUint8(); err != nil {
		return
	}
	// Satellite blocks are four fields each; a single field left over is
	// the signal ID.
	n := r.remaining()
	blocks := min(n/4, len(m.Satellites))
	if err = fill(r, m.Satellites[:blocks], satelliteInView); err != nil {
		return
	}
	if n%4 == 1 && !r.exhausted() {
		m.SignalID, err = r.uint8()
	}
	return
}

func satelliteInView(r *fieldReader) (s SatelliteInView, err error) {
	if s.ID, err = r.uint8(); err != nil {
		return
	}
	if s.Elevation, err = r.uint8(); err != nil {
		return
	}
	if s.Azimuth, err = r.uint16(); err != nil {
		return
	}
	s.SNR, err = unit[DBHz](r)
	return
}

// InView returns the satellites reported in this part, skipping empty
// slots.
func (m GSV) InView() []SatelliteInView {
	var out []SatelliteInView
	for _, s := range m.Satellites {
		if s.ID != nil {
			out = append(out, s)
		}
	}
	return out
}

// Used returns the IDs of the satellites used in the solution.
func (m GSA) Used() []uint8 {
	var out []uint8
	for _, id := range m.SatelliteIDs {
		if id != nil {
			out = append(out, *id)
		}
	}
	return out
}
