package nmea

// DTM is the datum reference. Offsets are in minutes of arc and are
// signed by the cardinal fields that follow them.
type DTM struct {
	Datum           string
	SubDatum        string
	LatitudeOffset  *Minute
	NorthSouth      NorthSouth
	LongitudeOffset *Minute
	EastWest        EastWest
	AltitudeOffset  *Meter
	ReferenceDatum  string
}

func (DTM) Code() string { return "DTM" }
func (DTM) isMessage()   {}

func init() {
	register("DTM", decodeDTM)
}

func decodeDTM(r *fieldReader) (m DTM, err error) {
	if m.Datum, err = r.str(); err != nil {
		return
	}
	if m.SubDatum, err = r.str(); err != nil {
		return
	}
	if m.LatitudeOffset, err = r.rawMinutes(); err != nil {
		return
	}
	if m.NorthSouth, err = code(r, northSouthCodes); err != nil {
		return
	}
	if m.LongitudeOffset, err = r.rawMinutes(); err != nil {
		return
	}
	if m.EastWest, err = code(r, eastWestCodes); err != nil {
		return
	}
	if m.AltitudeOffset, err = unit[Meter](r); err != nil {
		return
	}
	m.ReferenceDatum, err = r.str()
	return
}
