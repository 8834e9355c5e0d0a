package nmea

// GBS is GNSS satellite fault detection, as computed by RAIM.
type GBS struct {
	Time         *Time
	LatitudeErr  *Meter
	LongitudeErr *Meter
	AltitudeErr  *Meter
	FailedID     *uint8 // most likely failed satellite
	Probability  *float64
	Bias         *float64 // meters
	StdDev       *float64 // of the bias estimate
	SystemID     *uint8
	SignalID     *uint8
}

// GRS is GNSS range residuals. Residuals are in satellite order of the
// matching GSA sentence; unused slots are nil.
type GRS struct {
	Time      *Time
	Method    *ComputationMethod
	Residuals [12]*Meter
	SystemID  *uint8
	SignalID  *uint8
}

// GST is GNSS pseudorange error statistics.
type GST struct {
	Time        *Time
	RangeRMS    *Meter
	StdMajor    *Meter
	StdMinor    *Meter
	Orientation *Degree // of the semi-major axis, from true north
	StdLat      *Meter
	StdLon      *Meter
	StdAlt      *Meter
}

func (GBS) Code() string { return "GBS" }
func (GRS) Code() string { return "GRS" }
func (GST) Code() string { return "GST" }

func (GBS) isMessage() {}
func (GRS) isMessage() {}
func (GST) isMessage() {}

func init() {
	register("GBS", decodeGBS)
	register("GRS", decodeGRS)
	register("GST", decodeGST)
}

func decodeGBS(r *fieldReader) (m GBS, err error) {
	if m.Time, err = r.time(); err != nil {
		return
	}
	for _, p := range []**Meter{&m.LatitudeErr, &m.LongitudeErr, &m.AltitudeErr} {
		if *p, err = unit[Meter](r); err != nil {
			return
		}
	}
	if m.FailedID, err = r.uint8(); err != nil {
		return
	}
	for _, p := range []**float64{&m.Probability, &m.Bias, &m.StdDev} {
		if *p, err = r.float(); err != nil {
			return
		}
	}
	if m.SystemID, err = r.uint8(); err != nil {
		return
	}
	m.SignalID, err = r.uint8()
	return
}

func decodeGRS(r *fieldReader) (m GRS, err error) {
	if m.Time, err = r.time(); err != nil {
		return
	}
	if m.Method, err = optionalCode(r, computationCodes); err != nil {
		return
	}
	for i := range m.Residuals {
		if m.Residuals[i], err = unit[Meter](r); err != nil {
			return
		}
	}
	if m.SystemID, err = r.uint8(); err != nil {
		return
	}
	m.SignalID, err = r.uint8()
	return
}

func decodeGST(r *fieldReader) (m GST, err error) {
	if m.Time, err = r.time(); err != nil {
		return
	}
	for _, p := range []**Meter{&m.RangeRMS, &m.StdMajor, &m.StdMinor} {
		if *p, err = unit[Meter](r); err != nil {
			return
		}
	}
	if m.Orientation, err = unit[Degree](r); err != nil {
		return
	}
	for _, p := range []**Meter{&m.StdLat, &m.StdLon, &m.StdAlt} {
		if *p, err = unit[Meter](r); err != nil {
			return
		}
	}
	return
}
