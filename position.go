package nmea

// GGA is global positioning system fix data.
type GGA struct {
	Time                *Time
	Latitude            *Degree
	NorthSouth          NorthSouth
	Longitude           *Degree
	EastWest            EastWest
	Quality             FixQuality
	SatellitesUsed      *uint8
	HDOP                *float64
	Altitude            *Meter // above mean sea level
	GeoidSeparation     *Meter
	DifferentialAge     *Second
	DifferentialStation *uint16
}

// GLL is geographic position, latitude and longitude.
type GLL struct {
	Latitude   *Degree
	NorthSouth NorthSouth
	Longitude  *Degree
	EastWest   EastWest
	Time       *Time
	Status     Status
	Mode       FixMode
}

// GNS is GNSS fix data. Modes holds one indicator per constellation, in
// the order GPS, GLONASS, Galileo, BeiDou, QZSS, NavIC.
type GNS struct {
	Time                *Time
	Latitude            *Degree
	NorthSouth          *NorthSouth
	Longitude           *Degree
	EastWest            *EastWest
	Modes               []FixMode
	SatellitesUsed      *uint8
	HDOP                *float64
	Altitude            *Meter
	GeoidSeparation     *Meter
	DifferentialAge     *Second
	DifferentialStation *uint16
	NavStatus           NavigationalStatus
}

// RMC is the recommended minimum data.
type RMC struct {
	Time              *Time
	Status            Status
	Latitude          *Degree
	NorthSouth        NorthSouth
	Longitude         *Degree
	EastWest          EastWest
	Speed             *Knot
	Course            *Degree // true
	Date              *Date
	MagneticVariation *Degree
	VariationEastWest *EastWest
	Mode              FixMode
	NavStatus         NavigationalStatus
}

func (GGA) Code() string { return "GGA" }
func (GLL) Code() string { return "GLL" }
func (GNS) Code() string { return "GNS" }
func (RMC) Code() string { return "RMC" }

func (GGA) isMessage() {}
func (GLL) isMessage() {}
func (GNS) isMessage() {}
func (RMC) isMessage() {}

// Point is a position in signed decimal degrees, north and east positive.
type Point struct {
	Latitude  float64
	Longitude float64
}

func point(lat *Degree, ns NorthSouth, lon *Degree, ew EastWest) (Point, bool) {
	if lat == nil || lon == nil {
		return Point{}, false
	}
	p := Point{Latitude: float64(*lat), Longitude: float64(*lon)}
	if ns == South {
		p.Latitude = -p.Latitude
	}
	if ew == West {
		p.Longitude = -p.Longitude
	}
	return p, true
}

// Point returns the fix position. It is false when either coordinate is
// empty.
func (m GGA) Point() (Point, bool) { return point(m.Latitude, m.NorthSouth, m.Longitude, m.EastWest) }
func (m GLL) Point() (Point, bool) { return point(m.Latitude, m.NorthSouth, m.Longitude, m.EastWest) }
func (m RMC) Point() (Point, bool) { return point(m.Latitude, m.NorthSouth, m.Longitude, m.EastWest) }

func (m GNS) Point() (Point, bool) {
	if m.NorthSouth == nil || m.EastWest == nil {
		return Point{}, false
	}
	return point(m.Latitude, *m.NorthSouth, m.Longitude, *m.EastWest)
}

func init() {
	register("GGA", decodeGGA)
	register("GLL", decodeGLL)
	register("GNS", decodeGNS)
	register("RMC", decodeRMC)
}

func decodeGGA(r *fieldReader) (m GGA, err error) {
	if m.Time, err = r.time(); err != nil {
		return
	}
	if m.Latitude, err = r.degree(); err != nil {
		return
	}
	if m.NorthSouth, err = code(r, northSouthCodes); err != nil {
		return
	}
	if m.Longitude, err = r.degree(); err != nil {
		return
	}
	if m.EastWest, err = code(r, eastWestCodes); err != nil {
		return
	}
	if m.Quality, err = code(r, fixQualityCodes); err != nil {
		return
	}
	if m.SatellitesUsed, err = r.uint8(); err != nil {
		return
	}
	if m.HDOP, err = r.float(); err != nil {
		return
	}
	if m.Altitude, err = unit[Meter](r); err != nil {
		return
	}
	if err = r.expectUnit("M"); err != nil {
		return
	}
	if m.GeoidSeparation, err = unit[Meter](r); err != nil {
		return
	}
	if err = r.expectUnit("M"); err != nil {
		return
	}
	if m.DifferentialAge, err = unit[Second](r); err != nil {
		return
	}
	m.DifferentialStation, err = r.uint16()
	return
}

func decodeGLL(r *fieldReader) (m GLL, err error) {
	if m.Latitude, err = r.degree(); err != nil {
		return
	}
	if m.NorthSouth, err = code(r, northSouthCodes); err != nil {
		return
	}
	if m.Longitude, err = r.degree(); err != nil {
		return
	}
	if m.EastWest, err = code(r, eastWestCodes); err != nil {
		return
	}
	if m.Time, err = r.time(); err != nil {
		return
	}
	if m.Status, err = code(r, statusCodes); err != nil {
		return
	}
	m.Mode, err = code(r, fixModeCodes)
	return
}

func decodeGNS(r *fieldReader) (m GNS, err error) {
	if m.Time, err = r.time(); err != nil {
		return
	}
	if m.Latitude, err = r.degree(); err != nil {
		return
	}
	if m.NorthSouth, err = optionalCode(r, northSouthCodes); err != nil {
		return
	}
	if m.Longitude, err = r.degree(); err != nil {
		return
	}
	if m.EastWest, err = optionalCode(r, eastWestCodes); err != nil {
		return
	}
	if m.Modes, err = codeList(r, fixModeCodes); err != nil {
		return
	}
	if m.SatellitesUsed, err = r.uint8(); err != nil {
		return
	}
	if m.HDOP, err = r.float(); err != nil {
		return
	}
	if m.Altitude, err = unit[Meter](r); err != nil {
		return
	}
	if m.GeoidSeparation, err = unit[Meter](r); err != nil {
		return
	}
	if m.DifferentialAge, err = unit[Second](r); err != nil {
		return
	}
	if m.DifferentialStation, err = r.uint16(); err != nil {
		return
	}
	m.NavStatus, err = code(r, navStatusCodes)
	return
}

func decodeRMC(r *fieldReader) (m RMC, err error) {
	if m.Time, err = r.time(); err != nil {
		return
	}
	if m.Status, err = code(r, statusCodes); err != nil {
		return
	}
	if m.Latitude, err = r.degree(); err != nil {
		return
	}
	if m.NorthSouth, err = code(r, northSouthCodes); err != nil {
		return
	}
	if m.Longitude, err = r.degree(); err != nil {
		return
	}
	if m.EastWest, err = code(r, eastWestCodes); err != nil {
		return
	}
	if m.Speed, err = unit[Knot](r); err != nil {
		return
	}
	if m.Course, err = unit[Degree](r); err != nil {
		return
	}
	if m.Date, err = r.date(); err != nil {
		return
	}
	if m.MagneticVariation, err = unit[Degree](r); err != nil {
		return
	}
	if m.VariationEastWest, err = optionalCode(r, eastWestCodes); err != nil {
		return
	}
	if m.Mode, err = code(r, fixModeCodes); err != nil {
		return
	}
	m.NavStatus, err = code(r, navStatusCodes)
	return
}
