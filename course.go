package nmea

// VTG is course over ground and ground speed. The unit fields repeat the
// fixed marker after each value and are nil when the receiver left them
// empty.
type VTG struct {
	CourseTrue         *Degree
	CourseTrueUnit     *CourseUnit
	CourseMagnetic     *Degree
	CourseMagneticUnit *CourseUnit
	SpeedKnots         *Knot
	SpeedKnotsUnit     *SpeedUnit
	SpeedKmh           *float64
	SpeedKmhUnit       *SpeedUnit
	Mode               FixMode
}

// VLW is dual ground/water distance, in nautical miles.
type VLW struct {
	TotalWater       *float64
	TotalWaterUnit   *DistanceUnit
	WaterSinceReset  *float64
	WaterResetUnit   *DistanceUnit
	TotalGround      *float64
	TotalGroundUnit  *DistanceUnit
	GroundSinceReset *float64
	GroundResetUnit  *DistanceUnit
}

func (VTG) Code() string { return "VTG" }
func (VLW) Code() string { return "VLW" }

func (VTG) isMessage() {}
func (VLW) isMessage() {}

func init() {
	register("VTG", decodeVTG)
	register("VLW", decodeVLW)
}

func decodeVTG(r *fieldReader) (m VTG, err error) {
	if m.CourseTrue, err = unit[Degree](r); err != nil {
		return
	}
	if m.CourseTrueUnit, err = optionalCode(r, courseUnitCodes); err != nil {
		return
	}
	if m.CourseMagnetic, err = unit[Degree](r); err != nil {
		return
	}
	if m.CourseMagneticUnit, err = optionalCode(r, courseUnitCodes); err != nil {
		return
	}
	if m.SpeedKnots, err = unit[Knot](r); err != nil {
		return
	}
	if m.SpeedKnotsUnit, err = optionalCode(r, speedUnitCodes); err != nil {
		return
	}
	if m.SpeedKmh, err = r.float(); err != nil {
		return
	}
	if m.SpeedKmhUnit, err = optionalCode(r, speedUnitCodes); err != nil {
		return
	}
	m.Mode, err = code(r, fixModeCodes)
	return
}

func decodeVLW(r *fieldReader) (m VLW, err error) {
	pairs := []struct {
		value **float64
		unit  **DistanceUnit
	}{
		{&m.TotalWater, &m.TotalWaterUnit},
		{&m.WaterSinceReset, &m.WaterResetUnit},
		{&m.TotalGround, &m.TotalGroundUnit},
		{&m.GroundSinceReset, &m.GroundResetUnit},
	}
	for _, p := range pairs {
		if *p.value, err = r.float(); err != nil {
			return
		}
		if *p.unit, err = optionalCode(r, distUnitCodes); err != nil {
			return
		}
	}
	return
}
