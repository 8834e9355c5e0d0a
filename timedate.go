package nmea

import "time"

// ZDA is UTC time and date with the local time zone offset.
type ZDA struct {
	Time        *Time
	Day         *uint8
	Month       *uint8
	Year        *uint16
	ZoneHours   *int8
	ZoneMinutes *uint8
}

func (ZDA) Code() string { return "ZDA" }
func (ZDA) isMessage()   {}

func init() {
	register("ZDA", decodeZDA)
}

func decodeZDA(r *fieldReader) (m ZDA, err error) {
	if m.Time, err = r.time(); err != nil {
		return
	}
	if m.Day, err = r.uint8(); err != nil {
		return
	}
	if m.Month, err = r.uint8(); err != nil {
		return
	}
	if m.Year, err = r.uint16(); err != nil {
		return
	}
	if m.ZoneHours, err = r.int8(); err != nil {
		return
	}
	m.ZoneMinutes, err = r.uint8()
	return
}

// UTC combines the time and date fields. It is false if any of them is
// empty or they do not form a valid instant.
func (m ZDA) UTC() (time.Time, bool) {
	if m.Time == nil || m.Day == nil || m.Month == nil || m.Year == nil {
		return time.Time{}, false
	}
	d := Date{Year: int(*m.Year), Month: time.Month(*m.Month), Day: int(*m.Day)}
	t := d.At(*m.Time)
	if t.Day() != d.Day || t.Month() != d.Month {
		return time.Time{}, false
	}
	return t, true
}
