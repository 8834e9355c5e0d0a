package main

import (
	"strconv"
	"time"

	"calmh.dev/nmea"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/syndtr/goleveldb/leveldb"
)

// NMEA 4.10 GNSS system IDs, as sent in GSA.
var sysIDs = map[uint8]string{
	1: "GPS",
	2: "GLONASS",
	3: "Galileo",
	4: "Beidou",
	5: "QZSS",
	6: "NavIC",
}

var talkerSystems = map[nmea.Talker]string{
	nmea.TalkerGPS:     "GPS",
	nmea.TalkerGLONASS: "GLONASS",
	nmea.TalkerGalileo: "Galileo",
	nmea.TalkerBeiDou:  "Beidou",
	nmea.TalkerQZSS:    "QZSS",
	nmea.TalkerNavIC:   "NavIC",
	nmea.TalkerGNSS:    "GNSS",
}

// systemName prefers the explicit system ID and falls back to the talker.
func systemName(id *uint8, talker nmea.Talker) string {
	if id != nil {
		if name, ok := sysIDs[*id]; ok {
			return name
		}
	}
	if name, ok := talkerSystems[talker]; ok {
		return name
	}
	return talker.String()
}

type metrics struct {
	now func() time.Time

	sentences *prometheus.CounterVec
	errors    *prometheus.CounterVec
	texts     *prometheus.CounterVec

	fix     *prometheus.GaugeVec
	used    *prometheus.GaugeVec
	pdop    *prometheus.GaugeVec
	hdop    *prometheus.GaugeVec
	vdop    *prometheus.GaugeVec
	inView  *prometheus.GaugeVec
	snr     *prometheus.GaugeVec
	quality prometheus.Gauge

	latitude  *persistentGauge
	longitude *persistentGauge
	altitude  *persistentGauge
	distance  *persistentGaugeVec

	speed       prometheus.Gauge
	course      prometheus.Gauge
	posError    *prometheus.GaugeVec
	clockOffset prometheus.Gauge
	lastFix     prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer, db *leveldb.DB) *metrics {
	f := promauto.With(reg)
	pm := newPersistentMetrics(db, reg)
	system := []string{"system"}

	return &metrics{
		now: time.Now,

		sentences: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gps_sentences_total",
			Help: "Sentences decoded, by talker and message code.",
		}, []string{"talker", "code"}),
		errors: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gps_decode_errors_total",
			Help: "Sentences rejected, by error kind.",
		}, []string{"kind"}),
		texts: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gps_text_messages_total",
			Help: "TXT messages received, by level.",
		}, []string{"level"}),

		fix: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "gps_fix",
			Help: "Fix dimensionality from GSA: 1 none, 2 2D, 3 3D.",
		}, system),
		used: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "gps_satellites_used",
		}, system),
		pdop: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "gps_pdop",
		}, system),
		hdop: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "gps_hdop",
		}, system),
		vdop: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "gps_vdop",
		}, system),
		inView: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "gps_satellites_in_view",
		}, system),
		snr: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "gps_satellite_snr_dbhz",
		}, []string{"system", "satellite"}),
		quality: f.NewGauge(prometheus.GaugeOpts{
			Name: "gps_fix_quality",
			Help: "GGA quality indicator.",
		}),

		latitude: pm.NewGauge(prometheus.GaugeOpts{
			Name: "gps_latitude_degrees",
		}),
		longitude: pm.NewGauge(prometheus.GaugeOpts{
			Name: "gps_longitude_degrees",
		}),
		altitude: pm.NewGauge(prometheus.GaugeOpts{
			Name: "gps_altitude_meters",
		}),
		distance: pm.NewGaugeVec(prometheus.GaugeOpts{
			Name: "gps_distance_nautical_miles",
			Help: "VLW distance log.",
		}, []string{"reference", "period"}),

		speed: f.NewGauge(prometheus.GaugeOpts{
			Name: "gps_speed_knots",
		}),
		course: f.NewGauge(prometheus.GaugeOpts{
			Name: "gps_course_degrees",
		}),
		posError: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "gps_position_error_meters",
			Help: "GST standard deviation, by axis.",
		}, []string{"axis"}),
		clockOffset: f.NewGauge(prometheus.GaugeOpts{
			Name: "gps_clock_offset_seconds",
			Help: "Local clock minus ZDA time at reception.",
		}),
		lastFix: f.NewGauge(prometheus.GaugeOpts{
			Name: "gps_last_fix_timestamp_seconds",
		}),
	}
}

func (m *metrics) observeError(err error) {
	m.errors.WithLabelValues(nmea.ErrorKind(err)).Inc()
}

func (m *metrics) observe(s nmea.Sentence) {
	m.sentences.WithLabelValues(s.Talker.String(), s.Message.Code()).Inc()

	switch msg := s.Message.(type) {
	case nmea.GSA:
		sys := systemName(msg.SystemID, s.Talker)
		m.fix.WithLabelValues(sys).Set(float64(msg.NavigationMode) + 1)
		m.used.WithLabelValues(sys).Set(float64(len(msg.Used())))
		setIf(m.pdop.WithLabelValues(sys), msg.PDOP)
		setIf(m.hdop.WithLabelValues(sys), msg.HDOP)
		setIf(m.vdop.WithLabelValues(sys), msg.VDOP)

	case nmea.GSV:
		sys := systemName(nil, s.Talker)
		m.inView.WithLabelValues(sys).Set(float64(msg.SatellitesInView))
		for _, sat := range msg.InView() {
			if sat.SNR != nil {
				m.snr.WithLabelValues(sys, strconv.Itoa(int(*sat.ID))).Set(float64(*sat.SNR))
			}
		}

	case nmea.GGA:
		m.quality.Set(float64(msg.Quality))
		if msg.Quality != nmea.QualityNoFix {
			m.position(msg.Point())
		}
		if msg.Altitude != nil {
			m.altitude.Set(float64(*msg.Altitude))
		}

	case nmea.GNS:
		if msg.NavStatus != nmea.NavStatusNotValid {
			m.position(msg.Point())
		}

	case nmea.RMC:
		if msg.Status == nmea.StatusValid {
			m.position(msg.Point())
		}
		setIf(m.speed, msg.Speed)
		setIf(m.course, msg.Course)

	case nmea.GLL:
		if msg.Status == nmea.StatusValid {
			m.position(msg.Point())
		}

	case nmea.VTG:
		setIf(m.speed, msg.SpeedKnots)
		setIf(m.course, msg.CourseTrue)

	case nmea.VLW:
		for _, d := range []struct {
			ref, period string
			v           *float64
		}{
			{"water", "total", msg.TotalWater},
			{"water", "since_reset", msg.WaterSinceReset},
			{"ground", "total", msg.TotalGround},
			{"ground", "since_reset", msg.GroundSinceReset},
		} {
			if d.v != nil {
				m.distance.Set(*d.v, d.ref, d.period)
			}
		}

	case nmea.GST:
		setIf(m.posError.WithLabelValues("latitude"), msg.StdLat)
		setIf(m.posError.WithLabelValues("longitude"), msg.StdLon)
		setIf(m.posError.WithLabelValues("altitude"), msg.StdAlt)

	case nmea.ZDA:
		if t, ok := msg.UTC(); ok {
			m.clockOffset.Set(m.now().Sub(t).Seconds())
		}

	case nmea.TXT:
		m.texts.WithLabelValues(msg.Level.String()).Inc()
	}
}

func (m *metrics) position(p nmea.Point, ok bool) {
	if !ok {
		return
	}
	m.latitude.Set(p.Latitude)
	m.longitude.Set(p.Longitude)
	m.lastFix.Set(float64(m.now().Unix()))
}

func setIf[T ~float64](g prometheus.Gauge, v *T) {
	if v != nil {
		g.Set(float64(*v))
	}
}
