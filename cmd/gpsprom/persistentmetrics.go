package main

import (
	"encoding/binary"
	"errors"
	"log/slog"
	"math"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// persistentMetrics creates gauges whose last value survives a restart.
// Values are stored in LevelDB under "<fqname>\x00<label>\x01<label>...".
type persistentMetrics struct {
	db      *leveldb.DB
	factory promauto.Factory
}

func newPersistentMetrics(db *leveldb.DB, reg prometheus.Registerer) *persistentMetrics {
	return &persistentMetrics{db: db, factory: promauto.With(reg)}
}

func metricKey(opts prometheus.GaugeOpts, labelValues []string) []byte {
	name := prometheus.BuildFQName(opts.Namespace, opts.Subsystem, opts.Name)
	return []byte(name + "\x00" + strings.Join(labelValues, "\x01"))
}

func encodeValue(v float64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], math.Float64bits(v))
	return b[:]
}

func decodeValue(b []byte) (float64, bool) {
	if len(b) != 8 {
		return 0, false
	}
	return math.Float64frombits(binary.BigEndian.Uint64(b)), true
}

func (p *persistentMetrics) store(key []byte, value float64) {
	if err := p.db.Put(key, encodeValue(value), nil); err != nil {
		slog.Warn("Failed to persist metric", "key", string(key), "error", err)
	}
}

func (p *persistentMetrics) NewGaugeVec(opts prometheus.GaugeOpts, labels []string) *persistentGaugeVec {
	gv := p.factory.NewGaugeVec(opts, labels)

	prefix := metricKey(opts, nil)
	it := p.db.NewIterator(util.BytesPrefix(prefix), nil)
	defer it.Release()
	for it.Next() {
		val, ok := decodeValue(it.Value())
		if !ok {
			continue
		}
		labelValues := strings.Split(string(it.Key()[len(prefix):]), "\x01")
		if len(labelValues) != len(labels) {
			continue
		}
		slog.Debug("Restoring metric", "name", opts.Name, "labels", labelValues, "val", val)
		gv.WithLabelValues(labelValues...).Set(val)
	}

	return &persistentGaugeVec{pm: p, opts: opts, gv: gv}
}

func (p *persistentMetrics) NewGauge(opts prometheus.GaugeOpts) *persistentGauge {
	g := p.factory.NewGauge(opts)

	key := metricKey(opts, nil)
	b, err := p.db.Get(key, nil)
	switch {
	case err == nil:
		if val, ok := decodeValue(b); ok {
			slog.Debug("Restoring metric", "name", opts.Name, "val", val)
			g.Set(val)
		}
	case !errors.Is(err, leveldb.ErrNotFound):
		slog.Warn("Failed to restore metric", "name", opts.Name, "error", err)
	}

	return &persistentGauge{pm: p, key: key, g: g}
}

type persistentGaugeVec struct {
	pm   *persistentMetrics
	opts prometheus.GaugeOpts
	gv   *prometheus.GaugeVec
}

func (p *persistentGaugeVec) Set(value float64, labelValues ...string) {
	p.gv.WithLabelValues(labelValues...).Set(value)
	p.pm.store(metricKey(p.opts, labelValues), value)
}

type persistentGauge struct {
	pm  *persistentMetrics
	key []byte
	g   prometheus.Gauge
}

func (p *persistentGauge) Set(value float64) {
	p.g.Set(value)
	p.pm.store(p.key, value)
}
