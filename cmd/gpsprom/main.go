package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"calmh.dev/nmea"
	"calmh.dev/nmea/internal/logging"
	"github.com/alecthomas/kong"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/thejerf/suture/v4"
)

type CLI struct {
	NMEA   string `default:"localhost:4001" help:"Address of NMEA TCP source"`
	Serial string `help:"Read from this serial port instead of TCP"`
	Baud   int    `default:"9600" help:"Serial port baud rate"`
	Listen string `default:"localhost:2114" help:"HTTP listener address"`
	DB     string `default:"gpsprom.db" help:"Database for persisted gauges"`

	Century int  `default:"2000" help:"Base year for two-digit dates"`
	Lax     bool `help:"Accept sentences without CRLF terminator"`

	Pushgateway  string        `help:"Pushgateway URL"`
	PushInterval time.Duration `default:"1m" help:"Interval between pushes"`
	Instance     string        `help:"Pushgateway instance label"`

	Device       string `default:"GPS" help:"Device name in Home Assistant"`
	MQTTBroker   string `help:"MQTT broker address" env:"MQTT_BROKER"`
	MQTTClientID string `help:"MQTT client ID" env:"MQTT_CLIENT_ID"`
	MQTTUsername string `help:"MQTT username" default:"" env:"MQTT_USERNAME"`
	MQTTPassword string `help:"MQTT password" default:"" env:"MQTT_PASSWORD"`

	LogLevel string `default:"info" enum:"debug,info,warn,error" help:"Log level"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli)
	if err := logging.Setup(cli.LogLevel); err != nil {
		kctx.Fatalf("%v", err)
	}

	db, err := leveldb.OpenFile(cli.DB, nil)
	if err != nil {
		slog.Error("Failed to open database", "path", cli.DB, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []nmea.Option{nmea.WithCentury(cli.Century)}
	if cli.Lax {
		opts = append(opts, nmea.WithLaxTerminator())
	}
	rd := &reader{
		open:    tcpSource(cli.NMEA),
		dec:     nmea.NewDecoder(opts...),
		metrics: newMetrics(prometheus.DefaultRegisterer, db),
	}
	if cli.Serial != "" {
		rd.open = serialSource(cli.Serial, cli.Baud)
	}

	sup := suture.NewSimple("gpsprom")
	if cli.MQTTBroker != "" {
		pub := newMQTTPublisher(&cli, cli.Device)
		rd.sinks = append(rd.sinks, pub.Offer)
		sup.Add(pub)
	}
	if cli.Pushgateway != "" {
		sup.Add(newPusher(cli.Pushgateway, cli.Instance, prometheus.DefaultGatherer, cli.PushInterval))
	}
	sup.Add(rd)

	go func() {
		http.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(cli.Listen, nil); err != nil {
			slog.Error("HTTP listener failed", "error", err)
			os.Exit(1)
		}
	}()

	slog.Info("Starting", "listen", cli.Listen, "nmea", cli.NMEA, "serial", cli.Serial)
	if err := sup.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("Exiting", "error", err)
	}
}
