package main

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode"

	"calmh.dev/hassmqtt"
	"calmh.dev/nmea"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type sensor struct {
	name  string
	class string
	unit  string
}

var (
	sensorLatitude  = sensor{name: "Latitude", unit: "°"}
	sensorLongitude = sensor{name: "Longitude", unit: "°"}
	sensorAltitude  = sensor{name: "Altitude", class: "distance", unit: "m"}
	sensorSpeed     = sensor{name: "Speed", class: "speed", unit: "kn"}
	sensorSatsUsed  = sensor{name: "Satellites used"}
	sensorHDOP      = sensor{name: "HDOP"}
)

// readings extracts the values published to Home Assistant from a
// sentence.
func readings(s nmea.Sentence) map[sensor]float64 {
	out := make(map[sensor]float64)
	switch m := s.Message.(type) {
	case nmea.GGA:
		if m.Quality == nmea.QualityNoFix {
			break
		}
		if p, ok := m.Point(); ok {
			out[sensorLatitude] = p.Latitude
			out[sensorLongitude] = p.Longitude
		}
		if m.Altitude != nil {
			out[sensorAltitude] = float64(*m.Altitude)
		}
		if m.SatellitesUsed != nil {
			out[sensorSatsUsed] = float64(*m.SatellitesUsed)
		}
		if m.HDOP != nil {
			out[sensorHDOP] = *m.HDOP
		}
	case nmea.RMC:
		if m.Status == nmea.StatusValid && m.Speed != nil {
			out[sensorSpeed] = float64(*m.Speed)
		}
	}
	return out
}

type mqttPublisher struct {
	cli      *CLI
	device   string
	incoming chan nmea.Sentence
	metrics  map[string]*hassmqtt.Metric
}

func newMQTTPublisher(cli *CLI, device string) *mqttPublisher {
	return &mqttPublisher{
		cli:      cli,
		device:   device,
		incoming: make(chan nmea.Sentence, 16),
		metrics:  make(map[string]*hassmqtt.Metric),
	}
}

func (p *mqttPublisher) String() string {
	return "mqtt"
}

// Offer queues a sentence for publishing, dropping it if the publisher is
// behind.
func (p *mqttPublisher) Offer(s nmea.Sentence) {
	select {
	case p.incoming <- s:
	default:
	}
}

func (p *mqttPublisher) Serve(ctx context.Context) error {
	client, err := getClient(p.cli)
	if err != nil {
		return fmt.Errorf("mqtt: %w", err)
	}
	defer client.Disconnect(250)

	for {
		select {
		case s := <-p.incoming:
			for sens, val := range readings(s) {
				if err := p.metric(sens).Publish(client, val); err != nil {
					slog.Warn("MQTT publish failed", "sensor", sens.name, "error", err)
				}
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (p *mqttPublisher) metric(s sensor) *hassmqtt.Metric {
	id := sanitizeString(s.name)
	metric, ok := p.metrics[id]
	if !ok {
		metric = &hassmqtt.Metric{
			Device: &hassmqtt.Device{
				Namespace: "gps",
				ClientID:  p.cli.MQTTClientID,
				ID:        sanitizeString(p.device),
				Name:      p.device,
			},
			ID:          id,
			DeviceType:  "sensor",
			DeviceClass: s.class,
			Unit:        s.unit,
			Name:        s.name,
		}
		p.metrics[id] = metric
	}
	return metric
}

func getClient(cli *CLI) (mqtt.Client, error) {
	if cli.MQTTClientID == "" {
		hn, _ := os.Hostname()
		home, _ := os.UserHomeDir()
		hf := sha256.New()
		fmt.Fprintf(hf, "%s\n%s\n", hn, home)
		cli.MQTTClientID = fmt.Sprintf("g%x", hf.Sum(nil))[:12]
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(cli.MQTTBroker)
	opts.SetClientID(cli.MQTTClientID)
	opts.SetAutoReconnect(true)
	if cli.MQTTUsername != "" && cli.MQTTPassword != "" {
		opts.SetUsername(cli.MQTTUsername)
		opts.SetPassword(cli.MQTTPassword)
	}

	client := mqtt.NewClient(opts)
	token := client.Connect()
	token.Wait()
	if err := token.Error(); err != nil {
		return nil, err
	}
	return client, nil
}

// sanitizeString turns a display name into an identifier: diacritics and
// non-ASCII runes are removed, the rest lower cased with underscores for
// spaces.
func sanitizeString(s string) string {
	t := transform.Chain(
		// Split runes with diacritics into base character and mark.
		norm.NFD,
		runes.Remove(runes.Predicate(func(r rune) bool {
			return unicode.Is(unicode.Mn, r) || r > unicode.MaxASCII
		})))
	res, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return strings.ReplaceAll(strings.ToLower(res), " ", "_")
}
