package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"time"

	"calmh.dev/nmea"
	"go.bug.st/serial"
)

const readTimeout = time.Minute

// opener returns a fresh connection to the NMEA source.
type opener func(ctx context.Context) (io.ReadCloser, error)

func tcpSource(addr string) opener {
	return func(ctx context.Context) (io.ReadCloser, error) {
		var d net.Dialer
		conn, err := d.DialContext(ctx, "tcp", addr)
		if err != nil {
			return nil, fmt.Errorf("dial %s: %w", addr, err)
		}
		return conn, nil
	}
}

func serialSource(port string, baud int) opener {
	return func(context.Context) (io.ReadCloser, error) {
		fd, err := serial.Open(port, &serial.Mode{
			BaudRate: baud,
			Parity:   serial.NoParity,
			DataBits: 8,
			StopBits: serial.OneStopBit,
		})
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", port, err)
		}
		return fd, nil
	}
}

// reader is a suture service that decodes sentences from the source and
// hands them to the metrics and any additional sinks.
type reader struct {
	open    opener
	dec     *nmea.Decoder
	metrics *metrics
	sinks   []func(nmea.Sentence)
}

func (r *reader) String() string {
	return "reader"
}

func (r *reader) Serve(ctx context.Context) error {
	rc, err := r.open(ctx)
	if err != nil {
		return err
	}
	defer rc.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		// Unblock a pending read on shutdown.
		<-ctx.Done()
		rc.Close()
	}()

	slog.Info("Connected to NMEA source")

	deadline, hasDeadline := rc.(interface{ SetReadDeadline(time.Time) error })
	framer := nmea.NewFramer(rc)
	for {
		if hasDeadline {
			if err := deadline.SetReadDeadline(time.Now().Add(readTimeout)); err != nil {
				return err
			}
		}
		line, err := framer.Read()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if errors.Is(err, io.EOF) {
				slog.Info("NMEA source closed", "discarded", framer.Discarded())
			}
			return err
		}

		s, err := r.dec.Decode(line)
		if err != nil {
			slog.Debug("Rejected sentence", "line", line, "error", err)
			r.metrics.observeError(err)
			continue
		}
		r.metrics.observe(s)
		for _, sink := range r.sinks {
			sink(s)
		}
	}
}
