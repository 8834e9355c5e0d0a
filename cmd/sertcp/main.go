package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"calmh.dev/nmea"
	"calmh.dev/nmea/internal/logging"
	"github.com/alecthomas/kong"
	"github.com/gorilla/websocket"
	"go.bug.st/serial"
)

type CLI struct {
	Serial   string `default:"/dev/ttyUSB0" help:"Serial port"`
	Baud     int    `default:"115200" help:"Serial port baud rate"`
	Listen   string `default:"0.0.0.0:2113" help:"TCP listen address for raw sentences"`
	HTTP     string `help:"HTTP listen address for the decoded websocket stream at /ws"`
	Verify   bool   `help:"Drop sentences that fail checksum and framing checks"`
	LogLevel string `default:"info" enum:"debug,info,warn,error" help:"Log level"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli)
	if err := logging.Setup(cli.LogLevel); err != nil {
		kctx.Fatalf("%v", err)
	}

	fd, err := serial.Open(cli.Serial, &serial.Mode{
		BaudRate: cli.Baud,
		Parity:   serial.NoParity,
		DataBits: 8,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		slog.Error("Failed to open serial port", "port", cli.Serial, "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := newServer(cli.Verify)
	go func() {
		err := srv.readLines(fd)
		slog.Error("Serial read failed", "error", err)
		stop()
	}()

	if cli.HTTP != "" {
		mux := http.NewServeMux()
		mux.HandleFunc("/ws", srv.serveWS)
		go func() {
			if err := http.ListenAndServe(cli.HTTP, mux); err != nil {
				slog.Error("HTTP listener failed", "error", err)
				stop()
			}
		}()
	}

	list, err := net.Listen("tcp", cli.Listen)
	if err != nil {
		slog.Error("Failed to listen", "addr", cli.Listen, "error", err)
		os.Exit(1)
	}
	go func() {
		<-ctx.Done()
		list.Close()
	}()

	slog.Info("Serving", "serial", cli.Serial, "listen", cli.Listen, "http", cli.HTTP)
	for {
		conn, err := list.Accept()
		if err != nil {
			if ctx.Err() != nil {
				slog.Info("Exiting", "rejected", srv.rejected.Load(), "dropped", srv.lines.Dropped()+srv.sentences.Dropped())
				return
			}
			slog.Error("Accept failed", "error", err)
			os.Exit(1)
		}
		go srv.handleConn(conn)
	}
}

type server struct {
	verify    bool
	dec       *nmea.Decoder
	lines     *fanout[string]
	sentences *fanout[event]
	rejected  atomic.Int64
}

// event is the JSON form of a decoded sentence on the websocket stream.
type event struct {
	Talker  nmea.Talker  `json:"talker"`
	Code    string       `json:"code"`
	Message nmea.Message `json:"message"`
}

func newServer(verify bool) *server {
	return &server{
		verify:    verify,
		dec:       nmea.NewDecoder(nmea.WithLaxTerminator()),
		lines:     newFanout[string](),
		sentences: newFanout[event](),
	}
}

// readLines frames the serial stream into sentences and publishes them
// until the stream fails.
func (s *server) readLines(r io.Reader) error {
	framer := nmea.NewFramer(r)
	for {
		line, err := framer.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				slog.Info("Serial stream ended", "discarded", framer.Discarded())
			}
			return err
		}
		if s.verify {
			if err := s.dec.Verify(line); err != nil {
				s.rejected.Add(1)
				slog.Debug("Dropped sentence", "line", line, "error", err)
				continue
			}
		}
		s.lines.Publish(line)

		if s.sentences.Subscribers() == 0 {
			continue
		}
		if sen, err := s.dec.Decode(line); err == nil {
			s.sentences.Publish(event{Talker: sen.Talker, Code: sen.Message.Code(), Message: sen.Message})
		}
	}
}

func (s *server) handleConn(conn net.Conn) {
	sub := s.lines.Listen()
	defer sub.Close()
	defer conn.Close()
	for line := range sub.Channel() {
		if _, err := conn.Write([]byte(line)); err != nil {
			slog.Debug("Client write failed", "remote", conn.RemoteAddr(), "error", err)
			return
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

func (s *server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Debug("Websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	sub := s.sentences.Listen()
	defer sub.Close()

	// Reading is only for noticing that the client went away.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case ev := <-sub.Channel():
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		case <-gone:
			return
		}
	}
}
