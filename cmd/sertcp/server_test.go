package main

import (
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

const serialData = "$GPGGA,092725.00,4717.11399,N,00833.91590,E,1,08,1.01,499.6,M,48.0,M,,*5B\r\n" +
	"$GPGGA,092725.00,4717.11399,N,00833.91590,E,1,08,1.01,499.6,M,48.0,M,,*5C\r\n" +
	"$UPGBQ,RMC*21\n"

func TestReadLinesVerify(t *testing.T) {
	srv := newServer(true)
	sub := srv.lines.Listen()
	defer sub.Close()

	if err := srv.readLines(strings.NewReader(serialData)); !errors.Is(err, io.EOF) {
		t.Fatal(err)
	}
	if n := srv.rejected.Load(); n != 1 {
		t.Error("rejected", n)
	}
	var got []string
	for len(sub.Channel()) > 0 {
		got = append(got, <-sub.Channel())
	}
	if len(got) != 2 || got[1] != "$UPGBQ,RMC*21\n" {
		t.Errorf("got %q", got)
	}
}

func TestReadLinesPassthrough(t *testing.T) {
	srv := newServer(false)
	sub := srv.lines.Listen()
	defer sub.Close()

	srv.readLines(strings.NewReader(serialData))
	if n := len(sub.Channel()); n != 3 {
		t.Error("forwarded", n)
	}
}

func TestTCPClient(t *testing.T) {
	srv := newServer(false)
	client, server := net.Pipe()
	go srv.handleConn(server)
	defer client.Close()

	waitFor(t, func() bool { return srv.lines.Subscribers() == 1 })
	srv.lines.Publish("$UPGBQ,RMC*21\r\n")

	buf := make([]byte, 64)
	client.SetReadDeadline(time.Now().Add(5 * time.Second))
	n, err := client.Read(buf)
	if err != nil {
		t.Fatal(err)
	}
	if string(buf[:n]) != "$UPGBQ,RMC*21\r\n" {
		t.Errorf("got %q", buf[:n])
	}
}

func TestWebsocketStream(t *testing.T) {
	srv := newServer(false)
	hs := httptest.NewServer(http.HandlerFunc(srv.serveWS))
	defer hs.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(hs.URL, "http"), nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	waitFor(t, func() bool { return srv.sentences.Subscribers() == 1 })
	srv.readLines(strings.NewReader(serialData))

	var ev struct {
		Talker  string
		Code    string
		Message map[string]any
	}
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&ev); err != nil {
		t.Fatal(err)
	}
	if ev.Talker != "GPS" || ev.Code != "GGA" {
		t.Error("event", ev.Talker, ev.Code)
	}
	if ev.Message["Time"] != "09:27:25.000" || ev.Message["Quality"] != "AutonomousGNSSFix" {
		t.Error("message", ev.Message)
	}

	// The corrupt GGA is not decoded; the poll with a bare LF is.
	if err := conn.ReadJSON(&ev); err != nil {
		t.Fatal(err)
	}
	if ev.Code != "GBQ" || ev.Talker != "MicroprocessorController" {
		t.Error("second event", ev.Talker, ev.Code)
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("timed out")
		}
		time.Sleep(time.Millisecond)
	}
}
