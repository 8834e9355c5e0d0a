package nmea

import (
	"errors"
	"io"
	"strings"
	"testing"
)

const sampleStream = "\x00\xff garbage\r\n" +
	"$GPTXT,01,01,02,ANTARIS ATR0620 HW 00000040*67\r\n" +
	"\r\n" +
	"$GPGGA,092725.00,4717.11399,N,00833.91590,E,1,08,1.01,499.6,M,48.0,M,,*5B\r\n" +
	"noise$GPVTG,77.52,T,,M,0.004,N,0.008,K,A*06\r\n" +
	"!AIVDM,1,1,,B,15M67FC000G?ufbE`FepT@3n00Sa,0*5C\r\n" +
	"$GPZDA,082710.00,16,09,2002,00,00*64"

func TestFramerParser(t *testing.T) {
	framer := NewFramer(strings.NewReader(sampleStream))

	var lines []string
	for {
		line, err := framer.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		lines = append(lines, line)
	}

	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5: %q", len(lines), lines)
	}
	if lines[2] != "$GPVTG,77.52,T,,M,0.004,N,0.008,K,A*06\r\n" {
		t.Error("noise not skipped:", lines[2])
	}
	if !strings.HasPrefix(lines[3], "!AIVDM") {
		t.Error("encapsulated sentence not framed:", lines[3])
	}
	if lines[4] != "$GPZDA,082710.00,16,09,2002,00,00*64" {
		t.Error("final unterminated line:", lines[4])
	}

	for _, l := range lines[:3] {
		s, err := Parse(l)
		if err != nil {
			t.Error(l, err)
			continue
		}
		t.Log(s.Talker, s.Message.Code())
	}
	if _, err := Parse(lines[3]); !errors.Is(err, ErrUnsupportedMessage) {
		t.Error("VDM should be unsupported, got", err)
	}
	if _, err := NewDecoder(WithLaxTerminator()).Decode(lines[4]); err != nil {
		t.Error("lax decode of final line:", err)
	}
	if framer.Discarded() != 0 {
		t.Error("unexpected discards", framer.Discarded())
	}
}

func TestFramerOverlong(t *testing.T) {
	long := "$GPTXT," + strings.Repeat("x", 3*MaxLineLength) + "*00\r\n"
	short := "$UPGBQ,RMC*21\r\n"
	framer := NewFramer(strings.NewReader(long + short + long))

	line, err := framer.Read()
	if err != nil {
		t.Fatal(err)
	}
	if line != short {
		t.Errorf("got %q, want %q", line, short)
	}
	if _, err := framer.Read(); !errors.Is(err, io.EOF) {
		t.Error("expected EOF, got", err)
	}
	if framer.Discarded() != 2 {
		t.Error("discarded", framer.Discarded(), "want 2")
	}
}

func TestFramerExactLimit(t *testing.T) {
	// A line of exactly MaxLineLength bytes, terminator included, is kept.
	body := "$GPTXT,01,01,02,"
	pad := MaxLineLength - len(body) - len("*00\r\n")
	line := body + strings.Repeat("a", pad) + "*00\r\n"

	framer := NewFramer(strings.NewReader(line))
	got, err := framer.Read()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != MaxLineLength {
		t.Error("length", len(got))
	}
}
