package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"calmh.dev/nmea"
	"calmh.dev/nmea/internal/fixlog"
	"gopkg.in/yaml.v3"
)

const input = "noise\r\n" +
	"$GPGGA,092725.00,4717.11399,N,00833.91590,E,1,08,1.01,499.6,M,48.0,M,,*5B\r\n" +
	"$GPZDA,082710.00,16,09,2002,00,00*64\r\n" +
	"$GPGGA,092725.00,4717.11399,N,00833.91590,E,1,08,1.01,499.6,M,48.0,M,,*00\r\n" +
	"$UPGBQ,RMC*21\r\n" +
	"$GPRMC,083559.00,A,4717.11437,N,00833.91522,E,0.004,77.52,091202,,,A,V*2D\r\n"

func runDump(t *testing.T, format string) (*dumper, string) {
	t.Helper()
	var buf bytes.Buffer
	d := newDumper(&buf, format, nmea.NewDecoder())
	if err := d.dump(context.Background(), strings.NewReader(input)); err != nil {
		t.Fatal(err)
	}
	return d, buf.String()
}

func TestDumpText(t *testing.T) {
	_, out := runDump(t, "text")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "GPS GGA Time=09:27:25.000 ") ||
		!strings.Contains(lines[0], " Quality=AutonomousGNSSFix SatellitesUsed=8 HDOP=1.01 Altitude=499.6 ") {
		t.Error(lines[0])
	}
	if lines[1] != "GPS ZDA Time=08:27:10.000 Day=16 Month=9 Year=2002 ZoneHours=0 ZoneMinutes=0" {
		t.Error(lines[1])
	}
	if lines[2] != "MicroprocessorController GBQ MessageID=RMC" {
		t.Error(lines[2])
	}
	// Empty optional fields are left out.
	if strings.Contains(lines[3], "MagneticVariation") || !strings.Contains(lines[3], "Date=2002-12-09") {
		t.Error(lines[3])
	}
}

func TestDumpJSON(t *testing.T) {
	_, out := runDump(t, "json")
	dec := json.NewDecoder(strings.NewReader(out))
	var codes []string
	for dec.More() {
		var rec struct {
			Talker  string
			Code    string
			Message map[string]any
		}
		if err := dec.Decode(&rec); err != nil {
			t.Fatal(err)
		}
		codes = append(codes, rec.Code)
		if rec.Code == "GGA" && rec.Message["SatellitesUsed"] != 8.0 {
			t.Error("satellites", rec.Message["SatellitesUsed"])
		}
	}
	if strings.Join(codes, ",") != "GGA,ZDA,GBQ,RMC" {
		t.Error("codes", codes)
	}
}

func TestDumpYAML(t *testing.T) {
	_, out := runDump(t, "yaml")
	dec := yaml.NewDecoder(strings.NewReader(out))
	var n int
	for {
		var doc map[string]any
		if err := dec.Decode(&doc); err != nil {
			break
		}
		n++
		if n == 1 {
			msg, _ := doc["message"].(map[string]any)
			if doc["talker"] != "GPS" || doc["code"] != "GGA" || msg["quality"] != "AutonomousGNSSFix" || msg["time"] != "09:27:25.000" {
				t.Error("first document", doc)
			}
		}
	}
	if n != 4 {
		t.Error("documents", n)
	}
}

func TestStatsSummary(t *testing.T) {
	d, _ := runDump(t, "text")
	var buf bytes.Buffer
	d.stats.write(&buf)
	out := buf.String()
	if !strings.Contains(out, ": 4 sentences decoded, 1 rejected, 0 overlong lines skipped") {
		t.Error(out)
	}
	if !strings.Contains(out, "checksum_mismatch") || !strings.Contains(out, "GGA") {
		t.Error(out)
	}
	if d.stats.bytes != int64(len(input)) {
		t.Error("bytes", d.stats.bytes)
	}
}

func TestDumpRecordsFixes(t *testing.T) {
	st, err := fixlog.Open(filepath.Join(t.TempDir(), "fixes.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()

	var buf bytes.Buffer
	d := newDumper(&buf, "text", nmea.NewDecoder())
	d.fixes = st
	d.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	if err := d.dump(context.Background(), strings.NewReader(input)); err != nil {
		t.Fatal(err)
	}

	fixes, err := st.Recent(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(fixes) != 2 || fixes[0].Code != "RMC" || fixes[1].Code != "GGA" {
		t.Fatalf("fixes %+v", fixes)
	}
	if !fixes[1].Time.Equal(time.Date(2024, 3, 1, 9, 27, 25, 0, time.UTC)) {
		t.Error("GGA time", fixes[1].Time)
	}
	if d.stats.fixes != 2 {
		t.Error("stats", d.stats.fixes)
	}
}

func TestListCodes(t *testing.T) {
	var buf bytes.Buffer
	listCodes(&buf)
	if !strings.Contains(buf.String(), "GGA  ") {
		t.Error(buf.String())
	}
	if n := strings.Count(buf.String(), "\n"); n != len(nmea.SupportedCodes()) {
		t.Error("lines", n)
	}
}
