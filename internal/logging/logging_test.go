package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	for in, want := range map[string]slog.Level{"debug": slog.LevelDebug, "": slog.LevelInfo, "WARN": slog.LevelWarn, "error": slog.LevelError} {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("%q: got %v, %v", in, got, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error")
	}
}

func TestNoColorOnBuffer(t *testing.T) {
	buf := new(bytes.Buffer)
	l, err := New(buf, "info")
	if err != nil {
		t.Fatal(err)
	}
	l.Debug("hidden")
	l.Info("shown", "sentences", 3)
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug line logged at info level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "sentences=3") {
		t.Error("unexpected output", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("colour escapes written to a non-terminal")
	}
}
