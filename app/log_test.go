package app

import (
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerWritesOneLinePerRecord(t *testing.T) {
	l := &memLogger{}
	log := NewLogger(l, slog.LevelInfo)

	log.Info("band select", "band", "40m")
	log.Debug("hidden")

	if len(l.lines) != 1 {
		t.Fatalf("lines = %q, want 1 line", l.lines)
	}
	line := l.lines[0]
	if strings.Contains(line, "time=") {
		t.Fatalf("line %q carries a timestamp", line)
	}
	if !strings.Contains(line, "level=INFO") || !strings.Contains(line, `msg="band select"`) || !strings.Contains(line, "band=40m") {
		t.Fatalf("line = %q", line)
	}
}

func TestLoggerLevelVar(t *testing.T) {
	l := &memLogger{}
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	log := NewLogger(l, level)

	log.Info("a")
	level.Set(slog.LevelDebug)
	log.Debug("b")

	if len(l.lines) != 1 || !strings.Contains(l.lines[0], "msg=b") {
		t.Fatalf("lines = %q", l.lines)
	}
}

func TestLineWriterSplits(t *testing.T) {
	l := &memLogger{}
	in := []byte("one\n\ntwo\nthree")
	n, err := lineWriter{l: l}.Write(in)
	if err != nil || n != len(in) {
		t.Fatalf("Write = %d, %v", n, err)
	}
	want := []string{"one", "two", "three"}
	if strings.Join(l.lines, "|") != strings.Join(want, "|") {
		t.Fatalf("lines = %q, want %q", l.lines, want)
	}
}
