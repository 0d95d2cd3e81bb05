package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func fixedLogger(buf *bytes.Buffer, level LogLevel, format LogFormat) *Logger {
	l := New(Config{Level: level, Format: format, Output: buf})
	l.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	return l
}

func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, DEBUG, TextFormat).WithComponent("scan")

	l.Info("vault scanned", Fields{"notes": 3, "charts": 5})
	l.Error("read failed", errors.New("permission denied"))

	want := "[2024-03-01T12:00:00Z] INFO [scan] vault scanned charts=5 notes=3\n" +
		"[2024-03-01T12:00:00Z] ERROR [scan] read failed error=\"permission denied\"\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, INFO, JSONFormat)

	l.Warn("slow note", Fields{"path": "a.md"})

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry.Level != "WARN" || entry.Message != "slow note" || entry.Fields["path"] != "a.md" {
		t.Errorf("entry = %+v", entry)
	}
	if entry.Timestamp != "2024-03-01T12:00:00Z" {
		t.Errorf("Timestamp = %q", entry.Timestamp)
	}
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, WARN, TextFormat)

	l.Debug("hidden")
	l.Infof("hidden %d", 1)
	l.Warnf("shown %d", 2)
	if got := strings.Count(buf.String(), "\n"); got != 1 {
		t.Errorf("wrote %d lines, want 1: %q", got, buf.String())
	}
	if !strings.Contains(buf.String(), "shown 2") {
		t.Errorf("output = %q", buf.String())
	}

	if l.Enabled(INFO) || !l.Enabled(ERROR) {
		t.Error("Enabled() disagrees with level WARN")
	}
	l.SetLevel(DEBUG)
	if !l.Enabled(DEBUG) {
		t.Error("SetLevel(DEBUG) not applied")
	}
}

func TestFatalExits(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, INFO, TextFormat)
	code := -1
	l.exit = func(c int) { code = c }

	l.Fatal("cannot start", errors.New("boom"))
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(buf.String(), "FATAL") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	if l.Enabled(FATAL) {
		t.Error("Discard() logger enabled for FATAL")
	}
	l.Error("dropped", errors.New("x"))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
		ok   bool
	}{
		{"debug", DEBUG, true},
		{" INFO ", INFO, true},
		{"warning", WARN, true},
		{"Error", ERROR, true},
		{"fatal", FATAL, true},
		{"loud", INFO, false},
		{"", INFO, false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestConfigure(t *testing.T) {
	prev := Global()
	defer SetGlobal(prev)

	var buf bytes.Buffer
	SetGlobal(fixedLogger(&buf, INFO, TextFormat))

	Configure("error", "json")
	Component("watch").Warn("ignored")
	Component("watch").Error("kept", nil)
	Configure("nonsense", "xml")

	out := buf.String()
	if strings.Contains(out, "ignored") {
		t.Errorf("WARN written at level ERROR: %q", out)
	}
	if !strings.Contains(out, `"component":"watch"`) {
		t.Errorf("output = %q, want JSON with component", out)
	}
	if Global().Enabled(WARN) {
		t.Error("unknown level name changed the level")
	}

	if f, ok := ParseFormat("TEXT"); !ok || f != TextFormat {
		t.Errorf("ParseFormat(TEXT) = %v, %v", f, ok)
	}
}
