package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		level  Level
		format Format
		logged bool
	}{
		{"debug text", LevelDebug, FormatText, true},
		{"info json", LevelInfo, FormatJSON, true},
		{"warn text", LevelWarn, FormatText, false},
		{"error json", LevelError, FormatJSON, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			New(&buf, tt.level, tt.format).Info("test message", "key", "value")
			out := buf.String()
			if got := strings.Contains(out, "test message"); got != tt.logged {
				t.Fatalf("logged = %v, want %v; output: %q", got, tt.logged, out)
			}
			if tt.logged && !strings.Contains(out, "value") {
				t.Errorf("expected attribute in output, got: %s", out)
			}
		})
	}
}

func TestNewJSONTimestamp(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, LevelInfo, FormatJSON).Info("ts")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	ts, ok := entry["time"].(string)
	if !ok {
		t.Fatalf("missing time field in %v", entry)
	}
	if _, err := time.Parse(time.RFC3339, ts); err != nil {
		t.Errorf("time %q is not RFC3339: %v", ts, err)
	}
}

func TestParse(t *testing.T) {
	for s, want := range map[string]Level{"debug": LevelDebug, "info": LevelInfo, "warn": LevelWarn, "error": LevelError} {
		if got, err := ParseLevel(s); err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", s, got, err, want)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Error("ParseLevel(\"verbose\") did not fail")
	}
	for s, want := range map[string]Format{"text": FormatText, "json": FormatJSON} {
		if got, err := ParseFormat(s); err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v", s, got, err, want)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(\"xml\") did not fail")
	}
}
