package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/zapponejosh/doomsday-api/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&config.Config{Env: "staging", LogLevel: "warn", LogFormat: "json"}, &buf)

	log.Info("dropped")
	log.Warn("kept", slog.Int("year", 1776))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1: %s", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("unmarshal log line: %v", err)
	}
	if entry["msg"] != "kept" {
		t.Errorf("msg = %v, want kept", entry["msg"])
	}
	if entry["env"] != "staging" {
		t.Errorf("env = %v, want staging", entry["env"])
	}
	if entry["year"] != float64(1776) {
		t.Errorf("year = %v, want 1776", entry["year"])
	}
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	log := New(&config.Config{Env: "development", LogLevel: "info", LogFormat: "text"}, &buf)

	log.Info("hello")

	if !strings.Contains(buf.String(), "msg=hello") {
		t.Errorf("text output = %q, want msg=hello", buf.String())
	}
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := WithRequestID(context.Background(), "abc123")
	if got := RequestID(ctx); got != "abc123" {
		t.Errorf("RequestID() = %q, want abc123", got)
	}

	FromContext(ctx, base).Info("tagged")
	if !strings.Contains(buf.String(), "request_id=abc123") {
		t.Errorf("output = %q, want request_id", buf.String())
	}

	if got := FromContext(context.Background(), base); got != base {
		t.Error("FromContext without request ID should return base logger")
	}
	if RequestID(context.Background()) != "" {
		t.Error("RequestID() on empty context should be empty")
	}
}
