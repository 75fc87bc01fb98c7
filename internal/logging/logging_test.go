package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{" error ", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tc := range cases {
		if got := parseLevel(tc.in); got != tc.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestStackHandler_AddsTraceOnError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(&stackHandler{Handler: slog.NewJSONHandler(&buf, nil)})

	logger.Log(context.Background(), slog.LevelError, "boom")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if record["stacktrace"] == nil || record["stacktrace"] == "" {
		t.Error("expected a stacktrace attribute on ERROR records")
	}
}

func TestStackHandler_NoTraceBelowError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(&stackHandler{Handler: slog.NewJSONHandler(&buf, nil)})

	logger.Log(context.Background(), slog.LevelWarn, "heads up")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := record["stacktrace"]; ok {
		t.Error("expected no stacktrace below ERROR")
	}
}
