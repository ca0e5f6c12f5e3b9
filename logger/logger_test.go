package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			if got := ParseLevel(tc.in); got != tc.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestNewWithOutputFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "warn"}, &buf)

	log.Info().Msg("hidden")
	log.Warn().Str("component", "test").Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, `"component":"test"`) {
		t.Errorf("warn message missing: %q", out)
	}
}

func TestNewWithOutputPretty(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Pretty: true}, &buf)
	log.Info().Str("file", "a.csv").Msg("saved")

	out := buf.String()
	if strings.HasPrefix(out, "{") {
		t.Errorf("pretty output should not be json: %q", out)
	}
	if !strings.Contains(out, "saved") || !strings.Contains(out, "file=a.csv") {
		t.Errorf("unexpected pretty output: %q", out)
	}
}
