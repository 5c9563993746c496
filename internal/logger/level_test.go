package logger

import (
	"bytes"
	"strings"
	"testing"
)

// TestLogLevelFiltering verifies that messages are filtered based on log level
func TestLogLevelFiltering(t *testing.T) {
	tests := []struct {
		name         string
		logLevel     string
		messageLevel string
		shouldAppear bool
	}{
		{name: "trace sees trace", logLevel: "trace", messageLevel: "trace", shouldAppear: true},
		{name: "trace sees error", logLevel: "trace", messageLevel: "error", shouldAppear: true},
		{name: "debug blocks trace", logLevel: "debug", messageLevel: "trace", shouldAppear: false},
		{name: "debug sees debug", logLevel: "debug", messageLevel: "debug", shouldAppear: true},
		{name: "info blocks debug", logLevel: "info", messageLevel: "debug", shouldAppear: false},
		{name: "info sees info", logLevel: "info", messageLevel: "info", shouldAppear: true},
		{name: "info sees warn", logLevel: "info", messageLevel: "warn", shouldAppear: true},
		{name: "warn blocks info", logLevel: "warn", messageLevel: "info", shouldAppear: false},
		{name: "warn sees warn", logLevel: "warn", messageLevel: "warn", shouldAppear: true},
		{name: "error blocks warn", logLevel: "error", messageLevel: "warn", shouldAppear: false},
		{name: "error sees error", logLevel: "error", messageLevel: "error", shouldAppear: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := NewConsoleLogger(buf, tt.logLevel)
			message := tt.messageLevel + " message"

			logger.logWithLevel(strings.ToUpper(tt.messageLevel), message)

			contains := strings.Contains(buf.String(), message)
			if contains != tt.shouldAppear {
				t.Errorf("level %s, message %s: appeared=%v, want %v (output %q)",
					tt.logLevel, tt.messageLevel, contains, tt.shouldAppear, buf.String())
			}
		})
	}
}

func TestNormalizeLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"debug", "debug"},
		{"  WARN ", "warn"},
		{"Error", "error"},
		{"", "info"},
		{"verbose", "info"},
	}

	for _, tt := range tests {
		if got := normalizeLogLevel(tt.in); got != tt.want {
			t.Errorf("normalizeLogLevel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
