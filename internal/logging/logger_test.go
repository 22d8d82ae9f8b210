// CityGuide - City Point-of-Interest Recommendation Service
// Copyright 2026 M. Zhvania (mzhvania)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mzhvania/cityguide

package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"disabled", zerolog.Disabled},
		{"INFO", zerolog.InfoLevel},
		{"garbage", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNewTestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTestLogger(&buf)

	logger.Info().Str("city", "Batumi").Msg("test message")

	out := buf.String()
	if !strings.Contains(out, `"city":"Batumi"`) {
		t.Errorf("output missing structured field: %s", out)
	}
	if !strings.Contains(out, "test message") {
		t.Errorf("output missing message: %s", out)
	}
}

func TestInitJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Output: &buf})
	defer Init(DefaultConfig())

	Debug().Str("key", "value").Msg("debug message")

	out := buf.String()
	if !strings.Contains(out, `"key":"value"`) {
		t.Errorf("expected JSON field in output, got: %s", out)
	}
}

func TestSlogHandlerWritesToZerolog(t *testing.T) {
	var buf bytes.Buffer
	zl := NewTestLogger(&buf)
	slogger := slog.New(NewSlogHandlerWithLogger(zl))

	slogger.Info("service started", "component", "guide", "count", int64(3))

	out := buf.String()
	if !strings.Contains(out, "service started") {
		t.Errorf("output missing message: %s", out)
	}
	if !strings.Contains(out, `"component":"guide"`) {
		t.Errorf("output missing string attr: %s", out)
	}
	if !strings.Contains(out, `"count":3`) {
		t.Errorf("output missing int attr: %s", out)
	}
}

func TestSlogHandlerWithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	zl := NewTestLogger(&buf)
	slogger := slog.New(NewSlogHandlerWithLogger(zl)).
		With("service", "cityguide").
		WithGroup("req")

	slogger.Warn("slow query", "elapsed_ms", int64(250))

	out := buf.String()
	if !strings.Contains(out, `"service":"cityguide"`) {
		t.Errorf("output missing pre-configured attr: %s", out)
	}
	if !strings.Contains(out, `"req.elapsed_ms":250`) {
		t.Errorf("output missing grouped attr: %s", out)
	}
}
