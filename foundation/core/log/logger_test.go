// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger configuration, context propagation, level
//              filtering and structured error integration.
// Author: btstring maintainers
// Version: v0.1.0
// Created: 2026-09-02
// Modified: 2026-10-15

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/bt-tools/btstring/foundation/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithConfig(Config{Level: level, Format: format, Output: &buf, Name: "test"}), &buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not valid JSON: %v (%q)", err, buf.String())
	}
	return data
}

func TestNew(t *testing.T) {
	logger := New()

	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}
	if logger.contextFields == nil {
		t.Error("New() should initialize context fields")
	}
}

func TestNewWithConfig(t *testing.T) {
	logger, buf := newBufferLogger(LevelError, FormatText)

	if logger.GetLevel() != LevelError {
		t.Errorf("level = %v, want %v", logger.GetLevel(), LevelError)
	}
	if logger.name != "test" {
		t.Errorf("name = %q, want test", logger.name)
	}
	if logger.output != buf {
		t.Error("custom output not set")
	}
}

func TestLoggerDerivedOutputFormatName(t *testing.T) {
	var buf bytes.Buffer
	base := New()
	logger := base.WithOutput(&buf).WithFormat(FormatText).WithName("derived").WithLevel(LevelTrace)

	logger.Trace("tracing", Bool("on", true))
	if got := buf.String(); !strings.Contains(got, "[TRC] {derived} tracing [on=true]") {
		t.Errorf("output = %q", got)
	}
	if base.output == logger.output || base.name == "derived" {
		t.Error("With* modified the base logger")
	}
}

func TestLoggerWithLevel(t *testing.T) {
	logger := New()
	derived := logger.WithLevel(LevelDebug)

	if derived == logger {
		t.Error("WithLevel() should return a new logger instance")
	}
	if derived.GetLevel() != LevelDebug {
		t.Errorf("derived level = %v, want debug", derived.GetLevel())
	}
	if logger.GetLevel() != DefaultLevel() {
		t.Error("WithLevel() modified the original logger")
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)

	logger.Debug("hidden")
	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("messages below warn were written: %q", buf.String())
	}

	logger.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("warn message missing: %q", buf.String())
	}
}

func TestLoggerContextFields(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatJSON)
	logger = logger.WithField("command", "balance").WithFields(Fields{"groups": 2})

	logger.Info("split", Field("words", 5))

	data := decodeLine(t, buf)
	if data["command"] != "balance" {
		t.Errorf("command = %v, want balance", data["command"])
	}
	if data["groups"] != float64(2) {
		t.Errorf("groups = %v, want 2", data["groups"])
	}
	if data["words"] != float64(5) {
		t.Errorf("words = %v, want 5", data["words"])
	}
	if data["logger"] != "test" {
		t.Errorf("logger = %v, want test", data["logger"])
	}
}

func TestLoggerWithFieldDoesNotLeak(t *testing.T) {
	base, buf := newBufferLogger(LevelInfo, FormatJSON)
	_ = base.WithField("leak", true)

	base.Info("plain")

	data := decodeLine(t, buf)
	if _, ok := data["leak"]; ok {
		t.Error("field from derived logger leaked into the base logger")
	}
}

func TestLoggerCorrelationID(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatJSON)
	logger.WithCorrelationID("abc-123").Info("hello")

	data := decodeLine(t, buf)
	if data["correlation_id"] != "abc-123" {
		t.Errorf("correlation_id = %v, want abc-123", data["correlation_id"])
	}
}

func TestLoggerLogError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
	}{
		{
			name:      "low severity logs at info",
			err:       mdwerror.New("bad input").WithCode(mdwerror.CodeInvalidInput),
			wantLevel: "info",
		},
		{
			name:      "high severity logs at error",
			err:       mdwerror.New("failed").WithCode(mdwerror.CodeOperationFailed),
			wantLevel: "error",
		},
		{
			name:      "medium severity logs at warn",
			err:       mdwerror.New("odd").WithSeverity(mdwerror.SeverityMedium),
			wantLevel: "warn",
		},
		{
			name:      "critical severity logs at error",
			err:       mdwerror.New("broken").WithSeverity(mdwerror.SeverityCritical),
			wantLevel: "error",
		},
		{
			name:      "plain error logs at error",
			err:       errors.New("plain"),
			wantLevel: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace, FormatJSON)
			logger.LogError(tt.err)

			data := decodeLine(t, buf)
			if data["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", data["level"], tt.wantLevel)
			}
		})
	}
}

func TestLoggerLogErrorCodeField(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace, FormatJSON)
	logger.LogError(mdwerror.New("bad").WithCode(mdwerror.CodeInvalidInput).WithOperation("chunk"))

	data := decodeLine(t, buf)
	if data["error_code"] != "INVALID_INPUT" {
		t.Errorf("error_code = %v", data["error_code"])
	}
	if data["error_operation"] != "chunk" {
		t.Errorf("error_operation = %v", data["error_operation"])
	}
}

func TestLoggerLogErrorNil(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace, FormatJSON)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Errorf("nil error produced output: %q", buf.String())
	}
}

func TestLoggerSetLevel(t *testing.T) {
	logger, _ := newBufferLogger(LevelInfo, FormatText)
	logger.SetLevel(LevelDebug)

	if !logger.IsLevelEnabled(LevelDebug) {
		t.Error("debug should be enabled after SetLevel(debug)")
	}
	if logger.IsLevelEnabled(LevelTrace) {
		t.Error("trace should stay disabled")
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger.IsLevelEnabled(LevelFatal) {
		t.Error("Discard() logger should drop every level")
	}
}
