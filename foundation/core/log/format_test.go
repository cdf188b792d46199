// File: format_test.go
// Title: Formatter Tests
// Description: Tests for the JSON, text, console and logfmt formatters.
// Author: btstring maintainers
// Version: v0.1.0
// Created: 2026-09-02
// Modified: 2026-09-02

package log

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	mdwerror "github.com/bt-tools/btstring/foundation/core/error"
)

func testEntry() *Entry {
	entry := NewEntry(LevelInfo, "hello world")
	entry.Timestamp = time.Date(2026, 9, 2, 10, 30, 0, 0, time.UTC)
	entry.Logger = "btstring"
	entry.Fields["b"] = 2
	entry.Fields["a"] = "x"
	return entry
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"TEXT", FormatText, false},
		{" console ", FormatConsole, false},
		{"logfmt", FormatLogfmt, false},
		{"xml", FormatJSON, true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestJSONFormatter(t *testing.T) {
	out, err := NewJSONFormatter().Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.HasSuffix(string(out), "\n") {
		t.Error("JSON output should end with a newline")
	}

	var data map[string]interface{}
	if err := json.Unmarshal(out, &data); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if data["message"] != "hello world" || data["level"] != "info" || data["logger"] != "btstring" {
		t.Errorf("unexpected JSON payload: %v", data)
	}
}

func TestJSONFormatterStructuredError(t *testing.T) {
	entry := testEntry()
	entry.Error = mdwerror.New("bad group count").WithCode(mdwerror.CodeInvalidInput)

	out, err := NewJSONFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(out, &data); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	details, ok := data["error_details"].(map[string]interface{})
	if !ok {
		t.Fatalf("error_details missing: %v", data)
	}
	if details["code"] != "INVALID_INPUT" {
		t.Errorf("error_details.code = %v", details["code"])
	}
}

func TestTextFormatter(t *testing.T) {
	out, _ := NewTextFormatter().Format(testEntry())
	want := "10:30:00 [INF] {btstring} hello world [a=x b=2]\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestTextFormatterDisableTimestamp(t *testing.T) {
	f := NewTextFormatter()
	f.DisableTimestamp = true
	entry := testEntry()
	entry.CorrelationID = "cid1"

	out, _ := f.Format(entry)
	want := "[INF] {btstring} (cid=cid1) hello world [a=x b=2]\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestConsoleFormatter(t *testing.T) {
	f := NewConsoleFormatter()
	out, _ := f.Format(testEntry())
	if !strings.HasPrefix(string(out), LevelInfo.Color()) {
		t.Errorf("console output should start with the level color: %q", out)
	}

	f.DisableColors = true
	out, _ = f.Format(testEntry())
	if strings.Contains(string(out), "\033[") {
		t.Errorf("colors should be disabled: %q", out)
	}
}

func TestLogfmtFormatter(t *testing.T) {
	out, _ := NewLogfmtFormatter().Format(testEntry())
	got := string(out)

	for _, part := range []string{`level=info`, `message="hello world"`, `logger=btstring`, `a="x"`, `b=2`} {
		if !strings.Contains(got, part) {
			t.Errorf("logfmt output %q missing %q", got, part)
		}
	}
}

func TestGetFormatter(t *testing.T) {
	if _, ok := GetFormatter(FormatText).(*TextFormatter); !ok {
		t.Error("GetFormatter(text) should return a TextFormatter")
	}
	if _, ok := GetFormatter(Format(99)).(*JSONFormatter); !ok {
		t.Error("unknown formats should fall back to JSON")
	}
}
