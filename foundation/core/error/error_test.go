// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, details and
//              JSON output.
// Author: btstring maintainers
// Version: v0.1.0
// Created: 2026-09-02
// Modified: 2026-10-15

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}
	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
	if !strings.Contains(err.StackTrace()[0].Function, "TestNew") {
		t.Errorf("first frame = %q, want the caller of New", err.StackTrace()[0].Function)
	}
}

func TestNewf(t *testing.T) {
	err := Newf("groups must be >= %d, got %d", 1, 0)
	if err.Error() != "groups must be >= 1, got 0" {
		t.Errorf("Newf() = %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     errors.New("original error"),
			message: "wrapper message",
			wantMsg: "wrapper message: original error",
		},
		{
			name:    "wrap structured error",
			err:     New("original").WithCode(CodeInvalidInput),
			message: "wrapper message",
			wantMsg: "wrapper message: original",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if !errors.Is(got, tt.err) {
				t.Error("wrapped error should match the original with errors.Is")
			}
		})
	}
}

func TestWrapInheritsCodeAndDetails(t *testing.T) {
	inner := New("bad size").
		WithCode(CodeInvalidInput).
		WithOperation("chunk_bytes").
		WithDetail("size", 0)

	outer := Wrap(inner, "chunking failed")

	if outer.Code() != CodeInvalidInput {
		t.Errorf("Code() = %v, want %v", outer.Code(), CodeInvalidInput)
	}
	if outer.Operation() != "chunk_bytes" {
		t.Errorf("Operation() = %q, want chunk_bytes", outer.Operation())
	}
	if v, ok := outer.Detail("size"); !ok || v != 0 {
		t.Errorf("Detail(size) = %v, %v", v, ok)
	}
	if outer.Unwrap() != inner {
		t.Errorf("Unwrap() = %v, want inner error", outer.Unwrap())
	}
}

func TestWithCodeAdjustsSeverity(t *testing.T) {
	err := New("x").WithCode(CodeInvalidInput)
	if err.Severity() != SeverityLow {
		t.Errorf("Severity() = %v, want low", err.Severity())
	}

	err = New("x").WithSeverity(SeverityCritical).WithCode(CodeInvalidInput)
	if err.Severity() != SeverityCritical {
		t.Errorf("explicit severity overwritten: %v", err.Severity())
	}
}

func TestDetailsIsACopy(t *testing.T) {
	err := New("x").WithDetails(map[string]interface{}{"a": 1, "b": "two"})
	details := err.Details()
	details["a"] = 99

	if v, _ := err.Detail("a"); v != 1 {
		t.Errorf("Details() leaked internal map, a = %v", v)
	}
}

func TestHasCode(t *testing.T) {
	base := New("x").WithCode(CodeValueOutOfRange)

	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"direct", base, CodeValueOutOfRange, true},
		{"other code", base, CodeNotFound, false},
		{"fmt wrapped", fmt.Errorf("ctx: %w", base), CodeValueOutOfRange, true},
		{"standard error", errors.New("plain"), CodeValueOutOfRange, false},
		{"nil", nil, CodeValueOutOfRange, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasCode(tt.err, tt.code); got != tt.want {
				t.Errorf("HasCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCodeAndSeverity(t *testing.T) {
	err := fmt.Errorf("outer: %w", New("x").WithCode(CodeInvalidConfig))

	if GetCode(err) != CodeInvalidConfig {
		t.Errorf("GetCode() = %v", GetCode(err))
	}
	if GetSeverity(err) != SeverityLow {
		t.Errorf("GetSeverity() = %v", GetSeverity(err))
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() on a plain error should be CodeUnknown")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity() on a plain error should be SeverityMedium")
	}
}

func TestIsMatchesByCode(t *testing.T) {
	err := New("a").WithCode(CodeNotFound)

	if !errors.Is(err, New("b").WithCode(CodeNotFound)) {
		t.Error("errors.Is should match on equal codes")
	}
	if errors.Is(err, New("b").WithCode(CodeInternal)) {
		t.Error("errors.Is should not match different codes")
	}
	if errors.Is(New("a"), New("b")) {
		t.Error("errors without a code should not match each other")
	}
}

func TestString(t *testing.T) {
	err := Wrap(errors.New("root"), "top").
		WithCode(CodeInvalidInput).
		WithOperation("split_balanced").
		WithDetail("groups", 0)

	s := err.String()
	for _, want := range []string{
		"Error: top",
		"Code: INVALID_INPUT",
		"Operation: split_balanced",
		"Details: {groups=0}",
		"Cause: root",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("bad input").
		WithCode(CodeInvalidInput).
		WithOperation("chunk_bytes").
		WithDetail("size", 0)

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("MarshalJSON() error = %v", jerr)
	}

	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("invalid JSON: %v", jerr)
	}

	if decoded["message"] != "bad input" {
		t.Errorf("message = %v", decoded["message"])
	}
	if decoded["code"] != "INVALID_INPUT" {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["severity"] != "low" {
		t.Errorf("severity = %v", decoded["severity"])
	}
	if decoded["operation"] != "chunk_bytes" {
		t.Errorf("operation = %v", decoded["operation"])
	}
	if _, ok := decoded["stack_trace"]; !ok {
		t.Error("stack_trace missing")
	}
}

func TestCodeCategoryAndExitCode(t *testing.T) {
	tests := []struct {
		code     Code
		category string
		exit     int
	}{
		{CodeInvalidInput, "validation", 2},
		{CodeValueOutOfRange, "validation", 2},
		{CodeInvalidConfig, "configuration", 1},
		{CodeOperationFailed, "generic", 1},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if !tt.code.IsValid() {
				t.Errorf("%v should be valid", tt.code)
			}
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Category() = %q, want %q", got, tt.category)
			}
			if got := tt.code.ExitCode(); got != tt.exit {
				t.Errorf("ExitCode() = %d, want %d", got, tt.exit)
			}
		})
	}

	if Code("NOPE").IsValid() {
		t.Error("unknown code reported valid")
	}
}

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = New("benchmark error")
	}
}

func BenchmarkWrapStandardError(b *testing.B) {
	base := errors.New("base error")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Wrap(base, "wrapped")
	}
}
