// File: logger_test.go
// Title: Unit Tests for Logger, Levels and Formatters
// Description: Tests level filtering, immutable With* copies, formatter
//              output and structured error logging.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test implementation

package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	sherror "github.com/msto63/strhelp/foundation/core/error"
)

func newTestLogger(buf *bytes.Buffer, level Level, format Format) *Logger {
	return NewWithConfig(Config{
		Level:  level,
		Format: format,
		Output: buf,
		Name:   "test",
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"fatal", LevelFatal, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v; want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("json"); err != nil || f != FormatJSON {
		t.Errorf("ParseFormat(json) = %v, %v", f, err)
	}
	if f, err := ParseFormat(""); err != nil || f != FormatText {
		t.Errorf("ParseFormat(\"\") = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelWarn, FormatText)

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("filtered messages were written: %q", out)
	}
	if !strings.Contains(out, "[WRN] {test} shown") {
		t.Errorf("warn message missing: %q", out)
	}
}

func TestWithCopiesAreIndependent(t *testing.T) {
	var buf bytes.Buffer
	base := newTestLogger(&buf, LevelDebug, FormatText)
	child := base.WithName("group").WithField("mode", "paths").WithRequestID("r-1")

	if base.Name() != "test" || child.Name() != "test.group" {
		t.Fatalf("names: base=%q child=%q", base.Name(), child.Name())
	}

	base.Debug("from base")
	if strings.Contains(buf.String(), "mode=paths") {
		t.Error("context field leaked into parent logger")
	}

	buf.Reset()
	child.Debug("from child", Int("groups", 2))
	out := buf.String()
	for _, want := range []string{"{test.group}", "(req=r-1)", "[groups=2 mode=paths]"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelInfo, FormatJSON)

	err := sherror.New("bad pattern").WithCode(sherror.CodeInvalidPattern)
	logger.ErrorWithErr("extract failed", err, String("pattern", "<("))

	var decoded map[string]interface{}
	if jerr := json.Unmarshal(buf.Bytes(), &decoded); jerr != nil {
		t.Fatalf("output is not JSON: %v (%q)", jerr, buf.String())
	}

	if decoded["level"] != "error" || decoded["message"] != "extract failed" {
		t.Errorf("unexpected entry: %v", decoded)
	}
	if decoded["pattern"] != "<(" {
		t.Errorf("pattern field = %v", decoded["pattern"])
	}
	details, ok := decoded["error_details"].(map[string]interface{})
	if !ok || details["code"] != "INVALID_PATTERN" {
		t.Errorf("error_details = %v", decoded["error_details"])
	}
}

func TestConsoleFormatterColors(t *testing.T) {
	entry := NewEntry(LevelError, "boom")

	colored, _ := NewConsoleFormatter().Format(entry)
	if !strings.HasPrefix(string(colored), LevelError.Color()) {
		t.Errorf("console output not colored: %q", colored)
	}

	plain := NewConsoleFormatter()
	plain.DisableColors = true
	out, _ := plain.Format(entry)
	if strings.Contains(string(out), "\033[") {
		t.Errorf("colors not disabled: %q", out)
	}
}

func TestLogErrorUsesSeverity(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelTrace, FormatText)

	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Fatalf("LogError(nil) wrote %q", buf.String())
	}

	logger.LogError(sherror.New("no match").WithCode(sherror.CodeNoMatch))
	if !strings.Contains(buf.String(), "[WRN]") || !strings.Contains(buf.String(), "code=NO_MATCH") {
		t.Errorf("low severity should log as warn with code: %q", buf.String())
	}

	buf.Reset()
	logger.LogError(sherror.New("broken").WithCode(sherror.CodeInternal))
	if !strings.Contains(buf.String(), "[ERR]") {
		t.Errorf("high severity should log as error: %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger.IsLevelEnabled(LevelFatal) {
		t.Error("Discard logger should not enable any level")
	}
	logger.Error("dropped")
}

func TestLevelStrings(t *testing.T) {
	tests := []struct {
		level       Level
		name, short string
	}{
		{LevelTrace, "trace", "TRC"},
		{LevelWarn, "warn", "WRN"},
		{LevelFatal, "fatal", "FTL"},
		{Level(42), "unknown", "???"},
	}

	for _, tt := range tests {
		if tt.level.String() != tt.name || tt.level.ShortString() != tt.short {
			t.Errorf("Level(%d) = %q/%q; want %q/%q", tt.level, tt.level.String(), tt.level.ShortString(), tt.name, tt.short)
		}
	}

	if Level(-1).Color() != colorReset {
		t.Error("unknown level should use the reset color")
	}
}

func TestJSONFieldsDoNotOverwriteFixedKeys(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelInfo, FormatJSON)

	logger.Info("grouped", Field("message", "shadow"), Int("groups", 3))

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if decoded["message"] != "grouped" || decoded["field.message"] != "shadow" {
		t.Errorf("fixed key overwritten: %v", decoded)
	}
	if decoded["groups"] != float64(3) {
		t.Errorf("groups = %v", decoded["groups"])
	}
}
