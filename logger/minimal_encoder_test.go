package logger

import (
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func stripANSI(str string) string {
	return regexp.MustCompile(`\x1b\[[0-9;]*m`).ReplaceAllString(str, "")
}

func TestMinimalEncoderNeverDiscardsFields(t *testing.T) {
	encoder := newMinimalEncoder()
	entry := zapcore.Entry{
		Level:      zapcore.InfoLevel,
		Time:       time.Now(),
		LoggerName: "gen",
		Message:    "Generated layout",
	}

	testFields := []struct {
		field    zapcore.Field
		mustFind string
	}{
		{zap.String(FieldLayout, "main"), "main"},
		{zap.Int(FieldCount, 4), "count=4"},
		{zap.String(FieldInterface, "com.example.Titled"), "interface=com.example.Titled"},
		{zap.Bool("strict", true), "strict=true"},
		{zap.Float64("ratio", 0.5), "ratio=0.5"},
		{zap.Strings("ids", []string{"title", "icon"}), "ids="},
		{zap.Error(errors.New("boom")), "error=boom"},
		{zap.Error(nil), ""},
	}

	var fields []zapcore.Field
	for _, tf := range testFields {
		fields = append(fields, tf.field)
	}

	buf, err := encoder.EncodeEntry(entry, fields)
	if err != nil {
		t.Fatalf("EncodeEntry() error = %v", err)
	}
	out := stripANSI(buf.String())

	for _, tf := range testFields {
		if tf.mustFind != "" && !strings.Contains(out, tf.mustFind) {
			t.Errorf("field discarded from output: want %q in %q", tf.mustFind, out)
		}
	}
	if !strings.Contains(out, "gen  Generated layout") {
		t.Errorf("missing component and message: %q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Errorf("entry must end with newline: %q", out)
	}
}

func TestMinimalEncoderKeepsContextFields(t *testing.T) {
	encoder := newMinimalEncoder()
	zap.String(FieldRunID, "r-1").AddTo(encoder)
	zap.Int("workers", 1).AddTo(encoder)

	clone := encoder.Clone()
	buf, err := clone.EncodeEntry(zapcore.Entry{Level: zapcore.WarnLevel, Time: time.Now(), Message: "m"}, nil)
	if err != nil {
		t.Fatalf("EncodeEntry() error = %v", err)
	}
	out := stripANSI(buf.String())

	for _, want := range []string{"WARN", "run_id=r-1", "workers=1"} {
		if !strings.Contains(out, want) {
			t.Errorf("want %q in %q", want, out)
		}
	}
}

func TestSetThemeIgnoresUnknown(t *testing.T) {
	defer SetTheme("everforest")

	SetTheme("gruvbox")
	if currentTheme != "gruvbox" {
		t.Fatalf("theme = %q, want gruvbox", currentTheme)
	}
	SetTheme("solarized")
	if currentTheme != "gruvbox" {
		t.Errorf("unknown theme must be ignored, got %q", currentTheme)
	}
}
