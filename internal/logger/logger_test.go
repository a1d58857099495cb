package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeDev, false},
		{"dev", ModeDev, false},
		{"Production", ModeProd, false},
		{" quiet ", ModeQuiet, false},
		{"verbose", "", true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestModeLevels(t *testing.T) {
	tests := []struct {
		mode Mode
		want zapcore.Level
	}{
		{ModeDev, zapcore.DebugLevel},
		{ModeProd, zapcore.InfoLevel},
		{ModeQuiet, zapcore.WarnLevel},
	}
	for _, tt := range tests {
		if got := tt.mode.config().Level.Level(); got != tt.want {
			t.Errorf("%s level = %v, want %v", tt.mode, got, tt.want)
		}
	}
	if enc := ModeProd.config().Encoding; enc != "json" {
		t.Errorf("prod encoding = %q, want json", enc)
	}
}

func TestNew_UnknownMode(t *testing.T) {
	if _, err := New("loud"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestComponentAndWith(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := FromCore(core).Component("render").With("engine", "latex")

	log.Warn("retrying", "attempt", 2)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.LoggerName != "render" {
		t.Errorf("logger name = %q, want render", e.LoggerName)
	}
	fields := e.ContextMap()
	if fields["engine"] != "latex" {
		t.Errorf("engine = %v, want latex", fields["engine"])
	}
	if fields["attempt"] != int64(2) {
		t.Errorf("attempt = %v (%T), want 2", fields["attempt"], fields["attempt"])
	}
}
