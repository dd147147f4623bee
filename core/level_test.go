package core

import (
	"testing"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{TraceLevel, "TRACE"},
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarnLevel, "WARN"},
		{ErrorLevel, "ERROR"},
		{FatalLevel, "FATAL"},
		{DisabledLevel, "DISABLED"},
		{Level(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevel_Ordering(t *testing.T) {
	order := []Level{TraceLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel, FatalLevel, DisabledLevel}
	for i := 1; i < len(order); i++ {
		if order[i-1] >= order[i] {
			t.Errorf("%v should be below %v", order[i-1], order[i])
		}
	}
}

func TestLevel_Enabled(t *testing.T) {
	tests := []struct {
		name  string
		level Level
		min   Level
		want  bool
	}{
		{"trace at all", TraceLevel, TraceLevel, true},
		{"debug below info", DebugLevel, InfoLevel, false},
		{"warn at info", WarnLevel, InfoLevel, true},
		{"fatal at fatal", FatalLevel, FatalLevel, true},
		{"fatal at disabled", FatalLevel, DisabledLevel, false},
		{"disabled is never a record level", DisabledLevel, TraceLevel, false},
		{"unknown level", Level(-3), TraceLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.level.Enabled(tt.min); got != tt.want {
				t.Errorf("%v.Enabled(%v) = %v, want %v", tt.level, tt.min, got, tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"all", TraceLevel, false},
		{"TRACE", TraceLevel, false},
		{"debug", DebugLevel, false},
		{"Info", InfoLevel, false},
		{"warn", WarnLevel, false},
		{"warning", WarnLevel, false},
		{"error", ErrorLevel, false},
		{"fatal", FatalLevel, false},
		{"disabled", DisabledLevel, false},
		{"off", DisabledLevel, false},
		{"none", DisabledLevel, false},
		{"", DisabledLevel, false},
		{" info ", InfoLevel, false},
		{"verbose", DisabledLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLevel_Set(t *testing.T) {
	lvl := DisabledLevel
	if err := lvl.Set("warn"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if lvl != WarnLevel {
		t.Errorf("Set(warn) = %v, want WARN", lvl)
	}

	if err := lvl.Set("bogus"); err == nil {
		t.Error("Set(bogus) should fail")
	}
	if lvl != WarnLevel {
		t.Errorf("failed Set changed the level to %v", lvl)
	}
	if lvl.Type() != "level" {
		t.Errorf("Type() = %q", lvl.Type())
	}
}
