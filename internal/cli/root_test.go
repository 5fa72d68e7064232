package cli

import (
	"testing"
)

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2026-01-01")

	if version != "1.0.0" {
		t.Errorf("version = %q, want %q", version, "1.0.0")
	}
	if commit != "abc123" {
		t.Errorf("commit = %q, want %q", commit, "abc123")
	}
	if date != "2026-01-01" {
		t.Errorf("date = %q, want %q", date, "2026-01-01")
	}
}

func TestCommandConstructors(t *testing.T) {
	cfg := defaultConfig()

	tests := []struct {
		name string
		use  string
	}{
		{"convert", newConvertCmd(cfg).Use},
		{"export", newExportCmd().Use},
		{"render", newRenderCmd().Use},
		{"serve", newServeCmd(cfg).Use},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.use == "" {
				t.Error("command has empty Use")
			}
		})
	}
}
