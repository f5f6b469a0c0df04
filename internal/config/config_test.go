package config

import (
	"errors"
	"testing"

	"github.com/genricoloni/rres/internal/domain"
	"go.uber.org/zap"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"RRES_FORCE_RES", "RRES_DISPLAY", "RRES_CARD", "RRES_GAMESCOPE"} {
		t.Setenv(key, "")
	}
}

func TestNewAppConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := NewAppConfig(zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ForcedResolution() != nil {
		t.Error("expected no forced resolution")
	}
	if cfg.DisplayIndex() != 0 {
		t.Errorf("expected display index 0, got %d", cfg.DisplayIndex())
	}
	if cfg.Card() != "" {
		t.Errorf("expected no card override, got %q", cfg.Card())
	}
	if cfg.GamescopeBin() != "gamescope" {
		t.Errorf("expected default gamescope binary, got %q", cfg.GamescopeBin())
	}
}

func TestNewAppConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("RRES_FORCE_RES", "2560x1440")
	t.Setenv("RRES_DISPLAY", "1")
	t.Setenv("RRES_CARD", "card1")
	t.Setenv("RRES_GAMESCOPE", "/opt/gamescope/bin/gamescope")

	cfg, err := NewAppConfig(zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	forced := cfg.ForcedResolution()
	if forced == nil || *forced != (domain.Resolution{Width: 2560, Height: 1440}) {
		t.Errorf("expected forced 2560x1440, got %v", forced)
	}
	if cfg.DisplayIndex() != 1 {
		t.Errorf("expected display index 1, got %d", cfg.DisplayIndex())
	}
	if cfg.Card() != "card1" {
		t.Errorf("expected card1, got %q", cfg.Card())
	}
	if cfg.GamescopeBin() != "/opt/gamescope/bin/gamescope" {
		t.Errorf("unexpected gamescope binary %q", cfg.GamescopeBin())
	}
}

func TestNewAppConfig_MalformedValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"Force Res Without Separator", "RRES_FORCE_RES", "2560-1440"},
		{"Force Res Bad Width", "RRES_FORCE_RES", "wx1440"},
		{"Force Res Bad Height", "RRES_FORCE_RES", "2560xh"},
		{"Display Not A Number", "RRES_DISPLAY", "first"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := NewAppConfig(zap.NewNop())
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.key == "RRES_FORCE_RES" && !errors.Is(err, domain.ErrBadResolution) {
				t.Errorf("error should wrap ErrBadResolution, got %v", err)
			}
		})
	}
}
