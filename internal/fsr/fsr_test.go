package fsr

import (
	"errors"
	"math"
	"testing"

	"github.com/genricoloni/rres/internal/domain"
)

// TestDerive_Presets pins every entry of the calibrated table.
func TestDerive_Presets(t *testing.T) {
	tests := []struct {
		target domain.Resolution
		tier   Tier
		want   domain.Resolution
	}{
		{domain.Resolution{Width: 1920, Height: 1080}, TierUltra, domain.Resolution{Width: 1477, Height: 831}},
		{domain.Resolution{Width: 1920, Height: 1080}, TierQuality, domain.Resolution{Width: 1280, Height: 720}},
		{domain.Resolution{Width: 1920, Height: 1080}, TierBalanced, domain.Resolution{Width: 1129, Height: 635}},
		{domain.Resolution{Width: 1920, Height: 1080}, TierPerformance, domain.Resolution{Width: 960, Height: 540}},

		{domain.Resolution{Width: 2560, Height: 1440}, TierUltra, domain.Resolution{Width: 1970, Height: 1108}},
		{domain.Resolution{Width: 2560, Height: 1440}, TierQuality, domain.Resolution{Width: 1706, Height: 960}},
		{domain.Resolution{Width: 2560, Height: 1440}, TierBalanced, domain.Resolution{Width: 1506, Height: 847}},
		{domain.Resolution{Width: 2560, Height: 1440}, TierPerformance, domain.Resolution{Width: 1280, Height: 720}},

		{domain.Resolution{Width: 3440, Height: 1440}, TierUltra, domain.Resolution{Width: 2646, Height: 1108}},
		{domain.Resolution{Width: 3440, Height: 1440}, TierQuality, domain.Resolution{Width: 2293, Height: 960}},
		{domain.Resolution{Width: 3440, Height: 1440}, TierBalanced, domain.Resolution{Width: 2024, Height: 847}},
		{domain.Resolution{Width: 3440, Height: 1440}, TierPerformance, domain.Resolution{Width: 1720, Height: 720}},

		{domain.Resolution{Width: 3840, Height: 2160}, TierUltra, domain.Resolution{Width: 2954, Height: 1662}},
		{domain.Resolution{Width: 3840, Height: 2160}, TierQuality, domain.Resolution{Width: 2560, Height: 1440}},
		{domain.Resolution{Width: 3840, Height: 2160}, TierBalanced, domain.Resolution{Width: 2259, Height: 1270}},
		{domain.Resolution{Width: 3840, Height: 2160}, TierPerformance, domain.Resolution{Width: 1920, Height: 1080}},
	}

	for _, tt := range tests {
		got := Derive(tt.target, tt.tier)
		if got != tt.want {
			t.Errorf("Derive(%s, %s): expected %s, got %s", tt.target, tt.tier, tt.want, got)
		}
	}
}

// TestDerive_Formula verifies the floor(target/factor) fallback for targets
// outside the preset table, across all tiers.
func TestDerive_Formula(t *testing.T) {
	factors := map[Tier]float64{
		TierUltra:       1.3,
		TierQuality:     1.5,
		TierBalanced:    1.7,
		TierPerformance: 2.0,
	}

	targets := []domain.Resolution{
		{Width: 1366, Height: 768},
		{Width: 1280, Height: 1024},
		{Width: 5120, Height: 1440},
		{Width: 800, Height: 600},
	}

	for _, target := range targets {
		for tier, f := range factors {
			want := domain.Resolution{
				Width:  int(math.Floor(float64(target.Width) / f)),
				Height: int(math.Floor(float64(target.Height) / f)),
			}
			if got := Derive(target, tier); got != want {
				t.Errorf("Derive(%s, %s): expected %s, got %s", target, tier, want, got)
			}
		}
	}

	// Worked example: 1366x768 at performance halves exactly.
	got := Derive(domain.Resolution{Width: 1366, Height: 768}, TierPerformance)
	if got != (domain.Resolution{Width: 683, Height: 384}) {
		t.Errorf("expected 683x384, got %s", got)
	}
}

// TestDerive_Unclamped documents that the formula path performs no minimum
// clamping: a pathologically small target derives a degenerate resolution.
func TestDerive_Unclamped(t *testing.T) {
	got := Derive(domain.Resolution{Width: 1, Height: 1}, TierPerformance)
	if got != (domain.Resolution{Width: 0, Height: 0}) {
		t.Errorf("expected degenerate 0x0, got %s", got)
	}
}

// TestDerive_Deterministic verifies repeated calls agree.
func TestDerive_Deterministic(t *testing.T) {
	target := domain.Resolution{Width: 1366, Height: 768}
	first := Derive(target, TierBalanced)
	for i := 0; i < 100; i++ {
		if got := Derive(target, TierBalanced); got != first {
			t.Fatalf("call %d diverged: %s vs %s", i, got, first)
		}
	}
}

func TestParseTier(t *testing.T) {
	tests := []struct {
		input   string
		want    Tier
		wantErr bool
	}{
		{"ultra", TierUltra, false},
		{"Ultra", TierUltra, false},
		{"QUALITY", TierQuality, false},
		{"balanced", TierBalanced, false},
		{"PeRfOrMaNcE", TierPerformance, false},
		{"native", 0, true}, // handled by the caller, never a tier
		{"", 0, true},
		{"potato", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseTier(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseTier(%q): expected error, got %v", tt.input, got)
			} else if !errors.Is(err, domain.ErrBadTier) {
				t.Errorf("ParseTier(%q): error should wrap ErrBadTier, got %v", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTier(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTier(%q): expected %s, got %s", tt.input, tt.want, got)
		}
	}
}
