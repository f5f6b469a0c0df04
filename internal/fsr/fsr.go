// Package fsr derives FSR render resolutions from a target resolution and a
// quality tier, for handing to gamescope's -w/-h upscaling flags.
package fsr

import (
	"fmt"
	"math"
	"strings"

	"github.com/genricoloni/rres/internal/domain"
)

// Tier is an FSR quality preset trading render cost for image fidelity.
type Tier int

const (
	// TierUltra renders at 1.3x downscale per axis.
	TierUltra Tier = iota
	// TierQuality renders at 1.5x downscale per axis.
	TierQuality
	// TierBalanced renders at 1.7x downscale per axis.
	TierBalanced
	// TierPerformance renders at 2.0x downscale per axis.
	TierPerformance
)

func (t Tier) String() string {
	switch t {
	case TierUltra:
		return "ultra"
	case TierQuality:
		return "quality"
	case TierBalanced:
		return "balanced"
	case TierPerformance:
		return "performance"
	default:
		return "unknown"
	}
}

// ParseTier parses a quality tier name, case-insensitively. "native" is not
// a tier: callers treat it as "no upscaling" before ever calling ParseTier.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(s) {
	case "ultra":
		return TierUltra, nil
	case "quality":
		return TierQuality, nil
	case "balanced":
		return TierBalanced, nil
	case "performance":
		return TierPerformance, nil
	default:
		return 0, fmt.Errorf("%w: %q", domain.ErrBadTier, s)
	}
}

// factor is the per-axis downscale divisor for the formula fallback.
func (t Tier) factor() float64 {
	switch t {
	case TierUltra:
		return 1.3
	case TierQuality:
		return 1.5
	case TierBalanced:
		return 1.7
	default:
		return 2.0
	}
}

// presets holds calibrated render resolutions for the common display sizes
// where the plain divisor formula gives visually suboptimal results.
var presets = map[domain.Resolution][4]domain.Resolution{
	{Width: 1920, Height: 1080}: {
		TierUltra:       {Width: 1477, Height: 831},
		TierQuality:     {Width: 1280, Height: 720},
		TierBalanced:    {Width: 1129, Height: 635},
		TierPerformance: {Width: 960, Height: 540},
	},
	{Width: 2560, Height: 1440}: {
		TierUltra:       {Width: 1970, Height: 1108},
		TierQuality:     {Width: 1706, Height: 960},
		TierBalanced:    {Width: 1506, Height: 847},
		TierPerformance: {Width: 1280, Height: 720},
	},
	{Width: 3440, Height: 1440}: {
		TierUltra:       {Width: 2646, Height: 1108},
		TierQuality:     {Width: 2293, Height: 960},
		TierBalanced:    {Width: 2024, Height: 847},
		TierPerformance: {Width: 1720, Height: 720},
	},
	{Width: 3840, Height: 2160}: {
		TierUltra:       {Width: 2954, Height: 1662},
		TierQuality:     {Width: 2560, Height: 1440},
		TierBalanced:    {Width: 2259, Height: 1270},
		TierPerformance: {Width: 1920, Height: 1080},
	},
}

// Derive computes the render resolution for a target resolution at the given
// tier. Known standard targets come from the preset table; anything else is
// floor(target/factor) per axis. The formula result is deliberately not
// clamped, so a degenerate target can derive a 0x0 render resolution.
func Derive(target domain.Resolution, tier Tier) domain.Resolution {
	if preset, ok := presets[target]; ok {
		return preset[tier]
	}

	f := tier.factor()
	return domain.Resolution{
		Width:  int(math.Floor(float64(target.Width) / f)),
		Height: int(math.Floor(float64(target.Height) / f)),
	}
}
