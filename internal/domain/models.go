package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Resolution is a display size in pixels.
type Resolution struct {
	Width  int
	Height int
}

// String formats the resolution as WIDTHxHEIGHT, the same shape
// RRES_FORCE_RES accepts.
func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// ParseResolution parses a WIDTHxHEIGHT string such as "2560x1440".
func ParseResolution(s string) (Resolution, error) {
	w, h, ok := strings.Cut(s, "x")
	if !ok {
		return Resolution{}, fmt.Errorf("%w: %q is not WIDTHxHEIGHT", ErrBadResolution, s)
	}

	width, err := strconv.Atoi(w)
	if err != nil {
		return Resolution{}, fmt.Errorf("%w: bad width in %q", ErrBadResolution, s)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return Resolution{}, fmt.Errorf("%w: bad height in %q", ErrBadResolution, s)
	}

	return Resolution{Width: width, Height: height}, nil
}

// ModeOrigin records how a display's mode was determined.
type ModeOrigin int

const (
	// OriginCurrent means the mode was read from the connector's active CRTC.
	OriginCurrent ModeOrigin = iota
	// OriginNative means the active mode could not be determined and the
	// connector's native (first listed) mode was substituted. Some drivers,
	// notably NVIDIA's, never expose the encoder/CRTC association even while
	// a display is lit.
	OriginNative
)

func (o ModeOrigin) String() string {
	switch o {
	case OriginCurrent:
		return "current"
	case OriginNative:
		return "native"
	default:
		return "unknown"
	}
}

// DisplayMode is the resolved resolution of one connected display.
type DisplayMode struct {
	// Resolution of the display.
	Resolution Resolution
	// Card is the device node name the display hangs off, e.g. "card0".
	Card string
	// Connector is the human-readable connector name, e.g. "HDMI-A-1".
	Connector string
	// Origin tells whether this is the active mode or a native-mode fallback.
	Origin ModeOrigin
}
