package domain

import "context"

// Querier is the read-side facade over the system's GPUs.
// Implementations scan DRM device nodes and resolve connected displays.
type Querier interface {
	// ListDisplays returns one entry per connected display, in ascending
	// card order then connector enumeration order. selector restricts the
	// scan to a single card ("card0"); empty means every card.
	ListDisplays(selector string) ([]DisplayMode, error)

	// Display returns the display at the given index of ListDisplays.
	// Fails with ErrNoDisplays when nothing is connected at all and with
	// ErrIndexOutOfRange when the index exceeds the discovered count.
	Display(index int, selector string) (DisplayMode, error)
}

// Launcher spawns the downstream compositor with resolution arguments
// derived from the detected display.
type Launcher interface {
	// Run builds the compositor invocation for the target resolution and
	// FSR mode ("" or "native" disables upscaling), appends the
	// pass-through args, and blocks until the compositor exits.
	Run(ctx context.Context, fsrMode string, target Resolution, passthrough []string) error
}
