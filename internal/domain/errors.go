package domain

import "errors"

// Sentinel errors for the query pipeline. Callers branch with errors.Is;
// the concrete messages carry the offending value via fmt.Errorf wrapping.
var (
	// ErrInvalidCard means a card selector does not exist under /dev/dri or
	// does not follow the cardN naming convention.
	ErrInvalidCard = errors.New("invalid card")

	// ErrResourceQuery means a device's resource handle table could not be
	// read. Non-fatal at the query level: the card is skipped.
	ErrResourceQuery = errors.New("failed to get resource handles")

	// ErrDisconnected means a connector changed state between enumeration
	// and mode resolution. Non-fatal: only that connector is skipped.
	ErrDisconnected = errors.New("connector is disconnected")

	// ErrNoDisplays means a query completed without finding any connected
	// display across all scanned cards.
	ErrNoDisplays = errors.New("no display connected")

	// ErrIndexOutOfRange means the requested display index exceeds the
	// number of discovered displays.
	ErrIndexOutOfRange = errors.New("invalid display index")

	// ErrBadResolution means a WIDTHxHEIGHT string could not be parsed.
	ErrBadResolution = errors.New("failed to parse resolution")

	// ErrBadTier means an FSR quality tier string is not one of
	// ultra/quality/balanced/performance.
	ErrBadTier = errors.New("invalid FSR mode")
)
