package kms

import (
	"fmt"

	"github.com/NeowayLabs/drm/mode"
	"github.com/genricoloni/rres/internal/domain"
	"go.uber.org/zap"
)

// Resolver turns one card's connector state into display modes.
type Resolver struct {
	logger *zap.Logger
}

// NewResolver creates a mode resolver.
func NewResolver(logger *zap.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// Modes returns one DisplayMode per connected connector on the card, in
// connector enumeration order. It fails with ErrResourceQuery when the
// resource handle table cannot be read; a single connector failing (state
// race, empty mode list) is logged and skipped, the rest still resolve.
func (r *Resolver) Modes(dev Device, cardName string) ([]domain.DisplayMode, error) {
	resources, err := dev.Resources()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrResourceQuery, err)
	}

	var displays []domain.DisplayMode
	for _, handle := range resources.Connectors {
		connector, err := dev.Connector(handle)
		if err != nil {
			return nil, fmt.Errorf("failed to get connector %d: %w", handle, err)
		}
		if connector.Connection != mode.Connected {
			continue
		}

		display, err := r.connectorMode(dev, connector, cardName)
		if err != nil {
			r.logger.Warn("Skipping connector",
				zap.String("card", cardName),
				zap.String("connector", connectorName(connector.Type, connector.TypeID)),
				zap.Error(err))
			continue
		}
		displays = append(displays, display)
	}

	return displays, nil
}

// connectorMode resolves the active mode of a connected connector by walking
// current encoder -> CRTC -> programmed mode. When any link is missing it
// substitutes the connector's first listed (native/preferred) mode: NVIDIA's
// driver never exposes the active encoder/CRTC association, even with a
// display connected and lit.
func (r *Resolver) connectorMode(dev Device, connector *mode.Connector, cardName string) (domain.DisplayMode, error) {
	name := connectorName(connector.Type, connector.TypeID)

	// The connector may have dropped off between enumeration and now.
	if connector.Connection != mode.Connected {
		return domain.DisplayMode{}, fmt.Errorf("%w: %s", domain.ErrDisconnected, name)
	}

	if current, ok := r.currentMode(dev, connector); ok {
		r.logger.Debug("Found display",
			zap.String("card", cardName),
			zap.String("connector", name),
			zap.Uint16("width", current.Hdisplay),
			zap.Uint16("height", current.Vdisplay))

		return domain.DisplayMode{
			Resolution: domain.Resolution{
				Width:  int(current.Hdisplay),
				Height: int(current.Vdisplay),
			},
			Card:      cardName,
			Connector: name,
			Origin:    domain.OriginCurrent,
		}, nil
	}

	if len(connector.Modes) == 0 {
		return domain.DisplayMode{}, fmt.Errorf("connector %s exposes no modes", name)
	}

	r.logger.Warn("Could not detect current mode for display, reading native resolution",
		zap.String("card", cardName),
		zap.String("connector", name))

	native := connector.Modes[0]
	return domain.DisplayMode{
		Resolution: domain.Resolution{
			Width:  int(native.Hdisplay),
			Height: int(native.Vdisplay),
		},
		Card:      cardName,
		Connector: name,
		Origin:    domain.OriginNative,
	}, nil
}

// currentMode walks the encoder/CRTC chain step by step and reports whether
// an active mode is actually programmed.
func (r *Resolver) currentMode(dev Device, connector *mode.Connector) (mode.Info, bool) {
	if connector.EncoderID == 0 {
		return mode.Info{}, false
	}
	encoder, err := dev.Encoder(connector.EncoderID)
	if err != nil {
		r.logger.Debug("Failed to get encoder",
			zap.Uint32("encoder", connector.EncoderID),
			zap.Error(err))
		return mode.Info{}, false
	}

	if encoder.CrtcID == 0 {
		return mode.Info{}, false
	}
	crtc, err := dev.Crtc(encoder.CrtcID)
	if err != nil {
		r.logger.Debug("Failed to get crtc",
			zap.Uint32("crtc", encoder.CrtcID),
			zap.Error(err))
		return mode.Info{}, false
	}

	if crtc.ModeValid == 0 {
		return mode.Info{}, false
	}
	return crtc.Mode, true
}
