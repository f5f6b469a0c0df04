// Package kms reads display state from DRM/KMS device nodes.
package kms

import (
	"fmt"
	"os"

	"github.com/NeowayLabs/drm"
	"github.com/NeowayLabs/drm/mode"
)

// Device is the control interface of one open DRM card node.
// This abstraction allows us to mock the kernel interface in tests.
//
//go:generate mockgen -destination=mocks/device_mock.go -package=mocks github.com/genricoloni/rres/internal/kms Device
type Device interface {
	// Driver returns the name of the kernel driver backing the card
	// (e.g. "amdgpu", "i915").
	Driver() (string, error)

	// Resources returns the card's resource handle table.
	Resources() (*mode.Resources, error)

	// Connector fetches full info for one connector handle.
	Connector(id uint32) (*mode.Connector, error)

	// Encoder fetches info for one encoder handle.
	Encoder(id uint32) (*mode.Encoder, error)

	// Crtc fetches info for one CRTC handle.
	Crtc(id uint32) (*mode.Crtc, error)

	// Close releases the card node.
	Close() error
}

// cardDevice is the real implementation over an open /dev/dri/cardN file.
type cardDevice struct {
	file *os.File
}

// Open opens a card node read/write for the duration of one query.
func Open(path string) (Device, error) {
	file, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return &cardDevice{file: file}, nil
}

// Driver returns the kernel driver name via the DRM version ioctl.
func (d *cardDevice) Driver() (string, error) {
	version, err := drm.GetVersion(d.file)
	if err != nil {
		return "", fmt.Errorf("failed to get driver version: %w", err)
	}
	return version.Name, nil
}

// Resources returns the card's resource handle table.
func (d *cardDevice) Resources() (*mode.Resources, error) {
	return mode.GetResources(d.file)
}

// Connector fetches full info for one connector handle.
func (d *cardDevice) Connector(id uint32) (*mode.Connector, error) {
	return mode.GetConnector(d.file, id)
}

// Encoder fetches info for one encoder handle.
func (d *cardDevice) Encoder(id uint32) (*mode.Encoder, error) {
	return mode.GetEncoder(d.file, id)
}

// Crtc fetches info for one CRTC handle.
func (d *cardDevice) Crtc(id uint32) (*mode.Crtc, error) {
	return mode.GetCrtc(d.file, id)
}

// Close releases the card node.
func (d *cardDevice) Close() error {
	return d.file.Close()
}
