// Package query composes card enumeration and mode resolution into the
// display listing the CLI consumes.
package query

import (
	"fmt"
	"path/filepath"

	"github.com/genricoloni/rres/internal/card"
	"github.com/genricoloni/rres/internal/domain"
	"github.com/genricoloni/rres/internal/kms"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Service is the display query facade. One bad GPU or driver must not block
// resolution detection on a working one, so per-card failures are absorbed
// with a diagnostic and the scan continues.
type Service struct {
	logger   *zap.Logger
	cards    *card.Enumerator
	resolver *kms.Resolver

	// open is swappable so tests can hand back mock devices per path.
	open func(path string) (kms.Device, error)
}

// NewService creates the query facade over the default card enumerator and
// mode resolver.
func NewService(logger *zap.Logger, cards *card.Enumerator, resolver *kms.Resolver) *Service {
	return &Service{
		logger:   logger,
		cards:    cards,
		resolver: resolver,
		open:     kms.Open,
	}
}

// ListDisplays returns every connected display across the scanned cards, in
// ascending card order then connector enumeration order. An invalid selector
// is fatal; a card whose device cannot be opened or whose resources cannot
// be read is logged and skipped.
func (s *Service) ListDisplays(selector string) ([]domain.DisplayMode, error) {
	paths, err := s.cards.Cards(selector)
	if err != nil {
		return nil, err
	}

	var displays []domain.DisplayMode
	var skipped error
	for _, path := range paths {
		modes, err := s.cardDisplays(path)
		if err != nil {
			s.logger.Error("failed to read modes",
				zap.String("card", filepath.Base(path)),
				zap.Error(err))
			skipped = multierr.Append(skipped, err)
			continue
		}
		displays = append(displays, modes...)
	}

	if len(displays) == 0 && skipped != nil {
		// Nothing found and at least one card was skipped: surface the
		// absorbed failures once so the empty result is explainable.
		s.logger.Warn("No displays found, some cards were skipped", zap.Error(skipped))
	}

	return displays, nil
}

// cardDisplays opens one card node, identifies its driver and resolves its
// connected displays. The handle never outlives the call.
func (s *Service) cardDisplays(path string) ([]domain.DisplayMode, error) {
	dev, err := s.open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := dev.Close(); err != nil {
			s.logger.Warn("Failed to close card", zap.String("path", path), zap.Error(err))
		}
	}()

	name := filepath.Base(path)

	if driver, err := dev.Driver(); err == nil {
		s.logger.Debug("Found GPU",
			zap.String("card", name),
			zap.String("driver", driver))
	}

	return s.resolver.Modes(dev, name)
}

// Display returns the display at the given index of ListDisplays.
func (s *Service) Display(index int, selector string) (domain.DisplayMode, error) {
	displays, err := s.ListDisplays(selector)
	if err != nil {
		return domain.DisplayMode{}, err
	}
	if len(displays) == 0 {
		return domain.DisplayMode{}, domain.ErrNoDisplays
	}
	if index < 0 || index >= len(displays) {
		return domain.DisplayMode{}, fmt.Errorf("%w: %d (found %d displays)",
			domain.ErrIndexOutOfRange, index, len(displays))
	}
	return displays[index], nil
}
