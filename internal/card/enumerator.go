// Package card lists the DRM card nodes a query should scan.
package card

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/genricoloni/rres/internal/domain"
	"go.uber.org/zap"
)

const (
	// DefaultDir is where the kernel exposes DRM device nodes.
	DefaultDir = "/dev/dri"
	// Prefix distinguishes card nodes from render nodes (renderD128...).
	Prefix = "card"
)

// Enumerator lists candidate card nodes under a device directory.
type Enumerator struct {
	logger *zap.Logger
	dir    string
}

// NewEnumerator creates an enumerator over /dev/dri.
func NewEnumerator(logger *zap.Logger) *Enumerator {
	return NewEnumeratorAt(logger, DefaultDir)
}

// NewEnumeratorAt creates an enumerator over an alternate device directory.
func NewEnumeratorAt(logger *zap.Logger, dir string) *Enumerator {
	return &Enumerator{
		logger: logger,
		dir:    dir,
	}
}

// Cards returns the paths of the card nodes to scan. With a selector
// ("card0") the result is that single card, validated to exist and to follow
// the naming convention; otherwise every cardN node in the directory,
// lexicographically sorted so card0 comes before card1.
func (e *Enumerator) Cards(selector string) ([]string, error) {
	if selector != "" {
		path := filepath.Join(e.dir, selector)
		if _, err := os.Stat(path); err != nil || !strings.HasPrefix(selector, Prefix) {
			return nil, fmt.Errorf("%w (%s)", domain.ErrInvalidCard, selector)
		}
		return []string{path}, nil
	}

	entries, err := os.ReadDir(e.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", e.dir, err)
	}

	var cards []string
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), Prefix) {
			cards = append(cards, filepath.Join(e.dir, entry.Name()))
		}
	}
	sort.Strings(cards)

	e.logger.Debug("Enumerated card nodes",
		zap.String("dir", e.dir),
		zap.Int("count", len(cards)))

	return cards, nil
}
