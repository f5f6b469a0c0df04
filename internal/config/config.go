package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/genricoloni/rres/internal/domain"
	"go.uber.org/zap"
)

const defaultGamescopeBin = "gamescope"

// AppConfig holds the environment-driven overrides.
type AppConfig struct {
	logger       *zap.Logger
	forcedRes    *domain.Resolution
	displayIndex int
	card         string
	gamescopeBin string
}

// NewAppConfig reads the RRES_* environment variables. Malformed values for
// RRES_FORCE_RES and RRES_DISPLAY are fatal: they are caller input errors,
// never absorbed.
func NewAppConfig(logger *zap.Logger) (*AppConfig, error) {
	cfg := &AppConfig{
		logger:       logger,
		gamescopeBin: defaultGamescopeBin,
	}

	if forced := os.Getenv("RRES_FORCE_RES"); forced != "" {
		res, err := domain.ParseResolution(forced)
		if err != nil {
			return nil, fmt.Errorf("failed to parse RRES_FORCE_RES: %w", err)
		}
		cfg.forcedRes = &res
	}

	if sel := os.Getenv("RRES_DISPLAY"); sel != "" {
		index, err := strconv.Atoi(sel)
		if err != nil {
			return nil, fmt.Errorf("failed to parse RRES_DISPLAY: %w", err)
		}
		cfg.displayIndex = index
	}

	cfg.card = os.Getenv("RRES_CARD")

	if bin := os.Getenv("RRES_GAMESCOPE"); bin != "" {
		cfg.gamescopeBin = bin
	}

	logger.Debug("Configuration loaded",
		zap.Bool("forcedRes", cfg.forcedRes != nil),
		zap.Int("displayIndex", cfg.displayIndex),
		zap.String("card", cfg.card),
		zap.String("gamescopeBin", cfg.gamescopeBin))

	return cfg, nil
}

// ForcedResolution returns the RRES_FORCE_RES override, or nil when the
// resolution should be detected from the hardware.
func (c *AppConfig) ForcedResolution() *domain.Resolution {
	return c.forcedRes
}

// DisplayIndex returns the display selected by RRES_DISPLAY (default 0).
func (c *AppConfig) DisplayIndex() int {
	return c.displayIndex
}

// Card returns the RRES_CARD device selection override, empty for all cards.
func (c *AppConfig) Card() string {
	return c.card
}

// GamescopeBin returns the compositor binary to launch for -g.
func (c *AppConfig) GamescopeBin() string {
	return c.gamescopeBin
}
