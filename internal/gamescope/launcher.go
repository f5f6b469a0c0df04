// Package gamescope builds and runs the compositor invocation for a
// detected display resolution, optionally with FSR upscaling.
package gamescope

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/genricoloni/rres/internal/config"
	"github.com/genricoloni/rres/internal/domain"
	"github.com/genricoloni/rres/internal/fsr"
	"go.uber.org/zap"
)

// Launcher spawns gamescope with resolution arguments.
type Launcher struct {
	logger *zap.Logger
	bin    string
}

// NewLauncher creates a launcher for the configured compositor binary.
func NewLauncher(logger *zap.Logger, cfg *config.AppConfig) *Launcher {
	return &Launcher{
		logger: logger,
		bin:    cfg.GamescopeBin(),
	}
}

// Args builds the gamescope resolution arguments for the target resolution.
// An empty or "native" fsrMode produces only the output size (-W/-H); a
// quality tier adds -U and the derived render size (-w/-h).
func (l *Launcher) Args(fsrMode string, target domain.Resolution) ([]string, error) {
	args := []string{
		"-W", strconv.Itoa(target.Width),
		"-H", strconv.Itoa(target.Height),
	}

	if fsrMode == "" || strings.EqualFold(fsrMode, "native") {
		return args, nil
	}

	tier, err := fsr.ParseTier(fsrMode)
	if err != nil {
		return nil, err
	}

	render := fsr.Derive(target, tier)
	args = append(args,
		"-U",
		"-w", strconv.Itoa(render.Width),
		"-h", strconv.Itoa(render.Height),
	)
	return args, nil
}

// Run spawns the compositor with the resolution arguments followed by the
// pass-through args, inheriting stdio, and blocks until it exits.
func (l *Launcher) Run(ctx context.Context, fsrMode string, target domain.Resolution, passthrough []string) error {
	args, err := l.Args(fsrMode, target)
	if err != nil {
		return err
	}
	args = append(args, passthrough...)

	l.logger.Info("Running gamescope",
		zap.String("bin", l.bin),
		zap.Strings("args", args))

	cmd := exec.CommandContext(ctx, l.bin, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to run %s: %w", l.bin, err)
	}
	return nil
}
