package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/genricoloni/rres/internal/card"
	"github.com/genricoloni/rres/internal/config"
	"github.com/genricoloni/rres/internal/domain"
	"github.com/genricoloni/rres/internal/gamescope"
	"github.com/genricoloni/rres/internal/kms"
	"github.com/genricoloni/rres/internal/query"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const usage = `Usage: rres [options]

  -c, --card <card>       Specify a GPU (file existing in /dev/dri/, eg. card0)
  -m, --multi             Read all monitors. If this option is omitted, rres will
                          return the resolution of the first detected monitor
  -v, --verbose           Verbosity level. Can be specified multiple times, e.g. -v -v
  -q, --quiet             Lower verbosity level. Opposite to -v
  -h, --help              Show this help message
  -g, --gamescope <mode>  Gamescope mode. Also supports FSR upscaling
                          Supported modes are native, ultra, quality, balanced and performance

Environment variables:

  RRES_DISPLAY=<index>      Select display in single mode (starting at 0)
  RRES_FORCE_RES=RESXxRESY  Force a specific resolution to be detected
  RRES_CARD=<card>          Select a GPU (same as -c)
  RRES_GAMESCOPE=<path>     Specify a gamescope binary for -g

Wine Virtual Desktop example:

  wine "explorer /desktop=Game,$(rres)" game.exe

Gamescope usage:

  rres -g FSR_MODE -- GAMESCOPE_ARGS

  Example:
  rres -g ultra -- -f -- wine game.exe`

// cliOptions is the parsed command line.
type cliOptions struct {
	card         string
	multi        bool
	verbose      int
	quiet        int
	gamescope    string
	gamescopeSet bool
	passthrough  []string
}

// logLevel maps the -v/-q ladder onto zap levels. Default is Warn, each -v
// steps toward Debug and each -q toward Fatal.
func (o cliOptions) logLevel() zapcore.Level {
	level := zapcore.WarnLevel - zapcore.Level(o.verbose) + zapcore.Level(o.quiet)
	if level < zapcore.DebugLevel {
		level = zapcore.DebugLevel
	}
	if level > zapcore.FatalLevel {
		level = zapcore.FatalLevel
	}
	return level
}

// countFlag counts flag repetitions, so -v -v means more verbose.
type countFlag int

func (c *countFlag) String() string   { return strconv.Itoa(int(*c)) }
func (c *countFlag) Set(string) error { *c++; return nil }
func (c *countFlag) IsBoolFlag() bool { return true }

// parseArgs parses the command line; trailing arguments (typically after
// "--") are kept as pass-through args for gamescope.
func parseArgs(args []string) (cliOptions, error) {
	var opts cliOptions
	var verbose, quiet countFlag

	fs := flag.NewFlagSet("rres", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprintln(fs.Output(), usage) }
	fs.StringVar(&opts.card, "c", "", "GPU card to read")
	fs.StringVar(&opts.card, "card", "", "GPU card to read")
	fs.BoolVar(&opts.multi, "m", false, "read all monitors")
	fs.BoolVar(&opts.multi, "multi", false, "read all monitors")
	fs.Var(&verbose, "v", "increase verbosity")
	fs.Var(&verbose, "verbose", "increase verbosity")
	fs.Var(&quiet, "q", "decrease verbosity")
	fs.Var(&quiet, "quiet", "decrease verbosity")
	fs.StringVar(&opts.gamescope, "g", "", "gamescope FSR mode")
	fs.StringVar(&opts.gamescope, "gamescope", "", "gamescope FSR mode")

	if err := fs.Parse(args); err != nil {
		return cliOptions{}, err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "g" || f.Name == "gamescope" {
			opts.gamescopeSet = true
		}
	})

	opts.verbose = int(verbose)
	opts.quiet = int(quiet)
	opts.passthrough = fs.Args()
	return opts, nil
}

// newLogger creates a console zap logger at the verbosity the flags ask for.
func newLogger(opts cliOptions) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(opts.logLevel())
	return cfg.Build()
}

// newQuerier builds the display query facade.
func newQuerier(logger *zap.Logger, cards *card.Enumerator, resolver *kms.Resolver) domain.Querier {
	return query.NewService(logger, cards, resolver)
}

// newLauncher builds the gamescope launcher.
func newLauncher(logger *zap.Logger, cfg *config.AppConfig) domain.Launcher {
	return gamescope.NewLauncher(logger, cfg)
}

// AppOptions is the dependency graph; cliOptions must be supplied alongside.
var AppOptions = fx.Options(
	fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: log}
	}),
	fx.Provide(
		newLogger,
		config.NewAppConfig,
		card.NewEnumerator,
		kms.NewResolver,
		newQuerier,
		newLauncher,
	),
)

// run is the one-shot query: resolve the target resolution, then either list,
// print, or hand it to gamescope.
func run(opts cliOptions, cfg *config.AppConfig, querier domain.Querier, launcher domain.Launcher, logger *zap.Logger) error {
	selector := opts.card
	if selector == "" {
		selector = cfg.Card()
	}

	var target domain.Resolution
	if forced := cfg.ForcedResolution(); forced != nil {
		// Forced resolution bypasses all device querying.
		target = *forced
		logger.Debug("Using forced resolution", zap.String("res", target.String()))
	} else if opts.multi {
		displays, err := querier.ListDisplays(selector)
		if err != nil {
			return err
		}
		if len(displays) == 0 {
			return domain.ErrNoDisplays
		}
		for i, d := range displays {
			fmt.Printf("Display #%d: %s\n", i, d.Resolution)
		}
		return nil
	} else {
		display, err := querier.Display(cfg.DisplayIndex(), selector)
		if err != nil {
			return err
		}
		target = display.Resolution
	}

	if opts.gamescopeSet {
		return launcher.Run(context.Background(), opts.gamescope, target, opts.passthrough)
	}

	fmt.Println(target)
	return nil
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	app := fx.New(
		fx.Supply(opts),
		AppOptions,
		fx.Invoke(run),
	)

	if err := app.Err(); err != nil {
		// Hand a launched compositor's exit status through.
		var exit *exec.ExitError
		if errors.As(err, &exit) && exit.ExitCode() > 0 {
			os.Exit(exit.ExitCode())
		}
		fmt.Fprintln(os.Stderr, "rres:", err)
		os.Exit(1)
	}
}
