// Package app wires configuration, selection and presentation into the
// multiverse command. Run executes once per universe: the binary re-executes
// itself for every branch of the fork tree, so everything before the first
// selection call must behave identically in every universe.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	multiverse "github.com/WhitingJarod/multiverse-random"
	"github.com/WhitingJarod/multiverse-random/internal/cli"
	"github.com/WhitingJarod/multiverse-random/internal/config"
	apperrors "github.com/WhitingJarod/multiverse-random/internal/errors"
	"github.com/WhitingJarod/multiverse-random/internal/logging"
	"github.com/WhitingJarod/multiverse-random/internal/ui"
)

// Application represents the multiverse command instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "multiverse"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	return &Application{Config: cfg, ErrWriter: errWriter}, nil
}

// Run executes the command in this universe and returns its exit code.
// Universes exit independently; the code describes this process only.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	a.setupLogging()
	ui.InitTheme(a.Config.NoColor, a.Config.Theme)

	if a.Config.Dice {
		return a.runDice(out)
	}
	return a.runPick(out)
}

// setupLogging configures the level for this universe and, through the
// environment, for every universe spawned below it.
func (a *Application) setupLogging() {
	switch {
	case a.Config.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		if os.Getenv(logging.EnvLogLevel) == "" {
			os.Setenv(logging.EnvLogLevel, "debug")
		}
	case a.Config.Quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// runPick selects among the configured items; each universe reports its own.
func (a *Application) runPick(out io.Writer) int {
	items := a.Config.Items
	if a.Config.ItemsFile != "" {
		loaded, err := config.LoadItemsFile(a.Config.ItemsFile)
		if err != nil {
			cli.DisplayError(a.ErrWriter, err)
			return apperrors.ExitErrorConfig
		}
		items = loaded
	}

	start := time.Now()
	item, err := multiverse.Pick(items)
	if err != nil {
		cli.DisplayError(a.ErrWriter, err)
		return exitCodeFor(err)
	}

	cli.DisplayResult(out, item, a.Config.Quiet)
	if a.Config.Verbose {
		cli.DisplayDiagnostics(a.ErrWriter, time.Since(start))
	}
	return apperrors.ExitSuccess
}

// runDice rolls 2d4+2 across every universe: two selections compose
// multiplicatively into sixteen universes, one per ordered pair of dice.
func (a *Application) runDice(out io.Writer) int {
	first, err := multiverse.PickInt(1, 4)
	if err != nil {
		cli.DisplayError(a.ErrWriter, err)
		return exitCodeFor(err)
	}
	second, err := multiverse.PickInt(1, 4)
	if err != nil {
		cli.DisplayError(a.ErrWriter, err)
		return exitCodeFor(err)
	}

	total := first + second + 2
	if total < 6 {
		cli.DisplayError(a.ErrWriter,
			errors.New("the result of 2d4+2 was not high enough, terminating"))
		return apperrors.ExitErrorGeneric
	}

	cli.DisplayDiceResult(out, total, a.Config.Quiet)
	return apperrors.ExitSuccess
}

// exitCodeFor maps a selection error onto this universe's exit status.
func exitCodeFor(err error) int {
	var emptyErr multiverse.EmptyInputError
	var forkErr multiverse.ForkError
	switch {
	case errors.As(err, &emptyErr):
		return apperrors.ExitErrorEmptyInput
	case errors.As(err, &forkErr):
		return apperrors.ExitErrorFork
	default:
		return apperrors.ExitErrorGeneric
	}
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
