// Package config handles command-line and environment configuration for the
// multiverse command. Priority: CLI flags > environment variables > defaults.
//
// Child universes re-execute the binary with identical arguments and
// environment, so every universe parses the same configuration.
package config

import (
	"flag"
	"fmt"
	"io"

	apperrors "github.com/WhitingJarod/multiverse-random/internal/errors"
)

// EnvPrefix is prepended to every configuration environment variable.
const EnvPrefix = "MULTIVERSE_"

// AppConfig holds the full configuration of a multiverse command run.
type AppConfig struct {
	// Items are the candidate items, from positional arguments.
	Items []string
	// ItemsFile is a YAML file to load items from instead of arguments.
	ItemsFile string
	// Dice enables the 2d4+2 demonstration mode.
	Dice bool
	// Quiet suppresses everything except each universe's selected item.
	Quiet bool
	// Verbose enables debug logging across the whole fork tree.
	Verbose bool
	// NoColor disables colored output.
	NoColor bool
	// Theme selects the color theme ("dark", "light", "none").
	Theme string
}

// ParseConfig parses command-line arguments into an AppConfig and applies
// environment overrides for flags that were not set explicitly.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := AppConfig{Theme: "dark"}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.Usage = func() { printUsage(fs, programName, errWriter) }

	fs.StringVar(&cfg.ItemsFile, "file", "", "YAML file with the items to select from")
	fs.BoolVar(&cfg.Dice, "dice", false, "roll 2d4+2 across every universe")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "print only this universe's selected item")
	fs.BoolVar(&cfg.Quiet, "q", false, "shorthand for -quiet")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "debug logging for the whole fork tree")
	fs.BoolVar(&cfg.Verbose, "v", false, "shorthand for -verbose")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable colored output")
	fs.StringVar(&cfg.Theme, "theme", "dark", "color theme: dark, light or none")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)
	cfg.Items = fs.Args()

	if err := validate(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// validate rejects configurations that cannot select anything.
func validate(cfg AppConfig) error {
	if cfg.Dice && (len(cfg.Items) > 0 || cfg.ItemsFile != "") {
		return apperrors.NewConfigError("-dice cannot be combined with items")
	}
	if !cfg.Dice && len(cfg.Items) == 0 && cfg.ItemsFile == "" {
		return apperrors.NewConfigError("nothing to select from: pass items, -file or -dice")
	}
	switch cfg.Theme {
	case "dark", "light", "none":
	default:
		return apperrors.NewConfigError("unknown theme %q", cfg.Theme)
	}
	return nil
}

func printUsage(fs *flag.FlagSet, programName string, w io.Writer) {
	fmt.Fprintf(w, "Usage: %s [flags] [item ...]\n\n", programName)
	fmt.Fprintf(w, "Selects one of the given items in every universe: the program continues\n")
	fmt.Fprintf(w, "once per item, each continuation in its own process.\n\nFlags:\n")
	fs.PrintDefaults()
	fmt.Fprintf(w, "\nEnvironment:\n")
	fmt.Fprintf(w, "  %sFILE, %sDICE, %sQUIET, %sVERBOSE, %sNO_COLOR, %sTHEME\n",
		EnvPrefix, EnvPrefix, EnvPrefix, EnvPrefix, EnvPrefix, EnvPrefix)
	fmt.Fprintf(w, "  %sLOG sets the log level directly (debug, info, ...)\n", EnvPrefix)
}
