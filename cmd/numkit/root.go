package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/numkit/internal/config"
	"github.com/alexisbeaulieu97/numkit/internal/logger"
)

type rootFlags struct {
	verbose   bool
	logFormat string
}

// appState bundles what every command needs once flags are parsed.
type appState struct {
	settings config.Settings
	log      *logger.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &appState{log: logger.Nop()}

	cmd := &cobra.Command{
		Use:           "numkit",
		Short:         "numkit validates, steps and maps high-precision numeric values",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(cmd, flags)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "Log format: json or console (default: console on a terminal, json otherwise)")

	cmd.AddCommand(newValidateCmd(app))
	cmd.AddCommand(newPositionCmd(app))
	cmd.AddCommand(newSeekCmd(app))
	cmd.AddCommand(newStepCmd(app))
	cmd.AddCommand(newSnapCmd(app))
	cmd.AddCommand(newFormatCmd(app))
	cmd.AddCommand(newFieldsCmd(app))
	cmd.AddCommand(newPlaygroundCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (a *appState) init(cmd *cobra.Command, flags *rootFlags) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return newCommandError("start", "reading NUMKIT_* environment variables", err, "Fix or unset the offending variable.")
	}

	level := settings.LogLevel
	if flags.verbose {
		level = "debug"
	}

	format := settings.LogFormat
	if flags.logFormat != "" {
		format = flags.logFormat
	}
	if format == "" {
		format = "json"
		if isTerminal(cmd.ErrOrStderr()) {
			format = "console"
		}
	}

	log, err := logger.New(logger.Options{Level: level, Format: format, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return newCommandError("start", "configuring logging", err, "Use --log-format json or --log-format console.")
	}

	a.settings = settings
	a.log = log.With("command", cmd.Name())
	return nil
}

func isTerminal(stream any) bool {
	if file, ok := stream.(*os.File); ok {
		return termIsTerminal(int(file.Fd()))
	}
	return false
}

var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}
