package main

import (
	"fmt"
	"os"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/numkit/internal/config"
	"github.com/alexisbeaulieu97/numkit/internal/tui"
)

type playgroundOptions struct {
	configPath string
	locale     string
}

// playgroundRunner is swapped in tests so no terminal is needed.
var playgroundRunner = func(model tea.Model) (tea.Model, error) {
	return tea.NewProgram(model, tea.WithAltScreen()).Run()
}

func newPlaygroundCmd(app *appState) *cobra.Command {
	opts := &playgroundOptions{}

	cmd := &cobra.Command{
		Use:   "playground",
		Short: "Open an interactive input and slider for every configured field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlayground(cmd, app, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Field definition file (default $NUMKIT_FIELDS)")
	cmd.Flags().StringVarP(&opts.locale, "locale", "l", "", "Locale for fields without one (default $NUMKIT_LOCALE)")

	return cmd
}

func runPlayground(cmd *cobra.Command, app *appState, opts *playgroundOptions) error {
	path := opts.configPath
	if path == "" {
		path = app.settings.FieldsFile
	}
	if path == "" {
		return newCommandError("start playground", "locating the definition file", fmt.Errorf("no definition file given"), "Pass --config or set NUMKIT_FIELDS.")
	}

	if !isTerminal(os.Stdin) {
		return newCommandError("start playground", "checking the terminal", fmt.Errorf("stdin is not a terminal"), "Run the playground from an interactive shell.")
	}

	file, err := config.Load(path)
	if err != nil {
		return newCommandError("start playground", fmt.Sprintf("loading %s", path), err, "Fix the errors shown above and try again.")
	}

	locale := app.settings.Locale
	if opts.locale != "" {
		locale = opts.locale
	}

	model, err := tui.NewModel(file, tui.Options{Locale: locale, Logger: app.log})
	if err != nil {
		return newCommandError("start playground", "building the fields", err, "Fix the field definition and try again.")
	}

	app.log.Info("playground started", "path", path, "fields", len(file.Fields))
	final, err := playgroundRunner(model)
	if err != nil {
		return newCommandError("run playground", "driving the terminal UI", err, "Retry in a terminal that supports the alternate screen.")
	}

	if m, ok := final.(tui.Model); ok {
		printValues(cmd, m.Values())
	}
	return nil
}

func printValues(cmd *cobra.Command, values map[string]string) {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", name, values[name])
	}
}
