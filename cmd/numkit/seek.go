package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newSeekCmd(app *appState) *cobra.Command {
	opts := &rangeFlags{}

	cmd := &cobra.Command{
		Use:   "seek <percent>",
		Short: "Map a slider position to a value snapped to the step",
		Example: `  numkit seek 25 --min 0 --max 10 --step 0.1 --precision 2
  numkit seek 50% --config fields.yaml --field gain`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pct, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(args[0]), "%"), 64)
			if err != nil {
				return newCommandError("seek", fmt.Sprintf("reading position %q", args[0]), err, "Pass a percentage between 0 and 100.")
			}

			t, err := opts.resolve(cmd, app)
			if err != nil {
				return newCommandError("seek", "resolving the range", err, "Check --min, --max, --step and --scale, or the selected field.")
			}

			value, err := t.seek(pct)
			if err != nil {
				return newCommandError("seek", fmt.Sprintf("re-validating the value at %s%%", args[0]), err, suggestionFor(err))
			}

			app.log.Debug("seek", "percent", pct, "value", value)
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}

	opts.register(cmd)

	return cmd
}
