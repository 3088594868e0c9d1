package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/numkit/internal/rangestep"
)

func newSnapCmd(app *appState) *cobra.Command {
	opts := &rangeFlags{}

	cmd := &cobra.Command{
		Use:       "snap home|end",
		Short:     "Print the range minimum (home) or maximum (end)",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"home", "end", "min", "max"},
		RunE: func(cmd *cobra.Command, args []string) error {
			which, err := rangestep.ParseBoundary(args[0])
			if err != nil {
				return newCommandError("snap", "reading the boundary", err, "Use home or end.")
			}

			t, err := opts.resolve(cmd, app)
			if err != nil {
				return newCommandError("snap", "resolving the range", err, "Check --min, --max, --step and --scale, or the selected field.")
			}

			value, err := t.snap(which)
			if err != nil {
				return newCommandError("snap", fmt.Sprintf("re-validating the %s boundary", args[0]), err, suggestionFor(err))
			}

			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}

	opts.register(cmd)

	return cmd
}
