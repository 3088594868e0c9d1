package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/numkit/internal/precision"
	"github.com/alexisbeaulieu97/numkit/internal/rangestep"
)

type positionOptions struct {
	rangeFlags
	digits int
}

func newPositionCmd(app *appState) *cobra.Command {
	opts := &positionOptions{}

	cmd := &cobra.Command{
		Use:   "position <value>",
		Short: "Print the slider position of a value as a percentage",
		Example: `  numkit position 5 --min 0 --max 10
  numkit position 100 --min 1 --max 10000 --scale log`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPosition(cmd, app, opts, args[0])
		},
	}

	opts.rangeFlags.register(cmd)
	cmd.Flags().IntVar(&opts.digits, "digits", 2, "Fractional digits of the printed percentage")

	return cmd
}

func runPosition(cmd *cobra.Command, app *appState, opts *positionOptions, raw string) error {
	t, err := opts.resolve(cmd, app)
	if err != nil {
		return newCommandError("compute position", "resolving the range", err, "Check --min, --max, --step and --scale, or the selected field.")
	}

	if t.class != nil {
		if _, err := precision.Validate(raw, t.class); err != nil {
			return newCommandError("compute position", fmt.Sprintf("checking %q against %s", raw, t.class), err, suggestionFor(err))
		}
	}

	pct := rangestep.Position(raw, t.spec)
	app.log.Debug("position computed", "input", raw, "percent", pct, "scale", t.spec.Scale.String())
	fmt.Fprintln(cmd.OutOrStdout(), rangestep.Format(pct, opts.digits))
	return nil
}
