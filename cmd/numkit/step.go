package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/numkit/internal/rangestep"
)

type stepOptions struct {
	rangeFlags
	down     bool
	modifier string
	times    int
}

func newStepCmd(app *appState) *cobra.Command {
	opts := &stepOptions{}

	cmd := &cobra.Command{
		Use:   "step <current>",
		Short: "Step a value up or down by the range's increment",
		Example: `  numkit step 5.00 --min 0 --max 10 --step 0.1 --precision 2
  numkit step 5.00 --down --modifier shift --config fields.yaml --field price`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStep(cmd, app, opts, args[0])
		},
	}

	opts.rangeFlags.register(cmd)
	cmd.Flags().BoolVarP(&opts.down, "down", "d", false, "Step down instead of up")
	cmd.Flags().StringVarP(&opts.modifier, "modifier", "m", "none", "Step size modifier: none, shift or ctrl")
	cmd.Flags().IntVarP(&opts.times, "times", "n", 1, "Number of steps to take")

	return cmd
}

func runStep(cmd *cobra.Command, app *appState, opts *stepOptions, current string) error {
	mod, err := rangestep.ParseModifier(opts.modifier)
	if err != nil {
		return newCommandError("step", "reading --modifier", err, "Use none, shift or ctrl.")
	}
	if opts.times < 1 {
		return newCommandError("step", "reading --times", fmt.Errorf("times must be at least 1, got %d", opts.times), "Pass a positive step count.")
	}

	t, err := opts.resolve(cmd, app)
	if err != nil {
		return newCommandError("step", "resolving the range", err, "Check --min, --max, --step and --scale, or the selected field.")
	}

	value := current
	for i := 0; i < opts.times; i++ {
		value, err = t.adjust(value, mod, opts.down)
		if err != nil {
			return newCommandError("step", fmt.Sprintf("stepping %q", current), err, suggestionFor(err))
		}
	}

	app.log.Debug("stepped", "from", current, "to", value, "modifier", mod.String(), "down", opts.down, "times", opts.times)
	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}
