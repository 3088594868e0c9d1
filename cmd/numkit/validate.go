package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/numkit/internal/precision"
)

type validateOptions struct {
	fieldFlags
	classFlags
}

func newValidateCmd(app *appState) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate <value>",
		Short: "Check a value against a precision class and print its canonical form",
		Example: `  numkit validate 18,446,744,073,709,551,615 --class u64
  numkit validate --class i128 -- -170141183460469231731687303715884105728
  numkit validate 3.14 --config fields.yaml --field price`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, app, opts, args[0])
		},
	}

	opts.fieldFlags.register(cmd)
	opts.classFlags.register(cmd)

	return cmd
}

func runValidate(cmd *cobra.Command, app *appState, opts *validateOptions, raw string) error {
	class, _, err := resolveClass(cmd, app, &opts.fieldFlags, &opts.classFlags)
	if err != nil {
		return newCommandError("validate", "resolving the precision class", err, "Pass --class (for example --class u64) or select a field with --config and --field.")
	}

	canonical, err := precision.Validate(raw, class)
	if err != nil {
		app.log.Debug("value rejected", "class", class.String(), "input", raw, "error", err)
		return newCommandError("validate", fmt.Sprintf("checking %q against %s", raw, class), err, suggestionFor(err))
	}

	app.log.Debug("value accepted", "class", class.String(), "canonical", canonical)
	fmt.Fprintln(cmd.OutOrStdout(), canonical)
	return nil
}
