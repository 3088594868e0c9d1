package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/numkit/internal/format"
	"github.com/alexisbeaulieu97/numkit/internal/precision"
)

type formatOptions struct {
	fieldFlags
	classFlags
	locale string
}

func newFormatCmd(app *appState) *cobra.Command {
	opts := &formatOptions{}

	cmd := &cobra.Command{
		Use:   "format <value>",
		Short: "Render a canonical value with locale grouping for display",
		Example: `  numkit format 1234567.89 --locale de-DE
  numkit format 340282366920938463463374607431768211455 --class u128`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, app, opts, args[0])
		},
	}

	opts.fieldFlags.register(cmd)
	opts.classFlags.register(cmd)
	cmd.Flags().StringVarP(&opts.locale, "locale", "l", "", "BCP 47 locale (default $NUMKIT_LOCALE or the field's locale)")

	return cmd
}

func runFormat(cmd *cobra.Command, app *appState, opts *formatOptions, raw string) error {
	locale := app.settings.Locale
	value := precision.Clean(raw)

	field, fromFile, err := opts.load(app)
	if err != nil {
		return newCommandError("format", "loading the field", err, "Check --config and --field.")
	}
	if fromFile && field.Locale != "" {
		locale = field.Locale
	}
	if opts.locale != "" {
		locale = opts.locale
	}

	if fromFile || opts.className != "" {
		class, _, err := resolveClass(cmd, app, &opts.fieldFlags, &opts.classFlags)
		if err != nil {
			return newCommandError("format", "resolving the precision class", err, "Pass a valid --class.")
		}
		value, err = precision.Validate(raw, class)
		if err != nil {
			return newCommandError("format", fmt.Sprintf("checking %q against %s", raw, class), err, suggestionFor(err))
		}
	}

	out, err := format.Display(value, locale)
	if err != nil {
		return newCommandError("format", fmt.Sprintf("parsing locale %q", locale), err, "Use a BCP 47 tag such as en-US, de-DE or fr-CH.")
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
