package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/numkit/internal/config"
	"github.com/alexisbeaulieu97/numkit/internal/rangestep"
)

type fieldsOptions struct {
	configPath string
	jsonOutput bool
}

func newFieldsCmd(app *appState) *cobra.Command {
	opts := &fieldsOptions{}

	cmd := &cobra.Command{
		Use:   "fields",
		Short: "List the fields of a definition file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFields(cmd, app, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Field definition file (default $NUMKIT_FIELDS)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type fieldSummary struct {
	Name      string  `json:"name"`
	Label     string  `json:"label"`
	Class     string  `json:"class"`
	Locale    string  `json:"locale,omitempty"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Step      float64 `json:"step"`
	ShiftStep float64 `json:"shift_step"`
	CtrlStep  float64 `json:"ctrl_step"`
	Scale     string  `json:"scale"`
	Precision int     `json:"display_precision"`
	Value     string  `json:"value"`
}

func runFields(cmd *cobra.Command, app *appState, opts *fieldsOptions) error {
	path := opts.configPath
	if path == "" {
		path = app.settings.FieldsFile
	}
	if path == "" {
		return newCommandError("list fields", "locating the definition file", fmt.Errorf("no definition file given"), "Pass --config or set NUMKIT_FIELDS.")
	}

	file, err := config.Load(path)
	if err != nil {
		return newCommandError("list fields", fmt.Sprintf("loading %s", path), err, "Fix the errors shown above and try again.")
	}

	summaries := make([]fieldSummary, 0, len(file.Fields))
	for _, field := range file.Fields {
		summary, err := summarize(field)
		if err != nil {
			return newCommandError("list fields", fmt.Sprintf("reading field %q", field.Name), err, "Fix the field definition and try again.")
		}
		summaries = append(summaries, summary)
	}
	app.log.Debug("fields loaded", "path", path, "count", len(summaries))

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(summaries)
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tCLASS\tRANGE\tSTEP\tSCALE\tVALUE")
	for _, s := range summaries {
		fmt.Fprintf(writer, "%s\t%s\t[%s, %s]\t%s\t%s\t%s\n",
			s.Name,
			s.Class,
			rangestep.Format(s.Min, s.Precision),
			rangestep.Format(s.Max, s.Precision),
			rangestep.Format(s.Step, s.Precision),
			s.Scale,
			s.Value,
		)
	}
	return writer.Flush()
}

func summarize(field config.Field) (fieldSummary, error) {
	class, err := field.PrecisionClass()
	if err != nil {
		return fieldSummary{}, err
	}
	spec, err := field.RangeSpec()
	if err != nil {
		return fieldSummary{}, err
	}

	return fieldSummary{
		Name:      field.Name,
		Label:     field.DisplayLabel(),
		Class:     class.String(),
		Locale:    field.Locale,
		Min:       spec.Min,
		Max:       spec.Max,
		Step:      spec.Step,
		ShiftStep: spec.ShiftStep,
		CtrlStep:  spec.CtrlStep,
		Scale:     spec.Scale.String(),
		Precision: spec.DisplayPrecision,
		Value:     field.InitialValue(),
	}, nil
}
