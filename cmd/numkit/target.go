package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/numkit/internal/config"
	"github.com/alexisbeaulieu97/numkit/internal/precision"
	"github.com/alexisbeaulieu97/numkit/internal/rangestep"
	numkiterrors "github.com/alexisbeaulieu97/numkit/pkg/errors"
)

// fieldFlags select a field from a definition file.
type fieldFlags struct {
	configPath string
	fieldName  string
}

func (f *fieldFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Field definition file (default $NUMKIT_FIELDS)")
	cmd.Flags().StringVarP(&f.fieldName, "field", "f", "", "Field to use from the definition file")
}

func (f *fieldFlags) path(app *appState) string {
	if strings.TrimSpace(f.configPath) != "" {
		return f.configPath
	}
	return app.settings.FieldsFile
}

// load returns the selected field. ok is false when no field was requested.
func (f *fieldFlags) load(app *appState) (config.Field, bool, error) {
	if f.fieldName == "" && f.configPath == "" {
		return config.Field{}, false, nil
	}

	path := f.path(app)
	if path == "" {
		return config.Field{}, false, fmt.Errorf("--field needs --config or NUMKIT_FIELDS")
	}

	file, err := config.Load(path)
	if err != nil {
		return config.Field{}, false, err
	}

	if f.fieldName == "" {
		if len(file.Fields) != 1 {
			return config.Field{}, false, fmt.Errorf("%s defines %d fields; choose one with --field", path, len(file.Fields))
		}
		return file.Fields[0], true, nil
	}

	field, found := file.Field(f.fieldName)
	if !found {
		return config.Field{}, false, fmt.Errorf("field %q is not defined in %s", f.fieldName, path)
	}
	return field, true, nil
}

// classFlags name a precision class on the command line.
type classFlags struct {
	className   string
	maxDecimals int
}

func (c *classFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&c.className, "class", "", "Precision class: u8..u128, i8..i128, decimal, decimal:N or arbitrary")
	cmd.Flags().IntVar(&c.maxDecimals, "max-decimals", 2, "Decimal places allowed by a bare decimal class")
}

// rangeFlags describe a range either inline or through a field definition.
type rangeFlags struct {
	fieldFlags
	classFlags
	min       float64
	max       float64
	step      float64
	shiftStep float64
	ctrlStep  float64
	scale     string
	precision int
}

func (r *rangeFlags) register(cmd *cobra.Command) {
	r.fieldFlags.register(cmd)
	r.classFlags.register(cmd)
	cmd.Flags().Float64Var(&r.min, "min", 0, "Range minimum")
	cmd.Flags().Float64Var(&r.max, "max", 100, "Range maximum")
	cmd.Flags().Float64Var(&r.step, "step", 1, "Step size; 0 disables snapping")
	cmd.Flags().Float64Var(&r.shiftStep, "shift-step", 0, "Step used with the shift modifier (default 10x step)")
	cmd.Flags().Float64Var(&r.ctrlStep, "ctrl-step", 0, "Step used with the ctrl modifier (default 100x step)")
	cmd.Flags().StringVar(&r.scale, "scale", "linear", "Scale: linear or log")
	cmd.Flags().IntVar(&r.precision, "precision", 0, "Fractional digits in results")
}

// target is the range a command works on, plus the class its results are
// re-validated against when one is known.
type target struct {
	field config.Field
	class precision.Class
	spec  rangestep.Spec
}

// resolve builds the target. Flags given explicitly override the values of a
// field loaded from a definition file.
func (r *rangeFlags) resolve(cmd *cobra.Command, app *appState) (target, error) {
	field, fromFile, err := r.load(app)
	if err != nil {
		return target{}, err
	}
	if !fromFile {
		field = config.Field{Name: "value"}
	}

	set := func(name string) bool { return !fromFile || cmd.Flags().Changed(name) }
	if set("class") {
		field.Class = r.className
	}
	if set("max-decimals") {
		field.MaxDecimals = r.maxDecimals
	}
	if set("min") {
		field.Range.Min = r.min
	}
	if set("max") {
		field.Range.Max = r.max
	}
	if set("step") {
		field.Range.Step = r.step
	}
	if set("shift-step") {
		field.Range.ShiftStep = r.shiftStep
	}
	if set("ctrl-step") {
		field.Range.CtrlStep = r.ctrlStep
	}
	if set("scale") {
		field.Range.Scale = r.scale
	}
	if set("precision") {
		field.Range.DisplayPrecision = r.precision
	}

	spec, err := field.RangeSpec()
	if err != nil {
		return target{}, numkiterrors.NewValidationError("scale", err.Error(), err)
	}
	if spec.Min > spec.Max {
		return target{}, numkiterrors.NewValidationError("range.min", "min must be less than or equal to max", nil)
	}
	if spec.Step < 0 || spec.ShiftStep < 0 || spec.CtrlStep < 0 {
		return target{}, numkiterrors.NewValidationError("range.step", "steps must not be negative", nil)
	}

	t := target{field: field, spec: spec}
	if field.Class != "" {
		t.class, err = field.PrecisionClass()
		if err != nil {
			return target{}, err
		}
	}
	return t, nil
}

func (t target) engine() (*rangestep.Engine, error) {
	return rangestep.NewEngine(t.class, t.spec)
}

func (t target) adjust(current string, mod rangestep.Modifier, down bool) (string, error) {
	if t.class == nil {
		delta := t.spec.Delta(mod)
		if down {
			delta = -delta
		}
		return rangestep.Adjust(current, delta, t.spec), nil
	}
	engine, err := t.engine()
	if err != nil {
		return "", err
	}
	if down {
		return engine.Decrement(current, mod)
	}
	return engine.Increment(current, mod)
}

func (t target) seek(pct float64) (string, error) {
	if t.class == nil {
		return rangestep.FromPercentage(pct, t.spec), nil
	}
	engine, err := t.engine()
	if err != nil {
		return "", err
	}
	return engine.Seek(pct)
}

func (t target) snap(which rangestep.Boundary) (string, error) {
	if t.class == nil {
		return rangestep.SnapToBoundary(which, t.spec), nil
	}
	engine, err := t.engine()
	if err != nil {
		return "", err
	}
	return engine.Snap(which)
}

// resolveClass returns the class named by flags or by the selected field.
func resolveClass(cmd *cobra.Command, app *appState, ff *fieldFlags, cf *classFlags) (precision.Class, config.Field, error) {
	field, fromFile, err := ff.load(app)
	if err != nil {
		return nil, config.Field{}, err
	}
	if !fromFile || cmd.Flags().Changed("class") {
		field.Class = cf.className
	}
	if !fromFile || cmd.Flags().Changed("max-decimals") {
		field.MaxDecimals = cf.maxDecimals
	}
	if field.Class == "" {
		return nil, field, fmt.Errorf("a precision class is required: pass --class or --field")
	}
	class, err := field.PrecisionClass()
	return class, field, err
}
