package config

import (
	"fmt"
	"math"

	"github.com/alexisbeaulieu97/numkit/internal/precision"
	"github.com/alexisbeaulieu97/numkit/internal/rangestep"
	numkiterrors "github.com/alexisbeaulieu97/numkit/pkg/errors"
)

// ValidateFile runs struct-level validation and the cross-field checks the
// tags cannot express.
func ValidateFile(file *File) error {
	if file == nil {
		return numkiterrors.NewValidationError("config", "config cannot be nil", nil)
	}

	if err := validatorInstance().Struct(file); err != nil {
		return convertValidationError(err)
	}

	if err := ensureUniqueNames(file.Fields); err != nil {
		return err
	}

	for i, field := range file.Fields {
		if err := validateField(i, field); err != nil {
			return err
		}
	}

	return nil
}

func ensureUniqueNames(fields []Field) error {
	seen := make(map[string]int, len(fields))
	for i, field := range fields {
		if first, exists := seen[field.Name]; exists {
			return numkiterrors.NewValidationError(
				fieldPath(i, "name"),
				fmt.Sprintf("duplicate field name %q (first defined at fields[%d])", field.Name, first),
				nil,
			)
		}
		seen[field.Name] = i
	}
	return nil
}

func validateField(index int, field Field) error {
	class, err := field.PrecisionClass()
	if err != nil {
		return numkiterrors.NewValidationError(fieldPath(index, "class"), err.Error(), err)
	}

	display := field.Range.DisplayPrecision
	switch c := class.(type) {
	case precision.UnsignedFixed, precision.SignedFixed:
		if display != 0 {
			return numkiterrors.NewValidationError(
				fieldPath(index, "range.display_precision"),
				fmt.Sprintf("integer class %s requires display_precision 0", class),
				nil,
			)
		}
		if err := integralSteps(index, class, field.Range); err != nil {
			return err
		}
	case precision.FixedDecimal:
		if display > c.MaxDecimals {
			return numkiterrors.NewValidationError(
				fieldPath(index, "range.display_precision"),
				fmt.Sprintf("display_precision %d exceeds max decimals %d of %s", display, c.MaxDecimals, class),
				nil,
			)
		}
	}

	if _, err := rangestep.ParseScale(field.Range.Scale); err != nil {
		return numkiterrors.NewValidationError(fieldPath(index, "range.scale"), err.Error(), err)
	}

	if field.Value != "" {
		if _, err := precision.Validate(field.Value, class); err != nil {
			return numkiterrors.NewValidationError(fieldPath(index, "value"), err.Error(), err)
		}
	}

	return nil
}

// integralSteps rejects fractional steps for integer classes: results are
// rounded to whole numbers, so a half step would round back to where it began.
func integralSteps(index int, class precision.Class, rng RangeConfig) error {
	steps := []struct {
		name  string
		value float64
	}{
		{name: "step", value: rng.Step},
		{name: "shift_step", value: rng.ShiftStep},
		{name: "ctrl_step", value: rng.CtrlStep},
	}
	for _, step := range steps {
		if step.value != math.Trunc(step.value) {
			return numkiterrors.NewValidationError(
				fieldPath(index, "range."+step.name),
				fmt.Sprintf("integer class %s requires a whole-number %s, got %g", class, step.name, step.value),
				nil,
			)
		}
	}
	return nil
}
