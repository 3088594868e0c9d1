package config

import (
	"strings"

	"github.com/alexisbeaulieu97/numkit/internal/precision"
	"github.com/alexisbeaulieu97/numkit/internal/rangestep"
)

// File is a field definition document.
type File struct {
	Version string  `yaml:"version" toml:"version" validate:"required,semver"`
	Fields  []Field `yaml:"fields" toml:"fields" validate:"required,min=1,dive"`
}

// Field describes one numeric input and the slider bound to it.
type Field struct {
	Name        string      `yaml:"name" toml:"name" validate:"required,field_name"`
	Label       string      `yaml:"label,omitempty" toml:"label" validate:"max=100"`
	Class       string      `yaml:"class" toml:"class" validate:"required,precision_class"`
	MaxDecimals int         `yaml:"max_decimals,omitempty" toml:"max_decimals" validate:"min=0,max=19"`
	Locale      string      `yaml:"locale,omitempty" toml:"locale" validate:"omitempty,bcp47"`
	Value       string      `yaml:"value,omitempty" toml:"value"`
	Range       RangeConfig `yaml:"range" toml:"range"`
}

// RangeConfig is the on-disk form of rangestep.Spec.
type RangeConfig struct {
	Min              float64 `yaml:"min" toml:"min"`
	Max              float64 `yaml:"max" toml:"max" validate:"gtefield=Min"`
	Step             float64 `yaml:"step,omitempty" toml:"step" validate:"min=0"`
	ShiftStep        float64 `yaml:"shift_step,omitempty" toml:"shift_step" validate:"min=0"`
	CtrlStep         float64 `yaml:"ctrl_step,omitempty" toml:"ctrl_step" validate:"min=0"`
	Scale            string  `yaml:"scale,omitempty" toml:"scale" validate:"omitempty,oneof=linear log logarithmic"`
	DisplayPrecision int     `yaml:"display_precision,omitempty" toml:"display_precision" validate:"min=0,max=19"`
}

// Field returns the field named name.
func (f *File) Field(name string) (Field, bool) {
	if f == nil {
		return Field{}, false
	}
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// DisplayLabel returns the label, or the name when no label is set.
func (f Field) DisplayLabel() string {
	if strings.TrimSpace(f.Label) != "" {
		return f.Label
	}
	return f.Name
}

// PrecisionClass resolves the class name of the field.
func (f Field) PrecisionClass() (precision.Class, error) {
	return precision.ParseClass(f.Class, f.MaxDecimals)
}

// RangeSpec converts the range block. Unset modifier steps default to 10x
// and 100x the base step.
func (f Field) RangeSpec() (rangestep.Spec, error) {
	scale, err := rangestep.ParseScale(f.Range.Scale)
	if err != nil {
		return rangestep.Spec{}, err
	}

	spec := rangestep.Spec{
		Min:              f.Range.Min,
		Max:              f.Range.Max,
		Step:             f.Range.Step,
		ShiftStep:        f.Range.ShiftStep,
		CtrlStep:         f.Range.CtrlStep,
		Scale:            scale,
		DisplayPrecision: f.Range.DisplayPrecision,
	}
	if spec.ShiftStep == 0 {
		spec.ShiftStep = spec.Step * 10
	}
	if spec.CtrlStep == 0 {
		spec.CtrlStep = spec.Step * 100
	}
	return spec, nil
}

// Engine builds the range/step engine for the field.
func (f Field) Engine() (*rangestep.Engine, error) {
	class, err := f.PrecisionClass()
	if err != nil {
		return nil, err
	}
	spec, err := f.RangeSpec()
	if err != nil {
		return nil, err
	}
	return rangestep.NewEngine(class, spec)
}

// InitialValue returns the configured value, or min when none is set.
func (f Field) InitialValue() string {
	if strings.TrimSpace(f.Value) != "" {
		return precision.Clean(f.Value)
	}
	spec, err := f.RangeSpec()
	if err != nil {
		return ""
	}
	return rangestep.SnapToBoundary(rangestep.BoundaryHome, spec)
}
