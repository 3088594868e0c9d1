package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/numkit/internal/precision"
	"github.com/alexisbeaulieu97/numkit/internal/rangestep"
)

func TestFieldUnmarshalYAML(t *testing.T) {
	t.Parallel()

	yamlStr := `
name: gain
label: Gain
class: decimal
max_decimals: 3
locale: fr-FR
value: "0,5"
range:
  min: 0.001
  max: 10
  step: 0.001
  scale: log
  display_precision: 3
`
	var field Field
	require.NoError(t, yaml.Unmarshal([]byte(yamlStr), &field))

	want := Field{
		Name:        "gain",
		Label:       "Gain",
		Class:       "decimal",
		MaxDecimals: 3,
		Locale:      "fr-FR",
		Value:       "0,5",
		Range: RangeConfig{
			Min:              0.001,
			Max:              10,
			Step:             0.001,
			Scale:            "log",
			DisplayPrecision: 3,
		},
	}
	if diff := cmp.Diff(want, field); diff != "" {
		t.Errorf("field mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldRangeSpec(t *testing.T) {
	t.Parallel()

	t.Run("modifier steps default to multiples of step", func(t *testing.T) {
		t.Parallel()

		field := Field{Range: RangeConfig{Min: 0, Max: 100, Step: 0.5, DisplayPrecision: 1}}
		spec, err := field.RangeSpec()
		require.NoError(t, err)

		want := rangestep.Spec{Min: 0, Max: 100, Step: 0.5, ShiftStep: 5, CtrlStep: 50, DisplayPrecision: 1}
		if diff := cmp.Diff(want, spec); diff != "" {
			t.Errorf("spec mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("explicit modifier steps are kept", func(t *testing.T) {
		t.Parallel()

		field := Field{Range: RangeConfig{Min: 1, Max: 1000, Step: 1, ShiftStep: 2, CtrlStep: 3, Scale: "logarithmic"}}
		spec, err := field.RangeSpec()
		require.NoError(t, err)
		require.Equal(t, 2.0, spec.ShiftStep)
		require.Equal(t, 3.0, spec.CtrlStep)
		require.Equal(t, rangestep.ScaleLogarithmic, spec.Scale)
	})

	t.Run("unknown scale fails", func(t *testing.T) {
		t.Parallel()

		_, err := Field{Range: RangeConfig{Scale: "cubic"}}.RangeSpec()
		require.Error(t, err)
	})
}

func TestFieldHelpers(t *testing.T) {
	t.Parallel()

	field := Field{Name: "price", Class: "decimal:2", Range: RangeConfig{Min: 5, Max: 10, Step: 0.5, DisplayPrecision: 2}}

	require.Equal(t, "price", field.DisplayLabel())
	field.Label = "Unit price"
	require.Equal(t, "Unit price", field.DisplayLabel())

	class, err := field.PrecisionClass()
	require.NoError(t, err)
	require.Equal(t, precision.FixedDecimal{MaxDecimals: 2}, class)

	require.Equal(t, "5.00", field.InitialValue())
	field.Value = "7_5"
	require.Equal(t, "75", field.InitialValue())

	engine, err := field.Engine()
	require.NoError(t, err)
	require.Equal(t, class, engine.Class())
}

func TestFileField(t *testing.T) {
	t.Parallel()

	file := validFile()

	field, ok := file.Field("price")
	require.True(t, ok)
	require.Equal(t, "price", field.Name)

	_, ok = file.Field("missing")
	require.False(t, ok)

	var nilFile *File
	_, ok = nilFile.Field("price")
	require.False(t, ok)
}
