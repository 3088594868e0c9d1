package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	numkiterrors "github.com/alexisbeaulieu97/numkit/pkg/errors"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	validYAML := `version: "1.0"
fields:
  - name: volume
    label: "Volume"
    class: u8
    value: "30"
    range:
      min: 0
      max: 100
      step: 1
`

	invalidYAML := `version: "1.0"
fields:
  - name: [volume]
`

	missingRequired := `version: "1.0"
`

	badVersion := `version: "beta"
fields:
  - name: price
    class: decimal:2
`

	validTOML := `version = "1.0"

[[fields]]
name = "price"
class = "decimal:2"
locale = "de"

[fields.range]
min = 0.0
max = 1000.0
step = 0.05
display_precision = 2
`

	invalidTOML := `version = "1.0"
[[fields]]
name = = "broken"
`

	cases := []struct {
		name     string
		filename string
		contents string
		assert   func(t *testing.T, file *File, err error)
	}{
		{
			name:     "valid yaml is parsed",
			filename: "fields.yaml",
			contents: validYAML,
			assert: func(t *testing.T, file *File, err error) {
				require.NoError(t, err)
				require.NotNil(t, file)
				require.Len(t, file.Fields, 1)
				require.Equal(t, "volume", file.Fields[0].Name)
				require.Equal(t, "30", file.Fields[0].Value)
				require.Equal(t, 100.0, file.Fields[0].Range.Max)
			},
		},
		{
			name:     "invalid yaml returns parse error with line",
			filename: "fields.yaml",
			contents: invalidYAML,
			assert: func(t *testing.T, file *File, err error) {
				require.Error(t, err)
				var parseErr *numkiterrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				require.Equal(t, 3, parseErr.Line)
				require.Nil(t, file)
			},
		},
		{
			name:     "missing required fields returns validation error",
			filename: "fields.yaml",
			contents: missingRequired,
			assert: func(t *testing.T, file *File, err error) {
				require.Error(t, err)
				var validationErr *numkiterrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "fields", validationErr.Field)
				require.Nil(t, file)
			},
		},
		{
			name:     "invalid version is rejected",
			filename: "fields.yaml",
			contents: badVersion,
			assert: func(t *testing.T, file *File, err error) {
				require.Error(t, err)
				var validationErr *numkiterrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "version", validationErr.Field)
			},
		},
		{
			name:     "toml extension selects the toml decoder",
			filename: "fields.toml",
			contents: validTOML,
			assert: func(t *testing.T, file *File, err error) {
				require.NoError(t, err)
				require.Len(t, file.Fields, 1)
				field := file.Fields[0]
				require.Equal(t, "price", field.Name)
				require.Equal(t, "de", field.Locale)
				require.Equal(t, 0.05, field.Range.Step)
				require.Equal(t, 2, field.Range.DisplayPrecision)
			},
		},
		{
			name:     "invalid toml returns parse error with line",
			filename: "fields.toml",
			contents: invalidTOML,
			assert: func(t *testing.T, file *File, err error) {
				require.Error(t, err)
				var parseErr *numkiterrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 3, parseErr.Line)
				require.Contains(t, parseErr.Error(), "fields.toml:3")
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			path := filepath.Join(dir, tc.filename)
			require.NoError(t, os.WriteFile(path, []byte(tc.contents), 0o600))

			file, err := Load(path)
			tc.assert(t, file, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "absent.yaml")
	_, err := Load(path)
	require.Error(t, err)

	var parseErr *numkiterrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, path, parseErr.Path)
	require.Zero(t, parseErr.Line)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestExtractLine(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, extractLine(nil))
	require.Equal(t, 0, extractLine(os.ErrNotExist))
	require.Equal(t, 12, extractLine(&numkiterrors.ValidationError{Message: "yaml: line 12: did not find expected key"}))
}
