package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func executeCommand(args ...string) (string, string, error) {
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

const fieldsYAML = `version: "1.0"
fields:
  - name: price
    label: Unit price
    class: decimal
    max_decimals: 2
    locale: de-DE
    value: "5.00"
    range:
      min: 0
      max: 10
      step: 0.1
      shift_step: 1
      ctrl_step: 5
      display_precision: 2
  - name: count
    class: u16
    range:
      min: 0
      max: 20000
      step: 1
`

func writeFieldsFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fields.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
