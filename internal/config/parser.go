package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	numkiterrors "github.com/alexisbeaulieu97/numkit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads a field definition file from disk, validates it, and returns
// the resulting model. Files ending in .toml are decoded as TOML, anything
// else as YAML.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, numkiterrors.NewFileError(path, 0, err)
	}

	file, err := Decode(path, data)
	if err != nil {
		return nil, err
	}

	if err := ValidateFile(file); err != nil {
		return nil, err
	}

	return file, nil
}

// Decode decodes data without validating it. path selects the format and is
// used in error messages.
func Decode(path string, data []byte) (*File, error) {
	var file File

	if isTOML(path) {
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, numkiterrors.NewFileError(path, tomlLine(err), err)
		}
		return &file, nil
	}

	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, numkiterrors.NewFileError(path, extractLine(err), err)
	}
	return &file, nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func tomlLine(err error) int {
	var perr toml.ParseError
	if errors.As(err, &perr) {
		return perr.Position.Line
	}
	return 0
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
