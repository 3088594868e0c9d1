package config

import (
	"github.com/caarlos0/env/v11"

	numkiterrors "github.com/alexisbeaulieu97/numkit/pkg/errors"
)

// Settings holds process-wide defaults read from the environment. Command
// line flags take precedence over every value here. An empty LogFormat
// lets the CLI pick one from the kind of output stream.
type Settings struct {
	LogLevel   string `env:"NUMKIT_LOG_LEVEL" envDefault:"info" validate:"oneof=trace debug info warn error"`
	LogFormat  string `env:"NUMKIT_LOG_FORMAT" validate:"omitempty,oneof=json console"`
	Locale     string `env:"NUMKIT_LOCALE" envDefault:"en-US" validate:"bcp47"`
	FieldsFile string `env:"NUMKIT_FIELDS"`
}

// LoadSettings reads Settings from the process environment.
func LoadSettings() (Settings, error) {
	return parseSettings(env.Options{})
}

// LoadSettingsFrom reads Settings from environ instead of the process environment.
func LoadSettingsFrom(environ map[string]string) (Settings, error) {
	return parseSettings(env.Options{Environment: environ})
}

func parseSettings(opts env.Options) (Settings, error) {
	var s Settings
	if err := env.ParseWithOptions(&s, opts); err != nil {
		return Settings{}, numkiterrors.NewValidationError("environment", err.Error(), err)
	}
	if err := validatorInstance().Struct(s); err != nil {
		return Settings{}, convertValidationError(err)
	}
	return s, nil
}
