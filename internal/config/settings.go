package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of every settings environment variable.
const EnvPrefix = "BRB_"

// Settings are process-level options that live outside the channel
// document. Priority: BRB_* environment variables > built-in defaults.
type Settings struct {
	// ConfigPath overrides the channel document location (BRB_CONFIG).
	ConfigPath string `koanf:"config"`
	// StateDir holds brb.log and history.yaml (BRB_STATE_DIR).
	StateDir string `koanf:"state_dir" validate:"required"`
	// LogLevel is a logrus level name (BRB_LOG_LEVEL).
	LogLevel string `koanf:"log_level" validate:"oneof=trace debug info warn warning error fatal panic"`
	// LogFormat is text or json (BRB_LOG_FORMAT).
	LogFormat string `koanf:"log_format" validate:"oneof=text json"`
	// HistoryMax caps retained history entries; 0 keeps everything (BRB_HISTORY_MAX).
	HistoryMax int `koanf:"history_max" validate:"min=0"`
	// NoHistory disables run history (BRB_NO_HISTORY).
	NoHistory bool `koanf:"no_history"`
	// Sequential delivers to channels one at a time (BRB_SEQUENTIAL).
	Sequential bool `koanf:"sequential"`
}

// SettingsDefaults returns the built-in settings values.
func SettingsDefaults() map[string]interface{} {
	return map[string]interface{}{
		"config":      "",
		"state_dir":   DefaultStateDir(),
		"log_level":   "info",
		"log_format":  "text",
		"history_max": 500,
		"no_history":  false,
		"sequential":  false,
	}
}

// DefaultSettings returns the settings used when no BRB_* variable is set.
func DefaultSettings() *Settings {
	var s Settings
	_ = defaultsKoanf().Unmarshal("", &s)
	return &s
}

func defaultsKoanf() *koanf.Koanf {
	k := koanf.New(".")
	for key, value := range SettingsDefaults() {
		k.Set(key, value)
	}
	return k
}

// LoadSettings merges defaults with BRB_* environment variables and
// validates the result. The returned settings are always usable: invalid
// values are replaced by their defaults and reported in the error.
func LoadSettings() (*Settings, error) {
	k := defaultsKoanf()

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return DefaultSettings(), fmt.Errorf("loading environment settings: %w", err)
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return DefaultSettings(), fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	s.LogLevel = strings.ToLower(strings.TrimSpace(s.LogLevel))
	s.LogFormat = strings.ToLower(strings.TrimSpace(s.LogFormat))

	if err := validator.New().Struct(s); err != nil {
		return resetInvalid(&s, err)
	}
	return &s, nil
}

// resetInvalid puts the default back into every field that failed
// validation and names the offending variables in the returned error.
func resetInvalid(s *Settings, err error) (*Settings, error) {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return DefaultSettings(), fmt.Errorf("settings validation failed: %w", err)
	}

	defaults := reflect.ValueOf(DefaultSettings()).Elem()
	current := reflect.ValueOf(s).Elem()
	names := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field, ok := current.Type().FieldByName(fe.StructField())
		if !ok {
			continue
		}
		names = append(names, fmt.Sprintf("%s%s=%v", EnvPrefix, strings.ToUpper(field.Tag.Get("koanf")), fe.Value()))
		current.FieldByIndex(field.Index).Set(defaults.FieldByIndex(field.Index))
	}
	return s, fmt.Errorf("settings validation failed: invalid %s: %w", strings.Join(names, ", "), err)
}

// envValue maps a BRB_* variable to its settings key. Empty values are
// skipped so an exported-but-blank variable keeps the default.
func envValue(key, value string) (string, interface{}) {
	if strings.TrimSpace(value) == "" {
		return "", nil
	}
	return envTransform(key), value
}

// envTransform converts environment variable names to settings keys.
// Example: BRB_STATE_DIR -> state_dir
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}
