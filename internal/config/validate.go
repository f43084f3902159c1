package config

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// SupportedVersion is the only schema version brb understands.
const SupportedVersion = 1

// channelValidator checks struct tags on channel variants. Field names in
// errors use the yaml tag so they match what the user wrote.
var channelValidator = newChannelValidator()

func newChannelValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the schema version and cross-field invariants, then the
// required fields of every channel in sorted id order.
func Validate(cfg *Config) error {
	if cfg.Version != SupportedVersion {
		return invalidConfig("unsupported version %d; expected %d", cfg.Version, SupportedVersion)
	}
	if len(cfg.Channels) == 0 {
		return invalidConfig("at least one channel must be configured")
	}
	if len(cfg.DefaultChannels) == 0 {
		return invalidConfig("default_channels must include at least one channel id")
	}
	for _, id := range cfg.DefaultChannels {
		if _, ok := cfg.Channels[id]; !ok {
			return invalidConfig("default channel `%s` is not defined in channels", id)
		}
	}

	for _, id := range sortedKeys(cfg.Channels) {
		if err := validateChannel(id, cfg.Channels[id]); err != nil {
			return err
		}
	}
	return nil
}

func validateChannel(id string, spec ChannelSpec) error {
	var err error
	switch s := spec.(type) {
	case DesktopChannel:
		return nil
	case WebhookChannel:
		err = channelValidator.Struct(s)
	case CustomChannel:
		err = channelValidator.Struct(s)
	default:
		return invalidConfig("channel `%s` has unsupported type %T", id, spec)
	}
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		if fe.Tag() == "required" {
			return invalidConfig("channel `%s` (%s): field `%s` is required", id, spec.Type(), fe.Field())
		}
		return invalidConfig("channel `%s` (%s): field `%s` failed %q check", id, spec.Type(), fe.Field(), fe.Tag())
	}
	return invalidConfig("channel `%s`: %v", id, err)
}
