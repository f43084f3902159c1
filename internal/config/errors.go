package config

import "fmt"

// ErrorKind classifies config load failures.
type ErrorKind int

const (
	KindNoConfigDirectory ErrorKind = iota + 1
	KindNotFound
	KindReadFailed
	KindParseFailed
	KindMissingEnvironmentVariable
	KindInvalidInterpolation
	KindInvalidConfig
)

// String returns the kind name used in logs.
func (k ErrorKind) String() string {
	switch k {
	case KindNoConfigDirectory:
		return "no_config_directory"
	case KindNotFound:
		return "not_found"
	case KindReadFailed:
		return "read_failed"
	case KindParseFailed:
		return "parse_failed"
	case KindMissingEnvironmentVariable:
		return "missing_environment_variable"
	case KindInvalidInterpolation:
		return "invalid_interpolation"
	case KindInvalidConfig:
		return "invalid_config"
	default:
		return "unknown"
	}
}

// Error is returned for every config load failure.
//
// Detail carries the kind-specific subject: the path for KindNotFound, the
// variable name for KindMissingEnvironmentVariable, the original
// pre-substitution string for KindInvalidInterpolation and a human readable
// reason for KindParseFailed and KindInvalidConfig.
type Error struct {
	Kind   ErrorKind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNoConfigDirectory:
		return "unable to determine user config directory"
	case KindNotFound:
		return fmt.Sprintf("config file not found: %s", e.Detail)
	case KindReadFailed:
		return fmt.Sprintf("failed to read config file: %s", e.detailOrCause())
	case KindParseFailed:
		return fmt.Sprintf("invalid YAML config: %s", e.detailOrCause())
	case KindMissingEnvironmentVariable:
		return fmt.Sprintf("missing environment variable for interpolation: %s", e.Detail)
	case KindInvalidInterpolation:
		return fmt.Sprintf("invalid environment interpolation expression in config value: %s", e.Detail)
	case KindInvalidConfig:
		return fmt.Sprintf("invalid config: %s", e.Detail)
	default:
		return e.detailOrCause()
	}
}

func (e *Error) detailOrCause() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinels below, so callers can write
// errors.Is(err, config.ErrNotFound).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Detail == "" && t.Err == nil && t.Kind == e.Kind
}

// Kind sentinels for errors.Is.
var (
	ErrNoConfigDirectory          = &Error{Kind: KindNoConfigDirectory}
	ErrNotFound                   = &Error{Kind: KindNotFound}
	ErrReadFailed                 = &Error{Kind: KindReadFailed}
	ErrParseFailed                = &Error{Kind: KindParseFailed}
	ErrMissingEnvironmentVariable = &Error{Kind: KindMissingEnvironmentVariable}
	ErrInvalidInterpolation       = &Error{Kind: KindInvalidInterpolation}
	ErrInvalidConfig              = &Error{Kind: KindInvalidConfig}
)

func newError(kind ErrorKind, detail string, err error) *Error {
	return &Error{Kind: kind, Detail: detail, Err: err}
}

func invalidConfig(format string, args ...any) *Error {
	return newError(KindInvalidConfig, fmt.Sprintf(format, args...), nil)
}
