package config

import (
	"os"
	"sort"
	"strings"
)

const envMarker = "${env:"

// LookupEnvFunc resolves an environment variable. os.LookupEnv is the
// production implementation; tests pass a map-backed fake.
type LookupEnvFunc func(name string) (string, bool)

// Interpolate replaces every ${env:NAME} marker in value, left to right.
//
// Substituted text is appended verbatim and never rescanned, so a variable
// whose value contains another marker does not trigger a second lookup.
// A marker without a closing brace or with an empty name fails with
// KindInvalidInterpolation carrying the original value; an unset variable
// fails with KindMissingEnvironmentVariable carrying its name.
func Interpolate(value string, lookup LookupEnvFunc) (string, error) {
	if !strings.Contains(value, envMarker) {
		return value, nil
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}

	var out strings.Builder
	rest := value
	for {
		start := strings.Index(rest, envMarker)
		if start < 0 {
			out.WriteString(rest)
			break
		}
		out.WriteString(rest[:start])

		placeholder := rest[start+len(envMarker):]
		end := strings.IndexByte(placeholder, '}')
		if end < 0 {
			return "", newError(KindInvalidInterpolation, value, nil)
		}
		name := placeholder[:end]
		if name == "" {
			return "", newError(KindInvalidInterpolation, value, nil)
		}

		resolved, ok := lookup(name)
		if !ok {
			return "", newError(KindMissingEnvironmentVariable, name, nil)
		}
		out.WriteString(resolved)
		rest = placeholder[end+1:]
	}
	return out.String(), nil
}

// interpolateChannels resolves markers in every webhook and custom channel.
// Channels are visited in sorted id order and fields in a fixed order
// (webhook: url, method, headers by key; custom: exec, args, env by key),
// so the reported failure is the same on every run.
func interpolateChannels(channels map[string]ChannelSpec, lookup LookupEnvFunc) error {
	for _, id := range sortedKeys(channels) {
		switch spec := channels[id].(type) {
		case DesktopChannel:
		case WebhookChannel:
			resolved, err := interpolateWebhook(spec, lookup)
			if err != nil {
				return err
			}
			channels[id] = resolved
		case CustomChannel:
			resolved, err := interpolateCustom(spec, lookup)
			if err != nil {
				return err
			}
			channels[id] = resolved
		default:
			return invalidConfig("channel `%s` has unsupported type %T", id, spec)
		}
	}
	return nil
}

func interpolateWebhook(spec WebhookChannel, lookup LookupEnvFunc) (WebhookChannel, error) {
	var err error
	out := WebhookChannel{}
	if out.URL, err = Interpolate(spec.URL, lookup); err != nil {
		return out, err
	}
	if out.Method, err = Interpolate(spec.Method, lookup); err != nil {
		return out, err
	}
	if out.Headers, err = interpolateMap(spec.Headers, lookup); err != nil {
		return out, err
	}
	return out, nil
}

func interpolateCustom(spec CustomChannel, lookup LookupEnvFunc) (CustomChannel, error) {
	var err error
	out := CustomChannel{}
	if out.Exec, err = Interpolate(spec.Exec, lookup); err != nil {
		return out, err
	}
	if spec.Args != nil {
		out.Args = make([]string, len(spec.Args))
		for i, arg := range spec.Args {
			if out.Args[i], err = Interpolate(arg, lookup); err != nil {
				return out, err
			}
		}
	}
	if out.Env, err = interpolateMap(spec.Env, lookup); err != nil {
		return out, err
	}
	return out, nil
}

// interpolateMap resolves values in sorted key order. Keys are not
// interpolated.
func interpolateMap(in map[string]string, lookup LookupEnvFunc) (map[string]string, error) {
	if in == nil {
		return nil, nil
	}
	out := make(map[string]string, len(in))
	for _, key := range sortedKeys(in) {
		value, err := Interpolate(in[key], lookup)
		if err != nil {
			return nil, err
		}
		out[key] = value
	}
	return out, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
