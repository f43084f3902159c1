package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/knadh/koanf/providers/file"
	"gopkg.in/yaml.v3"
)

// Config is the validated channel configuration. Treat it as read-only.
type Config struct {
	// Version is the schema version; always SupportedVersion once loaded.
	Version int

	// DefaultChannels are notified when no --channel flag is given.
	DefaultChannels []string

	// Channels maps channel ids to their definitions.
	Channels map[string]ChannelSpec
}

// Channel returns the channel registered under id. Ids are case-sensitive.
func (c *Config) Channel(id string) (ChannelSpec, bool) {
	spec, ok := c.Channels[id]
	return spec, ok
}

// ChannelIDs returns all channel ids in sorted order.
func (c *Config) ChannelIDs() []string {
	return sortedKeys(c.Channels)
}

// IsDefault reports whether id is listed in default_channels.
func (c *Config) IsDefault(id string) bool {
	for _, d := range c.DefaultChannels {
		if d == id {
			return true
		}
	}
	return false
}

// Source supplies the raw config document. koanf providers such as
// file.Provider satisfy it.
type Source interface {
	ReadBytes() ([]byte, error)
}

// Option customises a load.
type Option func(*loader)

type loader struct {
	lookup LookupEnvFunc
}

// WithLookupEnv replaces os.LookupEnv for ${env:NAME} resolution.
func WithLookupEnv(fn LookupEnvFunc) Option {
	return func(l *loader) {
		l.lookup = fn
	}
}

func newLoader(opts []Option) *loader {
	l := &loader{lookup: os.LookupEnv}
	for _, opt := range opts {
		opt(l)
	}
	if l.lookup == nil {
		l.lookup = os.LookupEnv
	}
	return l
}

// Load reads, interpolates and validates the config file at path.
// An empty path means the user config path (see UserConfigPath).
func Load(path string, opts ...Option) (*Config, error) {
	if path == "" {
		var err error
		if path, err = UserConfigPath(); err != nil {
			return nil, err
		}
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, newError(KindNotFound, path, err)
		}
		return nil, newError(KindReadFailed, "", err)
	}

	return LoadFrom(file.Provider(path), opts...)
}

// LoadFrom loads a config document from any Source.
func LoadFrom(src Source, opts ...Option) (*Config, error) {
	data, err := src.ReadBytes()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, newError(KindNotFound, "", err)
		}
		return nil, newError(KindReadFailed, "", err)
	}
	return Parse(data, opts...)
}

// Parse builds a Config from raw YAML bytes.
func Parse(data []byte, opts ...Option) (*Config, error) {
	l := newLoader(opts)

	cfg, err := decode(data)
	if err != nil {
		return nil, err
	}
	if err := interpolateChannels(cfg.Channels, l.lookup); err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// document mirrors the YAML layout. Pointers distinguish absent fields.
type document struct {
	Version         *int                   `yaml:"version"`
	DefaultChannels []string               `yaml:"default_channels"`
	Channels        map[string]channelNode `yaml:"channels"`
}

func decode(data []byte) (*Config, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, newError(KindParseFailed, "config document is empty", nil)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, newError(KindParseFailed, "config document is empty", err)
		}
		return nil, newError(KindParseFailed, cleanYAMLError(err), err)
	}

	if doc.Version == nil {
		return nil, newError(KindParseFailed, "missing field `version`", nil)
	}
	if doc.Channels == nil {
		return nil, newError(KindParseFailed, "missing field `channels`", nil)
	}

	cfg := &Config{
		Version:         *doc.Version,
		DefaultChannels: doc.DefaultChannels,
		Channels:        make(map[string]ChannelSpec, len(doc.Channels)),
	}
	ids := make([]string, 0, len(doc.Channels))
	for id := range doc.Channels {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		node := doc.Channels[id]
		if node.spec == nil {
			return nil, newError(KindParseFailed, fmt.Sprintf("channel `%s` has no definition", id), nil)
		}
		cfg.Channels[id] = node.spec
	}
	return cfg, nil
}

// cleanYAMLError strips the "yaml: " prefix from decoder errors.
func cleanYAMLError(err error) string {
	return strings.TrimPrefix(err.Error(), "yaml: ")
}
