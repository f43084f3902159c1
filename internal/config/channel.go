package config

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ChannelType is the stable label of a channel variant.
type ChannelType string

const (
	TypeDesktop ChannelType = "desktop"
	TypeWebhook ChannelType = "webhook"
	TypeCustom  ChannelType = "custom"
)

// DefaultHTTPMethod is used when a webhook channel omits method.
const DefaultHTTPMethod = "POST"

// ChannelSpec describes one notification destination. The set of
// implementations is closed: DesktopChannel, WebhookChannel and
// CustomChannel. Code that consumes a ChannelSpec switches over all three.
type ChannelSpec interface {
	// Type returns the variant label shown by `brb channels list`.
	Type() ChannelType

	channelSpec()
}

// DesktopChannel posts a local desktop popup. It has no settings.
type DesktopChannel struct{}

// WebhookChannel sends the completion event as a JSON HTTP request.
type WebhookChannel struct {
	URL     string            `yaml:"url" validate:"required"`
	Method  string            `yaml:"method"`
	Headers map[string]string `yaml:"headers"`
}

// CustomChannel pipes the completion event into an external process.
type CustomChannel struct {
	Exec string            `yaml:"exec" validate:"required"`
	Args []string          `yaml:"args"`
	Env  map[string]string `yaml:"env"`
}

func (DesktopChannel) Type() ChannelType { return TypeDesktop }
func (WebhookChannel) Type() ChannelType { return TypeWebhook }
func (CustomChannel) Type() ChannelType  { return TypeCustom }

func (DesktopChannel) channelSpec() {}
func (WebhookChannel) channelSpec() {}
func (CustomChannel) channelSpec()  {}

// allowedChannelKeys lists the keys each variant accepts, including "type".
var allowedChannelKeys = map[ChannelType][]string{
	TypeDesktop: {"type"},
	TypeWebhook: {"type", "url", "method", "headers"},
	TypeCustom:  {"type", "exec", "args", "env"},
}

// channelNode decodes a tagged channel definition into its variant.
type channelNode struct {
	spec ChannelSpec
}

// UnmarshalYAML reads the "type" tag, rejects keys the variant does not
// define and decodes the rest into the matching struct.
func (c *channelNode) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: channel definition must be a mapping", value.Line)
	}

	var kind string
	typeSeen := false
	for i := 0; i+1 < len(value.Content); i += 2 {
		if value.Content[i].Value != "type" {
			continue
		}
		if typeSeen {
			return fmt.Errorf("line %d: duplicate field `type`", value.Content[i].Line)
		}
		kind = value.Content[i+1].Value
		typeSeen = true
	}
	if !typeSeen {
		return fmt.Errorf("line %d: missing field `type`", value.Line)
	}

	channelType := ChannelType(kind)
	allowed, ok := allowedChannelKeys[channelType]
	if !ok {
		return fmt.Errorf("line %d: unknown channel type %q, expected one of %s",
			value.Line, kind, strings.Join(channelTypeNames(), ", "))
	}
	if err := checkKnownKeys(value, allowed, channelType); err != nil {
		return err
	}

	switch channelType {
	case TypeDesktop:
		c.spec = DesktopChannel{}
	case TypeWebhook:
		webhook := WebhookChannel{Method: DefaultHTTPMethod}
		if err := value.Decode(&webhook); err != nil {
			return err
		}
		c.spec = webhook
	case TypeCustom:
		var custom CustomChannel
		if err := value.Decode(&custom); err != nil {
			return err
		}
		c.spec = custom
	default:
		return fmt.Errorf("line %d: unhandled channel type %q", value.Line, kind)
	}
	return nil
}

func checkKnownKeys(value *yaml.Node, allowed []string, channelType ChannelType) error {
	for i := 0; i+1 < len(value.Content); i += 2 {
		key := value.Content[i]
		known := false
		for _, name := range allowed {
			if key.Value == name {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("line %d: field %s not found in %s channel", key.Line, key.Value, channelType)
		}
	}
	return nil
}

func channelTypeNames() []string {
	names := make([]string, 0, len(allowedChannelKeys))
	for name := range allowedChannelKeys {
		names = append(names, string(name))
	}
	sort.Strings(names)
	return names
}
