package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolve returns a [kong.ConfigurationLoader] for YAML configuration files
// such as the one written by the init command:
//
//	kong.Configuration(resolve(ctx), "/path/to/config.yaml")
//
// Keys are flag names. Nested mappings are joined with hyphens, so the two
// files below are equivalent, and underscores may stand in for hyphens:
//
//	log-level: debug
//	log: {level: debug}
//
// Numbers are passed to kong as text and sequences as comma-separated
// lists. A file that does not decode to a mapping configures nothing.
// Command-line flags override configured values.
func resolve(ctx context.Context) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}

		var raw map[string]any
		if err := yaml.UnmarshalContext(ctx, data, &raw); err != nil {
			return config{}, nil //nolint:nilerr
		}

		c := config{}
		c.flatten("", raw)

		return c, nil
	}
}

// config implements [kong.Resolver] over flattened YAML settings.
type config map[string]any

func (c config) flatten(prefix string, m map[string]any) {
	for k, v := range m {
		key := strings.ReplaceAll(k, "_", "-")
		if prefix != "" {
			key = prefix + "-" + key
		}

		switch t := v.(type) {
		case map[string]any:
			c.flatten(key, t)
		case []any:
			items := make([]string, len(t))
			for i, e := range t {
				items[i] = scalar(e)
			}

			c[key] = strings.Join(items, ",")
		case nil:
		case bool, string:
			c[key] = t
		default:
			c[key] = scalar(t)
		}
	}
}

func scalar(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (c config) Resolve(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
	if v, ok := c[strings.ReplaceAll(flag.Name, "_", "-")]; ok {
		return v, nil
	}

	return nil, nil
}
