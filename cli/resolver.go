package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// loadYAML is a [kong.ConfigurationLoader] for YAML configuration files.
//
// Keys are flag names. Nested maps join their keys with "-", so these are
// equivalent:
//
//	log-level: debug
//
//	log:
//	  level: debug
//
// Underscores may be used in place of hyphens (log_level). Flags given on
// the command line override values from the file.
func loadYAML(r io.Reader) (kong.Resolver, error) {
	var doc map[string]any

	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return config{}, nil
		}

		return nil, err
	}

	cfg := config{}
	cfg.flatten("", doc)

	return cfg, nil
}

// config implements [kong.Resolver] over a flattened YAML document.
type config map[string]any

func (c config) flatten(prefix string, m map[string]any) {
	for k, v := range m {
		key := normalizeKey(prefix + k)

		switch v := v.(type) {
		case map[string]any:
			c.flatten(key+"-", v)

		case []any:
			// kong splits list flags on commas.
			items := make([]string, len(v))
			for i, item := range v {
				items[i] = scalar(item)
			}

			c[key] = strings.Join(items, ",")

		case bool, string, nil:
			c[key] = v

		default:
			// kong parses numbers from strings.
			c[key] = scalar(v)
		}
	}
}

func scalar(v any) string { return fmt.Sprint(v) }

func normalizeKey(k string) string {
	return strings.ToLower(strings.ReplaceAll(k, "_", "-"))
}

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (c config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := c[normalizeKey(flag.Name)]; ok && value != nil {
		return value, nil
	}

	return nil, nil
}
