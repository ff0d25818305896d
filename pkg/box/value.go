package box

import (
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/spf13/cast"

	cerrors "github.com/matzehuels/commentbox/pkg/errors"
	"github.com/matzehuels/commentbox/pkg/style"
)

// FromValue builds a box from a loosely typed value: a string (the text), a
// Config or *Config, or a map[string]any such as one decoded from JSON, TOML
// or YAML. Any other value is an INVALID_ARGUMENT error.
func FromValue(reg *style.Registry, v any) (*Box, error) {
	switch t := v.(type) {
	case string:
		return New(reg, Config{Text: t})
	case Config:
		return New(reg, t)
	case *Config:
		if t == nil {
			break
		}
		return New(reg, *t)
	case map[string]any:
		cfg, err := ConfigFromMap(t)
		if err != nil {
			return nil, err
		}
		return New(reg, cfg)
	}
	return nil, cerrors.InvalidArgument("box must be built from a string or a config, got %T", v)
}

// ConfigFromMap converts a generic option map into a Config. Keys are matched
// case-insensitively with '_' and '-' ignored, so "min_width" and "minWidth"
// are the same option; giving both is an INVALID_ARGUMENT error. Numeric
// options accept any integer or float kind and numeric strings; floats are
// truncated. Unknown keys are ignored.
func ConfigFromMap(m map[string]any) (Config, error) {
	var cfg Config
	seen := make(map[string]string, len(m))
	for _, key := range slices.Sorted(maps.Keys(m)) {
		v := m[key]
		if v == nil {
			continue
		}
		name := normalizeKey(key)
		if name == "align" {
			name = "alignment"
		}
		if prev, ok := seen[name]; ok {
			return Config{}, cerrors.InvalidArgument("options %q and %q both set %s", prev, key, name)
		}

		var err error
		switch name {
		case "text":
			cfg.Text, err = textValue(v)
		case "style":
			cfg.Style, err = styleValue(v)
		case "alignment":
			cfg.Alignment, err = alignmentValue(v)
		case "padding":
			cfg.Padding, err = intValue(key, v)
		case "stretch":
			cfg.Stretch, err = intValue(key, v)
		case "offset":
			cfg.Offset, err = intValue(key, v)
		case "minwidth":
			cfg.MinWidth, err = intValue(key, v)
		case "spacelines":
			cfg.SpaceLines, err = boolValue(key, v)
		default:
			continue
		}
		if err != nil {
			return Config{}, err
		}
		seen[name] = key
	}
	return cfg, nil
}

func normalizeKey(k string) string {
	return strings.NewReplacer("_", "", "-", "").Replace(strings.ToLower(strings.TrimSpace(k)))
}

func textValue(v any) (any, error) {
	if items, ok := v.([]any); ok {
		return stringSlice("text", items)
	}
	return v, nil
}

func alignmentValue(v any) (any, error) {
	if items, ok := v.([]any); ok {
		return stringSlice("alignment", items)
	}
	return v, nil
}

func styleValue(v any) (any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return v, nil
	}
	return StyleFromMap(m)
}

// StyleFromMap converts a generic map with the keys hlines, oddlines,
// evenlines and oddcorners into a style.Style. The three glyph pairs must be
// two-element lists of strings.
func StyleFromMap(m map[string]any) (style.Style, error) {
	var s style.Style
	hlines, ok := m["hlines"].(string)
	if !ok {
		return s, cerrors.InvalidArgument("style hlines must be a string, got %T", m["hlines"])
	}
	s.HLines = hlines

	pairs := []struct {
		key string
		dst *[2]string
	}{
		{"oddlines", &s.OddLines},
		{"evenlines", &s.EvenLines},
		{"oddcorners", &s.OddCorners},
	}
	for _, p := range pairs {
		pair, err := glyphPair(p.key, m[p.key])
		if err != nil {
			return style.Style{}, err
		}
		*p.dst = pair
	}
	return s, nil
}

func glyphPair(key string, v any) ([2]string, error) {
	var items []string
	switch t := v.(type) {
	case []string:
		items = t
	case []any:
		var err error
		if items, err = stringSlice(key, t); err != nil {
			return [2]string{}, err
		}
	case [2]string:
		return t, nil
	default:
		return [2]string{}, cerrors.InvalidArgument("style %s must be a pair of strings, got %T", key, v)
	}
	if len(items) != 2 {
		return [2]string{}, cerrors.InvalidArgument("style %s must have 2 entries, got %d", key, len(items))
	}
	return [2]string{items[0], items[1]}, nil
}

func stringSlice(key string, items []any) ([]string, error) {
	out := make([]string, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, cerrors.InvalidArgument("%s[%d] must be a string, got %T", key, i, item)
		}
		out[i] = s
	}
	return out, nil
}

// intValue accepts integers, floats (truncated toward zero) and numeric
// strings. Booleans are rejected even though cast would map them to 0 or 1.
func intValue(key string, v any) (*int, error) {
	switch t := v.(type) {
	case bool:
		return nil, cerrors.InvalidArgument("%s must be a number, got %T", key, v)
	case string:
		v = strings.TrimSpace(t)
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		f, ferr := cast.ToFloat64E(v)
		if ferr != nil {
			return nil, cerrors.InvalidArgument("%s must be a number, got %v (%T)", key, v, v)
		}
		n = int(math.Trunc(f))
	}
	return &n, nil
}

// boolValue accepts booleans and the strings strconv.ParseBool knows.
func boolValue(key string, v any) (*bool, error) {
	switch t := v.(type) {
	case bool:
	case string:
		v = strings.TrimSpace(t)
	default:
		return nil, cerrors.InvalidArgument("%s must be a boolean, got %T", key, v)
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return nil, cerrors.InvalidArgument("%s must be a boolean, got %q", key, v)
	}
	return &b, nil
}
