package config

import (
	"bytes"
	"errors"
	"io"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	cerrors "github.com/matzehuels/commentbox/pkg/errors"
)

// rawFile is the on-disk shape shared by both formats.
type rawFile struct {
	Defaults Defaults              `toml:"defaults" yaml:"defaults"`
	Styles   map[string]StyleEntry `toml:"styles" yaml:"styles"`
}

func decodeTOML(data []byte) (*File, error) {
	var raw rawFile
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeInvalidConfig, err, "decode TOML")
	}

	// MetaData keys come back in document order.
	var order []string
	for _, key := range md.Keys() {
		if len(key) == 2 && key[0] == "styles" && !slices.Contains(order, key[1]) {
			order = append(order, key[1])
		}
	}

	f := &File{Defaults: raw.Defaults, Styles: ordered(raw.Styles, order)}
	for _, key := range md.Undecoded() {
		f.Unknown = append(f.Unknown, key.String())
	}
	return f, nil
}

func decodeYAML(data []byte) (*File, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return &File{}, nil
		}
		return nil, cerrors.Wrap(cerrors.ErrCodeInvalidConfig, err, "decode YAML")
	}

	var raw rawFile
	if err := root.Decode(&raw); err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeInvalidConfig, err, "decode YAML")
	}

	f := &File{Defaults: raw.Defaults}
	if len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return f, nil
	}

	var order []string
	top := root.Content[0]
	for i := 0; i+1 < len(top.Content); i += 2 {
		key, value := top.Content[i].Value, top.Content[i+1]
		switch key {
		case "defaults":
			f.Unknown = append(f.Unknown, unknownKeys(key, value, defaultsKeys)...)
		case "styles":
			if value.Kind != yaml.MappingNode {
				continue
			}
			for j := 0; j+1 < len(value.Content); j += 2 {
				name := value.Content[j].Value
				order = append(order, name)
				f.Unknown = append(f.Unknown, unknownKeys(key+"."+name, value.Content[j+1], styleKeys)...)
			}
		default:
			f.Unknown = append(f.Unknown, key)
		}
	}
	f.Styles = ordered(raw.Styles, order)
	return f, nil
}

var (
	defaultsKeys = []string{"style", "padding", "stretch", "offset", "min_width", "spacelines", "alignment"}
	styleKeys    = []string{"hlines", "oddlines", "evenlines", "oddcorners", "default"}
)

func unknownKeys(prefix string, n *yaml.Node, known []string) []string {
	if n.Kind != yaml.MappingNode {
		return nil
	}
	var out []string
	for i := 0; i < len(n.Content); i += 2 {
		if k := n.Content[i].Value; !slices.Contains(known, k) {
			out = append(out, strings.Join([]string{prefix, k}, "."))
		}
	}
	return out
}

// ordered lists styles in the given order, then any the order missed sorted
// by name.
func ordered(styles map[string]StyleEntry, order []string) []NamedStyle {
	out := make([]NamedStyle, 0, len(styles))
	seen := make(map[string]bool, len(styles))
	for _, name := range order {
		if s, ok := styles[name]; ok && !seen[name] {
			out = append(out, NamedStyle{Name: name, StyleEntry: s})
			seen[name] = true
		}
	}
	var rest []string
	for name := range styles {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	slices.Sort(rest)
	for _, name := range rest {
		out = append(out, NamedStyle{Name: name, StyleEntry: styles[name]})
	}
	return out
}
