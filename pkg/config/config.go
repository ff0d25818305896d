// Package config loads comment box styles and default options from a TOML or
// YAML file and applies them to a style registry.
//
// A config file has an optional defaults table and any number of named
// styles:
//
//	[defaults]
//	style = "window"
//	padding = 2
//	spacelines = false
//
//	[styles.custom]
//	hlines = "~~"
//	oddlines = ["{ ", " }"]
//	evenlines = ["[ ", " ]"]
//	oddcorners = ["~}", "{~"]
//	default = true
//
// Styles keep their declaration order, so when several are marked default
// the first one in the file wins, the same as a single Register call.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/matzehuels/commentbox/pkg/align"
	cerrors "github.com/matzehuels/commentbox/pkg/errors"
	"github.com/matzehuels/commentbox/pkg/style"
)

// AppName is the directory name used under the XDG config home.
const AppName = "commentbox"

// Format identifies a config file encoding.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Defaults mirrors style.Defaults with every field optional.
type Defaults struct {
	Style      *string `toml:"style" yaml:"style"`
	Padding    *int    `toml:"padding" yaml:"padding"`
	Stretch    *int    `toml:"stretch" yaml:"stretch"`
	Offset     *int    `toml:"offset" yaml:"offset"`
	MinWidth   *int    `toml:"min_width" yaml:"min_width"`
	SpaceLines *bool   `toml:"spacelines" yaml:"spacelines"`
	Alignment  *string `toml:"alignment" yaml:"alignment"`
}

// StyleEntry is one style table as written in the file.
type StyleEntry struct {
	HLines     string   `toml:"hlines" yaml:"hlines"`
	OddLines   []string `toml:"oddlines" yaml:"oddlines"`
	EvenLines  []string `toml:"evenlines" yaml:"evenlines"`
	OddCorners []string `toml:"oddcorners" yaml:"oddcorners"`
	Default    bool     `toml:"default" yaml:"default"`
}

// NamedStyle pairs a style entry with its table name.
type NamedStyle struct {
	Name string
	StyleEntry
}

// File is a decoded config file.
type File struct {
	Path     string
	Defaults Defaults
	Styles   []NamedStyle // declaration order
	Unknown  []string     // keys present in the file but not understood
}

// DefaultDir returns the commentbox directory under the XDG config home.
func DefaultDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Find returns the first existing config.toml, config.yaml or config.yml in
// DefaultDir.
func Find() (string, bool) {
	dir := DefaultDir()
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// FormatFor picks the format from the file extension. Anything that is not
// .yaml or .yml is read as TOML.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatTOML
}

// Load reads and decodes the file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	f, err := Decode(data, FormatFor(path))
	if err != nil {
		return nil, err
	}
	f.Path = path
	return f, nil
}

// Decode parses data in the given format.
func Decode(data []byte, format Format) (*File, error) {
	switch format {
	case FormatTOML:
		return decodeTOML(data)
	case FormatYAML:
		return decodeYAML(data)
	}
	return nil, cerrors.New(cerrors.ErrCodeInvalidConfig, "unsupported config format %q", string(format))
}

// Definitions converts the style entries into registry definitions.
func (f *File) Definitions() ([]style.Definition, error) {
	defs := make([]style.Definition, 0, len(f.Styles))
	for _, s := range f.Styles {
		st := style.Style{HLines: s.HLines}
		pairs := []struct {
			key string
			src []string
			dst *[2]string
		}{
			{"oddlines", s.OddLines, &st.OddLines},
			{"evenlines", s.EvenLines, &st.EvenLines},
			{"oddcorners", s.OddCorners, &st.OddCorners},
		}
		for _, p := range pairs {
			if len(p.src) != 2 {
				return nil, cerrors.New(cerrors.ErrCodeInvalidConfig, "style %q: %s must have 2 entries, got %d", s.Name, p.key, len(p.src))
			}
			*p.dst = [2]string{p.src[0], p.src[1]}
		}
		defs = append(defs, style.Definition{Name: s.Name, Style: st, Default: s.Default})
	}
	return defs, nil
}

// Patch converts the defaults table into a registry patch.
func (f *File) Patch() (style.DefaultsPatch, error) {
	d := f.Defaults
	p := style.DefaultsPatch{
		Style:      d.Style,
		Padding:    d.Padding,
		Stretch:    d.Stretch,
		Offset:     d.Offset,
		MinWidth:   d.MinWidth,
		SpaceLines: d.SpaceLines,
	}
	if d.Alignment != nil {
		a, err := align.Parse(*d.Alignment)
		if err != nil {
			return style.DefaultsPatch{}, cerrors.Wrap(cerrors.ErrCodeInvalidConfig, err, "defaults")
		}
		p.Alignment = &a
	}
	return p, nil
}

// Apply registers the file's styles and then its defaults, so an explicit
// defaults.style overrides a style marked default.
func (f *File) Apply(reg *style.Registry) error {
	defs, err := f.Definitions()
	if err != nil {
		return err
	}
	patch, err := f.Patch()
	if err != nil {
		return err
	}
	if len(defs) > 0 {
		if err := reg.Register(defs...); err != nil {
			return cerrors.Wrap(cerrors.ErrCodeInvalidConfig, err, "styles")
		}
	}
	if err := reg.SetDefaults(patch); err != nil {
		return cerrors.Wrap(cerrors.ErrCodeInvalidConfig, err, "defaults")
	}
	return nil
}
