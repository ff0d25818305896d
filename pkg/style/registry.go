package style

import (
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/matzehuels/commentbox/pkg/align"
	cerrors "github.com/matzehuels/commentbox/pkg/errors"
	"github.com/matzehuels/commentbox/pkg/observability"
)

// Defaults are the options a box uses for anything its configuration leaves unset.
type Defaults struct {
	Style      string          // Name of the default style
	Padding    int             // Spaces between side glyphs and content
	Stretch    int             // Added to the natural content width
	Offset     int             // Left margin of every rendered line
	MinWidth   int             // Lower bound on content width
	SpaceLines bool            // Emit blank lines inside the top and bottom borders
	Alignment  align.Alignment // Alignment of lines without an explicit one
}

// DefaultsPatch overwrites the Defaults fields that are non-nil.
type DefaultsPatch struct {
	Style      *string
	Padding    *int
	Stretch    *int
	Offset     *int
	MinWidth   *int
	SpaceLines *bool
	Alignment  *align.Alignment
}

// Definition is a named style submitted to Register. Default marks it as the
// new default style.
type Definition struct {
	Name    string
	Style   Style
	Default bool
}

// Registry maps style names to styles and holds default box options.
// It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	styles   map[string]Style
	defaults Defaults
}

// NewRegistry returns a registry seeded with Builtins and BuiltinDefaults.
func NewRegistry() *Registry {
	return &Registry{
		styles:   Builtins(),
		defaults: BuiltinDefaults(),
	}
}

// NormalizeName returns the canonical form of a style name.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Styles returns a copy of the registered styles keyed by name.
func (r *Registry) Styles() map[string]Style {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return maps.Clone(r.styles)
}

// Names returns the registered style names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.styles))
}

// Lookup returns the style registered under name.
func (r *Registry) Lookup(name string) (Style, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.styles[NormalizeName(name)]
	return s, ok
}

// Resolve is Lookup with an UNKNOWN_STYLE error for missing names.
func (r *Registry) Resolve(name string) (Style, error) {
	s, ok := r.Lookup(name)
	if !ok {
		return Style{}, cerrors.New(cerrors.ErrCodeUnknownStyle, "unknown style %q", name)
	}
	return s, nil
}

// DefaultStyle resolves the current default style name.
func (r *Registry) DefaultStyle() (Style, error) {
	return r.Resolve(r.Defaults().Style)
}

// Register merges defs into the registry, replacing styles with the same name.
//
// The first definition marked Default becomes the default style; later marked
// definitions in the same call are registered but do not change the default.
// Definitions are validated up front and nothing is registered if any fails.
func (r *Registry) Register(defs ...Definition) error {
	for _, d := range defs {
		if NormalizeName(d.Name) == "" {
			return cerrors.New(cerrors.ErrCodeInvalidStyle, "style name must not be empty")
		}
		if err := d.Style.Validate(); err != nil {
			return cerrors.Wrap(cerrors.ErrCodeInvalidStyle, err, "style %q", d.Name)
		}
	}

	r.mu.Lock()
	newDefault := ""
	for _, d := range defs {
		name := NormalizeName(d.Name)
		if d.Default && newDefault == "" {
			newDefault = name
			r.defaults.Style = name
		}
		r.styles[name] = d.Style
	}
	r.mu.Unlock()

	hooks := observability.Registry()
	for _, d := range defs {
		name := NormalizeName(d.Name)
		hooks.OnStyleRegistered(name, name == newDefault)
	}
	return nil
}

// Defaults returns the current default options.
func (r *Registry) Defaults() Defaults {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaults
}

// SetDefaults overwrites only the fields set in p. The defaults are left
// untouched if any provided value is out of range.
func (r *Registry) SetDefaults(p DefaultsPatch) error {
	for _, f := range []struct {
		name string
		v    *int
	}{{"padding", p.Padding}, {"offset", p.Offset}, {"min_width", p.MinWidth}} {
		if f.v != nil && *f.v < 0 {
			return cerrors.InvalidArgument("default %s must not be negative, got %d", f.name, *f.v)
		}
	}
	if p.Alignment != nil && !p.Alignment.Valid() {
		return cerrors.InvalidArgument("default alignment %q must be left, right, or center", string(*p.Alignment))
	}

	var changed []string
	r.mu.Lock()
	if p.Style != nil {
		r.defaults.Style = NormalizeName(*p.Style)
		changed = append(changed, "style")
	}
	if p.Padding != nil {
		r.defaults.Padding = *p.Padding
		changed = append(changed, "padding")
	}
	if p.Stretch != nil {
		r.defaults.Stretch = *p.Stretch
		changed = append(changed, "stretch")
	}
	if p.Offset != nil {
		r.defaults.Offset = *p.Offset
		changed = append(changed, "offset")
	}
	if p.MinWidth != nil {
		r.defaults.MinWidth = *p.MinWidth
		changed = append(changed, "min_width")
	}
	if p.SpaceLines != nil {
		r.defaults.SpaceLines = *p.SpaceLines
		changed = append(changed, "spacelines")
	}
	if p.Alignment != nil {
		r.defaults.Alignment = *p.Alignment
		changed = append(changed, "alignment")
	}
	r.mu.Unlock()

	if len(changed) > 0 {
		observability.Registry().OnDefaultsChanged(changed)
	}
	return nil
}
