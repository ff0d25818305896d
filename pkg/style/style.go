// Package style defines comment box glyph sets and the registry that maps
// style names to them.
//
// A [Style] is an immutable value. A [Registry] holds the named styles plus
// the default options boxes fall back to; it is created explicitly and passed
// to whatever builds boxes, so two registries never share state.
//
//	reg := style.NewRegistry()
//	_ = reg.Register(style.Definition{Name: "custom", Style: s, Default: true})
//	st, _ := reg.DefaultStyle() // custom
package style

import (
	"github.com/matzehuels/commentbox/pkg/align"
	cerrors "github.com/matzehuels/commentbox/pkg/errors"
)

// Style is the set of glyphs that draw one comment box.
type Style struct {
	// HLines is repeated to fill the top and bottom borders. It must be exactly
	// two columns wide since the fill count is computed in pairs.
	HLines string

	// OddLines flanks spacer lines and odd-parity content lines (left, right).
	OddLines [2]string

	// EvenLines flanks even-parity content lines (left, right).
	EvenLines [2]string

	// OddCorners holds the glyph closing the top border after the rule and the
	// glyph opening the bottom border before it.
	OddCorners [2]string
}

// Validate checks that every glyph is present and HLines is two columns wide.
func (s Style) Validate() error {
	if n := align.Width(s.HLines); n != 2 {
		return cerrors.New(cerrors.ErrCodeInvalidStyle, "hlines must be 2 columns wide, got %q (%d)", s.HLines, n)
	}
	pairs := []struct {
		name  string
		glyph [2]string
	}{
		{"oddlines", s.OddLines},
		{"evenlines", s.EvenLines},
		{"oddcorners", s.OddCorners},
	}
	for _, p := range pairs {
		if p.glyph[0] == "" || p.glyph[1] == "" {
			return cerrors.New(cerrors.ErrCodeInvalidStyle, "%s glyphs must not be empty", p.name)
		}
	}
	return nil
}
