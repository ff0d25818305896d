package box

import (
	"strings"

	"github.com/matzehuels/commentbox/pkg/align"
	cerrors "github.com/matzehuels/commentbox/pkg/errors"
	"github.com/matzehuels/commentbox/pkg/style"
)

// Config describes one box. Nil fields fall back to the registry defaults;
// an explicit zero or false is kept.
type Config struct {
	// Text is a string (split on newlines) or a []string of lines.
	Text any

	// Style is nil (registry default), a registered style name, or an inline
	// style.Style / *style.Style.
	Style any

	// Alignment is nil (registry default for every line), a single
	// align.Alignment or string applied to every line, or a slice of either
	// with one entry per line. A short slice is padded with its last entry.
	Alignment any

	Padding    *int
	Stretch    *int
	Offset     *int
	MinWidth   *int
	SpaceLines *bool
}

// Box is a configured comment box ready to render. A Box is not safe for
// concurrent mutation.
type Box struct {
	reg *style.Registry

	padding    int
	stretch    int
	offset     int
	minWidth   int
	spaceLines bool
	style      style.Style

	slots         slots
	maxLineLength int
}

// New builds a box from cfg, resolving unset options from reg. A nil reg
// means a fresh registry holding only the built-in styles.
func New(reg *style.Registry, cfg Config) (*Box, error) {
	if reg == nil {
		reg = style.NewRegistry()
	}
	d := reg.Defaults()

	b := &Box{
		reg:        reg,
		padding:    intOr(cfg.Padding, d.Padding),
		stretch:    intOr(cfg.Stretch, d.Stretch),
		offset:     intOr(cfg.Offset, d.Offset),
		minWidth:   intOr(cfg.MinWidth, d.MinWidth),
		spaceLines: d.SpaceLines,
	}
	if cfg.SpaceLines != nil {
		b.spaceLines = *cfg.SpaceLines
	}
	for _, f := range []struct {
		name string
		v    int
	}{{"padding", b.padding}, {"offset", b.offset}, {"min_width", b.minWidth}} {
		if f.v < 0 {
			return nil, cerrors.InvalidArgument("%s must not be negative, got %d", f.name, f.v)
		}
	}

	if err := b.SetText(cfg.Text); err != nil {
		return nil, err
	}
	if err := b.SetAlignment(cfg.Alignment); err != nil {
		return nil, err
	}
	if err := b.SetStyle(cfg.Style); err != nil {
		return nil, err
	}
	b.evenWidth()
	return b, nil
}

// SetText replaces the box content. v must be a string, split on newlines
// with trailing blank lines dropped, or a []string.
func (b *Box) SetText(v any) error {
	var lines []string
	switch t := v.(type) {
	case string:
		lines = splitLines(t)
	case []string:
		lines = t
	default:
		return cerrors.InvalidArgument("text must be a string or []string, got %T", v)
	}
	if len(lines) == 0 {
		lines = []string{""}
	}

	b.slots.setText(lines, b.reg.Defaults().Alignment)
	b.measure()
	return nil
}

// SetAlignment replaces the per-line alignments. See Config.Alignment for the
// accepted shapes.
func (b *Box) SetAlignment(v any) error {
	fill := b.reg.Defaults().Alignment

	var values []align.Alignment
	switch a := v.(type) {
	case nil:
		values = []align.Alignment{fill}
	case align.Alignment:
		if !a.Valid() {
			return cerrors.InvalidArgument("alignment %q must be left, right, or center", string(a))
		}
		values = []align.Alignment{a}
	case string:
		parsed, err := align.Parse(a)
		if err != nil {
			return err
		}
		values = []align.Alignment{parsed}
	case []align.Alignment:
		for _, x := range a {
			if !x.Valid() {
				return cerrors.InvalidArgument("alignment %q must be left, right, or center", string(x))
			}
		}
		values = a
	case []string:
		values = make([]align.Alignment, len(a))
		for i, s := range a {
			parsed, err := align.Parse(s)
			if err != nil {
				return err
			}
			values[i] = parsed
		}
	default:
		return cerrors.InvalidArgument("alignment must be an Alignment, string, or slice of either, got %T", v)
	}

	// A single value covers every line, including any blank slot already there.
	if len(values) == 1 {
		values = fitAlign(values, b.slots.len(), fill)
	}
	b.slots.setAlign(values, fill)
	return nil
}

// SetStyle selects the glyph set: nil for the registry default, a registered
// name, or an inline style.Style / *style.Style.
func (b *Box) SetStyle(v any) error {
	switch s := v.(type) {
	case nil:
		st, err := b.reg.DefaultStyle()
		if err != nil {
			return err
		}
		b.style = st
	case string:
		st, err := b.reg.Resolve(s)
		if err != nil {
			return err
		}
		b.style = st
	case style.Style:
		if err := s.Validate(); err != nil {
			return err
		}
		b.style = s
	case *style.Style:
		if s == nil {
			return b.SetStyle(nil)
		}
		return b.SetStyle(*s)
	default:
		return cerrors.InvalidArgument("style must be a name or style.Style, got %T", v)
	}
	return nil
}

// SetStretch changes the stretch and recomputes the content width.
func (b *Box) SetStretch(n int) *Box {
	b.stretch = n
	b.measure()
	return b
}

// SetPadding sets the horizontal padding. Negative values are treated as zero.
func (b *Box) SetPadding(n int) *Box {
	b.padding = max(n, 0)
	return b
}

// SetOffset sets the left margin. Negative values are treated as zero.
func (b *Box) SetOffset(n int) *Box {
	b.offset = max(n, 0)
	return b
}

// SetSpaceLines toggles the blank lines inside the top and bottom borders.
func (b *Box) SetSpaceLines(on bool) *Box {
	b.spaceLines = on
	return b
}

// Text returns a copy of the text slots, including any blank slot added for parity.
func (b *Box) Text() []string { return append([]string(nil), b.slots.text...) }

// Alignment returns a copy of the per-slot alignments.
func (b *Box) Alignment() []align.Alignment { return append([]align.Alignment(nil), b.slots.align...) }

// MaxLineLength returns the content field width. It is always even.
func (b *Box) MaxLineLength() int { return b.maxLineLength }

func (b *Box) Padding() int       { return b.padding }
func (b *Box) Offset() int        { return b.offset }
func (b *Box) Stretch() int       { return b.stretch }
func (b *Box) MinWidth() int      { return b.minWidth }
func (b *Box) SpaceLines() bool   { return b.spaceLines }
func (b *Box) Style() style.Style { return b.style }

// measure sets maxLineLength from the widest line plus stretch, raised to
// minWidth and rounded up to even.
func (b *Box) measure() {
	widest := 0
	for _, line := range b.slots.text {
		widest = max(widest, align.Width(line))
	}
	n := widest + b.stretch
	if n <= b.minWidth {
		n = b.minWidth
	}
	b.maxLineLength = n
	b.evenWidth()
}

func (b *Box) evenWidth() {
	if !align.IsEven(b.maxLineLength) {
		b.maxLineLength++
	}
}

func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func intOr(v *int, def int) int {
	if v != nil {
		return *v
	}
	return def
}
