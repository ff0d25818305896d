package box

import (
	"strings"
	"time"

	"github.com/matzehuels/commentbox/pkg/align"
	"github.com/matzehuels/commentbox/pkg/observability"
)

// Box delimiters. The style supplies the glyphs on the other end of each border.
const (
	openToken  = "/*"
	closeToken = "*/"
)

// Render draws the box. The result has no trailing newline.
func (b *Box) Render() (string, error) {
	start := time.Now()
	lines, err := b.lines()
	observability.Render().OnRender(len(lines), b.maxLineLength, time.Since(start), err)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// String implements fmt.Stringer. It returns the empty string if the box
// cannot be rendered.
func (b *Box) String() string {
	s, err := b.Render()
	if err != nil {
		return ""
	}
	return s
}

// lines returns the rendered lines in order: top border, optional spacer,
// one line per text slot, optional spacer, bottom border.
func (b *Box) lines() ([]string, error) {
	st := b.style
	inner := b.maxLineLength + 2*b.padding
	rule := strings.Repeat(st.HLines, inner/2)
	pad := align.Spaces(b.padding)

	out := make([]string, 0, b.slots.len()+4)
	out = append(out, openToken+rule+st.OddCorners[0])

	spacer := st.OddLines[0] + align.Spaces(inner) + st.OddLines[1]
	if b.spaceLines {
		out = append(out, spacer)
	}

	// Spacer lines take the odd glyphs; without them the first content line
	// shifts parity so the alternation looks the same.
	shift := 1
	if b.spaceLines {
		shift = 0
	}
	for i, text := range b.slots.text {
		cell, err := align.Pad(text, b.slots.align[i], b.maxLineLength)
		if err != nil {
			return nil, err
		}
		sides := st.OddLines
		if align.IsEven(i + shift) {
			sides = st.EvenLines
		}
		out = append(out, sides[0]+pad+cell+pad+sides[1])
	}

	if b.spaceLines {
		out = append(out, spacer)
	}
	out = append(out, st.OddCorners[1]+rule+closeToken)

	if margin := align.Spaces(b.offset); margin != "" {
		for i, line := range out {
			if line != "" {
				out[i] = margin + line
			}
		}
	}
	return out, nil
}
