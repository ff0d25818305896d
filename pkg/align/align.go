// Package align provides alignment identifiers and the string justification
// helpers used to lay out comment box content.
//
// Widths are display widths as reported by go-runewidth, so wide runes count
// as two columns. For plain ASCII text the width equals the byte length.
package align

import (
	"strings"

	"github.com/mattn/go-runewidth"

	cerrors "github.com/matzehuels/commentbox/pkg/errors"
)

// Alignment positions a line of text within a fixed-width field.
type Alignment string

// Supported alignments.
const (
	Left   Alignment = "left"
	Right  Alignment = "right"
	Center Alignment = "center"
)

// Valid reports whether a is one of Left, Right or Center.
func (a Alignment) Valid() bool {
	switch a {
	case Left, Right, Center:
		return true
	}
	return false
}

// Parse normalizes s (case-insensitive, surrounding whitespace and a leading
// ':' ignored) to an Alignment.
func Parse(s string) (Alignment, error) {
	a := Alignment(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ":")))
	if !a.Valid() {
		return "", cerrors.InvalidArgument("alignment %q must be left, right, or center", s)
	}
	return a, nil
}

// IsEven reports whether n is divisible by two.
func IsEven(n int) bool { return n%2 == 0 }

// Width returns the display width of s.
func Width(s string) int { return runewidth.StringWidth(s) }

// Spaces returns n spaces, or the empty string when n <= 0.
func Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// LeftJustify pads s with spaces on the right up to width.
func LeftJustify(s string, width int) string {
	return s + Spaces(width-Width(s))
}

// RightJustify pads s with spaces on the left up to width.
func RightJustify(s string, width int) string {
	return Spaces(width-Width(s)) + s
}

// CenterJustify splits the remaining space around s, putting the extra column
// on the right when it does not divide evenly. width must be even.
func CenterJustify(s string, width int) (string, error) {
	if !IsEven(width) {
		return "", cerrors.InvalidArgument("center alignment needs an even width, got %d", width)
	}
	rest := width - Width(s)
	left := rest / 2
	if rest < 0 {
		left = 0
	}
	return Spaces(left) + s + Spaces(rest-left), nil
}

// Pad aligns s within width according to a. A string wider than the field is
// an INVALID_ARGUMENT error since it would break the box edges.
func Pad(s string, a Alignment, width int) (string, error) {
	if w := Width(s); w > width {
		return "", cerrors.InvalidArgument("line %q is %d columns wide, field is %d", s, w, width)
	}
	switch a {
	case Left:
		return LeftJustify(s, width), nil
	case Right:
		return RightJustify(s, width), nil
	case Center:
		return CenterJustify(s, width)
	}
	return "", cerrors.InvalidArgument("alignment %q must be left, right, or center", string(a))
}
