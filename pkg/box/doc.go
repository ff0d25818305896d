// Package box renders text inside a decorative ASCII comment border.
//
// # Overview
//
// A [Box] combines content lines, per-line alignment, and a glyph set from a
// [style.Registry]. Options left unset in [Config] come from the registry
// defaults:
//
//	reg := style.NewRegistry()
//	b, err := box.New(reg, box.Config{Text: "Lenny's box"})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(b)
//
// prints
//
//	  /*********************=/
//	  \                      \
//	  /     Lenny's box      /
//	  \                      \
//	  /=*********************/
//
// # Layout
//
// The content field is as wide as the widest line plus stretch, never
// narrower than the minimum width, and rounded up to an even number of
// columns so centering and the two-character border rule come out exact.
//
// Side glyphs alternate between the style's even and odd pairs. To keep the
// alternation symmetric the number of text slots is always odd: an even
// number of lines gets a blank slot inserted after the first line, and a blank
// second slot is removed again if a later change makes the count even.
//
// # Loose input
//
// [FromValue] and [ConfigFromMap] accept the untyped shapes produced by JSON,
// TOML or YAML decoders and report anything else as INVALID_ARGUMENT.
//
// [style.Registry]: github.com/matzehuels/commentbox/pkg/style.Registry
package box
