package style

import "github.com/matzehuels/commentbox/pkg/align"

// Built-in style names.
const (
	Stub     = "stub"
	Window   = "window"
	Parallax = "parallax"
	Zigzag   = "zigzag"
	Money    = "money"
)

// Builtins returns the styles every new Registry starts with.
func Builtins() map[string]Style {
	return map[string]Style{
		Stub: {
			HLines:     "**",
			OddLines:   [2]string{`\ `, ` \`},
			EvenLines:  [2]string{"/ ", " /"},
			OddCorners: [2]string{"=/", "/="},
		},
		Window: {
			HLines:     "**",
			OddLines:   [2]string{`\*`, `*\`},
			EvenLines:  [2]string{"/+", "+/"},
			OddCorners: [2]string{"+/", "/+"},
		},
		Parallax: {
			HLines:     "==",
			OddLines:   [2]string{"||", "||"},
			EvenLines:  [2]string{"||", "||"},
			OddCorners: [2]string{"/#", "#/"},
		},
		Zigzag: {
			HLines:     "=-",
			OddLines:   [2]string{`\ `, ` \`},
			EvenLines:  [2]string{"/ ", " /"},
			OddCorners: [2]string{"=O", "O-"},
		},
		Money: {
			HLines:     "><",
			OddLines:   [2]string{"$!", "$!"},
			EvenLines:  [2]string{"!$", "!$"},
			OddCorners: [2]string{">X", "X<"},
		},
	}
}

// BuiltinDefaults returns the default options every new Registry starts with.
func BuiltinDefaults() Defaults {
	return Defaults{
		Style:      Stub,
		Padding:    4,
		Stretch:    0,
		Offset:     2,
		MinWidth:   0,
		SpaceLines: true,
		Alignment:  align.Left,
	}
}
