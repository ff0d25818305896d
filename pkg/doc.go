// Package pkg provides the core libraries for commentbox.
//
// # Overview
//
// Commentbox draws decorative comment boxes around lines of text. A box opens
// with "/*", closes with "*/", and takes every other glyph from a named
// style. The pkg directory is organized into a small stack:
//
//  1. [align] - Display width measurement and line justification
//  2. [style] - Glyph styles and the registry of styles and default options
//  3. [box] - Box configuration, layout, and rendering
//  4. [config] - TOML/YAML files that add styles and override defaults
//
// # Architecture
//
// The typical data flow:
//
//	style.NewRegistry()  (built-in styles + defaults)
//	         ↓
//	config.Load(path).Apply(reg)  (optional)
//	         ↓
//	box.New(reg, box.Config{...})  (unset options fall back to reg)
//	         ↓
//	Box.Render()  (string, no trailing newline)
//
// # Quick Start
//
//	reg := style.NewRegistry()
//	b, err := box.New(reg, box.Config{
//	    Text:      []string{"Title", "a longer subtitle"},
//	    Style:     style.Window,
//	    Alignment: align.Center,
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(b)
//
// # Supporting Packages
//
// [errors] - Structured errors with machine-readable codes shared by every
// package.
//
// [observability] - Hooks fired on render and registry changes. No-ops unless
// a consumer installs its own.
//
// [buildinfo] - Version information set at build time.
//
// [align]: https://pkg.go.dev/github.com/matzehuels/commentbox/pkg/align
// [style]: https://pkg.go.dev/github.com/matzehuels/commentbox/pkg/style
// [box]: https://pkg.go.dev/github.com/matzehuels/commentbox/pkg/box
// [config]: https://pkg.go.dev/github.com/matzehuels/commentbox/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/commentbox/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/commentbox/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/commentbox/pkg/buildinfo
package pkg
