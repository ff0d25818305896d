package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/commentbox/pkg/box"
	"github.com/matzehuels/commentbox/pkg/style"
)

// stylesCommand creates the styles command for listing registered styles.
func (c *CLI) stylesCommand() *cobra.Command {
	var preview bool

	cmd := &cobra.Command{
		Use:   "styles",
		Short: "List the available box styles",
		Long: `List the built-in styles and any added by the config file.

The default style is marked with ●. With --preview every style is drawn
around its own name using the current default options.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if preview {
				return previewStyles(out, c.Registry)
			}
			fmt.Fprintln(out, stylesTable(c.Registry))
			printInfo(cmd.ErrOrStderr(), "Default style: %s", StyleHighlight.Render(c.Registry.Defaults().Style))
			return nil
		},
	}

	cmd.Flags().BoolVar(&preview, "preview", false, "draw a sample box in each style")

	return cmd
}

// stylesTable renders one row per registered style, sorted by name.
func stylesTable(reg *style.Registry) string {
	def := reg.Defaults().Style
	styles := reg.Styles()

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Options.DrawBorder = false

	tbl.AppendHeader(table.Row{"", "Name", "HLines", "Odd lines", "Even lines", "Corners"})
	for _, name := range reg.Names() {
		s := styles[name]
		mark := ""
		if name == def {
			mark = StyleHighlight.Render(iconDefault)
		}
		tbl.AppendRow(table.Row{
			mark,
			name,
			s.HLines,
			glyphPair(s.OddLines),
			glyphPair(s.EvenLines),
			glyphPair(s.OddCorners),
		})
	}
	tbl.AppendFooter(table.Row{"", fmt.Sprintf("%d styles", len(styles))})

	return tbl.Render()
}

// glyphPair shows a left/right glyph pair with the gap the content goes in.
func glyphPair(p [2]string) string {
	return fmt.Sprintf("%q … %q", p[0], p[1])
}

// previewStyles draws each style's name in a box of that style.
func previewStyles(w io.Writer, reg *style.Registry) error {
	for i, name := range reg.Names() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		b, err := box.New(reg, box.Config{Text: name, Style: name})
		if err != nil {
			return err
		}
		out, err := b.Render()
		if err != nil {
			return err
		}
		printHeading(w, name)
		fmt.Fprintln(w, out)
	}
	return nil
}
