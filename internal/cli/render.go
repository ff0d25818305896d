package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/commentbox/pkg/align"
	"github.com/matzehuels/commentbox/pkg/box"
	cerrors "github.com/matzehuels/commentbox/pkg/errors"
)

// renderOpts holds the command-line flags for the render command.
// Box options only take effect when the flag was given explicitly; otherwise
// the registry defaults (built-in or from the config file) apply.
type renderOpts struct {
	style      string   // registered style name
	padding    int      // spaces between side glyphs and content
	stretch    int      // extra content width
	offset     int      // left margin
	minWidth   int      // lower bound on content width
	spaceLines bool     // blank lines inside the borders
	align      []string // one alignment per line, last one repeats
	file       string   // read text from this file ("-" for stdin)
	output     string   // write the box here instead of stdout
	copy       bool     // also copy the box to the clipboard
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [text...]",
		Short: "Draw a comment box around text",
		Long: `Draw a comment box around text.

Text comes from the arguments (one line each), from --file, or from stdin
when it is piped. Newlines inside an argument also start a new line.`,
		Example: `  commentbox render "Lenny's box"
  commentbox render --style window --align center Title "a longer subtitle"
  git log -1 --format=%s | commentbox render --copy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(args, opts.file, cmd.InOrStdin())
			if err != nil {
				return err
			}
			cfg, err := boxConfig(cmd, &opts, text)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), cfg, &opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&opts.style, "style", "s", "", "glyph style (see 'commentbox styles')")
	cmd.Flags().IntVarP(&opts.padding, "padding", "p", 0, "spaces between the side glyphs and the text")
	cmd.Flags().IntVar(&opts.stretch, "stretch", 0, "extra width added to the widest line")
	cmd.Flags().IntVar(&opts.offset, "offset", 0, "spaces before every line of the box")
	cmd.Flags().IntVar(&opts.minWidth, "min-width", 0, "minimum content width")
	cmd.Flags().BoolVar(&opts.spaceLines, "spacelines", false, "add blank lines inside the top and bottom borders")
	cmd.Flags().StringSliceVarP(&opts.align, "align", "a", nil, "alignment per line: left, right, center (repeatable)")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "read text from file ('-' for stdin)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the box to a file instead of stdout")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "copy the box to the clipboard")

	_ = cmd.RegisterFlagCompletionFunc("style", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return c.Registry.Names(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("align", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{string(align.Left), string(align.Right), string(align.Center)}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// runRender builds the box and writes it to the requested destinations.
func (c *CLI) runRender(ctx context.Context, cfg box.Config, opts *renderOpts, stdout, stderr io.Writer) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	b, err := box.New(c.Registry, cfg)
	if err != nil {
		return err
	}
	out, err := b.Render()
	if err != nil {
		return err
	}
	prog.done("Rendered box")

	if opts.output != "" {
		if err := os.WriteFile(opts.output, []byte(out+"\n"), 0o644); err != nil {
			return cerrors.Wrap(cerrors.ErrCodeInternal, err, "write %s", opts.output)
		}
		printSuccess(stderr, "Wrote box")
		printFile(stderr, opts.output)
	} else if _, err := io.WriteString(stdout, out+"\n"); err != nil {
		return err
	}

	if opts.copy {
		if err := c.copyText(out); err != nil {
			return cerrors.Wrap(cerrors.ErrCodeInternal, err, "copy to clipboard")
		}
		printSuccess(stderr, "Copied to clipboard")
	}
	return nil
}

// boxConfig turns the changed flags into a box.Config.
func boxConfig(cmd *cobra.Command, opts *renderOpts, text string) (box.Config, error) {
	flags := cmd.Flags()
	cfg := box.Config{Text: text}

	if flags.Changed("style") {
		cfg.Style = opts.style
	}
	if flags.Changed("padding") {
		cfg.Padding = &opts.padding
	}
	if flags.Changed("stretch") {
		cfg.Stretch = &opts.stretch
	}
	if flags.Changed("offset") {
		cfg.Offset = &opts.offset
	}
	if flags.Changed("min-width") {
		cfg.MinWidth = &opts.minWidth
	}
	if flags.Changed("spacelines") {
		cfg.SpaceLines = &opts.spaceLines
	}
	if flags.Changed("align") {
		values := make([]align.Alignment, 0, len(opts.align))
		for _, s := range opts.align {
			a, err := align.Parse(s)
			if err != nil {
				return box.Config{}, err
			}
			values = append(values, a)
		}
		cfg.Alignment = values
	}
	return cfg, nil
}

// readText picks the input source: --file, then arguments, then piped stdin.
func readText(args []string, file string, stdin io.Reader) (string, error) {
	switch {
	case file == "-":
		return readAll(stdin)
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", cerrors.Wrap(cerrors.ErrCodeInvalidArgument, err, "read %s", file)
		}
		return trimNewline(string(data)), nil
	case len(args) > 0:
		return strings.Join(args, "\n"), nil
	case isPiped(stdin):
		return readAll(stdin)
	}
	return "", cerrors.InvalidArgument("no text given: pass arguments, --file, or pipe into stdin")
}

func readAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", cerrors.Wrap(cerrors.ErrCodeInvalidArgument, err, "read stdin")
	}
	return trimNewline(string(data)), nil
}

// trimNewline drops the final line terminator so it does not become an
// empty line in the box.
func trimNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

// isPiped reports whether r carries input that is not an interactive
// terminal. Readers that are not files (as in tests) count as piped.
func isPiped(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return r != nil
	}
	return !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
}
