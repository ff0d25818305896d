package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/commentbox/pkg/box"
	cerrors "github.com/matzehuels/commentbox/pkg/errors"
	"github.com/matzehuels/commentbox/pkg/observability"
	"github.com/matzehuels/commentbox/pkg/style"
)

// result captures one command invocation.
type result struct {
	cli    *CLI
	stdout string
	stderr string
	err    error
}

// execute runs the root command with args and stdin. Unless args name a
// config file, the user's config is ignored.
func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	t.Cleanup(observability.Reset)

	if !slices.ContainsFunc(args, func(a string) bool { return strings.HasPrefix(a, "--config") }) {
		args = append([]string{"--no-config"}, args...)
	}

	var stdout, stderr bytes.Buffer
	c := New(&stderr, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.ExecuteContext(context.Background())
	return result{cli: c, stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// rendered returns what box.New(reg, cfg).Render() produces plus the
// trailing newline the CLI adds.
func rendered(t *testing.T, reg *style.Registry, cfg box.Config) string {
	t.Helper()
	b, err := box.New(reg, cfg)
	if err != nil {
		t.Fatalf("box.New() error = %v", err)
	}
	out, err := b.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return out + "\n"
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const customConfig = `
[defaults]
padding = 1
offset = 0

[styles.curly]
hlines = "~~"
oddlines = ["{ ", " }"]
evenlines = ["[ ", " ]"]
oddcorners = ["~}", "{~"]
default = true
`

func TestConfigFileAppliesToRender(t *testing.T) {
	path := writeConfig(t, "config.toml", customConfig)

	res := execute(t, "", "--config", path, "render", "hi")
	if res.err != nil {
		t.Fatalf("render error = %v", res.err)
	}

	want := "/*~~~~~}\n" +
		"{      }\n" +
		"[  hi  ]\n" +
		"{      }\n" +
		"{~~~~~*/\n"
	if res.stdout != want {
		t.Errorf("stdout =\n%s\nwant\n%s", res.stdout, want)
	}
	if got := res.cli.Registry.Defaults().Style; got != "curly" {
		t.Errorf("default style = %q, want curly", got)
	}
}

func TestConfigFileYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
defaults:
  style: window
  spacelines: false
`)
	res := execute(t, "", "--config", path, "render", "x")
	if res.err != nil {
		t.Fatalf("render error = %v", res.err)
	}

	off := false
	want := rendered(t, style.NewRegistry(), box.Config{Text: "x", Style: style.Window, SpaceLines: &off})
	if res.stdout != want {
		t.Errorf("stdout =\n%s\nwant\n%s", res.stdout, want)
	}
}

func TestConfigUnknownKeysWarn(t *testing.T) {
	path := writeConfig(t, "config.toml", "[defaults]\ncolour = \"red\"\n")

	res := execute(t, "", "--config", path, "render", "x")
	if res.err != nil {
		t.Fatalf("render error = %v", res.err)
	}
	if !strings.Contains(res.stderr, "unknown config key") || !strings.Contains(res.stderr, "defaults.colour") {
		t.Errorf("stderr should warn about defaults.colour, got %q", res.stderr)
	}
}

func TestConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.toml") }},
		{"malformed", func(t *testing.T) string { return writeConfig(t, "config.toml", "[defaults\n") }},
		{"bad style", func(t *testing.T) string {
			return writeConfig(t, "config.toml", "[styles.x]\nhlines = \"***\"\noddlines = [\"a\", \"b\"]\nevenlines = [\"a\", \"b\"]\noddcorners = [\"a\", \"b\"]\n")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := execute(t, "", "--config", tt.path(t), "render", "x")
			if !cerrors.Is(res.err, cerrors.ErrCodeInvalidConfig) {
				t.Errorf("error = %v, want INVALID_CONFIG", res.err)
			}
			if res.stdout != "" {
				t.Errorf("stdout should be empty on error, got %q", res.stdout)
			}
		})
	}
}

func TestReportError(t *testing.T) {
	var buf bytes.Buffer
	ReportError(&buf, cerrors.New(cerrors.ErrCodeUnknownStyle, "unknown style %q", "nope"))

	out := buf.String()
	if !strings.Contains(out, `unknown style "nope"`) || !strings.Contains(out, "UNKNOWN_STYLE") {
		t.Errorf("ReportError() = %q", out)
	}
}

func TestCompletion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			res := execute(t, "", "completion", shell)
			if res.err != nil {
				t.Fatalf("completion %s error = %v", shell, res.err)
			}
			if !strings.Contains(res.stdout, appName) {
				t.Errorf("completion %s output does not mention %s", shell, appName)
			}
		})
	}

	if res := execute(t, "", "completion", "tcsh"); res.err == nil {
		t.Error("completion for an unsupported shell should fail")
	}
}

func TestCompletionIgnoresBrokenConfig(t *testing.T) {
	path := writeConfig(t, "config.toml", "[defaults\n")

	res := execute(t, "", "--config", path, "completion", "bash")
	if res.err != nil {
		t.Fatalf("completion error = %v", res.err)
	}
	if res.stdout == "" {
		t.Error("completion should still print a script")
	}
}
