package box

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/matzehuels/commentbox/pkg/align"
	cerrors "github.com/matzehuels/commentbox/pkg/errors"
	"github.com/matzehuels/commentbox/pkg/style"
)

func TestFromValue(t *testing.T) {
	reg := style.NewRegistry()

	tests := []struct {
		name string
		v    any
	}{
		{name: "string", v: "hello"},
		{name: "config", v: Config{Text: "hello"}},
		{name: "config pointer", v: &Config{Text: "hello"}},
		{name: "map", v: map[string]any{"text": "hello"}},
	}

	want := mustNew(t, reg, Config{Text: "hello"}).String()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := FromValue(reg, tt.v)
			if err != nil {
				t.Fatalf("FromValue() error = %v", err)
			}
			if got := b.String(); got != want {
				t.Errorf("FromValue(%T) rendered\n%s\nwant\n%s", tt.v, got, want)
			}
		})
	}
}

func TestFromValueRejectsOtherShapes(t *testing.T) {
	for _, v := range []any{nil, 42, 3.5, true, []string{"a"}, (*Config)(nil)} {
		if _, err := FromValue(nil, v); !cerrors.Is(err, cerrors.ErrCodeInvalidArgument) {
			t.Errorf("FromValue(%#v) error = %v, want INVALID_ARGUMENT", v, err)
		}
	}
}

func TestFromValueJSON(t *testing.T) {
	const doc = `{
		"text": ["A", "BB"],
		"padding": 1,
		"offset": "0",
		"min_width": 3.9,
		"spacelines": false,
		"alignment": ["right", "center"],
		"style": {
			"hlines": "--",
			"oddlines": ["( ", " )"],
			"evenlines": ["< ", " >"],
			"oddcorners": ["-)", "(-"]
		}
	}`

	var m map[string]any
	if err := json.Unmarshal([]byte(doc), &m); err != nil {
		t.Fatal(err)
	}
	b, err := FromValue(nil, m)
	if err != nil {
		t.Fatalf("FromValue() error = %v", err)
	}

	if b.Padding() != 1 || b.Offset() != 0 || b.MinWidth() != 3 || b.SpaceLines() {
		t.Errorf("options = padding %d offset %d min %d spacelines %v", b.Padding(), b.Offset(), b.MinWidth(), b.SpaceLines())
	}
	if got := b.Alignment(); !slices.Equal(got, []align.Alignment{align.Right, align.Left, align.Center}) {
		t.Errorf("Alignment() = %q", got)
	}
	if b.Style().HLines != "--" || b.Style().OddCorners != [2]string{"-)", "(-"} {
		t.Errorf("Style() = %+v", b.Style())
	}

	want := "/*-------)\n" +
		"(     A  )\n" +
		"<        >\n" +
		"(   BB   )\n" +
		"(-------*/"
	if got := b.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestConfigFromMapKeys(t *testing.T) {
	for _, key := range []string{"min_width", "minWidth", "MIN-WIDTH", "minwidth"} {
		cfg, err := ConfigFromMap(map[string]any{"text": "x", key: 8})
		if err != nil {
			t.Fatalf("%s: error = %v", key, err)
		}
		if cfg.MinWidth == nil || *cfg.MinWidth != 8 {
			t.Errorf("%s: MinWidth = %v, want 8", key, cfg.MinWidth)
		}
	}

	cfg, err := ConfigFromMap(map[string]any{"text": "x", "colour": "red", "padding": nil})
	if err != nil {
		t.Fatalf("unknown keys should be ignored, got %v", err)
	}
	if cfg.Padding != nil {
		t.Error("nil values should be treated as absent")
	}
}

func TestConfigFromMapRejectsDuplicateKeys(t *testing.T) {
	tests := []map[string]any{
		{"min_width": 4, "minWidth": 8},
		{"align": "left", "alignment": "right"},
		{"Padding": 1, "padding": 2},
	}

	for _, m := range tests {
		for range 5 {
			if _, err := ConfigFromMap(m); !cerrors.Is(err, cerrors.ErrCodeInvalidArgument) {
				t.Errorf("ConfigFromMap(%v) error = %v, want INVALID_ARGUMENT", m, err)
			}
		}
	}

	cfg, err := ConfigFromMap(map[string]any{"padding": nil, "Padding": 3, "colour": "red", "COLOUR": "blue"})
	if err != nil {
		t.Fatalf("nil values and unknown keys should not conflict, got %v", err)
	}
	if *cfg.Padding != 3 {
		t.Errorf("Padding = %d, want 3", *cfg.Padding)
	}
}

func TestConfigFromMapCoercion(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want int
	}{
		{name: "int", v: 5, want: 5},
		{name: "int64", v: int64(6), want: 6},
		{name: "uint8", v: uint8(7), want: 7},
		{name: "float truncates", v: 4.8, want: 4},
		{name: "numeric string", v: " 9 ", want: 9},
		{name: "float string", v: "2.5", want: 2},
		{name: "json number", v: json.Number("3"), want: 3},
		{name: "negative float truncates toward zero", v: -2.7, want: -2},
		{name: "float32", v: float32(6.5), want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ConfigFromMap(map[string]any{"padding": tt.v})
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			if *cfg.Padding != tt.want {
				t.Errorf("Padding = %d, want %d", *cfg.Padding, tt.want)
			}
		})
	}
}

func TestConfigFromMapErrors(t *testing.T) {
	tests := []struct {
		name string
		m    map[string]any
	}{
		{name: "non-numeric padding", m: map[string]any{"padding": "wide"}},
		{name: "bool offset", m: map[string]any{"offset": true}},
		{name: "non-bool spacelines", m: map[string]any{"spacelines": 3}},
		{name: "unparsable spacelines", m: map[string]any{"spacelines": "maybe"}},
		{name: "slice padding", m: map[string]any{"padding": []any{1}}},
		{name: "mixed text list", m: map[string]any{"text": []any{"a", 1}}},
		{name: "mixed alignment list", m: map[string]any{"alignment": []any{"left", 2}}},
		{name: "style without hlines", m: map[string]any{"style": map[string]any{"oddlines": []any{"a", "b"}}}},
		{name: "style short pair", m: map[string]any{"style": map[string]any{
			"hlines": "**", "oddlines": []any{"a"}, "evenlines": []any{"a", "b"}, "oddcorners": []any{"a", "b"},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ConfigFromMap(tt.m); !cerrors.Is(err, cerrors.ErrCodeInvalidArgument) {
				t.Errorf("ConfigFromMap() error = %v, want INVALID_ARGUMENT", err)
			}
		})
	}
}

func TestStyleFromMap(t *testing.T) {
	s, err := StyleFromMap(map[string]any{
		"hlines":     "=-",
		"oddlines":   []string{`\ `, ` \`},
		"evenlines":  []any{"/ ", " /"},
		"oddcorners": [2]string{"=O", "O-"},
	})
	if err != nil {
		t.Fatalf("StyleFromMap() error = %v", err)
	}
	zigzag, _ := style.NewRegistry().Lookup(style.Zigzag)
	if s != zigzag {
		t.Errorf("StyleFromMap() = %+v, want zigzag glyphs", s)
	}
}

func TestConfigFromMapBool(t *testing.T) {
	for _, v := range []any{false, "false", " FALSE ", "0"} {
		cfg, err := ConfigFromMap(map[string]any{"spacelines": v})
		if err != nil {
			t.Fatalf("spacelines %#v: error = %v", v, err)
		}
		if *cfg.SpaceLines {
			t.Errorf("spacelines %#v = true, want false", v)
		}
	}
}
