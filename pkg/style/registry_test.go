package style

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/commentbox/pkg/align"
	cerrors "github.com/matzehuels/commentbox/pkg/errors"
)

var custom = Style{
	HLines:     "~~",
	OddLines:   [2]string{"{ ", " }"},
	EvenLines:  [2]string{"[ ", " ]"},
	OddCorners: [2]string{"~}", "{~"},
}

func ptr[T any](v T) *T { return &v }

func TestNewRegistryBuiltins(t *testing.T) {
	reg := NewRegistry()

	assert.Equal(t, []string{Money, Parallax, Stub, Window, Zigzag}, reg.Names())
	assert.Equal(t, BuiltinDefaults(), reg.Defaults())

	for name, s := range reg.Styles() {
		assert.NoError(t, s.Validate(), "builtin %s", name)
	}

	st, err := reg.DefaultStyle()
	require.NoError(t, err)
	assert.Equal(t, "**", st.HLines)
	assert.Equal(t, [2]string{"=/", "/="}, st.OddCorners)
}

func TestRegistriesAreIndependent(t *testing.T) {
	a, b := NewRegistry(), NewRegistry()
	require.NoError(t, a.Register(Definition{Name: "custom", Style: custom, Default: true}))

	_, ok := b.Lookup("custom")
	assert.False(t, ok)
	assert.Equal(t, Stub, b.Defaults().Style)
}

func TestStylesReturnsCopy(t *testing.T) {
	reg := NewRegistry()
	styles := reg.Styles()
	delete(styles, Stub)

	_, ok := reg.Lookup(Stub)
	assert.True(t, ok)
}

func TestRegisterDefaultMarker(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(Definition{Name: "custom", Style: custom, Default: true}))

	assert.Equal(t, "custom", reg.Defaults().Style)
	st, err := reg.DefaultStyle()
	require.NoError(t, err)
	assert.Equal(t, custom, st)
}

func TestRegisterFirstDefaultWins(t *testing.T) {
	reg := NewRegistry()
	second := custom
	second.HLines = "##"

	require.NoError(t, reg.Register(
		Definition{Name: "plain", Style: custom},
		Definition{Name: "first", Style: custom, Default: true},
		Definition{Name: "second", Style: second, Default: true},
	))

	assert.Equal(t, "first", reg.Defaults().Style)
	got, ok := reg.Lookup("second")
	require.True(t, ok, "later default-marked styles are still registered")
	assert.Equal(t, "##", got.HLines)
}

func TestRegisterOverwritesAndNormalizes(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(Definition{Name: "  STUB ", Style: custom}))

	got, ok := reg.Lookup("stub")
	require.True(t, ok)
	assert.Equal(t, custom, got)

	got, ok = reg.Lookup("Stub")
	require.True(t, ok)
	assert.Equal(t, custom, got)
	assert.Len(t, reg.Names(), 5)
}

func TestRegisterRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		def  Definition
	}{
		{name: "empty name", def: Definition{Name: " ", Style: custom}},
		{name: "short hlines", def: Definition{Name: "x", Style: Style{HLines: "*", OddLines: custom.OddLines, EvenLines: custom.EvenLines, OddCorners: custom.OddCorners}}},
		{name: "missing glyph", def: Definition{Name: "x", Style: Style{HLines: "**", OddLines: [2]string{"", "|"}, EvenLines: custom.EvenLines, OddCorners: custom.OddCorners}}},
		{name: "zero style", def: Definition{Name: "x"}},
		{name: "wide hlines", def: Definition{Name: "x", Style: Style{HLines: "日本", OddLines: custom.OddLines, EvenLines: custom.EvenLines, OddCorners: custom.OddCorners}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry()
			err := reg.Register(Definition{Name: "ok", Style: custom, Default: true}, tt.def)
			assert.True(t, cerrors.Is(err, cerrors.ErrCodeInvalidStyle), "error = %v", err)

			_, ok := reg.Lookup("ok")
			assert.False(t, ok, "a failed batch registers nothing")
			assert.Equal(t, Stub, reg.Defaults().Style)
		})
	}
}

func TestResolveUnknown(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Resolve("nope")
	assert.True(t, cerrors.Is(err, cerrors.ErrCodeUnknownStyle))

	require.NoError(t, reg.SetDefaults(DefaultsPatch{Style: ptr("nope")}))
	_, err = reg.DefaultStyle()
	assert.True(t, cerrors.Is(err, cerrors.ErrCodeUnknownStyle))
}

func TestSetDefaultsPartial(t *testing.T) {
	reg := NewRegistry()
	right := align.Right

	require.NoError(t, reg.SetDefaults(DefaultsPatch{
		Padding:    ptr(1),
		SpaceLines: ptr(false),
		Alignment:  &right,
	}))

	want := BuiltinDefaults()
	want.Padding = 1
	want.SpaceLines = false
	want.Alignment = align.Right
	assert.Equal(t, want, reg.Defaults())

	require.NoError(t, reg.SetDefaults(DefaultsPatch{Style: ptr("Window")}))
	want.Style = Window
	assert.Equal(t, want, reg.Defaults())
}

func TestSetDefaultsRejectsOutOfRange(t *testing.T) {
	reg := NewRegistry()
	bad := align.Alignment("justify")

	for _, p := range []DefaultsPatch{
		{Padding: ptr(-1), Offset: ptr(7)},
		{Offset: ptr(-2)},
		{MinWidth: ptr(-3)},
		{Alignment: &bad, Padding: ptr(9)},
	} {
		err := reg.SetDefaults(p)
		assert.True(t, cerrors.Is(err, cerrors.ErrCodeInvalidArgument), "error = %v", err)
	}
	assert.Equal(t, BuiltinDefaults(), reg.Defaults())
}

func TestRegistryConcurrentAccess(t *testing.T) {
	reg := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = reg.Register(Definition{Name: "custom", Style: custom})
			_ = reg.SetDefaults(DefaultsPatch{Padding: ptr(2)})
		}()
		go func() {
			defer wg.Done()
			_, _ = reg.DefaultStyle()
			_ = reg.Names()
		}()
	}
	wg.Wait()

	_, ok := reg.Lookup("custom")
	assert.True(t, ok)
	assert.Equal(t, 2, reg.Defaults().Padding)
}

func TestValidateMeasuresColumns(t *testing.T) {
	wide := custom
	wide.HLines = "日"
	assert.NoError(t, wide.Validate(), "a single double-width rune fills two columns")

	wide.HLines = "日本"
	assert.True(t, cerrors.Is(wide.Validate(), cerrors.ErrCodeInvalidStyle))
}
