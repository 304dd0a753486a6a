package typesys

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/wrapgen/errors"
)

func TestCanCastBuiltin(t *testing.T) {
	c := NewCaster(Builtin())

	tests := []struct {
		source, target string
		want           bool
	}{
		{"android.widget.Button", "android.widget.Button", true},
		{"android.widget.Button", "android.widget.TextView", true},
		{"android.widget.Button", "android.view.View", true},
		{"android.widget.CheckBox", "android.widget.Checkable", true},
		{"android.widget.Button", DefaultTopType, true},
		{"android.widget.TextView", "android.widget.Button", false},
		{"android.widget.ImageView", "android.widget.TextView", false},
		{"android.webkit.WebView", "android.view.ViewGroup", true},
		{"android.widget.VideoView", "android.view.SurfaceView", true},
		{"java.lang.String", "java.lang.CharSequence", true},
		{DefaultTopType, "android.view.View", false},
		{DefaultTopType, DefaultTopType, true},
		{"com.example.Unknown", "android.view.View", false},
		{"com.example.Unknown", DefaultTopType, false},
		{"com.example.Unknown", "com.example.Unknown", true},
	}

	for _, tt := range tests {
		t.Run(tt.source+"->"+tt.target, func(t *testing.T) {
			assert.Equal(t, tt.want, c.CanCast(tt.source, tt.target))
		})
	}
}

func TestCanCastIsTransitive(t *testing.T) {
	h := NewHierarchy()
	h.Add("a.A", Decl{Extends: "a.B"})
	h.Add("a.B", Decl{Implements: []string{"a.C"}})
	h.Add("a.C", Decl{})
	c := NewCaster(h)

	names := append(h.Names(), DefaultTopType)
	for _, a := range names {
		for _, b := range names {
			for _, d := range names {
				if c.CanCast(a, b) && c.CanCast(b, d) {
					assert.True(t, c.CanCast(a, d), "%s -> %s -> %s", a, b, d)
				}
			}
		}
	}
	assert.True(t, c.CanCast("a.A", "a.C"))
}

func TestKnownCastsOverrideHierarchy(t *testing.T) {
	h := NewHierarchy()
	h.Add("com.example.FancyText", Decl{Extends: "android.widget.TextView"})

	c := NewCaster(h, WithKnownCasts(map[string]string{
		"com.example.FancyText": "android.view.View",
		"com.example.Generated": "android.widget.TextView",
	}))

	assert.True(t, c.CanCast("com.example.FancyText", "android.view.View"))
	assert.False(t, c.CanCast("com.example.FancyText", "android.widget.TextView"))
	assert.True(t, c.CanCast("com.example.Generated", "android.widget.TextView"))
	assert.True(t, c.CanCast("com.example.Generated", DefaultTopType))
}

func TestCustomTopType(t *testing.T) {
	h := NewHierarchy()
	h.Add("kotlin.String", Decl{})
	c := NewCaster(h, WithTopType("kotlin.Any"))

	assert.Equal(t, "kotlin.Any", c.TopType())
	assert.True(t, c.CanCast("kotlin.String", "kotlin.Any"))
	assert.False(t, c.CanCast("kotlin.Any", "kotlin.String"))
	assert.False(t, c.CanCast("kotlin.String", DefaultTopType))
}

func TestSupertypesAreMemoized(t *testing.T) {
	h := NewHierarchy()
	h.Add("a.A", Decl{Extends: "a.B"})
	c := NewCaster(h)

	first, ok := c.Supertypes("a.A")
	require.True(t, ok)
	assert.Equal(t, []string{"a.B", DefaultTopType}, first)

	h.Add("a.A", Decl{Extends: "a.Z"})
	second, _ := c.Supertypes("a.A")
	assert.Equal(t, first, second)

	_, ok = c.Supertypes("a.Missing")
	assert.False(t, ok)
	h.Add("a.Missing", Decl{})
	_, ok = c.Supertypes("a.Missing")
	assert.False(t, ok)
}

func TestLoadHierarchy(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[types."com.example.TitleView"]
extends = "android.widget.TextView"
implements = ["com.example.Titled"]

[types."android.widget.Button"]
extends = "android.view.View"
`), 0o644))

	h, err := LoadHierarchy(Builtin(), path)
	require.NoError(t, err)

	d, ok := h.Lookup("com.example.TitleView")
	require.True(t, ok)
	assert.Equal(t, []string{"android.widget.TextView", "com.example.Titled"}, d.Bases())

	button, _ := h.Lookup("android.widget.Button")
	assert.Equal(t, "android.view.View", button.Extends)

	_, ok = h.Lookup("android.widget.ListView")
	assert.True(t, ok)
}

func TestLoadHierarchyRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[types."a.A"]
extend = "a.B"
`), 0o644))

	_, err := LoadHierarchy(nil, path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrMalformedDeclaration))
	assert.Contains(t, err.Error(), "extend")
}

func TestLoadHierarchyMissingFile(t *testing.T) {
	_, err := LoadHierarchy(nil, filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestBuiltinCoversDefaultTags(t *testing.T) {
	h := Builtin()
	for tag, qualified := range DefaultTags() {
		_, ok := h.Lookup(qualified)
		assert.True(t, ok, "tag %s (%s) missing from builtin hierarchy", tag, qualified)
	}
}

func TestTagTable(t *testing.T) {
	tags := DefaultTags()
	assert.Len(t, tags, 26)
	assert.Equal(t, "android.widget.Button", tags.Qualify("Button"))
	assert.Equal(t, "android.webkit.WebView", tags.Qualify("WebView"))
	assert.Equal(t, "com.example.Custom", tags.Qualify("com.example.Custom"))

	merged := tags.Merge(map[string]string{
		"Button":   "com.example.Button",
		"CardView": "androidx.cardview.widget.CardView",
	})
	assert.Equal(t, "com.example.Button", merged.Qualify("Button"))
	assert.Equal(t, "androidx.cardview.widget.CardView", merged.Qualify("CardView"))
	assert.Equal(t, "android.widget.Button", tags.Qualify("Button"))
}
