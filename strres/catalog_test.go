package strres

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/teranos/wrapgen/errors"
)

func writeValues(t *testing.T, res, folder, file, body string) {
	t.Helper()
	dir := filepath.Join(res, folder)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, file), []byte(body), 0o644))
}

const defaults = `<?xml version="1.0" encoding="utf-8"?>
<resources>
    <string name="app_name">Notes</string>
    <string name="greeting">Hello <b>%s</b></string>
    <string name="summary">%1$s has %2$d notes</string>
    <string-array name="colors"><item>red</item></string-array>
</resources>`

func TestLoad(t *testing.T) {
	res := t.TempDir()
	writeValues(t, res, "values", "strings.xml", defaults)
	writeValues(t, res, "values-es", "strings.xml", `<resources>
    <string name="greeting">Hola <i>%s</i></string>
    <string name="summary">%1$s tiene %2$d notas</string>
</resources>`)

	c, err := Load(res, zaptest.NewLogger(t).Sugar())
	require.NoError(t, err)

	assert.Equal(t, "Hello %s", c.Defaults["greeting"])
	assert.Equal(t, []string{"greeting", "summary"}, c.Placeholders())
	assert.True(t, c.RequiresArguments("summary"))
	assert.False(t, c.RequiresArguments("app_name"))
	assert.Equal(t, []ParamType{ParamString, ParamInt}, c.Params["summary"])
	assert.Contains(t, c.Variants, "es")
	assert.NotContains(t, c.Defaults, "colors")
}

func TestLoadWithoutValuesFolder(t *testing.T) {
	c, err := Load(t.TempDir(), nil)
	require.NoError(t, err)
	assert.Empty(t, c.Placeholders())
}

func TestLoadVariantMismatch(t *testing.T) {
	tests := []struct {
		name    string
		variant string
		message string
	}{
		{
			name:    "swapped argument types",
			variant: `<resources><string name="summary">%1$d notas de %2$s</string></resources>`,
			message: "do not match",
		},
		{
			name:    "missing argument",
			variant: `<resources><string name="summary">%1$s</string></resources>`,
			message: "requires 1 arguments, default requires 2",
		},
		{
			name:    "no default",
			variant: `<resources><string name="farewell">Adios</string></resources>`,
			message: "has no default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := t.TempDir()
			writeValues(t, res, "values", "strings.xml", defaults)
			writeValues(t, res, "values-es", "strings.xml", tt.variant)

			_, err := Load(res, zaptest.NewLogger(t).Sugar())
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrVariantMismatch), "got %v", err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestParseValuesRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no name", `<resources><string>x</string></resources>`},
		{"nested string", `<resources><string name="a"><string name="b">x</string></string></resources>`},
		{"foreign tag", `<resources><string name="a"><font>x</font></string></resources>`},
		{"duplicate", `<resources><string name="a">x</string><string name="a">y</string></resources>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ParseValues(strings.NewReader(tt.body), "strings.xml", map[string]string{}, nil)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrMalformedString), "got %v", err)
		})
	}
}

func TestParseValuesIgnoresOtherRoots(t *testing.T) {
	into := map[string]string{}
	err := ParseValues(strings.NewReader(`<menu><string name="a">x</string></menu>`), "menu.xml", into, nil)
	require.NoError(t, err)
	assert.Empty(t, into)
}

func TestLoadRejectsMalformedDefault(t *testing.T) {
	res := t.TempDir()
	writeValues(t, res, "values", "strings.xml", `<resources><string name="bad">don't</string></resources>`)

	_, err := Load(res, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrMalformedString))
	assert.Contains(t, err.Error(), "bad")
}
