package strres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/wrapgen/errors"
)

func TestRequiredParams(t *testing.T) {
	tests := []struct {
		text string
		want []ParamType
	}{
		{"Hello", nil},
		{"", nil},
		{"Hello %s", []ParamType{ParamString}},
		{"%d items", []ParamType{ParamInt}},
		{"%1$s has %2$d items", []ParamType{ParamString, ParamInt}},
		{"%2$d items for %1$s", []ParamType{ParamInt, ParamString}},
		{"%12$s", []ParamType{ParamString}},
		{`Line\nbreak \'quoted\' \"double\"`, nil},
		{`\@handle`, nil},
		{"@string/other", nil},
		{"mail@example.com", nil},
		{"50%", nil},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := RequiredParams(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequiredParamsRejects(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"unknown escape", `tab\there`},
		{"single quote", "don't"},
		{"double quote", `say "hi"`},
		{"leading at", "@handle"},
		{"leading at to other resource", "@color/red"},
		{"digits after dollar", "%1$2s"},
		{"two dollars", "%1$$s"},
		{"unknown conversion", "%f"},
		{"percent literal", "100%%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RequiredParams(tt.text)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrMalformedString), "got %v", err)
		})
	}
}

func TestSameParams(t *testing.T) {
	assert.True(t, SameParams(nil, []ParamType{}))
	assert.True(t, SameParams([]ParamType{ParamString, ParamInt}, []ParamType{ParamString, ParamInt}))
	assert.False(t, SameParams([]ParamType{ParamString, ParamInt}, []ParamType{ParamInt, ParamString}))
	assert.False(t, SameParams([]ParamType{ParamString}, []ParamType{ParamString, ParamString}))
}
