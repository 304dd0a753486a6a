package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoString(t *testing.T) {
	dev := Info{Version: "dev", CommitHash: "abc1234def", BuildTime: "now"}
	assert.Equal(t, "wrapgen dev (commit abc1234def, built now)", dev.String())
	assert.Equal(t, "abc1234", dev.Short())

	tagged := Info{Version: "0.3.1", CommitHash: "abc", BuildTime: "now"}
	assert.Equal(t, "wrapgen 0.3.1 (commit abc, built now)", tagged.String())
	assert.Equal(t, "abc", tagged.Short())
}

func TestSatisfies(t *testing.T) {
	tests := []struct {
		version    string
		constraint string
		want       bool
	}{
		{"0.3.1", ">= 0.3", true},
		{"0.2.9", ">= 0.3", false},
		{"1.0.0", ">= 0.3, < 1", false},
		{"v0.4.0", "~0.4", true},
		{"dev", ">= 9", true},
	}

	for _, tt := range tests {
		t.Run(tt.version+" "+tt.constraint, func(t *testing.T) {
			ok, err := Info{Version: tt.version}.Satisfies(tt.constraint)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestSatisfiesErrors(t *testing.T) {
	_, err := Info{Version: "0.1.0"}.Satisfies("not a constraint")
	assert.Error(t, err)

	_, err = Info{Version: "banana"}.Satisfies(">= 0.1")
	assert.Error(t, err)
}
