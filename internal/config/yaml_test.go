package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYAMLUnquotedVersions(t *testing.T) {
	f, err := ParseYAML("spec.yaml", []byte("python: 3.10\ndependencies:\n  py-torch: 2.0\n"))
	require.NoError(t, err)
	assert.Equal(t, "3.10", f.Python)
	assert.Equal(t, "2.0", f.Dependencies["py-torch"])
}

func TestParseYAMLEmpty(t *testing.T) {
	f, err := ParseYAML("empty.yaml", nil)
	require.NoError(t, err)
	assert.Nil(t, f.Variants)

	f, err = ParseYAML("null.yaml", []byte("variants:\n"))
	require.NoError(t, err)
	assert.Nil(t, f.Variants)
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "unknown key",
			src:  "compiler: gcc\n",
			want: "field compiler not found",
		},
		{
			name: "unknown variant",
			src:  "variants:\n  cuda: true\n  warp_drive: true\n",
			want: `spec.yaml:3: unknown variant "warp_drive"`,
		},
		{
			name: "non-bool variant",
			src:  "variants:\n  cuda: maybe\n",
			want: "spec.yaml:2: variant cuda",
		},
		{
			name: "variants not a mapping",
			src:  "variants: [cuda]\n",
			want: "variants must be a mapping",
		},
		{
			name: "malformed",
			src:  "python: [\n",
			want: "failed to decode spec.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML("spec.yaml", []byte(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
