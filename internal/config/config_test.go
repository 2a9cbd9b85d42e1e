package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goplus/extopt/formula"
)

const hclSpec = `
python         = "3.10.12"
jobs           = 8
toolkit_prefix = "/opt/cuda"

variants = {
  cuda     = true
  xentropy = true
  fmha     = false
}

dependencies = {
  "py-torch" = "2.0"
  ninja      = "1.11"
}
`

const yamlSpec = `
python: "3.10.12"
jobs: 8
toolkit_prefix: /opt/cuda
variants:
  cuda: true
  xentropy: true
  fmha: false
dependencies:
  py-torch: "2.0"
  ninja: "1.11"
`

const jsonSpec = `{
  "python": "3.10.12",
  "jobs": 8,
  "toolkit_prefix": "/opt/cuda",
  "variants": {"cuda": true, "xentropy": true, "fmha": false},
  "dependencies": {"py-torch": "2.0", "ninja": "1.11"}
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"hcl", "spec.hcl", hclSpec},
		{"yaml", "spec.yaml", yamlSpec},
		{"yml", "spec.yml", yamlSpec},
		{"json", "spec.json", jsonSpec},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)

			f, err := Load(context.Background(), path)
			require.NoError(t, err)

			assert.Equal(t, path, f.Path)
			assert.Equal(t, "3.10.12", f.Python)
			assert.Equal(t, 8, f.Jobs)
			assert.Equal(t, "/opt/cuda", f.Toolkit)
			assert.Equal(t, map[string]bool{"cuda": true, "xentropy": true, "fmha": false}, f.Variants)
			assert.Equal(t, map[string]string{"py-torch": "2.0", "ninja": "1.11"}, f.Dependencies)
		})
	}
}

func TestLoaderFor(t *testing.T) {
	for _, name := range []string{"a.hcl", "a.HCL", "a.yaml", "a.yml", "a.json"} {
		_, err := LoaderFor(name)
		assert.NoError(t, err, name)
	}
	_, err := LoaderFor("spec.toml")
	assert.ErrorContains(t, err, "unsupported specification file")
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(context.Background(), filepath.Join(dir, "absent.hcl"))
	assert.Error(t, err)
	_, err = Load(context.Background(), filepath.Join(dir, "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileOptions(t *testing.T) {
	f := &File{
		Python:       "3.11",
		Jobs:         4,
		Toolkit:      "/opt/cuda",
		Variants:     map[string]bool{"cuda": true, "xentropy": true, "bnp": false},
		Dependencies: map[string]string{"py-torch": "2.0", "python": "3.9"},
	}
	spec := formula.New(f.Options()...)

	require.NoError(t, spec.Validate())
	assert.Equal(t, "3.11", spec.Host(), "python field wins over dependencies")
	assert.Equal(t, 4, spec.Jobs())
	assert.Equal(t, []formula.Variant{formula.CUDA, formula.XEntropy}, spec.EnabledVariants())
	prefix, ok := spec.ToolkitPrefix()
	assert.True(t, ok)
	assert.Equal(t, "/opt/cuda", prefix)
	v, ok := spec.DependencyVersion(formula.Framework)
	assert.True(t, ok)
	assert.Equal(t, "2.0", v)
}

func TestFileOptionsEmpty(t *testing.T) {
	spec := formula.New((&File{}).Options()...)
	assert.Equal(t, 1, spec.Jobs())
	assert.Empty(t, spec.EnabledVariants())
	assert.Empty(t, spec.Dependencies())
}
