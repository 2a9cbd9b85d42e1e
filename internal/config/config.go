// Package config loads specification files.
//
// A specification file declares the host interpreter version, the job
// count, the toolkit prefix, the requested variants and the resolved
// dependency versions. HCL files are read with the HCL loader; YAML and
// JSON files with the YAML loader. Both produce the same File.
package config

import (
	"context"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goplus/extopt/formula"
)

// File is the format-agnostic content of a specification file.
type File struct {
	Path         string
	Python       string
	Jobs         int
	Toolkit      string
	Variants     map[string]bool
	Dependencies map[string]string
}

// Loader reads one specification file format.
type Loader interface {
	Load(ctx context.Context, path string) (*File, error)
}

// LoaderFor returns the loader matching the extension of path.
func LoaderFor(path string) (Loader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return HCLLoader{}, nil
	case ".yaml", ".yml", ".json":
		return YAMLLoader{}, nil
	}
	return nil, fmt.Errorf("unsupported specification file %s: want .hcl, .yaml, .yml or .json", path)
}

// Load reads the specification file at path.
func Load(ctx context.Context, path string) (*File, error) {
	loader, err := LoaderFor(path)
	if err != nil {
		return nil, err
	}
	return loader.Load(ctx, path)
}

// Options converts f into formula options. Maps are walked in key order so
// the resulting spec does not depend on map iteration. The python field
// wins over a python entry in dependencies.
func (f *File) Options() []formula.Option {
	var opts []formula.Option
	for _, name := range slices.Sorted(maps.Keys(f.Variants)) {
		opts = append(opts, formula.WithVariant(formula.Variant(name), f.Variants[name]))
	}
	for _, name := range slices.Sorted(maps.Keys(f.Dependencies)) {
		opts = append(opts, formula.WithDependency(name, f.Dependencies[name]))
	}
	if f.Python != "" {
		opts = append(opts, formula.WithHost(f.Python))
	}
	if f.Toolkit != "" {
		opts = append(opts, formula.WithToolkit(f.Toolkit))
	}
	if f.Jobs != 0 {
		opts = append(opts, formula.WithJobs(f.Jobs))
	}
	return opts
}
