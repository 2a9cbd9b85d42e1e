package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goplus/extopt/formula"
	"github.com/goplus/extopt/internal/ctxlog"
)

// YAMLLoader reads specification files written in YAML or JSON:
//
//	python: "3.11"
//	jobs: 8
//	toolkit_prefix: /opt/cuda
//	variants:
//	  cuda: true
//	  xentropy: true
//	dependencies:
//	  py-torch: "2.0"
//
// Unknown top-level keys are rejected.
type YAMLLoader struct{}

type yamlFile struct {
	Python       string            `yaml:"python"`
	Jobs         int               `yaml:"jobs"`
	Toolkit      string            `yaml:"toolkit_prefix"`
	Variants     yaml.Node         `yaml:"variants"`
	Dependencies map[string]string `yaml:"dependencies"`
}

func (YAMLLoader) Load(ctx context.Context, path string) (*File, error) {
	ctxlog.FromContext(ctx).Debug("Loading specification", "path", path, "format", "yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseYAML(path, data)
}

// ParseYAML parses specification source held in memory. filename is used
// in error messages only.
func ParseYAML(filename string, data []byte) (*File, error) {
	var raw yamlFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode %s: %w", filename, err)
	}

	variants, err := decodeYAMLVariants(filename, &raw.Variants)
	if err != nil {
		return nil, err
	}
	return &File{
		Path:         filename,
		Python:       raw.Python,
		Jobs:         raw.Jobs,
		Toolkit:      raw.Toolkit,
		Variants:     variants,
		Dependencies: raw.Dependencies,
	}, nil
}

func decodeYAMLVariants(filename string, node *yaml.Node) (map[string]bool, error) {
	if node.Kind == 0 || node.ShortTag() == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s:%d: variants must be a mapping", filename, node.Line)
	}
	out := make(map[string]bool, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if !formula.IsVariant(key.Value) {
			return nil, fmt.Errorf("%s:%d: unknown variant %q", filename, key.Line, key.Value)
		}
		var on bool
		if err := val.Decode(&on); err != nil {
			return nil, fmt.Errorf("%s:%d: variant %s: %w", filename, val.Line, key.Value, err)
		}
		out[key.Value] = on
	}
	return out, nil
}
