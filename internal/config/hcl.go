package config

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/goplus/extopt/formula"
	"github.com/goplus/extopt/internal/ctxlog"
)

// HCLLoader reads specification files written in HCL:
//
//	python         = "3.10.12"
//	jobs           = 8
//	toolkit_prefix = "/opt/cuda"
//
//	variants = {
//	  cuda     = true
//	  xentropy = true
//	}
//
//	dependencies = {
//	  "py-torch" = "2.0"
//	}
//
// Versions must be quoted strings; a bare 3.10 would read as the number 3.1.
type HCLLoader struct{}

type hclFile struct {
	Python       hcl.Expression `hcl:"python,optional"`
	Jobs         int            `hcl:"jobs,optional"`
	Toolkit      string         `hcl:"toolkit_prefix,optional"`
	Variants     hcl.Expression `hcl:"variants,optional"`
	Dependencies hcl.Expression `hcl:"dependencies,optional"`
}

func (HCLLoader) Load(ctx context.Context, path string) (*File, error) {
	ctxlog.FromContext(ctx).Debug("Loading specification", "path", path, "format", "hcl")

	parser := hclparse.NewParser()
	src, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	return decodeHCL(path, src.Body)
}

// ParseHCL parses specification source held in memory. filename is used
// in diagnostics only.
func ParseHCL(filename string, src []byte) (*File, error) {
	f, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return decodeHCL(filename, f.Body)
}

func decodeHCL(path string, body hcl.Body) (*File, error) {
	var raw hclFile
	if diags := gohcl.DecodeBody(body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	out := &File{Path: path, Jobs: raw.Jobs, Toolkit: raw.Toolkit}
	var diags hcl.Diagnostics
	var d hcl.Diagnostics

	if !isNull(raw.Python) {
		out.Python, d = versionOf(raw.Python)
		diags = append(diags, d...)
	}
	out.Variants, d = decodeVariants(raw.Variants)
	diags = append(diags, d...)
	out.Dependencies, d = decodeDependencies(raw.Dependencies)
	diags = append(diags, d...)

	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid specification %s: %w", path, diags)
	}
	return out, nil
}

// isNull reports whether expr is absent. gohcl hands optional expression
// fields a null static expression when the attribute is missing.
func isNull(expr hcl.Expression) bool {
	if expr == nil {
		return true
	}
	v, diags := expr.Value(nil)
	return !diags.HasErrors() && v.IsNull()
}

func decodeVariants(expr hcl.Expression) (map[string]bool, hcl.Diagnostics) {
	if isNull(expr) {
		return nil, nil
	}
	pairs, diags := hcl.ExprMap(expr)
	if diags.HasErrors() {
		return nil, diags
	}
	out := make(map[string]bool, len(pairs))
	for _, kv := range pairs {
		var name string
		if d := gohcl.DecodeExpression(kv.Key, nil, &name); d.HasErrors() {
			diags = append(diags, d...)
			continue
		}
		if !formula.IsVariant(name) {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unknown variant",
				Detail:   fmt.Sprintf("%q is not a known variant.", name),
				Subject:  kv.Key.Range().Ptr(),
			})
			continue
		}
		var on bool
		if d := gohcl.DecodeExpression(kv.Value, nil, &on); d.HasErrors() {
			diags = append(diags, d...)
			continue
		}
		out[name] = on
	}
	return out, diags
}

func decodeDependencies(expr hcl.Expression) (map[string]string, hcl.Diagnostics) {
	if isNull(expr) {
		return nil, nil
	}
	pairs, diags := hcl.ExprMap(expr)
	if diags.HasErrors() {
		return nil, diags
	}
	out := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		var name string
		if d := gohcl.DecodeExpression(kv.Key, nil, &name); d.HasErrors() {
			diags = append(diags, d...)
			continue
		}
		v, d := versionOf(kv.Value)
		if d.HasErrors() {
			diags = append(diags, d...)
			continue
		}
		out[name] = v
	}
	return out, diags
}

// versionOf evaluates expr as a version string. Numbers are rejected
// rather than converted, since the conversion drops trailing zeros.
func versionOf(expr hcl.Expression) (string, hcl.Diagnostics) {
	v, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "", diags
	}
	if v.IsNull() || !v.IsKnown() || v.Type() != cty.String {
		return "", hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid version",
			Detail:   "Versions must be quoted strings, e.g. \"3.10\".",
			Subject:  expr.Range().Ptr(),
		}}
	}
	return v.AsString(), nil
}
