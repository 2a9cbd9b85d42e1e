// Package buildsys translates a resolved specification into the options of
// an extension-building backend.
//
// Two backend conventions exist. The legacy one takes a flat list of global
// options; the modern one takes a config-settings mapping. Both are fed from
// the same flag table by Translate, so they cannot disagree on which flags a
// specification produces.
package buildsys

import (
	"slices"
	"strings"

	"github.com/goplus/extopt/formula"
)

// Kind identifies the shape of a Payload.
type Kind int

const (
	Legacy Kind = iota
	Modern
)

func (k Kind) String() string {
	switch k {
	case Legacy:
		return "legacy"
	case Modern:
		return "modern"
	}
	return "unknown"
}

// Payload is the option set handed to the build backend.
type Payload interface {
	Kind() Kind
	// Flags returns the flag tokens carried by the payload, in emission order.
	Flags() []string
	// PipArgs renders the payload as pip install arguments.
	PipArgs() []string
}

// Strategy emits the Payload for one backend convention.
type Strategy interface {
	Name() string
	Emit(spec *formula.Spec) Payload
}

// LegacyArgs is the global-options list of the legacy convention.
type LegacyArgs []string

var _ Payload = LegacyArgs(nil)

func (LegacyArgs) Kind() Kind { return Legacy }

func (a LegacyArgs) Flags() []string {
	return slices.Clone(a)
}

func (a LegacyArgs) PipArgs() []string {
	out := make([]string, 0, len(a))
	for _, opt := range a {
		out = append(out, "--global-option="+opt)
	}
	return out
}

// Keys of the config-settings mapping. They are part of the backend's
// wire contract.
const (
	KeyBuildDir     = "builddir"
	KeyCompileArgs  = "compile-args"
	KeyGlobalOption = "--global-option"
)

// ModernSettings is the config-settings mapping of the modern convention.
// Its JSON and YAML encodings carry exactly the three wire keys, in
// declaration order.
type ModernSettings struct {
	BuildDir     string `json:"builddir" yaml:"builddir"`
	CompileArgs  string `json:"compile-args" yaml:"compile-args"`
	GlobalOption string `json:"--global-option" yaml:"--global-option"`
}

var _ Payload = ModernSettings{}

func (ModernSettings) Kind() Kind { return Modern }

func (s ModernSettings) Flags() []string {
	if s.GlobalOption == "" {
		return []string{}
	}
	return strings.Split(s.GlobalOption, " ")
}

// Map returns the settings keyed by their wire names.
func (s ModernSettings) Map() map[string]string {
	return map[string]string{
		KeyBuildDir:     s.BuildDir,
		KeyCompileArgs:  s.CompileArgs,
		KeyGlobalOption: s.GlobalOption,
	}
}

func (s ModernSettings) PipArgs() []string {
	return []string{
		"--config-settings=" + KeyBuildDir + "=" + s.BuildDir,
		"--config-settings=" + KeyCompileArgs + "=" + s.CompileArgs,
		"--config-settings=" + KeyGlobalOption + "=" + s.GlobalOption,
	}
}
