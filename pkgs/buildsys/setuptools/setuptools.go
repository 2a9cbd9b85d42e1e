// Package setuptools emits build options for the legacy backend convention,
// where extension features are passed as setup.py global options.
package setuptools

import (
	"github.com/goplus/extopt/formula"
	"github.com/goplus/extopt/pkgs/buildsys"
)

// GlobalOptions is the legacy Strategy.
type GlobalOptions struct{}

var _ buildsys.Strategy = GlobalOptions{}

func (GlobalOptions) Name() string {
	return "setuptools"
}

// Emit returns the translated flags as a LegacyArgs list.
func (GlobalOptions) Emit(spec *formula.Spec) buildsys.Payload {
	return buildsys.LegacyArgs(buildsys.Translate(spec))
}
