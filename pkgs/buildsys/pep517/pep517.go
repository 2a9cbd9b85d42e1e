// Package pep517 emits build options for the modern backend convention,
// where the build frontend forwards a config-settings mapping.
package pep517

import (
	"fmt"
	"strings"

	"github.com/goplus/extopt/formula"
	"github.com/goplus/extopt/pkgs/buildsys"
)

// BuildDir is the fixed build directory handed to the backend.
const BuildDir = "build"

// ConfigSettings is the modern Strategy.
type ConfigSettings struct{}

var _ buildsys.Strategy = ConfigSettings{}

func (ConfigSettings) Name() string {
	return "pep517"
}

// Emit joins the translated flags into the --global-option setting and
// passes the job count through as compile-args.
func (ConfigSettings) Emit(spec *formula.Spec) buildsys.Payload {
	return buildsys.ModernSettings{
		BuildDir:     BuildDir,
		CompileArgs:  fmt.Sprintf("-j%d", spec.Jobs()),
		GlobalOption: strings.Join(buildsys.Translate(spec), " "),
	}
}
