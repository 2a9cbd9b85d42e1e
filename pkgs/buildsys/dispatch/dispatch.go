// Package dispatch picks the build option Strategy matching the host
// interpreter.
package dispatch

import (
	"github.com/goplus/extopt/formula"
	"github.com/goplus/extopt/pkgs/buildsys"
	"github.com/goplus/extopt/pkgs/buildsys/pep517"
	"github.com/goplus/extopt/pkgs/buildsys/setuptools"
	"github.com/goplus/extopt/pkgs/mod/versions"
)

// Cutoff is the first interpreter version whose build frontend takes
// config settings instead of global options.
const Cutoff = "3.11"

var (
	legacy buildsys.Strategy = setuptools.GlobalOptions{}
	modern buildsys.Strategy = pep517.ConfigSettings{}
)

// Select returns the legacy strategy for hosts below Cutoff and the modern
// one otherwise. versions.Compare orders every pair of strings, so every
// host version lands on exactly one side.
func Select(host string) buildsys.Strategy {
	if versions.Compare(host, Cutoff) < 0 {
		return legacy
	}
	return modern
}

// Emit runs the strategy selected for spec's host interpreter.
func Emit(spec *formula.Spec) buildsys.Payload {
	return Select(spec.Host()).Emit(spec)
}

// Strategies returns every strategy, legacy first.
func Strategies() []buildsys.Strategy {
	return []buildsys.Strategy{legacy, modern}
}
