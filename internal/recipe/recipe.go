// Package recipe runs one build-option resolution: it validates the
// specification, prepares the build environment and emits the options of
// the backend matching the host interpreter.
package recipe

import (
	"context"

	"github.com/goplus/extopt/formula"
	"github.com/goplus/extopt/internal/ctxlog"
	"github.com/goplus/extopt/internal/env"
	"github.com/goplus/extopt/pkgs/buildsys"
	"github.com/goplus/extopt/pkgs/buildsys/dispatch"
)

// Invocation is the outcome of Resolve.
type Invocation struct {
	Spec     *formula.Spec
	Strategy string
	Payload  buildsys.Payload
	// Toolkit is the value of env.ToolkitVar after setup, "" when unset.
	Toolkit string
}

// Resolve prepares m for the build described by spec and returns the
// options for the build backend. Errors are returned as-is; running the
// same spec again would fail the same way.
//
// When m is env.Process(), Resolve must not run concurrently with another
// Resolve in the same process.
func Resolve(ctx context.Context, spec *formula.Spec, m env.Mutator) (*Invocation, error) {
	logger := ctxlog.FromContext(ctx)

	if err := spec.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("Resolving build options", "spec", spec.String())

	if err := env.Configure(m, spec); err != nil {
		return nil, err
	}
	toolkit, _ := m.LookupEnv(env.ToolkitVar)
	logger.Debug("Build environment configured", env.ToolkitVar, toolkit)

	strategy := dispatch.Select(spec.Host())
	logger.Debug("Backend selected", "strategy", strategy.Name(), "host", spec.Host(), "cutoff", dispatch.Cutoff)

	payload := strategy.Emit(spec)
	logger.Debug("Build options emitted", "kind", payload.Kind().String(), "flags", payload.Flags())

	return &Invocation{
		Spec:     spec,
		Strategy: strategy.Name(),
		Payload:  payload,
		Toolkit:  toolkit,
	}, nil
}

// Check returns the declared requirements spec does not satisfy.
func Check(ctx context.Context, spec *formula.Spec) []formula.Unsatisfied {
	logger := ctxlog.FromContext(ctx)
	unsatisfied := spec.Check()
	for _, u := range unsatisfied {
		logger.Debug("Requirement not satisfied", "requirement", u.Requirement.String(), "got", u.Got)
	}
	return unsatisfied
}
