// Package env sets up the build environment for an extension build.
//
// Environment access goes through the Mutator capability so that callers
// can choose between the real process environment and an in-memory one.
package env

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/goplus/extopt/formula"
)

// ToolkitVar is the variable the compiler reads to locate the CUDA toolkit.
const ToolkitVar = "CUDA_HOME"

// ErrConfiguration reports a specification the environment cannot be set
// up for. It is fatal for the build.
var ErrConfiguration = errors.New("configuration error")

// Mutator reads and writes environment variables.
type Mutator interface {
	Setenv(key, value string) error
	Unsetenv(key string) error
	LookupEnv(key string) (string, bool)
}

type process struct{}

func (process) Setenv(key, value string) error { return os.Setenv(key, value) }
func (process) Unsetenv(key string) error { return os.Unsetenv(key) }
func (process) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }

// Process returns a Mutator bound to the process environment. Changes
// through it are visible process-wide, so builds using it must not run
// concurrently.
func Process() Mutator {
	return process{}
}

// Map is an in-memory Mutator.
type Map struct {
	vars map[string]string
}

var _ Mutator = (*Map)(nil)

// NewMap returns a Map seeded from environ, a list of "key=value" entries
// as returned by os.Environ. Entries without '=' are ignored.
func NewMap(environ []string) *Map {
	m := &Map{vars: make(map[string]string, len(environ))}
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			m.vars[k] = v
		}
	}
	return m
}

func (m *Map) Setenv(key, value string) error {
	if key == "" || strings.ContainsAny(key, "=\x00") {
		return fmt.Errorf("setenv %q: invalid key", key)
	}
	m.vars[key] = value
	return nil
}

func (m *Map) Unsetenv(key string) error {
	delete(m.vars, key)
	return nil
}

func (m *Map) LookupEnv(key string) (string, bool) {
	v, ok := m.vars[key]
	return v, ok
}

// Environ returns the variables as sorted "key=value" entries, ready to be
// used as exec.Cmd.Env.
func (m *Map) Environ() []string {
	out := make([]string, 0, len(m.vars))
	for _, k := range slices.Sorted(maps.Keys(m.vars)) {
		out = append(out, k+"="+m.vars[k])
	}
	return out
}

// Configure points ToolkitVar at the toolkit prefix when the cuda variant
// is on, and removes it otherwise so a value inherited from the caller's
// environment cannot leak into the build. Repeated calls converge.
func Configure(m Mutator, spec *formula.Spec) error {
	if !spec.Enabled(formula.CUDA) {
		if err := m.Unsetenv(ToolkitVar); err != nil {
			return fmt.Errorf("unset %s: %w", ToolkitVar, err)
		}
		return nil
	}
	prefix, ok := spec.ToolkitPrefix()
	if !ok {
		return fmt.Errorf("%w: +%s requires a toolkit prefix", ErrConfiguration, formula.CUDA)
	}
	if err := m.Setenv(ToolkitVar, prefix); err != nil {
		return fmt.Errorf("set %s: %w", ToolkitVar, err)
	}
	return nil
}
