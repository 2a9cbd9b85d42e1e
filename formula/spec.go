package formula

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/goplus/extopt/pkgs/mod/module"
)

// Well-known dependency names.
const (
	// Interpreter is the host build-time interpreter.
	Interpreter = "python"
	// Framework is the tensor framework whose version gates every build flag.
	Framework = "py-torch"
	// Toolkit is the hardware-acceleration toolkit pulled in by +cuda.
	Toolkit = "cuda"
)

// ErrInvalidSpec is returned by Spec.Validate.
var ErrInvalidSpec = errors.New("invalid specification")

// Spec is the resolved specification of one build invocation: requested
// variants, resolved dependency versions, the host interpreter version,
// the toolkit prefix and the job count.
//
// A Spec is built once with New and never mutated afterwards.
type Spec struct {
	variants map[Variant]bool
	deps     map[string]string
	host     string
	toolkit  string
	jobs     int
}

// Option configures a Spec under construction.
type Option func(*Spec)

// New builds a Spec. Variants not mentioned are off; the job count
// defaults to 1.
func New(opts ...Option) *Spec {
	s := &Spec{
		variants: map[Variant]bool{},
		deps:     map[string]string{},
		jobs:     1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithVariant sets one variant.
func WithVariant(v Variant, on bool) Option {
	return func(s *Spec) {
		s.variants[v] = on
	}
}

// WithVariants turns the given variants on.
func WithVariants(vs ...Variant) Option {
	return func(s *Spec) {
		for _, v := range vs {
			s.variants[v] = true
		}
	}
}

// WithDependency records the resolved version of a dependency.
// Recording the interpreter sets the host version.
func WithDependency(path, version string) Option {
	return func(s *Spec) {
		if path == Interpreter {
			s.host = version
			return
		}
		s.deps[path] = version
	}
}

// WithHost sets the host interpreter version.
func WithHost(version string) Option {
	return func(s *Spec) {
		s.host = version
	}
}

// WithToolkit sets the toolkit installation prefix.
func WithToolkit(prefix string) Option {
	return func(s *Spec) {
		s.toolkit = prefix
	}
}

// WithJobs sets the job count passed to the modern backend.
func WithJobs(n int) Option {
	return func(s *Spec) {
		s.jobs = n
	}
}

// Enabled reports whether variant v is on.
func (s *Spec) Enabled(v Variant) bool {
	return s.variants[v]
}

// EnabledVariants returns the enabled variants in catalog order.
// Unknown variants are not included.
func (s *Spec) EnabledVariants() []Variant {
	var out []Variant
	for _, info := range catalog {
		if s.variants[info.Name] {
			out = append(out, info.Name)
		}
	}
	return out
}

// DependencyVersion returns the resolved version of the named dependency.
// The interpreter resolves to the host version.
func (s *Spec) DependencyVersion(path string) (string, bool) {
	if path == Interpreter {
		return s.host, s.host != ""
	}
	v, ok := s.deps[path]
	return v, ok
}

// Dependencies returns the resolved dependencies sorted by name,
// the interpreter included.
func (s *Spec) Dependencies() []module.Version {
	deps := maps.Clone(s.deps)
	if s.host != "" {
		deps[Interpreter] = s.host
	}
	out := make([]module.Version, 0, len(deps))
	for _, path := range slices.Sorted(maps.Keys(deps)) {
		out = append(out, module.Version{Path: path, Version: deps[path]})
	}
	return out
}

// Host returns the host interpreter version.
func (s *Spec) Host() string {
	return s.host
}

// ToolkitPrefix returns the toolkit prefix, if one was given.
func (s *Spec) ToolkitPrefix() (string, bool) {
	return s.toolkit, s.toolkit != ""
}

// Jobs returns the job count.
func (s *Spec) Jobs() int {
	return s.jobs
}

// Validate checks the spec for values no build can accept. A cuda build
// without a toolkit prefix is not reported here; the environment setup
// rejects it.
func (s *Spec) Validate() error {
	var unknown []string
	for v := range s.variants {
		if !IsVariant(string(v)) {
			unknown = append(unknown, string(v))
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return fmt.Errorf("%w: unknown variants: %s", ErrInvalidSpec, strings.Join(unknown, ", "))
	}
	if s.host == "" {
		return fmt.Errorf("%w: %s version is not set", ErrInvalidSpec, Interpreter)
	}
	if s.jobs <= 0 {
		return fmt.Errorf("%w: job count must be positive, got %d", ErrInvalidSpec, s.jobs)
	}
	if s.toolkit != "" && !s.Enabled(CUDA) {
		return fmt.Errorf("%w: toolkit prefix %q given without +%s", ErrInvalidSpec, s.toolkit, CUDA)
	}
	return nil
}

// String renders the spec in the compact "+variant ^dep@version" form,
// e.g. "+cuda+xentropy ^py-torch@2.0 ^python@3.10".
func (s *Spec) String() string {
	var b strings.Builder
	for _, v := range s.EnabledVariants() {
		b.WriteString("+" + string(v))
	}
	for _, dep := range s.Dependencies() {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString("^" + dep.String())
	}
	return b.String()
}
