package formula

import (
	"github.com/goplus/extopt/pkgs/mod/versions"
)

// Condition restricts when a Requirement applies. The zero Condition
// always holds.
type Condition struct {
	Variant    Variant // applies when this variant is on
	Dependency string  // applies when this dependency's version is in Range
	Range      versions.Range
}

// Holds reports whether c applies to s.
func (c Condition) Holds(s *Spec) bool {
	if c.Variant != "" && !s.Enabled(c.Variant) {
		return false
	}
	if c.Dependency != "" {
		v, ok := s.DependencyVersion(c.Dependency)
		if !ok || !c.Range.Contains(v) {
			return false
		}
	}
	return true
}

func (c Condition) String() string {
	var out string
	if c.Variant != "" {
		out = "+" + string(c.Variant)
	}
	if c.Dependency != "" {
		if out != "" {
			out += " "
		}
		out += "^" + c.Dependency + "@" + c.Range.String()
	}
	return out
}

// Requirement declares that the build needs a dependency whose resolved
// version lies in Range, whenever When holds.
type Requirement struct {
	Name  string
	Range versions.Range
	When  Condition
}

func (r Requirement) String() string {
	s := r.Name
	if r.Range != versions.Any {
		s += "@" + r.Range.String()
	}
	if when := r.When.String(); when != "" {
		s += " when " + when
	}
	return s
}

var requirements = []Requirement{
	{Name: Interpreter, Range: versions.MustParseRange("3:")},
	{Name: "py-setuptools"},
	{Name: "py-packaging"},
	{Name: Framework, Range: versions.MustParseRange("0.4:")},
	{Name: Toolkit, Range: versions.MustParseRange("9:"), When: Condition{Variant: CUDA}},
	{Name: "py-pybind11"},
	{Name: "ninja"},
	// --config-settings needs a PEP 517 capable pip.
	{
		Name:  "py-pip",
		Range: versions.MustParseRange("23.1:"),
		When:  Condition{Dependency: Interpreter, Range: versions.MustParseRange("3.11:")},
	},
}

// Requirements returns the declared dependency constraints.
func Requirements() []Requirement {
	return append([]Requirement(nil), requirements...)
}

// Unsatisfied is a requirement the spec does not meet. Got is the resolved
// version, or "" when the dependency is missing.
type Unsatisfied struct {
	Requirement
	Got string
}

func (u Unsatisfied) String() string {
	if u.Got == "" {
		return u.Requirement.String() + ": missing"
	}
	return u.Requirement.String() + ": got " + u.Got
}

// Check evaluates every applicable requirement against s and returns the
// unsatisfied ones in declaration order.
func (s *Spec) Check() []Unsatisfied {
	var out []Unsatisfied
	for _, req := range requirements {
		if !req.When.Holds(s) {
			continue
		}
		v, ok := s.DependencyVersion(req.Name)
		if !ok {
			out = append(out, Unsatisfied{Requirement: req})
			continue
		}
		if !req.Range.Contains(v) {
			out = append(out, Unsatisfied{Requirement: req, Got: v})
		}
	}
	return out
}
