package versions

import (
	"fmt"
	"strings"
)

// Range is a version interval written as "lo:hi".
//
// Either bound may be empty, meaning unbounded. The lower bound is
// inclusive. The upper bound is inclusive with prefix semantics: ":3.10"
// admits "3.10" and every "3.10.x". A bare version "2.0" is the range
// "2.0:2.0", which therefore admits "2.0.x" as well.
type Range struct {
	Min string
	Max string
}

// Any is the range that admits every version.
var Any = Range{}

// ParseRange parses the "lo:hi" notation.
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)
	if strings.Count(s, ":") > 1 {
		return Range{}, fmt.Errorf("invalid version range %q: more than one ':'", s)
	}
	lo, hi, found := strings.Cut(s, ":")
	if !found {
		hi = lo
	}
	r := Range{Min: strings.TrimSpace(lo), Max: strings.TrimSpace(hi)}
	if r.Min != "" && r.Max != "" && Compare(r.Min, r.Max) > 0 && !HasPrefix(r.Min, r.Max) {
		return Range{}, fmt.Errorf("invalid version range %q: %s is above %s", s, r.Min, r.Max)
	}
	return r, nil
}

// MustParseRange is like ParseRange but panics on malformed input.
// It is meant for ranges that are compiled into the program.
func MustParseRange(s string) Range {
	r, err := ParseRange(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Contains reports whether v lies in r.
func (r Range) Contains(v string) bool {
	if r.Min != "" && Compare(v, r.Min) < 0 {
		return false
	}
	if r.Max != "" && Compare(v, r.Max) > 0 && !HasPrefix(v, r.Max) {
		return false
	}
	return true
}

func (r Range) String() string {
	switch {
	case r.Min == "" && r.Max == "":
		return ":"
	case r.Min == r.Max:
		return r.Min
	}
	return r.Min + ":" + r.Max
}
