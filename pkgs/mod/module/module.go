package module

import (
	"fmt"
	"strings"
)

// Version pins a dependency to a resolved version.
type Version struct {
	Path    string
	Version string
}

func (v Version) String() string {
	if v.Version == "" {
		return v.Path
	}
	return v.Path + "@" + v.Version
}

// Parse parses a dependency pin in the form "name@version".
// The last '@' separates the version, so names may contain '@' themselves.
func Parse(s string) (Version, error) {
	i := strings.LastIndexByte(s, '@')
	if i < 0 {
		return Version{}, fmt.Errorf("invalid dependency %q: want name@version", s)
	}
	v := Version{Path: s[:i], Version: s[i+1:]}
	if v.Path == "" || v.Version == "" {
		return Version{}, fmt.Errorf("invalid dependency %q: want name@version", s)
	}
	return v, nil
}
