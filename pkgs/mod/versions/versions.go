// Package versions compares package versions and evaluates lo:hi version ranges.
package versions

import (
	"regexp"
	"strings"

	"golang.org/x/mod/semver"
)

// Compare compares two version strings and returns:
// -1 if a < b
//
//	0 if a == b
//	1 if a > b
//
// Versions that read as semantic versions once a leading "v" is added
// ("3.10", "2.0.1") are compared with semver rules. So are releases of up
// to three components carrying an a, b or rc pre-release tag ("1.0rc1",
// "2.1.0a0"), which sort below the release they precede. Anything else
// ("2020-10-19", "master") falls back to GNU version ordering, so Compare
// is defined for every pair of strings.
func Compare(a, b string) int {
	if sa, sb := canonical(a), canonical(b); sa != "" && sb != "" {
		return semver.Compare(sa, sb)
	}
	return gnuCompare(a, b)
}

// preRelease matches a release followed by a pre-release tag and number:
// "1.0rc1", "2.1.0a0", "1.0.0-rc.2".
var preRelease = regexp.MustCompile(`^(\d+)(?:\.(\d+))?(?:\.(\d+))?[.-]?(a|alpha|b|beta|c|rc)\.?(\d*)$`)

var preTags = map[string]string{
	"a":     "a",
	"alpha": "a",
	"b":     "b",
	"beta":  "b",
	"c":     "rc",
	"rc":    "rc",
}

// canonical returns v in semver form, or "" if v is not a valid semver.
// Pre-release spellings matched by preRelease are rewritten to a semver
// pre-release: "1.0rc1" becomes "v1.0.0-rc.1".
func canonical(v string) string {
	if v == "" {
		return ""
	}
	v = strings.TrimPrefix(v, "v")
	if m := preRelease.FindStringSubmatch(v); m != nil {
		v = m[1] + "." + orZero(m[2]) + "." + orZero(m[3]) + "-" + preTags[m[4]]
		if m[5] != "" {
			v += "." + m[5]
		}
	}
	v = "v" + v
	if !semver.IsValid(v) {
		return ""
	}
	return v
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}

// HasPrefix reports whether the dot-separated components of v start with
// the components of prefix: "3.10.12" has prefix "3.10" but not "3.1".
func HasPrefix(v, prefix string) bool {
	if prefix == "" {
		return true
	}
	vs := strings.Split(v, ".")
	ps := strings.Split(prefix, ".")
	if len(ps) > len(vs) {
		return false
	}
	for i, p := range ps {
		if vs[i] != p {
			return false
		}
	}
	return true
}
