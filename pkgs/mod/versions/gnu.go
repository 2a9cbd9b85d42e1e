package versions

// gnuCompare orders version strings the way `sort -V` does. The strings are
// cut into alternating non-digit and digit runs; digit runs compare by
// numeric value, non-digit runs character by character with letters sorting
// before punctuation and '~' sorting before everything, even the end.
//
// Unlike `sort -V`, a letter run that follows a number is a pre-release
// tag and also sorts before the end: "1.0rc1" < "1.0" < "1.0.1".
func gnuCompare(a, b string) int {
	for first := true; a != "" || b != ""; first = false {
		var x, y string
		x, a = cut(a, false)
		y, b = cut(b, false)
		if !first {
			if c := compareTag(x, y); c != 0 {
				return c
			}
		}
		if c := compareText(x, y); c != 0 {
			return c
		}
		x, a = cut(a, true)
		y, b = cut(b, true)
		if c := compareNumber(x, y); c != 0 {
			return c
		}
	}
	return 0
}

// cut splits the leading run of digits (or non-digits) off s.
func cut(s string, digits bool) (run, rest string) {
	i := 0
	for i < len(s) && isDigit(s[i]) == digits {
		i++
	}
	return s[:i], s[i:]
}

// compareTag ranks a run starting with a letter below an exhausted string.
func compareTag(x, y string) int {
	switch {
	case x == "" && y != "" && isLetter(y[0]):
		return 1
	case y == "" && x != "" && isLetter(x[0]):
		return -1
	}
	return 0
}

func compareText(x, y string) int {
	for i := 0; i < len(x) || i < len(y); i++ {
		var cx, cy byte
		if i < len(x) {
			cx = x[i]
		}
		if i < len(y) {
			cy = y[i]
		}
		if ox, oy := weight(cx), weight(cy); ox != oy {
			return sign(ox - oy)
		}
	}
	return 0
}

func compareNumber(x, y string) int {
	x, y = trimZeros(x), trimZeros(y)
	if len(x) != len(y) {
		return sign(len(x) - len(y))
	}
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

func trimZeros(s string) string {
	for len(s) > 0 && s[0] == '0' {
		s = s[1:]
	}
	return s
}

// weight ranks a byte of a non-digit run; 0 stands for "end of run".
func weight(c byte) int {
	switch {
	case c == 0:
		return 0
	case c == '~':
		return -1
	case isLetter(c):
		return int(c)
	}
	return int(c) + 256
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
