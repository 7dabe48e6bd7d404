package version

import (
	"strconv"
	"strings"
)

// Compare orders two dotted semver-ish strings: negative when a is
// older than b, zero when equal, positive when newer. Missing segments
// count as zero.
func Compare(a, b string) int {
	as := strings.Split(strings.TrimPrefix(a, "v"), ".")
	bs := strings.Split(strings.TrimPrefix(b, "v"), ".")

	for i := 0; i < len(as) || i < len(bs); i++ {
		an := segment(as, i)
		bn := segment(bs, i)
		if an != bn {
			return an - bn
		}
	}
	return 0
}

func segment(parts []string, i int) int {
	if i >= len(parts) {
		return 0
	}
	n, err := strconv.Atoi(parts[i])
	if err != nil {
		return 0
	}
	return n
}
