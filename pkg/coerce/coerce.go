package coerce

import (
	"strconv"
	"strings"
)

// Int parses value as a base-10 integer after trimming surrounding whitespace.
// When parsing fails def is used instead. The result is then clamped to min and
// max; a nil bound is ignored.
func Int(value string, def int, min, max *int) int {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		v = def
	}

	if min != nil && v < *min {
		v = *min
	}
	if max != nil && v > *max {
		v = *max
	}

	return v
}
