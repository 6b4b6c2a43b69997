package text

import (
	"math"
	"strconv"
	"strings"
)

// FormatInt renders the integer part of n in base 10, zero-padded to width.
// Unusable and negative numbers render as width dashes. A number wider than
// width is returned in full rather than truncated.
func FormatInt(n Number, width int) string {
	width = clampMin(width, 1)
	if !n.Usable() || n.f < 0 {
		return strings.Repeat("-", width)
	}
	var digits string
	if n.exact {
		digits = strconv.FormatInt(n.i, 10)
	} else {
		t := math.Trunc(n.f)
		if t == 0 {
			t = 0 // drop the sign of -0
		}
		digits = strconv.FormatFloat(t, 'f', 0, 64)
	}
	if len(digits) >= width {
		return digits
	}
	return strings.Repeat("0", width-len(digits)) + digits
}
