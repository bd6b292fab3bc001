package request

import (
	"math"
	"strconv"
	"strings"
)

// maxCount bounds quantities and days read from loose input.
const maxCount = 1_000_000

// LenientNumber decodes any JSON value into a float and never fails. Numbers
// and numeric strings keep their value; anything else, NaN and Inf read as 0.
type LenientNumber float64

func (n *LenientNumber) UnmarshalJSON(b []byte) error {
	*n = 0
	s := strings.TrimSpace(string(b))
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	*n = LenientNumber(f)
	return nil
}

// Count reads n as a whole count. Fractions and out-of-range values are 0.
func (n LenientNumber) Count() int {
	f := float64(n)
	if f != math.Trunc(f) || math.Abs(f) > maxCount {
		return 0
	}
	return int(f)
}
