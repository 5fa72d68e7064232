package turbine

import (
	"math"
	"strconv"
)

// maxExactInt is the largest float64 magnitude that still represents
// every integer exactly. Integral values beyond it stay float64.
const maxExactInt = 1 << 53

// Coerce interprets s as a number when possible. Integral values collapse
// to int, so "0.0" becomes 0 rather than 0.0; fractional values stay
// float64; anything unparseable is returned unchanged as a string.
func Coerce(s string) any {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	if f == math.Trunc(f) && math.Abs(f) < maxExactInt {
		return int(f)
	}
	return f
}
