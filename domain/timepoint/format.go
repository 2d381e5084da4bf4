package timepoint

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// FormatNumber renders a count the way the page has always shown it:
// integers without a fractional part, other values in their shortest form.
// Magnitudes from 1e21 up and below 1e-6 switch to exponent form, e.g.
// "1e+21" and "1.5e-7".
func FormatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	if v == 0 {
		return "0"
	}
	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		return exponentForm(v)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// exponentForm writes the shortest exponent notation with an explicit sign
// and no zero padding in the exponent
func exponentForm(v float64) string {
	s := strconv.FormatFloat(v, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}

// FormatCoverage renders "<count> (<percentage*100 to 1 decimal>%)",
// e.g. FormatCoverage(5, 0.256) == "5 (25.6%)".
func FormatCoverage(count, fraction float64) string {
	pct := fraction * 100
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		pct = 0
	}
	return fmt.Sprintf("%s (%s%%)", FormatNumber(count), fixedOneDecimal(pct))
}

// fixedOneDecimal rounds v to one decimal, with exact ties going away from
// zero (56.25 gives "56.3"). The comparison uses the exact binary value of
// v, so 0.35 (stored just below) gives "0.3". Negative values keep their
// sign even when they round to zero.
func fixedOneDecimal(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	r := new(big.Rat).SetFloat64(v)
	r.Mul(r, big.NewRat(10, 1))
	r.Add(r, big.NewRat(1, 2))
	n := new(big.Int).Quo(r.Num(), r.Denom())

	whole, tenth := new(big.Int).QuoRem(n, big.NewInt(10), new(big.Int))
	return fmt.Sprintf("%s%s.%s", sign, whole.String(), tenth.String())
}
