package approx

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// scaleNames[g] names 10^(3(g+2)), i.e. scaleNames[0] is million.
var scaleNames = []string{
	"million", "billion", "trillion", "quadrillion", "quintillion",
	"sextillion", "septillion", "octillion", "nonillion", "decillion",
	"undecillion", "duodecillion", "tredecillion", "quattuordecillion",
	"quindecillion", "sexdecillion", "septendecillion", "octodecillion",
	"novemdecillion", "vigintillion",
}

// English renders the value the way a player reads it: comma-grouped
// below one million ("999,999"), short-scale words above
// ("1.23 billion"), scientific once the words run out.
func (x Int) English() string {
	if x.Sign() < 0 {
		return "-" + x.Neg().English()
	}
	if x.IsZero() {
		return "0"
	}
	e := x.magnitude()
	if e < 6 {
		// exp is always 0 here; the value is exact.
		n, _ := x.Int64()
		return humanize.Comma(n)
	}
	g := e/3 - 2
	if g >= len(scaleNames) {
		return x.Scientific()
	}
	return x.mantissa(e%3+1) + " " + scaleNames[g]
}

// Scientific renders the value as "1.23e45".
func (x Int) Scientific() string {
	if x.Sign() < 0 {
		return "-" + x.Neg().Scientific()
	}
	if x.IsZero() {
		return "0"
	}
	return x.mantissa(1) + "e" + strconv.Itoa(x.magnitude())
}

// mantissa formats the leading digits of |x| with intDigits digits
// before the decimal point and at most two after, trailing zeros
// trimmed: mantissa(1) of 1,230,000 is "1.23".
func (x Int) mantissa(intDigits int) string {
	c := x.coeff
	if c < 0 {
		c = -c
	}
	s := strconv.FormatInt(c, 10) + "00"
	whole := s[:intDigits]
	frac := strings.TrimRight(s[intDigits:intDigits+2], "0")
	if frac == "" {
		return whole
	}
	return whole + "." + frac
}
