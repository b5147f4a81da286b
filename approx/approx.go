// Package approx implements approximate big integers for
// incremental-game quantities.
//
// An Int stores a value as coeff × 10^exp. Values that fit in the
// coefficient are exact; larger values keep the leading 15 decimal
// digits and drop the rest. That is the right trade for an idle game:
// a counter in the vigintillions does not care about its last digit,
// and arithmetic stays allocation-free.
//
// The zero Int is zero and ready to use.
package approx

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// precision is the number of significant decimal digits kept.
const precision = 15

const (
	maxCoeff = 1e15 // 10^precision; |coeff| stays below this
	minCoeff = 1e14 // once exp > 0, |coeff| stays at or above this
)

var pow10 = [...]int64{
	1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7,
	1e8, 1e9, 1e10, 1e11, 1e12, 1e13, 1e14, 1e15,
}

// Int is an approximate non-bounded integer, value ≈ coeff × 10^exp.
//
// Invariants: zero is {0, 0}; |coeff| < 10^15 always; when exp > 0,
// |coeff| >= 10^14 (the representation is fully shifted down).
type Int struct {
	coeff int64
	exp   int
}

// Zero returns the zero value.
func Zero() Int { return Int{} }

// One returns one.
func One() Int { return Int{coeff: 1} }

// FromInt64 returns the Int closest to n.
func FromInt64(n int64) Int {
	return norm(n, 0)
}

// norm reestablishes the representation invariants.
func norm(coeff int64, exp int) Int {
	if coeff == 0 {
		return Int{}
	}
	for coeff >= maxCoeff || coeff <= -maxCoeff {
		// Round half away from zero.
		if coeff > 0 {
			coeff = (coeff + 5) / 10
		} else {
			coeff = (coeff - 5) / 10
		}
		exp++
	}
	for exp > 0 && coeff < minCoeff && coeff > -minCoeff {
		coeff *= 10
		exp--
	}
	return Int{coeff: coeff, exp: exp}
}

// Sign returns -1, 0, or 1.
func (x Int) Sign() int {
	switch {
	case x.coeff < 0:
		return -1
	case x.coeff > 0:
		return 1
	}
	return 0
}

// IsZero reports whether x is zero.
func (x Int) IsZero() bool { return x.coeff == 0 }

// Neg returns -x.
func (x Int) Neg() Int { return Int{coeff: -x.coeff, exp: x.exp} }

// Add returns x + y.
func (x Int) Add(y Int) Int {
	if x.IsZero() {
		return y
	}
	if y.IsZero() {
		return x
	}
	hi, lo := x, y
	if hi.exp < lo.exp {
		hi, lo = lo, hi
	}
	diff := hi.exp - lo.exp
	if diff > precision {
		// lo is below hi's precision; it contributes nothing.
		return hi
	}
	return norm(hi.coeff+lo.coeff/pow10[diff], hi.exp)
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int { return x.Add(y.Neg()) }

// Cmp compares x and y: -1 if x < y, 0 if equal, 1 if x > y.
func (x Int) Cmp(y Int) int {
	if s := x.Sign() - y.Sign(); s != 0 {
		if s > 0 {
			return 1
		}
		return -1
	}
	return x.Sub(y).Sign()
}

// Scale returns x scaled by f, rounded to the nearest integer.
// Used for geometric cost growth (e.g. Scale(1.25)).
func (x Int) Scale(f float64) Int {
	if x.IsZero() || f == 0 {
		return Int{}
	}
	c := float64(x.coeff) * f
	exp := x.exp
	for c >= maxCoeff || c <= -maxCoeff {
		c /= 10
		exp++
	}
	return norm(int64(math.Round(c)), exp)
}

// Int64 returns the value as an int64. Exact (ok true) only when the
// representation is unshifted.
func (x Int) Int64() (v int64, ok bool) {
	if x.exp == 0 {
		return x.coeff, true
	}
	f := float64(x.coeff) * math.Pow(10, float64(x.exp))
	if f > math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), false
}

// magnitude returns the decimal exponent of the leading digit
// (0 for values in [1,10), 3 for thousands, ...). Zero maps to 0.
func (x Int) magnitude() int {
	if x.coeff == 0 {
		return 0
	}
	c := x.coeff
	if c < 0 {
		c = -c
	}
	d := 0
	for c >= 10 {
		c /= 10
		d++
	}
	return d + x.exp
}

// String returns a compact exact form that Parse round-trips:
// plain digits when unshifted, "<coeff>e<exp>" otherwise.
// For human-readable output use English or Scientific.
func (x Int) String() string {
	if x.exp == 0 {
		return strconv.FormatInt(x.coeff, 10)
	}
	return strconv.FormatInt(x.coeff, 10) + "e" + strconv.Itoa(x.exp)
}

// Parse decodes the String form. The empty string parses as zero.
func Parse(s string) (Int, error) {
	if s == "" {
		return Int{}, nil
	}
	mant := s
	exp := 0
	if i := strings.IndexByte(s, 'e'); i >= 0 {
		var err error
		exp, err = strconv.Atoi(s[i+1:])
		if err != nil {
			return Int{}, fmt.Errorf("approx: parse %q: %v", s, err)
		}
		mant = s[:i]
	}
	coeff, err := strconv.ParseInt(mant, 10, 64)
	if err != nil {
		return Int{}, fmt.Errorf("approx: parse %q: %v", s, err)
	}
	if exp < 0 {
		return Int{}, fmt.Errorf("approx: parse %q: negative exponent", s)
	}
	return norm(coeff, exp), nil
}
