package units

import (
	"math"
	"math/bits"
	"strconv"
)

// Rational is an exact ratio of two int64 values, normalized so that the
// denominator is positive and the numerator and denominator share no common
// factor. The zero value represents 0. All arithmetic on Rational is
// overflow-checked: helpers report failure instead of wrapping, and callers
// downgrade to floating-point when a result cannot be represented.
type Rational struct {
	num int64
	den int64 // 0 is read as 1 so the zero value is usable
}

// Whole returns the rational n/1.
func Whole(n int64) Rational { return Rational{num: n, den: 1} }

// NewRational returns the normalized rational num/den.
// Returns ErrZeroDenominator when den is zero, and ErrInexact for the
// math.MinInt64 edge cases that cannot be normalized within int64.
func NewRational(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, ErrZeroDenominator
	}
	r, ok := makeRat(num, den)
	if !ok {
		return Rational{}, ErrInexact
	}
	return r, nil
}

// d returns the denominator, reading the zero value's 0 as 1.
func (r Rational) d() int64 {
	if r.den == 0 {
		return 1
	}
	return r.den
}

// Num returns the numerator of the normalized form.
func (r Rational) Num() int64 { return r.num }

// Den returns the denominator of the normalized form; always positive.
func (r Rational) Den() int64 { return r.d() }

// Float64 returns the nearest float64 to r.
func (r Rational) Float64() float64 {
	return float64(r.num) / float64(r.d())
}

// IsZero reports whether r is 0.
func (r Rational) IsZero() bool { return r.num == 0 }

// IsInteger reports whether r has denominator 1.
func (r Rational) IsInteger() bool { return r.d() == 1 }

// Int64 returns r as an int64 when it is an integer.
func (r Rational) Int64() (int64, bool) {
	if !r.IsInteger() {
		return 0, false
	}
	return r.num, true
}

// Sign returns -1, 0, or +1 according to the sign of r.
func (r Rational) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return 1
	default:
		return 0
	}
}

// Equal reports whether r and s represent the same value.
func (r Rational) Equal(s Rational) bool {
	return r.num == s.num && r.d() == s.d()
}

// Cmp compares r and s exactly, returning -1, 0, or +1. The comparison uses
// 128-bit intermediate products, so it never overflows.
func (r Rational) Cmp(s Rational) int {
	lneg := r.num < 0
	rneg := s.num < 0
	if lneg != rneg {
		if lneg {
			return -1
		}
		return 1
	}
	// Denominators are positive, so the magnitudes decide.
	hi1, lo1 := bits.Mul64(absU(r.num), uint64(s.d()))
	hi2, lo2 := bits.Mul64(absU(s.num), uint64(r.d()))
	c := 0
	switch {
	case hi1 != hi2:
		if hi1 < hi2 {
			c = -1
		} else {
			c = 1
		}
	case lo1 != lo2:
		if lo1 < lo2 {
			c = -1
		} else {
			c = 1
		}
	}
	if lneg {
		return -c
	}
	return c
}

// String renders r as "n" for integers and "n/d" otherwise.
func (r Rational) String() string {
	if r.IsInteger() {
		return strconv.FormatInt(r.num, 10)
	}
	return strconv.FormatInt(r.num, 10) + "/" + strconv.FormatInt(r.d(), 10)
}

// absU returns |n| as a uint64, including n == math.MinInt64.
func absU(n int64) uint64 {
	if n < 0 {
		return uint64(-(n + 1)) + 1
	}
	return uint64(n)
}

func gcdU(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// makeRat normalizes num/den. ok is false when den is zero or the reduced
// form does not fit in int64.
func makeRat(num, den int64) (Rational, bool) {
	if den == 0 {
		return Rational{}, false
	}
	if num == 0 {
		return Rational{den: 1}, true
	}
	neg := (num < 0) != (den < 0)
	un, ud := absU(num), absU(den)
	g := gcdU(un, ud)
	un /= g
	ud /= g
	if un > math.MaxInt64 || ud > math.MaxInt64 {
		if neg && un == 1<<63 && ud <= math.MaxInt64 {
			return Rational{num: math.MinInt64, den: int64(ud)}, true
		}
		return Rational{}, false
	}
	n := int64(un)
	if neg {
		n = -n
	}
	return Rational{num: n, den: int64(ud)}, true
}

// mul64 multiplies two int64 values, reporting overflow.
func mul64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a == math.MinInt64 || b == math.MinInt64 {
		if a == 1 {
			return b, true
		}
		if b == 1 {
			return a, true
		}
		return 0, false
	}
	c := a * b
	if c/b != a {
		return 0, false
	}
	return c, true
}

// add64 adds two int64 values, reporting overflow.
func add64(a, b int64) (int64, bool) {
	c := a + b
	if (a > 0 && b > 0 && c < 0) || (a < 0 && b < 0 && c >= 0) {
		return 0, false
	}
	return c, true
}

// mulRat multiplies two rationals with cross-reduction to keep intermediates
// small. ok is false on overflow.
func mulRat(a, b Rational) (Rational, bool) {
	g1 := int64(gcdU(absU(a.num), uint64(b.d())))
	g2 := int64(gcdU(absU(b.num), uint64(a.d())))
	n, ok := mul64(a.num/g1, b.num/g2)
	if !ok {
		return Rational{}, false
	}
	d, ok := mul64(a.d()/g2, b.d()/g1)
	if !ok {
		return Rational{}, false
	}
	return makeRat(n, d)
}

// addRat adds two rationals. ok is false on overflow.
func addRat(a, b Rational) (Rational, bool) {
	g := int64(gcdU(uint64(a.d()), uint64(b.d())))
	da := a.d() / g
	db := b.d() / g
	n1, ok := mul64(a.num, db)
	if !ok {
		return Rational{}, false
	}
	n2, ok := mul64(b.num, da)
	if !ok {
		return Rational{}, false
	}
	n, ok := add64(n1, n2)
	if !ok {
		return Rational{}, false
	}
	d, ok := mul64(a.d(), db)
	if !ok {
		return Rational{}, false
	}
	return makeRat(n, d)
}

// negRat negates a rational. ok is false only for math.MinInt64 numerators.
func negRat(a Rational) (Rational, bool) {
	if a.num == math.MinInt64 {
		return Rational{}, false
	}
	return Rational{num: -a.num, den: a.d()}, true
}

// subRat subtracts b from a. ok is false on overflow.
func subRat(a, b Rational) (Rational, bool) {
	nb, ok := negRat(b)
	if !ok {
		return Rational{}, false
	}
	return addRat(a, nb)
}

// invRat inverts a rational. ok is false when a is zero or the inverse does
// not fit.
func invRat(a Rational) (Rational, bool) {
	if a.num == 0 {
		return Rational{}, false
	}
	return makeRat(a.d(), a.num)
}

// divRat divides a by b. ok is false when b is zero or on overflow.
func divRat(a, b Rational) (Rational, bool) {
	inv, ok := invRat(b)
	if !ok {
		return Rational{}, false
	}
	return mulRat(a, inv)
}

// powRat raises a rational to an integer exponent by repeated squaring.
// ok is false when the base is zero with a negative exponent or on overflow.
func powRat(r Rational, n int64) (Rational, bool) {
	if n == 0 {
		return Whole(1), true
	}
	var e uint64
	if n < 0 {
		inv, ok := invRat(r)
		if !ok {
			return Rational{}, false
		}
		r = inv
		e = absU(n)
	} else {
		e = uint64(n)
	}
	acc := Whole(1)
	base := r
	var ok bool
	for e > 0 {
		if e&1 == 1 {
			if acc, ok = mulRat(acc, base); !ok {
				return Rational{}, false
			}
		}
		e >>= 1
		if e > 0 {
			if base, ok = mulRat(base, base); !ok {
				return Rational{}, false
			}
		}
	}
	return acc, true
}

// ratFromFloat returns the exact rational value of a finite float64.
// ok is false for non-finite inputs and for values whose exact form does not
// fit in int64/int64.
func ratFromFloat(f float64) (Rational, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Rational{}, false
	}
	if f == 0 {
		return Rational{den: 1}, true
	}
	frac, exp := math.Frexp(f) // f = frac * 2^exp with 0.5 <= |frac| < 1
	m := int64(frac * (1 << 53))
	e := exp - 53
	for m&1 == 0 {
		m >>= 1
		e++
	}
	switch {
	case e >= 0:
		if e > 62 {
			return Rational{}, false
		}
		n, ok := mul64(m, int64(1)<<uint(e))
		if !ok {
			return Rational{}, false
		}
		return makeRat(n, 1)
	default:
		if -e > 62 {
			return Rational{}, false
		}
		return makeRat(m, int64(1)<<uint(-e))
	}
}
