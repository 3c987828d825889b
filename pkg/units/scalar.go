package units

import (
	"math"
	"strconv"
)

// Scalar is the numeric value carried by a Quantity: an exact rational paired
// with a float64 mirror. The mirror always tracks the value, so Float is
// O(1). Exactness is a one-way door: the first operation that overflows the
// rational range or is inherently inexact moves the result to the float path,
// and nothing derived from it is ever re-promoted.
type Scalar struct {
	rat   Rational
	f     float64
	exact bool
}

// Int returns the exact scalar n.
func Int(n int64) Scalar {
	return Scalar{rat: Whole(n), f: float64(n), exact: true}
}

// Float returns the inexact scalar f.
func Float(f float64) Scalar {
	return Scalar{f: f}
}

// Exact returns the exact scalar num/den.
// Returns ErrZeroDenominator when den is zero.
func Exact(num, den int64) (Scalar, error) {
	r, err := NewRational(num, den)
	if err != nil {
		return Scalar{}, err
	}
	return exactScalar(r), nil
}

// MustExact is like Exact but panics on error. It is intended for statically
// known unit definitions.
func MustExact(num, den int64) Scalar {
	s, err := Exact(num, den)
	if err != nil {
		panic("units: MustExact(" + strconv.FormatInt(num, 10) + ", " + strconv.FormatInt(den, 10) + "): " + err.Error())
	}
	return s
}

// FromRational returns the exact scalar with value r.
func FromRational(r Rational) Scalar { return exactScalar(r) }

func exactScalar(r Rational) Scalar {
	return Scalar{rat: r, f: r.Float64(), exact: true}
}

func floatScalar(f float64) Scalar { return Scalar{f: f} }

// IsExact reports whether s is still on the exact rational path.
func (s Scalar) IsExact() bool { return s.exact }

// Float returns the float64 value of s.
func (s Scalar) Float() float64 { return s.f }

// Rational returns the exact value of s when it has one.
func (s Scalar) Rational() (Rational, bool) {
	if !s.exact {
		return Rational{}, false
	}
	return s.rat, true
}

// Add returns s + t.
func (s Scalar) Add(t Scalar) Scalar {
	if s.exact && t.exact {
		if r, ok := addRat(s.rat, t.rat); ok {
			return exactScalar(r)
		}
	}
	return floatScalar(s.f + t.f)
}

// Sub returns s - t.
func (s Scalar) Sub(t Scalar) Scalar {
	if s.exact && t.exact {
		if r, ok := subRat(s.rat, t.rat); ok {
			return exactScalar(r)
		}
	}
	return floatScalar(s.f - t.f)
}

// Mul returns s * t.
func (s Scalar) Mul(t Scalar) Scalar {
	if s.exact && t.exact {
		if r, ok := mulRat(s.rat, t.rat); ok {
			return exactScalar(r)
		}
	}
	return floatScalar(s.f * t.f)
}

// Div returns s / t. Division by zero follows float64 semantics and yields
// an infinity or NaN on the float path.
func (s Scalar) Div(t Scalar) Scalar {
	if s.exact && t.exact {
		if r, ok := divRat(s.rat, t.rat); ok {
			return exactScalar(r)
		}
	}
	return floatScalar(s.f / t.f)
}

// Neg returns -s.
func (s Scalar) Neg() Scalar {
	if s.exact {
		if r, ok := negRat(s.rat); ok {
			return exactScalar(r)
		}
	}
	return floatScalar(-s.f)
}

// Abs returns |s|.
func (s Scalar) Abs() Scalar {
	if s.Sign() < 0 {
		return s.Neg()
	}
	return s
}

// Pow returns s raised to the rational exponent e. Integer exponents take the
// exact repeated-squaring path on both backings; fractional exponents are
// inherently inexact and use math.Pow.
func (s Scalar) Pow(e Rational) Scalar {
	if n, ok := e.Int64(); ok {
		if s.exact {
			if r, ok := powRat(s.rat, n); ok {
				return exactScalar(r)
			}
		}
		return floatScalar(powFloatInt(s.f, n))
	}
	return floatScalar(math.Pow(s.f, e.Float64()))
}

// PowFloat returns s raised to a float64 exponent, routing integral exponents
// through the exact integer-power path.
func (s Scalar) PowFloat(e float64) Scalar {
	if e == math.Trunc(e) && !math.IsInf(e, 0) && math.Abs(e) < 1<<62 {
		return s.Pow(Whole(int64(e)))
	}
	return floatScalar(math.Pow(s.f, e))
}

// powFloatInt raises a float to an integer exponent by repeated squaring,
// avoiding math.Pow's rounding for integer exponents.
func powFloatInt(f float64, n int64) float64 {
	if n == 0 {
		return 1
	}
	e := absU(n)
	acc := 1.0
	base := f
	for e > 0 {
		if e&1 == 1 {
			acc *= base
		}
		e >>= 1
		if e > 0 {
			base *= base
		}
	}
	if n < 0 {
		return 1 / acc
	}
	return acc
}

// Cmp compares s and t, returning -1, 0, or +1. When either operand is on the
// float path the comparison is a float comparison; NaN compares as 0 here,
// use Less or Equal for IEEE semantics.
func (s Scalar) Cmp(t Scalar) int {
	if s.exact && t.exact {
		return s.rat.Cmp(t.rat)
	}
	switch {
	case s.f < t.f:
		return -1
	case s.f > t.f:
		return 1
	default:
		return 0
	}
}

// Less reports whether s < t.
func (s Scalar) Less(t Scalar) bool {
	if s.exact && t.exact {
		return s.rat.Cmp(t.rat) < 0
	}
	return s.f < t.f
}

// Equal reports whether s and t represent the same value. Mixed exact/float
// operands compare on the float mirror.
func (s Scalar) Equal(t Scalar) bool {
	if s.exact && t.exact {
		return s.rat.Equal(t.rat)
	}
	return s.f == t.f
}

// IsZero reports whether s is zero.
func (s Scalar) IsZero() bool {
	if s.exact {
		return s.rat.IsZero()
	}
	return s.f == 0
}

// Sign returns -1, 0, or +1 according to the sign of s. NaN reports 0.
func (s Scalar) Sign() int {
	if s.exact {
		return s.rat.Sign()
	}
	switch {
	case s.f < 0:
		return -1
	case s.f > 0:
		return 1
	default:
		return 0
	}
}

// Signbit reports whether s is negative or negative zero.
func (s Scalar) Signbit() bool {
	if s.exact {
		return s.rat.Sign() < 0
	}
	return math.Signbit(s.f)
}

// Floor returns the greatest integer value less than or equal to s.
func (s Scalar) Floor() Scalar {
	if s.exact {
		return exactScalar(Whole(floorQuo(s.rat.num, s.rat.d())))
	}
	return floatScalar(math.Floor(s.f))
}

// Ceil returns the least integer value greater than or equal to s.
func (s Scalar) Ceil() Scalar {
	if s.exact {
		return exactScalar(Whole(ceilQuo(s.rat.num, s.rat.d())))
	}
	return floatScalar(math.Ceil(s.f))
}

// Trunc returns the integer part of s, rounding toward zero.
func (s Scalar) Trunc() Scalar {
	if s.exact {
		return exactScalar(Whole(s.rat.num / s.rat.d()))
	}
	return floatScalar(math.Trunc(s.f))
}

// Round returns the nearest integer to s, rounding half away from zero like
// math.Round.
func (s Scalar) Round() Scalar {
	if s.exact {
		n, d := s.rat.num, s.rat.d()
		q := n / d
		rem := n % d
		if rem < 0 {
			rem = -rem
		}
		if rem >= d-rem { // 2*rem >= d without overflow
			if n < 0 {
				q--
			} else {
				q++
			}
		}
		return exactScalar(Whole(q))
	}
	return floatScalar(math.Round(s.f))
}

// Mod returns the floored modulus s - t*floor(s/t); the result has the sign
// of t.
func (s Scalar) Mod(t Scalar) Scalar {
	return s.Sub(t.Mul(s.Div(t).Floor()))
}

// Rem returns the truncated remainder s - t*trunc(s/t); the result has the
// sign of s.
func (s Scalar) Rem(t Scalar) Scalar {
	return s.Sub(t.Mul(s.Div(t).Trunc()))
}

// IsNaN reports whether s is an IEEE not-a-number.
func (s Scalar) IsNaN() bool { return math.IsNaN(s.f) }

// IsInf reports whether s is infinite.
func (s Scalar) IsInf() bool { return math.IsInf(s.f, 0) }

// IsFinite reports whether s is neither infinite nor NaN. Exact scalars are
// always finite.
func (s Scalar) IsFinite() bool {
	return s.exact || (!math.IsNaN(s.f) && !math.IsInf(s.f, 0))
}

// IsInteger reports whether s has an integral value.
func (s Scalar) IsInteger() bool {
	if s.exact {
		return s.rat.IsInteger()
	}
	return s.IsFinite() && s.f == math.Trunc(s.f)
}

// String renders exact scalars as rationals and float scalars in the shortest
// round-tripping decimal form.
func (s Scalar) String() string {
	if s.exact {
		return s.rat.String()
	}
	return strconv.FormatFloat(s.f, 'g', -1, 64)
}

// floorQuo returns floor(n/d) for d > 0.
func floorQuo(n, d int64) int64 {
	q := n / d
	if n%d != 0 && n < 0 {
		q--
	}
	return q
}

// ceilQuo returns ceil(n/d) for d > 0.
func ceilQuo(n, d int64) int64 {
	q := n / d
	if n%d != 0 && n > 0 {
		q++
	}
	return q
}
