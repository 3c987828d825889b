package units

import "math"

// Floor returns q with its value rounded toward negative infinity; the units
// are unchanged.
func (q Quantity) Floor() Quantity { return Quantity{val: q.val.Floor(), unit: q.unit} }

// Ceil returns q with its value rounded toward positive infinity.
func (q Quantity) Ceil() Quantity { return Quantity{val: q.val.Ceil(), unit: q.unit} }

// Trunc returns q with its value rounded toward zero.
func (q Quantity) Trunc() Quantity { return Quantity{val: q.val.Trunc(), unit: q.unit} }

// Round returns q with its value rounded to the nearest integer, half away
// from zero.
func (q Quantity) Round() Quantity { return Quantity{val: q.val.Round(), unit: q.unit} }

// Abs returns q with a non-negative value and unchanged units.
func (q Quantity) Abs() Quantity { return Quantity{val: q.val.Abs(), unit: q.unit} }

// Abs2 returns the squared magnitude: the value squared and the units raised
// to the second power.
func (q Quantity) Abs2() Quantity {
	return Quantity{val: q.val.Mul(q.val), unit: q.unit.Pow(Whole(2))}
}

// Sign returns -1, 0, or +1 for the value's sign, as a plain dimensionless
// result.
func (q Quantity) Sign() int { return q.val.Sign() }

// Signbit reports whether the value is negative or negative zero.
func (q Quantity) Signbit() bool { return q.val.Signbit() }

// IsNaN reports whether the value is an IEEE not-a-number.
func (q Quantity) IsNaN() bool { return q.val.IsNaN() }

// IsInf reports whether the value is infinite.
func (q Quantity) IsInf() bool { return q.val.IsInf() }

// IsFinite reports whether the value is neither infinite nor NaN.
func (q Quantity) IsFinite() bool { return q.val.IsFinite() }

// IsInteger reports whether the value is integral.
func (q Quantity) IsInteger() bool { return q.val.IsInteger() }

// IsReal reports whether the value is a real number. The backing types here
// are always real; the predicate exists for parity with the numeric
// predicates above.
func (q Quantity) IsReal() bool { return true }

// dimensionlessValue converts q to the dimensionless reference. The
// elementary transcendental functions are defined only there; applying them
// to a dimensioned quantity is rejected rather than silently computed.
func dimensionlessValue(q Quantity) (float64, error) {
	v, err := Strip(Unitless, q)
	if err != nil {
		return 0, err
	}
	return v.Float(), nil
}

// Log returns the natural logarithm of a dimensionless quantity.
// Returns ErrDimensionMismatch for dimensioned input.
func Log(q Quantity) (float64, error) {
	v, err := dimensionlessValue(q)
	if err != nil {
		return 0, err
	}
	return math.Log(v), nil
}

// Log2 returns the base-2 logarithm of a dimensionless quantity.
func Log2(q Quantity) (float64, error) {
	v, err := dimensionlessValue(q)
	if err != nil {
		return 0, err
	}
	return math.Log2(v), nil
}

// Log10 returns the base-10 logarithm of a dimensionless quantity.
func Log10(q Quantity) (float64, error) {
	v, err := dimensionlessValue(q)
	if err != nil {
		return 0, err
	}
	return math.Log10(v), nil
}

// Log1p returns log(1+x) for a dimensionless quantity.
func Log1p(q Quantity) (float64, error) {
	v, err := dimensionlessValue(q)
	if err != nil {
		return 0, err
	}
	return math.Log1p(v), nil
}

// Exp returns e**x for a dimensionless quantity.
func Exp(q Quantity) (float64, error) {
	v, err := dimensionlessValue(q)
	if err != nil {
		return 0, err
	}
	return math.Exp(v), nil
}

// Expm1 returns e**x - 1 for a dimensionless quantity.
func Expm1(q Quantity) (float64, error) {
	v, err := dimensionlessValue(q)
	if err != nil {
		return 0, err
	}
	return math.Expm1(v), nil
}
