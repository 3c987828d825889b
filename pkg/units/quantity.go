package units

// Quantity pairs a numeric value with a Units descriptor. Quantities are
// immutable: every operator returns a fresh value and never mutates an
// operand. The physical magnitude of a quantity is its value times the scale
// factor of its units relative to the reference magnitudes fixed at
// registration.
type Quantity struct {
	val  Scalar
	unit Units
}

// New returns the quantity v u.
func New(v Scalar, u Units) Quantity { return Quantity{val: v, unit: u} }

// Dimensionless wraps a bare number as a unitless quantity. Bare numbers
// combine with a quantity only when that quantity's dimensions are empty; the
// rules in Add and Sub fall out of this wrapping.
func Dimensionless(v Scalar) Quantity { return Quantity{val: v} }

// Value returns the raw numeric value, with the unit tag stripped. For a
// quantity whose units are not the reference form this is a projection, not a
// conversion; see Strip.
func (q Quantity) Value() Scalar { return q.val }

// Unit returns the quantity's units descriptor.
func (q Quantity) Unit() Units { return q.unit }

// Dims returns the dimensions of the quantity's units.
func (q Quantity) Dims() Dimensions { return q.unit.dims }

// Float returns the raw numeric value as a float64.
func (q Quantity) Float() float64 { return q.val.Float() }

// Strip converts q to the target units and returns the resulting bare value.
// Stripping to Unitless expresses the quantity relative to the dimensionless
// reference. Returns ErrDimensionMismatch when the dimensions differ.
func Strip(target Units, q Quantity) (Scalar, error) {
	conv, err := Convert(target, q)
	if err != nil {
		return Scalar{}, err
	}
	return conv.val, nil
}

// Add returns q + r. Identical units combine directly; units differing
// within the same dimensions convert the right operand into q's units first.
// Returns ErrDimensionMismatch when the dimensions differ.
func (q Quantity) Add(r Quantity) (Quantity, error) {
	if q.unit.Equal(r.unit) {
		return Quantity{val: q.val.Add(r.val), unit: q.unit}, nil
	}
	conv, err := Convert(q.unit, r)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{val: q.val.Add(conv.val), unit: q.unit}, nil
}

// Sub returns q - r under the same rules as Add.
func (q Quantity) Sub(r Quantity) (Quantity, error) {
	if q.unit.Equal(r.unit) {
		return Quantity{val: q.val.Sub(r.val), unit: q.unit}, nil
	}
	conv, err := Convert(q.unit, r)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{val: q.val.Sub(conv.val), unit: q.unit}, nil
}

// Mul returns q * r; the values multiply and the units compose canonically.
func (q Quantity) Mul(r Quantity) Quantity {
	return Quantity{val: q.val.Mul(r.val), unit: q.unit.Mul(r.unit)}
}

// Div returns q / r; the values divide and the units compose with the
// divisor inverted.
func (q Quantity) Div(r Quantity) Quantity {
	return Quantity{val: q.val.Div(r.val), unit: q.unit.Div(r.unit)}
}

// DivExact is the exact-rational division variant: it returns q / r only
// when both values are on the exact path and the quotient is representable.
// Returns ErrInexact otherwise.
func (q Quantity) DivExact(r Quantity) (Quantity, error) {
	a, aok := q.val.Rational()
	b, bok := r.val.Rational()
	if !aok || !bok {
		return Quantity{}, ErrInexact
	}
	rat, ok := divRat(a, b)
	if !ok {
		return Quantity{}, ErrInexact
	}
	return Quantity{val: exactScalar(rat), unit: q.unit.Div(r.unit)}, nil
}

// Pow returns q raised to the rational exponent e: the value through the
// exact integer-power path when e is an integer, and the units with every
// factor's power multiplied by e and recanonicalized. The units computation
// is independent of the numeric value.
func (q Quantity) Pow(e Rational) Quantity {
	return Quantity{val: q.val.Pow(e), unit: q.unit.Pow(e)}
}

// PowFloat raises q to a general real exponent. Every finite float64 is an
// exact binary rational; exponents whose exact form does not fit in
// int64/int64 cannot tag the result's units and yield ErrExponentRange.
func (q Quantity) PowFloat(e float64) (Quantity, error) {
	r, ok := ratFromFloat(e)
	if !ok {
		return Quantity{}, ErrExponentRange
	}
	return q.Pow(r), nil
}

// Sqrt returns q raised to the power 1/2.
func (q Quantity) Sqrt() Quantity {
	return q.Pow(Rational{num: 1, den: 2})
}

// Neg returns -q.
func (q Quantity) Neg() Quantity {
	return Quantity{val: q.val.Neg(), unit: q.unit}
}

// divScaled converts q into r's units and returns both values; the right
// operand's units define the reference frame for the div/mod family.
func (q Quantity) divScaled(r Quantity) (Scalar, Scalar, error) {
	conv, err := Convert(r.unit, q)
	if err != nil {
		return Scalar{}, Scalar{}, err
	}
	return conv.val, r.val, nil
}

// DivTrunc returns the dimensionless integer quotient of q by r, rounding
// toward zero. Returns ErrDimensionMismatch when the dimensions differ.
func (q Quantity) DivTrunc(r Quantity) (Quantity, error) {
	a, b, err := q.divScaled(r)
	if err != nil {
		return Quantity{}, err
	}
	return Dimensionless(a.Div(b).Trunc()), nil
}

// DivFloor returns the dimensionless integer quotient of q by r, rounding
// toward negative infinity.
func (q Quantity) DivFloor(r Quantity) (Quantity, error) {
	a, b, err := q.divScaled(r)
	if err != nil {
		return Quantity{}, err
	}
	return Dimensionless(a.Div(b).Floor()), nil
}

// DivCeil returns the dimensionless integer quotient of q by r, rounding
// toward positive infinity.
func (q Quantity) DivCeil(r Quantity) (Quantity, error) {
	a, b, err := q.divScaled(r)
	if err != nil {
		return Quantity{}, err
	}
	return Dimensionless(a.Div(b).Ceil()), nil
}

// Mod returns the floored modulus of q by r, expressed in r's units.
func (q Quantity) Mod(r Quantity) (Quantity, error) {
	a, b, err := q.divScaled(r)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{val: a.Mod(b), unit: r.unit}, nil
}

// Rem returns the truncated remainder of q by r, expressed in r's units.
func (q Quantity) Rem(r Quantity) (Quantity, error) {
	a, b, err := q.divScaled(r)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{val: a.Rem(b), unit: r.unit}, nil
}

// String renders the value followed by the unit symbol.
func (q Quantity) String() string {
	if q.unit.IsUnitless() {
		return q.val.String()
	}
	return q.val.String() + " " + q.unit.String()
}
