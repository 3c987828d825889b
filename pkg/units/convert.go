package units

import "math"

// BaseFactor returns the product over u's factors of each primitive's
// conversion factor raised to the factor's power. The decimal-prefix
// contribution is excluded; see TensFactor. The result stays on the exact
// rational path only while every power is an integer and every intermediate
// fits in int64; the first factor that breaks either condition downgrades the
// whole product to floating-point, permanently.
func BaseFactor(u Units) Scalar {
	acc := Int(1)
	for _, f := range u.factors {
		acc = acc.Mul(f.prim.factor.Pow(f.power))
	}
	return acc
}

// TensFactor returns the net power-of-ten exponent contributed by u's
// decimal prefixes: the sum over factors of tens x power. ok is false when
// the sum is not an integer (a fractional power over a prefixed unit), in
// which case the fractional part must be handled on the floating path.
func TensFactor(u Units) (int64, bool) {
	return tensRational(u).Int64()
}

// tensRational returns the exact Σ tens×power over u's factors.
func tensRational(u Units) Rational {
	acc := Whole(0)
	for _, f := range u.factors {
		acc = addPower(acc, mulPower(Whole(int64(f.tens)), f.power))
	}
	return acc
}

// pow10 returns 10^e as a Scalar, exact for integer exponents whose result
// fits in int64 (|e| <= 18), floating otherwise.
func pow10(e Rational) Scalar {
	if n, ok := e.Int64(); ok && n >= -18 && n <= 18 {
		if r, ok := powRat(Whole(10), n); ok {
			return exactScalar(r)
		}
	}
	return floatScalar(math.Pow(10, e.Float64()))
}

// scaleFactor returns the full multiplier relating u to the reference
// magnitudes of its dimensions: BaseFactor times the net prefix contribution.
func scaleFactor(u Units) Scalar {
	return BaseFactor(u).Mul(pow10(tensRational(u)))
}

// Convert returns q expressed in target units. The quantity's value is
// multiplied by the ratio of the two scale factors; when both sides stayed on
// the exact rational path the conversion is exact, otherwise it is floating
// and lossy. Returns ErrDimensionMismatch when the target's dimensions differ
// from q's.
func Convert(target Units, q Quantity) (Quantity, error) {
	if !target.dims.Equal(q.unit.dims) {
		return Quantity{}, ErrDimensionMismatch
	}
	if target.Equal(q.unit) {
		return q, nil
	}
	ratio := scaleFactor(q.unit).Div(scaleFactor(target))
	return Quantity{val: q.val.Mul(ratio), unit: target}, nil
}
