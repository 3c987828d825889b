package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarExactArithmetic(t *testing.T) {
	half := MustExact(1, 2)
	third := MustExact(1, 3)

	tests := []struct {
		name string
		got  Scalar
		want Scalar
	}{
		{name: "add", got: half.Add(third), want: MustExact(5, 6)},
		{name: "sub", got: half.Sub(third), want: MustExact(1, 6)},
		{name: "mul", got: half.Mul(third), want: MustExact(1, 6)},
		{name: "div", got: half.Div(third), want: MustExact(3, 2)},
		{name: "neg", got: half.Neg(), want: MustExact(-1, 2)},
		{name: "abs", got: half.Neg().Abs(), want: half},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.got.IsExact(), "result must stay exact")
			assert.True(t, tt.want.Equal(tt.got), "got %s", tt.got)
		})
	}
}

func TestScalarDowngradeIsOneWay(t *testing.T) {
	// Overflow the rational path; everything downstream stays floating.
	big := Int(math.MaxInt64)
	over := big.Mul(big)
	assert.False(t, over.IsExact())

	back := over.Div(big)
	assert.False(t, back.IsExact(), "downgrade must never re-promote")
	assert.InEpsilon(t, float64(math.MaxInt64), back.Float(), 1e-9)

	// Mixing exact and float operands lands on the float path.
	mixed := Int(2).Mul(Float(0.5))
	assert.False(t, mixed.IsExact())
	assert.Equal(t, 1.0, mixed.Float())
}

func TestScalarPow(t *testing.T) {
	tests := []struct {
		name      string
		base      Scalar
		exp       Rational
		want      float64
		wantExact bool
	}{
		{name: "integer exponent stays exact", base: MustExact(2, 3), exp: Whole(2), want: 4.0 / 9.0, wantExact: true},
		{name: "negative integer exponent", base: Int(10), exp: Whole(-6), want: 1e-6, wantExact: true},
		{name: "zero exponent", base: Int(17), exp: Whole(0), want: 1, wantExact: true},
		{name: "fractional exponent downgrades", base: Int(4), exp: Rational{num: 1, den: 2}, want: 2, wantExact: false},
		{name: "float base integer exponent", base: Float(1.5), exp: Whole(2), want: 2.25, wantExact: false},
		{name: "exact overflow downgrades", base: Int(10), exp: Whole(40), want: 1e40, wantExact: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.base.Pow(tt.exp)
			assert.Equal(t, tt.wantExact, got.IsExact())
			assert.InEpsilon(t, tt.want, got.Float(), 1e-12)
		})
	}
}

func TestPowFloatIntMatchesExactSquares(t *testing.T) {
	// The integer-power path must be exact for exactly representable cases
	// where math.Pow may not be.
	assert.Equal(t, 100.0, powFloatInt(10, 2))
	assert.Equal(t, 0.25, powFloatInt(2, -2))
	assert.Equal(t, 1.0, powFloatInt(math.NaN(), 0))
	assert.Equal(t, -8.0, powFloatInt(-2, 3))
}

func TestScalarRounding(t *testing.T) {
	tests := []struct {
		name  string
		s     Scalar
		floor int64
		ceil  int64
		trunc int64
		round int64
	}{
		{name: "positive fraction", s: MustExact(7, 2), floor: 3, ceil: 4, trunc: 3, round: 4},
		{name: "negative fraction", s: MustExact(-7, 2), floor: -4, ceil: -3, trunc: -3, round: -4},
		{name: "quarter", s: MustExact(9, 4), floor: 2, ceil: 3, trunc: 2, round: 2},
		{name: "integer passes through", s: Int(5), floor: 5, ceil: 5, trunc: 5, round: 5},
		{name: "float path", s: Float(-1.5), floor: -2, ceil: -1, trunc: -1, round: -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, float64(tt.floor), tt.s.Floor().Float())
			assert.Equal(t, float64(tt.ceil), tt.s.Ceil().Float())
			assert.Equal(t, float64(tt.trunc), tt.s.Trunc().Float())
			assert.Equal(t, float64(tt.round), tt.s.Round().Float())
		})
	}
}

func TestScalarModRem(t *testing.T) {
	a := Int(7)
	b := Int(3)
	assert.Equal(t, 1.0, a.Mod(b).Float())
	assert.Equal(t, 1.0, a.Rem(b).Float())

	neg := Int(-7)
	assert.Equal(t, 2.0, neg.Mod(b).Float(), "floored modulus takes the divisor's sign")
	assert.Equal(t, -1.0, neg.Rem(b).Float(), "truncated remainder takes the dividend's sign")
}

func TestScalarPredicates(t *testing.T) {
	exact := MustExact(4, 2)
	require.True(t, exact.IsExact())
	assert.True(t, exact.IsInteger())
	assert.True(t, exact.IsFinite())
	assert.False(t, exact.IsNaN())

	assert.True(t, Float(3.0).IsInteger())
	assert.False(t, Float(3.5).IsInteger())
	assert.True(t, Float(math.NaN()).IsNaN())
	assert.True(t, Float(math.Inf(-1)).IsInf())
	assert.False(t, Float(math.Inf(-1)).IsFinite())

	assert.Equal(t, -1, MustExact(-1, 3).Sign())
	assert.True(t, Float(math.Copysign(0, -1)).Signbit())
	assert.False(t, Int(0).Signbit())
}

func TestScalarComparisons(t *testing.T) {
	assert.True(t, MustExact(1, 3).Less(MustExact(1, 2)))
	assert.False(t, MustExact(1, 2).Less(MustExact(1, 2)))
	assert.True(t, MustExact(1, 2).Equal(Float(0.5)), "mixed operands compare on the float mirror")
	assert.Equal(t, 0, Int(1).Cmp(Int(1)))
	assert.Equal(t, 1, Int(2).Cmp(Int(1)))
}

func TestScalarString(t *testing.T) {
	assert.Equal(t, "5/6", MustExact(5, 6).String())
	assert.Equal(t, "-2", Int(-2).String())
	assert.Equal(t, "1.5", Float(1.5).String())
}
