package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRationalNormalization(t *testing.T) {
	tests := []struct {
		name    string
		num     int64
		den     int64
		wantNum int64
		wantDen int64
		wantErr error
	}{
		{name: "already reduced", num: 2, den: 3, wantNum: 2, wantDen: 3},
		{name: "reduces common factor", num: 4, den: 6, wantNum: 2, wantDen: 3},
		{name: "zero numerator", num: 0, den: 7, wantNum: 0, wantDen: 1},
		{name: "negative denominator moves sign", num: 1, den: -2, wantNum: -1, wantDen: 2},
		{name: "double negative cancels", num: -3, den: -9, wantNum: 1, wantDen: 3},
		{name: "zero denominator rejected", num: 1, den: 0, wantErr: ErrZeroDenominator},
		{name: "min int64 numerator kept", num: math.MinInt64, den: 2, wantNum: math.MinInt64 / 2, wantDen: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRational(tt.num, tt.den)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantNum, r.Num())
			assert.Equal(t, tt.wantDen, r.Den())
		})
	}
}

func TestRationalCmp(t *testing.T) {
	tests := []struct {
		name string
		a, b Rational
		want int
	}{
		{name: "equal integers", a: Whole(3), b: Whole(3), want: 0},
		{name: "less", a: Whole(1), b: Whole(2), want: -1},
		{name: "greater", a: Whole(5), b: Whole(-5), want: 1},
		{name: "fractions", a: mustRat(t, 1, 3), b: mustRat(t, 1, 2), want: -1},
		{name: "negative fractions", a: mustRat(t, -1, 2), b: mustRat(t, -1, 3), want: -1},
		{name: "zero against zero value", a: Rational{}, b: Whole(0), want: 0},
		{name: "large magnitudes do not overflow", a: mustRat(t, math.MaxInt64, 3), b: mustRat(t, math.MaxInt64-1, 3), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Cmp(tt.b))
			assert.Equal(t, -tt.want, tt.b.Cmp(tt.a))
		})
	}
}

func TestRationalCheckedOps(t *testing.T) {
	half := mustRat(t, 1, 2)
	third := mustRat(t, 1, 3)

	r, ok := addRat(half, third)
	require.True(t, ok)
	assert.Equal(t, mustRat(t, 5, 6), r)

	r, ok = mulRat(half, third)
	require.True(t, ok)
	assert.Equal(t, mustRat(t, 1, 6), r)

	r, ok = divRat(half, third)
	require.True(t, ok)
	assert.Equal(t, mustRat(t, 3, 2), r)

	_, ok = invRat(Whole(0))
	assert.False(t, ok, "inverse of zero must fail")

	// Cross-reduction keeps representable products representable.
	big := mustRat(t, math.MaxInt64, 2)
	r, ok = mulRat(big, mustRat(t, 2, math.MaxInt64))
	require.True(t, ok)
	assert.Equal(t, Whole(1), r)

	// A genuinely unrepresentable product reports failure.
	_, ok = mulRat(mustRat(t, math.MaxInt64, 1), mustRat(t, math.MaxInt64, 1))
	assert.False(t, ok)
}

func TestPowRat(t *testing.T) {
	tests := []struct {
		name   string
		base   Rational
		exp    int64
		want   Rational
		wantOK bool
	}{
		{name: "zeroth power", base: mustRat(t, 7, 3), exp: 0, want: Whole(1), wantOK: true},
		{name: "square", base: mustRat(t, 2, 3), exp: 2, want: mustRat(t, 4, 9), wantOK: true},
		{name: "negative exponent inverts", base: Whole(10), exp: -3, want: mustRat(t, 1, 1000), wantOK: true},
		{name: "zero base negative exponent fails", base: Whole(0), exp: -1, wantOK: false},
		{name: "overflow reported", base: Whole(10), exp: 40, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := powRat(tt.base, tt.exp)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestRatFromFloat(t *testing.T) {
	tests := []struct {
		name   string
		f      float64
		want   Rational
		wantOK bool
	}{
		{name: "integer", f: 3, want: Whole(3), wantOK: true},
		{name: "half", f: 0.5, want: mustRat(t, 1, 2), wantOK: true},
		{name: "negative quarter", f: -0.25, want: mustRat(t, -1, 4), wantOK: true},
		{name: "zero", f: 0, want: Whole(0), wantOK: true},
		{name: "nan rejected", f: math.NaN(), wantOK: false},
		{name: "inf rejected", f: math.Inf(1), wantOK: false},
		{name: "huge exponent rejected", f: 1e300, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ratFromFloat(tt.f)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, tt.want.Equal(got), "got %s", got)
			}
		})
	}
}

func TestRationalString(t *testing.T) {
	assert.Equal(t, "3", Whole(3).String())
	assert.Equal(t, "-1/2", mustRat(t, 1, -2).String())
}

func mustRat(t *testing.T, num, den int64) Rational {
	t.Helper()
	r, err := NewRational(num, den)
	require.NoError(t, err)
	return r
}
