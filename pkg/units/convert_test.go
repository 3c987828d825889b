package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseFactor(t *testing.T) {
	tests := []struct {
		name      string
		u         Units
		want      float64
		wantExact bool
	}{
		{name: "reference unit", u: meter, want: 1, wantExact: true},
		{name: "prefix lives in tens not base", u: kilometer, want: 1, wantExact: true},
		{name: "gram carries its mass factor", u: gram, want: 1e-3, wantExact: true},
		{name: "minute", u: minute, want: 60, wantExact: true},
		{name: "composite", u: minute.Pow(Whole(2)), want: 3600, wantExact: true},
		{name: "float primitive downgrades", u: foot, want: 0.3048, wantExact: false},
		{name: "fractional power downgrades", u: minute.Sqrt(), want: 7.745966692414834, wantExact: false},
		{name: "unitless", u: Unitless, want: 1, wantExact: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BaseFactor(tt.u)
			assert.Equal(t, tt.wantExact, got.IsExact())
			assert.InEpsilon(t, tt.want, got.Float(), 1e-12)
		})
	}
}

func TestTensFactor(t *testing.T) {
	tests := []struct {
		name   string
		u      Units
		want   int64
		wantOK bool
	}{
		{name: "unprefixed", u: meter, want: 0, wantOK: true},
		{name: "kilo", u: kilometer, want: 3, wantOK: true},
		{name: "prefix scales with power", u: kilometer.Pow(Whole(2)), want: 6, wantOK: true},
		{name: "inverse prefix", u: micrometer.Inv(), want: 6, wantOK: true},
		{name: "net of prefixes", u: micrometer.Div(meter), want: -6, wantOK: true},
		{name: "fractional tens is not integral", u: kilometer.Sqrt(), want: 0, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TensFactor(tt.u)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestConvertExact(t *testing.T) {
	tests := []struct {
		name    string
		target  Units
		q       Quantity
		wantNum int64
		wantDen int64
	}{
		{name: "cm to m", target: meter, q: q(100, centimeter), wantNum: 1, wantDen: 1},
		{name: "m to km", target: kilometer, q: q(1500, meter), wantNum: 3, wantDen: 2},
		{name: "min to s", target: second, q: q(2, minute), wantNum: 120, wantDen: 1},
		{name: "s to min", target: minute, q: q(90, second), wantNum: 3, wantDen: 2},
		{name: "g to kg", target: kilogram, q: q(250, gram), wantNum: 1, wantDen: 4},
		{name: "strain to dimensionless reference", target: Unitless, q: q(2, micrometer.Div(meter)), wantNum: 1, wantDen: 500000},
		{name: "identity", target: meter, q: q(7, meter), wantNum: 7, wantDen: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.target, tt.q)
			require.NoError(t, err)
			assert.True(t, got.Unit().Equal(tt.target))

			rat, exact := got.Value().Rational()
			require.True(t, exact, "conversion between exact units must stay exact")
			assert.Equal(t, tt.wantNum, rat.Num())
			assert.Equal(t, tt.wantDen, rat.Den())
		})
	}
}

func TestConvertDimensionMismatch(t *testing.T) {
	_, err := Convert(second, q(1, meter))
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = Convert(meter, Dimensionless(Int(1)))
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestConvertLossyPath(t *testing.T) {
	got, err := Convert(meter, q(1, foot))
	require.NoError(t, err)
	assert.False(t, got.Value().IsExact(), "float-factor conversions are lossy")
	assert.InEpsilon(t, 0.3048, got.Float(), 1e-12)
}

func TestConvertTransitivity(t *testing.T) {
	start := q(12345, centimeter)

	viaKm, err := Convert(kilometer, start)
	require.NoError(t, err)
	direct, err := Convert(meter, start)
	require.NoError(t, err)
	indirect, err := Convert(meter, viaKm)
	require.NoError(t, err)

	assert.True(t, Equal(direct, indirect))
	rd, _ := direct.Value().Rational()
	ri, _ := indirect.Value().Rational()
	assert.True(t, rd.Equal(ri), "transitive conversion must be bit-exact on the rational path")
}
