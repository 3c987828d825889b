package units

import "strings"

// Dimension is one factor of a Dimensions value: a primitive physical
// dimension tag raised to a rational power. Two Dimension records with the
// same tag merge under composition.
type Dimension struct {
	name  string
	power Rational
}

// Name returns the primitive dimension tag.
func (d Dimension) Name() string { return d.name }

// Power returns the rational exponent of the factor.
func (d Dimension) Power() Rational { return d.power }

// Dimensions is a canonical composite of Dimension factors: sorted by
// (power, tag), duplicate tags merged, zero powers removed. The zero value is
// the unique dimensionless composite. Dimensions values are immutable and
// compared structurally.
type Dimensions struct {
	factors []Dimension
}

// NoDims is the dimensionless Dimensions value.
var NoDims Dimensions

// BaseDimension returns the Dimensions consisting of the single primitive
// tag raised to the first power. Returns ErrInvalidTag for an empty tag.
func BaseDimension(tag string) (Dimensions, error) {
	if tag == "" {
		return Dimensions{}, ErrInvalidTag
	}
	return Dimensions{factors: []Dimension{{name: tag, power: Whole(1)}}}, nil
}

// Factors returns a copy of the canonical factor list, sorted and merged,
// with no zero powers. Intended for rendering layers.
func (d Dimensions) Factors() []Dimension {
	out := make([]Dimension, len(d.factors))
	copy(out, d.factors)
	return out
}

// IsDimensionless reports whether d is the dimensionless composite.
func (d Dimensions) IsDimensionless() bool { return len(d.factors) == 0 }

// Equal reports whether d and e have identical canonical factor lists.
func (d Dimensions) Equal(e Dimensions) bool {
	if len(d.factors) != len(e.factors) {
		return false
	}
	for i, f := range d.factors {
		g := e.factors[i]
		if f.name != g.name || !f.power.Equal(g.power) {
			return false
		}
	}
	return true
}

// Mul returns the canonical product of d and e.
func (d Dimensions) Mul(e Dimensions) Dimensions { return ComposeDims(d, e) }

// Div returns the canonical quotient d / e.
func (d Dimensions) Div(e Dimensions) Dimensions { return ComposeDims(d, e.Inv()) }

// Inv returns d with every factor's power negated.
func (d Dimensions) Inv() Dimensions { return d.Pow(Whole(-1)) }

// Pow returns d with every factor's power multiplied by e. A zero exponent
// yields the dimensionless value.
func (d Dimensions) Pow(e Rational) Dimensions {
	fs := make([]Dimension, 0, len(d.factors))
	for _, f := range d.factors {
		fs = append(fs, Dimension{name: f.name, power: mulPower(f.power, e)})
	}
	return canonicalDims(fs)
}

// Sqrt returns d raised to the power 1/2.
func (d Dimensions) Sqrt() Dimensions {
	return d.Pow(Rational{num: 1, den: 2})
}

// String renders the canonical factor list as space-separated tag^power
// terms; the dimensionless value renders as an empty string.
func (d Dimensions) String() string {
	var b strings.Builder
	for i, f := range d.factors {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(f.name)
		if !f.power.Equal(Whole(1)) {
			b.WriteByte('^')
			b.WriteString(f.power.String())
		}
	}
	return b.String()
}
