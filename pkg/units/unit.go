package units

import (
	"strconv"
	"strings"
)

// Primitive describes a registered primitive unit: a unique tag, the decimal
// prefix of its reference form, its intrinsic dimensions, and the conversion
// factor relating it (without prefix) to the reference magnitude of those
// dimensions. Primitives are created once by the registration layer and
// treated as read-only afterwards.
type Primitive struct {
	tag    string
	tens   int
	dims   Dimensions
	factor Scalar
}

// NewPrimitive validates and returns a primitive unit descriptor.
// Returns ErrInvalidTag for an empty tag and ErrInvalidFactor for a factor
// that is not finite and positive.
func NewPrimitive(tag string, tens int, dims Dimensions, factor Scalar) (*Primitive, error) {
	if tag == "" {
		return nil, ErrInvalidTag
	}
	if !factor.IsFinite() || factor.Sign() <= 0 {
		return nil, ErrInvalidFactor
	}
	return &Primitive{tag: tag, tens: tens, dims: dims, factor: factor}, nil
}

// Tag returns the primitive's unique tag.
func (p *Primitive) Tag() string { return p.tag }

// Tens returns the decimal-prefix exponent of the reference form.
func (p *Primitive) Tens() int { return p.tens }

// Dims returns the primitive's intrinsic dimensions.
func (p *Primitive) Dims() Dimensions { return p.dims }

// Factor returns the conversion factor to the reference magnitude.
func (p *Primitive) Factor() Scalar { return p.factor }

// Unit returns the single-factor Units of the primitive's reference form.
func (p *Primitive) Unit() Units { return p.AtTens(p.tens) }

// AtTens returns the single-factor Units of the primitive at the given
// absolute decimal-prefix exponent.
func (p *Primitive) AtTens(tens int) Units {
	f := Unit{prim: p, tens: tens, power: Whole(1)}
	return Units{factors: []Unit{f}, dims: p.dims}
}

// Unit is one factor of a Units value: a primitive unit at a decimal-prefix
// exponent, raised to a rational power. Two Unit records merge under
// composition only when both tag and prefix exponent match.
type Unit struct {
	prim  *Primitive
	tens  int
	power Rational
}

// Tag returns the primitive tag of the factor.
func (u Unit) Tag() string { return u.prim.tag }

// Tens returns the factor's decimal-prefix exponent.
func (u Unit) Tens() int { return u.tens }

// Power returns the factor's rational exponent.
func (u Unit) Power() Rational { return u.power }

// Units is a canonical composite of Unit factors: sorted by (power, tens,
// tag), duplicates merged, zero powers removed, paired with the derived
// Dimensions (the product of each constituent's dimensions raised to its
// power). The zero value is the unique unitless composite. Units values are
// immutable and compared structurally.
type Units struct {
	factors []Unit
	dims    Dimensions
}

// Unitless is the unitless Units value.
var Unitless Units

// Factors returns a copy of the canonical factor list, sorted and merged,
// with no zero powers. Intended for rendering layers.
func (u Units) Factors() []Unit {
	out := make([]Unit, len(u.factors))
	copy(out, u.factors)
	return out
}

// Dims returns the derived dimensions of u.
func (u Units) Dims() Dimensions { return u.dims }

// IsUnitless reports whether u is the unitless composite.
func (u Units) IsUnitless() bool { return len(u.factors) == 0 }

// Equal reports whether u and v have identical canonical factor lists.
func (u Units) Equal(v Units) bool {
	if len(u.factors) != len(v.factors) {
		return false
	}
	for i, f := range u.factors {
		g := v.factors[i]
		if f.prim.tag != g.prim.tag || f.tens != g.tens || !f.power.Equal(g.power) {
			return false
		}
	}
	return true
}

// Mul returns the canonical product of u and v.
func (u Units) Mul(v Units) Units { return Compose(u, v) }

// Div returns the canonical quotient u / v.
func (u Units) Div(v Units) Units { return Compose(u, v.Inv()) }

// Inv returns u with every factor's power negated.
func (u Units) Inv() Units { return u.Pow(Whole(-1)) }

// Pow returns u with every factor's power multiplied by e, recanonicalized.
// A zero exponent yields the unitless value.
func (u Units) Pow(e Rational) Units {
	fs := make([]Unit, 0, len(u.factors))
	for _, f := range u.factors {
		fs = append(fs, Unit{prim: f.prim, tens: f.tens, power: mulPower(f.power, e)})
	}
	return canonicalUnits(fs)
}

// Sqrt returns u raised to the power 1/2.
func (u Units) Sqrt() Units {
	return u.Pow(Rational{num: 1, den: 2})
}

// prefixSymbols maps a decimal exponent to its SI prefix symbol.
var prefixSymbols = map[int]string{
	-30: "q", -27: "r", -24: "y", -21: "z", -18: "a", -15: "f", -12: "p",
	-9: "n", -6: "µ", -3: "m", -2: "c", -1: "d", 0: "", 1: "da", 2: "h",
	3: "k", 6: "M", 9: "G", 12: "T", 15: "P", 18: "E", 21: "Z", 24: "Y",
	27: "R", 30: "Q",
}

// symbol renders one factor as prefix+tag, falling back to an explicit
// power-of-ten for exponents without an SI prefix.
func (u Unit) symbol() string {
	if sym, ok := prefixSymbols[u.tens]; ok {
		return sym + u.prim.tag
	}
	return "10^" + strconv.Itoa(u.tens) + "·" + u.prim.tag
}

// String renders the canonical factor list as space-separated prefix+tag^power
// terms; the unitless value renders as an empty string.
func (u Units) String() string {
	var b strings.Builder
	for i, f := range u.factors {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(f.symbol())
		if !f.power.Equal(Whole(1)) {
			b.WriteByte('^')
			b.WriteString(f.power.String())
		}
	}
	return b.String()
}
