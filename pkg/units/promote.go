package units

// Kind identifies the numeric backing of a Scalar, for the benefit of the
// numeric-promotion collaborator.
type Kind int

const (
	// KindExact marks a scalar on the exact rational path.
	KindExact Kind = iota
	// KindFloat marks a scalar on the floating path.
	KindFloat
)

// Kind returns the backing kind of s.
func (s Scalar) Kind() Kind {
	if s.exact {
		return KindExact
	}
	return KindFloat
}

// PromoteKind returns the backing kind of a binary operation's result,
// independent of either operand's Units: exact only when both operands are
// exact.
func PromoteKind(a, b Scalar) Kind {
	if a.exact && b.exact {
		return KindExact
	}
	return KindFloat
}

// MulUnits returns the canonical product of two Units values. Together with
// DivUnits it is the hook a promotion layer uses to decide the resulting
// Units of a binary numeric operation.
func MulUnits(a, b Units) Units { return a.Mul(b) }

// DivUnits returns the canonical quotient of two Units values.
func DivUnits(a, b Units) Units { return a.Div(b) }
