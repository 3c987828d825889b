package units

import "math"

// Less reports whether a < b. Identical units compare values directly
// without any conversion; units differing within the same dimensions convert
// the right operand into a's units first. Ordering across dimensions is
// undefined: ErrDimensionMismatch.
func Less(a, b Quantity) (bool, error) {
	if a.unit.Equal(b.unit) {
		return a.val.Less(b.val), nil
	}
	conv, err := Convert(a.unit, b)
	if err != nil {
		return false, err
	}
	return a.val.Less(conv.val), nil
}

// Compare returns -1, 0, or +1 ordering a against b, with the same
// conversion rules and error behavior as Less.
func Compare(a, b Quantity) (int, error) {
	if a.unit.Equal(b.unit) {
		return a.val.Cmp(b.val), nil
	}
	conv, err := Convert(a.unit, b)
	if err != nil {
		return 0, err
	}
	return a.val.Cmp(conv.val), nil
}

// Equal reports whether a and b represent the same physical magnitude.
// Unlike ordering, equality is total: quantities of differing dimensions are
// simply unequal, never an error.
func Equal(a, b Quantity) bool {
	if !a.unit.dims.Equal(b.unit.dims) {
		return false
	}
	if a.unit.Equal(b.unit) {
		return a.val.Equal(b.val)
	}
	conv, err := Convert(a.unit, b)
	if err != nil {
		return false
	}
	return a.val.Equal(conv.val)
}

// approxConfig holds tolerances for approximate comparison, expressed on the
// values after conversion to the left operand's units.
type approxConfig struct {
	rtol float64
	atol float64
}

// defaultRelTol matches the customary sqrt(machine epsilon) default.
var defaultRelTol = math.Sqrt(0x1p-52)

// ApproxOption adjusts the tolerances used by Approx and ApproxSlice.
type ApproxOption func(*approxConfig)

// WithRelTol sets the relative tolerance.
func WithRelTol(rtol float64) ApproxOption {
	return func(c *approxConfig) { c.rtol = rtol }
}

// WithAbsTol sets the absolute tolerance, interpreted in the left operand's
// units.
func WithAbsTol(atol float64) ApproxOption {
	return func(c *approxConfig) { c.atol = atol }
}

func newApproxConfig(opts []ApproxOption) approxConfig {
	c := approxConfig{rtol: defaultRelTol}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Approx reports whether a and b are equal within tolerance. It mirrors
// Equal: quantities of differing dimensions are not approximately equal and
// no error is raised.
func Approx(a, b Quantity, opts ...ApproxOption) bool {
	if !a.unit.dims.Equal(b.unit.dims) {
		return false
	}
	conv, err := Convert(a.unit, b)
	if err != nil {
		return false
	}
	c := newApproxConfig(opts)
	return approxFloat(a.val.Float(), conv.val.Float(), c)
}

func approxFloat(x, y float64, c approxConfig) bool {
	if x == y {
		return true
	}
	diff := math.Abs(x - y)
	tol := math.Max(c.atol, c.rtol*math.Max(math.Abs(x), math.Abs(y)))
	return diff <= tol
}

// ApproxSlice compares two equal-length slices of quantities using a
// norm-based composite tolerance: ||a-b|| against the tolerance derived from
// ||a|| and ||b||. When any norm is non-finite the test falls back to
// elementwise approximate comparison. All elements must share the dimensions
// of the first pair. Returns ErrLengthMismatch or ErrDimensionMismatch for
// malformed input.
func ApproxSlice(a, b []Quantity, opts ...ApproxOption) (bool, error) {
	if len(a) != len(b) {
		return false, ErrLengthMismatch
	}
	if len(a) == 0 {
		return true, nil
	}
	ref := a[0].unit
	xs := make([]float64, len(a))
	ys := make([]float64, len(b))
	for i := range a {
		av, err := Strip(ref, a[i])
		if err != nil {
			return false, err
		}
		bv, err := Strip(ref, b[i])
		if err != nil {
			return false, err
		}
		xs[i] = av.Float()
		ys[i] = bv.Float()
	}
	c := newApproxConfig(opts)
	na, nb, nd := norm2(xs), norm2(ys), normDiff(xs, ys)
	if isFinite(na) && isFinite(nb) && isFinite(nd) {
		tol := math.Max(c.atol, c.rtol*math.Max(na, nb))
		return nd <= tol, nil
	}
	// Non-finite components defeat the norm test; compare elementwise.
	for i := range xs {
		if !approxFloat(xs[i], ys[i], c) {
			return false, nil
		}
	}
	return true, nil
}

func norm2(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x * x
	}
	return math.Sqrt(s)
}

func normDiff(xs, ys []float64) float64 {
	var s float64
	for i := range xs {
		d := xs[i] - ys[i]
		s += d * d
	}
	return math.Sqrt(s)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Min returns whichever of a and b is smaller, comparing through each
// operand's scale factor so that the winner is returned unconverted, with its
// original units intact. Returns ErrDimensionMismatch when the dimensions
// differ.
func Min(a, b Quantity) (Quantity, error) {
	less, err := scaledLess(a, b)
	if err != nil {
		return Quantity{}, err
	}
	if less {
		return a, nil
	}
	return b, nil
}

// Max is the counterpart of Min, returning the larger original operand.
func Max(a, b Quantity) (Quantity, error) {
	less, err := scaledLess(b, a)
	if err != nil {
		return Quantity{}, err
	}
	if less {
		return a, nil
	}
	return b, nil
}

// scaledLess compares two quantities through their scale factors to a common
// reference, without materializing a converted Quantity.
func scaledLess(a, b Quantity) (bool, error) {
	if a.unit.Equal(b.unit) {
		return a.val.Less(b.val), nil
	}
	if !a.unit.dims.Equal(b.unit.dims) {
		return false, ErrDimensionMismatch
	}
	va := a.val.Mul(scaleFactor(a.unit))
	vb := b.val.Mul(scaleFactor(b.unit))
	return va.Less(vb), nil
}
