package units

// Range is an arithmetic sequence of quantities sharing one Units value,
// built from start, step, and stop quantities of identical dimensions.
type Range struct {
	start Scalar
	step  Scalar
	unit  Units
	n     int
}

// NewRange promotes start, step, and stop to start's units and returns the
// sequence start, start+step, ... whose last element does not overshoot
// stop. Returns ErrDimensionMismatch when the three dimensions are not
// identical and ErrZeroStep for a zero step.
func NewRange(start, step, stop Quantity) (Range, error) {
	stepv, err := Strip(start.unit, step)
	if err != nil {
		return Range{}, err
	}
	stopv, err := Strip(start.unit, stop)
	if err != nil {
		return Range{}, err
	}
	if stepv.IsZero() {
		return Range{}, ErrZeroStep
	}
	// floor((stop-start)/step) is the index of the last in-range element;
	// a negative ratio means the sequence is empty.
	ratio := stopv.Sub(start.val).Div(stepv)
	n := 0
	if ratio.Sign() >= 0 {
		n = int(ratio.Floor().Float()) + 1
	}
	return Range{start: start.val, step: stepv, unit: start.unit, n: n}, nil
}

// Len returns the number of elements in the range.
func (r Range) Len() int { return r.n }

// Unit returns the common units of the range's elements.
func (r Range) Unit() Units { return r.unit }

// At returns the i-th element, start + i*step. It panics when i is out of
// range, like slice indexing.
func (r Range) At(i int) Quantity {
	if i < 0 || i >= r.n {
		panic("units: range index out of bounds")
	}
	v := r.start.Add(r.step.Mul(Int(int64(i))))
	return Quantity{val: v, unit: r.unit}
}

// Values materializes the whole sequence.
func (r Range) Values() []Quantity {
	out := make([]Quantity, r.n)
	for i := range out {
		out[i] = r.At(i)
	}
	return out
}
