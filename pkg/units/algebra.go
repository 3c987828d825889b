package units

import "sort"

// Compose returns the canonical product of any number of Units operands.
// The result is independent of operand order: factors are merged by
// (tag, prefix exponent) with powers summed, zero powers dropped, and the
// survivors sorted by (power, prefix exponent, tag). Composing zero operands,
// or operands that cancel completely, yields Unitless.
func Compose(operands ...Units) Units {
	var fs []Unit
	for _, op := range operands {
		fs = append(fs, op.factors...)
	}
	return canonicalUnits(fs)
}

// ComposeDims returns the canonical product of any number of Dimensions
// operands, merging factors by tag and sorting survivors by (power, tag).
// Composing zero operands, or operands that cancel completely, yields NoDims.
func ComposeDims(operands ...Dimensions) Dimensions {
	var fs []Dimension
	for _, op := range operands {
		fs = append(fs, op.factors...)
	}
	return canonicalDims(fs)
}

// canonicalUnits merges, prunes, and orders a factor list, then derives the
// composite dimensions. The input slice is consumed.
func canonicalUnits(fs []Unit) Units {
	// Merge duplicates first: records sharing (tag, tens) sum their powers
	// no matter how far apart the inputs placed them.
	sort.SliceStable(fs, func(i, j int) bool {
		if fs[i].prim.tag != fs[j].prim.tag {
			return fs[i].prim.tag < fs[j].prim.tag
		}
		return fs[i].tens < fs[j].tens
	})
	merged := fs[:0]
	for _, f := range fs {
		if n := len(merged); n > 0 && merged[n-1].prim.tag == f.prim.tag && merged[n-1].tens == f.tens {
			merged[n-1].power = addPower(merged[n-1].power, f.power)
			continue
		}
		merged = append(merged, f)
	}
	out := merged[:0]
	for _, f := range merged {
		if !f.power.IsZero() {
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return Units{}
	}
	// Canonical order: higher powers first, then higher prefixes, then tag.
	sort.SliceStable(out, func(i, j int) bool {
		if c := out[i].power.Cmp(out[j].power); c != 0 {
			return c > 0
		}
		if out[i].tens != out[j].tens {
			return out[i].tens > out[j].tens
		}
		return out[i].prim.tag < out[j].prim.tag
	})
	dims := make([]Dimensions, 0, len(out))
	for _, f := range out {
		dims = append(dims, f.prim.dims.Pow(f.power))
	}
	return Units{factors: out, dims: ComposeDims(dims...)}
}

// canonicalDims merges, prunes, and orders a dimension factor list.
// The input slice is consumed.
func canonicalDims(fs []Dimension) Dimensions {
	sort.SliceStable(fs, func(i, j int) bool {
		return fs[i].name < fs[j].name
	})
	merged := fs[:0]
	for _, f := range fs {
		if n := len(merged); n > 0 && merged[n-1].name == f.name {
			merged[n-1].power = addPower(merged[n-1].power, f.power)
			continue
		}
		merged = append(merged, f)
	}
	out := merged[:0]
	for _, f := range merged {
		if !f.power.IsZero() {
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return Dimensions{}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if c := out[i].power.Cmp(out[j].power); c != 0 {
			return c > 0
		}
		return out[i].name < out[j].name
	})
	return Dimensions{factors: out}
}

// addPower and mulPower do exponent arithmetic for canonicalization. Unit
// exponents are tiny in practice; exhausting int64 here is an invariant
// violation, not a recoverable condition.
func addPower(a, b Rational) Rational {
	r, ok := addRat(a, b)
	if !ok {
		panic("units: exponent overflow while merging factors")
	}
	return r
}

func mulPower(a, b Rational) Rational {
	r, ok := mulRat(a, b)
	if !ok {
		panic("units: exponent overflow while raising to a power")
	}
	return r
}
