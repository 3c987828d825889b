package units

// Shared primitives for the package tests. The registration layer proper
// lives in pkg/catalog; tests here build their own small system so the
// package stays free of import cycles.

func mustBaseDim(tag string) Dimensions {
	d, err := BaseDimension(tag)
	if err != nil {
		panic(err)
	}
	return d
}

func mustPrim(tag string, tens int, dims Dimensions, factor Scalar) *Primitive {
	p, err := NewPrimitive(tag, tens, dims, factor)
	if err != nil {
		panic(err)
	}
	return p
}

var (
	dimLength = mustBaseDim("length")
	dimMass   = mustBaseDim("mass")
	dimTime   = mustBaseDim("time")

	primMeter  = mustPrim("m", 0, dimLength, Int(1))
	primGram   = mustPrim("g", 3, dimMass, MustExact(1, 1000))
	primSecond = mustPrim("s", 0, dimTime, Int(1))
	primMinute = mustPrim("min", 0, dimTime, Int(60))
	primFoot   = mustPrim("ft", 0, dimLength, Float(0.3048))

	meter      = primMeter.Unit()
	kilometer  = primMeter.AtTens(3)
	centimeter = primMeter.AtTens(-2)
	micrometer = primMeter.AtTens(-6)
	kilogram   = primGram.Unit()
	gram       = primGram.AtTens(0)
	second     = primSecond.Unit()
	minute     = primMinute.Unit()
	foot       = primFoot.Unit()
)

// q builds an exact integer quantity for test tables.
func q(n int64, u Units) Quantity { return New(Int(n), u) }

// qf builds a float quantity for test tables.
func qf(f float64, u Units) Quantity { return New(Float(f), u) }
