package catalog

import (
	"sync"

	"github.com/mesh-intelligence/yardstick/pkg/units"
)

// SI dimension tags.
const (
	DimLength      = "length"
	DimMass        = "mass"
	DimTime        = "time"
	DimCurrent     = "current"
	DimTemperature = "temperature"
	DimAmount      = "amount"
	DimLuminosity  = "luminosity"
)

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the shared SI registry, built once. Treat it as read-only;
// callers that want to add their own units should build a fresh registry
// with SI and mutate that.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = SI()
	})
	return defaultReg
}

// SI builds a fresh registry holding the seven SI base dimensions and units
// (mass referenced at the kilogram), the common coherent derived units, and a
// handful of accepted non-coherent units. Conversion factors are exact
// rationals wherever the definition is exact; the electronvolt carries a
// floating factor because its exact decimal form does not fit the rational
// range.
func SI() *Registry {
	r := New()

	length := mustDim(r, DimLength)
	mass := mustDim(r, DimMass)
	time := mustDim(r, DimTime)
	current := mustDim(r, DimCurrent)
	temperature := mustDim(r, DimTemperature)
	amount := mustDim(r, DimAmount)
	luminosity := mustDim(r, DimLuminosity)

	one := units.Int(1)

	meter := mustBase(r, "m", 0, length, one)
	gram := mustBase(r, "g", 3, mass, units.MustExact(1, 1000))
	second := mustBase(r, "s", 0, time, one)
	ampere := mustBase(r, "A", 0, current, one)
	mustBase(r, "K", 0, temperature, one)
	mustBase(r, "mol", 0, amount, one)
	mustBase(r, "cd", 0, luminosity, one)

	// Coherent derived units.
	frequency := time.Inv()
	force := mass.Mul(length).Div(time.Pow(units.Whole(2)))
	pressure := force.Div(length.Pow(units.Whole(2)))
	energy := force.Mul(length)
	power := energy.Div(time)
	charge := current.Mul(time)
	voltage := power.Div(current)
	resistance := voltage.Div(current)

	hertz := mustBase(r, "Hz", 0, frequency, one)
	newton := mustBase(r, "N", 0, force, one)
	pascal := mustBase(r, "Pa", 0, pressure, one)
	joule := mustBase(r, "J", 0, energy, one)
	watt := mustBase(r, "W", 0, power, one)
	coulomb := mustBase(r, "C", 0, charge, one)
	volt := mustBase(r, "V", 0, voltage, one)
	ohm := mustBase(r, "Ω", 0, resistance, one)
	mustAlias(r, "ohm", ohm.Unit())

	// Accepted non-coherent units.
	liter := mustBase(r, "L", 0, length.Pow(units.Whole(3)), units.MustExact(1, 1000))
	mustBase(r, "min", 0, time, units.Int(60))
	mustBase(r, "h", 0, time, units.Int(3600))
	mustBase(r, "d", 0, time, units.Int(86400))
	bar := mustBase(r, "bar", 0, pressure, units.Int(100_000))
	mustBase(r, "t", 0, mass, units.Int(1000))
	ev := mustBase(r, "eV", 0, energy, units.Float(1.602176634e-19))

	for _, p := range []*units.Primitive{
		meter, gram, second, ampere, hertz, newton, pascal, joule,
		watt, coulomb, volt, liter, bar, ev,
	} {
		r.DefinePrefixed(p)
	}

	return r
}

func mustDim(r *Registry, tag string) units.Dimensions {
	d, err := r.DefineDimension(tag)
	if err != nil {
		panic("catalog: define dimension " + tag + ": " + err.Error())
	}
	return d
}

func mustBase(r *Registry, tag string, tens int, dims units.Dimensions, factor units.Scalar) *units.Primitive {
	p, err := r.DefineBase(tag, tens, dims, factor)
	if err != nil {
		panic("catalog: define unit " + tag + ": " + err.Error())
	}
	return p
}

func mustAlias(r *Registry, name string, u units.Units) {
	if err := r.DefineAlias(name, u); err != nil {
		panic("catalog: define alias " + name + ": " + err.Error())
	}
}

// Common SI units, resolved against the shared registry.
var (
	Meter      = mustLookup("m")
	Kilometer  = mustLookup("km")
	Centimeter = mustLookup("cm")
	Millimeter = mustLookup("mm")
	Micrometer = mustLookup("µm")

	Gram      = mustLookup("g")
	Kilogram  = mustLookup("kg")
	Milligram = mustLookup("mg")
	Tonne     = mustLookup("t")

	Second      = mustLookup("s")
	Millisecond = mustLookup("ms")
	Microsecond = mustLookup("µs")
	Nanosecond  = mustLookup("ns")
	Minute      = mustLookup("min")
	Hour        = mustLookup("h")
	Day         = mustLookup("d")

	Ampere  = mustLookup("A")
	Kelvin  = mustLookup("K")
	Mole    = mustLookup("mol")
	Candela = mustLookup("cd")

	Hertz   = mustLookup("Hz")
	Newton  = mustLookup("N")
	Pascal  = mustLookup("Pa")
	Joule   = mustLookup("J")
	Watt    = mustLookup("W")
	Coulomb = mustLookup("C")
	Volt    = mustLookup("V")
	Ohm     = mustLookup("Ω")

	Liter        = mustLookup("L")
	Milliliter   = mustLookup("mL")
	Bar          = mustLookup("bar")
	ElectronVolt = mustLookup("eV")
)

func mustLookup(name string) units.Units {
	u, ok := Default().Lookup(name)
	if !ok {
		panic("catalog: unknown unit " + name)
	}
	return u
}
