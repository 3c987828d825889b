package catalog

import (
	"errors"
	"sort"

	"github.com/mesh-intelligence/yardstick/pkg/units"
)

// Registry errors.
var (
	ErrDuplicateTag     = errors.New("tag is already registered")
	ErrDuplicateName    = errors.New("name is already registered")
	ErrUnknownDimension = errors.New("dimension is not registered")
	ErrUnknownName      = errors.New("name is not registered")
)

// Registry holds the primitive dimensions and units of one unit system,
// plus a name table resolving symbols (including prefixed forms like "km")
// to Units values. It is not safe for concurrent mutation; populate it fully
// before sharing.
type Registry struct {
	dims  map[string]units.Dimensions
	prims map[string]*units.Primitive
	names map[string]units.Units
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		dims:  make(map[string]units.Dimensions),
		prims: make(map[string]*units.Primitive),
		names: make(map[string]units.Units),
	}
}

// DefineDimension registers a primitive dimension tag and returns its
// single-factor Dimensions value.
// Returns ErrDuplicateTag if the tag is taken.
func (r *Registry) DefineDimension(tag string) (units.Dimensions, error) {
	if _, ok := r.dims[tag]; ok {
		return units.Dimensions{}, ErrDuplicateTag
	}
	d, err := units.BaseDimension(tag)
	if err != nil {
		return units.Dimensions{}, err
	}
	r.dims[tag] = d
	return d, nil
}

// Dimension returns the registered Dimensions value for a tag.
func (r *Registry) Dimension(tag string) (units.Dimensions, bool) {
	d, ok := r.dims[tag]
	return d, ok
}

// DefineBase registers a primitive unit and resolves its unprefixed symbol
// in the name table. tens is the decimal-prefix exponent of the unit's
// reference form (3 for the gram, whose reference is the kilogram); factor
// relates the unprefixed unit to the reference magnitude of dims.
// Returns ErrDuplicateTag if the tag is taken and the units package's
// validation errors for malformed descriptors.
func (r *Registry) DefineBase(tag string, tens int, dims units.Dimensions, factor units.Scalar) (*units.Primitive, error) {
	if _, ok := r.prims[tag]; ok {
		return nil, ErrDuplicateTag
	}
	p, err := units.NewPrimitive(tag, tens, dims, factor)
	if err != nil {
		return nil, err
	}
	if _, ok := r.names[tag]; ok {
		return nil, ErrDuplicateName
	}
	r.prims[tag] = p
	r.names[tag] = p.AtTens(0)
	return p, nil
}

// DefineAlias resolves an additional name to an arbitrary Units value.
// Returns ErrDuplicateName if the name is taken.
func (r *Registry) DefineAlias(name string, u units.Units) error {
	if name == "" {
		return units.ErrInvalidTag
	}
	if _, ok := r.names[name]; ok {
		return ErrDuplicateName
	}
	r.names[name] = u
	return nil
}

// prefixes lists the standard decimal prefixes registered by DefinePrefixed.
var prefixes = []struct {
	sym string
	exp int
}{
	{"Q", 30}, {"R", 27}, {"Y", 24}, {"Z", 21}, {"E", 18}, {"P", 15},
	{"T", 12}, {"G", 9}, {"M", 6}, {"k", 3}, {"h", 2}, {"da", 1},
	{"d", -1}, {"c", -2}, {"m", -3}, {"µ", -6}, {"u", -6}, {"n", -9},
	{"p", -12}, {"f", -15}, {"a", -18}, {"z", -21}, {"y", -24},
	{"r", -27}, {"q", -30},
}

// DefinePrefixed registers every standard decimal-prefixed symbol of a
// primitive ("km", "cm", ... for "m"). The ASCII "u" doubles for "µ".
// Symbols that collide with existing names are skipped; the prefixed unit is
// still reachable through Primitive.AtTens.
func (r *Registry) DefinePrefixed(p *units.Primitive) {
	for _, pf := range prefixes {
		name := pf.sym + p.Tag()
		if _, ok := r.names[name]; ok {
			continue
		}
		r.names[name] = p.AtTens(pf.exp)
	}
}

// Lookup resolves a unit symbol to its Units value.
func (r *Registry) Lookup(name string) (units.Units, bool) {
	u, ok := r.names[name]
	return u, ok
}

// Names returns every resolvable symbol in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.names))
	for name := range r.names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
