package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/yardstick/pkg/units"
)

// fileDoc is the YAML shape of a unit-definition file. Definitions are
// structural: dimensions are referenced by tag with explicit exponents and
// factors are given as num/den rationals or floating values. There is no
// unit-expression syntax to parse.
//
//	dimensions:
//	  - tag: information
//	units:
//	  - tag: ft
//	    dimensions: [{dimension: length, power: 1}]
//	    factor: {num: 3048, den: 10000}
//	    aliases: [foot]
//	    prefixes: false
type fileDoc struct {
	Dimensions []fileDimension `yaml:"dimensions"`
	Units      []fileUnit      `yaml:"units"`
}

type fileDimension struct {
	Tag string `yaml:"tag"`
}

type fileUnit struct {
	Tag        string      `yaml:"tag"`
	Tens       int         `yaml:"tens"`
	Dimensions []filePower `yaml:"dimensions"`
	Factor     fileFactor  `yaml:"factor"`
	Aliases    []string    `yaml:"aliases"`
	Prefixes   bool        `yaml:"prefixes"`
}

type filePower struct {
	Dimension string `yaml:"dimension"`
	Power     int64  `yaml:"power"`
	PowerDen  int64  `yaml:"power_den"`
}

type fileFactor struct {
	Num   int64   `yaml:"num"`
	Den   int64   `yaml:"den"`
	Value float64 `yaml:"value"`
}

// LoadFile reads a YAML unit-definition file and registers its dimensions
// and units into r. Referenced dimensions must already exist in r or be
// declared in the same file.
func LoadFile(r *Registry, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read catalog file: %w", err)
	}
	var doc fileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse catalog file %s: %w", path, err)
	}

	for _, d := range doc.Dimensions {
		if _, err := r.DefineDimension(d.Tag); err != nil {
			return fmt.Errorf("catalog file %s: dimension %q: %w", path, d.Tag, err)
		}
	}

	for _, u := range doc.Units {
		dims, err := resolveDims(r, u.Dimensions)
		if err != nil {
			return fmt.Errorf("catalog file %s: unit %q: %w", path, u.Tag, err)
		}
		factor, err := resolveFactor(u.Factor)
		if err != nil {
			return fmt.Errorf("catalog file %s: unit %q: %w", path, u.Tag, err)
		}
		p, err := r.DefineBase(u.Tag, u.Tens, dims, factor)
		if err != nil {
			return fmt.Errorf("catalog file %s: unit %q: %w", path, u.Tag, err)
		}
		if u.Prefixes {
			r.DefinePrefixed(p)
		}
		for _, alias := range u.Aliases {
			if err := r.DefineAlias(alias, p.Unit()); err != nil {
				return fmt.Errorf("catalog file %s: alias %q: %w", path, alias, err)
			}
		}
	}
	return nil
}

// resolveDims builds the composite Dimensions of a definition's
// dimension-exponent pairs.
func resolveDims(r *Registry, ps []filePower) (units.Dimensions, error) {
	acc := units.NoDims
	for _, fp := range ps {
		base, ok := r.Dimension(fp.Dimension)
		if !ok {
			return units.Dimensions{}, fmt.Errorf("%w: %q", ErrUnknownDimension, fp.Dimension)
		}
		den := fp.PowerDen
		if den == 0 {
			den = 1
		}
		pow, err := units.NewRational(fp.Power, den)
		if err != nil {
			return units.Dimensions{}, err
		}
		acc = acc.Mul(base.Pow(pow))
	}
	return acc, nil
}

// resolveFactor prefers the exact num/den form; a definition with only a
// floating value stays on the float path.
func resolveFactor(f fileFactor) (units.Scalar, error) {
	if f.Num != 0 {
		den := f.Den
		if den == 0 {
			den = 1
		}
		return units.Exact(f.Num, den)
	}
	if f.Value != 0 {
		return units.Float(f.Value), nil
	}
	return units.Scalar{}, units.ErrInvalidFactor
}
