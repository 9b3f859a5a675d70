// Package schema defines the closed set of label schemas: named
// configurations of how many input and output fields a unit carries.
package schema

import (
	"errors"
	"fmt"
)

// ErrUnknown is returned by For when the schema name is not one of the
// supported variants.
var ErrUnknown = errors.New("unknown schema")

// Names lists the supported schema names, in canonical order.
var Names = []string{"base", "pos", "morph", "both", "full", "dist", "comp"}

// Schema is an immutable description of a unit layout. UnitLength and
// OutputLength are table-driven constants per name; the label position
// is always derived from them, never stored.
type Schema struct {
	Name string

	// UnitLength is the total number of fields in a unit.
	UnitLength int

	// OutputLength is the number of trailing output fields.
	OutputLength int

	// Feature flags. They compose hierarchically: Full implies Both;
	// Both, Full, Dist and Comp imply Morph; Morph implies POS.
	POS   bool
	Morph bool
	Both  bool
	Full  bool
	Dist  bool
	Comp  bool

	// UseGold selects the reference gloss as the main output label for
	// never-aligned morphemes in the training dictionary.
	UseGold bool
}

// LabelPosition is the index of the first output field.
func (s Schema) LabelPosition() int {
	return s.UnitLength - s.OutputLength
}

// InputLength is the number of leading input fields.
func (s Schema) InputLength() int {
	return s.UnitLength - s.OutputLength
}

var table = map[string]Schema{
	"base":  {Name: "base", UnitLength: 4, OutputLength: 1},
	"pos":   {Name: "pos", UnitLength: 6, OutputLength: 3, POS: true},
	"morph": {Name: "morph", UnitLength: 8, OutputLength: 3, Morph: true},
	"both":  {Name: "both", UnitLength: 10, OutputLength: 5, Both: true},
	"full":  {Name: "full", UnitLength: 12, OutputLength: 7, Full: true},
	"dist":  {Name: "dist", UnitLength: 12, OutputLength: 5, Dist: true},
	"comp":  {Name: "comp", UnitLength: 12, OutputLength: 5, Comp: true},
}

// For returns the schema for the given name. It is total over the names
// in Names and fails with ErrUnknown otherwise.
func For(name string) (Schema, error) {
	s, ok := table[name]
	if !ok {
		return Schema{}, fmt.Errorf("%w: %q", ErrUnknown, name)
	}

	// Expand the flag hierarchy.
	if s.Full {
		s.Both = true
	}
	if s.Full || s.Both || s.Dist || s.Comp {
		s.Morph = true
	}
	if s.Morph {
		s.POS = true
	}

	return s, nil
}

// MustFor is For for known-constant names; it panics on unknown names.
// Intended for tests and internal tables.
func MustFor(name string) Schema {
	s, err := For(name)
	if err != nil {
		panic(err)
	}
	return s
}
