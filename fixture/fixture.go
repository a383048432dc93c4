// SPDX-License-Identifier: MIT
//
// File: fixture.go
// Role: YAML schema and its mapping to molecule.Molecule.

package fixture

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlchem/molecule"
)

// ErrSchema indicates a document that parses as YAML but does not describe
// a valid molecule.
var ErrSchema = errors.New("fixture: invalid molecule document")

// Document is the YAML form of a molecule.
type Document struct {
	Name  string `yaml:"name,omitempty"`
	Atoms []Atom `yaml:"atoms"`
	Bonds []Bond `yaml:"bonds"`
}

// Atom is the YAML form of molecule.Atom.
type Atom struct {
	Symbol        string `yaml:"symbol"`
	Hybridization string `yaml:"hybridization,omitempty"`
	Hydrogens     int    `yaml:"hydrogens,omitempty"`
	Charge        int    `yaml:"charge,omitempty"`
	LonePairs     int    `yaml:"lone_pairs,omitempty"`
	Aromatic      bool   `yaml:"aromatic,omitempty"`
	InRing        bool   `yaml:"in_ring,omitempty"`
}

// Bond is the YAML form of molecule.Bond. Order accepts the names of
// molecule.ParseBondOrder, numeric shorthands included.
type Bond struct {
	Begin    int    `yaml:"begin"`
	End      int    `yaml:"end"`
	Order    string `yaml:"order"`
	Aromatic bool   `yaml:"aromatic,omitempty"`
	InRing   bool   `yaml:"in_ring,omitempty"`
}

// Molecule builds the molecule described by d.
func (d *Document) Molecule() (*molecule.Molecule, error) {
	m := molecule.New(d.Name)
	for i, a := range d.Atoms {
		hyb, err := molecule.ParseHybridization(a.Hybridization)
		if err != nil {
			return nil, fmt.Errorf("atom %d: %v: %w", i, err, ErrSchema)
		}
		if a.Hydrogens < 0 || a.LonePairs < 0 {
			return nil, fmt.Errorf("atom %d: negative count: %w", i, ErrSchema)
		}
		opts := []molecule.AtomOption{
			molecule.WithHybridization(hyb),
			molecule.WithHydrogens(a.Hydrogens),
			molecule.WithCharge(a.Charge),
			molecule.WithLonePairs(a.LonePairs),
		}
		if a.Aromatic {
			opts = append(opts, molecule.WithAtomAromatic())
		}
		idx, err := m.AddAtom(a.Symbol, opts...)
		if err != nil {
			return nil, fmt.Errorf("atom %d: %v: %w", i, err, ErrSchema)
		}
		m.Atom(idx).InRing = a.InRing
	}

	for i, b := range d.Bonds {
		order, err := molecule.ParseBondOrder(b.Order)
		if err != nil {
			return nil, fmt.Errorf("bond %d: %v: %w", i, err, ErrSchema)
		}
		var opts []molecule.BondOption
		if b.Aromatic {
			opts = append(opts, molecule.WithBondAromatic())
		}
		idx, err := m.AddBond(b.Begin, b.End, order, opts...)
		if err != nil {
			return nil, fmt.Errorf("bond %d: %v: %w", i, err, ErrSchema)
		}
		m.Bond(idx).InRing = b.InRing
	}

	return m, nil
}

// FromMolecule returns the document form of m.
func FromMolecule(m *molecule.Molecule) *Document {
	d := &Document{
		Name:  m.Name,
		Atoms: make([]Atom, 0, m.AtomCount()),
		Bonds: make([]Bond, 0, m.BondCount()),
	}
	for _, a := range m.Atoms() {
		doc := Atom{
			Symbol:    a.Symbol,
			Hydrogens: a.ImplicitHydrogens,
			Charge:    a.FormalCharge,
			LonePairs: a.LonePairs,
			Aromatic:  a.Aromatic,
			InRing:    a.InRing,
		}
		if a.Hybridization != molecule.HybridUnset {
			doc.Hybridization = a.Hybridization.String()
		}
		d.Atoms = append(d.Atoms, doc)
	}
	for _, b := range m.Bonds() {
		d.Bonds = append(d.Bonds, Bond{
			Begin:    b.Begin,
			End:      b.End,
			Order:    b.Order.String(),
			Aromatic: b.Aromatic,
			InRing:   b.InRing,
		})
	}

	return d
}

// Decode reads every document of r. Unknown fields are rejected.
func Decode(r io.Reader) ([]*molecule.Molecule, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var out []*molecule.Molecule
	for n := 0; ; n++ {
		var d Document
		err := dec.Decode(&d)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("fixture: Decode document %d: %w", n, err)
		}
		m, err := d.Molecule()
		if err != nil {
			return nil, fmt.Errorf("fixture: Decode document %d: %w", n, err)
		}
		out = append(out, m)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("fixture: Decode: empty stream: %w", ErrSchema)
	}

	return out, nil
}

// Load decodes the file at path.
func Load(path string) ([]*molecule.Molecule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: Load: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Encode writes one document per molecule.
func Encode(w io.Writer, ms ...*molecule.Molecule) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, m := range ms {
		if m == nil {
			return molecule.ErrNilMolecule
		}
		if err := enc.Encode(FromMolecule(m)); err != nil {
			return fmt.Errorf("fixture: Encode %q: %w", m.Name, err)
		}
	}

	return enc.Close()
}
