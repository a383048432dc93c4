// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Atom, Bond, Molecule types, the Hybridization and BondOrder enums,
// sentinel errors and the New constructor.
//
// Concurrency:
//   - A Molecule has no internal locking. One call chain (ring finder,
//     partitioner, classifier, kekulization) owns it at a time; callers
//     serialize access to the same instance.

package molecule

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for molecule operations.
var (
	// ErrNilMolecule indicates a nil *Molecule was passed to an algorithm.
	ErrNilMolecule = errors.New("molecule: molecule is nil")

	// ErrAtomNotFound indicates an operation referenced a non-existent atom index.
	ErrAtomNotFound = errors.New("molecule: atom not found")

	// ErrBondNotFound indicates an operation referenced a non-existent bond index.
	ErrBondNotFound = errors.New("molecule: bond not found")

	// ErrLoopNotAllowed indicates a bond from an atom to itself.
	ErrLoopNotAllowed = errors.New("molecule: self-bond not allowed")

	// ErrDuplicateBond indicates a second bond between the same pair of atoms.
	ErrDuplicateBond = errors.New("molecule: duplicate bond")

	// ErrDanglingBond indicates a bond whose endpoints do not resolve to atoms
	// of the molecule. It is reported as invalid input, never as a negative result.
	ErrDanglingBond = errors.New("molecule: bond has unresolved endpoints")

	// ErrEmptySymbol indicates an atom without an element symbol.
	ErrEmptySymbol = errors.New("molecule: empty element symbol")
)

// Hybridization is the orbital hybridization assigned by an upstream atom-typing step.
type Hybridization int

const (
	HybridUnset Hybridization = iota
	HybridS
	HybridSP1
	HybridSP2
	HybridSP3
	HybridSP3D1
	HybridSP3D2
	HybridSP3D3
	HybridSP3D4
	HybridSP3D5
)

var hybridNames = [...]string{"unset", "s", "sp1", "sp2", "sp3", "sp3d1", "sp3d2", "sp3d3", "sp3d4", "sp3d5"}

// String returns the lower-case name ("sp2", "sp3d1", ...).
func (h Hybridization) String() string {
	if h < 0 || int(h) >= len(hybridNames) {
		return fmt.Sprintf("Hybridization(%d)", int(h))
	}

	return hybridNames[h]
}

// ParseHybridization maps a name produced by String back to its value.
// The empty string maps to HybridUnset.
func ParseHybridization(s string) (Hybridization, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return HybridUnset, nil
	}
	for i, name := range hybridNames {
		if name == s {
			return Hybridization(i), nil
		}
	}

	return HybridUnset, fmt.Errorf("molecule: unknown hybridization %q", s)
}

// BondOrder is the multiplicity of a bond.
//
// OrderAromatic is the delocalized 1.5 "partial" order written by readers that
// keep aromatic rings unassigned; it is not one of the integer orders.
type BondOrder int

const (
	OrderUnset BondOrder = iota
	OrderSingle
	OrderDouble
	OrderTriple
	OrderQuadruple
	OrderAromatic
)

var orderNames = [...]string{"unset", "single", "double", "triple", "quadruple", "aromatic"}

// String returns the lower-case name of the order.
func (o BondOrder) String() string {
	if o < 0 || int(o) >= len(orderNames) {
		return fmt.Sprintf("BondOrder(%d)", int(o))
	}

	return orderNames[o]
}

// Value returns the numeric multiplicity: 1, 2, 3, 4, 1.5 for aromatic and 0 for unset.
func (o BondOrder) Value() float64 {
	switch o {
	case OrderSingle:
		return 1
	case OrderDouble:
		return 2
	case OrderTriple:
		return 3
	case OrderQuadruple:
		return 4
	case OrderAromatic:
		return 1.5
	default:
		return 0
	}
}

// ParseBondOrder accepts the names produced by String plus the numeric
// shorthands "1", "2", "3", "4" and "1.5".
func ParseBondOrder(s string) (BondOrder, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "unset":
		return OrderUnset, nil
	case "1":
		return OrderSingle, nil
	case "2":
		return OrderDouble, nil
	case "3":
		return OrderTriple, nil
	case "4":
		return OrderQuadruple, nil
	case "1.5", "ar":
		return OrderAromatic, nil
	}
	for i, name := range orderNames {
		if name == s {
			return BondOrder(i), nil
		}
	}

	return OrderUnset, fmt.Errorf("molecule: unknown bond order %q", s)
}

// Atom is a node of the molecular graph.
//
// Index is the position of the atom in its Molecule and is its identity:
// atoms are never copied by the algorithms, only read and flagged.
type Atom struct {
	Index         int
	Symbol        string
	AtomicNumber  int
	Hybridization Hybridization

	// ImplicitHydrogens is the number of hydrogens not stored as atoms.
	ImplicitHydrogens int
	FormalCharge      int
	// LonePairs is the lone-pair count assigned by atom typing.
	LonePairs int

	InRing   bool
	Aromatic bool
}

// IsCarbon reports whether the atom is a carbon.
func (a *Atom) IsCarbon() bool {
	return a.AtomicNumber == 6 || (a.AtomicNumber == 0 && a.Symbol == "C")
}

// Bond is an edge of the molecular graph between atom indices Begin and End.
type Bond struct {
	Index int
	Begin int
	End   int
	Order BondOrder

	InRing   bool
	Aromatic bool
}

// Other returns the endpoint of b opposite to atom, or -1 if atom is not an endpoint.
func (b *Bond) Other(atom int) int {
	switch atom {
	case b.Begin:
		return b.End
	case b.End:
		return b.Begin
	default:
		return -1
	}
}

// Contains reports whether atom is one of the endpoints of b.
func (b *Bond) Contains(atom int) bool {
	return b.Begin == atom || b.End == atom
}

// AtomOption configures an atom created by AddAtom.
type AtomOption func(*Atom)

// WithHybridization sets the atom hybridization.
func WithHybridization(h Hybridization) AtomOption {
	return func(a *Atom) { a.Hybridization = h }
}

// WithHydrogens sets the implicit hydrogen count.
func WithHydrogens(n int) AtomOption {
	return func(a *Atom) { a.ImplicitHydrogens = n }
}

// WithCharge sets the formal charge.
func WithCharge(q int) AtomOption {
	return func(a *Atom) { a.FormalCharge = q }
}

// WithLonePairs sets the lone-pair count.
func WithLonePairs(n int) AtomOption {
	return func(a *Atom) { a.LonePairs = n }
}

// WithAtomAromatic sets the aromatic flag of the atom.
func WithAtomAromatic() AtomOption {
	return func(a *Atom) { a.Aromatic = true }
}

// BondOption configures a bond created by AddBond.
type BondOption func(*Bond)

// WithBondAromatic sets the aromatic flag of the bond.
func WithBondAromatic() BondOption {
	return func(b *Bond) { b.Aromatic = true }
}

// Graph is the read view consumed by the ring finder, the partitioner and
// the classifiers. *Molecule and *Subgraph implement it.
type Graph interface {
	// AtomIndices returns the atom indices of the view in ascending order.
	AtomIndices() []int
	// BondIndices returns the bond indices of the view in ascending order.
	BondIndices() []int
	// Atom returns the atom with index i, or nil.
	Atom(i int) *Atom
	// Bond returns the bond with index i, or nil.
	Bond(i int) *Bond
	// ConnectedBonds returns the indices of the bonds of the view incident to
	// atom, in ascending order.
	ConnectedBonds(atom int) []int
}

// Molecule is a mutable set of atoms and bonds with adjacency queries.
//
// It is owned by the caller; algorithms borrow it for one call and write back
// only bond orders and the InRing/Aromatic flags.
type Molecule struct {
	Name string

	atoms []*Atom
	bonds []*Bond

	// adjacency[atom] = incident bond indices, ascending.
	adjacency [][]int
}

// New creates an empty Molecule.
func New(name string) *Molecule {
	return &Molecule{Name: name}
}
