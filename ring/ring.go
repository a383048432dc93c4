// Package ring defines Ring, an ordered cycle of atoms and the bonds joining
// them, and Set, a collection of rings with identity by atom set.
package ring

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlchem/molecule"
)

// Sentinel errors for ring construction.
var (
	// ErrTooSmall indicates fewer than three atoms.
	ErrTooSmall = errors.New("ring: fewer than 3 atoms")

	// ErrNotBonded indicates two cyclically consecutive atoms share no bond.
	ErrNotBonded = errors.New("ring: consecutive atoms are not bonded")

	// ErrRepeatedAtom indicates the same atom appears twice in the cycle.
	ErrRepeatedAtom = errors.New("ring: repeated atom")
)

// Ring is a simple cycle. Bonds[i] joins Atoms[i] and Atoms[(i+1)%n], so
// len(Atoms) == len(Bonds) >= 3 always holds.
type Ring struct {
	Atoms []int
	Bonds []int
}

// New builds the ring through atoms in the given cyclic order, resolving the
// bond between every consecutive pair in g.
func New(g molecule.Graph, atoms []int) (*Ring, error) {
	n := len(atoms)
	if n < 3 {
		return nil, fmt.Errorf("New(%v): %w", atoms, ErrTooSmall)
	}
	seen := make(map[int]bool, n)
	r := &Ring{Atoms: append([]int(nil), atoms...), Bonds: make([]int, n)}
	for i, a := range atoms {
		if seen[a] {
			return nil, fmt.Errorf("New(%v): atom %d: %w", atoms, a, ErrRepeatedAtom)
		}
		seen[a] = true
		next := atoms[(i+1)%n]
		bi := BondBetween(g, a, next)
		if bi < 0 {
			return nil, fmt.Errorf("New(%v): %d-%d: %w", atoms, a, next, ErrNotBonded)
		}
		r.Bonds[i] = bi
	}

	return r, nil
}

// BondBetween returns the bond of g joining a and b, or -1.
func BondBetween(g molecule.Graph, a, b int) int {
	for _, bi := range g.ConnectedBonds(a) {
		if bond := g.Bond(bi); bond != nil && bond.Other(a) == b {
			return bi
		}
	}

	return -1
}

// Size returns the number of atoms (equal to the number of bonds).
func (r *Ring) Size() int { return len(r.Atoms) }

// HasAtom reports whether atom lies on the ring.
func (r *Ring) HasAtom(atom int) bool { return r.atomPos(atom) >= 0 }

// HasBond reports whether bond lies on the ring.
func (r *Ring) HasBond(bond int) bool {
	for _, b := range r.Bonds {
		if b == bond {
			return true
		}
	}

	return false
}

// Key returns the ring identity: the sorted atom set, comma joined.
// Two rings over the same atoms have the same Key whatever their order.
func (r *Ring) Key() string {
	sorted := append([]int(nil), r.Atoms...)
	sort.Ints(sorted)
	parts := make([]string, len(sorted))
	for i, a := range sorted {
		parts[i] = strconv.Itoa(a)
	}

	return strings.Join(parts, ",")
}

// AtomBonds returns the two ring bonds at atom (incoming, outgoing in ring
// order), or ok=false if atom is not on the ring.
func (r *Ring) AtomBonds(atom int) (in, out int, ok bool) {
	i := r.atomPos(atom)
	if i < 0 {
		return -1, -1, false
	}
	n := len(r.Atoms)

	return r.Bonds[(i-1+n)%n], r.Bonds[i], true
}

// NextBond returns the ring bond at atom other than bond, or -1 when atom
// is not on the ring or bond is not one of its ring bonds.
func (r *Ring) NextBond(bond, atom int) int {
	in, out, ok := r.AtomBonds(atom)
	switch {
	case !ok:
		return -1
	case in == bond:
		return out
	case out == bond:
		return in
	default:
		return -1
	}
}

// Rotate returns the ring re-ordered to start at atom, keeping direction.
// The receiver is returned unchanged when atom is not on the ring.
func (r *Ring) Rotate(atom int) *Ring {
	i := r.atomPos(atom)
	if i < 0 {
		return r
	}
	n := len(r.Atoms)
	out := &Ring{Atoms: make([]int, n), Bonds: make([]int, n)}
	for k := 0; k < n; k++ {
		out.Atoms[k] = r.Atoms[(i+k)%n]
		out.Bonds[k] = r.Bonds[(i+k)%n]
	}

	return out
}

// Reverse returns the ring walked in the opposite direction from the same first atom.
func (r *Ring) Reverse() *Ring {
	n := len(r.Atoms)
	out := &Ring{Atoms: make([]int, n), Bonds: make([]int, n)}
	out.Atoms[0] = r.Atoms[0]
	for k := 1; k < n; k++ {
		out.Atoms[k] = r.Atoms[n-k]
	}
	for k := 0; k < n; k++ {
		// bond between out.Atoms[k] and out.Atoms[k+1] is r.Bonds[n-1-k]
		out.Bonds[k] = r.Bonds[n-1-k]
	}

	return out
}

// Canonical returns the minimal rotation of the ring or its reverse: it starts
// at the smallest atom index and continues towards the smaller neighbour.
func (r *Ring) Canonical() *Ring {
	lo := r.Atoms[0]
	for _, a := range r.Atoms {
		if a < lo {
			lo = a
		}
	}
	fwd := r.Rotate(lo)
	if n := len(fwd.Atoms); fwd.Atoms[n-1] < fwd.Atoms[1] {
		return fwd.Reverse()
	}

	return fwd
}

// SharedBonds returns the bonds that r and other have in common, in r order.
func (r *Ring) SharedBonds(other *Ring) []int {
	var out []int
	for _, b := range r.Bonds {
		if other.HasBond(b) {
			out = append(out, b)
		}
	}

	return out
}

// SharedAtoms returns the atoms that r and other have in common, in r order.
func (r *Ring) SharedAtoms(other *Ring) []int {
	var out []int
	for _, a := range r.Atoms {
		if other.HasAtom(a) {
			out = append(out, a)
		}
	}

	return out
}

// String renders the ring as "[0 1 2 3 4 5]".
func (r *Ring) String() string {
	return fmt.Sprint(r.Atoms)
}

func (r *Ring) atomPos(atom int) int {
	for i, a := range r.Atoms {
		if a == atom {
			return i
		}
	}

	return -1
}
