// File: changeset.go
// Role: Staged edits to bond orders and InRing/Aromatic flags.
//
// Algorithms compute a Changeset against a borrowed, unmodified Molecule and
// the caller (or the driver) commits it with Apply. Apply validates every
// index before writing anything, so a failed commit leaves m untouched.

package molecule

import (
	"fmt"
	"sort"
)

// Changeset collects bond-order and flag edits keyed by atom/bond index.
// The zero value is not usable; call NewChangeset.
type Changeset struct {
	orders       map[int]BondOrder
	atomAromatic map[int]bool
	bondAromatic map[int]bool
	atomInRing   map[int]bool
	bondInRing   map[int]bool
}

// NewChangeset returns an empty Changeset.
func NewChangeset() *Changeset {
	return &Changeset{
		orders:       make(map[int]BondOrder),
		atomAromatic: make(map[int]bool),
		bondAromatic: make(map[int]bool),
		atomInRing:   make(map[int]bool),
		bondInRing:   make(map[int]bool),
	}
}

// SetOrder stages a new order for bond.
func (c *Changeset) SetOrder(bond int, o BondOrder) { c.orders[bond] = o }

// SetAtomAromatic stages the aromatic flag of atom.
func (c *Changeset) SetAtomAromatic(atom int, v bool) { c.atomAromatic[atom] = v }

// SetBondAromatic stages the aromatic flag of bond.
func (c *Changeset) SetBondAromatic(bond int, v bool) { c.bondAromatic[bond] = v }

// SetAtomInRing stages the in-ring flag of atom.
func (c *Changeset) SetAtomInRing(atom int, v bool) { c.atomInRing[atom] = v }

// SetBondInRing stages the in-ring flag of bond.
func (c *Changeset) SetBondInRing(bond int, v bool) { c.bondInRing[bond] = v }

// Order returns the staged order for bond, if any.
func (c *Changeset) Order(bond int) (BondOrder, bool) {
	o, ok := c.orders[bond]

	return o, ok
}

// OrderedBonds returns the bonds with a staged order, ascending.
func (c *Changeset) OrderedBonds() []int {
	out := make([]int, 0, len(c.orders))
	for b := range c.orders {
		out = append(out, b)
	}
	sort.Ints(out)

	return out
}

// Len returns the total number of staged edits.
func (c *Changeset) Len() int {
	return len(c.orders) + len(c.atomAromatic) + len(c.bondAromatic) + len(c.atomInRing) + len(c.bondInRing)
}

// Merge copies every edit of other into c; other wins on conflicts.
func (c *Changeset) Merge(other *Changeset) {
	if other == nil {
		return
	}
	for k, v := range other.orders {
		c.orders[k] = v
	}
	for k, v := range other.atomAromatic {
		c.atomAromatic[k] = v
	}
	for k, v := range other.bondAromatic {
		c.bondAromatic[k] = v
	}
	for k, v := range other.atomInRing {
		c.atomInRing[k] = v
	}
	for k, v := range other.bondInRing {
		c.bondInRing[k] = v
	}
}

// Apply commits the edits to m. All indices are checked first; on error
// nothing is written.
func (c *Changeset) Apply(m *Molecule) error {
	if m == nil {
		return ErrNilMolecule
	}
	for _, set := range []map[int]bool{c.atomAromatic, c.atomInRing} {
		for a := range set {
			if m.Atom(a) == nil {
				return fmt.Errorf("Apply: atom %d: %w", a, ErrAtomNotFound)
			}
		}
	}
	for _, set := range []map[int]bool{c.bondAromatic, c.bondInRing} {
		for b := range set {
			if m.Bond(b) == nil {
				return fmt.Errorf("Apply: bond %d: %w", b, ErrBondNotFound)
			}
		}
	}
	for b := range c.orders {
		if m.Bond(b) == nil {
			return fmt.Errorf("Apply: bond %d: %w", b, ErrBondNotFound)
		}
	}

	for b, o := range c.orders {
		m.bonds[b].Order = o
	}
	for a, v := range c.atomAromatic {
		m.atoms[a].Aromatic = v
	}
	for b, v := range c.bondAromatic {
		m.bonds[b].Aromatic = v
	}
	for a, v := range c.atomInRing {
		m.atoms[a].InRing = v
	}
	for b, v := range c.bondInRing {
		m.bonds[b].InRing = v
	}

	return nil
}
