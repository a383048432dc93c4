package aromaticity

import (
	"github.com/katalvlaran/lvlchem/molecule"
	"github.com/katalvlaran/lvlchem/ring"
)

// σ valence of the common lone-pair donors.
var donorValence = map[string]int{"N": 3, "P": 3, "O": 2, "S": 2, "Se": 2}

// PiElectrons sums the π-electron contributions of the atoms of r in g.
// ok is false as soon as one atom breaks conjugation.
func PiElectrons(g molecule.Graph, r *ring.Ring) (int, bool) {
	return piElectrons(g, r, flagged(g))
}

// AtomPiElectrons returns the contribution of atom a as a member of r.
// ok is false when a is not on r or breaks conjugation there.
func AtomPiElectrons(g molecule.Graph, r *ring.Ring, a int) (int, bool) {
	if r == nil || !r.HasAtom(a) {
		return 0, false
	}

	return contribution(g, r, a, flagged(g))
}

func flagged(g molecule.Graph) func(int) bool {
	return func(a int) bool {
		at := g.Atom(a)
		return at != nil && at.Aromatic
	}
}

// Huckel reports whether n π electrons satisfy 4n+2 with n >= 0.
func Huckel(n int) bool {
	return n-2 >= 0 && (n-2)%4 == 0
}

// IsAromatic applies the Hückel count to r.
func IsAromatic(g molecule.Graph, r *ring.Ring) bool {
	n, ok := PiElectrons(g, r)

	return ok && Huckel(n)
}

// piElectrons is PiElectrons with the aromatic flag read through isAromatic,
// so Detect can see flags it has staged but not yet written.
func piElectrons(g molecule.Graph, r *ring.Ring, isAromatic func(int) bool) (int, bool) {
	if r == nil {
		return 0, false
	}
	sum := 0
	for _, a := range r.Atoms {
		e, ok := contribution(g, r, a, isAromatic)
		if !ok {
			return 0, false
		}
		sum += e
	}

	return sum, true
}

func contribution(g molecule.Graph, r *ring.Ring, a int, isAromatic func(int) bool) (int, bool) {
	atom := g.Atom(a)
	if atom == nil {
		return 0, false
	}
	doubles, partial := ringOrders(g, r, a)
	switch {
	case doubles == 1:
		return 1, true
	case doubles == 0 && partial > 0:
		if !atom.IsCarbon() && saturated(g, atom) {
			return 2, true
		}
		return 1, true
	case !atom.IsCarbon():
		return 2, true
	case atom.FormalCharge < 0:
		return 2, true
	case atom.FormalCharge > 0:
		return 0, true
	case isAromatic(a):
		return 1, true
	default:
		return 0, false
	}
}

// ringOrders counts the DOUBLE and delocalized ring bonds of r at atom a.
func ringOrders(g molecule.Graph, r *ring.Ring, a int) (doubles, partial int) {
	in, out, ok := r.AtomBonds(a)
	if !ok {
		return 0, 0
	}
	for _, bi := range []int{in, out} {
		b := g.Bond(bi)
		if b == nil {
			continue
		}
		switch b.Order {
		case molecule.OrderDouble:
			doubles++
		case molecule.OrderAromatic:
			partial++
		}
	}

	return doubles, partial
}

// LonePairDonor reports whether atom a of g is a heteroatom whose σ valence
// is used up, so it can only join a ring π system through a lone pair
// (pyrrole N, N-methylpyrrole N, furan O, thiophene S).
func LonePairDonor(g molecule.Graph, a int) bool {
	atom := g.Atom(a)

	return atom != nil && !atom.IsCarbon() && saturated(g, atom)
}

// saturated reports whether a heteroatom has no valence left for a π bond:
// its heavy neighbours plus implicit hydrogens reach its σ valence, raised
// by one per positive charge (pyridinium, pyrylium).
func saturated(g molecule.Graph, atom *molecule.Atom) bool {
	v, ok := donorValence[atom.Symbol]
	if !ok {
		return atom.LonePairs > 0
	}

	return len(g.ConnectedBonds(atom.Index))+atom.ImplicitHydrogens >= v+atom.FormalCharge
}
