package aromaticity

import (
	"github.com/katalvlaran/lvlchem/molecule"
	"github.com/katalvlaran/lvlchem/ring"
)

// HasSproutedBond reports whether an atom of sys carries a double or triple
// bond to an atom outside sys. Such a system is never aromatic under the
// strict model.
func HasSproutedBond(g molecule.Graph, sys *molecule.Subgraph) bool {
	for _, a := range sys.AtomIndices() {
		for _, bi := range g.ConnectedBonds(a) {
			if sys.HasBond(bi) {
				continue
			}
			if o := g.Bond(bi).Order; o == molecule.OrderDouble || o == molecule.OrderTriple {
				return true
			}
		}
	}

	return false
}

// IsAromaticStrict applies the strict model to r, a ring of sys.
func IsAromaticStrict(g molecule.Graph, sys *molecule.Subgraph, r *ring.Ring) bool {
	return isAromaticStrict(g, sys, r, func(a int) bool {
		at := g.Atom(a)
		return at != nil && at.Aromatic
	})
}

func isAromaticStrict(g molecule.Graph, sys *molecule.Subgraph, r *ring.Ring, isAromatic func(int) bool) bool {
	if r == nil || HasSproutedBond(g, sys) {
		return false
	}
	for _, a := range r.Atoms {
		if !strictAtom(g, sys, a, isAromatic) {
			return false
		}
	}
	n, ok := piElectrons(g, r, isAromatic)

	return ok && Huckel(n)
}

// strictAtom: sp2 inside the system, a lone-pair donor, a charged carbon or
// an atom already aromatic.
//
// The lone-pair branch accepts sp3 and sp2 donors alike: the pyrrole N,
// furan O and thiophene S are conventionally typed sp2 once their lone pair
// is conjugated, and such input must still pass. Only sp atoms, whose lone
// pair is orthogonal to the ring, are rejected.
func strictAtom(g molecule.Graph, sys *molecule.Subgraph, a int, isAromatic func(int) bool) bool {
	atom := g.Atom(a)
	if atom == nil {
		return false
	}
	for _, bi := range g.ConnectedBonds(a) {
		if !sys.HasBond(bi) {
			continue
		}
		if o := g.Bond(bi).Order; o == molecule.OrderDouble || o == molecule.OrderAromatic {
			return true
		}
	}
	switch {
	case atom.LonePairs > 0 && atom.Hybridization != molecule.HybridSP1:
		return true
	case atom.IsCarbon() && atom.FormalCharge != 0:
		return true
	default:
		return isAromatic(a)
	}
}
