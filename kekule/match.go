package kekule

import (
	"github.com/katalvlaran/lvlchem/molecule"
	"github.com/katalvlaran/lvlchem/ring"
)

// Match returns the first catalog topology whose shape matches rings and
// whose atoms and bonds are all flagged aromatic in g, or TopologyNone.
func Match(g molecule.Graph, rings []*ring.Ring) Topology {
	for _, t := range Catalog() {
		if t.matches(rings) && allAromatic(g, rings, true) {
			return t
		}
	}

	return TopologyNone
}

// allAromatic checks the aromatic flag of every ring atom and, when
// withBonds is set, every ring bond.
func allAromatic(g molecule.Graph, rings []*ring.Ring, withBonds bool) bool {
	for _, r := range rings {
		for _, a := range r.Atoms {
			if at := g.Atom(a); at == nil || !at.Aromatic {
				return false
			}
		}
		if !withBonds {
			continue
		}
		for _, bi := range r.Bonds {
			if b := g.Bond(bi); b == nil || !b.Aromatic {
				return false
			}
		}
	}

	return true
}
