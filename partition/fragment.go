package partition

import (
	"fmt"

	"github.com/katalvlaran/lvlchem/molecule"
)

// CyclicFragment returns the view of m restricted to the atoms and bonds that
// lie on at least one cycle. An acyclic molecule yields an empty view.
//
// Each closure bond of the spanning forest contributes itself, its two
// endpoints and the tree path between them (its fundamental cycle).
func CyclicFragment(m *molecule.Molecule) (*molecule.Subgraph, error) {
	f, err := SpanningForest(m)
	if err != nil {
		return nil, fmt.Errorf("partition: CyclicFragment: %w", err)
	}

	inTree := make(map[int]bool, len(f.Tree))
	for _, bi := range f.Tree {
		inTree[bi] = true
	}

	bondSet := make(map[int]bool)
	atomSet := make(map[int]bool)
	for _, ci := range f.Closure {
		c := m.Bond(ci)
		bondSet[ci] = true
		atomSet[c.Begin], atomSet[c.End] = true, true
		for _, bi := range treePath(m, inTree, c.Begin, c.End) {
			b := m.Bond(bi)
			bondSet[bi] = true
			atomSet[b.Begin], atomSet[b.End] = true, true
		}
	}

	return molecule.NewSubgraph(m, keys(atomSet), keys(bondSet)), nil
}

func keys(set map[int]bool) []int {
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}

	return out
}
