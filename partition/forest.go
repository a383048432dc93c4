package partition

import (
	"fmt"

	"github.com/katalvlaran/lvlchem/molecule"
)

// SpanningForest computes a spanning forest of m with union-find.
//
// Steps:
//  1. Validate: m != nil and every bond resolves to two distinct atoms.
//  2. parent[a] = a, rank[a] = 0 for every atom.
//  3. Walk bonds in index order: if find(begin) != find(end), union them and
//     record a tree bond; otherwise record a closure bond.
//
// len(Closure) equals the cyclomatic number B - A + components.
// Complexity: O(B·α(A)). Memory: O(A + B).
func SpanningForest(m *molecule.Molecule) (*Forest, error) {
	if m == nil {
		return nil, molecule.ErrNilMolecule
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("partition: SpanningForest: %w", err)
	}

	n := m.AtomCount()
	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}

	// iterative find with path halving
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}
	union := func(u, v int) {
		ru, rv := find(u), find(v)
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	f := &Forest{}
	for _, b := range m.Bonds() {
		if find(b.Begin) == find(b.End) {
			f.Closure = append(f.Closure, b.Index)
			continue
		}
		union(b.Begin, b.End)
		f.Tree = append(f.Tree, b.Index)
	}

	return f, nil
}

// treePath returns the tree bonds on the path from src to dst, or nil when
// they are not connected in the tree.
func treePath(m *molecule.Molecule, inTree map[int]bool, src, dst int) []int {
	via := map[int]int{src: -1} // atom → tree bond used to reach it
	queue := []int{src}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == dst {
			break
		}
		for _, bi := range m.ConnectedBonds(u) {
			if !inTree[bi] {
				continue
			}
			v := m.Bond(bi).Other(u)
			if _, seen := via[v]; seen {
				continue
			}
			via[v] = bi
			queue = append(queue, v)
		}
	}
	if _, ok := via[dst]; !ok {
		return nil
	}

	var path []int
	for at := dst; via[at] >= 0; {
		bi := via[at]
		path = append(path, bi)
		at = m.Bond(bi).Other(at)
	}

	return path
}
