package ringfinder

import (
	"github.com/katalvlaran/lvlchem/molecule"
	"github.com/katalvlaran/lvlchem/ring"
)

// pathWalker holds the breadth-first state of one smallest-ring search.
type pathWalker struct {
	graph molecule.Graph
	live  func(bond int) bool
	root  int
	queue []int
	paths map[int][]int // atom → path from root, root first
}

// smallestRing runs a breadth-first search from root over the bonds accepted
// by live. Every neighbour of root seeds the queue with path [root, nbr].
// When a frontier atom u reaches an atom m that already has a path and the
// two paths share only root, the ring path(u) + reverse(path(m)[1:]) is
// returned. nil means no cycle passes through root.
func smallestRing(g molecule.Graph, live func(int) bool, root int) *ring.Ring {
	w := &pathWalker{
		graph: g,
		live:  live,
		root:  root,
		paths: map[int][]int{root: {root}},
	}
	for _, nbr := range w.neighbors(root) {
		if _, seen := w.paths[nbr]; seen {
			continue
		}
		w.paths[nbr] = []int{root, nbr}
		w.queue = append(w.queue, nbr)
	}

	for qi := 0; qi < len(w.queue); qi++ {
		u := w.queue[qi]
		pu := w.paths[u]
		prev := pu[len(pu)-2]
		for _, m := range w.neighbors(u) {
			if m == prev {
				continue
			}
			pm, seen := w.paths[m]
			if !seen {
				w.paths[m] = extend(pu, m)
				w.queue = append(w.queue, m)
				continue
			}
			if overlap(pu, pm) != 1 {
				continue
			}
			atoms := append([]int(nil), pu...)
			for i := len(pm) - 1; i >= 1; i-- {
				atoms = append(atoms, pm[i])
			}
			if r, err := ring.New(g, atoms); err == nil {
				return r
			}
		}
	}

	return nil
}

// neighbors returns the atoms reached from atom over live bonds, in bond order.
func (w *pathWalker) neighbors(atom int) []int {
	var out []int
	for _, bi := range w.graph.ConnectedBonds(atom) {
		if !w.live(bi) {
			continue
		}
		if b := w.graph.Bond(bi); b != nil {
			out = append(out, b.Other(atom))
		}
	}

	return out
}

func extend(path []int, atom int) []int {
	out := make([]int, len(path), len(path)+1)
	copy(out, path)

	return append(out, atom)
}

// overlap counts the atoms common to a and b.
func overlap(a, b []int) int {
	in := make(map[int]bool, len(a))
	for _, x := range a {
		in[x] = true
	}
	n := 0
	for _, y := range b {
		if in[y] {
			n++
		}
	}

	return n
}
