// Package ringfinder finds a set of smallest rings covering every cycle of a
// molecule.Graph using Figueras' graph-reduction method.
//
// The caller's graph is only read: bonds are "consumed" from a private
// live-bond set as the reduction proceeds.
package ringfinder

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvlchem/molecule"
	"github.com/katalvlaran/lvlchem/ring"
)

// reducer encapsulates the mutable reduction state.
type reducer struct {
	graph   molecule.Graph
	opts    Options
	live    map[int]bool // bond index → still present in the working copy
	trimmed map[int]bool // atom index → done
	rings   *ring.Set
}

// Find returns the ring set of g.
//
// Steps per iteration:
//  1. Trim degree-0 atoms and strip the bonds of degree-1 atoms until none remain.
//  2. Let d be the minimum degree among untrimmed atoms.
//  3. d == 2: search the smallest ring through every degree-2 atom, keep the
//     new ones, then drop one bond at every atom that produced a new ring (or at
//     the first degree-2 atom if none did).
//  4. d >= 3: search the smallest ring through the first atom of degree d, keep
//     it if new, then drop the bond chosen by the edge-elimination heuristic.
//
// The loop ends once every atom is trimmed; every non-final iteration removes
// at least one bond, so it terminates.
//
// Returns a wrapped molecule.ErrDanglingBond when a bond of g has unresolved
// endpoints.
// Complexity: O(B · (V + B)) BFS work for B bonds and V atoms, plus the
// O(L · (V + B)) heuristic per degree-3 step.
func Find(g molecule.Graph, opts ...Option) (*ring.Set, error) {
	if g == nil {
		return nil, molecule.ErrNilMolecule
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validate(g); err != nil {
		return nil, fmt.Errorf("ringfinder: Find: %w", err)
	}

	r := &reducer{
		graph:   g,
		opts:    o,
		live:    make(map[int]bool),
		trimmed: make(map[int]bool),
		rings:   ring.NewSet(),
	}
	for _, bi := range g.BondIndices() {
		r.live[bi] = true
	}
	r.loop()

	return r.rings, nil
}

// SmallestRingThrough returns the smallest ring of g through atom, or
// ok=false when atom lies on no cycle. A negative result is not an error.
func SmallestRingThrough(g molecule.Graph, atom int) (*ring.Ring, bool) {
	r := smallestRing(g, func(int) bool { return true }, atom)

	return r, r != nil
}

func validate(g molecule.Graph) error {
	for _, bi := range g.BondIndices() {
		b := g.Bond(bi)
		if b == nil || b.Begin == b.End || g.Atom(b.Begin) == nil || g.Atom(b.End) == nil {
			return fmt.Errorf("bond %d: %w", bi, molecule.ErrDanglingBond)
		}
	}

	return nil
}

// loop runs the reduction until every atom is trimmed.
func (r *reducer) loop() {
	atoms := r.graph.AtomIndices()
	for {
		r.trim(atoms)

		minDeg, minAtom := 0, -1
		var nodes2 []int
		for _, a := range atoms {
			if r.trimmed[a] {
				continue
			}
			d := r.degree(a)
			if minAtom < 0 || d < minDeg {
				minDeg, minAtom = d, a
			}
			if d == 2 {
				nodes2 = append(nodes2, a)
			}
		}
		if minAtom < 0 {
			return
		}

		if minDeg == 2 {
			r.reduceDegree2(nodes2)
			continue
		}
		r.reduceDegree3(minAtom, minDeg)
	}
}

// trim marks degree-0 atoms done and strips degree-1 atoms until the working
// copy has no atom of degree below two.
func (r *reducer) trim(atoms []int) {
	for changed := true; changed; {
		changed = false
		for _, a := range atoms {
			if r.trimmed[a] {
				continue
			}
			switch r.degree(a) {
			case 0:
				r.trimmed[a] = true
			case 1:
				for _, bi := range r.liveBonds(a) {
					delete(r.live, bi)
				}
				r.trimmed[a] = true
				changed = true
			}
		}
	}
}

func (r *reducer) reduceDegree2(nodes2 []int) {
	var productive []int
	for _, n := range nodes2 {
		found := smallestRing(r.graph, r.isLive, n)
		if found != nil && r.rings.Add(found) {
			r.opts.Logger.Debug("ring found", "atom", n, "degree", 2, "atoms", found.Atoms)
			productive = append(productive, n)
		}
	}
	if len(productive) == 0 {
		productive = nodes2[:1]
	}
	for _, n := range productive {
		if bonds := r.liveBonds(n); len(bonds) > 0 {
			delete(r.live, bonds[0])
		}
	}
}

func (r *reducer) reduceDegree3(atom, degree int) {
	found := smallestRing(r.graph, r.isLive, atom)
	if found == nil {
		// only reachable if atom sits between cycles it cannot close; any bond will do
		delete(r.live, r.liveBonds(atom)[0])
		return
	}
	if r.rings.Add(found) {
		r.opts.Logger.Debug("ring found", "atom", atom, "degree", degree, "atoms", found.Atoms)
	}
	victim := r.checkEdges(found)
	r.opts.Logger.Debug("bond eliminated", "bond", victim)
	delete(r.live, victim)
}

// checkEdges picks the ring bond whose removal least disrupts ring coverage.
// Each bond is removed in turn, the smallest rings through its two endpoints
// are recomputed, and the larger of the two sizes is recorded (0 when neither
// closes). The bond with the smallest recorded size wins; ties go to the
// lowest bond index.
func (r *reducer) checkEdges(rg *ring.Ring) int {
	candidates := append([]int(nil), rg.Bonds...)
	sort.Ints(candidates)

	best, bestSize := -1, math.MaxInt
	for _, bi := range candidates {
		b := r.graph.Bond(bi)
		delete(r.live, bi)
		size := max(ringSize(smallestRing(r.graph, r.isLive, b.Begin)),
			ringSize(smallestRing(r.graph, r.isLive, b.End)))
		r.live[bi] = true
		if size < bestSize {
			best, bestSize = bi, size
		}
	}

	return best
}

func (r *reducer) isLive(bond int) bool { return r.live[bond] }

func (r *reducer) liveBonds(atom int) []int {
	var out []int
	for _, bi := range r.graph.ConnectedBonds(atom) {
		if r.live[bi] {
			out = append(out, bi)
		}
	}

	return out
}

func (r *reducer) degree(atom int) int {
	return len(r.liveBonds(atom))
}

func ringSize(rg *ring.Ring) int {
	if rg == nil {
		return 0
	}

	return rg.Size()
}
