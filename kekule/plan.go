// SPDX-License-Identifier: MIT
//
// File: plan.go
// Role: the scratch assignment behind every entry point.
//
// The walk keeps its own bond → order map; a bond absent from the map has
// not been assigned yet. Bond orders of the molecule are read only for
// exocyclic double bonds.

package kekule

import (
	"github.com/katalvlaran/lvlchem/aromaticity"
	"github.com/katalvlaran/lvlchem/molecule"
	"github.com/katalvlaran/lvlchem/ring"
)

// Plan computes a Kekulé assignment for rings, which must have the shape of
// t. It returns the staged orders and cleared aromatic flags, or ok=false
// when the shape does not match or no assignment exists. g is not modified.
func Plan(g molecule.Graph, rings []*ring.Ring, t Topology) (*molecule.Changeset, bool) {
	if g == nil || !t.matches(rings) {
		return nil, false
	}

	p := newPlanner(g, rings)
	st, ok := p.solve(0, p.initial())
	if !ok {
		return nil, false
	}

	cs := molecule.NewChangeset()
	for bi, o := range st.orders {
		cs.SetOrder(bi, o)
		cs.SetBondAromatic(bi, false)
	}
	for a := range p.atomBonds {
		cs.SetAtomAromatic(a, false)
	}

	return cs, true
}

// planner holds the fixed inputs of one assignment search.
type planner struct {
	g     molecule.Graph
	order []*ring.Ring
	// atomBonds maps every cluster atom to its cluster bonds.
	atomBonds map[int][]int
	inCluster map[int]bool
}

// state is one partial assignment; it is copied before every trial walk.
type state struct {
	orders  map[int]molecule.BondOrder
	doubles map[int]int
	donors  map[int]bool
}

func newPlanner(g molecule.Graph, rings []*ring.Ring) *planner {
	p := &planner{
		g:         g,
		order:     walkOrder(rings),
		atomBonds: make(map[int][]int),
		inCluster: make(map[int]bool),
	}
	for _, r := range rings {
		for _, bi := range r.Bonds {
			if p.inCluster[bi] {
				continue
			}
			p.inCluster[bi] = true
			b := g.Bond(bi)
			p.atomBonds[b.Begin] = append(p.atomBonds[b.Begin], bi)
			p.atomBonds[b.End] = append(p.atomBonds[b.End], bi)
		}
	}

	return p
}

// initial seeds the double-bond count of each atom with its exocyclic doubles.
func (p *planner) initial() *state {
	st := &state{
		orders:  make(map[int]molecule.BondOrder),
		doubles: make(map[int]int),
		donors:  make(map[int]bool),
	}
	for a := range p.atomBonds {
		for _, bi := range p.g.ConnectedBonds(a) {
			if p.inCluster[bi] {
				continue
			}
			if b := p.g.Bond(bi); b != nil && b.Order == molecule.OrderDouble {
				st.doubles[a]++
			}
		}
	}

	return st
}

func (s *state) clone() *state {
	out := &state{
		orders:  make(map[int]molecule.BondOrder, len(s.orders)),
		doubles: make(map[int]int, len(s.doubles)),
		donors:  make(map[int]bool, len(s.donors)),
	}
	for k, v := range s.orders {
		out.orders[k] = v
	}
	for k, v := range s.doubles {
		out.doubles[k] = v
	}
	for k, v := range s.donors {
		out.donors[k] = v
	}

	return out
}

// solve assigns rings k.. in walk order, backtracking over start atoms and
// directions. The first complete assignment wins.
func (p *planner) solve(k int, st *state) (*state, bool) {
	if k == len(p.order) {
		return st, p.complete(st, nil)
	}
	r := p.order[k]
	starts, donor := p.starts(r)
	for _, start := range starts {
		fwd := r.Rotate(start)
		for _, walk := range []*ring.Ring{fwd, fwd.Reverse()} {
			next := st.clone()
			if donor {
				next.donors[start] = true
			}
			p.walk(next, walk)
			if !p.complete(next, r) {
				continue
			}
			if out, ok := p.solve(k+1, next); ok {
				return out, true
			}
		}
	}

	return nil, false
}

// starts returns the candidate start atoms of r. A 5-ring with a
// pyrrole-type atom has that atom as its only start. A 5-ring without one
// tries every atom in ring order, first atom first, as the single-bond
// start. donor is true for every 5-ring.
func (p *planner) starts(r *ring.Ring) (atoms []int, donor bool) {
	if r.Size() != 5 {
		return append([]int(nil), r.Atoms...), false
	}
	for _, a := range r.Atoms {
		if p.pyrroleType(a) {
			return []int{a}, true
		}
	}

	return append([]int(nil), r.Atoms...), true
}

// pyrroleType: a lone-pair donor heteroatom or a carbanion.
func (p *planner) pyrroleType(a int) bool {
	at := p.g.Atom(a)
	if at == nil {
		return false
	}
	if at.IsCarbon() {
		return at.FormalCharge < 0
	}

	return aromaticity.LonePairDonor(p.g, a)
}

// walk assigns every unassigned bond of w in order: double when neither end
// is a donor or already double-bonded, single otherwise.
func (p *planner) walk(st *state, w *ring.Ring) {
	n := w.Size()
	for i, bi := range w.Bonds {
		if _, done := st.orders[bi]; done {
			continue
		}
		u, v := w.Atoms[i], w.Atoms[(i+1)%n]
		if st.free(u) && st.free(v) {
			st.orders[bi] = molecule.OrderDouble
			st.doubles[u]++
			st.doubles[v]++
			continue
		}
		st.orders[bi] = molecule.OrderSingle
	}
}

func (s *state) free(a int) bool {
	return !s.donors[a] && s.doubles[a] == 0
}

// complete checks every atom whose cluster bonds are all assigned: donors
// carry no double bond, every other atom exactly one. With r == nil all
// cluster atoms are checked.
func (p *planner) complete(st *state, r *ring.Ring) bool {
	atoms := make([]int, 0, len(p.atomBonds))
	if r != nil {
		atoms = append(atoms, r.Atoms...)
	} else {
		for a := range p.atomBonds {
			atoms = append(atoms, a)
		}
	}
	for _, a := range atoms {
		assigned := true
		for _, bi := range p.atomBonds[a] {
			if _, ok := st.orders[bi]; !ok {
				assigned = false
				break
			}
		}
		if !assigned {
			continue
		}
		want := 1
		if st.donors[a] {
			want = 0
		}
		if st.doubles[a] != want {
			return false
		}
	}

	return true
}

// walkOrder puts the first 5-ring (or the first ring) first and then visits
// rings breadth-first across shared bonds, in input order. Rings not reached
// keep their input order at the end.
func walkOrder(rings []*ring.Ring) []*ring.Ring {
	seed := 0
	for i, r := range rings {
		if r.Size() == 5 {
			seed = i
			break
		}
	}

	seen := make([]bool, len(rings))
	queue := []int{seed}
	seen[seed] = true
	for qi := 0; qi < len(queue); qi++ {
		cur := rings[queue[qi]]
		for j, r := range rings {
			if !seen[j] && len(cur.SharedBonds(r)) > 0 {
				seen[j] = true
				queue = append(queue, j)
			}
		}
	}
	for j := range rings {
		if !seen[j] {
			queue = append(queue, j)
		}
	}

	out := make([]*ring.Ring, len(queue))
	for i, j := range queue {
		out[i] = rings[j]
	}

	return out
}
