package ring

import "sort"

// Set is an ordered collection of rings with set semantics on the atom set:
// adding a ring whose Key is already present is a no-op.
type Set struct {
	rings []*Ring
	index map[string]int
}

// NewSet returns a set holding the given rings (duplicates dropped).
func NewSet(rings ...*Ring) *Set {
	s := &Set{index: make(map[string]int)}
	for _, r := range rings {
		s.Add(r)
	}

	return s
}

// Add inserts r and reports whether it was new.
func (s *Set) Add(r *Ring) bool {
	if r == nil {
		return false
	}
	k := r.Key()
	if _, ok := s.index[k]; ok {
		return false
	}
	s.index[k] = len(s.rings)
	s.rings = append(s.rings, r)

	return true
}

// Contains reports whether a ring over the same atoms as r is present.
func (s *Set) Contains(r *Ring) bool {
	if r == nil {
		return false
	}
	_, ok := s.index[r.Key()]

	return ok
}

// Append adds every ring of other, in order.
func (s *Set) Append(other *Set) {
	if other == nil {
		return
	}
	for _, r := range other.rings {
		s.Add(r)
	}
}

// Len returns the number of rings.
func (s *Set) Len() int { return len(s.rings) }

// Ring returns the i-th ring in insertion order.
func (s *Set) Ring(i int) *Ring { return s.rings[i] }

// Rings returns the rings in insertion order.
func (s *Set) Rings() []*Ring { return append([]*Ring(nil), s.rings...) }

// AtomsInRings returns every atom on at least one ring, ascending.
func (s *Set) AtomsInRings() []int {
	seen := make(map[int]bool)
	for _, r := range s.rings {
		for _, a := range r.Atoms {
			seen[a] = true
		}
	}

	return sortedKeys(seen)
}

// BondsInRings returns every bond on at least one ring, ascending.
func (s *Set) BondsInRings() []int {
	seen := make(map[int]bool)
	for _, r := range s.rings {
		for _, b := range r.Bonds {
			seen[b] = true
		}
	}

	return sortedKeys(seen)
}

// SizeHistogram maps ring size to the number of rings of that size.
func (s *Set) SizeHistogram() map[int]int {
	out := make(map[int]int)
	for _, r := range s.rings {
		out[r.Size()]++
	}

	return out
}

// Connected returns the rings of s sharing at least one atom with r, excluding r itself.
func (s *Set) Connected(r *Ring) []*Ring {
	var out []*Ring
	k := r.Key()
	for _, o := range s.rings {
		if o.Key() != k && len(r.SharedAtoms(o)) > 0 {
			out = append(out, o)
		}
	}

	return out
}

// Systems partitions s into isolated ring systems: maximal clusters of rings
// connected through shared atoms. Clusters are ordered by their first ring
// and keep insertion order inside.
// Complexity: O(R² · L) for R rings of length L.
func (s *Set) Systems() []*Set {
	n := len(s.rings)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if len(s.rings[i].SharedAtoms(s.rings[j])) == 0 {
				continue
			}
			ri, rj := find(i), find(j)
			if ri == rj {
				continue
			}
			// keep the lowest index as root so output order is stable
			if ri < rj {
				parent[rj] = ri
			} else {
				parent[ri] = rj
			}
		}
	}

	var out []*Set
	slot := make(map[int]int)
	for i, r := range s.rings {
		root := find(i)
		k, ok := slot[root]
		if !ok {
			k = len(out)
			slot[root] = k
			out = append(out, NewSet())
		}
		out[k].Add(r)
	}

	return out
}

func sortedKeys(m map[int]bool) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}
