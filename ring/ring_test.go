package ring_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlchem/molecule"
	"github.com/katalvlaran/lvlchem/ring"
)

// bicycle builds two squares sharing the bond 0-1:
//
//	3───0───4
//	│   │   │
//	2───1───5
func bicycle(t *testing.T) *molecule.Molecule {
	t.Helper()
	m := molecule.New("bicyclo[2.2.0]hexane")
	for i := 0; i < 6; i++ {
		_, err := m.AddAtom("C")
		require.NoError(t, err)
	}
	for _, p := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 4}, {4, 5}, {5, 1}} {
		_, err := m.AddBond(p[0], p[1], molecule.OrderSingle)
		require.NoError(t, err)
	}

	return m
}

func TestNew_ResolvesBonds(t *testing.T) {
	m := bicycle(t)
	r, err := ring.New(m, []int{0, 1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, r.Bonds)
	assert.Equal(t, 4, r.Size())
	assert.Equal(t, "0,1,2,3", r.Key())

	_, err = ring.New(m, []int{0, 1})
	assert.ErrorIs(t, err, ring.ErrTooSmall)
	_, err = ring.New(m, []int{0, 2, 3})
	assert.ErrorIs(t, err, ring.ErrNotBonded)
	_, err = ring.New(m, []int{0, 1, 0})
	assert.ErrorIs(t, err, ring.ErrRepeatedAtom)
}

func TestRing_NavigationAndCanonical(t *testing.T) {
	m := bicycle(t)
	r, err := ring.New(m, []int{2, 3, 0, 1})
	require.NoError(t, err)

	in, out, ok := r.AtomBonds(0)
	require.True(t, ok)
	assert.Equal(t, 3, in)  // 3-0
	assert.Equal(t, 0, out) // 0-1
	assert.Equal(t, 0, r.NextBond(3, 0))
	assert.Equal(t, -1, r.NextBond(4, 0))
	assert.Equal(t, -1, r.NextBond(0, 5))

	c := r.Canonical()
	if diff := cmp.Diff([]int{0, 1, 2, 3}, c.Atoms); diff != "" {
		t.Errorf("canonical atoms mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []int{0, 1, 2, 3}, c.Bonds)

	rev := r.Reverse()
	assert.Equal(t, []int{2, 1, 0, 3}, rev.Atoms)
	for i := range rev.Atoms {
		b := m.Bond(rev.Bonds[i])
		assert.True(t, b.Contains(rev.Atoms[i]) && b.Contains(rev.Atoms[(i+1)%4]))
	}
}

func TestSet_IdentityAndSystems(t *testing.T) {
	m := bicycle(t)
	a, _ := ring.New(m, []int{0, 1, 2, 3})
	aRot, _ := ring.New(m, []int{3, 2, 1, 0})
	b, _ := ring.New(m, []int{0, 4, 5, 1})

	s := ring.NewSet()
	assert.True(t, s.Add(a))
	assert.False(t, s.Add(aRot), "same atom set is the same ring")
	assert.True(t, s.Add(b))
	assert.True(t, s.Contains(aRot))
	assert.Equal(t, 2, s.Len())

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, s.AtomsInRings())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, s.BondsInRings())
	assert.Equal(t, map[int]int{4: 2}, s.SizeHistogram())
	assert.Equal(t, []int{0}, a.SharedBonds(b))
	assert.Len(t, s.Connected(a), 1)

	systems := s.Systems()
	require.Len(t, systems, 1)
	assert.Equal(t, 2, systems[0].Len())
}

func TestSet_SystemsSplitsDisjointRings(t *testing.T) {
	m := molecule.New("two triangles")
	for i := 0; i < 6; i++ {
		_, _ = m.AddAtom("C")
	}
	for _, p := range [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}} {
		_, _ = m.AddBond(p[0], p[1], molecule.OrderSingle)
	}
	r1, _ := ring.New(m, []int{3, 4, 5})
	r2, _ := ring.New(m, []int{0, 1, 2})

	systems := ring.NewSet(r1, r2).Systems()
	require.Len(t, systems, 2)
	assert.Equal(t, "3,4,5", systems[0].Ring(0).Key())
	assert.Equal(t, "0,1,2", systems[1].Ring(0).Key())
}
