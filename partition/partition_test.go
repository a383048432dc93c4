package partition_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlchem/builder"
	"github.com/katalvlaran/lvlchem/molecule"
	"github.com/katalvlaran/lvlchem/partition"
)

func mustBuild(t *testing.T, cons ...builder.Constructor) *molecule.Molecule {
	t.Helper()
	m, err := builder.Build(nil, cons...)
	require.NoError(t, err)

	return m
}

func TestSpanningForest(t *testing.T) {
	t.Parallel()

	m := mustBuild(t, builder.Naphthalene())
	f, err := partition.SpanningForest(m)
	require.NoError(t, err)
	assert.Len(t, f.Tree, m.AtomCount()-1)
	assert.Len(t, f.Closure, 2)
	// bonds are walked in index order, so the ring-closing bonds come last
	assert.Equal(t, []int{9, 10}, f.Closure)

	chain := mustBuild(t, builder.Chain(5))
	f, err = partition.SpanningForest(chain)
	require.NoError(t, err)
	assert.Empty(t, f.Closure)
	assert.Len(t, f.Tree, 4)
}

func TestCyclicFragment(t *testing.T) {
	t.Parallel()

	// toluene: the methyl bond is acyclic
	m := mustBuild(t, builder.Toluene())
	frag, err := partition.CyclicFragment(m)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, frag.AtomIndices())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, frag.BondIndices())
	assert.False(t, frag.HasBond(6))

	acyclic := mustBuild(t, builder.Chain(4))
	frag, err = partition.CyclicFragment(acyclic)
	require.NoError(t, err)
	assert.Zero(t, frag.AtomCount())
}

func TestSystems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mol       *molecule.Molecule
		wantAtoms [][]int
	}{
		{
			name: "biphenyl",
			mol:  mustBuild(t, builder.Biphenyl()),
			wantAtoms: [][]int{
				{0, 1, 2, 3, 4, 5},
				{6, 7, 8, 9, 10, 11},
			},
		},
		{
			name:      "spiro merges on the shared atom",
			mol:       mustBuild(t, builder.Spiro(5, 5)),
			wantAtoms: [][]int{{0, 1, 2, 3, 4, 5, 6, 7, 8}},
		},
		{
			name: "disconnected benzene and pyrrole",
			mol:  mustBuild(t, builder.Benzene(), builder.Pyrrole()),
			wantAtoms: [][]int{
				{0, 1, 2, 3, 4, 5},
				{6, 7, 8, 9, 10},
			},
		},
		{
			name:      "ring with a chain linker",
			mol:       mustBuild(t, builder.Benzene(), builder.Chain(3), builder.Link(0, 6, molecule.OrderSingle)),
			wantAtoms: [][]int{{0, 1, 2, 3, 4, 5}},
		},
		{
			name:      "carbazole is one system",
			mol:       mustBuild(t, builder.Carbazole()),
			wantAtoms: [][]int{{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}},
		},
		{
			name: "acyclic",
			mol:  mustBuild(t, builder.Chain(6)),
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			systems, err := partition.Systems(tc.mol)
			require.NoError(t, err)
			var got [][]int
			for _, s := range systems {
				got = append(got, s.AtomIndices())
			}
			if diff := cmp.Diff(tc.wantAtoms, got); diff != "" {
				t.Errorf("systems mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRings(t *testing.T) {
	t.Parallel()

	m := mustBuild(t, builder.Biphenyl(), builder.Indole())
	all, per, err := partition.Rings(m)
	require.NoError(t, err)
	require.Len(t, per, 3)
	assert.Equal(t, 4, all.Len())
	assert.Equal(t, 1, per[0].Len())
	assert.Equal(t, 1, per[1].Len())
	assert.Equal(t, 2, per[2].Len())
	for _, r := range per[2].Rings() {
		for _, a := range r.Atoms {
			assert.GreaterOrEqual(t, a, 12, "indole rings use indole atoms only")
		}
	}
}

func TestMarkRings(t *testing.T) {
	t.Parallel()

	m := mustBuild(t, builder.Toluene())
	m.Atom(6).InRing = true // stale flag must be cleared
	cs, err := partition.MarkRings(m)
	require.NoError(t, err)
	assert.Equal(t, m.AtomCount()+m.BondCount(), cs.Len())
	for i := 0; i < 6; i++ {
		assert.True(t, m.Atom(i).InRing, "atom %d", i)
		assert.True(t, m.Bond(i).InRing, "bond %d", i)
	}
	assert.False(t, m.Atom(6).InRing)
	assert.False(t, m.Bond(6).InRing)
}

func TestErrors(t *testing.T) {
	t.Parallel()

	_, err := partition.Systems(nil)
	assert.ErrorIs(t, err, molecule.ErrNilMolecule)

	bad := molecule.FromParts("bad",
		[]molecule.Atom{{Symbol: "C"}},
		[]molecule.Bond{{Begin: 0, End: 3, Order: molecule.OrderSingle}},
	)
	_, _, err = partition.Rings(bad)
	assert.ErrorIs(t, err, molecule.ErrDanglingBond)
	_, err = partition.MarkRings(bad)
	assert.ErrorIs(t, err, molecule.ErrDanglingBond)
}
