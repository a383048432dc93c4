package aromaticity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlchem/aromaticity"
	"github.com/katalvlaran/lvlchem/builder"
	"github.com/katalvlaran/lvlchem/molecule"
	"github.com/katalvlaran/lvlchem/ring"
	"github.com/katalvlaran/lvlchem/ringfinder"
)

func mustBuild(t *testing.T, opts []builder.BuilderOption, cons ...builder.Constructor) *molecule.Molecule {
	t.Helper()
	m, err := builder.Build(opts, cons...)
	require.NoError(t, err)

	return m
}

// manual builds a carbon skeleton from (a, b, order) triples; atoms are sp2 CH
// unless listed in sp3.
func manual(t *testing.T, n int, sp3 []int, bonds [][3]int) *molecule.Molecule {
	t.Helper()
	m := molecule.New("manual")
	isSP3 := make(map[int]bool)
	for _, a := range sp3 {
		isSP3[a] = true
	}
	for i := 0; i < n; i++ {
		h, hyb := 1, molecule.HybridSP2
		if isSP3[i] {
			h, hyb = 2, molecule.HybridSP3
		}
		_, err := m.AddAtom("C", molecule.WithHydrogens(h), molecule.WithHybridization(hyb))
		require.NoError(t, err)
	}
	for _, b := range bonds {
		_, err := m.AddBond(b[0], b[1], molecule.BondOrder(b[2]))
		require.NoError(t, err)
	}

	return m
}

const (
	sgl = int(molecule.OrderSingle)
	dbl = int(molecule.OrderDouble)
)

// naphthaleneShifted has its fusion bond single and ring {0,1,2,3,4,9}
// holding only two of its atoms' double bonds.
func naphthaleneShifted(t *testing.T) *molecule.Molecule {
	return manual(t, 10, nil, [][3]int{
		{0, 1, dbl}, {1, 2, sgl}, {2, 3, dbl}, {3, 4, sgl}, {4, 5, dbl},
		{5, 6, sgl}, {6, 7, dbl}, {7, 8, sgl}, {8, 9, dbl}, {9, 0, sgl}, {4, 9, sgl},
	})
}

func aromaticCount(res *aromaticity.Result) int {
	n := 0
	for _, a := range res.Aromatic {
		if a {
			n++
		}
	}

	return n
}

func TestHuckel(t *testing.T) {
	t.Parallel()

	for n, want := range map[int]bool{0: false, 2: true, 4: false, 6: true, 8: false, 10: true, 14: true, 1: false} {
		assert.Equal(t, want, aromaticity.Huckel(n), "n=%d", n)
	}
}

func TestPiElectrons(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		cons   builder.Constructor
		opts   []builder.BuilderOption
		want   int
		wantOK bool
	}{
		{"benzene", builder.Benzene(), nil, 6, true},
		{"benzene delocalized", builder.Benzene(), []builder.BuilderOption{builder.WithAromatic()}, 6, true},
		{"pyridine delocalized", builder.Pyridine(), []builder.BuilderOption{builder.WithAromatic()}, 6, true},
		{"pyrrole", builder.Pyrrole(), nil, 6, true},
		{"pyrrole delocalized", builder.Pyrrole(), []builder.BuilderOption{builder.WithAromatic()}, 6, true},
		{"furan", builder.Furan(), nil, 6, true},
		{"thiophene delocalized", builder.Thiophene(), []builder.BuilderOption{builder.WithAromatic()}, 6, true},
		{"cyclobutadiene", builder.Cyclobutadiene(), nil, 4, true},
		{"cyclopentadienide", builder.CyclopentadienylAnion(), nil, 6, true},
		{"tropylium", builder.Tropylium(), nil, 6, true},
		{"cyclohexane", builder.Cyclohexane(), nil, 0, false},
		{"quinone", builder.Quinone(), nil, 0, false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := mustBuild(t, tc.opts, tc.cons)
			r, ok := ringfinder.SmallestRingThrough(m, 1)
			require.True(t, ok)
			got, gotOK := aromaticity.PiElectrons(m, r)
			assert.Equal(t, tc.wantOK, gotOK)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIsAromatic_HuckelBoundary(t *testing.T) {
	t.Parallel()

	four := mustBuild(t, nil, builder.Cyclobutadiene())
	r4, ok := ringfinder.SmallestRingThrough(four, 0)
	require.True(t, ok)
	assert.False(t, aromaticity.IsAromatic(four, r4), "4 π electrons")

	six := mustBuild(t, nil, builder.Benzene())
	r6, ok := ringfinder.SmallestRingThrough(six, 0)
	require.True(t, ok)
	assert.True(t, aromaticity.IsAromatic(six, r6), "6 π electrons")
}

func TestIsAromatic_SP3Carbon(t *testing.T) {
	t.Parallel()

	// cyclohexa-1,3-diene: atoms 4 and 5 are sp3
	m := manual(t, 6, []int{4, 5}, [][3]int{
		{0, 1, dbl}, {1, 2, sgl}, {2, 3, dbl}, {3, 4, sgl}, {4, 5, sgl}, {5, 0, sgl},
	})
	r, err := ring.New(m, []int{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)
	_, ok := aromaticity.PiElectrons(m, r)
	assert.False(t, ok)
	assert.False(t, aromaticity.IsAromatic(m, r))

	res, err := aromaticity.Detect(m)
	require.NoError(t, err)
	assert.Equal(t, []bool{false}, res.Aromatic)
	for _, a := range m.Atoms() {
		assert.False(t, a.Aromatic)
	}
}

func TestDetect_Molecules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		cons         []builder.Constructor
		wantRings    int
		wantAromatic int
	}{
		{"benzene", []builder.Constructor{builder.Benzene()}, 1, 1},
		{"pyridine", []builder.Constructor{builder.Pyridine()}, 1, 1},
		{"pyrrole", []builder.Constructor{builder.Pyrrole()}, 1, 1},
		{"furan", []builder.Constructor{builder.Furan()}, 1, 1},
		{"thiophene", []builder.Constructor{builder.Thiophene()}, 1, 1},
		{"naphthalene", []builder.Constructor{builder.Naphthalene()}, 2, 2},
		{"anthracene", []builder.Constructor{builder.Anthracene()}, 3, 3},
		{"phenanthrene", []builder.Constructor{builder.Phenanthrene()}, 3, 3},
		{"indole", []builder.Constructor{builder.Indole()}, 2, 2},
		{"carbazole", []builder.Constructor{builder.Carbazole()}, 3, 3},
		{"dibenzofuran", []builder.Constructor{builder.Dibenzofuran()}, 3, 3},
		{"fluorene", []builder.Constructor{builder.Fluorene()}, 3, 2},
		{"biphenyl", []builder.Constructor{builder.Biphenyl()}, 2, 2},
		{"cyclobutadiene", []builder.Constructor{builder.Cyclobutadiene()}, 1, 0},
		{"cyclohexane", []builder.Constructor{builder.Cyclohexane()}, 1, 0},
		{"quinone", []builder.Constructor{builder.Quinone()}, 1, 0},
		{"tropylium", []builder.Constructor{builder.Tropylium()}, 1, 1},
		{"hexane", []builder.Constructor{builder.Chain(6)}, 0, 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := mustBuild(t, nil, tc.cons...)
			res, err := aromaticity.Detect(m)
			require.NoError(t, err)
			assert.Equal(t, tc.wantRings, res.Rings.Len())
			assert.Equal(t, tc.wantAromatic, aromaticCount(res))
			for _, r := range res.AromaticRings() {
				for _, a := range r.Atoms {
					assert.True(t, m.Atom(a).Aromatic, "atom %d", a)
				}
				for _, b := range r.Bonds {
					assert.True(t, m.Bond(b).Aromatic, "bond %d", b)
				}
			}
		})
	}
}

func TestDetect_MethylNotFlagged(t *testing.T) {
	t.Parallel()

	m := mustBuild(t, nil, builder.Toluene())
	_, err := aromaticity.Detect(m)
	require.NoError(t, err)
	assert.True(t, m.Atom(0).Aromatic)
	assert.False(t, m.Atom(6).Aromatic)
	assert.False(t, m.Bond(m.BondBetween(0, 6)).Aromatic)
}

func TestDetect_FixedPoint(t *testing.T) {
	t.Parallel()

	m := naphthaleneShifted(t)
	left, err := ring.New(m, []int{0, 1, 2, 3, 4, 9})
	require.NoError(t, err)
	_, ok := aromaticity.PiElectrons(m, left)
	require.False(t, ok, "atoms 4 and 9 carry their double bonds outside the left ring")

	res, err := aromaticity.Detect(m)
	require.NoError(t, err)
	assert.Equal(t, 2, aromaticCount(res))
	assert.Equal(t, 3, res.Passes)
	assert.True(t, aromaticity.IsAromatic(m, left), "flags from the right ring complete the count")

	single := naphthaleneShifted(t)
	res, err = aromaticity.Detect(single, aromaticity.WithMaxPasses(1))
	require.NoError(t, err)
	assert.Equal(t, 1, aromaticCount(res))
}

func TestDetect_Idempotent(t *testing.T) {
	t.Parallel()

	m := mustBuild(t, nil, builder.Carbazole(), builder.Toluene(), builder.Cyclohexane())
	_, err := aromaticity.Detect(m)
	require.NoError(t, err)
	first := m.Clone()

	_, err = aromaticity.Detect(m)
	require.NoError(t, err)
	for i, a := range m.Atoms() {
		assert.Equal(t, first.Atom(i).Aromatic, a.Aromatic, "atom %d", i)
	}
	for i, b := range m.Bonds() {
		assert.Equal(t, first.Bond(i).Aromatic, b.Aromatic, "bond %d", i)
	}
}

func TestDetect_ClearsStaleFlags(t *testing.T) {
	t.Parallel()

	m := mustBuild(t, nil, builder.Cyclohexane())
	for _, a := range m.Atoms() {
		a.Aromatic = true
	}
	_, err := aromaticity.Detect(m)
	require.NoError(t, err)
	for _, a := range m.Atoms() {
		assert.False(t, a.Aromatic)
	}
}

func TestDetect_DryRun(t *testing.T) {
	t.Parallel()

	m := mustBuild(t, nil, builder.Benzene())
	res, err := aromaticity.Detect(m, aromaticity.WithDryRun())
	require.NoError(t, err)
	assert.Equal(t, 1, aromaticCount(res))
	assert.Equal(t, m.AtomCount()+m.BondCount(), res.Changes.Len())
	for _, a := range m.Atoms() {
		assert.False(t, a.Aromatic, "dry run writes nothing")
	}

	require.NoError(t, res.Changes.Apply(m))
	assert.True(t, m.Atom(0).Aromatic)
}

func TestDetect_Strict(t *testing.T) {
	t.Parallel()

	// pyridine N-oxide written with an N=O double bond
	oxide := mustBuild(t, nil, builder.Pyridine())
	o, err := oxide.AddAtom("O", molecule.WithLonePairs(2))
	require.NoError(t, err)
	_, err = oxide.AddBond(0, o, molecule.OrderDouble)
	require.NoError(t, err)

	res, err := aromaticity.Detect(oxide.Clone())
	require.NoError(t, err)
	assert.Equal(t, 1, aromaticCount(res), "the count alone accepts the ring")

	res, err = aromaticity.Detect(oxide, aromaticity.WithModel(aromaticity.ModelStrict))
	require.NoError(t, err)
	assert.Equal(t, 0, aromaticCount(res), "sprouted N=O disqualifies the system")
	assert.True(t, aromaticity.HasSproutedBond(oxide, res.Systems[0]))

	for name, cons := range map[string]builder.Constructor{
		"pyrrole":           builder.Pyrrole(),
		"furan":             builder.Furan(),
		"cyclopentadienide": builder.CyclopentadienylAnion(),
		"naphthalene":       builder.Naphthalene(),
	} {
		m := mustBuild(t, nil, cons)
		res, err := aromaticity.Detect(m, aromaticity.WithModel(aromaticity.ModelStrict))
		require.NoError(t, err, name)
		assert.Equal(t, res.Rings.Len(), aromaticCount(res), name)
	}

	shifted := naphthaleneShifted(t)
	res, err = aromaticity.Detect(shifted, aromaticity.WithModel(aromaticity.ModelStrict))
	require.NoError(t, err)
	assert.Equal(t, 2, aromaticCount(res))
}

func TestIsAromaticStrict(t *testing.T) {
	t.Parallel()

	m := mustBuild(t, nil, builder.Toluene())
	res, err := aromaticity.Detect(m, aromaticity.WithDryRun())
	require.NoError(t, err)
	require.Len(t, res.Systems, 1)
	assert.False(t, aromaticity.HasSproutedBond(m, res.Systems[0]))
	assert.True(t, aromaticity.IsAromaticStrict(m, res.Systems[0], res.Rings.Ring(0)))
}

func TestDetect_Errors(t *testing.T) {
	t.Parallel()

	_, err := aromaticity.Detect(nil)
	assert.ErrorIs(t, err, molecule.ErrNilMolecule)

	_, err = aromaticity.Detect(mustBuild(t, nil, builder.Benzene()), aromaticity.WithMaxPasses(0))
	assert.ErrorIs(t, err, aromaticity.ErrMaxPasses)
}

func TestParseModel(t *testing.T) {
	t.Parallel()

	m, err := aromaticity.ParseModel("huckel")
	require.NoError(t, err)
	assert.Equal(t, aromaticity.ModelHuckel, m)

	m, err = aromaticity.ParseModel(" Strict ")
	require.NoError(t, err)
	assert.Equal(t, aromaticity.ModelStrict, m)

	_, err = aromaticity.ParseModel("baird")
	assert.ErrorIs(t, err, aromaticity.ErrUnknownModel)
	assert.Equal(t, "strict", aromaticity.ModelStrict.String())
}

func TestDetect_StrictLonePairHybridization(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		hyb  molecule.Hybridization
		want int
	}{
		{molecule.HybridSP2, 1},
		{molecule.HybridSP3, 1},
		{molecule.HybridSP1, 0},
	} {
		m := mustBuild(t, nil, builder.Pyrrole())
		m.Atom(0).Hybridization = tc.hyb
		res, err := aromaticity.Detect(m, aromaticity.WithModel(aromaticity.ModelStrict))
		require.NoError(t, err)
		assert.Equal(t, tc.want, aromaticCount(res), tc.hyb.String())
	}
}

func TestLonePairDonor(t *testing.T) {
	t.Parallel()

	pyrrole := mustBuild(t, nil, builder.Pyrrole())
	assert.True(t, aromaticity.LonePairDonor(pyrrole, 0))
	assert.False(t, aromaticity.LonePairDonor(pyrrole, 1), "carbon")

	// N-methyl: three heavy neighbours, no hydrogen
	pyrrole.Atom(0).ImplicitHydrogens = 0
	c, err := pyrrole.AddAtom("C", molecule.WithHybridization(molecule.HybridSP3), molecule.WithHydrogens(3))
	require.NoError(t, err)
	_, err = pyrrole.AddBond(0, c, molecule.OrderSingle)
	require.NoError(t, err)
	assert.True(t, aromaticity.LonePairDonor(pyrrole, 0))

	pyridine := mustBuild(t, nil, builder.Pyridine())
	assert.False(t, aromaticity.LonePairDonor(pyridine, 0), "pyridine N keeps a π bond")
	assert.True(t, aromaticity.LonePairDonor(mustBuild(t, nil, builder.Furan()), 0))
}
