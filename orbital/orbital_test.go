package orbital_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlchem/aromaticity"
	"github.com/katalvlaran/lvlchem/builder"
	"github.com/katalvlaran/lvlchem/molecule"
	"github.com/katalvlaran/lvlchem/orbital"
	"github.com/katalvlaran/lvlchem/partition"
)

const eps = 1e-6

func mustBuild(t *testing.T, cons ...builder.Constructor) *molecule.Molecule {
	t.Helper()
	m, err := builder.Build(nil, cons...)
	require.NoError(t, err)

	return m
}

func energies(s *orbital.Spectrum) []float64 {
	out := make([]float64, len(s.Orbitals))
	for i, o := range s.Orbitals {
		out[i] = o.Energy
	}
	return out
}

func TestAnalyze_Benzene(t *testing.T) {
	t.Parallel()

	spectra, err := orbital.Analyze(mustBuild(t, builder.Benzene()))
	require.NoError(t, err)
	require.Len(t, spectra, 1)

	s := spectra[0]
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, s.Atoms)
	assert.Equal(t, 6, s.Electrons)
	assert.InDeltaSlice(t, []float64{2, 1, 1, -1, -1, -2}, energies(s), eps)
	assert.InDelta(t, 8.0, s.PiEnergy, eps)
	assert.InDelta(t, 2.0, s.Delocalization, eps)
	assert.True(t, s.ClosedShell)
	assert.Equal(t, 2, s.HOMO)
	assert.Equal(t, 3, s.LUMO)
	assert.InDelta(t, 2.0, s.Gap(), eps)

	b, n, a := s.Counts()
	assert.Equal(t, [3]int{3, 0, 3}, [3]int{b, n, a})

	for k, o := range s.Orbitals {
		sum := 0.0
		for _, c := range o.Coefficients {
			sum += c * c
		}
		assert.InDelta(t, 1.0, sum, eps, "orbital %d is normalized", k)
	}
}

func TestAnalyze_Cyclobutadiene(t *testing.T) {
	t.Parallel()

	spectra, err := orbital.Analyze(mustBuild(t, builder.Cyclobutadiene()))
	require.NoError(t, err)

	s := spectra[0]
	assert.InDeltaSlice(t, []float64{2, 0, 0, -2}, energies(s), eps)
	assert.InDelta(t, 4.0, s.PiEnergy, eps)
	assert.InDelta(t, 0.0, s.Delocalization, eps)
	assert.False(t, s.ClosedShell)
	assert.InDelta(t, 1.0, s.Orbitals[1].Occupancy, eps)
	assert.InDelta(t, 1.0, s.Orbitals[2].Occupancy, eps)
	assert.InDelta(t, 0.0, s.Gap(), eps)

	b, n, a := s.Counts()
	assert.Equal(t, [3]int{1, 2, 1}, [3]int{b, n, a})
}

// The closed shell of a monocycle coincides with the 4n+2 count.
func TestAnalyze_ClosedShellMatchesHuckel(t *testing.T) {
	t.Parallel()

	for name, cons := range map[string]builder.Constructor{
		"benzene":           builder.Benzene(),
		"pyrrole":           builder.Pyrrole(),
		"furan":             builder.Furan(),
		"pyridine":          builder.Pyridine(),
		"cyclopentadienide": builder.CyclopentadienylAnion(),
		"tropylium":         builder.Tropylium(),
		"cyclobutadiene":    builder.Cyclobutadiene(),
	} {
		m := mustBuild(t, cons)
		all, _, err := partition.Rings(m)
		require.NoError(t, err, name)
		require.Equal(t, 1, all.Len(), name)

		spectra, err := orbital.Analyze(m)
		require.NoError(t, err, name)
		assert.Equal(t, aromaticity.IsAromatic(m, all.Ring(0)), spectra[0].ClosedShell, name)
	}
}

func TestAnalyze_Naphthalene(t *testing.T) {
	t.Parallel()

	spectra, err := orbital.Analyze(mustBuild(t, builder.Naphthalene()))
	require.NoError(t, err)

	s := spectra[0]
	assert.Equal(t, 10, s.Electrons)
	assert.InDelta(t, 13.683, s.PiEnergy, 1e-3)
	assert.InDelta(t, 1.236, s.Gap(), 1e-3)
	assert.True(t, s.ClosedShell)
}

func TestAnalyze_FluoreneSkipsBridge(t *testing.T) {
	t.Parallel()

	spectra, err := orbital.Analyze(mustBuild(t, builder.Fluorene()))
	require.NoError(t, err)
	require.Len(t, spectra, 1)
	assert.Len(t, spectra[0].Atoms, 12)
	assert.Equal(t, 12, spectra[0].Electrons)
}

func TestAnalyze_Systems(t *testing.T) {
	t.Parallel()

	spectra, err := orbital.Analyze(mustBuild(t, builder.Biphenyl()))
	require.NoError(t, err)
	require.Len(t, spectra, 2)
	for _, s := range spectra {
		assert.InDelta(t, 8.0, s.PiEnergy, eps)
	}

	spectra, err = orbital.Analyze(mustBuild(t, builder.Cyclohexane()))
	require.NoError(t, err)
	require.Len(t, spectra, 1)
	assert.Nil(t, spectra[0])

	spectra, err = orbital.Analyze(mustBuild(t, builder.Chain(5)))
	require.NoError(t, err)
	assert.Empty(t, spectra)

	_, err = orbital.Analyze(nil)
	assert.ErrorIs(t, err, molecule.ErrNilMolecule)
}

func TestSolveRings_Heteroatoms(t *testing.T) {
	t.Parallel()

	m := mustBuild(t, builder.Pyridine())
	all, _, err := partition.Rings(m)
	require.NoError(t, err)

	plain, err := orbital.SolveRings(m, all.Rings())
	require.NoError(t, err)
	param, err := orbital.SolveRings(m, all.Rings(), orbital.WithHeteroatoms())
	require.NoError(t, err)

	assert.InDelta(t, 8.0, plain.PiEnergy, eps)
	assert.Greater(t, param.PiEnergy, plain.PiEnergy, "an electronegative N lowers the occupied levels")
	assert.True(t, param.ClosedShell)
}

func TestSolveRings_NoPiSystem(t *testing.T) {
	t.Parallel()

	m := mustBuild(t, builder.Cyclohexane())
	all, _, err := partition.Rings(m)
	require.NoError(t, err)

	_, err = orbital.SolveRings(m, all.Rings())
	assert.ErrorIs(t, err, orbital.ErrNoPiSystem)
}

func TestSolve(t *testing.T) {
	t.Parallel()

	// butadiene path over four ring carbons of benzene
	m := mustBuild(t, builder.Benzene())
	s, err := orbital.Solve(m, []int{3, 2, 1, 0}, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, s.Atoms)
	phi := (1 + math.Sqrt(5)) / 2
	assert.InDeltaSlice(t, []float64{phi, phi - 1, 1 - phi, -phi}, energies(s), eps)
	assert.InDelta(t, 2*phi+2*(phi-1), s.PiEnergy, eps)

	s, err = orbital.Solve(m, []int{0}, 0)
	require.NoError(t, err)
	assert.Equal(t, -1, s.HOMO)
	assert.Equal(t, 0, s.LUMO)
	assert.Equal(t, 0.0, s.Gap())

	_, err = orbital.Solve(m, m.AtomIndices(), 13)
	assert.ErrorIs(t, err, orbital.ErrElectronCount)

	_, err = orbital.Solve(m, nil, 0)
	assert.ErrorIs(t, err, orbital.ErrNoPiSystem)

	_, err = orbital.Solve(m, m.AtomIndices(), 6, orbital.WithMaxIterations(0))
	assert.Error(t, err)
}
