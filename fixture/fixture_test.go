package fixture_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlchem/builder"
	"github.com/katalvlaran/lvlchem/fixture"
	"github.com/katalvlaran/lvlchem/molecule"
)

func TestLoad_Pyrrole(t *testing.T) {
	t.Parallel()

	ms, err := fixture.Load(filepath.Join("testdata", "pyrrole.yaml"))
	require.NoError(t, err)
	require.Len(t, ms, 1)

	m := ms[0]
	assert.Equal(t, "pyrrole", m.Name)
	assert.Equal(t, 5, m.AtomCount())
	assert.Equal(t, 5, m.BondCount())

	n := m.Atom(0)
	assert.Equal(t, "N", n.Symbol)
	assert.Equal(t, 7, n.AtomicNumber)
	assert.Equal(t, molecule.HybridSP2, n.Hybridization)
	assert.Equal(t, 1, n.ImplicitHydrogens)
	assert.Equal(t, 1, n.LonePairs)
	assert.Equal(t, molecule.OrderDouble, m.Bond(1).Order)
	assert.Equal(t, 4, m.Bond(4).Begin)
}

func TestLoad_Stream(t *testing.T) {
	t.Parallel()

	ms, err := fixture.Load(filepath.Join("testdata", "stream.yaml"))
	require.NoError(t, err)
	require.Len(t, ms, 2)

	assert.Equal(t, "benzene", ms[0].Name)
	for _, b := range ms[0].Bonds() {
		assert.Equal(t, molecule.OrderAromatic, b.Order)
		assert.True(t, b.Aromatic)
	}
	assert.Equal(t, "propane", ms[1].Name)
	assert.Equal(t, molecule.OrderSingle, ms[1].Bond(0).Order)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	for name, opts := range map[string][]builder.BuilderOption{
		"kekule":      {builder.WithName("indole")},
		"delocalized": {builder.WithName("indole"), builder.WithAromatic()},
	} {
		in, err := builder.Build(opts, builder.Indole())
		require.NoError(t, err, name)
		in.Atom(0).InRing = true
		in.Bond(0).InRing = true

		var buf bytes.Buffer
		require.NoError(t, fixture.Encode(&buf, in), name)

		out, err := fixture.Decode(&buf)
		require.NoError(t, err, name)
		require.Len(t, out, 1, name)

		assert.Equal(t, in.Name, out[0].Name, name)
		assert.Empty(t, cmp.Diff(in.Atoms(), out[0].Atoms()), name)
		assert.Empty(t, cmp.Diff(in.Bonds(), out[0].Bonds()), name)
	}
}

func TestEncode_Stream(t *testing.T) {
	t.Parallel()

	a, err := builder.Build([]builder.BuilderOption{builder.WithName("furan")}, builder.Furan())
	require.NoError(t, err)
	b, err := builder.Build([]builder.BuilderOption{builder.WithName("hexane")}, builder.Chain(6))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, fixture.Encode(&buf, a, b))
	assert.Contains(t, buf.String(), "---")
	assert.Contains(t, buf.String(), "name: hexane")
	assert.Contains(t, buf.String(), "order: double")

	ms, err := fixture.Decode(&buf)
	require.NoError(t, err)
	assert.Len(t, ms, 2)

	assert.ErrorIs(t, fixture.Encode(&buf, nil), molecule.ErrNilMolecule)
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"empty stream": "",
		"empty symbol": "atoms:\n  - {symbol: \"\"}\n",
		"bad order":    "atoms:\n  - {symbol: C}\n  - {symbol: C}\nbonds:\n  - {begin: 0, end: 1, order: sextuple}\n",
		"bad hybrid":   "atoms:\n  - {symbol: C, hybridization: sp9}\n",
		"negative h":   "atoms:\n  - {symbol: C, hydrogens: -1}\n",
		"self bond":    "atoms:\n  - {symbol: C}\nbonds:\n  - {begin: 0, end: 0, order: single}\n",
		"duplicate":    "atoms:\n  - {symbol: C}\n  - {symbol: C}\nbonds:\n  - {begin: 0, end: 1, order: single}\n  - {begin: 1, end: 0, order: single}\n",
	}
	for name, doc := range cases {
		_, err := fixture.Decode(strings.NewReader(doc))
		assert.ErrorIs(t, err, fixture.ErrSchema, name)
	}

	_, err := fixture.Load(filepath.Join("testdata", "dangling.yaml"))
	assert.ErrorIs(t, err, fixture.ErrSchema)

	_, err = fixture.Decode(strings.NewReader("atoms:\n  - {symbol: C, colour: red}\n"))
	require.Error(t, err, "unknown fields are rejected")
	assert.NotErrorIs(t, err, fixture.ErrSchema)

	_, err = fixture.Load(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)
}
