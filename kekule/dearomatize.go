package kekule

import (
	"fmt"

	"github.com/katalvlaran/lvlchem/molecule"
	"github.com/katalvlaran/lvlchem/ring"
)

// Dearomatize assigns single/double orders to one aromatic ring of m and
// clears its aromatic flags.
//
// Returns ErrNotAromatic when a ring atom lacks the aromatic flag. A ring
// that is not a 5- or 6-ring, or has no valid assignment, yields false and
// leaves m unchanged.
func Dearomatize(m *molecule.Molecule, r *ring.Ring) (bool, error) {
	if m == nil {
		return false, molecule.ErrNilMolecule
	}
	if r == nil {
		return false, nil
	}
	if !allAromatic(m, []*ring.Ring{r}, false) {
		return false, fmt.Errorf("kekule: Dearomatize %v: %w", r.Atoms, ErrNotAromatic)
	}
	switch r.Size() {
	case 6:
		return apply(m, []*ring.Ring{r}, Topology6)
	case 5:
		return apply(m, []*ring.Ring{r}, Topology5)
	default:
		return false, nil
	}
}

// Dearomatize666 Kekulizes three fused aromatic 6-rings.
func Dearomatize666(m *molecule.Molecule, rings []*ring.Ring) (bool, error) {
	return dearomatizeAs(m, rings, Topology666)
}

// Dearomatize566 Kekulizes a 5-ring fused between two 6-rings.
func Dearomatize566(m *molecule.Molecule, rings []*ring.Ring) (bool, error) {
	return dearomatizeAs(m, rings, Topology566)
}

// Dearomatize66 Kekulizes two fused aromatic 6-rings.
func Dearomatize66(m *molecule.Molecule, rings []*ring.Ring) (bool, error) {
	return dearomatizeAs(m, rings, Topology66)
}

// Dearomatize56 Kekulizes a 5-ring fused to a 6-ring.
func Dearomatize56(m *molecule.Molecule, rings []*ring.Ring) (bool, error) {
	return dearomatizeAs(m, rings, Topology56)
}

// Dearomatize6 Kekulizes a single aromatic 6-ring given as a one-ring slice.
func Dearomatize6(m *molecule.Molecule, rings []*ring.Ring) (bool, error) {
	return dearomatizeAs(m, rings, Topology6)
}

// Dearomatize5 Kekulizes a single aromatic 5-ring given as a one-ring slice.
func Dearomatize5(m *molecule.Molecule, rings []*ring.Ring) (bool, error) {
	return dearomatizeAs(m, rings, Topology5)
}

// dearomatizeAs is the shared body of the fused entry points. A shape
// mismatch yields false with m unchanged; a ring atom or bond without the
// aromatic flag yields ErrNotAromatic.
func dearomatizeAs(m *molecule.Molecule, rings []*ring.Ring, t Topology) (bool, error) {
	if m == nil {
		return false, molecule.ErrNilMolecule
	}
	if !t.matches(rings) {
		return false, nil
	}
	if !allAromatic(m, rings, true) {
		return false, fmt.Errorf("kekule: Dearomatize%s: %w", t, ErrNotAromatic)
	}

	return apply(m, rings, t)
}

func apply(m *molecule.Molecule, rings []*ring.Ring, t Topology) (bool, error) {
	cs, ok := Plan(m, rings, t)
	if !ok {
		return false, nil
	}
	if err := cs.Apply(m); err != nil {
		return false, fmt.Errorf("kekule: %s: %w", t, err)
	}

	return true, nil
}
