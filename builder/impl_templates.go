// SPDX-License-Identifier: MIT
// Package: lvlchem/builder
//
// impl_templates.go — named ring templates (benzene, heteroaromatics, fused
// systems, charged rings, quinone).
//
// Contract:
//   • Every template is stored in its Kekulé form; delocalizable bonds are
//     marked and become OrderAromatic under WithAromatic.
//   • Local indices are offset by the atoms already present in m.
//   • Atom order is documented per template so tests can address atoms.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlchem/molecule"
)

type atomSpec struct {
	symbol string
	h      int
	lp     int
	charge int
	hyb    molecule.Hybridization
}

type bondSpec struct {
	a, b  int
	order molecule.BondOrder
	deloc bool
}

type template struct {
	name  string
	atoms []atomSpec
	bonds []bondSpec
}

const (
	sgl = molecule.OrderSingle
	dbl = molecule.OrderDouble
)

func aromaticC(h int) atomSpec { return atomSpec{symbol: "C", h: h, hyb: molecule.HybridSP2} }

// carbons returns n sp2 carbons; atoms listed in fused are bridgeheads (H0).
func carbons(n int, fused ...int) []atomSpec {
	out := make([]atomSpec, n)
	for i := range out {
		out[i] = aromaticC(1)
	}
	for _, f := range fused {
		out[f].h = 0
	}

	return out
}

// cyclic emits bonds i -> i+1 (mod n) with the given orders, all delocalizable.
func cyclic(orders ...molecule.BondOrder) []bondSpec {
	n := len(orders)
	out := make([]bondSpec, n)
	for i, o := range orders {
		out[i] = bondSpec{a: i, b: (i + 1) % n, order: o, deloc: true}
	}

	return out
}

// place appends t to m honouring cfg.aromatic.
func (t template) place(m *molecule.Molecule, cfg builderConfig) error {
	offset := m.AtomCount()
	aromaticAtom := make([]bool, len(t.atoms))
	if cfg.aromatic {
		for _, b := range t.bonds {
			if b.deloc {
				aromaticAtom[b.a], aromaticAtom[b.b] = true, true
			}
		}
	}

	for i, a := range t.atoms {
		opts := []molecule.AtomOption{
			molecule.WithHybridization(a.hyb),
			molecule.WithHydrogens(a.h),
			molecule.WithLonePairs(a.lp),
			molecule.WithCharge(a.charge),
		}
		if aromaticAtom[i] {
			opts = append(opts, molecule.WithAtomAromatic())
		}
		if _, err := m.AddAtom(a.symbol, opts...); err != nil {
			return fmt.Errorf("%s %s: atom %d: %w", methodTemplate, t.name, i, err)
		}
	}
	for _, b := range t.bonds {
		order := b.order
		var opts []molecule.BondOption
		if cfg.aromatic && b.deloc {
			order = molecule.OrderAromatic
			opts = append(opts, molecule.WithBondAromatic())
		}
		if _, err := m.AddBond(offset+b.a, offset+b.b, order, opts...); err != nil {
			return fmt.Errorf("%s %s: %w", methodTemplate, t.name, err)
		}
	}

	return nil
}

func (t template) constructor() Constructor {
	return func(m *molecule.Molecule, cfg builderConfig) error {
		return t.place(m, cfg)
	}
}

// Benzene: atoms 0..5, bonds i -> i+1, 0=1 double.
func Benzene() Constructor {
	return template{name: "benzene", atoms: carbons(6), bonds: cyclic(dbl, sgl, dbl, sgl, dbl, sgl)}.constructor()
}

// Pyridine: benzene with N at position 0 (one lone pair, no H).
func Pyridine() Constructor {
	atoms := carbons(6)
	atoms[0] = atomSpec{symbol: "N", lp: 1, hyb: molecule.HybridSP2}

	return template{name: "pyridine", atoms: atoms, bonds: cyclic(dbl, sgl, dbl, sgl, dbl, sgl)}.constructor()
}

// fivePyrrole returns the 5-ring template with heteroatom het at position 0
// and the diene 1=2, 3=4.
func fivePyrrole(name string, het atomSpec) template {
	atoms := carbons(5)
	atoms[0] = het

	return template{name: name, atoms: atoms, bonds: cyclic(sgl, dbl, sgl, dbl, sgl)}
}

// Pyrrole: N-H at position 0, doubles 1=2 and 3=4.
func Pyrrole() Constructor {
	return fivePyrrole("pyrrole", atomSpec{symbol: "N", h: 1, lp: 1, hyb: molecule.HybridSP2}).constructor()
}

// Furan: O at position 0.
func Furan() Constructor {
	return fivePyrrole("furan", atomSpec{symbol: "O", lp: 2, hyb: molecule.HybridSP2}).constructor()
}

// Thiophene: S at position 0.
func Thiophene() Constructor {
	return fivePyrrole("thiophene", atomSpec{symbol: "S", lp: 2, hyb: molecule.HybridSP2}).constructor()
}

// Naphthalene: rings {0,1,2,3,4,9} and {4,5,6,7,8,9}; fusion bond 4=9.
func Naphthalene() Constructor {
	bonds := cyclic(dbl, sgl, dbl, sgl, sgl, dbl, sgl, dbl, sgl, sgl)
	bonds = append(bonds, bondSpec{a: 4, b: 9, order: dbl, deloc: true})

	return template{name: "naphthalene", atoms: carbons(10, 4, 9), bonds: bonds}.constructor()
}

// Anthracene: rings {0,1,2,3,4,13}, {4,5,6,11,12,13} and {6,7,8,9,10,11};
// fusion bonds 4=13 and 6-11.
func Anthracene() Constructor {
	bonds := []bondSpec{
		{0, 1, dbl, true}, {1, 2, sgl, true}, {2, 3, dbl, true}, {3, 4, sgl, true}, {4, 13, dbl, true}, {13, 0, sgl, true},
		{4, 5, sgl, true}, {5, 6, dbl, true}, {6, 11, sgl, true}, {11, 12, dbl, true}, {12, 13, sgl, true},
		{6, 7, sgl, true}, {7, 8, dbl, true}, {8, 9, sgl, true}, {9, 10, dbl, true}, {10, 11, sgl, true},
	}

	return template{name: "anthracene", atoms: carbons(14, 4, 6, 11, 13), bonds: bonds}.constructor()
}

// Phenanthrene: rings {0,1,2,3,4,5}, {4,6,7,8,9,5} and {6,7,10,11,12,13};
// fusion bonds 4=5 and 6=7.
func Phenanthrene() Constructor {
	bonds := []bondSpec{
		{0, 1, dbl, true}, {1, 2, sgl, true}, {2, 3, dbl, true}, {3, 4, sgl, true}, {4, 5, dbl, true}, {5, 0, sgl, true},
		{4, 6, sgl, true}, {6, 7, dbl, true}, {7, 8, sgl, true}, {8, 9, dbl, true}, {9, 5, sgl, true},
		{7, 10, sgl, true}, {10, 11, dbl, true}, {11, 12, sgl, true}, {12, 13, dbl, true}, {13, 6, sgl, true},
	}

	return template{name: "phenanthrene", atoms: carbons(14, 4, 5, 6, 7), bonds: bonds}.constructor()
}

// Indole: N-H at 0; 5-ring {0,1,2,3,8}, 6-ring {3,4,5,6,7,8}; fusion bond 3=8.
func Indole() Constructor {
	atoms := carbons(9, 3, 8)
	atoms[0] = atomSpec{symbol: "N", h: 1, lp: 1, hyb: molecule.HybridSP2}
	bonds := []bondSpec{
		{0, 1, sgl, true}, {1, 2, dbl, true}, {2, 3, sgl, true}, {3, 4, sgl, true}, {4, 5, dbl, true},
		{5, 6, sgl, true}, {6, 7, dbl, true}, {7, 8, sgl, true}, {8, 0, sgl, true}, {3, 8, dbl, true},
	}

	return template{name: "indole", atoms: atoms, bonds: bonds}.constructor()
}

// carbazoleLike returns the 566 skeleton with het at 0: 5-ring {0,1,2,3,4},
// rings {1,2,5,6,7,8} and {3,4,9,10,11,12}.
func carbazoleLike(name string, het atomSpec, hetDeloc bool) template {
	atoms := carbons(13, 1, 2, 3, 4)
	atoms[0] = het
	bonds := []bondSpec{
		{0, 1, sgl, hetDeloc}, {1, 2, dbl, true}, {2, 3, sgl, true}, {3, 4, dbl, true}, {4, 0, sgl, hetDeloc},
		{2, 5, sgl, true}, {5, 6, dbl, true}, {6, 7, sgl, true}, {7, 8, dbl, true}, {8, 1, sgl, true},
		{3, 12, sgl, true}, {12, 11, dbl, true}, {11, 10, sgl, true}, {10, 9, dbl, true}, {9, 4, sgl, true},
	}

	return template{name: name, atoms: atoms, bonds: bonds}
}

// Carbazole: N-H at 0 on the 566 skeleton.
func Carbazole() Constructor {
	return carbazoleLike("carbazole", atomSpec{symbol: "N", h: 1, lp: 1, hyb: molecule.HybridSP2}, true).constructor()
}

// Dibenzofuran: O at 0 on the 566 skeleton.
func Dibenzofuran() Constructor {
	return carbazoleLike("dibenzofuran", atomSpec{symbol: "O", lp: 2, hyb: molecule.HybridSP2}, true).constructor()
}

// Fluorene: sp3 CH2 at 0 on the 566 skeleton; only the two 6-rings delocalize.
func Fluorene() Constructor {
	return carbazoleLike("fluorene", atomSpec{symbol: "C", h: 2, hyb: molecule.HybridSP3}, false).constructor()
}

// CyclopentadienylAnion: C5 ring with charge -1 on atom 0, doubles 1=2, 3=4.
func CyclopentadienylAnion() Constructor {
	atoms := carbons(5)
	atoms[0].charge = -1

	return template{name: "cyclopentadienide", atoms: atoms, bonds: cyclic(sgl, dbl, sgl, dbl, sgl)}.constructor()
}

// Tropylium: C7 ring with charge +1 on atom 0, doubles 1=2, 3=4, 5=6.
func Tropylium() Constructor {
	atoms := carbons(7)
	atoms[0].charge = 1

	return template{name: "tropylium", atoms: atoms, bonds: cyclic(sgl, dbl, sgl, dbl, sgl, dbl, sgl)}.constructor()
}

// Cyclobutadiene: antiaromatic C4 ring, 0=1 and 2=3. Never delocalized.
func Cyclobutadiene() Constructor {
	bonds := cyclic(dbl, sgl, dbl, sgl)
	for i := range bonds {
		bonds[i].deloc = false
	}

	return template{name: "cyclobutadiene", atoms: carbons(4), bonds: bonds}.constructor()
}

// Toluene: benzene 0..5 with a methyl carbon 6 on atom 0.
func Toluene() Constructor {
	atoms := append(carbons(6, 0), atomSpec{symbol: "C", h: 3, hyb: molecule.HybridSP3})
	bonds := append(cyclic(dbl, sgl, dbl, sgl, dbl, sgl), bondSpec{a: 0, b: 6, order: sgl})

	return template{name: "toluene", atoms: atoms, bonds: bonds}.constructor()
}

// Quinone: p-benzoquinone; ring 0..5 with exocyclic 0=6 and 3=7 (oxygens),
// ring doubles 1=2 and 4=5. Never delocalized.
func Quinone() Constructor {
	atoms := append(carbons(6, 0, 3),
		atomSpec{symbol: "O", lp: 2, hyb: molecule.HybridSP2},
		atomSpec{symbol: "O", lp: 2, hyb: molecule.HybridSP2},
	)
	bonds := cyclic(sgl, dbl, sgl, sgl, dbl, sgl)
	bonds = append(bonds, bondSpec{a: 0, b: 6, order: dbl}, bondSpec{a: 3, b: 7, order: dbl})
	for i := range bonds {
		bonds[i].deloc = false
	}

	return template{name: "quinone", atoms: atoms, bonds: bonds}.constructor()
}

// Biphenyl: two benzenes (0..5, 6..11) joined by the single bond 0-6.
func Biphenyl() Constructor {
	return func(m *molecule.Molecule, cfg builderConfig) error {
		offset := m.AtomCount()
		for _, c := range []Constructor{Benzene(), Benzene(), Link(offset, offset+6, molecule.OrderSingle)} {
			if err := c(m, cfg); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cyclohexane: Cycle(6, "C").
func Cyclohexane() Constructor { return Cycle(6, "C") }
