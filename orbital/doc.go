// Package orbital computes Hückel molecular orbitals of conjugated ring
// systems.
//
// Orbital energies are reported as x in E = α + x·β. β is negative, so
// x > 0 is bonding, x = 0 nonbonding and x < 0 antibonding. Orbitals are
// listed from the most bonding down and filled two electrons at a time;
// a degenerate shell that cannot be filled completely shares its electrons
// evenly and leaves the spectrum open-shell.
//
// For a monocyclic annulene the closed-shell condition is the orbital
// picture of the 4n+2 rule: benzene (6 electrons) closes its shell,
// cyclobutadiene (4 electrons) half-fills a degenerate pair.
//
//	m, _ := builder.Build(nil, builder.Benzene())
//	spectra, _ := orbital.Analyze(m)
//	fmt.Println(spectra[0].PiEnergy, spectra[0].ClosedShell) // 8 true
package orbital
