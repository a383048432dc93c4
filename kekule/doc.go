// Package kekule assigns explicit alternating single/double bond orders to
// aromatic ring systems (Kekulization, de-aromatization).
//
// Supported topologies, tried in this order against an isolated ring system:
//
//	666  three fused 6-rings (anthracene, phenanthrene)
//	566  a 5-ring fused between two 6-rings (carbazole, dibenzofuran)
//	66   two fused 6-rings (naphthalene, quinoline)
//	56   a 5-ring fused to a 6-ring (indole, benzofuran)
//	6    a single 6-ring (benzene, pyridine)
//	5    a single 5-ring (pyrrole, furan, thiophene)
//
// A system matches a topology when its ring count and ring sizes are exactly
// those of the topology and every ring atom and bond is flagged aromatic.
// Systems outside the catalog are left untouched; that is a normal outcome.
//
// Assignment walks each ring once, rings ordered 5-ring first and then
// outwards across fusion bonds. A 5-ring starts at its pyrrole-type atom
// (a lone-pair donor N, O or S, or a carbanion), which keeps two single
// bonds; without one, each atom from the first on is tried in that role.
// A 6-ring starts at its first atom with a double bond. Along the walk a bond
// becomes double when neither end already has one; bonds fixed by an earlier
// ring are kept. When a walk leaves an atom without its double bond, the next
// start atom and direction are tried.
//
// Nothing is written until the whole system has an assignment: the orders
// and cleared aromatic flags are staged in a molecule.Changeset and applied
// in one step, so a failure leaves the molecule as it was.
package kekule
