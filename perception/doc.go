// Package perception chains the ring finder, the isolated-system partitioner,
// the aromaticity classifier and, optionally, Hückel orbitals and
// Kekulization into one call.
//
// Order of stages in Perceive:
//
//  1. MarkRings: InRing flags on every atom and bond lying on a cycle.
//  2. aromaticity.Detect with the configured model and pass limit.
//  3. orbital.Analyze when [orbital] enabled = true.
//  4. kekule.Kekulize when [kekule] enabled = true.
//
// Configuration is read from TOML:
//
//	[aromaticity]
//	model = "strict"   # or "huckel"
//	max_passes = 8
//
//	[kekule]
//	enabled = true
//
//	[orbital]
//	enabled = true
//	heteroatoms = false
//
//	[log]
//	level = "debug"
package perception
