package aromaticity_test

import (
	"fmt"

	"github.com/katalvlaran/lvlchem/aromaticity"
	"github.com/katalvlaran/lvlchem/builder"
)

func ExampleDetect() {
	m, _ := builder.Build(nil, builder.Fluorene())
	res, err := aromaticity.Detect(m)
	if err != nil {
		fmt.Println(err)
		return
	}
	for i, r := range res.Rings.Rings() {
		fmt.Println(r.Size(), res.Aromatic[i])
	}
	// Unordered output:
	// 5 false
	// 6 true
	// 6 true
}

func ExamplePiElectrons() {
	m, _ := builder.Build(nil, builder.Pyrrole())
	res, _ := aromaticity.Detect(m, aromaticity.WithDryRun())
	n, ok := aromaticity.PiElectrons(m, res.Rings.Ring(0))
	fmt.Println(n, ok, aromaticity.Huckel(n))
	// Output: 6 true true
}
