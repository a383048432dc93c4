package kekule_test

import (
	"fmt"

	"github.com/katalvlaran/lvlchem/builder"
	"github.com/katalvlaran/lvlchem/kekule"
	"github.com/katalvlaran/lvlchem/molecule"
)

func ExampleKekulize() {
	m, err := builder.Build([]builder.BuilderOption{builder.WithAromatic()}, builder.Naphthalene())
	if err != nil {
		fmt.Println(err)
		return
	}
	res, err := kekule.Kekulize(m)
	if err != nil {
		fmt.Println(err)
		return
	}

	n := 0
	for _, b := range m.Bonds() {
		if b.Order == molecule.OrderDouble {
			n++
		}
	}
	fmt.Println(res.Systems[0].Topology, res.Kekulized(), n)
	// Output: 66 1 5
}
