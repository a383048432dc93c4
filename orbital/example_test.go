package orbital_test

import (
	"fmt"

	"github.com/katalvlaran/lvlchem/builder"
	"github.com/katalvlaran/lvlchem/orbital"
)

func ExampleAnalyze() {
	m, _ := builder.Build(nil, builder.Benzene())
	spectra, err := orbital.Analyze(m)
	if err != nil {
		fmt.Println(err)
		return
	}
	s := spectra[0]
	fmt.Printf("E=%.3f DE=%.3f closed=%v\n", s.PiEnergy, s.Delocalization, s.ClosedShell)
	// Output: E=8.000 DE=2.000 closed=true
}
