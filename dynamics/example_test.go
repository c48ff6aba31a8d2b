package dynamics_test

import (
	"fmt"

	"github.com/pthm-cable/hawkdove/dynamics"
)

func ExampleSimulateTwoStrategy() {
	tr, err := dynamics.SimulateTwoStrategy(1.0/3, 100000, 3, 1, 3)
	if err != nil {
		fmt.Println(err)
		return
	}
	final := tr.Final()
	fmt.Printf("entries=%d hawks=%.4f doves=%.4f\n", tr.Len(), final[0], final[1])
	// Output: entries=100001 hawks=0.3333 doves=0.6667
}

func ExampleSimulateThreeStrategy() {
	_, err := dynamics.SimulateThreeStrategy(0.5, 0.6, 100, 2, 1, 3)
	fmt.Println(err)
	// Output: sum of 2 proportions must be less than 1, to allow for the Bourgeois proportion, not 1.1
}
