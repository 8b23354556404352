package properties_test

import (
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/dd0wney/parageon/pkg/properties"
)

// TestAddRemoveIsIdempotent property-tests spec §8's law "adding then
// removing a property restores the column schema", the way the
// teacher's TestGraphInvariants drives storage invariants with gopter.
func TestAddRemoveIsIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties_ := gopter.NewProperties(parameters)

	properties_.Property("add then remove restores the column schema", prop.ForAll(
		func(name string, values []uint32) bool {
			if name == "" {
				return true
			}
			table := properties.NewTable(len(values))
			before := append([]string{}, table.Names()...)

			if err := table.AddProperties(properties.NewColumn(name, values)); err != nil {
				return true // unrelated construction failure, not a law violation
			}
			if err := table.RemoveProperty(name); err != nil {
				return false
			}

			after := append([]string{}, table.Names()...)
			sort.Strings(before)
			sort.Strings(after)
			if len(before) != len(after) {
				return false
			}
			for i := range before {
				if before[i] != after[i] {
					return false
				}
			}
			return true
		},
		gen.AlphaString(),
		gen.SliceOf(gen.UInt32()),
	))

	properties_.TestingRun(t)
}
