// Package pypsa reads solved PyPSA network files and extracts the
// simulated capacity, generation and demand figures onto the shared
// comparison taxonomy.
package pypsa

import "fmt"

// Component is a generator or storage unit of the network.
type Component struct {
	Name    string
	Carrier string
	// PNom is the nameplate capacity in MW.
	PNom float64
}

// Network is a loaded simulation result. It is read-only: extractors
// receive it and return freshly built tables.
type Network struct {
	Generators   []Component
	StorageUnits []Component
	Loads        []string

	// SnapshotWeightings is the objective duration weight of each
	// snapshot, used to integrate instantaneous power into energy.
	SnapshotWeightings []float64

	// GeneratorDispatch and StorageDispatch are [snapshot][component]
	// dispatched power series in MW.
	GeneratorDispatch [][]float64
	StorageDispatch   [][]float64

	// LoadPSet is the [snapshot][load] requested demand series in MW.
	LoadPSet [][]float64
}

// Validate checks that the series dimensions agree with the component
// and snapshot counts.
func (n *Network) Validate() error {
	checks := []struct {
		name   string
		series [][]float64
		width  int
	}{
		{"generators_t_p", n.GeneratorDispatch, len(n.Generators)},
		{"storage_units_t_p", n.StorageDispatch, len(n.StorageUnits)},
		{"loads_t_p_set", n.LoadPSet, len(n.Loads)},
	}
	for _, c := range checks {
		if c.series == nil {
			if c.width != 0 {
				return fmt.Errorf("pypsa: %s: series missing for %d components", c.name, c.width)
			}
			continue
		}
		if len(c.series) != len(n.SnapshotWeightings) {
			return fmt.Errorf("pypsa: %s: %d snapshots, %d weightings", c.name, len(c.series), len(n.SnapshotWeightings))
		}
		for i, row := range c.series {
			if len(row) != c.width {
				return fmt.Errorf("pypsa: %s: snapshot %d has %d values, want %d", c.name, i, len(row), c.width)
			}
		}
	}
	return nil
}
