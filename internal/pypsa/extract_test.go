package pypsa

import (
	"testing"

	"github.com/GbotemiB/PyPSA-EAPP/internal/compare"
)

func TestDemandIntegratesWeightedLoad(t *testing.T) {
	n := &Network{
		Loads:              []string{"bus0 load", "bus1 load"},
		SnapshotWeightings: []float64{2, 3},
		LoadPSet: [][]float64{
			{100, 200},
			{400, 300},
		},
	}
	// (100+200)*2 + (400+300)*3 = 2700 MWh -> 0.0027 TWh.
	if got := Demand(n); got != 0.0027 {
		t.Fatalf("expected 0.0027, got %v", got)
	}
}

func TestDemandRoundsToFourDecimals(t *testing.T) {
	n := &Network{
		Loads:              []string{"l"},
		SnapshotWeightings: []float64{1},
		LoadPSet:           [][]float64{{123456.789}},
	}
	if got := Demand(n); got != 0.1235 {
		t.Fatalf("expected 0.1235, got %v", got)
	}
}

func TestInstalledCapacityAggregates(t *testing.T) {
	n := &Network{
		Generators: []Component{
			{Name: "coal plant", Carrier: "coal", PNom: 2000},
			{Name: "ccgt plant", Carrier: "CCGT", PNom: 1500},
			{Name: "reactor", Carrier: "nuclear", PNom: 1000},
			{Name: "run of river", Carrier: "ror", PNom: 250},
			{Name: "wind north", Carrier: "onwind", PNom: 800},
			{Name: "wind sea", Carrier: "offwind-ac", PNom: 200},
		},
		StorageUnits: []Component{
			{Name: "dam", Carrier: "hydro", PNom: 750},
			{Name: "pump", Carrier: "PHS", PNom: 400},
		},
	}
	table := InstalledCapacity(n)

	cases := map[string]float64{
		"Nuclear":      1.0,
		"Fossil fuels": 3.5,
		"Hydro":        1.0,
		"PHS":          0.4,
		"Solar":        0.0,
		"Wind":         1.0,
		"Biomass":      0.0,
	}
	for label, want := range cases {
		if got := table.Value(label); got != want {
			t.Fatalf("%s: expected %v, got %v", label, want, got)
		}
	}
}

func TestCapacityRowSetIsFixed(t *testing.T) {
	// An all-solar network still reports every canonical row.
	n := &Network{
		Generators: []Component{{Name: "pv", Carrier: "solar", PNom: 5000}},
	}
	table := InstalledCapacity(n)

	labels := table.Labels()
	if len(labels) != len(compare.CapacityRows) {
		t.Fatalf("expected %d rows, got %d", len(compare.CapacityRows), len(labels))
	}
	for i, label := range compare.CapacityRows {
		if labels[i] != label {
			t.Fatalf("row %d: expected %q, got %q", i, label, labels[i])
		}
	}
	if got := table.Value("Solar"); got != 5.0 {
		t.Fatalf("expected Solar 5.0, got %v", got)
	}
	for _, label := range []string{"Nuclear", "Fossil fuels", "Hydro", "PHS", "Wind", "Biomass"} {
		if got := table.Value(label); got != 0 {
			t.Fatalf("%s: expected zero fill, got %v", label, got)
		}
	}
}

func dispatchNetwork() *Network {
	return &Network{
		Generators: []Component{
			{Name: "ccgt", Carrier: "CCGT"},
			{Name: "coal", Carrier: "coal"},
			{Name: "pv", Carrier: "solar"},
			{Name: "shed", Carrier: "load"},
		},
		StorageUnits: []Component{
			{Name: "dam", Carrier: "hydro"},
		},
		SnapshotWeightings: []float64{2, 2},
		GeneratorDispatch: [][]float64{
			{1e6, 2e6, 5e5, 1e5},
			{1e6, 2e6, 5e5, 1e5},
		},
		StorageDispatch: [][]float64{
			{25e4},
			{25e4},
		},
	}
}

func TestGenerationCoarse(t *testing.T) {
	table := Generation(dispatchNetwork(), false)

	// CCGT: 4e6 MWh -> 4 TWh; coal: 8 TWh.
	if got := table.Value("Fossil fuels"); got != 12 {
		t.Fatalf("expected Fossil fuels 12, got %v", got)
	}
	if got := table.Value("Solar"); got != 2 {
		t.Fatalf("expected Solar 2, got %v", got)
	}
	if got := table.Value("Hydro"); got != 1 {
		t.Fatalf("expected Hydro 1, got %v", got)
	}

	labels := table.Labels()
	if len(labels) != len(compare.GenerationRows) {
		t.Fatalf("expected %d rows, got %d", len(compare.GenerationRows), len(labels))
	}
	for i, label := range compare.GenerationRows {
		if labels[i] != label {
			t.Fatalf("row %d: expected %q, got %q", i, label, labels[i])
		}
	}
}

func TestGenerationDetailed(t *testing.T) {
	table := Generation(dispatchNetwork(), true)

	if got := table.Value("Natural gas"); got != 4 {
		t.Fatalf("expected Natural gas 4, got %v", got)
	}
	if got := table.Value("Coal"); got != 8 {
		t.Fatalf("expected Coal 8, got %v", got)
	}
	if table.Has("Fossil fuels") {
		t.Fatal("detailed table must not carry Fossil fuels")
	}

	labels := table.Labels()
	for i, label := range compare.GenerationRowsDetailed {
		if labels[i] != label {
			t.Fatalf("row %d: expected %q, got %q", i, label, labels[i])
		}
	}
}

func TestGenerationLoadSheddingScaling(t *testing.T) {
	// Raw weighted unserved load: 1e5*2 + 1e5*2 = 4e5 MWh.
	// First conversion: 4e5/1e6 = 0.4; second: 0.4/1e3 = 0.0004.
	table := Generation(dispatchNetwork(), false)
	if got := table.Value("Load shedding"); got != 0.0004 {
		t.Fatalf("expected Load shedding 0.0004, got %v", got)
	}
}

func TestGenerationEmptyNetwork(t *testing.T) {
	table := Generation(&Network{}, false)
	if got := table.Total(); got != 0 {
		t.Fatalf("expected all-zero table, got total %v", got)
	}
	if len(table.Labels()) != len(compare.GenerationRows) {
		t.Fatalf("expected full row set, got %v", table.Labels())
	}
}
