package pypsa

import (
	"math"

	"github.com/GbotemiB/PyPSA-EAPP/internal/compare"
)

// capacityCarriers are the carriers a pypsa-earth network can dispatch
// or store. Carriers absent from a given network are reported as zero.
var capacityCarriers = []string{
	"nuclear", "coal", "lignite", "CCGT", "OCGT", "hydro", "ror",
	"PHS", "solar", "offwind-ac", "offwind-dc", "onwind", "biomass",
}

// dispatchCarriers additionally carry the load-shedding pseudo
// generator.
var dispatchCarriers = append(append([]string{}, capacityCarriers...), "load")

// carrierNames maps carriers onto the comparison taxonomy where the
// name differs only by convention.
var carrierNames = map[string]string{
	"nuclear": "Nuclear",
	"solar":   "Solar",
	"biomass": "Biomass",
	"load":    "Load shedding",
}

// Demand returns the total requested demand of the network in TWh:
// the load series integrated over the snapshot weightings, rounded to
// four decimals.
func Demand(n *Network) float64 {
	var total float64
	for ti, w := range n.SnapshotWeightings {
		if ti >= len(n.LoadPSet) {
			break
		}
		for _, p := range n.LoadPSet[ti] {
			total += p * w
		}
	}
	return round(total/1e6, 4)
}

// InstalledCapacity returns the nameplate capacity of the network per
// fuel category in GW, restricted to the canonical capacity rows.
func InstalledCapacity(n *Network) *compare.Table {
	sums := make(map[string]float64)
	for _, g := range n.Generators {
		sums[g.Carrier] += g.PNom
	}
	for _, s := range n.StorageUnits {
		sums[s.Carrier] += s.PNom
	}

	values := make(map[string]float64, len(capacityCarriers))
	for _, carrier := range capacityCarriers {
		values[rename(carrier)] = round(sums[carrier]/1e3, 2)
	}
	values["Fossil fuels"] = values["coal"] + values["lignite"] + values["CCGT"] + values["OCGT"]
	values["Hydro"] = values["hydro"] + values["ror"]
	values["Wind"] = values["offwind-ac"] + values["offwind-dc"] + values["onwind"]

	t := compare.New(compare.ColumnPyPSA, compare.CapacityRows)
	for _, label := range compare.CapacityRows {
		t.Set(label, values[label])
	}
	return t
}

// Generation returns the dispatched energy of the network per fuel
// category in TWh, restricted to the canonical generation rows for the
// detail level. The Load shedding figure is divided by a further 1e3
// after the TWh conversion; that scaling matches the published
// comparison outputs and must not be normalized away.
func Generation(n *Network, detailed bool) *compare.Table {
	sums := weightedDispatchByCarrier(n)

	values := make(map[string]float64, len(dispatchCarriers))
	for _, carrier := range dispatchCarriers {
		values[rename(carrier)] = round(sums[carrier]/1e6, 2)
	}
	if detailed {
		values["Natural gas"] = values["CCGT"] + values["OCGT"]
		values["Coal"] = values["coal"] + values["lignite"]
	} else {
		values["Fossil fuels"] = values["CCGT"] + values["OCGT"] + values["coal"] + values["lignite"]
	}
	values["Hydro"] = values["hydro"] + values["ror"]
	values["Wind"] = values["offwind-ac"] + values["offwind-dc"] + values["onwind"]
	values["Load shedding"] /= 1e3

	canonical := compare.GenerationRows
	if detailed {
		canonical = compare.GenerationRowsDetailed
	}
	t := compare.New(compare.ColumnPyPSA, canonical)
	for _, label := range canonical {
		t.Set(label, values[label])
	}
	return t
}

// weightedDispatchByCarrier integrates the generator and storage
// dispatch series over the snapshot weightings, grouped by carrier.
func weightedDispatchByCarrier(n *Network) map[string]float64 {
	sums := make(map[string]float64)
	accumulate := func(components []Component, series [][]float64) {
		for ti, w := range n.SnapshotWeightings {
			if ti >= len(series) {
				break
			}
			row := series[ti]
			for ci, c := range components {
				if ci >= len(row) {
					break
				}
				sums[c.Carrier] += row[ci] * w
			}
		}
	}
	accumulate(n.Generators, n.GeneratorDispatch)
	accumulate(n.StorageUnits, n.StorageDispatch)
	return sums
}

func rename(carrier string) string {
	if name, ok := carrierNames[carrier]; ok {
		return name
	}
	return carrier
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
