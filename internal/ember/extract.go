package ember

import (
	"sort"

	"github.com/GbotemiB/PyPSA-EAPP/internal/compare"
)

// Category and subcategory values of the Ember table.
const (
	categoryCapacity   = "Capacity"
	categoryGeneration = "Electricity generation"
	categoryDemand     = "Electricity demand"
	subcategoryFuel    = "Fuel"
	subcategoryDemand  = "Demand"
	unitTWh            = "TWh"
)

// fuelAliases collapses Ember fuel labels into the coarse comparison
// taxonomy. Canonical labels are never alias keys, so applying the
// mapping twice is a no-op.
var fuelAliases = map[string]string{
	"Gas":          "Fossil fuels",
	"Bioenergy":    "Biomass",
	"Coal":         "Fossil fuels",
	"Other Fossil": "Fossil fuels",
}

// fuelAliasesDetailed keeps coal and gas apart for the detailed
// generation breakdown.
var fuelAliasesDetailed = map[string]string{
	"Gas":       "Natural gas",
	"Bioenergy": "Biomass",
}

// droppedVariables are excluded from every total.
var droppedVariables = map[string]struct{}{
	"Other Renewables": {},
}

// NormalizeFuel maps an Ember fuel label onto the comparison taxonomy.
// Labels already in canonical form pass through unchanged.
func NormalizeFuel(label string, detailed bool) string {
	aliases := fuelAliases
	if detailed {
		aliases = fuelAliasesDetailed
	}
	if to, ok := aliases[label]; ok {
		return to
	}
	return label
}

// Demand returns the reported electricity demand for a country and
// year. ok is false when the table carries no matching row.
func Demand(ds *Dataset, alpha2 string, year int) (float64, bool) {
	for _, r := range ds.records {
		if r.Category == categoryDemand && r.Subcategory == subcategoryDemand &&
			r.CountryCode == alpha2 && r.Year == year {
			return r.Value, true
		}
	}
	return 0, false
}

// InstalledCapacity returns installed capacity by fuel category for a
// country and year, normalized onto the comparison taxonomy.
func InstalledCapacity(ds *Dataset, alpha3 string, year int) *compare.Table {
	rows := ds.filter(func(r Record) bool {
		return r.Category == categoryCapacity && r.Subcategory == subcategoryFuel &&
			r.CountryCode == alpha3 && r.Year == year
	})
	return regroup(rows, compare.CapacityRows, false)
}

// Generation returns electricity generation by fuel category for a
// country and year. The detailed variant keeps Coal and Natural gas
// apart instead of folding them into Fossil fuels. A synthetic
// Load shedding row is carried at zero: the Ember table has no
// unserved-demand concept.
func Generation(ds *Dataset, alpha3 string, year int, detailed bool) *compare.Table {
	rows := ds.filter(func(r Record) bool {
		return r.Category == categoryGeneration && r.Subcategory == subcategoryFuel &&
			r.CountryCode == alpha3 && r.Year == year && r.Unit == unitTWh
	})
	canonical := compare.GenerationRows
	if detailed {
		canonical = compare.GenerationRowsDetailed
	}
	return regroup(rows, canonical, detailed)
}

// regroup drops excluded variables, applies the fuel aliases and sums
// values per resulting label. The output carries the canonical row set
// zero-filled, with any surviving off-taxonomy labels appended in
// sorted order so that totals are conserved under regrouping.
func regroup(rows []Record, canonical []string, detailed bool) *compare.Table {
	sums := make(map[string]float64)
	for _, r := range rows {
		if _, dropped := droppedVariables[r.Variable]; dropped {
			continue
		}
		sums[NormalizeFuel(r.Variable, detailed)] += r.Value
	}

	t := compare.New(compare.ColumnEmber, canonical)
	var extras []string
	for label, v := range sums {
		if t.Has(label) {
			t.Set(label, v)
		} else {
			extras = append(extras, label)
		}
	}
	sort.Strings(extras)
	for _, label := range extras {
		t.Set(label, sums[label])
	}
	return t
}
