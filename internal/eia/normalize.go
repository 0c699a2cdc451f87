package eia

import (
	"errors"
	"fmt"
	"strings"

	"github.com/GbotemiB/PyPSA-EAPP/internal/compare"
)

// ErrCategoryMissing reports a required comparison row absent from a
// country block. Unlike the statistics-source extractors this path
// never zero-fills: a hole here means the reference table itself is
// incomplete.
var ErrCategoryMissing = errors.New("eia: required category missing")

// unitSuffixLen is the length of the fixed unit annotation trailing
// every row label, e.g. "(billion kWh)".
const unitSuffixLen = 13

var labelRenames = map[string]string{
	"Hydroelectricity":             "Hydro",
	"Biomass and waste":            "Biomass",
	"Hydroelectric pumped storage": "PHS",
}

// droppedCategories have no counterpart in the comparison taxonomy.
var droppedCategories = []string{
	"Renewables",
	"Non-hydroelectric renewables",
	"Geothermal",
	"Solar, tide, wave, fuel cell",
	"Tide and wave",
}

// NormalizeCapacity reshapes a raw country block into the canonical
// capacity comparison rows.
func NormalizeCapacity(mix *Mix) (*compare.Table, error) {
	return normalize(mix, compare.CapacityRows, droppedCategories)
}

// NormalizeGeneration reshapes a raw country block into the EIA
// generation comparison rows. The aggregated Fossil fuels row is
// dropped here since the generation comparison keeps coal, gas and oil
// apart.
func NormalizeGeneration(mix *Mix) (*compare.Table, error) {
	drop := append([]string{"Fossil fuels"}, droppedCategories...)
	return normalize(mix, compare.EIAGenerationRows, drop)
}

func normalize(mix *Mix, want, drop []string) (*compare.Table, error) {
	if mix == nil {
		return nil, errors.New("eia: nil mix")
	}
	dropped := make(map[string]struct{}, len(drop))
	for _, label := range drop {
		dropped[label] = struct{}{}
	}

	values := make(map[string]float64, len(mix.Rows))
	for _, row := range mix.Rows {
		label := trimUnitSuffix(row.Label)
		if to, ok := labelRenames[label]; ok {
			label = to
		}
		if _, skip := dropped[label]; skip {
			continue
		}
		if _, seen := values[label]; seen {
			continue
		}
		values[label] = row.Value
	}

	t := compare.New(compare.ColumnEIA, nil)
	for _, label := range want {
		v, ok := values[label]
		if !ok {
			return nil, fmt.Errorf("%w: %q for %s %d", ErrCategoryMissing, label, mix.Country, mix.Year)
		}
		t.Set(label, v)
	}
	return t, nil
}

// trimUnitSuffix strips the fixed-width unit annotation from a row
// label.
func trimUnitSuffix(label string) string {
	if len(label) > unitSuffixLen {
		label = label[:len(label)-unitSuffixLen]
	}
	return strings.TrimSpace(label)
}
