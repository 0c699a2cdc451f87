package eia

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestDeriveAlpha3(t *testing.T) {
	cases := map[string]string{
		"EIA-STEO-USA-XYZ":     "USA",
		"INTL.2-12-DEU-BKWH.A": "DEU",
		"EIA-STEO":             "EIA-STEO",
		"INTL.2-12-KEN":        "INTL.2-12-KEN",
		"":                     "",
	}
	for identifier, want := range cases {
		if got := DeriveAlpha3(identifier); got != want {
			t.Fatalf("DeriveAlpha3(%q): expected %q, got %q", identifier, want, got)
		}
	}
}

func writeReferenceCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "eia.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write reference csv: %v", err)
	}
	return path
}

const germanyBlock = `API,,2015,2016
INTL.2-12-DEU-BKWH.A,    Nuclear (billion kWh),91.8,84.6
INTL.2-7-DEU-BKWH.A,    Fossil fuels (billion kWh),339.2,335.5
INTL.2-33-DEU-BKWH.A,    Hydroelectricity (billion kWh),19.0,20.5
`

func TestExtractMixByDerivedCode(t *testing.T) {
	path := writeReferenceCSV(t, germanyBlock)
	mix, err := ExtractMix(path, "DE", 2016)
	if err != nil {
		t.Fatalf("extract mix: %v", err)
	}
	if len(mix.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(mix.Rows))
	}
	if mix.Rows[0].Label != "Nuclear (billion kWh)" || mix.Rows[0].Value != 84.6 {
		t.Fatalf("unexpected first row: %+v", mix.Rows[0])
	}
}

func TestExtractMixByNameBlock(t *testing.T) {
	var b strings.Builder
	b.WriteString("API,,2016\n")
	b.WriteString(",Kenya,\n")
	labels := []string{
		"Generation", "Nuclear", "Fossil fuels", "Coal", "Natural gas", "Oil",
		"Renewables", "Hydroelectricity", "Non-hydroelectric renewables",
		"Geothermal", "Solar, tide, wave, fuel cell", "Tide and wave", "Solar",
		"Wind", "Biomass and waste", "Hydroelectric pumped storage", "Other",
	}
	for i, label := range labels {
		// Labels may carry commas and must be quoted.
		b.WriteString(",\"    " + label + " (billion kWh)\"," + strconv.Itoa(i) + "\n")
	}
	// A trailing row that must not leak into the 17-row block.
	b.WriteString(",Somalia,\n")

	path := writeReferenceCSV(t, b.String())
	mix, err := ExtractMix(path, "KE", 2016)
	if err != nil {
		t.Fatalf("extract mix: %v", err)
	}
	if len(mix.Rows) != 17 {
		t.Fatalf("expected the 17 rows after the name header, got %d", len(mix.Rows))
	}
	if mix.Rows[1].Label != "Nuclear (billion kWh)" || mix.Rows[1].Value != 1 {
		t.Fatalf("unexpected second row: %+v", mix.Rows[1])
	}
}

func TestExtractMixCountryNotFound(t *testing.T) {
	path := writeReferenceCSV(t, germanyBlock)
	if _, err := ExtractMix(path, "KE", 2016); !errors.Is(err, ErrCountryNotFound) {
		t.Fatalf("expected ErrCountryNotFound, got %v", err)
	}
	// An unknown alpha-2 code cannot match either lookup path.
	if _, err := ExtractMix(path, "ZZ", 2016); !errors.Is(err, ErrCountryNotFound) {
		t.Fatalf("expected ErrCountryNotFound for unknown code, got %v", err)
	}
}

func TestExtractMixBadYearValue(t *testing.T) {
	path := writeReferenceCSV(t, `API,,2016
INTL.2-12-DEU-BKWH.A,    Nuclear (billion kWh),--
`)
	_, err := ExtractMix(path, "DE", 2016)
	if err == nil {
		t.Fatal("expected a parse error for a non-numeric year value")
	}
	if errors.Is(err, ErrCountryNotFound) {
		t.Fatalf("parse failure must not masquerade as a missing country: %v", err)
	}
}

func TestExtractMixMissingYearColumn(t *testing.T) {
	path := writeReferenceCSV(t, germanyBlock)
	if _, err := ExtractMix(path, "DE", 1999); err == nil {
		t.Fatal("expected error for absent year column")
	}
}
