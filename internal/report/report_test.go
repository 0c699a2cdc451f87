package report

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/GbotemiB/PyPSA-EAPP/internal/compare"
	"github.com/GbotemiB/PyPSA-EAPP/internal/validation"
)

func sampleMerged(t *testing.T) *compare.Merged {
	t.Helper()
	emberTable := compare.New(compare.ColumnEmber, compare.CapacityRows)
	emberTable.Set("Hydro", 0.83)
	emberTable.Set("Wind", 0.44)
	pypsaTable := compare.New(compare.ColumnPyPSA, compare.CapacityRows)
	pypsaTable.Set("Hydro", 0.8)
	pypsaTable.Set("Solar", 0.1)
	m, err := compare.Merge(emberTable, pypsaTable)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	return m
}

func sampleResult(t *testing.T) *validation.Result {
	t.Helper()
	return &validation.Result{
		Scenario:    "KE_2021",
		Country:     "KE",
		CountryName: "Kenya",
		Alpha3:      "KEN",
		Year:        2021,
		Demand:      validation.Demand{PyPSA: 12.1, Ember: 12.3, EmberKnown: true},
		Capacity:    sampleMerged(t),
		Generation:  sampleMerged(t),
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleMerged(t)); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "Category,Ember data,PyPSA data" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	// One line per canonical capacity row.
	if len(lines) != 1+len(compare.CapacityRows) {
		t.Fatalf("expected %d lines, got %d", 1+len(compare.CapacityRows), len(lines))
	}
	if lines[3] != "Hydro,0.83,0.8" {
		t.Fatalf("unexpected Hydro line %q", lines[3])
	}
}

func TestEnsureResultsDir(t *testing.T) {
	root := t.TempDir()
	if err := EnsureResultsDir(root); err != nil {
		t.Fatalf("ensure results dir: %v", err)
	}
	info, err := os.Stat(PlotsDir(root))
	if err != nil || !info.IsDir() {
		t.Fatalf("expected plots dir, got %v, %v", info, err)
	}
	// Creating it again is fine.
	if err := EnsureResultsDir(root); err != nil {
		t.Fatalf("ensure results dir twice: %v", err)
	}
}

func TestBuildWorkbook(t *testing.T) {
	data, err := BuildWorkbook(sampleResult(t))
	if err != nil {
		t.Fatalf("build workbook: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected workbook bytes")
	}
}

func TestBuildPDF(t *testing.T) {
	data, err := BuildPDF(sampleResult(t))
	if err != nil {
		t.Fatalf("build pdf: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("expected a PDF header")
	}
}

func TestRenderChart(t *testing.T) {
	data, err := RenderChart(sampleMerged(t), "Installed capacity", "GW")
	if err != nil {
		t.Fatalf("render chart: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Fatal("expected a PNG header")
	}
}
