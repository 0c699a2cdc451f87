package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/GbotemiB/PyPSA-EAPP/internal/compare"
	"github.com/GbotemiB/PyPSA-EAPP/internal/validation"
)

// BuildPDF renders a validation result as a printable summary report.
func BuildPDF(res *validation.Result) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Energy Statistics Validation")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Country: %s (%s)", res.CountryName, res.Alpha3))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Year: %d", res.Year))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Scenario: %s", res.Scenario))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Demand PyPSA (TWh): %.4f", res.Demand.PyPSA))
	pdf.Ln(5)
	if res.Demand.EmberKnown {
		pdf.Cell(0, 6, fmt.Sprintf("Demand Ember (TWh): %.4f", res.Demand.Ember))
	} else {
		pdf.Cell(0, 6, "Demand Ember (TWh): not reported")
	}
	pdf.Ln(8)

	writeTablePDF(pdf, "Installed capacity (GW)", res.Capacity)
	writeTablePDF(pdf, "Electricity generation (TWh)", res.Generation)

	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 6, "Deviations")
	pdf.Ln(6)
	pdf.SetFont("Arial", "", 10)
	if len(res.Deviations) == 0 {
		pdf.Cell(0, 6, "All categories within tolerance.")
		pdf.Ln(5)
	}
	for _, d := range res.Deviations {
		pdf.Cell(0, 6, d.Describe())
		pdf.Ln(5)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeTablePDF(pdf *gofpdf.Fpdf, title string, m *compare.Merged) {
	if m == nil {
		return
	}
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 6, title)
	pdf.Ln(7)

	columns := m.Columns()
	width := 170.0 / float64(len(columns)+1)
	pdf.CellFormat(width, 6, "Category", "1", 0, "C", false, 0, "")
	for _, column := range columns {
		pdf.CellFormat(width, 6, column, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, label := range m.Labels() {
		pdf.CellFormat(width, 6, label, "1", 0, "L", false, 0, "")
		for _, column := range columns {
			pdf.CellFormat(width, 6, fmt.Sprintf("%.2f", m.Value(label, column)), "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}
