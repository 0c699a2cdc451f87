package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/GbotemiB/PyPSA-EAPP/internal/compare"
	"github.com/GbotemiB/PyPSA-EAPP/internal/validation"
)

// BuildWorkbook renders a validation result as an XLSX workbook with a
// summary sheet and one sheet per comparison metric.
func BuildWorkbook(res *validation.Result) ([]byte, error) {
	f := excelize.NewFile()
	summarySheet := "summary"
	f.SetSheetName("Sheet1", summarySheet)

	_ = f.SetCellValue(summarySheet, "A1", "Energy Statistics Validation")
	_ = f.SetCellValue(summarySheet, "A3", "Country")
	_ = f.SetCellValue(summarySheet, "B3", fmt.Sprintf("%s (%s)", res.CountryName, res.Alpha3))
	_ = f.SetCellValue(summarySheet, "A4", "Year")
	_ = f.SetCellValue(summarySheet, "B4", res.Year)
	_ = f.SetCellValue(summarySheet, "A5", "Scenario")
	_ = f.SetCellValue(summarySheet, "B5", res.Scenario)
	_ = f.SetCellValue(summarySheet, "A6", "Demand PyPSA (TWh)")
	_ = f.SetCellValue(summarySheet, "B6", res.Demand.PyPSA)
	_ = f.SetCellValue(summarySheet, "A7", "Demand Ember (TWh)")
	if res.Demand.EmberKnown {
		_ = f.SetCellValue(summarySheet, "B7", res.Demand.Ember)
	} else {
		_ = f.SetCellValue(summarySheet, "B7", "not reported")
	}
	_ = f.SetCellValue(summarySheet, "A9", "Deviations")
	for i, d := range res.Deviations {
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", 10+i), d.Describe())
	}

	sheets := []struct {
		name  string
		table *compare.Merged
	}{
		{validation.MetricCapacity, res.Capacity},
		{validation.MetricGeneration, res.Generation},
	}
	for _, sheet := range sheets {
		if sheet.table == nil {
			continue
		}
		if _, err := f.NewSheet(sheet.name); err != nil {
			return nil, err
		}
		if err := writeTableSheet(f, sheet.name, sheet.table); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeTableSheet(f *excelize.File, sheet string, m *compare.Merged) error {
	columns := m.Columns()
	if err := f.SetCellValue(sheet, "A1", "Category"); err != nil {
		return err
	}
	for i, column := range columns {
		cell, err := excelize.CoordinatesToCellName(i+2, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, column); err != nil {
			return err
		}
	}
	for r, label := range m.Labels() {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, label); err != nil {
			return err
		}
		for c, column := range columns {
			cell, err := excelize.CoordinatesToCellName(c+2, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, m.Value(label, column)); err != nil {
				return err
			}
		}
	}
	return nil
}
