package ember

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadDataset reads the long-format Ember CSV. Rows whose Value cell
// is blank or not numeric carry no figure and are skipped; a missing
// required header column is an error.
func LoadDataset(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ember: open dataset: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ember: read dataset: %w", err)
	}
	if len(rows) < 1 {
		return nil, errors.New("ember: empty dataset")
	}

	header := make(map[string]int)
	for i, name := range rows[0] {
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}
	countryIdx, ok := header["country code"]
	if !ok {
		return nil, errors.New("ember: dataset requires a Country code column")
	}
	yearIdx, ok := header["year"]
	if !ok {
		return nil, errors.New("ember: dataset requires a Year column")
	}
	categoryIdx, ok := header["category"]
	if !ok {
		return nil, errors.New("ember: dataset requires a Category column")
	}
	subcategoryIdx, ok := header["subcategory"]
	if !ok {
		return nil, errors.New("ember: dataset requires a Subcategory column")
	}
	variableIdx, ok := header["variable"]
	if !ok {
		return nil, errors.New("ember: dataset requires a Variable column")
	}
	unitIdx, ok := header["unit"]
	if !ok {
		return nil, errors.New("ember: dataset requires a Unit column")
	}
	valueIdx, ok := header["value"]
	if !ok {
		return nil, errors.New("ember: dataset requires a Value column")
	}

	width := countryIdx
	for _, idx := range []int{yearIdx, categoryIdx, subcategoryIdx, variableIdx, unitIdx, valueIdx} {
		if idx > width {
			width = idx
		}
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) <= width {
			continue
		}
		year, err := strconv.Atoi(strings.TrimSpace(row[yearIdx]))
		if err != nil {
			continue
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(row[valueIdx]), 64)
		if err != nil {
			continue
		}
		records = append(records, Record{
			CountryCode: strings.TrimSpace(row[countryIdx]),
			Year:        year,
			Category:    strings.TrimSpace(row[categoryIdx]),
			Subcategory: strings.TrimSpace(row[subcategoryIdx]),
			Variable:    strings.TrimSpace(row[variableIdx]),
			Unit:        strings.TrimSpace(row[unitIdx]),
			Value:       value,
		})
	}
	return NewDataset(records), nil
}
