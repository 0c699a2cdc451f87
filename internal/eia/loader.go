// Package eia loads the EIA international generation-mix reference
// table and normalizes its country blocks onto the shared comparison
// taxonomy.
package eia

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/GbotemiB/PyPSA-EAPP/internal/countries"
)

// ErrCountryNotFound reports a country the reference table does not
// carry, neither by derived three-letter code nor by name.
var ErrCountryNotFound = errors.New("eia: country not found")

// nameBlockRows is the number of technology rows following a country
// name header in the wide table layout.
const nameBlockRows = 17

// Row is one raw technology row of a country block.
type Row struct {
	Label string
	Value float64
}

// Mix is the raw generation-mix block of one country for one year.
type Mix struct {
	Country string
	Year    int
	Rows    []Row
}

// ExtractMix loads the wide reference CSV and returns the raw block
// for the requested country. Lookup is first by three-letter code
// derived from the API identifier column, then by exact country-name
// match taking the rows immediately following the name header. A year
// cell that does not parse as a number is an error, never a zero.
func ExtractMix(path, alpha2 string, year int) (*Mix, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("eia: open reference table: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("eia: read reference table: %w", err)
	}
	if len(rows) < 2 {
		return nil, errors.New("eia: empty reference table")
	}

	header := rows[0]
	apiIdx := -1
	yearIdx := -1
	yearName := strconv.Itoa(year)
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "API":
			apiIdx = i
		case yearName:
			yearIdx = i
		}
	}
	if apiIdx < 0 {
		return nil, errors.New("eia: reference table requires an API column")
	}
	if yearIdx < 0 {
		return nil, fmt.Errorf("eia: reference table carries no %d column", year)
	}
	// The country/category labels live in the unnamed second column.
	labelIdx := 1

	name, alpha3, known := countries.NameAndAlpha3(alpha2)

	var selected []int
	if known {
		for i, row := range rows[1:] {
			if labelIdx >= len(row) || apiIdx >= len(row) {
				continue
			}
			if DeriveAlpha3(row[apiIdx]) == alpha3 {
				selected = append(selected, i+1)
			}
		}
	}
	if len(selected) == 0 && known {
		for i, row := range rows[1:] {
			if labelIdx >= len(row) {
				continue
			}
			if strings.TrimSpace(row[labelIdx]) == name {
				for j := i + 2; j <= i+1+nameBlockRows && j < len(rows); j++ {
					selected = append(selected, j)
				}
				break
			}
		}
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("%w: %q (%d)", ErrCountryNotFound, alpha2, year)
	}

	mix := &Mix{Country: alpha2, Year: year}
	for _, idx := range selected {
		row := rows[idx]
		if yearIdx >= len(row) {
			return nil, fmt.Errorf("eia: row %d carries no %d value", idx+1, year)
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(row[yearIdx]), 64)
		if err != nil {
			return nil, fmt.Errorf("eia: parse %d value %q of row %d: %w", year, row[yearIdx], idx+1, err)
		}
		mix.Rows = append(mix.Rows, Row{
			Label: strings.TrimSpace(row[labelIdx]),
			Value: value,
		})
	}
	return mix, nil
}

// DeriveAlpha3 extracts the three-letter country code from a
// structured API identifier: the third dash-separated segment when the
// identifier has at least four segments, else the identifier verbatim.
func DeriveAlpha3(identifier string) string {
	identifier = strings.TrimSpace(identifier)
	parts := strings.Split(identifier, "-")
	if len(parts) > 3 {
		return parts[2]
	}
	return identifier
}
