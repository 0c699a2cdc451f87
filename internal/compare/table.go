// Package compare holds the category comparison tables that align
// statistics from the Ember, PyPSA and EIA sources on a shared fuel
// taxonomy.
package compare

import (
	"errors"
	"fmt"
)

// Column names of the three statistics sources.
const (
	ColumnEmber = "Ember data"
	ColumnPyPSA = "PyPSA data"
	ColumnEIA   = "EIA Data"
)

// Canonical row sets per metric, in presentation order. Extractors
// always emit these rows, zero-filled when a category is absent from
// the raw data.
var (
	CapacityRows = []string{
		"Nuclear", "Fossil fuels", "Hydro", "PHS", "Solar", "Wind", "Biomass",
	}
	GenerationRows = []string{
		"Nuclear", "Fossil fuels", "PHS", "Hydro", "Solar", "Wind", "Biomass", "Load shedding",
	}
	GenerationRowsDetailed = []string{
		"Nuclear", "Natural gas", "PHS", "Coal", "Hydro", "Solar", "Wind", "Biomass", "Load shedding",
	}
	// EIAGenerationRows is the row set of the EIA generation-mix table,
	// which keeps Oil and splits fossil fuels unconditionally.
	EIAGenerationRows = []string{
		"Nuclear", "Coal", "Natural gas", "Oil", "Hydro", "PHS", "Solar", "Wind", "Biomass",
	}
)

// ErrUnknownLabel reports a lookup of a label the table does not carry.
var ErrUnknownLabel = errors.New("compare: unknown label")

// Table is a single named column of values over an ordered category
// label list. It is never mutated after the extractor that built it
// returns.
type Table struct {
	column string
	labels []string
	values map[string]float64
}

// New builds a zero-filled table with the given column name and label
// order. The label slice is copied.
func New(column string, labels []string) *Table {
	t := &Table{
		column: column,
		labels: make([]string, 0, len(labels)),
		values: make(map[string]float64, len(labels)),
	}
	for _, label := range labels {
		if _, ok := t.values[label]; ok {
			continue
		}
		t.labels = append(t.labels, label)
		t.values[label] = 0
	}
	return t
}

// Column returns the source column name.
func (t *Table) Column() string { return t.column }

// Labels returns the labels in presentation order.
func (t *Table) Labels() []string {
	out := make([]string, len(t.labels))
	copy(out, t.labels)
	return out
}

// Has reports whether the table carries the label.
func (t *Table) Has(label string) bool {
	_, ok := t.values[label]
	return ok
}

// Value returns the value for a label, zero when the label is absent.
func (t *Table) Value(label string) float64 { return t.values[label] }

// Set stores a value, appending the label when it is not yet carried.
func (t *Table) Set(label string, value float64) {
	if _, ok := t.values[label]; !ok {
		t.labels = append(t.labels, label)
	}
	t.values[label] = value
}

// Add accumulates a value onto a label, appending it when absent.
func (t *Table) Add(label string, value float64) {
	if _, ok := t.values[label]; !ok {
		t.labels = append(t.labels, label)
	}
	t.values[label] += value
}

// Total sums all carried values.
func (t *Table) Total() float64 {
	var total float64
	for _, v := range t.values {
		total += v
	}
	return total
}

// Select restricts the table to the given labels in the given order.
// A requested label the table does not carry is an error; Select never
// zero-fills.
func (t *Table) Select(labels []string) (*Table, error) {
	out := New(t.column, nil)
	for _, label := range labels {
		v, ok := t.values[label]
		if !ok {
			return nil, fmt.Errorf("%w: %q in %s", ErrUnknownLabel, label, t.column)
		}
		out.Set(label, v)
	}
	return out, nil
}

// Merged joins several single-column tables on a shared label order
// for rendering.
type Merged struct {
	labels  []string
	columns []string
	values  []map[string]float64
}

// Merge joins tables column-wise. The label order is the first table's
// order; labels only later tables carry are appended in encounter
// order. A column missing a label reads as zero.
func Merge(tables ...*Table) (*Merged, error) {
	if len(tables) == 0 {
		return nil, errors.New("compare: merge of no tables")
	}
	m := &Merged{}
	seen := make(map[string]struct{})
	for _, t := range tables {
		if t == nil {
			return nil, errors.New("compare: merge of nil table")
		}
		m.columns = append(m.columns, t.column)
		m.values = append(m.values, t.values)
		for _, label := range t.labels {
			if _, ok := seen[label]; ok {
				continue
			}
			seen[label] = struct{}{}
			m.labels = append(m.labels, label)
		}
	}
	return m, nil
}

// Labels returns the merged label order.
func (m *Merged) Labels() []string {
	out := make([]string, len(m.labels))
	copy(out, m.labels)
	return out
}

// Columns returns the column names in merge order.
func (m *Merged) Columns() []string {
	out := make([]string, len(m.columns))
	copy(out, m.columns)
	return out
}

// Value returns the value of a label in a column, zero when the column
// does not carry the label.
func (m *Merged) Value(label, column string) float64 {
	for i, c := range m.columns {
		if c == column {
			return m.values[i][label]
		}
	}
	return 0
}

// ColumnValues returns the values of one column in label order.
func (m *Merged) ColumnValues(column string) []float64 {
	out := make([]float64, len(m.labels))
	for i, c := range m.columns {
		if c != column {
			continue
		}
		for j, label := range m.labels {
			out[j] = m.values[i][label]
		}
		break
	}
	return out
}
