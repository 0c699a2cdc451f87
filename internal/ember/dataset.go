// Package ember loads the Ember yearly electricity statistics table
// and extracts per-country demand, capacity and generation figures on
// the shared comparison taxonomy.
package ember

// Record is one row of the long-format Ember statistics table.
// Records are immutable reference data loaded once per process.
type Record struct {
	CountryCode string
	Year        int
	Category    string
	Subcategory string
	Variable    string
	Unit        string
	Value       float64
}

// Dataset is the loaded Ember table.
type Dataset struct {
	records []Record
}

// NewDataset wraps records in a read-only dataset.
func NewDataset(records []Record) *Dataset {
	return &Dataset{records: records}
}

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.records) }

func (d *Dataset) filter(match func(Record) bool) []Record {
	var out []Record
	for _, r := range d.records {
		if match(r) {
			out = append(out, r)
		}
	}
	return out
}
