package pypsa

import (
	"fmt"
	"os"
	"strings"

	"github.com/ctessum/cdf"
)

// NetCDF variable names of a PyPSA network export. The adapter below
// is the only place that knows this naming.
const (
	varGeneratorNames    = "generators_i"
	varGeneratorCarriers = "generators_carrier"
	varGeneratorPNom     = "generators_p_nom"
	varGeneratorDispatch = "generators_t_p"

	varStorageNames    = "storage_units_i"
	varStorageCarriers = "storage_units_carrier"
	varStoragePNom     = "storage_units_p_nom"
	varStorageDispatch = "storage_units_t_p"

	varLoadNames = "loads_i"
	varLoadPSet  = "loads_t_p_set"

	varWeightingsObjective = "snapshot_weightings_objective"
	varWeightingsLegacy    = "snapshot_weightings"
)

// Load reads a solved PyPSA network from a NetCDF (classic format)
// file. Generators, storage units and loads are each optional: a
// network without storage simply contributes nothing to the storage
// figures. The snapshot weightings are required.
func Load(path string) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pypsa: open network: %w", err)
	}
	defer f.Close()

	cf, err := cdf.Open(f)
	if err != nil {
		return nil, fmt.Errorf("pypsa: read network %s: %w", path, err)
	}

	n := &Network{}
	n.SnapshotWeightings, err = readWeightings(cf)
	if err != nil {
		return nil, err
	}

	n.Generators, err = readComponents(cf, varGeneratorNames, varGeneratorCarriers, varGeneratorPNom)
	if err != nil {
		return nil, err
	}
	n.StorageUnits, err = readComponents(cf, varStorageNames, varStorageCarriers, varStoragePNom)
	if err != nil {
		return nil, err
	}

	if hasVariable(cf, varLoadNames) {
		n.Loads, err = readStrings(cf, varLoadNames)
		if err != nil {
			return nil, err
		}
	}

	n.GeneratorDispatch, err = readSeries(cf, varGeneratorDispatch, len(n.Generators))
	if err != nil {
		return nil, err
	}
	n.StorageDispatch, err = readSeries(cf, varStorageDispatch, len(n.StorageUnits))
	if err != nil {
		return nil, err
	}
	n.LoadPSet, err = readSeries(cf, varLoadPSet, len(n.Loads))
	if err != nil {
		return nil, err
	}

	if err := n.Validate(); err != nil {
		return nil, fmt.Errorf("%w (file %s)", err, path)
	}
	return n, nil
}

// readWeightings reads the objective snapshot weightings, falling back
// to the flat pre-0.13 variable name.
func readWeightings(cf *cdf.File) ([]float64, error) {
	name := varWeightingsObjective
	if !hasVariable(cf, name) {
		name = varWeightingsLegacy
	}
	if !hasVariable(cf, name) {
		return nil, fmt.Errorf("pypsa: network carries no %s variable", varWeightingsObjective)
	}
	return readFloats(cf, name)
}

// readComponents reads a component family (names, carriers, nameplate
// capacities). A family whose index variable is absent is empty.
func readComponents(cf *cdf.File, namesVar, carriersVar, pnomVar string) ([]Component, error) {
	if !hasVariable(cf, namesVar) {
		return nil, nil
	}
	names, err := readStrings(cf, namesVar)
	if err != nil {
		return nil, err
	}
	carriers, err := readStrings(cf, carriersVar)
	if err != nil {
		return nil, err
	}
	pnom, err := readFloats(cf, pnomVar)
	if err != nil {
		return nil, err
	}
	if len(carriers) != len(names) || len(pnom) != len(names) {
		return nil, fmt.Errorf("pypsa: %s: %d names, %d carriers, %d p_nom values",
			namesVar, len(names), len(carriers), len(pnom))
	}

	components := make([]Component, len(names))
	for i := range names {
		components[i] = Component{Name: names[i], Carrier: carriers[i], PNom: pnom[i]}
	}
	return components, nil
}

// readSeries reads a [snapshot × component] matrix. An absent variable
// for an empty component family is an empty series.
func readSeries(cf *cdf.File, name string, width int) ([][]float64, error) {
	if !hasVariable(cf, name) {
		if width == 0 {
			return nil, nil
		}
		return nil, fmt.Errorf("pypsa: network carries no %s variable", name)
	}
	dims := cf.Header.Lengths(name)
	if len(dims) != 2 {
		return nil, fmt.Errorf("pypsa: %s: expected 2 dimensions, got %d", name, len(dims))
	}
	flat, err := readFloats(cf, name)
	if err != nil {
		return nil, err
	}
	rows, cols := dims[0], dims[1]
	if len(flat) != rows*cols {
		return nil, fmt.Errorf("pypsa: %s: read %d values for %dx%d", name, len(flat), rows, cols)
	}

	series := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		series[i] = flat[i*cols : (i+1)*cols]
	}
	return series, nil
}

func hasVariable(cf *cdf.File, name string) bool {
	return len(cf.Header.Lengths(name)) > 0
}

// readFloats reads a numeric variable as float64, whatever its on-disk
// precision.
func readFloats(cf *cdf.File, name string) ([]float64, error) {
	r := cf.Reader(name, nil, nil)
	buf := r.Zero(-1)
	if _, err := r.Read(buf); err != nil {
		return nil, fmt.Errorf("pypsa: read variable %s: %w", name, err)
	}
	switch vals := buf.(type) {
	case []float64:
		return vals, nil
	case []float32:
		out := make([]float64, len(vals))
		for i, v := range vals {
			out[i] = float64(v)
		}
		return out, nil
	case []int32:
		out := make([]float64, len(vals))
		for i, v := range vals {
			out[i] = float64(v)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("pypsa: variable %s is not numeric", name)
	}
}

// readStrings reads a char-matrix variable as one string per row,
// trimming NUL and space padding.
func readStrings(cf *cdf.File, name string) ([]string, error) {
	dims := cf.Header.Lengths(name)
	if len(dims) != 2 {
		return nil, fmt.Errorf("pypsa: %s: expected a char matrix, got %d dimensions", name, len(dims))
	}
	r := cf.Reader(name, nil, nil)
	buf := r.Zero(-1)
	if _, err := r.Read(buf); err != nil {
		return nil, fmt.Errorf("pypsa: read variable %s: %w", name, err)
	}
	chars, ok := buf.([]byte)
	if !ok {
		return nil, fmt.Errorf("pypsa: variable %s is not a char matrix", name)
	}
	rows, width := dims[0], dims[1]
	if len(chars) != rows*width {
		return nil, fmt.Errorf("pypsa: %s: read %d chars for %dx%d", name, len(chars), rows, width)
	}

	out := make([]string, rows)
	for i := 0; i < rows; i++ {
		out[i] = strings.TrimRight(string(chars[i*width:(i+1)*width]), "\x00 ")
	}
	return out, nil
}
