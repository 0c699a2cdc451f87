// Package validation orchestrates a full comparison run: it loads the
// published statistics and the solved network for one scenario,
// reshapes both onto the shared taxonomy and flags categories where
// the simulation deviates from the reported figures.
package validation

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/GbotemiB/PyPSA-EAPP/internal/compare"
	"github.com/GbotemiB/PyPSA-EAPP/internal/config"
	"github.com/GbotemiB/PyPSA-EAPP/internal/countries"
	"github.com/GbotemiB/PyPSA-EAPP/internal/eia"
	"github.com/GbotemiB/PyPSA-EAPP/internal/ember"
	"github.com/GbotemiB/PyPSA-EAPP/internal/pypsa"
)

// Metric names used in results and reports.
const (
	MetricCapacity   = "capacity"
	MetricGeneration = "generation"
)

// Request selects what to validate.
type Request struct {
	// Scenario is the results folder holding the solved network.
	Scenario string
	// Country is the two-letter code of the modelled country.
	Country string
	// Year is the statistics year to compare against.
	Year int
	// Detailed splits fossil fuels into Coal and Natural gas.
	Detailed bool
}

// Demand pairs the simulated total demand with the reported one.
type Demand struct {
	PyPSA float64
	Ember float64
	// EmberKnown is false when the statistics table carries no demand
	// row for the country and year.
	EmberKnown bool
}

// Deviation flags one category where the simulation strays beyond the
// configured tolerances from the reported figure.
type Deviation struct {
	Metric    string
	Category  string
	Reported  float64
	Simulated float64
	Delta     float64
	// Relative is |Delta| over the reported figure, zero when nothing
	// was reported.
	Relative float64
}

// Result is the outcome of one validation run.
type Result struct {
	Scenario    string
	Country     string
	CountryName string
	Alpha3      string
	Year        int
	Detailed    bool

	Demand     Demand
	Capacity   *compare.Merged
	Generation *compare.Merged
	Deviations []Deviation
}

// Service wires the loaders and extractors together.
type Service struct {
	cfg    config.Config
	logger *log.Logger
}

// NewService builds a Service. A nil logger falls back to stderr.
func NewService(cfg config.Config, logger *log.Logger) (*Service, error) {
	if logger == nil {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	return &Service{cfg: cfg, logger: logger}, nil
}

// Run executes a validation run. An EIA table that does not carry the
// country only costs the EIA column; every other failure aborts the
// run.
func (s *Service) Run(req Request) (*Result, error) {
	if req.Scenario == "" {
		return nil, errors.New("validation: empty scenario")
	}
	if req.Country == "" {
		return nil, errors.New("validation: empty country code")
	}
	if req.Year == 0 {
		return nil, errors.New("validation: year required")
	}

	alpha3, err := countries.Alpha2ToAlpha3(req.Country)
	if err != nil {
		return nil, err
	}
	name, _, _ := countries.NameAndAlpha3(req.Country)

	dataset, err := ember.LoadDataset(s.cfg.EmberPath())
	if err != nil {
		return nil, err
	}

	locator, err := pypsa.NewLocator(s.cfg.ResultsRoot, s.cfg.StrictNetworkLocate, s.logger)
	if err != nil {
		return nil, err
	}
	networkPath, err := locator.NetworkPath(req.Scenario)
	if err != nil {
		return nil, err
	}
	s.logger.Printf("validation: scenario %s uses network %s", req.Scenario, networkPath)
	network, err := pypsa.Load(networkPath)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Scenario:    req.Scenario,
		Country:     req.Country,
		CountryName: name,
		Alpha3:      alpha3,
		Year:        req.Year,
		Detailed:    req.Detailed,
	}

	result.Demand.PyPSA = pypsa.Demand(network)
	result.Demand.Ember, result.Demand.EmberKnown = ember.Demand(dataset, req.Country, req.Year)
	if !result.Demand.EmberKnown {
		s.logger.Printf("validation: no reported demand for %s %d", req.Country, req.Year)
	}

	capacityTables := []*compare.Table{
		ember.InstalledCapacity(dataset, alpha3, req.Year),
		pypsa.InstalledCapacity(network),
	}
	if t, err := s.eiaTable(s.cfg.EIACapacityPath(), req, eia.NormalizeCapacity); err != nil {
		return nil, err
	} else if t != nil {
		capacityTables = append(capacityTables, t)
	}
	result.Capacity, err = compare.Merge(capacityTables...)
	if err != nil {
		return nil, err
	}

	generationTables := []*compare.Table{
		ember.Generation(dataset, alpha3, req.Year, req.Detailed),
		pypsa.Generation(network, req.Detailed),
	}
	if t, err := s.eiaTable(s.cfg.EIAGenerationPath(), req, eia.NormalizeGeneration); err != nil {
		return nil, err
	} else if t != nil {
		generationTables = append(generationTables, t)
	}
	result.Generation, err = compare.Merge(generationTables...)
	if err != nil {
		return nil, err
	}

	result.Deviations = append(result.Deviations,
		deviations(MetricCapacity, result.Capacity, s.cfg.Tolerances)...)
	result.Deviations = append(result.Deviations,
		deviations(MetricGeneration, result.Generation, s.cfg.Tolerances)...)
	return result, nil
}

// eiaTable loads and normalizes one EIA reference table. An absent
// country is tolerated with a warning; a missing file is tolerated the
// same way since the EIA column is supplementary.
func (s *Service) eiaTable(path string, req Request, normalize func(*eia.Mix) (*compare.Table, error)) (*compare.Table, error) {
	mix, err := eia.ExtractMix(path, req.Country, req.Year)
	if err != nil {
		if errors.Is(err, eia.ErrCountryNotFound) || errors.Is(err, os.ErrNotExist) {
			s.logger.Printf("validation: skipping EIA column: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return normalize(mix)
}

// deviations compares the Ember and PyPSA columns of a merged table.
// A category deviates when the difference exceeds the absolute
// tolerance and, where something was reported, the relative one too.
func deviations(metric string, m *compare.Merged, tol config.Tolerances) []Deviation {
	var out []Deviation
	for _, label := range m.Labels() {
		reported := m.Value(label, compare.ColumnEmber)
		simulated := m.Value(label, compare.ColumnPyPSA)
		delta := simulated - reported

		if math.Abs(delta) <= tol.AbsoluteTWh {
			continue
		}
		var relative float64
		if reported != 0 {
			relative = math.Abs(delta) / math.Abs(reported)
			if relative <= tol.Relative {
				continue
			}
		}
		out = append(out, Deviation{
			Metric:    metric,
			Category:  label,
			Reported:  reported,
			Simulated: simulated,
			Delta:     delta,
			Relative:  relative,
		})
	}
	return out
}

// Describe renders a deviation for logs and reports.
func (d Deviation) Describe() string {
	return fmt.Sprintf("%s/%s: simulated %.2f vs reported %.2f (delta %+.2f)",
		d.Metric, d.Category, d.Simulated, d.Reported, d.Delta)
}
