// Command pypsa-eapp-validate compares a solved PyPSA scenario against
// the published Ember and EIA statistics for one country and year, and
// writes the comparison tables and charts under the configured results
// directory.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/GbotemiB/PyPSA-EAPP/internal/compare"
	"github.com/GbotemiB/PyPSA-EAPP/internal/config"
	"github.com/GbotemiB/PyPSA-EAPP/internal/report"
	"github.com/GbotemiB/PyPSA-EAPP/internal/validation"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a yaml config file (default: VALIDATION_CONFIG)")
		scenario   = flag.String("scenario", "", "scenario folder under the results root")
		country    = flag.String("country", "", "two-letter country code")
		year       = flag.Int("year", 0, "statistics year to compare against")
		detailed   = flag.Bool("detailed", false, "split fossil fuels into coal and natural gas")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "", log.LstdFlags)

	if *scenario == "" || *country == "" || *year == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatalf("config error: %v", err)
	}

	svc, err := validation.NewService(cfg, logger)
	if err != nil {
		logger.Fatalf("service error: %v", err)
	}
	res, err := svc.Run(validation.Request{
		Scenario: *scenario,
		Country:  *country,
		Year:     *year,
		Detailed: *detailed,
	})
	if err != nil {
		logger.Fatalf("validation error: %v", err)
	}

	if err := writeOutputs(cfg, res); err != nil {
		logger.Fatalf("report error: %v", err)
	}

	printSummary(logger, res)
}

func writeOutputs(cfg config.Config, res *validation.Result) error {
	if err := report.EnsureResultsDir(cfg.OutputDir); err != nil {
		return err
	}
	dir := report.PlotsDir(cfg.OutputDir)
	prefix := fmt.Sprintf("%s_%s_%d", res.Scenario, res.Country, res.Year)

	tables := []struct {
		name  string
		title string
		unit  string
		table *compare.Merged
	}{
		{validation.MetricCapacity, "Installed capacity", "GW", res.Capacity},
		{validation.MetricGeneration, "Electricity generation", "TWh", res.Generation},
	}
	for _, t := range tables {
		base := filepath.Join(dir, prefix+"_"+t.name)
		if err := report.WriteCSVFile(base+".csv", t.table); err != nil {
			return err
		}
		png, err := report.RenderChart(t.table, fmt.Sprintf("%s, %s %d", t.title, res.CountryName, res.Year), t.unit)
		if err != nil {
			return err
		}
		if err := os.WriteFile(base+".png", png, 0o644); err != nil {
			return err
		}
	}

	workbook, err := report.BuildWorkbook(res)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, prefix+".xlsx"), workbook, 0o644); err != nil {
		return err
	}

	summary, err := report.BuildPDF(res)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, prefix+".pdf"), summary, 0o644)
}

func printSummary(logger *log.Logger, res *validation.Result) {
	logger.Printf("%s (%s), %d, scenario %s", res.CountryName, res.Alpha3, res.Year, res.Scenario)
	if res.Demand.EmberKnown {
		logger.Printf("demand: simulated %.4f TWh, reported %.4f TWh", res.Demand.PyPSA, res.Demand.Ember)
	} else {
		logger.Printf("demand: simulated %.4f TWh, nothing reported", res.Demand.PyPSA)
	}
	if len(res.Deviations) == 0 {
		logger.Printf("all categories within tolerance")
		return
	}
	for _, d := range res.Deviations {
		logger.Printf("deviation: %s", d.Describe())
	}
}
