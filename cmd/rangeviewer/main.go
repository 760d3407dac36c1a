package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mcsc-impact-climate/truck-range-vs-fuel/src/config"
	"github.com/mcsc-impact-climate/truck-range-vs-fuel/src/fueldata"
	"github.com/mcsc-impact-climate/truck-range-vs-fuel/src/logging"
	"github.com/mcsc-impact-climate/truck-range-vs-fuel/src/rangemodel"
)

var (
	cfgPath  string
	dataDir  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "rangeviewer",
	Short: "Plot heavy-duty truck range against fuel mass and volume ratios",
	RunE:  run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data", "d", "", "directory holding the reference CSVs")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "minimum log level (debug, info, warn, error)")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	logging.SetLevel(cfg.Logging.Level)
	log := logging.New("rangeviewer")

	dir := dataDir
	if dir == "" {
		dir = cfg.DataDir
	}
	if dir == "" {
		dir = fueldata.DefaultDataDir()
	}

	inputs, err := loadInputs(dir)
	if err != nil {
		return err
	}
	tables, err := rangemodel.BuildTables(inputs.truck, inputs.economy, inputs.properties, log)
	if err != nil {
		return err
	}
	log.Infof("derived range tables for %d of %d fuels from %s", len(tables), len(inputs.properties), dir)

	v := newViewer(cfg, log, dir, tables)
	v.Run() // blocks until the window is closed
	return nil
}

// inputs bundles the three loaded reference tables.
type inputs struct {
	truck      fueldata.TruckSpec
	economy    fueldata.EconomyTable
	properties fueldata.PropertyTable
}

func loadInputs(dir string) (inputs, error) {
	var in inputs
	var err error
	if in.truck, err = fueldata.LoadTruckSpec(dataFile(dir, fueldata.TruckInfoFile)); err != nil {
		return in, fmt.Errorf("load truck spec: %w", err)
	}
	if in.economy, err = fueldata.LoadEconomyTable(dataFile(dir, fueldata.TruckFuelInfoFile)); err != nil {
		return in, fmt.Errorf("load fuel economy table: %w", err)
	}
	if in.properties, err = fueldata.LoadPropertyTable(dataFile(dir, fueldata.FuelInfoFile)); err != nil {
		return in, fmt.Errorf("load fuel property table: %w", err)
	}
	return in, nil
}

func dataFile(dir, name string) string { return filepath.Join(dir, name) }

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
