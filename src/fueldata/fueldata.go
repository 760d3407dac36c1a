package fueldata

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
)

// Required row and column names of the reference CSVs. The loaders fail fast
// with a descriptive error when any of them is absent.
const (
	ValueColumn         = "Value"
	MaxGVWRow           = "Max Gross Vehicle Weight (kg)"
	DryVanVolumeRow     = "Dry Van Volume (m^3)"
	MPGDEColumn         = "MPGDE"
	EnergyDensityColumn = "Energy Density (MJ / kg)"
	MassDensityColumn   = "Mass Density (kg / m^3)"

	// DieselName is the mandatory reference row of the fuel property table.
	// Every fuel's conversion, including diesel's own, is expressed against it.
	DieselName = "Diesel"
)

// TruckSpec holds the physical/capacity attributes of the reference truck.
type TruckSpec struct {
	MaxGrossVehicleWeightKg float64
	DryVanVolumeM3          float64
}

// FuelProperties holds the physical properties of one fuel.
type FuelProperties struct {
	EnergyDensityMJPerKg float64
	MassDensityKgPerM3   float64
}

// EconomyTable maps fuel name to its diesel-equivalent fuel economy rating.
type EconomyTable map[string]float64

// MPGDE looks up the rating for a fuel. The missing case is the one
// recoverable failure in the pipeline, so it is reported as a bool rather
// than an error.
func (t EconomyTable) MPGDE(fuel string) (float64, bool) {
	v, ok := t[fuel]
	return v, ok
}

// PropertyTable maps fuel name to its physical properties.
type PropertyTable map[string]FuelProperties

// Fuels returns the fuel names in sorted order for deterministic iteration
// and legend ordering.
func (t PropertyTable) Fuels() []string {
	out := make([]string, 0, len(t))
	for name := range t {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Diesel returns the mandatory reference row. The loader guarantees its
// presence, so a missing row here means the table was built by hand.
func (t PropertyTable) Diesel() (FuelProperties, error) {
	p, ok := t[DieselName]
	if !ok {
		return FuelProperties{}, fmt.Errorf("fuel property table has no %q row", DieselName)
	}
	return p, nil
}

// readTable reads a whole CSV file into a header slice plus records. The
// reference tables are tiny, so everything is loaded eagerly.
func readTable(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("%s: expected a header row and at least one data row", path)
	}
	return rows[0], rows[1:], nil
}

// columnIndex locates a named column in the header, skipping the index column.
func columnIndex(header []string, name, path string) (int, error) {
	for i, h := range header {
		if h == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%s: missing required column %q", path, name)
}

func parseCell(path, row, col, cell string) (float64, error) {
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: row %q column %q: %w", path, row, col, err)
	}
	return v, nil
}

// LoadTruckSpec reads truck_info.csv, keyed by attribute name with a Value
// column, and extracts the attributes the range model needs.
func LoadTruckSpec(path string) (TruckSpec, error) {
	header, records, err := readTable(path)
	if err != nil {
		return TruckSpec{}, err
	}
	vi, err := columnIndex(header, ValueColumn, path)
	if err != nil {
		return TruckSpec{}, err
	}
	values := map[string]float64{}
	for _, rec := range records {
		if len(rec) <= vi || rec[0] == "" {
			continue
		}
		v, err := parseCell(path, rec[0], ValueColumn, rec[vi])
		if err != nil {
			return TruckSpec{}, err
		}
		values[rec[0]] = v
	}
	spec := TruckSpec{}
	var ok bool
	if spec.MaxGrossVehicleWeightKg, ok = values[MaxGVWRow]; !ok {
		return TruckSpec{}, fmt.Errorf("%s: missing required row %q", path, MaxGVWRow)
	}
	if spec.DryVanVolumeM3, ok = values[DryVanVolumeRow]; !ok {
		return TruckSpec{}, fmt.Errorf("%s: missing required row %q", path, DryVanVolumeRow)
	}
	return spec, nil
}

// LoadEconomyTable reads truck_fuel_info.csv, keyed by fuel name with an
// MPGDE column.
func LoadEconomyTable(path string) (EconomyTable, error) {
	header, records, err := readTable(path)
	if err != nil {
		return nil, err
	}
	mi, err := columnIndex(header, MPGDEColumn, path)
	if err != nil {
		return nil, err
	}
	table := EconomyTable{}
	for _, rec := range records {
		if len(rec) <= mi || rec[0] == "" {
			continue
		}
		v, err := parseCell(path, rec[0], MPGDEColumn, rec[mi])
		if err != nil {
			return nil, err
		}
		table[rec[0]] = v
	}
	return table, nil
}

// LoadPropertyTable reads fuel_info.csv, keyed by fuel name with energy and
// mass density columns. The Diesel reference row is mandatory; its absence is
// a fatal load error rather than something discovered mid-computation.
func LoadPropertyTable(path string) (PropertyTable, error) {
	header, records, err := readTable(path)
	if err != nil {
		return nil, err
	}
	ei, err := columnIndex(header, EnergyDensityColumn, path)
	if err != nil {
		return nil, err
	}
	di, err := columnIndex(header, MassDensityColumn, path)
	if err != nil {
		return nil, err
	}
	table := PropertyTable{}
	for _, rec := range records {
		if len(rec) <= ei || len(rec) <= di || rec[0] == "" {
			continue
		}
		e, err := parseCell(path, rec[0], EnergyDensityColumn, rec[ei])
		if err != nil {
			return nil, err
		}
		m, err := parseCell(path, rec[0], MassDensityColumn, rec[di])
		if err != nil {
			return nil, err
		}
		table[rec[0]] = FuelProperties{EnergyDensityMJPerKg: e, MassDensityKgPerM3: m}
	}
	if _, ok := table[DieselName]; !ok {
		return nil, fmt.Errorf("%s: missing required row %q", path, DieselName)
	}
	return table, nil
}
