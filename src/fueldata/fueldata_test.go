package fueldata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// helper to write a csv fixture into a temp dir
func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadTruckSpec(t *testing.T) {
	path := writeCSV(t, "truck_info.csv",
		"Parameter,Value\nMax Gross Vehicle Weight (kg),36287\nDry Van Volume (m^3),98.7\n")
	spec, err := LoadTruckSpec(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.MaxGrossVehicleWeightKg != 36287 {
		t.Fatalf("gvw mismatch: %v", spec.MaxGrossVehicleWeightKg)
	}
	if spec.DryVanVolumeM3 != 98.7 {
		t.Fatalf("volume mismatch: %v", spec.DryVanVolumeM3)
	}
}

func TestLoadTruckSpecMissingRow(t *testing.T) {
	path := writeCSV(t, "truck_info.csv",
		"Parameter,Value\nMax Gross Vehicle Weight (kg),36287\n")
	if _, err := LoadTruckSpec(path); err == nil || !strings.Contains(err.Error(), DryVanVolumeRow) {
		t.Fatalf("expected missing-row error naming %q, got %v", DryVanVolumeRow, err)
	}
}

func TestLoadTruckSpecMissingValueColumn(t *testing.T) {
	path := writeCSV(t, "truck_info.csv",
		"Parameter,Amount\nMax Gross Vehicle Weight (kg),36287\n")
	if _, err := LoadTruckSpec(path); err == nil || !strings.Contains(err.Error(), ValueColumn) {
		t.Fatalf("expected missing-column error, got %v", err)
	}
}

func TestLoadEconomyTable(t *testing.T) {
	path := writeCSV(t, "truck_fuel_info.csv",
		"Fuel,MPGDE\nDiesel,6.5\nHydrogen,13\n")
	table, err := LoadEconomyTable(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if v, ok := table.MPGDE("Diesel"); !ok || v != 6.5 {
		t.Fatalf("diesel mpgde mismatch: %v %v", v, ok)
	}
	if _, ok := table.MPGDE("Unobtainium"); ok {
		t.Fatalf("expected missing fuel to report not-found")
	}
}

func TestLoadPropertyTable(t *testing.T) {
	path := writeCSV(t, "fuel_info.csv",
		"Fuel,Energy Density (MJ / kg),Mass Density (kg / m^3)\nDiesel,45.6,846\nHydrogen,120,42\n")
	table, err := LoadPropertyTable(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	d, err := table.Diesel()
	if err != nil {
		t.Fatalf("diesel row: %v", err)
	}
	if d.EnergyDensityMJPerKg != 45.6 || d.MassDensityKgPerM3 != 846 {
		t.Fatalf("diesel properties mismatch: %+v", d)
	}
	fuels := table.Fuels()
	if len(fuels) != 2 || fuels[0] != "Diesel" || fuels[1] != "Hydrogen" {
		t.Fatalf("expected sorted fuel names, got %v", fuels)
	}
}

func TestLoadPropertyTableMissingDiesel(t *testing.T) {
	path := writeCSV(t, "fuel_info.csv",
		"Fuel,Energy Density (MJ / kg),Mass Density (kg / m^3)\nHydrogen,120,42\n")
	if _, err := LoadPropertyTable(path); err == nil || !strings.Contains(err.Error(), DieselName) {
		t.Fatalf("expected missing Diesel error, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := LoadTruckSpec(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatalf("expected open error for missing file")
	}
}

func TestLoadMalformedNumber(t *testing.T) {
	path := writeCSV(t, "truck_fuel_info.csv", "Fuel,MPGDE\nDiesel,abc\n")
	if _, err := LoadEconomyTable(path); err == nil {
		t.Fatalf("expected parse error for non-numeric cell")
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "data"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "data", TruckInfoFile), []byte("Parameter,Value\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	nested := filepath.Join(root, "cmd", "rangeviewer")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir nested: %v", err)
	}
	got := FindProjectRoot(nested)
	if got != root {
		t.Fatalf("expected root %q got %q", root, got)
	}
}

func TestFindProjectRootFallback(t *testing.T) {
	dir := t.TempDir()
	if got := FindProjectRoot(dir); got != dir {
		t.Fatalf("expected fallback to input dir, got %q", got)
	}
}
