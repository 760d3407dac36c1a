package fueldata

import (
	"os"
	"path/filepath"
)

// Default file names of the three reference tables inside the data directory.
const (
	TruckInfoFile     = "truck_info.csv"
	TruckFuelInfoFile = "truck_fuel_info.csv"
	FuelInfoFile      = "fuel_info.csv"

	dataDirName = "data"
)

// FindProjectRoot walks up from dir looking for the project root, identified
// by a data directory containing truck_info.csv. It returns dir unchanged
// when no such ancestor exists, leaving the failure to the file open.
func FindProjectRoot(dir string) string {
	cur, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}
	for {
		probe := filepath.Join(cur, dataDirName, TruckInfoFile)
		if _, err := os.Stat(probe); err == nil {
			return cur
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return dir
		}
		cur = parent
	}
}

// DefaultDataDir resolves the data directory relative to the current working
// directory, so the viewer can be launched from anywhere inside the repo.
func DefaultDataDir() string {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return filepath.Join(FindProjectRoot(wd), dataDirName)
}
