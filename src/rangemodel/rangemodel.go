package rangemodel

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/mcsc-impact-climate/truck-range-vs-fuel/src/fueldata"
	"github.com/mcsc-impact-climate/truck-range-vs-fuel/src/logging"
)

// GallonsPerM3 converts between cubic meters and US gallons when expressing
// diesel mass density in kilograms per gallon.
const GallonsPerM3 = 264.172

// Target range ladder bounds, in miles.
const (
	minRangeMiles = 100
	maxRangeMiles = 1000
	ladderSteps   = 10
)

// Row is one entry of a fuel's derived range table: the fuel mass and volume
// required to achieve the target range, in absolute terms and as percentages
// of the truck's capacity limits.
type Row struct {
	RangeMiles        float64
	FuelMassKg        float64
	MassPctOfGVW      float64
	FuelVolumeM3      float64
	VolumePctOfDryVan float64
}

// Table is the derived range table for one fuel, rows ascending along the
// range ladder.
type Table struct {
	Fuel string
	Rows []Row
}

// RangeLadder returns the fixed ladder of target ranges, 100 to 1000 miles
// inclusive in steps of 100.
func RangeLadder() []float64 {
	s := make([]float64, ladderSteps)
	floats.Span(s, minRangeMiles, maxRangeMiles)
	return s
}

// MilesPerUnitFuel derives the truck's mileage per kilogram and per cubic
// meter of a candidate fuel from its diesel-equivalent fuel economy rating
// and the physical properties of the fuel and of diesel.
//
// The rating is first converted to miles per kilogram of diesel, then scaled
// by the energy-density ratio of the candidate fuel to diesel. This assumes
// the truck converts a unit of fuel energy to distance at the same rate
// regardless of fuel chemistry, which is a modeling simplification. Inputs
// are trusted finite positive numbers; a zero density is not guarded.
func MilesPerUnitFuel(mpgde, energyDensityFuel, massDensityFuel, energyDensityDiesel, massDensityDiesel float64) (milesPerKg, milesPerM3 float64) {
	milesPerKgDiesel := mpgde / (massDensityDiesel / GallonsPerM3)
	milesPerKg = milesPerKgDiesel * energyDensityFuel / energyDensityDiesel
	milesPerM3 = milesPerKg * massDensityFuel
	return milesPerKg, milesPerM3
}

// BuildTables produces one derived range table per fuel of the property
// table. Fuels with no fuel economy rating are skipped with a warning and
// excluded from the result; diesel's own row is processed like any other
// fuel and trivially reproduces the reference case.
func BuildTables(spec fueldata.TruckSpec, econ fueldata.EconomyTable, props fueldata.PropertyTable, log logging.Logger) (map[string]Table, error) {
	diesel, err := props.Diesel()
	if err != nil {
		return nil, fmt.Errorf("range tables: %w", err)
	}
	ladder := RangeLadder()
	tables := make(map[string]Table, len(props))
	for _, fuel := range props.Fuels() {
		mpgde, ok := econ.MPGDE(fuel)
		if !ok {
			log.Warnf("fuel %q not found in the truck fuel economy table; skipping", fuel)
			continue
		}
		p := props[fuel]
		milesPerKg, milesPerM3 := MilesPerUnitFuel(
			mpgde, p.EnergyDensityMJPerKg, p.MassDensityKgPerM3,
			diesel.EnergyDensityMJPerKg, diesel.MassDensityKgPerM3,
		)
		rows := make([]Row, 0, len(ladder))
		for _, miles := range ladder {
			mass := miles / milesPerKg
			volume := miles / milesPerM3
			rows = append(rows, Row{
				RangeMiles:        miles,
				FuelMassKg:        mass,
				MassPctOfGVW:      mass / spec.MaxGrossVehicleWeightKg * 100,
				FuelVolumeM3:      volume,
				VolumePctOfDryVan: volume / spec.DryVanVolumeM3 * 100,
			})
		}
		tables[fuel] = Table{Fuel: fuel, Rows: rows}
	}
	return tables, nil
}
