package coil

import (
	"github.com/lundeen06/magtorq-designer/internal/config"
)

// testConfig returns the 100x100 mm board with a 20x20 mm keepout used
// across the model tests. All values SI base units.
func testConfig() *config.Config {
	return &config.Config{
		Physical: config.PhysicalConstants{
			VacuumPermeability:     1.25663706212e-6,
			CopperResistivity:      1.68e-8,
			TemperatureCoefficient: 3.93e-3,
			OzToM:                  3.5e-5,
			CurrentDensityLimit:    35e6,
		},
		Thermal: config.ThermalProperties{
			ThermalConductivityCopper: 385,
			ThermalConductivityFR4:    0.3,
			FR4Thickness:              1.6e-3,
			SurfaceAreaMultiplier:     2,
		},
		Design: config.DesignConstraints{
			NumLayers:     6,
			CopperWeight:  2,
			MaxPower:      4,
			Voltage:       8.2,
			InnerLength:   0.02,
			InnerWidth:    0.02,
			OuterLength:   0.1,
			OuterWidth:    0.1,
			OperatingTemp: 85,
			AmbientTemp:   0,
		},
		Manufacturing: config.ManufacturingConstraints{
			MinTraceWidth:   1.5e-4,
			MaxTraceWidth:   2.0e-3,
			MinTraceSpacing: 1.0e-4,
		},
	}
}

// fixedWidthConfig pins the manufacturing range to a single width, the
// deterministic end-to-end scenario.
func fixedWidthConfig(width float64) *config.Config {
	cfg := testConfig()
	cfg.Manufacturing.MinTraceWidth = width
	cfg.Manufacturing.MaxTraceWidth = width
	return cfg
}
