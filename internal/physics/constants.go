package physics

// Physical constants used by the thermal and electromagnetic models.
// Values that a configuration file may override live in the defaults
// table below; the constants here are fixed properties of the models.

const (
	// StefanBoltzmann is the Stefan-Boltzmann constant (W/(m²·K⁴))
	StefanBoltzmann = 5.670374419e-8

	// Emissivity of a solder-masked FR4 board surface
	Emissivity = 0.9

	// WheelerK1 is the empirical coefficient of the modified Wheeler
	// approximation for a multi-turn rectangular planar coil:
	// L = K1·μ0·N²·davg·(ln(4·davg/w) − 0.5)
	WheelerK1 = 0.4

	// KelvinOffset converts °C to K
	KelvinOffset = 273.15

	// ReferenceTemp is the temperature (°C) at which copper
	// resistivity tables are quoted
	ReferenceTemp = 20.0

	// ThermalSeedOffset is the offset (K) above ambient used to seed
	// the radiative heat-balance solve
	ThermalSeedOffset = 5.0
)

// Defaults for configurable physical properties. These back the
// configuration loader so a constraints file only needs to state what
// it changes.
const (
	// DefaultVacuumPermeability is μ0 (H/m)
	DefaultVacuumPermeability = 1.25663706212e-6

	// DefaultCopperResistivity at 20 °C (Ω·m)
	DefaultCopperResistivity = 1.68e-8

	// DefaultTemperatureCoefficient of copper resistivity (1/°C)
	DefaultTemperatureCoefficient = 3.93e-3

	// DefaultOzToM converts copper weight (oz/ft²) to thickness (m)
	DefaultOzToM = 3.5e-5

	// DefaultCurrentDensityLimit for external traces (A/m²)
	DefaultCurrentDensityLimit = 35e6

	// DefaultThermalConductivityCopper (W/(m·K))
	DefaultThermalConductivityCopper = 385.0

	// DefaultThermalConductivityFR4 (W/(m·K))
	DefaultThermalConductivityFR4 = 0.3

	// DefaultFR4Thickness of a standard board (m)
	DefaultFR4Thickness = 1.6e-3

	// DefaultSurfaceAreaMultiplier counts both board faces as
	// radiating surface
	DefaultSurfaceAreaMultiplier = 2.0
)
