package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/lundeen06/magtorq-designer/internal/physics"
)

// PhysicalConstants holds the physical constants of the copper/vacuum
// system. All values are SI base units.
type PhysicalConstants struct {
	VacuumPermeability     float64 `mapstructure:"vacuum_permeability"`     // H/m
	CopperResistivity      float64 `mapstructure:"copper_resistivity"`      // Ω·m at 20 °C
	TemperatureCoefficient float64 `mapstructure:"temperature_coefficient"` // 1/°C
	OzToM                  float64 `mapstructure:"oz_to_m"`                 // m per oz/ft²
	CurrentDensityLimit    float64 `mapstructure:"current_density_limit"`   // A/m²
}

// ThermalProperties holds substrate and environment thermal data.
type ThermalProperties struct {
	ThermalConductivityCopper float64 `mapstructure:"thermal_conductivity_copper"` // W/(m·K)
	ThermalConductivityFR4    float64 `mapstructure:"thermal_conductivity_fr4"`    // W/(m·K)
	FR4Thickness              float64 `mapstructure:"fr4_thickness"`               // m
	SurfaceAreaMultiplier     float64 `mapstructure:"surface_area_multiplier"`     // radiating faces
	ConvectionCoefficient     float64 `mapstructure:"convection_coefficient"`      // W/(m²·K), 0 = no ground test
}

// DesignConstraints holds the board, electrical and thermal budgets.
type DesignConstraints struct {
	NumLayers     int     `mapstructure:"num_layers"`
	CopperWeight  float64 `mapstructure:"copper_weight"`  // oz/ft²
	MaxPower      float64 `mapstructure:"max_power"`      // W
	Voltage       float64 `mapstructure:"voltage"`        // V
	InnerLength   float64 `mapstructure:"inner_length"`   // m
	InnerWidth    float64 `mapstructure:"inner_width"`    // m
	OuterLength   float64 `mapstructure:"outer_length"`   // m
	OuterWidth    float64 `mapstructure:"outer_width"`    // m
	OperatingTemp float64 `mapstructure:"operating_temp"` // °C
	AmbientTemp   float64 `mapstructure:"ambient_temp"`   // °C
}

// ManufacturingConstraints holds fabricator limits.
type ManufacturingConstraints struct {
	MinTraceWidth   float64 `mapstructure:"min_trace_width"`   // m
	MaxTraceWidth   float64 `mapstructure:"max_trace_width"`   // m
	MinTraceSpacing float64 `mapstructure:"min_trace_spacing"` // m
}

// Config is the validated, immutable snapshot of a constraints file.
type Config struct {
	Physical      PhysicalConstants        `mapstructure:"physical_constants"`
	Thermal       ThermalProperties        `mapstructure:"thermal_properties"`
	Design        DesignConstraints        `mapstructure:"design_constraints"`
	Manufacturing ManufacturingConstraints `mapstructure:"manufacturing_constraints"`
}

// CopperThickness returns the copper foil thickness in meters.
func (c *Config) CopperThickness() float64 {
	return c.Design.CopperWeight * c.Physical.OzToM
}

// CoilLayers returns the number of layers carrying coil turns. One
// layer is reserved for the interconnect to the driving electronics.
func (c *Config) CoilLayers() int {
	return c.Design.NumLayers - 1
}

// GroundTestEnabled reports whether the configuration models an
// ambient-air ground test in addition to vacuum operation.
func (c *Config) GroundTestEnabled() bool {
	return c.Thermal.ConvectionCoefficient > 0
}

// Load reads and validates a JSON constraints file.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading constraints file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing constraints file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid constraints file %s: %w", path, err)
	}
	return &cfg, nil
}

// setDefaults registers the defaults table so a constraints file only
// needs to state the values it changes.
func setDefaults(v *viper.Viper) {
	v.SetDefault("physical_constants.vacuum_permeability", physics.DefaultVacuumPermeability)
	v.SetDefault("physical_constants.copper_resistivity", physics.DefaultCopperResistivity)
	v.SetDefault("physical_constants.temperature_coefficient", physics.DefaultTemperatureCoefficient)
	v.SetDefault("physical_constants.oz_to_m", physics.DefaultOzToM)
	v.SetDefault("physical_constants.current_density_limit", physics.DefaultCurrentDensityLimit)

	v.SetDefault("thermal_properties.thermal_conductivity_copper", physics.DefaultThermalConductivityCopper)
	v.SetDefault("thermal_properties.thermal_conductivity_fr4", physics.DefaultThermalConductivityFR4)
	v.SetDefault("thermal_properties.fr4_thickness", physics.DefaultFR4Thickness)
	v.SetDefault("thermal_properties.surface_area_multiplier", physics.DefaultSurfaceAreaMultiplier)
	v.SetDefault("thermal_properties.convection_coefficient", 0.0)
}

// Validate checks the cross-field invariants of the configuration.
func (c *Config) Validate() error {
	d := c.Design
	m := c.Manufacturing

	if d.NumLayers < 2 {
		return fmt.Errorf("design_constraints.num_layers must be at least 2 (one layer is reserved for interconnect), got %d", d.NumLayers)
	}
	if d.CopperWeight <= 0 {
		return fmt.Errorf("design_constraints.copper_weight must be positive, got %g", d.CopperWeight)
	}
	if d.Voltage <= 0 {
		return fmt.Errorf("design_constraints.voltage must be positive, got %g", d.Voltage)
	}
	if d.MaxPower <= 0 {
		return fmt.Errorf("design_constraints.max_power must be positive, got %g", d.MaxPower)
	}
	if d.OuterLength <= 0 || d.OuterWidth <= 0 {
		return fmt.Errorf("design_constraints outer dimensions must be positive, got %g x %g", d.OuterLength, d.OuterWidth)
	}
	if d.InnerLength < 0 || d.InnerWidth < 0 {
		return fmt.Errorf("design_constraints inner dimensions must not be negative, got %g x %g", d.InnerLength, d.InnerWidth)
	}
	if d.InnerLength >= d.OuterLength || d.InnerWidth >= d.OuterWidth {
		return fmt.Errorf("design_constraints inner rectangle (%g x %g) must be strictly inside outer rectangle (%g x %g)",
			d.InnerLength, d.InnerWidth, d.OuterLength, d.OuterWidth)
	}
	if d.OperatingTemp <= d.AmbientTemp {
		return fmt.Errorf("design_constraints.operating_temp (%g) must exceed ambient_temp (%g)", d.OperatingTemp, d.AmbientTemp)
	}

	if m.MinTraceWidth <= 0 {
		return fmt.Errorf("manufacturing_constraints.min_trace_width must be positive, got %g", m.MinTraceWidth)
	}
	if m.MaxTraceWidth < m.MinTraceWidth {
		return fmt.Errorf("manufacturing_constraints.max_trace_width (%g) must not be below min_trace_width (%g)", m.MaxTraceWidth, m.MinTraceWidth)
	}
	if m.MinTraceSpacing <= 0 {
		return fmt.Errorf("manufacturing_constraints.min_trace_spacing must be positive, got %g", m.MinTraceSpacing)
	}

	p := c.Physical
	if p.VacuumPermeability <= 0 || p.CopperResistivity <= 0 || p.OzToM <= 0 || p.CurrentDensityLimit <= 0 {
		return fmt.Errorf("physical_constants must all be positive")
	}

	t := c.Thermal
	if t.SurfaceAreaMultiplier <= 0 {
		return fmt.Errorf("thermal_properties.surface_area_multiplier must be positive, got %g", t.SurfaceAreaMultiplier)
	}
	if t.FR4Thickness <= 0 || t.ThermalConductivityFR4 <= 0 {
		return fmt.Errorf("thermal_properties FR4 thickness and conductivity must be positive")
	}
	if t.ConvectionCoefficient < 0 {
		return fmt.Errorf("thermal_properties.convection_coefficient must not be negative, got %g", t.ConvectionCoefficient)
	}
	return nil
}
