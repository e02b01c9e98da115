package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConstraints = `{
  "physical_constants": {
    "vacuum_permeability": 1.25663706212e-6,
    "copper_resistivity": 1.68e-8,
    "temperature_coefficient": 3.93e-3,
    "oz_to_m": 3.5e-5,
    "current_density_limit": 35e6
  },
  "thermal_properties": {
    "thermal_conductivity_copper": 385.0,
    "thermal_conductivity_fr4": 0.3,
    "fr4_thickness": 1.6e-3,
    "surface_area_multiplier": 2.0
  },
  "design_constraints": {
    "num_layers": 6,
    "copper_weight": 2.0,
    "max_power": 4.0,
    "voltage": 8.2,
    "inner_length": 0.02,
    "inner_width": 0.02,
    "outer_length": 0.1,
    "outer_width": 0.1,
    "operating_temp": 85.0,
    "ambient_temp": 0.0
  },
  "manufacturing_constraints": {
    "min_trace_width": 1.5e-4,
    "max_trace_width": 2.0e-3,
    "min_trace_spacing": 1.0e-4
  }
}`

func writeConstraints(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "constraints.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadValidFile(t *testing.T) {
	cfg, err := Load(writeConstraints(t, validConstraints))
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Design.NumLayers)
	assert.Equal(t, 8.2, cfg.Design.Voltage)
	assert.Equal(t, 0.1, cfg.Design.OuterLength)
	assert.Equal(t, 1.5e-4, cfg.Manufacturing.MinTraceWidth)
	assert.Equal(t, 35e6, cfg.Physical.CurrentDensityLimit)

	// Derived values.
	assert.InDelta(t, 7e-5, cfg.CopperThickness(), 1e-18)
	assert.Equal(t, 5, cfg.CoilLayers())
	assert.False(t, cfg.GroundTestEnabled())
}

func TestLoadAppliesDefaults(t *testing.T) {
	// Omit the physical_constants and thermal_properties groups; the
	// defaults table should fill them.
	body := `{
  "design_constraints": {
    "num_layers": 4,
    "copper_weight": 1.0,
    "max_power": 2.0,
    "voltage": 5.0,
    "inner_length": 0.02,
    "inner_width": 0.02,
    "outer_length": 0.08,
    "outer_width": 0.08,
    "operating_temp": 70.0,
    "ambient_temp": 20.0
  },
  "manufacturing_constraints": {
    "min_trace_width": 1.5e-4,
    "max_trace_width": 1.0e-3,
    "min_trace_spacing": 1.5e-4
  }
}`
	cfg, err := Load(writeConstraints(t, body))
	require.NoError(t, err)

	assert.Equal(t, 1.68e-8, cfg.Physical.CopperResistivity)
	assert.Equal(t, 1.25663706212e-6, cfg.Physical.VacuumPermeability)
	assert.Equal(t, 2.0, cfg.Thermal.SurfaceAreaMultiplier)
	assert.Equal(t, 1.6e-3, cfg.Thermal.FR4Thickness)
	assert.Zero(t, cfg.Thermal.ConvectionCoefficient)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/constraints.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/nonexistent/constraints.json")
}

func TestLoadMalformedJSON(t *testing.T) {
	_, err := Load(writeConstraints(t, `{"design_constraints": `))
	require.Error(t, err)
}

func TestValidateInnerMustBeInsideOuter(t *testing.T) {
	cfg := mustLoad(t)
	cfg.Design.InnerLength = cfg.Design.OuterLength

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inner rectangle")
}

func TestValidateLayerCount(t *testing.T) {
	cfg := mustLoad(t)
	cfg.Design.NumLayers = 1

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "num_layers")
}

func TestValidateManufacturingRange(t *testing.T) {
	cfg := mustLoad(t)
	cfg.Manufacturing.MaxTraceWidth = cfg.Manufacturing.MinTraceWidth / 2

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_trace_width")
}

func TestValidateOperatingTempAboveAmbient(t *testing.T) {
	cfg := mustLoad(t)
	cfg.Design.OperatingTemp = cfg.Design.AmbientTemp

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "operating_temp")
}

func TestGroundTestEnabled(t *testing.T) {
	cfg := mustLoad(t)
	assert.False(t, cfg.GroundTestEnabled())

	cfg.Thermal.ConvectionCoefficient = 10
	assert.True(t, cfg.GroundTestEnabled())
}

func mustLoad(t *testing.T) *Config {
	t.Helper()
	cfg, err := Load(writeConstraints(t, validConstraints))
	require.NoError(t, err)
	return cfg
}
