package coil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lundeen06/magtorq-designer/internal/physics"
)

func TestRadiativeRiseZeroPower(t *testing.T) {
	d := NewDesigner(testConfig())

	rise, err := d.RadiativeRise(0)
	require.NoError(t, err)
	assert.Zero(t, rise, "heat balance is trivially satisfied at ambient")

	rise, err = d.RadiativeRise(-1)
	require.NoError(t, err)
	assert.Zero(t, rise)
}

func TestRadiativeRiseSatisfiesHeatBalance(t *testing.T) {
	cfg := testConfig()
	d := NewDesigner(cfg)

	power := 1.2
	rise, err := d.RadiativeRise(power)
	require.NoError(t, err)
	require.Positive(t, rise)

	// Plug the solution back into P = ε·σ·A·(T⁴ − Ta⁴).
	area := cfg.Thermal.SurfaceAreaMultiplier * cfg.Design.OuterLength * cfg.Design.OuterWidth
	ta := cfg.Design.AmbientTemp + physics.KelvinOffset
	tf := ta + rise
	radiated := physics.Emissivity * physics.StefanBoltzmann * area *
		(math.Pow(tf, 4) - math.Pow(ta, 4))
	assert.InDelta(t, power, radiated, power*1e-6)
}

func TestRadiativeRiseIncreasesWithPower(t *testing.T) {
	d := NewDesigner(testConfig())

	r1, err := d.RadiativeRise(0.5)
	require.NoError(t, err)
	r2, err := d.RadiativeRise(2.0)
	require.NoError(t, err)

	assert.Greater(t, r2, r1)
}

func TestGroundRiseResistanceNetwork(t *testing.T) {
	cfg := testConfig()
	cfg.Thermal.ConvectionCoefficient = 10
	d := NewDesigner(cfg)

	power := 1.0
	area := cfg.Thermal.SurfaceAreaMultiplier * cfg.Design.OuterLength * cfg.Design.OuterWidth
	rCond := cfg.Thermal.FR4Thickness / (cfg.Thermal.ThermalConductivityFR4 * area)
	rConv := 1 / (cfg.Thermal.ConvectionCoefficient * area)
	want := power * (rCond * rConv) / (rCond + rConv)

	assert.InDelta(t, want, d.GroundRise(power), 1e-12)
	assert.Zero(t, d.GroundRise(0))
}

func TestThermalReportEnvironments(t *testing.T) {
	vacuumOnly := testConfig()
	d := NewDesigner(vacuumOnly)

	report, err := d.Thermal(1.0)
	require.NoError(t, err)
	assert.Nil(t, report.Ground, "no ground test without a convection coefficient")
	assert.Positive(t, report.Space.Rise)
	assert.InDelta(t, report.Space.Ambient+report.Space.Rise, report.Space.Final, 1e-12)

	withGround := testConfig()
	withGround.Thermal.ConvectionCoefficient = 10
	report, err = NewDesigner(withGround).Thermal(1.0)
	require.NoError(t, err)
	require.NotNil(t, report.Ground)
	assert.Positive(t, report.Ground.Rise)
}

func TestThermalReportSafe(t *testing.T) {
	safe := ThermalReport{Space: EnvReport{Ambient: 0, Rise: 10, Final: 10}}
	assert.True(t, safe.Safe(85))
	assert.False(t, safe.Safe(5))

	hotGround := ThermalReport{
		Space:  EnvReport{Ambient: 0, Rise: 10, Final: 10},
		Ground: &EnvReport{Ambient: 20, Rise: 80, Final: 100},
	}
	assert.False(t, hotGround.Safe(85), "every environment must be safe")
}
