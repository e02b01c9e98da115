package coil

import (
	"errors"
	"fmt"
	"math"

	"github.com/lundeen06/magtorq-designer/internal/physics"
)

// Steady-state thermal model. In vacuum the board sheds dissipated
// power by radiation only, so the heat balance
//
//	P = ε·σ·A·(T⁴ − Ta⁴)
//
// is quartic in T and solved numerically. During an ambient-air
// ground test, conduction through the substrate and convection to air
// form a thermal-resistance network and the rise is linear in P.

// ErrThermalNoConvergence is returned when the heat-balance solve does
// not converge within its iteration budget. It is fatal for a design
// run: an unconverged solve must never be reported as a safe reading.
var ErrThermalNoConvergence = errors.New("heat-balance solve did not converge")

const (
	thermalMaxIterations = 100
	thermalToleranceK    = 1e-9
)

// radiatingArea returns the total heat-shedding surface in m².
func (d *Designer) radiatingArea() float64 {
	dc := d.cfg.Design
	return d.cfg.Thermal.SurfaceAreaMultiplier * dc.OuterLength * dc.OuterWidth
}

// RadiativeRise solves the radiative heat balance for the equilibrium
// temperature rise (K, equal to °C rise) above ambient in vacuum.
func (d *Designer) RadiativeRise(power float64) (float64, error) {
	if power <= 0 {
		return 0, nil
	}

	ambientK := d.cfg.Design.AmbientTemp + physics.KelvinOffset
	k := physics.Emissivity * physics.StefanBoltzmann * d.radiatingArea()

	// Newton iteration on f(T) = k·(T⁴ − Ta⁴) − P, seeded a few
	// kelvin above ambient. f is monotonic for T > 0 so the iteration
	// is well behaved, but the budget is still bounded.
	t := ambientK + physics.ThermalSeedOffset
	for i := 0; i < thermalMaxIterations; i++ {
		f := k*(math.Pow(t, 4)-math.Pow(ambientK, 4)) - power
		df := 4 * k * math.Pow(t, 3)
		step := f / df

		next := t - step
		if next <= 0 {
			next = t / 2
		}
		if math.Abs(next-t) < thermalToleranceK {
			return next - ambientK, nil
		}
		t = next
	}
	return 0, fmt.Errorf("thermal model: %w after %d iterations (P=%.3f W)", ErrThermalNoConvergence, thermalMaxIterations, power)
}

// GroundRise returns the temperature rise (°C) during an ambient-air
// ground test: conduction through the FR4 substrate in parallel with
// convection to the surrounding air.
func (d *Designer) GroundRise(power float64) float64 {
	if power <= 0 {
		return 0
	}
	th := d.cfg.Thermal
	area := d.radiatingArea()

	rConduction := th.FR4Thickness / (th.ThermalConductivityFR4 * area)
	rConvection := 1 / (th.ConvectionCoefficient * area)
	rTotal := (rConduction * rConvection) / (rConduction + rConvection)

	return power * rTotal
}

// EnvReport is the thermal outcome in one operating environment.
type EnvReport struct {
	Ambient float64 // °C
	Rise    float64 // °C
	Final   float64 // °C
}

// ThermalReport covers every environment the configuration enables:
// vacuum always, the ground test only when a convection coefficient is
// configured.
type ThermalReport struct {
	Space  EnvReport
	Ground *EnvReport
}

// Thermal evaluates the enabled environments for a dissipated power.
func (d *Designer) Thermal(power float64) (ThermalReport, error) {
	ambient := d.cfg.Design.AmbientTemp

	rise, err := d.RadiativeRise(power)
	if err != nil {
		return ThermalReport{}, err
	}
	report := ThermalReport{
		Space: EnvReport{Ambient: ambient, Rise: rise, Final: ambient + rise},
	}

	if d.cfg.GroundTestEnabled() {
		groundRise := d.GroundRise(power)
		report.Ground = &EnvReport{Ambient: ambient, Rise: groundRise, Final: ambient + groundRise}
	}
	return report, nil
}

// Safe reports whether every modeled environment stays at or below the
// operating temperature limit.
func (r ThermalReport) Safe(operatingTemp float64) bool {
	if r.Space.Final > operatingTemp {
		return false
	}
	if r.Ground != nil && r.Ground.Final > operatingTemp {
		return false
	}
	return true
}
