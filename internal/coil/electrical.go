package coil

import (
	"math"

	"github.com/lundeen06/magtorq-designer/internal/physics"
)

// Electrical model: DC resistance at operating temperature, the
// current allowed by the supply and fabrication budgets, the Wheeler
// inductance approximation, and the magnetic dipole moment.

// CrossSection returns the conductor cross-sectional area (m²) for a
// trace width.
func (d *Designer) CrossSection(traceWidth float64) float64 {
	return traceWidth * d.copperThickness
}

// Resistance returns the total coil resistance in ohms at the
// configured operating temperature. Returns +Inf when no coil fits,
// which signals an unusable candidate to every downstream consumer.
func (d *Designer) Resistance(traceWidth float64) float64 {
	if traceWidth <= 0 || d.MaxTurns(traceWidth) <= 0 {
		return math.Inf(1)
	}

	totalLength := d.TotalTraceLength(traceWidth)
	crossSection := d.CrossSection(traceWidth)

	r := d.cfg.Physical.CopperResistivity * totalLength / crossSection

	// Copper resistivity rises with temperature; quote the resistance
	// at the operating limit so the current bound is conservative.
	alpha := d.cfg.Physical.TemperatureCoefficient
	if alpha > 0 {
		r *= 1 + alpha*(d.cfg.Design.OperatingTemp-physics.ReferenceTemp)
	}
	return r
}

// Current returns the coil current in amperes: the minimum of the
// Ohm's-law current V/R, the power-limited current Pmax/V, and the
// current-density-limited current Jmax·w·t. All three bounds apply to
// every candidate; any one can dominate depending on geometry.
func (d *Designer) Current(resistance, traceWidth float64) float64 {
	if resistance <= 0 || math.IsInf(resistance, 1) {
		return 0
	}
	dc := d.cfg.Design

	fromResistance := dc.Voltage / resistance
	fromPower := dc.MaxPower / dc.Voltage
	fromDensity := d.cfg.Physical.CurrentDensityLimit * d.CrossSection(traceWidth)

	return math.Min(fromResistance, math.Min(fromPower, fromDensity))
}

// CurrentDensity returns the current density (A/m²) in the trace.
func (d *Designer) CurrentDensity(current, traceWidth float64) float64 {
	cs := d.CrossSection(traceWidth)
	if cs <= 0 {
		return 0
	}
	return current / cs
}

// Inductance returns the coil inductance in henries using the modified
// Wheeler approximation for a rectangular planar coil. Layers wired in
// series multiply the effective turn count, so inductance scales with
// the square of turns·layers while moment scales only linearly.
func (d *Designer) Inductance(traceWidth float64) float64 {
	turns := d.MaxTurns(traceWidth)
	if turns <= 0 || traceWidth <= 0 {
		return 0
	}
	dc := d.cfg.Design

	avgLength := (dc.OuterLength + dc.InnerLength) / 2
	avgWidth := (dc.OuterWidth + dc.InnerWidth) / 2
	avgDiameter := (avgLength + avgWidth) / 2
	if avgDiameter <= 0 {
		return 0
	}

	effectiveTurns := float64(turns * d.coilLayers)
	l := physics.WheelerK1 * d.cfg.Physical.VacuumPermeability *
		effectiveTurns * effectiveTurns *
		avgDiameter * (math.Log(4*avgDiameter/traceWidth) - 0.5)
	if l < 0 {
		return 0
	}
	return l
}

// TimeConstant returns the RL time constant τ = L/R in seconds.
func (d *Designer) TimeConstant(traceWidth float64) float64 {
	r := d.Resistance(traceWidth)
	if r <= 0 || math.IsInf(r, 1) {
		return 0
	}
	return d.Inductance(traceWidth) / r
}

// TimeToFraction returns the time (s) for the coil current to reach
// the given fraction of its final value after a voltage step,
// t = −τ·ln(1 − f).
func (d *Designer) TimeToFraction(traceWidth, fraction float64) float64 {
	if fraction <= 0 || fraction >= 1 {
		return 0
	}
	return -d.TimeConstant(traceWidth) * math.Log(1-fraction)
}

// MagneticMoment returns the magnetic dipole moment (A·m²): enclosed
// area summed over turns, times current, times series coil layers.
func (d *Designer) MagneticMoment(traceWidth, current float64) float64 {
	if current <= 0 || d.MaxTurns(traceWidth) <= 0 {
		return 0
	}
	return d.totalTurnArea(traceWidth) * current * float64(d.coilLayers)
}
