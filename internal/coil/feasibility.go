package coil

import "fmt"

// Verdict is the typed feasibility outcome for one candidate trace
// width. Every check is evaluated for every candidate so a report can
// name exactly what ruled a width out.
type Verdict struct {
	TraceWidth float64

	InManufacturingRange bool
	HasTurns             bool
	CurrentDensityOK     bool
	ThermallySafe        bool
	WithinPowerBudget    bool
}

// OK reports whether every check passed.
func (v Verdict) OK() bool {
	return v.InManufacturingRange && v.HasTurns && v.CurrentDensityOK &&
		v.ThermallySafe && v.WithinPowerBudget
}

// Reason returns a short description of the first failed check, or
// "feasible" when all checks passed.
func (v Verdict) Reason() string {
	switch {
	case !v.InManufacturingRange:
		return fmt.Sprintf("trace width %.4g m outside manufacturing range", v.TraceWidth)
	case !v.HasTurns:
		return "no complete turn fits between outer edge and keepout"
	case !v.CurrentDensityOK:
		return "current density exceeds the configured limit"
	case !v.ThermallySafe:
		return "equilibrium temperature exceeds the operating limit"
	case !v.WithinPowerBudget:
		return "dissipated power exceeds the configured budget"
	default:
		return "feasible"
	}
}

// checkFeasibility runs the five constraint checks against an already
// evaluated candidate.
func (d *Designer) checkFeasibility(c *Candidate) Verdict {
	m := d.cfg.Manufacturing
	dc := d.cfg.Design

	return Verdict{
		TraceWidth:           c.TraceWidth,
		InManufacturingRange: c.TraceWidth >= m.MinTraceWidth && c.TraceWidth <= m.MaxTraceWidth,
		HasTurns:             c.TurnsPerLayer >= 1,
		CurrentDensityOK:     c.CurrentDensity <= d.cfg.Physical.CurrentDensityLimit,
		ThermallySafe:        c.Thermal.Safe(dc.OperatingTemp),
		WithinPowerBudget:    c.Power <= dc.MaxPower,
	}
}
