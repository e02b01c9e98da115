package coil

// Candidate holds every derived metric for one evaluated trace width,
// in SI base units. Candidates are ephemeral: the optimizer produces
// and discards thousands of them, and only the winner is re-evaluated
// for the final design record.
type Candidate struct {
	TraceWidth    float64 // m
	TurnsPerLayer int
	TotalLength   float64 // m, all layers

	Resistance     float64 // Ω
	Current        float64 // A
	Power          float64 // W
	CurrentDensity float64 // A/m²

	Inductance      float64 // H
	TimeConstant    float64 // s
	TimeTo99Percent float64 // s

	MagneticMoment float64 // A·m²

	Thermal ThermalReport
	Verdict Verdict
}

// Feasible reports whether the candidate passed every constraint.
func (c *Candidate) Feasible() bool {
	return c.Verdict.OK()
}

// Evaluate runs the geometric, electrical and thermal models for one
// trace width and attaches the feasibility verdict. The only error is
// a thermal solver failure, which is fatal for the whole run.
func (d *Designer) Evaluate(traceWidth float64) (*Candidate, error) {
	c := &Candidate{
		TraceWidth:    traceWidth,
		TurnsPerLayer: d.MaxTurns(traceWidth),
	}

	c.TotalLength = d.TotalTraceLength(traceWidth)
	c.Resistance = d.Resistance(traceWidth)
	c.Current = d.Current(c.Resistance, traceWidth)
	c.Power = c.Current * d.cfg.Design.Voltage
	c.CurrentDensity = d.CurrentDensity(c.Current, traceWidth)

	c.Inductance = d.Inductance(traceWidth)
	c.TimeConstant = d.TimeConstant(traceWidth)
	c.TimeTo99Percent = d.TimeToFraction(traceWidth, 0.99)

	thermal, err := d.Thermal(c.Power)
	if err != nil {
		return nil, err
	}
	c.Thermal = thermal

	c.Verdict = d.checkFeasibility(c)
	if c.Verdict.OK() {
		c.MagneticMoment = d.MagneticMoment(traceWidth, c.Current)
	}
	return c, nil
}
