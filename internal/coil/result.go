package coil

import "math"

// The design record is the interchange artifact consumed by the
// rendering and board-layout collaborators. Field units are display
// units (mm, Ω, V, A, W, A/mm², µH, ms, A·m²) and rounding is fixed
// per field, applied only here; everything upstream stays in SI base
// units so rounding error never compounds.

// RectRecord is a rectangle in millimeters.
type RectRecord struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
}

// DimensionsRecord echoes the configured board envelope.
type DimensionsRecord struct {
	Inner RectRecord `json:"inner"`
	Outer RectRecord `json:"outer"`
}

// TracesRecord describes the winning trace layout.
type TracesRecord struct {
	Width         float64 `json:"width"`           // mm
	Spacing       float64 `json:"spacing"`         // mm
	TurnsPerLayer int     `json:"turns_per_layer"` // count
	TotalLayers   int     `json:"total_layers"`    // count
	TotalLength   float64 `json:"total_length"`    // m
}

// ElectricalRecord holds the steady-state electrical metrics.
type ElectricalRecord struct {
	Resistance     float64 `json:"resistance"`      // Ω
	Voltage        float64 `json:"voltage"`         // V
	Current        float64 `json:"current"`         // A
	Power          float64 `json:"power"`           // W
	CurrentDensity float64 `json:"current_density"` // A/mm²
	Inductance     float64 `json:"inductance"`      // µH
}

// EnvRecord is the thermal outcome in one environment.
type EnvRecord struct {
	Ambient          float64 `json:"ambient"`           // °C
	TemperatureRise  float64 `json:"temperature_rise"`  // °C
	FinalTemperature float64 `json:"final_temperature"` // °C
}

// ThermalRecord covers the enabled environments.
type ThermalRecord struct {
	Space      EnvRecord  `json:"space"`
	GroundTest *EnvRecord `json:"ground_test,omitempty"`
}

// DynamicsRecord holds the RL step-response metrics.
type DynamicsRecord struct {
	Inductance         float64 `json:"inductance"`            // µH
	TimeConstant       float64 `json:"time_constant"`         // ms
	TimeTo99Percent    float64 `json:"time_to_99_percent"`    // ms
	MaxMoment99Percent float64 `json:"max_moment_99_percent"` // A·m²
}

// PerformanceRecord holds the figure of merit.
type PerformanceRecord struct {
	MagneticMoment float64 `json:"magnetic_moment"` // A·m²
}

// Record is the serialized design result.
type Record struct {
	Dimensions  DimensionsRecord  `json:"dimensions"`
	Traces      TracesRecord      `json:"traces"`
	Electrical  ElectricalRecord  `json:"electrical"`
	Thermal     ThermalRecord     `json:"thermal"`
	Dynamics    DynamicsRecord    `json:"dynamics"`
	Performance PerformanceRecord `json:"performance"`
}

// BuildRecord re-runs the models for the winning trace width and
// assembles the design record. A non-positive width produces the
// degenerate zero record with the board envelope echoed, which is how
// "no design found" is represented downstream.
func (d *Designer) BuildRecord(traceWidth float64) (*Record, error) {
	rec := &Record{Dimensions: d.dimensionsRecord()}
	if traceWidth <= 0 {
		rec.Thermal.Space = EnvRecord{Ambient: round(d.cfg.Design.AmbientTemp, 2)}
		rec.Thermal.Space.FinalTemperature = rec.Thermal.Space.Ambient
		return rec, nil
	}

	c, err := d.Evaluate(traceWidth)
	if err != nil {
		return nil, err
	}

	m := d.cfg.Manufacturing
	rec.Traces = TracesRecord{
		Width:         round(c.TraceWidth*1e3, 3),
		Spacing:       round(m.MinTraceSpacing*1e3, 3),
		TurnsPerLayer: c.TurnsPerLayer,
		TotalLayers:   d.cfg.Design.NumLayers,
		TotalLength:   round(c.TotalLength, 1),
	}
	rec.Electrical = ElectricalRecord{
		Resistance:     round(finite(c.Resistance), 2),
		Voltage:        round(d.cfg.Design.Voltage, 2),
		Current:        round(c.Current, 2),
		Power:          round(c.Power, 2),
		CurrentDensity: round(c.CurrentDensity/1e6, 2),
		Inductance:     round(c.Inductance*1e6, 3),
	}
	rec.Thermal.Space = envRecord(c.Thermal.Space)
	if c.Thermal.Ground != nil {
		gt := envRecord(*c.Thermal.Ground)
		rec.Thermal.GroundTest = &gt
	}
	rec.Dynamics = DynamicsRecord{
		Inductance:         round(c.Inductance*1e6, 3),
		TimeConstant:       round(c.TimeConstant*1e3, 2),
		TimeTo99Percent:    round(c.TimeTo99Percent*1e3, 2),
		MaxMoment99Percent: round(c.MagneticMoment*0.99, 4),
	}
	rec.Performance = PerformanceRecord{MagneticMoment: round(c.MagneticMoment, 4)}
	return rec, nil
}

func (d *Designer) dimensionsRecord() DimensionsRecord {
	dc := d.cfg.Design
	return DimensionsRecord{
		Inner: RectRecord{Length: round(dc.InnerLength*1e3, 1), Width: round(dc.InnerWidth*1e3, 1)},
		Outer: RectRecord{Length: round(dc.OuterLength*1e3, 1), Width: round(dc.OuterWidth*1e3, 1)},
	}
}

func envRecord(e EnvReport) EnvRecord {
	return EnvRecord{
		Ambient:          round(e.Ambient, 2),
		TemperatureRise:  round(e.Rise, 2),
		FinalTemperature: round(e.Final, 2),
	}
}

// finite maps the +Inf "no coil fits" sentinel to 0 so the record
// stays serializable.
func finite(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return v
}

// round to a fixed number of decimal places.
func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
