package coil

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRecordUnitsAndRounding(t *testing.T) {
	d := NewDesigner(testConfig())

	rec, err := d.BuildRecord(4.5e-4)
	require.NoError(t, err)

	// Dimensions echoed in millimeters.
	assert.Equal(t, 100.0, rec.Dimensions.Outer.Length)
	assert.Equal(t, 100.0, rec.Dimensions.Outer.Width)
	assert.Equal(t, 20.0, rec.Dimensions.Inner.Length)
	assert.Equal(t, 20.0, rec.Dimensions.Inner.Width)

	assert.Equal(t, 0.45, rec.Traces.Width)
	assert.Equal(t, 0.1, rec.Traces.Spacing)
	assert.Equal(t, 71, rec.Traces.TurnsPerLayer)
	assert.Equal(t, 6, rec.Traces.TotalLayers)
	assert.Positive(t, rec.Traces.TotalLength)

	// Rounding is fixed per field.
	assert.Equal(t, rec.Electrical.Resistance, round(rec.Electrical.Resistance, 2))
	assert.Equal(t, rec.Electrical.CurrentDensity, round(rec.Electrical.CurrentDensity, 2))
	assert.Equal(t, rec.Performance.MagneticMoment, round(rec.Performance.MagneticMoment, 4))
	assert.Equal(t, rec.Dynamics.TimeConstant, round(rec.Dynamics.TimeConstant, 2))

	// Current density is reported in A/mm², voltage echoed.
	c, err := d.Evaluate(4.5e-4)
	require.NoError(t, err)
	assert.InDelta(t, c.CurrentDensity/1e6, rec.Electrical.CurrentDensity, 0.005)
	assert.Equal(t, 8.2, rec.Electrical.Voltage)
	assert.InDelta(t, c.Inductance*1e6, rec.Electrical.Inductance, 0.0005)
	assert.Equal(t, rec.Electrical.Inductance, rec.Dynamics.Inductance)

	// 99 %-settled moment derives from the rounded figure of merit's source.
	assert.InDelta(t, c.MagneticMoment*0.99, rec.Dynamics.MaxMoment99Percent, 0.00005)
}

func TestBuildRecordRoundTrip(t *testing.T) {
	d := NewDesigner(testConfig())

	rec, err := d.BuildRecord(4.5e-4)
	require.NoError(t, err)

	out, err := json.Marshal(rec)
	require.NoError(t, err)

	var parsed Record
	require.NoError(t, json.Unmarshal(out, &parsed))
	assert.Equal(t, *rec, parsed, "serializing and re-parsing must reproduce the rounded fields")

	// And a second pass is idempotent.
	out2, err := json.Marshal(&parsed)
	require.NoError(t, err)
	assert.JSONEq(t, string(out), string(out2))
}

func TestBuildRecordDegenerate(t *testing.T) {
	d := NewDesigner(testConfig())

	rec, err := d.BuildRecord(0)
	require.NoError(t, err)

	assert.Equal(t, 100.0, rec.Dimensions.Outer.Length, "board envelope still echoed")
	assert.Zero(t, rec.Traces.Width)
	assert.Zero(t, rec.Traces.TurnsPerLayer)
	assert.Zero(t, rec.Electrical.Resistance)
	assert.Zero(t, rec.Performance.MagneticMoment)
	assert.Nil(t, rec.Thermal.GroundTest)

	// Degenerate records must still serialize cleanly.
	_, err = json.Marshal(rec)
	assert.NoError(t, err)
}

func TestBuildRecordInfeasibleWidthStaysSerializable(t *testing.T) {
	d := NewDesigner(testConfig())

	// 50 mm trace: no coil fits, resistance is the +Inf sentinel.
	rec, err := d.BuildRecord(0.05)
	require.NoError(t, err)

	assert.Zero(t, rec.Electrical.Resistance, "sentinel must not leak into the record")
	_, err = json.Marshal(rec)
	assert.NoError(t, err)
}

func TestBuildRecordGroundTestEnvironment(t *testing.T) {
	cfg := testConfig()
	cfg.Thermal.ConvectionCoefficient = 10
	d := NewDesigner(cfg)

	rec, err := d.BuildRecord(4.5e-4)
	require.NoError(t, err)

	require.NotNil(t, rec.Thermal.GroundTest)
	assert.InDelta(t, rec.Thermal.GroundTest.Ambient+rec.Thermal.GroundTest.TemperatureRise,
		rec.Thermal.GroundTest.FinalTemperature, 0.011)
	assert.Positive(t, rec.Thermal.Space.TemperatureRise)
}

func TestRoundHelper(t *testing.T) {
	assert.Equal(t, 1.23, round(1.23456, 2))
	assert.Equal(t, 1.235, round(1.23456, 3))
	assert.Equal(t, -1.23, round(-1.23456, 2))
	assert.Zero(t, round(0, 4))
	assert.False(t, math.Signbit(round(0, 4)))
}
