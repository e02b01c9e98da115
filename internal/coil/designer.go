// Package coil models a printed-circuit-board magnetorquer: nested
// rectangular spiral turns on the coil layers of a multi-layer board,
// driven at a fixed supply voltage. It provides the geometric,
// electrical and thermal models plus the constrained trace-width
// optimizer that maximizes magnetic dipole moment.
package coil

import "github.com/lundeen06/magtorq-designer/internal/config"

// Designer evaluates candidate trace widths against a fixed
// configuration. It carries no mutable state; every method is a pure
// function of the configuration and its arguments.
type Designer struct {
	cfg *config.Config

	copperThickness float64 // m
	coilLayers      int     // layers carrying turns
}

// NewDesigner creates a designer for a validated configuration.
func NewDesigner(cfg *config.Config) *Designer {
	return &Designer{
		cfg:             cfg,
		copperThickness: cfg.CopperThickness(),
		coilLayers:      cfg.CoilLayers(),
	}
}

// Config returns the configuration the designer was built from.
func (d *Designer) Config() *config.Config {
	return d.cfg
}

// CopperThickness returns the copper foil thickness in meters.
func (d *Designer) CopperThickness() float64 {
	return d.copperThickness
}

// CoilLayers returns the number of layers carrying coil turns.
func (d *Designer) CoilLayers() int {
	return d.coilLayers
}
