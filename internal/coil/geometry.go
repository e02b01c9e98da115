package coil

// Geometry of the coil: concentric rectangular turns nested inward
// from the outer board edge toward the inner keepout rectangle, with a
// short connector segment joining consecutive turns.

// pitch is the center-to-center distance between adjacent turns.
func (d *Designer) pitch(traceWidth float64) float64 {
	return traceWidth + d.cfg.Manufacturing.MinTraceSpacing
}

// MaxTurns returns the number of complete turns that fit between the
// outer rectangle and the inner keepout for the given trace width.
// Returns 0 when no coil fits at all.
func (d *Designer) MaxTurns(traceWidth float64) int {
	if traceWidth <= 0 {
		return 0
	}
	dc := d.cfg.Design
	spacing := d.cfg.Manufacturing.MinTraceSpacing

	// The innermost turn needs clearance for one trace and a gap on
	// each side to route the connection back out.
	innerClearance := traceWidth + 2*spacing
	effectiveInnerLength := dc.InnerLength + 2*innerClearance
	effectiveInnerWidth := dc.InnerWidth + 2*innerClearance

	availableHeight := (dc.OuterLength - effectiveInnerLength) / 2
	availableWidth := (dc.OuterWidth - effectiveInnerWidth) / 2
	if availableHeight <= 0 || availableWidth <= 0 {
		return 0
	}

	pitch := d.pitch(traceWidth)
	turnsByHeight := int(availableHeight / pitch)
	turnsByWidth := int(availableWidth / pitch)

	turns := turnsByHeight
	if turnsByWidth < turns {
		turns = turnsByWidth
	}
	if turns < 1 {
		// Margin exists but is smaller than one pitch; a single turn
		// still fits inside the clearance already reserved.
		return 1
	}
	return turns
}

// TurnLength returns the routed length of turn number n (0 is the
// outermost turn), including the connector segment to the next turn or
// to the layer via.
func (d *Designer) TurnLength(n int, traceWidth float64) float64 {
	dc := d.cfg.Design
	offset := float64(n) * d.pitch(traceWidth)

	length := dc.OuterLength - 2*offset
	width := dc.OuterWidth - 2*offset
	if length < 0 {
		length = 0
	}
	if width < 0 {
		width = 0
	}

	perimeter := 2 * (length + width)
	return perimeter + d.pitch(traceWidth)
}

// TurnArea returns the area enclosed by turn number n. Once the inward
// offset crosses the inner keepout the area is clamped to zero, never
// negative.
func (d *Designer) TurnArea(n int, traceWidth float64) float64 {
	dc := d.cfg.Design
	offset := float64(n) * d.pitch(traceWidth)

	length := dc.OuterLength - 2*offset
	width := dc.OuterWidth - 2*offset
	if length <= 0 || width <= 0 {
		return 0
	}
	return length * width
}

// TotalTraceLength returns the routed copper length over all turns and
// all coil layers, in meters.
func (d *Designer) TotalTraceLength(traceWidth float64) float64 {
	turns := d.MaxTurns(traceWidth)
	if turns <= 0 {
		return 0
	}
	var total float64
	for n := 0; n < turns; n++ {
		total += d.TurnLength(n, traceWidth)
	}
	return total * float64(d.coilLayers)
}

// totalTurnArea returns the summed enclosed area of all turns on a
// single layer, in m².
func (d *Designer) totalTurnArea(traceWidth float64) float64 {
	turns := d.MaxTurns(traceWidth)
	var total float64
	for n := 0; n < turns; n++ {
		total += d.TurnArea(n, traceWidth)
	}
	return total
}
