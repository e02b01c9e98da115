package coil

import (
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// The objective is piecewise-constant in trace width: turn count is a
// floor function, and infeasible widths flatten the moment to zero.
// Gradient descent is unreliable on such a surface, so the optimizer
// evaluates a dense deterministic sample of the bounded domain, picks
// the feasible maximum, then refines with a finer sweep around the
// winner.

const (
	sweepSamples  = 2048
	refineSamples = 256
)

// Optimize searches the manufacturing trace-width range for the
// feasible candidate with maximum magnetic moment. Ties go to the
// smallest width for reproducibility. When no width is feasible it
// returns a zero-valued candidate, not an error; downstream tooling
// reports "no design found". A thermal solver failure aborts the run.
func (d *Designer) Optimize() (*Candidate, error) {
	m := d.cfg.Manufacturing

	widths := sampleRange(m.MinTraceWidth, m.MaxTraceWidth, sweepSamples)
	candidates, err := d.evaluateAll(widths)
	if err != nil {
		return nil, err
	}

	best, bestIdx := selectBest(candidates)
	if best == nil {
		return &Candidate{}, nil
	}

	// Fine sweep between the winner's neighbors; the coarse grid can
	// straddle a turn-count boundary.
	lo, hi := widths[maxInt(bestIdx-1, 0)], widths[minInt(bestIdx+1, len(widths)-1)]
	if hi > lo {
		refined, err := d.evaluateAll(sampleRange(lo, hi, refineSamples))
		if err != nil {
			return nil, err
		}
		if cand, _ := selectBest(refined); cand != nil && cand.MagneticMoment > best.MagneticMoment {
			best = cand
		}
	}
	return best, nil
}

// evaluateAll evaluates every width on a bounded worker pool. Each
// evaluation is pure, so workers share nothing but the result slice,
// written at disjoint indexes.
func (d *Designer) evaluateAll(widths []float64) ([]*Candidate, error) {
	candidates := make([]*Candidate, len(widths))

	workers := runtime.GOMAXPROCS(0)
	if workers > len(widths) {
		workers = len(widths)
	}

	errs := make([]error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := worker; i < len(widths); i += workers {
				cand, err := d.Evaluate(widths[i])
				if err != nil {
					errs[worker] = err
					return
				}
				candidates[i] = cand
			}
		}(w)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return candidates, nil
}

// selectBest returns the feasible candidate with the highest magnetic
// moment, scanning in ascending width order so ties resolve to the
// smallest width. Returns nil when nothing is feasible.
func selectBest(candidates []*Candidate) (*Candidate, int) {
	var best *Candidate
	bestIdx := -1
	for i, c := range candidates {
		if c == nil || !c.Feasible() || c.MagneticMoment <= 0 {
			continue
		}
		if best == nil || c.MagneticMoment > best.MagneticMoment {
			best = c
			bestIdx = i
		}
	}
	return best, bestIdx
}

// sampleRange returns n linearly spaced widths covering [lo, hi]
// inclusive. A degenerate range collapses to a single sample.
func sampleRange(lo, hi float64, n int) []float64 {
	if hi <= lo {
		return []float64{lo}
	}
	widths := make([]float64, n)
	floats.Span(widths, lo, hi)
	return widths
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
