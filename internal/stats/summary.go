// Package stats computes descriptive statistics over drained candidate
// tables, for quick sanity checks of a search configuration.
package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/trajgen/internal/generator"
)

// ColumnSummary describes one numeric column of a candidate table.
type ColumnSummary struct {
	Name   string
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize reports per-column statistics for vx, vy plus the derived
// speed and angle columns. Returns nil for an empty table.
func Summarize(t *generator.Table) []ColumnSummary {
	if t.Len() == 0 {
		return nil
	}

	speed := make([]float64, t.Len())
	angle := make([]float64, t.Len())
	for i := 0; i < t.Len(); i++ {
		speed[i] = math.Hypot(t.VX[i], t.VY[i])
		angle[i] = math.Atan2(t.VY[i], t.VX[i])
	}

	return []ColumnSummary{
		summarize("vx", t.VX),
		summarize("vy", t.VY),
		summarize("speed", speed),
		summarize("angle", angle),
	}
}

func summarize(name string, col []float64) ColumnSummary {
	return ColumnSummary{
		Name:   name,
		Mean:   stat.Mean(col, nil),
		StdDev: stat.StdDev(col, nil),
		Min:    floats.Min(col),
		Max:    floats.Max(col),
	}
}
