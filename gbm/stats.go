package gbm

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary collects descriptive statistics for a simulated path.
type Summary struct {
	Terminal float64 // last value on the path
	Min      float64
	Max      float64

	// Log-return statistics over consecutive grid points. Zero when the
	// path has fewer than two samples.
	MeanLogReturn float64
	StdLogReturn  float64

	// RealizedVol is StdLogReturn scaled by the grid spacing back to an
	// annualized figure. Zero when the path has fewer than two samples.
	RealizedVol float64
}

// Summarize computes path statistics. An empty path yields a zero Summary.
func Summarize(p Path) Summary {
	if len(p.Values) == 0 {
		return Summary{}
	}

	s := Summary{
		Terminal: p.Values[len(p.Values)-1],
		Min:      floats.Min(p.Values),
		Max:      floats.Max(p.Values),
	}
	if len(p.Values) < 2 {
		return s
	}

	rets := make([]float64, len(p.Values)-1)
	for i := range rets {
		rets[i] = math.Log(p.Values[i+1] / p.Values[i])
	}

	s.MeanLogReturn = stat.Mean(rets, nil)
	if len(rets) > 1 {
		s.StdLogReturn = stat.StdDev(rets, nil)
	}

	dt := p.Times[1] - p.Times[0]
	if dt > 0 {
		s.RealizedVol = s.StdLogReturn / math.Sqrt(dt)
	}
	return s
}
