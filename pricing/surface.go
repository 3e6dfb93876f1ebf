package pricing

import (
	"errors"
	"math"
)

// SurfaceConfig describes an implied-volatility surface grid centered on a
// strike and a maturity.
type SurfaceConfig struct {
	S0      float64    // spot price, > 0
	KCenter float64    // central strike, > 0
	R       float64    // risk-free rate, >= 0
	T       float64    // central maturity in years, > 0
	Type    OptionType // call or put

	StrikePoints int     // strikes on the grid, default 50
	StrikeWidth  float64 // half-width around KCenter, default 20
	MaturityStep float64 // maturity grid step in years, default 0.05
	BaseSigma    float64 // volatility used to synthesize market prices, default 0.2
}

func (c SurfaceConfig) withDefaults() SurfaceConfig {
	if c.StrikePoints <= 0 {
		c.StrikePoints = 50
	}
	if c.StrikeWidth <= 0 {
		c.StrikeWidth = 20
	}
	if c.MaturityStep <= 0 {
		c.MaturityStep = 0.05
	}
	if c.BaseSigma <= 0 {
		c.BaseSigma = 0.2
	}
	return c
}

// VolSurface holds implied volatilities over a strike/maturity grid.
// Vols[i][j] corresponds to Strikes[i] and Maturities[j].
type VolSurface struct {
	Strikes    []float64
	Maturities []float64
	Vols       [][]float64
}

// Surface synthesizes market prices at BaseSigma, nudges out-of-the-money
// quotes upward to make a volatility smile visible, and inverts each quote
// back to an implied volatility.
func Surface(cfg SurfaceConfig) (*VolSurface, error) {
	cfg = cfg.withDefaults()

	if !(cfg.S0 > 0) {
		return nil, &InvalidParameterError{Field: "S0"}
	}
	if !(cfg.KCenter > 0) {
		return nil, &InvalidParameterError{Field: "K"}
	}
	if !(cfg.T > 0) {
		return nil, &InvalidParameterError{Field: "T"}
	}

	strikes := strikeGrid(cfg.KCenter, cfg.StrikeWidth, cfg.StrikePoints)
	maturities := maturityGrid(0.1*cfg.T, cfg.T, cfg.MaturityStep)

	vols := make([][]float64, len(strikes))
	for i, k := range strikes {
		vols[i] = make([]float64, len(maturities))
		for j, t := range maturities {
			price, err := BlackScholes(cfg.S0, k, cfg.R, cfg.BaseSigma, t, cfg.Type)
			if err != nil {
				return nil, err
			}

			// OTM bias so the smile shows up in the inverted surface.
			switch {
			case k < cfg.S0:
				price *= 1.005
			case k > cfg.S0:
				price *= 1.003
			}

			vol, err := ImpliedVolatility(cfg.S0, k, cfg.R, t, price, cfg.Type, IVOptions{})
			if err != nil && !errors.Is(err, ErrNoConvergence) {
				return nil, err
			}
			vols[i][j] = vol
		}
	}

	return &VolSurface{Strikes: strikes, Maturities: maturities, Vols: vols}, nil
}

func strikeGrid(center, width float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = center
		return out
	}
	lo, hi := center-width, center+width
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}

// maturityGrid returns start, start+step, ... up to and including stop
// (within floating-point slack).
func maturityGrid(start, stop, step float64) []float64 {
	n := int(math.Floor((stop-start)/step+1e-9)) + 1
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, start+float64(i)*step)
	}
	return out
}
