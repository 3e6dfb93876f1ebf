package pricing

import (
	"errors"
	"math"
)

// ErrNoConvergence is returned (wrapped around the best estimate) when the
// Newton iteration exhausts its budget without meeting the tolerance. The
// accompanying volatility is still usable as an approximation.
var ErrNoConvergence = errors.New("pricing: implied volatility did not converge")

// IVOptions tunes the implied-volatility search. The zero value selects the
// defaults below.
type IVOptions struct {
	MaxIter      int     // default 300
	Tol          float64 // default 1e-6
	InitialGuess float64 // default 0.3
}

func (o IVOptions) withDefaults() IVOptions {
	if o.MaxIter <= 0 {
		o.MaxIter = 300
	}
	if o.Tol <= 0 {
		o.Tol = 1e-6
	}
	if o.InitialGuess <= 0 {
		o.InitialGuess = 0.3
	}
	return o
}

// ImpliedVolatility inverts the Black-Scholes formula with Newton-Raphson,
// using vega as the derivative. When vega collapses to zero the current
// estimate is returned as-is.
func ImpliedVolatility(S0, K, r, T, marketPrice float64, typ OptionType, opts IVOptions) (float64, error) {
	opts = opts.withDefaults()
	sigma := opts.InitialGuess

	for i := 0; i < opts.MaxIter; i++ {
		price, err := BlackScholes(S0, K, r, sigma, T, typ)
		if err != nil {
			return 0, err
		}

		diff := price - marketPrice
		if math.Abs(diff) < opts.Tol {
			return sigma, nil
		}

		v := Vega(S0, K, r, sigma, T)
		if v == 0 {
			return sigma, nil
		}

		// Newton step, halved back into the domain if it would cross zero.
		next := sigma - diff/v
		if next <= 0 {
			next = sigma / 2
		}
		sigma = next
	}

	return sigma, ErrNoConvergence
}
