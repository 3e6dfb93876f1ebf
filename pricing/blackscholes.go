// Package pricing implements European option pricing under the
// Black-Scholes model, plus the implied-volatility tooling built on it.
package pricing

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// OptionType selects the payoff side of a European option.
type OptionType string

const (
	Call OptionType = "call"
	Put  OptionType = "put"
)

// InvalidParameterError reports which pricing input failed validation.
type InvalidParameterError struct {
	Field string
}

func (e *InvalidParameterError) Error() string {
	return "pricing: invalid parameter: " + e.Field
}

var stdNormal = distuv.UnitNormal

// BlackScholes prices a European option.
//
//	S0    spot price, > 0
//	K     strike, > 0
//	r     risk-free rate, >= 0
//	sigma volatility, > 0
//	T     time to expiry in years, > 0
func BlackScholes(S0, K, r, sigma, T float64, typ OptionType) (float64, error) {
	switch {
	case !(S0 > 0):
		return 0, &InvalidParameterError{Field: "S0"}
	case !(K > 0):
		return 0, &InvalidParameterError{Field: "K"}
	case math.IsNaN(r) || r < 0:
		return 0, &InvalidParameterError{Field: "r"}
	case !(sigma > 0):
		return 0, &InvalidParameterError{Field: "sigma"}
	case !(T > 0):
		return 0, &InvalidParameterError{Field: "T"}
	}

	d1, d2 := d1d2(S0, K, r, sigma, T)

	switch typ {
	case Call:
		return S0*stdNormal.CDF(d1) - K*math.Exp(-r*T)*stdNormal.CDF(d2), nil
	case Put:
		return K*math.Exp(-r*T)*stdNormal.CDF(-d2) - S0*stdNormal.CDF(-d1), nil
	default:
		return 0, &InvalidParameterError{Field: "option_type"}
	}
}

// Vega is the sensitivity of the option price to volatility. It is the same
// for calls and puts.
func Vega(S0, K, r, sigma, T float64) float64 {
	d1, _ := d1d2(S0, K, r, sigma, T)
	return S0 * math.Sqrt(T) * stdNormal.Prob(d1)
}

func d1d2(S0, K, r, sigma, T float64) (float64, float64) {
	sqrtT := math.Sqrt(T)
	d1 := (math.Log(S0/K) + (r+0.5*sigma*sigma)*T) / (sigma * sqrtT)
	return d1, d1 - sigma*sqrtT
}
