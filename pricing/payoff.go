package pricing

import "math"

// Payoff evaluates the at-expiry profit of a single option, net of the
// premium paid, over the given spot prices.
func Payoff(K, premium float64, typ OptionType, spots []float64) ([]float64, error) {
	out := make([]float64, len(spots))
	switch typ {
	case Call:
		for i, s := range spots {
			out[i] = math.Max(s-K, 0) - premium
		}
	case Put:
		for i, s := range spots {
			out[i] = math.Max(K-s, 0) - premium
		}
	default:
		return nil, &InvalidParameterError{Field: "option_type"}
	}
	return out, nil
}

// SpotGrid returns n evenly spaced spot prices from 0.5*K to 1.5*K, the
// usual range for plotting a payoff around the strike.
func SpotGrid(K float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = 0.5 * K
		return out
	}
	lo, hi := 0.5*K, 1.5*K
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}
