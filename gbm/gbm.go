// Package gbm simulates geometric Brownian motion sample paths.
//
// The process follows the usual log-normal dynamics
//
//	dS = mu*S dt + sigma*S dW
//
// discretized through the closed-form solution, so every simulated value is
// strictly positive regardless of drift or volatility sign.
package gbm

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Params describes a single GBM sample path.
type Params struct {
	S0    float64 // initial value, > 0
	Mu    float64 // annualized drift, any sign
	Sigma float64 // annualized volatility, >= 0
	T     float64 // horizon in years, > 0
	Steps int     // number of samples on the path, > 0
	Seed  *uint64 // optional; same seed and params give bit-identical output
}

// Path is one simulated trajectory. Times and Values always have equal
// length: Times[i] is the grid point at which Values[i] was evaluated.
type Path struct {
	Times  []float64
	Values []float64
}

// Validate checks all parameter constraints. Simulate calls it before any
// random draw, so an invalid parameter set never touches a generator.
func (p Params) Validate() error {
	if !(p.S0 > 0) {
		return &InvalidParameterError{Field: "S0"}
	}
	if math.IsNaN(p.Sigma) || p.Sigma < 0 {
		return &InvalidParameterError{Field: "sigma"}
	}
	if !(p.T > 0) || p.Steps <= 0 {
		return &InvalidParameterError{Field: "T_or_n"}
	}
	return nil
}

// Simulate draws one GBM path.
//
// The Wiener increments are Normal(0, sqrt(T/Steps)); the time grid is Steps
// evenly spaced points over [0, T] inclusive. The generator is owned by this
// call: concurrent Simulate calls never share state, and a fixed Seed is
// reproducible regardless of what other goroutines are doing.
func Simulate(p Params) (Path, error) {
	if err := p.Validate(); err != nil {
		return Path{}, err
	}

	dt := p.T / float64(p.Steps)
	norm := distuv.Normal{
		Mu:    0,
		Sigma: math.Sqrt(dt),
		Src:   rand.NewSource(seedFor(p)),
	}

	// W is the discretized Wiener process, the running sum of increments.
	w := make([]float64, p.Steps)
	var sum float64
	for i := range w {
		sum += norm.Rand()
		w[i] = sum
	}

	times := linspace(0, p.T, p.Steps)

	drift := p.Mu - 0.5*p.Sigma*p.Sigma
	values := make([]float64, p.Steps)
	for i := range values {
		values[i] = p.S0 * math.Exp(drift*times[i]+p.Sigma*w[i])
	}

	return Path{Times: times, Values: values}, nil
}

// seedFor returns the caller's seed when present, otherwise a fresh seed
// from crypto/rand so unseeded runs differ from one another.
func seedFor(p Params) uint64 {
	if p.Seed != nil {
		return *p.Seed
	}
	var seed uint64
	if err := binary.Read(cryptorand.Reader, binary.LittleEndian, &seed); err != nil || seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return seed
}

// linspace returns n evenly spaced points from start to stop inclusive.
// With n == 1 the result is the single point start.
func linspace(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}
