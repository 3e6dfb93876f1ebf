package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImpliedVolRoundTrip(t *testing.T) {
	S0, K, r, T := 100.0, 105.0, 0.05, 1.0

	price, err := BlackScholes(S0, K, r, 0.25, T, Call)
	require.NoError(t, err)

	vol, err := ImpliedVolatility(S0, K, r, T, price, Call, IVOptions{})
	require.NoError(t, err)
	assert.InDelta(t, 0.25, vol, 1e-4)
}

func TestImpliedVolPut(t *testing.T) {
	S0, K, r, T := 100.0, 95.0, 0.02, 0.5

	price, err := BlackScholes(S0, K, r, 0.35, T, Put)
	require.NoError(t, err)

	vol, err := ImpliedVolatility(S0, K, r, T, price, Put, IVOptions{})
	require.NoError(t, err)
	assert.InDelta(t, 0.35, vol, 1e-4)
}

func TestImpliedVolFarFromGuess(t *testing.T) {
	// Converges even when the true volatility is far from the 0.3 default.
	price, err := BlackScholes(100, 100, 0.05, 0.8, 1, Call)
	require.NoError(t, err)

	vol, err := ImpliedVolatility(100, 100, 0.05, 1, price, Call, IVOptions{})
	require.NoError(t, err)
	assert.InDelta(t, 0.8, vol, 1e-4)
}

func TestImpliedVolIterationBudget(t *testing.T) {
	price, err := BlackScholes(100, 100, 0.05, 0.25, 1, Call)
	require.NoError(t, err)

	// One iteration cannot reach a 1e-6 tolerance from a 0.3 guess.
	vol, err := ImpliedVolatility(100, 100, 0.05, 1, price, Call, IVOptions{MaxIter: 1})
	assert.ErrorIs(t, err, ErrNoConvergence)
	assert.Greater(t, vol, 0.0)
}
