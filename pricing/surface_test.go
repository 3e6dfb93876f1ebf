package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurfaceShape(t *testing.T) {
	cfg := SurfaceConfig{
		S0:      100,
		KCenter: 100,
		R:       0.05,
		T:       1,
		Type:    Call,

		StrikePoints: 21,
		StrikeWidth:  10,
	}

	surf, err := Surface(cfg)
	require.NoError(t, err)

	require.Equal(t, 21, len(surf.Strikes))
	assert.InDelta(t, 90.0, surf.Strikes[0], 1e-12)
	assert.InDelta(t, 110.0, surf.Strikes[20], 1e-12)

	// Maturities run 0.1T..T in 0.05 steps.
	require.Equal(t, 19, len(surf.Maturities))
	assert.InDelta(t, 0.1, surf.Maturities[0], 1e-9)
	assert.InDelta(t, 1.0, surf.Maturities[18], 1e-9)

	require.Equal(t, len(surf.Strikes), len(surf.Vols))
	for i := range surf.Vols {
		require.Equal(t, len(surf.Maturities), len(surf.Vols[i]))
		for j, v := range surf.Vols[i] {
			assert.Greater(t, v, 0.0, "strike %d maturity %d", i, j)
			assert.Less(t, v, 1.0, "strike %d maturity %d", i, j)
		}
	}
}

func TestSurfaceSmile(t *testing.T) {
	cfg := SurfaceConfig{
		S0:      100,
		KCenter: 100,
		R:       0.05,
		T:       1,
		Type:    Call,

		StrikePoints: 21,
		StrikeWidth:  10,
	}

	surf, err := Surface(cfg)
	require.NoError(t, err)

	// At-the-money strike sits in the middle of an odd-sized grid and
	// carries no price bias, so its implied vol recovers BaseSigma.
	lastT := len(surf.Maturities) - 1
	atm := surf.Vols[10][lastT]
	assert.InDelta(t, 0.2, atm, 1e-4)

	// Biased wings invert to a higher implied vol than the center.
	assert.Greater(t, surf.Vols[0][lastT], atm)
	assert.Greater(t, surf.Vols[20][lastT], atm)
}

func TestSurfaceValidation(t *testing.T) {
	_, err := Surface(SurfaceConfig{S0: 0, KCenter: 100, T: 1, Type: Call})
	assert.Error(t, err)

	_, err = Surface(SurfaceConfig{S0: 100, KCenter: 0, T: 1, Type: Call})
	assert.Error(t, err)

	_, err = Surface(SurfaceConfig{S0: 100, KCenter: 100, T: 0, Type: Call})
	assert.Error(t, err)
}
