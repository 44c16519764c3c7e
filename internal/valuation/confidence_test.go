package valuation

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "appraisal/internal/errors"
)

func TestConfidence(t *testing.T) {
	t.Run("single_estimate_scores_default", func(t *testing.T) {
		c, err := Confidence([]float64{120})
		require.NoError(t, err)
		assert.Equal(t, SingleConfidence, c)
	})

	t.Run("identical_estimates_score_one", func(t *testing.T) {
		c, err := Confidence([]float64{100, 100, 100})
		require.NoError(t, err)
		assert.Equal(t, 1.0, c)
	})

	t.Run("uses_population_deviation", func(t *testing.T) {
		// mean 100, population sd 10
		c, err := Confidence([]float64{90, 110})
		require.NoError(t, err)
		assert.InDelta(t, 0.9, c, 1e-12)
	})

	t.Run("wide_dispersion_is_floored", func(t *testing.T) {
		c, err := Confidence([]float64{1, 100})
		require.NoError(t, err)
		assert.Equal(t, MinConfidence, c)
	})

	t.Run("rejects_negative_mean", func(t *testing.T) {
		_, err := Confidence([]float64{-100, -10})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("rejects_single_zero_estimate", func(t *testing.T) {
		_, err := Confidence([]float64{0})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("stays_in_range_for_positive_prices", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(7, 11))
		for range 200 {
			n := 1 + rng.IntN(12)
			prices := make([]float64, n)
			for i := range prices {
				prices[i] = 1 + rng.Float64()*10000
			}
			c, err := Confidence(prices)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, c, MinConfidence)
			assert.LessOrEqual(t, c, MaxConfidence)
		}
	})

	t.Run("rejects_empty", func(t *testing.T) {
		_, err := Confidence(nil)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("rejects_zero_mean", func(t *testing.T) {
		_, err := Confidence([]float64{-5, 5})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}
