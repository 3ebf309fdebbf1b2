package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentile(t *testing.T) {
	t.Run("empty input errors", func(t *testing.T) {
		_, err := Percentile(nil, 50)
		assert.Error(t, err)
	})

	t.Run("out of range errors", func(t *testing.T) {
		_, err := Percentile([]float64{1}, 101)
		assert.Error(t, err)
	})

	t.Run("single value", func(t *testing.T) {
		v, err := Percentile([]float64{3.5}, 90)
		require.NoError(t, err)
		assert.Equal(t, 3.5, v)
	})

	t.Run("linear interpolation", func(t *testing.T) {
		values := []float64{1, 2, 3, 4}
		median, err := Percentile(values, 50)
		require.NoError(t, err)
		assert.InDelta(t, 2.5, median, 1e-9)

		p25, err := Percentile(values, 25)
		require.NoError(t, err)
		assert.InDelta(t, 1.75, p25, 1e-9)
	})

	t.Run("does not mutate input", func(t *testing.T) {
		values := []float64{3, 1, 2}
		_, err := Percentile(values, 50)
		require.NoError(t, err)
		assert.Equal(t, []float64{3, 1, 2}, values)
	})
}

func TestTimeDecayWeight(t *testing.T) {
	now := time.Now()
	halfLife := 24 * time.Hour

	assert.Equal(t, 1.0, TimeDecayWeight(now, now, halfLife))
	assert.Equal(t, 1.0, TimeDecayWeight(now.Add(time.Hour), now, halfLife), "future samples weigh 1")
	assert.InDelta(t, 0.5, TimeDecayWeight(now.Add(-24*time.Hour), now, halfLife), 1e-9)
	assert.InDelta(t, 0.25, TimeDecayWeight(now.Add(-48*time.Hour), now, halfLife), 1e-9)
}

func TestWeightedPercentile(t *testing.T) {
	t.Run("uniform weights behave like step percentile", func(t *testing.T) {
		v, err := WeightedPercentile([]float64{1, 2, 3, 4}, []float64{1, 1, 1, 1}, 50)
		require.NoError(t, err)
		assert.Equal(t, 2.0, v)
	})

	t.Run("heavy recent sample dominates", func(t *testing.T) {
		v, err := WeightedPercentile([]float64{1, 100}, []float64{0.01, 1}, 50)
		require.NoError(t, err)
		assert.Equal(t, 100.0, v)
	})

	t.Run("length mismatch errors", func(t *testing.T) {
		_, err := WeightedPercentile([]float64{1}, []float64{1, 2}, 50)
		assert.Error(t, err)
	})

	t.Run("zero total weight errors", func(t *testing.T) {
		_, err := WeightedPercentile([]float64{1, 2}, []float64{0, 0}, 50)
		assert.Error(t, err)
	})
}

func TestIQRBounds(t *testing.T) {
	values := []float64{1, 2, 3, 4, 100}
	lower, upper, err := IQRBounds(values)
	require.NoError(t, err)
	assert.Less(t, lower, 1.0)
	assert.Less(t, upper, 100.0, "the 100 outlier sits above the upper bound")
}
