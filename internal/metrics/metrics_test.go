package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hosierrisk/catlayer/internal/treaty"
)

func TestCompute_ConcreteScenario(t *testing.T) {
	// Layer losses from the canonical transform scenario: raw losses
	// [0, 10M, 30M, 60M] through a 50M xs 20M layer.
	layer := []float64{0, 0, 10_000_000, 40_000_000}
	terms := treaty.Terms{Attachment: 20_000_000, Limit: 50_000_000}

	s, err := Compute(layer, terms)
	require.NoError(t, err)

	assert.Equal(t, 4, s.Years)
	assert.InDelta(t, 12_500_000, s.ExpectedLoss, 1e-6)
	assert.InDelta(t, 0.5, s.PayoutProbability, 1e-12)
	assert.Equal(t, 40_000_000.0, s.MaxLoss)
	assert.InDelta(t, 12_500_000*1.55, s.SuggestedPremium, 1e-6)
	assert.Equal(t, 70_000_000.0, s.ExposureValue)

	// Sample (N-1) standard deviation of the four layer losses.
	wantStd := math.Sqrt((math.Pow(-12.5e6, 2) + math.Pow(-12.5e6, 2) + math.Pow(-2.5e6, 2) + math.Pow(27.5e6, 2)) / 3)
	assert.InDelta(t, wantStd, s.StdDev, 1e-3)

	require.True(t, s.CoefficientOfVariation.Available)
	assert.InDelta(t, wantStd/12_500_000, s.CoefficientOfVariation.Value, 1e-9)

	require.True(t, s.ELRatioPct.Available)
	assert.InDelta(t, 12_500_000.0/50_000_000.0*100, s.ELRatioPct.Value, 1e-9)

	require.True(t, s.LossCost.Available)
	assert.InDelta(t, 12_500_000.0/70_000_000.0*10_000, s.LossCost.Value, 1e-9)

	assert.False(t, s.Loss1In200.Available, "tail metric needs 200 years")
}

func TestCompute_AllZeroLosses(t *testing.T) {
	layer := make([]float64, 100)

	s, err := Compute(layer, treaty.Terms{Limit: 10_000_000})
	require.NoError(t, err)

	assert.Equal(t, 0.0, s.ExpectedLoss)
	assert.Equal(t, 0.0, s.PayoutProbability)
	assert.Equal(t, 0.0, s.MaxLoss)
	assert.Equal(t, 0.0, s.Skewness)

	assert.False(t, s.CoefficientOfVariation.Available)
	assert.Equal(t, "expected loss is zero", s.CoefficientOfVariation.Reason)

	// EL ratio is still defined (limit > 0), it is just zero.
	require.True(t, s.ELRatioPct.Available)
	assert.Equal(t, 0.0, s.ELRatioPct.Value)
}

func TestCompute_ZeroLimitAndExposure(t *testing.T) {
	s, err := Compute([]float64{0, 0, 0}, treaty.Terms{})
	require.NoError(t, err)

	assert.False(t, s.ELRatioPct.Available)
	assert.False(t, s.LossCost.Available)
}

func TestCompute_TailMetricAvailability(t *testing.T) {
	terms := treaty.Terms{Limit: 1e12}

	// 199 years: absent.
	layer := make([]float64, 199)
	for i := range layer {
		layer[i] = float64(i + 1)
	}
	s, err := Compute(layer, terms)
	require.NoError(t, err)
	assert.False(t, s.Loss1In200.Available)

	// 200 years: present, equal to descending rank floor(200/200) = 1,
	// i.e. the second-largest loss.
	layer = append(layer, 200)
	s, err = Compute(layer, terms)
	require.NoError(t, err)
	require.True(t, s.Loss1In200.Available)
	assert.Equal(t, 199.0, s.Loss1In200.Value)
}

func TestCompute_Percentiles(t *testing.T) {
	// Values 1..100: the interpolated 95th and 99th percentiles land
	// exactly on the 95th and 99th values.
	layer := make([]float64, 100)
	for i := range layer {
		layer[i] = float64(i + 1)
	}

	s, err := Compute(layer, treaty.Terms{Limit: 1000})
	require.NoError(t, err)

	assert.InDelta(t, 95, s.P95, 1e-9)
	assert.InDelta(t, 99, s.P99, 1e-9)
	assert.GreaterOrEqual(t, s.P99, s.P95)
	assert.Equal(t, 100.0, s.MaxLoss)
}

func TestCompute_SkewnessSign(t *testing.T) {
	// Heavy right tail: skewness must be positive.
	layer := []float64{0, 0, 0, 0, 0, 0, 0, 0, 1_000_000, 50_000_000}
	s, err := Compute(layer, treaty.Terms{Limit: 1e9})
	require.NoError(t, err)
	assert.Greater(t, s.Skewness, 0.0)
}

func TestCompute_SingleObservation(t *testing.T) {
	s, err := Compute([]float64{5_000_000}, treaty.Terms{Limit: 10_000_000})
	require.NoError(t, err)

	assert.Equal(t, 5_000_000.0, s.ExpectedLoss)
	assert.Equal(t, 0.0, s.StdDev, "sample estimator undefined for N=1, reported as 0")
	assert.Equal(t, 1.0, s.PayoutProbability)
	assert.False(t, s.Loss1In200.Available)
}

func TestCompute_EmptySequence(t *testing.T) {
	_, err := Compute(nil, treaty.Terms{Limit: 1})
	assert.ErrorIs(t, err, ErrEmptySequence)
}

func TestCompute_DoesNotMutateInput(t *testing.T) {
	layer := []float64{3, 1, 2}
	_, err := Compute(layer, treaty.Terms{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, layer)
}
