// Package metrics reduces a treaty-layer loss sequence to the scalar risk
// statistics used for layer pricing: expected loss, volatility, payout
// probability, tail losses and pricing indicators.
package metrics

import (
	"errors"
	"sort"

	"github.com/hosierrisk/catlayer/internal/treaty"
	"github.com/hosierrisk/catlayer/pkg/formulas"
)

// PremiumLoading is the fixed loading factor applied to expected loss when
// suggesting a premium (55% load). A design constant, not configurable.
const PremiumLoading = 1.55

// lossCostBase scales expected loss per unit of exposure to cents per $100
// of exposure.
const lossCostBase = 10_000

// tailReturnPeriod is the return period of the regulatory tail metric
// (1-in-200-year loss).
const tailReturnPeriod = 200

// ErrEmptySequence is returned when Compute is called with no layer-loss
// observations. Callers are expected to reject empty inputs before this
// stage; the error is a backstop, not a user-facing state.
var ErrEmptySequence = errors.New("metrics: empty layer loss sequence")

// Summary holds every scalar statistic derived from one layer-loss
// sequence. Metrics that can be undefined for some inputs are modelled as
// a tagged Value; everything else is a plain float64.
//
// Estimator choices: standard deviation uses the sample (N-1) estimator
// and is 0 for N<2; skewness uses gonum's bias-adjusted sample skewness
// and is 0 for N<3 or a constant sequence.
type Summary struct {
	Years                  int     `json:"years"`
	ExpectedLoss           float64 `json:"expected_loss"`
	StdDev                 float64 `json:"std_dev"`
	CoefficientOfVariation Value   `json:"coefficient_of_variation"`
	PayoutProbability      float64 `json:"payout_probability"`
	ELRatioPct             Value   `json:"el_ratio_pct"`
	SuggestedPremium       float64 `json:"suggested_premium"`
	ExposureValue          float64 `json:"exposure_value"`
	LossCost               Value   `json:"loss_cost"`
	Skewness               float64 `json:"skewness"`
	MaxLoss                float64 `json:"max_loss"`
	P95                    float64 `json:"p95"`
	P99                    float64 `json:"p99"`
	Loss1In200             Value   `json:"loss_1_in_200"`
}

// Compute derives a Summary from one layer-loss snapshot. Every
// percentile-style statistic (p95, p99, max, 1-in-200) reads from the same
// single sorted copy of the input, so tie-break behavior is consistent
// across all of them. The input slice itself is not modified.
func Compute(layerLosses []float64, terms treaty.Terms) (Summary, error) {
	n := len(layerLosses)
	if n == 0 {
		return Summary{}, ErrEmptySequence
	}

	// The one canonical sorted copy. Descending rank k is sorted[n-1-k].
	sorted := make([]float64, n)
	copy(sorted, layerLosses)
	sort.Float64s(sorted)

	el := formulas.Mean(sorted)
	stdDev := formulas.StdDev(sorted)

	s := Summary{
		Years:             n,
		ExpectedLoss:      el,
		StdDev:            stdDev,
		PayoutProbability: float64(formulas.CountPositive(sorted)) / float64(n),
		SuggestedPremium:  el * PremiumLoading,
		ExposureValue:     terms.Limit + terms.Attachment,
		Skewness:          formulas.Skew(sorted),
		MaxLoss:           sorted[n-1],
		P95:               formulas.Quantile(0.95, sorted),
		P99:               formulas.Quantile(0.99, sorted),
	}

	if el != 0 {
		s.CoefficientOfVariation = Defined(stdDev / el)
	} else {
		s.CoefficientOfVariation = Undefined("expected loss is zero")
	}

	if terms.Limit != 0 {
		s.ELRatioPct = Defined(el / terms.Limit * 100)
	} else {
		s.ELRatioPct = Undefined("limit is zero")
	}

	if s.ExposureValue != 0 {
		s.LossCost = Defined(el / s.ExposureValue * lossCostBase)
	} else {
		s.LossCost = Undefined("exposure value is zero")
	}

	if n >= tailReturnPeriod {
		// Descending rank floor(N/200): the loss exceeded on average once
		// every 200 simulated years.
		rank := n / tailReturnPeriod
		s.Loss1In200 = Defined(sorted[n-1-rank])
	} else {
		s.Loss1In200 = Undefined("requires at least 200 simulated years")
	}

	return s, nil
}
