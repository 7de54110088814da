package analysis

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hosierrisk/catlayer/internal/curve"
	"github.com/hosierrisk/catlayer/internal/metrics"
	"github.com/hosierrisk/catlayer/internal/simulation"
	"github.com/hosierrisk/catlayer/internal/treaty"
)

// Service runs treaty analyses. It is stateless: every Run is a pure
// function of its request (plus the random draw when no seed is given),
// and every slice it produces is owned by that one invocation.
type Service struct {
	log          zerolog.Logger
	defaultYears int
}

// NewService creates an analysis service. defaultYears is the synthetic
// sample size used when a request does not specify one; values <= 0 fall
// back to the standard 10,000-year draw.
func NewService(log zerolog.Logger, defaultYears int) *Service {
	if defaultYears <= 0 {
		defaultYears = simulation.DefaultYears
	}
	return &Service{
		log:          log.With().Str("service", "analysis").Logger(),
		defaultYears: defaultYears,
	}
}

// Run executes one full analysis pass for the request: resolve the loss
// sample, apply the layer transform, then compute summary metrics and the
// EP curve from the same layer-loss snapshot.
func (s *Service) Run(req Request) (*Result, error) {
	result := &Result{
		ID:    uuid.NewString(),
		Terms: resolveTerms(req.Terms),
	}

	var losses []float64
	switch {
	case req.Losses != nil:
		result.Source = SourceSeries
		losses = req.Losses
	default:
		zone, err := simulation.ZoneByID(req.Zone)
		if err != nil {
			return nil, err
		}
		result.Source = SourceSynthetic
		result.Zone = zone.ID
		if zone.HighRisk {
			result.Advisory = simulation.HighRiskAdvisory
		}
		losses = s.sample(zone, req.Years, req.Seed)
	}

	if len(losses) == 0 {
		return nil, fmt.Errorf("%w: empty loss sample", simulation.ErrInsufficientData)
	}

	return s.finish(result, losses)
}

// RunSeries executes one analysis pass over an uploaded single-column
// numeric series, preserving the best-effort parse contract: unparsable
// rows are dropped and counted, and the count is carried on the result.
func (s *Service) RunSeries(r io.Reader, terms *treaty.Terms) (*Result, error) {
	parsed, err := simulation.LoadSeries(r, s.log)
	if err != nil {
		return nil, err
	}

	result := &Result{
		ID:          uuid.NewString(),
		Source:      SourceSeries,
		Terms:       resolveTerms(terms),
		DroppedRows: parsed.Dropped,
	}
	return s.finish(result, parsed.Losses)
}

func (s *Service) sample(zone simulation.Zone, years int, seed *uint64) []float64 {
	if years <= 0 {
		years = s.defaultYears
	}
	var sampler *simulation.Sampler
	if seed != nil {
		sampler = simulation.NewSeededSampler(*seed)
	} else {
		now := uint64(time.Now().UnixNano())
		sampler = simulation.NewSampler(rand.NewPCG(now, now))
	}
	return sampler.Annual(zone, years)
}

// finish applies the layer transform and derives metrics and curve from
// the one resulting layer-loss snapshot. Metrics and curve are independent
// given that snapshot; computing both here keeps the request synchronous
// and one-shot.
func (s *Service) finish(result *Result, losses []float64) (*Result, error) {
	result.Years = len(losses)
	result.LayerLosses = treaty.ApplyLayer(losses, result.Terms)

	summary, err := metrics.Compute(result.LayerLosses, result.Terms)
	if err != nil {
		return nil, err
	}
	result.Metrics = summary
	result.Curve = curve.Build(result.LayerLosses)

	s.log.Info().
		Str("analysis_id", result.ID).
		Str("source", string(result.Source)).
		Int("years", result.Years).
		Int("dropped_rows", result.DroppedRows).
		Float64("expected_loss", summary.ExpectedLoss).
		Msg("Analysis complete")

	return result, nil
}

func resolveTerms(terms *treaty.Terms) treaty.Terms {
	if terms == nil {
		return treaty.DefaultTerms()
	}
	return *terms
}
