// Package analysis orchestrates one full treaty analysis pass: loss sample
// acquisition, layer transform, summary metrics and EP curve construction.
package analysis

import (
	"github.com/hosierrisk/catlayer/internal/curve"
	"github.com/hosierrisk/catlayer/internal/metrics"
	"github.com/hosierrisk/catlayer/internal/treaty"
)

// Source identifies where a loss sample came from.
type Source string

const (
	SourceSynthetic Source = "synthetic"
	SourceSeries    Source = "series"
)

// Request describes one analysis invocation. Either Losses is supplied
// directly (externally provided series), or Zone selects the synthetic
// gamma generator. Terms defaults to the standard 50M xs 20M layer when
// omitted. Seed, when set, makes the synthetic draw reproducible; when nil
// each invocation draws a fresh independent sample.
type Request struct {
	Zone   string        `json:"zone,omitempty"`
	Years  int           `json:"years,omitempty"`
	Seed   *uint64       `json:"seed,omitempty"`
	Losses []float64     `json:"losses,omitempty"`
	Terms  *treaty.Terms `json:"terms,omitempty"`
}

// Result is the full outcome of one analysis pass. LayerLosses is kept for
// the Event Loss Table export but not serialized in the JSON response; the
// EP curve already carries the per-year losses in ranked form.
type Result struct {
	ID          string          `json:"id"`
	Source      Source          `json:"source"`
	Zone        string          `json:"zone,omitempty"`
	Years       int             `json:"years"`
	DroppedRows int             `json:"dropped_rows"`
	Terms       treaty.Terms    `json:"terms"`
	Metrics     metrics.Summary `json:"metrics"`
	Curve       curve.Curve     `json:"ep_curve"`
	Advisory    string          `json:"advisory,omitempty"`

	LayerLosses []float64 `json:"-"`
}
