// Package treaty models reinsurance treaty terms and the layer transform
// that maps raw annual losses onto the treaty layer.
package treaty

// Terms describes a single excess-of-loss treaty layer. All values are
// non-negative USD amounts. No ordering between the three is enforced: an
// attachment below the deductible is allowed and simply erodes most of the
// layer.
type Terms struct {
	Deductible float64 `json:"deductible"`
	Attachment float64 `json:"attachment"`
	Limit      float64 `json:"limit"`
}

// DefaultTerms returns the treaty terms used when a request supplies none:
// a 50M limit attaching at 20M with no deductible.
func DefaultTerms() Terms {
	return Terms{
		Deductible: 0,
		Attachment: 20_000_000,
		Limit:      50_000_000,
	}
}

// ApplyLayer computes the treaty-layer loss for each simulated year:
//
//	layer = clamp(max(raw - deductible, 0) - attachment, 0, limit)
//
// The transform is pure and elementwise; clamping absorbs every
// out-of-range input, including negative raw losses. The result has the
// same length and per-year correspondence as losses, and every element
// satisfies 0 <= layer <= limit.
func ApplyLayer(losses []float64, terms Terms) []float64 {
	layer := make([]float64, len(losses))
	for i, raw := range losses {
		gross := raw - terms.Deductible
		if gross < 0 {
			gross = 0
		}
		ceded := gross - terms.Attachment
		if ceded < 0 {
			ceded = 0
		}
		if ceded > terms.Limit {
			ceded = terms.Limit
		}
		layer[i] = ceded
	}
	return layer
}
