// Package elt builds the downloadable Event Loss Table: one row per
// simulated year pairing the 1-based year index with its treaty-layer
// loss.
package elt

import (
	"github.com/gocarina/gocsv"
)

// Row is one Event Loss Table entry.
type Row struct {
	Year      int     `csv:"Year"`
	LayerLoss float64 `csv:"LayerLossUSD"`
}

// FromLayerLosses pairs each layer loss with its year index, starting at 1.
func FromLayerLosses(layerLosses []float64) []Row {
	rows := make([]Row, len(layerLosses))
	for i, loss := range layerLosses {
		rows[i] = Row{Year: i + 1, LayerLoss: loss}
	}
	return rows
}

// MarshalCSV renders rows as a comma-separated table with a header row.
func MarshalCSV(rows []Row) ([]byte, error) {
	return gocsv.MarshalBytes(&rows)
}
