package simulation

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// SeriesResult is the outcome of loading an external loss series: the
// usable observations plus the count of rows that were dropped because
// their first column was missing or non-numeric. Dropping is an explicit,
// logged filtering step, not a silent parse side effect.
type SeriesResult struct {
	Losses  []float64
	Dropped int
}

// LoadSeries parses a single-column, headerless numeric series, one annual
// USD loss per line. The parse contract is best-effort: rows whose first
// column is empty or non-numeric are skipped and counted, while a source
// that cannot be read as a delimited file at all fails with
// ErrMalformedInput. Zero usable observations after filtering fails with
// ErrInsufficientData, so no downstream stage ever sees an empty sample.
func LoadSeries(r io.Reader, log zerolog.Logger) (SeriesResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var result SeriesResult
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return SeriesResult{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}

		if len(record) == 0 {
			result.Dropped++
			continue
		}
		cell := strings.TrimSpace(record[0])
		if cell == "" {
			result.Dropped++
			continue
		}
		value, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			result.Dropped++
			continue
		}
		result.Losses = append(result.Losses, value)
	}

	if result.Dropped > 0 {
		log.Warn().
			Int("dropped_rows", result.Dropped).
			Int("usable_rows", len(result.Losses)).
			Msg("Skipped unparsable rows in loss series")
	}

	if len(result.Losses) == 0 {
		return SeriesResult{}, fmt.Errorf("%w: %d rows dropped", ErrInsufficientData, result.Dropped)
	}

	return result, nil
}
