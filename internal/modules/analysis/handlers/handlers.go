// Package handlers provides HTTP handlers for treaty analysis operations.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/hosierrisk/catlayer/internal/elt"
	"github.com/hosierrisk/catlayer/internal/modules/analysis"
	"github.com/hosierrisk/catlayer/internal/simulation"
	"github.com/hosierrisk/catlayer/internal/treaty"
)

// maxUploadBytes caps uploaded loss series files at 32 MiB.
const maxUploadBytes = 32 << 20

// Handler handles treaty analysis HTTP requests
type Handler struct {
	service *analysis.Service
	log     zerolog.Logger
}

// NewHandler creates a new analysis handler
func NewHandler(service *analysis.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "analysis").Logger(),
	}
}

// HandleRunAnalysis handles POST /api/analysis
func (h *Handler) HandleRunAnalysis(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	result, err := h.service.Run(req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, envelope(result))
}

// HandleUpload handles POST /api/analysis/upload: a multipart upload of a
// single-column, headerless CSV of annual losses, with optional treaty
// term form fields.
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	terms, err := termsFromForm(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.service.RunSeries(file, terms)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, envelope(result))
}

// HandleEventLossTable handles POST /api/analysis/elt. It accepts the same
// request body as HandleRunAnalysis but responds with the Event Loss Table
// as a CSV attachment instead of the JSON report.
func (h *Handler) HandleEventLossTable(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	result, err := h.service.Run(req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	table, err := elt.MarshalCSV(elt.FromLayerLosses(result.LayerLosses))
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to marshal event loss table")
		http.Error(w, "Failed to build event loss table", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="event_loss_table.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(table)
}

// HandleListZones handles GET /api/zones
func (h *Handler) HandleListZones(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, envelope(simulation.Zones()))
}

// HandleHistoricalEvents handles GET /api/history
func (h *Handler) HandleHistoricalEvents(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, envelope(analysis.HistoricalEvents()))
}

func (h *Handler) decodeRequest(w http.ResponseWriter, r *http.Request) (analysis.Request, bool) {
	var req analysis.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return analysis.Request{}, false
	}
	return req, true
}

// writeError maps the input error taxonomy onto HTTP statuses. Fatal parse
// and data errors surface as a single user-visible message; anything else
// is an internal failure.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, simulation.ErrMalformedInput),
		errors.Is(err, simulation.ErrUnknownZone):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, simulation.ErrInsufficientData):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		h.log.Error().Err(err).Msg("Analysis failed")
		http.Error(w, "Analysis failed", http.StatusInternalServerError)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode response")
	}
}

func envelope(data interface{}) map[string]interface{} {
	return map[string]interface{}{
		"data": data,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	}
}

// termsFromForm reads optional deductible/attachment/limit form fields.
// Returns nil when none are present so the service applies its defaults.
func termsFromForm(r *http.Request) (*treaty.Terms, error) {
	fields := map[string]*float64{}
	terms := treaty.Terms{}
	fields["deductible"] = &terms.Deductible
	fields["attachment"] = &terms.Attachment
	fields["limit"] = &terms.Limit

	present := false
	for name, target := range fields {
		raw := r.FormValue(name)
		if raw == "" {
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.New("invalid " + name + " value")
		}
		*target = value
		present = true
	}

	if !present {
		return nil, nil
	}
	return &terms, nil
}
