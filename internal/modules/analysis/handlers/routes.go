package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all treaty analysis routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/analysis", func(r chi.Router) {
		r.Post("/", h.HandleRunAnalysis)
		r.Post("/upload", h.HandleUpload)
		r.Post("/elt", h.HandleEventLossTable)
	})

	r.Get("/zones", h.HandleListZones)
	r.Get("/history", h.HandleHistoricalEvents)
}
