// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/truck-check/middleware"
	"github.com/danielhkuo/truck-check/models"
	"github.com/danielhkuo/truck-check/reconcile"
	"github.com/danielhkuo/truck-check/session"
	"github.com/danielhkuo/truck-check/store"
	"github.com/danielhkuo/truck-check/timer"
)

type HistoryHandler struct {
	sess  *session.Session
	store *store.Store
}

func NewHistoryHandler(sess *session.Session, st *store.Store) *HistoryHandler {
	return &HistoryHandler{sess: sess, store: st}
}

// List handles GET /inspections
//
// Returns saved-checks list rows, newest first.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	entries := h.store.List()

	summaries := make([]models.HistorySummary, 0, len(entries))
	for _, entry := range entries {
		completed, total := reconcile.Detect(entry.Checklist).CountItems()
		summaries = append(summaries, models.HistorySummary{
			ID:              entry.ID,
			UnitNumber:      entry.UnitNumber,
			InspectorName:   entry.InspectorName,
			Date:            entry.Date,
			SavedAgo:        savedAgo(entry.Date),
			DurationSeconds: entry.Duration,
			DurationDisplay: timer.Format(entry.Duration),
			CompletedItems:  completed,
			TotalItems:      total,
		})
	}

	middleware.JSONResponse(w, http.StatusOK, summaries)
}

// Get handles GET /inspections/{id}
func (h *HistoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	entry, ok := h.store.Get(id)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Inspection not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, entry)
}

// Load handles POST /inspections/{id}/load
//
// Copies a historical entry into the live form for continued editing. The
// stored snapshot is untouched; re-saving appends a new entry.
func (h *HistoryHandler) Load(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if !middleware.Confirmed(r) {
		middleware.ErrorResponse(w, http.StatusConflict, "Loading replaces the current inspection; confirm to proceed")
		return
	}

	entry, ok := h.store.Get(id)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Inspection not found")
		return
	}

	rec := h.sess.LoadFrom(entry)
	slog.Info("inspection loaded into form", "inspection_id", entry.ID, "unit", entry.UnitNumber)

	message := "Inspection loaded successfully"
	if entry.UnitNumber != "" {
		message = "Loaded inspection for " + entry.UnitNumber
	}
	middleware.JSONResponse(w, http.StatusOK, models.LoadResponse{
		Message: message,
		Record:  rec,
	})
}

// Delete handles DELETE /inspections/{id}
func (h *HistoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if !middleware.Confirmed(r) {
		middleware.ErrorResponse(w, http.StatusConflict, "Deleting an inspection cannot be undone; confirm to proceed")
		return
	}

	if !h.store.DeleteByID(id) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Inspection not found")
		return
	}

	slog.Info("inspection deleted", "inspection_id", id)
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Inspection deleted"})
}

// savedAgo renders a relative timestamp for the list ("3 days ago").
// Unparseable dates render empty rather than wrong.
func savedAgo(date string) string {
	t, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return ""
	}
	return humanize.Time(t)
}
