// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/truck-check/middleware"
	"github.com/danielhkuo/truck-check/models"
	"github.com/danielhkuo/truck-check/session"
	"github.com/danielhkuo/truck-check/signature"
	"github.com/danielhkuo/truck-check/store"
)

type InspectionHandler struct {
	sess  *session.Session
	store *store.Store
}

func NewInspectionHandler(sess *session.Session, st *store.Store) *InspectionHandler {
	return &InspectionHandler{sess: sess, store: st}
}

// Get handles GET /inspection
func (h *InspectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.sess.View())
}

// ToggleItem handles POST /inspection/items/{sectionID}/{itemID}/toggle
func (h *InspectionHandler) ToggleItem(w http.ResponseWriter, r *http.Request) {
	sectionID := r.PathValue("sectionID")
	itemID := r.PathValue("itemID")
	if sectionID == "" || itemID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "section and item ids are required")
		return
	}

	if err := h.sess.Toggle(sectionID, itemID); err != nil {
		// Stale ids from an outdated form render; harmless.
		middleware.ErrorResponse(w, http.StatusNotFound, "Checklist item not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.sess.View())
}

// UpdateMeta handles PUT /inspection/meta
func (h *InspectionHandler) UpdateMeta(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateMetaRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	h.sess.SetMeta(req.UnitNumber, req.InspectorName)
	middleware.JSONResponse(w, http.StatusOK, h.sess.View())
}

// PutSignature handles PUT /inspection/signature
func (h *InspectionHandler) PutSignature(w http.ResponseWriter, r *http.Request) {
	var req models.SetSignatureRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.sess.SetSignature(req.Signature); err != nil {
		if errors.Is(err, signature.ErrNotImage) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "signature must be an image data URI")
			return
		}
		slog.Error("failed to set signature", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to set signature")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.sess.View())
}

// ClearSignature handles DELETE /inspection/signature
func (h *InspectionHandler) ClearSignature(w http.ResponseWriter, r *http.Request) {
	h.sess.ClearSignature()
	middleware.JSONResponse(w, http.StatusOK, h.sess.View())
}

// Save handles POST /inspection/save
//
// A successful save appends an immutable snapshot to the history and
// resets the form; a refused one changes nothing. Saving again after
// loading a historical entry appends a new snapshot and leaves the old one
// intact — history is an audit trail, not a mutable document.
func (h *InspectionHandler) Save(w http.ResponseWriter, r *http.Request) {
	snap, err := h.sess.PrepareSave()
	if err != nil {
		var verr *session.ValidationError
		if errors.As(err, &verr) {
			middleware.ErrorResponse(w, http.StatusUnprocessableEntity, verr.Message)
			return
		}
		slog.Error("failed to build inspection snapshot", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save inspection")
		return
	}

	if err := h.store.Append(snap); err != nil {
		slog.Error("failed to append inspection", "error", err, "inspection_id", snap.ID)
		h.sess.AbortSave()
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save inspection")
		return
	}

	h.sess.CompleteSave()
	slog.Info("inspection saved", "inspection_id", snap.ID, "unit", snap.UnitNumber, "duration_s", snap.Duration)

	middleware.JSONResponse(w, http.StatusCreated, models.SaveResponse{
		InspectionID: snap.ID,
		Message:      "Inspection for Unit " + snap.UnitNumber + " saved successfully",
	})
}

// NewInspection handles POST /inspection/new
func (h *InspectionHandler) NewInspection(w http.ResponseWriter, r *http.Request) {
	if !middleware.Confirmed(r) {
		middleware.ErrorResponse(w, http.StatusConflict, "Starting a new inspection discards unsaved changes; confirm to proceed")
		return
	}

	h.sess.Reset()
	slog.Info("inspection form reset")
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "New inspection started"})
}
