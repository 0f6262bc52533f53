// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/truck-check/middleware"
	"github.com/danielhkuo/truck-check/models"
	"github.com/danielhkuo/truck-check/session"
)

type TimerHandler struct {
	sess *session.Session
}

func NewTimerHandler(sess *session.Session) *TimerHandler {
	return &TimerHandler{sess: sess}
}

// Get handles GET /timer
func (h *TimerHandler) Get(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.sess.TimerState())
}

// Pause handles POST /timer/pause
func (h *TimerHandler) Pause(w http.ResponseWriter, r *http.Request) {
	h.sess.PauseTimer()
	middleware.JSONResponse(w, http.StatusOK, h.sess.TimerState())
}

// Resume handles POST /timer/resume
func (h *TimerHandler) Resume(w http.ResponseWriter, r *http.Request) {
	h.sess.ResumeTimer()
	middleware.JSONResponse(w, http.StatusOK, h.sess.TimerState())
}

// Reset handles POST /timer/reset
func (h *TimerHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if !middleware.Confirmed(r) {
		middleware.ErrorResponse(w, http.StatusConflict, "Resetting the timer clears elapsed time; confirm to proceed")
		return
	}

	h.sess.ResetTimer()
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Timer reset"})
}
