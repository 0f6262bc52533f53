// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/truck-check/handlers"
	"github.com/danielhkuo/truck-check/middleware"
	"github.com/danielhkuo/truck-check/session"
	"github.com/danielhkuo/truck-check/store"
)

func NewRouter(sess *session.Session, st *store.Store) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	inspectionHandler := handlers.NewInspectionHandler(sess, st)
	historyHandler := handlers.NewHistoryHandler(sess, st)
	timerHandler := handlers.NewTimerHandler(sess)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Live inspection form
	mux.HandleFunc("GET /inspection", middleware.WithLogging(inspectionHandler.Get))
	mux.HandleFunc("POST /inspection/items/{sectionID}/{itemID}/toggle", middleware.WithLogging(inspectionHandler.ToggleItem))
	mux.HandleFunc("PUT /inspection/meta", middleware.WithLogging(inspectionHandler.UpdateMeta))
	mux.HandleFunc("PUT /inspection/signature", middleware.WithLogging(inspectionHandler.PutSignature))
	mux.HandleFunc("DELETE /inspection/signature", middleware.WithLogging(inspectionHandler.ClearSignature))
	mux.HandleFunc("POST /inspection/save", middleware.WithLogging(inspectionHandler.Save))
	mux.HandleFunc("POST /inspection/new", middleware.WithLogging(inspectionHandler.NewInspection))

	// Saved inspection history
	mux.HandleFunc("GET /inspections", middleware.WithLogging(historyHandler.List))
	mux.HandleFunc("GET /inspections/{id}", middleware.WithLogging(historyHandler.Get))
	mux.HandleFunc("POST /inspections/{id}/load", middleware.WithLogging(historyHandler.Load))
	mux.HandleFunc("DELETE /inspections/{id}", middleware.WithLogging(historyHandler.Delete))

	// Inspection timer
	mux.HandleFunc("GET /timer", middleware.WithLogging(timerHandler.Get))
	mux.HandleFunc("POST /timer/pause", middleware.WithLogging(timerHandler.Pause))
	mux.HandleFunc("POST /timer/resume", middleware.WithLogging(timerHandler.Resume))
	mux.HandleFunc("POST /timer/reset", middleware.WithLogging(timerHandler.Reset))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("truck-check API v1"))
	})

	return mux
}
