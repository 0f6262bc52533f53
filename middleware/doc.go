// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Request Logging

WithLogging logs method, path, and duration around each handler:

	mux.HandleFunc("POST /inspection/save", middleware.WithLogging(h.Save))

# JSON Helpers

  - JSONResponse: write a JSON body with a status code
  - ErrorResponse: write a models.ErrorResponse
  - ParseJSONBody: decode a request body

# Confirmation Gating

Destructive operations (new inspection, delete history entry, timer reset)
require confirm=true (query param or X-Confirm header). Confirmed checks
for it; handlers refuse with 409 when it is absent, leaving all state
unchanged — the server-side half of the UI's confirmation prompts.

# CORS

CORS allows the browser frontend to call the API cross-origin during
development.
*/
package middleware
