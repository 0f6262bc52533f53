// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines all HTTP routes for the truck check API.

NewRouter wires the handler structs to their routes using Go 1.22+ method
routing on the standard ServeMux:

	mux := router.NewRouter(sess, st)

Route groups:

  - /inspection...  — the live form (read, toggle, metadata, signature,
    save, new)
  - /inspections... — saved history (list, view, load, delete)
  - /timer...       — inspection timer (read, pause, resume, reset)
  - /health, /      — liveness and identification

Every route is wrapped with request logging.
*/
package router
