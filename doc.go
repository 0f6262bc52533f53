// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Truck Check API server.

Truck Check is an ambulance equipment inspection tool: an inspector works
through the Virginia Transport Vehicle Standards checklist in the browser,
signs off, and saves the result. The server owns the live form state, the
inspection timer, and the append-only history of saved inspections.

# Starting the Server

No configuration is required; the history lives in a local sqlite file:

	go run main.go

Or with flags / environment:

	go run main.go -p 3418 -d file:truckcheck.db
	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run main.go

# Configuration

Optional settings:

  - PORT (-p): server port (default: 3418)
  - DATABASE_URL (-d): database location (default: file:truckcheck.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - STORAGE_KEY (--storage-key): history slot key override

A .env file is loaded when present.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (inspection, history, timer)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, confirmation gating
  - session: single-writer owner of the live form state
  - inspection: record lifecycle and save gating
  - reconcile: normalization of stored checklist shapes
  - catalog: the fixed checklist configuration
  - store: single-slot, append-only inspection history
  - timer: elapsed-time state machine
  - signature: signature capability boundary
  - models: request/response and wire types
  - db: schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
