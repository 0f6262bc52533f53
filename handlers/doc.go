// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the truck check API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - InspectionHandler: the live inspection form (toggle, metadata,
    signature, save, new)
  - HistoryHandler: saved inspections (list, view, load, delete)
  - TimerHandler: inspection timer control

# Live Inspection Flow

	GET  /inspection                       → Get (record + timer + saveability)
	POST /inspection/items/{s}/{i}/toggle  → ToggleItem
	PUT  /inspection/meta                  → UpdateMeta
	PUT  /inspection/signature             → PutSignature
	DELETE /inspection/signature           → ClearSignature
	POST /inspection/save                  → Save
	POST /inspection/new                   → NewInspection (confirm required)

Save refuses with 422 and the single most relevant missing requirement
when the record is not saveable; nothing is written and the form state is
untouched. A successful save appends an immutable snapshot and resets the
form.

# History Flow

	GET    /inspections            → List (newest first)
	GET    /inspections/{id}       → Get
	POST   /inspections/{id}/load  → Load (confirm required)
	DELETE /inspections/{id}       → Delete (confirm required)

# Confirmation

Destructive operations require confirm=true (query or X-Confirm header)
and answer 409 without it, leaving all state unchanged.
*/
package handlers
