// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, domain, and wire types for the
truck check service.

# Domain Types

  - ChecklistItem: one checkbox line (id, text, completed)
  - InspectionSection: a titled, ordered group of items
  - InspectionRecord: the live inspection being edited, sections keyed by
    catalog section id
  - PersistedInspection: the immutable snapshot appended to storage on save

# Wire Format

PersistedInspection is the on-disk format under the storage slot. Its JSON
field names (id, unitNumber, inspectorName, signature, date, duration,
checklist) are shared with earlier releases of the tool and must stay
byte-compatible. Checklist is kept as raw JSON because three historical
shapes exist; see the reconcile package.

# Request Types

  - UpdateMetaRequest: unit_number, inspector_name
  - SetSignatureRequest: signature (data URI)

# Response Types

  - InspectionView: record + timer + saveability for form rendering
  - HistorySummary: one saved-checks list row
  - LoadResponse, SaveResponse, MessageResponse, TimerState
  - ErrorResponse: error, message

# IDs

NewRecordID returns a UUID for records and snapshots. NewItemID returns the
short "id_"-prefixed base36 form that checklist items have always used in
stored data.
*/
package models
