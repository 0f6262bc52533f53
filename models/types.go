// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/json"
	"strconv"

	"github.com/google/uuid"
)

// ISOMillis matches the JavaScript Date.toISOString() layout used by the
// persisted record format ("2024-06-01T14:32:00.000Z").
const ISOMillis = "2006-01-02T15:04:05.000Z"

// Request types

type UpdateMetaRequest struct {
	UnitNumber    string `json:"unit_number"`
	InspectorName string `json:"inspector_name"`
}

type SetSignatureRequest struct {
	Signature string `json:"signature"`
}

// Response types

type MessageResponse struct {
	Message string `json:"message"`
}

type SaveResponse struct {
	InspectionID string `json:"inspection_id"`
	Message      string `json:"message"`
}

type TimerState struct {
	State          string `json:"state"`
	ElapsedSeconds int    `json:"elapsed_seconds"`
	Display        string `json:"display"`
}

// InspectionView is the full state of the live inspection as the form
// renders it: the record itself, the timer, and whether Save is allowed.
// MissingRequirement carries the single most relevant unmet requirement
// when Saveable is false (disabled-button tooltip).
type InspectionView struct {
	Record             *InspectionRecord `json:"record"`
	Timer              TimerState        `json:"timer"`
	Saveable           bool              `json:"saveable"`
	MissingRequirement string            `json:"missing_requirement,omitempty"`
}

// HistorySummary is one row of the saved-checks list.
type HistorySummary struct {
	ID              string `json:"id"`
	UnitNumber      string `json:"unit_number"`
	InspectorName   string `json:"inspector_name"`
	Date            string `json:"date"`
	SavedAgo        string `json:"saved_ago"`
	DurationSeconds int    `json:"duration_seconds"`
	DurationDisplay string `json:"duration_display"`
	CompletedItems  int    `json:"completed_items"`
	TotalItems      int    `json:"total_items"`
}

type LoadResponse struct {
	Message string            `json:"message"`
	Record  *InspectionRecord `json:"record"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Domain types

// ChecklistItem is a single checkbox line. IDs are assigned at creation
// (catalog seeding or reconciliation) and survive save/reload round trips.
type ChecklistItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// InspectionSection groups the items of one catalog section. The section's
// id lives in the enclosing map key, matching the persisted layout.
type InspectionSection struct {
	Title string          `json:"title"`
	Items []ChecklistItem `json:"items"`
}

// InspectionRecord is the live, in-progress inspection being edited.
// Sections is keyed by catalog section id and, once initialized, holds an
// entry for every id the catalog defines.
type InspectionRecord struct {
	ID              string                       `json:"id"`
	UnitNumber      string                       `json:"unitNumber"`
	InspectorName   string                       `json:"inspectorName"`
	Date            string                       `json:"date"`
	Signature       string                       `json:"signature,omitempty"`
	DurationSeconds int                          `json:"durationSeconds"`
	Sections        map[string]InspectionSection `json:"sections"`
}

// Clone returns a deep copy. Loading a historical entry copies in, it never
// shares item slices with the store.
func (r *InspectionRecord) Clone() *InspectionRecord {
	out := *r
	out.Sections = make(map[string]InspectionSection, len(r.Sections))
	for id, sec := range r.Sections {
		items := make([]ChecklistItem, len(sec.Items))
		copy(items, sec.Items)
		out.Sections[id] = InspectionSection{Title: sec.Title, Items: items}
	}
	return &out
}

// PersistedInspection is the serialized snapshot appended to the store on
// save. The field names are the on-disk wire format and must not change.
// Checklist stays raw because historical entries come in three shapes
// (section map, section array, flat item list); the reconcile package
// normalizes it.
type PersistedInspection struct {
	ID            string          `json:"id"`
	UnitNumber    string          `json:"unitNumber"`
	InspectorName string          `json:"inspectorName"`
	Signature     string          `json:"signature"`
	Date          string          `json:"date"`
	Duration      int             `json:"duration"`
	Checklist     json.RawMessage `json:"checklist"`
}

// NewRecordID returns a globally unique id for inspection records and
// persisted snapshots.
func NewRecordID() string {
	return uuid.NewString()
}

// NewItemID returns a short checklist item id in the historical "id_"
// base36 form, so synthesized ids are indistinguishable from ones already
// present in stored data.
func NewItemID() string {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand failing is effectively unreachable; fall back to the
		// uuid source rather than returning an empty id.
		return "id_" + uuid.NewString()[:8]
	}
	n := binary.BigEndian.Uint32(b[:])
	return "id_" + strconv.FormatUint(uint64(n), 36)
}
