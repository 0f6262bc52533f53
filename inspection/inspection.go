// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package inspection

import (
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/danielhkuo/truck-check/catalog"
	"github.com/danielhkuo/truck-check/models"
)

// Missing-requirement messages, in priority order. The form shows exactly
// one of these on the disabled save button.
const (
	MsgMissingName      = "Please enter your name"
	MsgMissingUnit      = "Please enter the unit number"
	MsgMissingSignature = "Please sign the inspection form"
	MsgNoCompletedItems = "Please complete at least one checklist item"
)

// New creates a fresh default inspection record: empty metadata, every
// catalog section seeded with unchecked items.
func New() *models.InspectionRecord {
	return &models.InspectionRecord{
		ID:       models.NewRecordID(),
		Date:     time.Now().UTC().Format(models.ISOMillis),
		Sections: catalog.DefaultSections(),
	}
}

// Toggle flips the completed flag of one item. A missing section or item is
// a logged no-op, never a failure: stale ids can arrive from a UI that
// rendered before a reset.
func Toggle(rec *models.InspectionRecord, sectionID, itemID string) bool {
	sec, ok := rec.Sections[sectionID]
	if !ok {
		slog.Warn("toggle on unknown section", "section_id", sectionID)
		return false
	}
	for i := range sec.Items {
		if sec.Items[i].ID == itemID {
			sec.Items[i].Completed = !sec.Items[i].Completed
			rec.Sections[sectionID] = sec
			return true
		}
	}
	slog.Warn("toggle on unknown item", "section_id", sectionID, "item_id", itemID)
	return false
}

// Counts returns the completed and total item counts across all sections.
func Counts(rec *models.InspectionRecord) (completed, total int) {
	for _, sec := range rec.Sections {
		for _, it := range sec.Items {
			total++
			if it.Completed {
				completed++
			}
		}
	}
	return completed, total
}

// Saveable reports whether the record may be saved: non-blank inspector
// name and unit number, a signature, and at least one completed item.
func Saveable(rec *models.InspectionRecord) bool {
	return MissingRequirement(rec) == ""
}

// MissingRequirement returns the single most relevant unmet save
// requirement, or "" when the record is saveable. Priority: name, unit
// number, signature, completed items.
func MissingRequirement(rec *models.InspectionRecord) string {
	if strings.TrimSpace(rec.InspectorName) == "" {
		return MsgMissingName
	}
	if strings.TrimSpace(rec.UnitNumber) == "" {
		return MsgMissingUnit
	}
	if rec.Signature == "" {
		return MsgMissingSignature
	}
	if completed, _ := Counts(rec); completed == 0 {
		return MsgNoCompletedItems
	}
	return ""
}

// Snapshot freezes the record into an immutable persisted entry: a fresh
// snapshot id, the save instant as its date, and the elapsed timer value as
// its duration. The live record is not modified.
func Snapshot(rec *models.InspectionRecord, duration int, now time.Time) (models.PersistedInspection, error) {
	checklist, err := json.Marshal(rec.Sections)
	if err != nil {
		return models.PersistedInspection{}, err
	}
	return models.PersistedInspection{
		ID:            models.NewRecordID(),
		UnitNumber:    strings.TrimSpace(rec.UnitNumber),
		InspectorName: strings.TrimSpace(rec.InspectorName),
		Signature:     rec.Signature,
		Date:          now.UTC().Format(models.ISOMillis),
		Duration:      duration,
		Checklist:     checklist,
	}, nil
}
