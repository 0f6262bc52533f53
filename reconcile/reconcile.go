// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package reconcile

import (
	"log/slog"
	"strings"

	"github.com/danielhkuo/truck-check/catalog"
	"github.com/danielhkuo/truck-check/models"
)

// Reconcile merges a persisted entry into a copy of the live record and
// returns a complete record: every catalog section present, well-formed
// items, no nils. The live record itself is never mutated.
//
// Items are matched by id first, then by exact trimmed label text;
// persisted items that match neither are appended as new, with an id
// synthesized when the stored one is missing. Metadata copies through only
// when present and correctly typed; otherwise the live value stands.
func Reconcile(live *models.InspectionRecord, persisted models.PersistedInspection) *models.InspectionRecord {
	rec := live.Clone()

	if persisted.ID != "" {
		rec.ID = persisted.ID
	}
	if persisted.UnitNumber != "" {
		rec.UnitNumber = persisted.UnitNumber
	}
	if persisted.InspectorName != "" {
		rec.InspectorName = persisted.InspectorName
	}
	if strings.HasPrefix(persisted.Signature, "data:image/") {
		rec.Signature = persisted.Signature
	}
	if persisted.Date != "" {
		rec.Date = persisted.Date
	}
	if persisted.Duration > 0 {
		rec.DurationSeconds = persisted.Duration
	}

	// Self-heal first: every catalog section must exist before merging so
	// stored items always have a home to land in.
	for _, s := range catalog.Sections() {
		if _, ok := rec.Sections[s.ID]; !ok {
			rec.Sections[s.ID] = catalog.DefaultSection(s)
		}
	}

	doc := Detect(persisted.Checklist)
	switch doc.Kind {
	case KindSectionMap:
		for id, sec := range doc.SectionMap {
			mergeSection(rec, id, sec.Title, sec.Items)
		}
	case KindSectionArray:
		for _, sec := range doc.Sections {
			mergeSection(rec, sec.ID, sec.Title, sec.Items)
		}
	case KindFlatItems:
		mergeFlat(rec, doc.Items)
	case KindEmpty:
		// Nothing stored; the defaults seeded above are the result.
	}

	return rec
}

// mergeSection reconciles one persisted section into the record. Sections
// whose id the catalog does not know are skipped: they cannot be rendered
// and dropping them is the documented recovery for unknown section ids.
func mergeSection(rec *models.InspectionRecord, sectionID, title string, items []models.ChecklistItem) {
	if _, known := catalog.Find(sectionID); !known {
		slog.Warn("skipping unknown section in stored inspection", "section_id", sectionID)
		return
	}

	sec := rec.Sections[sectionID]
	if strings.TrimSpace(title) != "" {
		sec.Title = title
	}
	for _, stored := range items {
		if stored.ID == "" && strings.TrimSpace(stored.Text) == "" {
			continue // null/empty entry in stored data
		}
		if i := findItem(sec.Items, stored); i >= 0 {
			sec.Items[i].Completed = stored.Completed
			if strings.TrimSpace(stored.Text) != "" {
				sec.Items[i].Text = stored.Text
			}
			continue
		}
		id := stored.ID
		if id == "" {
			id = models.NewItemID()
		}
		sec.Items = append(sec.Items, models.ChecklistItem{
			ID:        id,
			Text:      stored.Text,
			Completed: stored.Completed,
		})
	}
	rec.Sections[sectionID] = sec
}

// mergeFlat reconciles the oldest shape: a single item list with no section
// grouping. Each item is matched anywhere in the record, in catalog section
// order so the outcome is deterministic; unmatched items land in the first
// catalog section.
func mergeFlat(rec *models.InspectionRecord, items []models.ChecklistItem) {
	ids := catalog.IDs()
	for _, stored := range items {
		if stored.ID == "" && strings.TrimSpace(stored.Text) == "" {
			continue
		}
		matched := false
		for _, sectionID := range ids {
			sec := rec.Sections[sectionID]
			if i := findItem(sec.Items, stored); i >= 0 {
				sec.Items[i].Completed = stored.Completed
				if strings.TrimSpace(stored.Text) != "" {
					sec.Items[i].Text = stored.Text
				}
				rec.Sections[sectionID] = sec
				matched = true
				break
			}
		}
		if !matched {
			id := stored.ID
			if id == "" {
				id = models.NewItemID()
			}
			first := rec.Sections[ids[0]]
			first.Items = append(first.Items, models.ChecklistItem{
				ID:        id,
				Text:      stored.Text,
				Completed: stored.Completed,
			})
			rec.Sections[ids[0]] = first
		}
	}
}

// findItem locates a stored item among the record's items: exact id match
// first, exact trimmed text second.
func findItem(items []models.ChecklistItem, stored models.ChecklistItem) int {
	if stored.ID != "" {
		for i := range items {
			if items[i].ID == stored.ID {
				return i
			}
		}
	}
	text := strings.TrimSpace(stored.Text)
	if text != "" {
		for i := range items {
			if strings.TrimSpace(items[i].Text) == text {
				return i
			}
		}
	}
	return -1
}
