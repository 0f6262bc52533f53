// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package reconcile

import (
	"bytes"
	"encoding/json"

	"github.com/danielhkuo/truck-check/models"
)

// Kind tags the detected shape of a persisted checklist document.
type Kind int

const (
	// KindEmpty: no checklist data at all (absent, null, or unparseable).
	KindEmpty Kind = iota
	// KindSectionMap: section-id -> {title, items[]}. The current shape.
	KindSectionMap
	// KindSectionArray: ordered sections, each carrying its own id.
	KindSectionArray
	// KindFlatItems: one flat item list with no section grouping. The
	// oldest stored shape.
	KindFlatItems
)

// ArraySection is a section as stored in the KindSectionArray shape.
type ArraySection struct {
	ID    string                 `json:"id"`
	Title string                 `json:"title"`
	Items []models.ChecklistItem `json:"items"`
}

// Document is the tagged union of the three accepted checklist shapes.
// Exactly one of the payload fields is populated, per Kind.
type Document struct {
	Kind       Kind
	SectionMap map[string]models.InspectionSection
	Sections   []ArraySection
	Items      []models.ChecklistItem
}

// Detect classifies raw checklist JSON into one of the accepted shapes.
// Unrecognizable input degrades to KindEmpty rather than failing; a bad
// checklist must never make a stored entry unloadable.
func Detect(raw json.RawMessage) Document {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Document{Kind: KindEmpty}
	}

	switch trimmed[0] {
	case '{':
		var m map[string]models.InspectionSection
		if err := json.Unmarshal(trimmed, &m); err != nil {
			return Document{Kind: KindEmpty}
		}
		return Document{Kind: KindSectionMap, SectionMap: m}
	case '[':
		return detectArray(trimmed)
	default:
		return Document{Kind: KindEmpty}
	}
}

// CountItems tallies completed and total items across the document,
// whatever its shape. Null/empty placeholder entries are not counted.
func (d Document) CountItems() (completed, total int) {
	tally := func(items []models.ChecklistItem) {
		for _, it := range items {
			if it.ID == "" && it.Text == "" {
				continue
			}
			total++
			if it.Completed {
				completed++
			}
		}
	}
	switch d.Kind {
	case KindSectionMap:
		for _, sec := range d.SectionMap {
			tally(sec.Items)
		}
	case KindSectionArray:
		for _, sec := range d.Sections {
			tally(sec.Items)
		}
	case KindFlatItems:
		tally(d.Items)
	}
	return completed, total
}

// detectArray separates the two array shapes: elements with an "items" key
// are sections, anything else is a flat item list.
func detectArray(trimmed []byte) Document {
	var elems []json.RawMessage
	if err := json.Unmarshal(trimmed, &elems); err != nil {
		return Document{Kind: KindEmpty}
	}

	for _, elem := range elems {
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(elem, &probe); err != nil {
			continue // null or non-object element, keep probing
		}
		if _, ok := probe["items"]; ok {
			var sections []ArraySection
			if err := json.Unmarshal(trimmed, &sections); err != nil {
				return Document{Kind: KindEmpty}
			}
			return Document{Kind: KindSectionArray, Sections: sections}
		}
		break
	}

	var items []models.ChecklistItem
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return Document{Kind: KindEmpty}
	}
	return Document{Kind: KindFlatItems, Items: items}
}
