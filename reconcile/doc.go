// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package reconcile rebuilds a complete live inspection record from a stored
entry, whatever vintage its checklist data is.

# Stored Shapes

Three checklist shapes exist in the wild and all must load:

 1. section map: {"general": {"title": ..., "items": [...]}, ...} (current)
 2. section array: [{"id": "general", "title": ..., "items": [...]}, ...]
 3. flat item list: [{"id": ..., "text": ..., "completed": ...}, ...]

Detect classifies raw JSON into a tagged Document up front; the merge then
runs off the tag instead of re-probing the shape at every consumption site.
Unrecognizable data degrades to the empty document.

# Merge Rules

Reconcile starts from a deep copy of the live record, backfills any catalog
section the stored entry lacks with fresh defaults, then folds stored items
in: match by id, fall back to exact trimmed label text, otherwise append as
a new item (synthesizing an id when the stored one is absent). Metadata
fields copy through only when present and well-typed — in particular a
signature must be a data:image/ URI.

The completed-state outcome is idempotent: reconciling the same stored
entry twice produces the same flags both times.
*/
package reconcile
