// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog holds the fixed checklist configuration for ambulance
inspections: the ordered sections and their ordered item labels, per the
Virginia Department of Health Transport Vehicle Standards.

The catalog is pure data, loaded once and never mutated at runtime. Section
ids are the merge keys for persisted inspections and are stable across
application versions.

DefaultSections seeds the item sets for a fresh inspection record: every
item unchecked, each with a newly generated id. Reconciliation backfills
from the same defaults when a stored entry is missing a section.
*/
package catalog
