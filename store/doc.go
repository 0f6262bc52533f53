// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists saved inspections.

The entire history lives under one named slot ("truckCheckInspections") as
a JSON array of snapshots — the same layout earlier releases kept in
browser local storage, so exported data imports unchanged. The slot itself
is a row in the storage_slot table; sqlite is the default backend and
postgres works identically (the slot SQL is valid under both drivers).

# Operations

  - List: snapshots newest-first by date, insertion order on ties
  - Get: one snapshot by id
  - Append: read array, push entry, write array back
  - DeleteByID: remove one entry, preserving the order of the rest

# Degradation

Reads never fail the caller: a missing, unreadable, or malformed slot is an
empty history. Individual undecodable entries are skipped with a log line.
Writes rewrite untouched entries byte-for-byte, so fields added by other
versions of the tool survive. Concurrent writers are last-write-wins; the
store does no cross-process locking.
*/
package store
