// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session owns the live application state: the inspection record
being edited, its timer, and the signature pad.

The session is the single writer — handlers never touch the record, timer,
or pad directly, and every method holds the session lock for its duration.
The in-memory record is the source of truth for completion state; the
rendering layer only reads views and writes back through Toggle/SetMeta/
SetSignature.

# Save Flow

	snap, err := sess.PrepareSave()   // validates, pauses timer
	err = store.Append(snap)
	if err != nil { sess.AbortSave() } // resume timer, keep entered state
	else          { sess.CompleteSave() } // fresh record, idle timer

A validation refusal from PrepareSave changes nothing: the record,
signature, and timer are exactly as they were.
*/
package session
