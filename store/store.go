// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/danielhkuo/truck-check/models"
)

// DefaultKey is the storage slot inherited from earlier releases of the
// tool. Renaming it would orphan existing history.
const DefaultKey = "truckCheckInspections"

// Store persists the inspection history as a single named slot holding a
// JSON array of snapshots, append-only. Entries that are not being
// modified are carried through writes as raw bytes, so fields this version
// does not know about survive a rewrite.
//
// There is no cross-process locking: concurrent writers race and the last
// write wins, the same contract the slot has always had.
type Store struct {
	db  *sql.DB
	key string
}

// New returns a store over the given database and slot key. key defaults
// to DefaultKey when empty.
func New(db *sql.DB, key string) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{db: db, key: key}
}

// List returns the stored snapshots newest-first by date, insertion order
// preserved on ties. A missing, unreadable, or malformed slot yields an
// empty list, never an error: bad history must not take down the form.
func (s *Store) List() []models.PersistedInspection {
	raw := s.readRaw()
	entries := make([]models.PersistedInspection, 0, len(raw))
	for _, msg := range raw {
		var entry models.PersistedInspection
		if err := json.Unmarshal(msg, &entry); err != nil {
			slog.Warn("skipping undecodable stored inspection", "error", err)
			continue
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return parseDate(entries[i].Date).After(parseDate(entries[j].Date))
	})
	return entries
}

// Get returns the snapshot with the given id.
func (s *Store) Get(id string) (models.PersistedInspection, bool) {
	for _, entry := range s.List() {
		if entry.ID == id {
			return entry, true
		}
	}
	return models.PersistedInspection{}, false
}

// Append pushes a snapshot onto the slot: read the current array, add the
// entry, write the whole array back. Existing entries are rewritten
// byte-for-byte.
func (s *Store) Append(entry models.PersistedInspection) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode inspection: %w", err)
	}

	raw := s.readRaw()
	raw = append(raw, payload)
	if err := s.writeRaw(raw); err != nil {
		return fmt.Errorf("failed to write inspection history: %w", err)
	}
	return nil
}

// DeleteByID removes the snapshot with the given id and reports whether
// anything was removed. The relative order of the remaining entries is
// unchanged.
func (s *Store) DeleteByID(id string) bool {
	raw := s.readRaw()
	kept := raw[:0]
	removed := false
	for _, msg := range raw {
		var probe struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(msg, &probe); err == nil && probe.ID == id {
			removed = true
			continue
		}
		kept = append(kept, msg)
	}
	if !removed {
		return false
	}
	if err := s.writeRaw(kept); err != nil {
		slog.Error("failed to write history after delete", "error", err, "id", id)
		return false
	}
	return true
}

// readRaw loads the slot as raw entries. Any failure degrades to empty.
func (s *Store) readRaw() []json.RawMessage {
	var value string
	err := s.db.QueryRow(`SELECT value FROM storage_slot WHERE key = $1`, s.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		slog.Error("failed to read storage slot", "error", err, "key", s.key)
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(value), &raw); err != nil {
		slog.Warn("storage slot holds malformed data, treating as empty", "key", s.key)
		return nil
	}
	return raw
}

func (s *Store) writeRaw(raw []json.RawMessage) error {
	if raw == nil {
		raw = []json.RawMessage{}
	}
	value, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO storage_slot (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, s.key, string(value), time.Now().UTC())
	return err
}

// parseDate tolerates both the JS toISOString form and plain RFC3339.
// Unparseable dates sort last.
func parseDate(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
