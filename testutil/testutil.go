// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/truck-check/db"
	"github.com/danielhkuo/truck-check/models"
	"github.com/danielhkuo/truck-check/store"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full
// schema. MaxOpenConns is pinned to 1 so the pool cannot silently hand out
// a second, empty :memory: database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// NewTestStore returns a store over a fresh in-memory database.
func NewTestStore(t *testing.T) (*store.Store, *sql.DB) {
	t.Helper()
	conn := SetupTestDB(t)
	return store.New(conn, ""), conn
}

// WriteSlot writes raw bytes into a storage slot, bypassing the store.
// Used to simulate corrupted or legacy slot content.
func WriteSlot(t *testing.T, conn *sql.DB, key, value string) {
	t.Helper()
	if key == "" {
		key = store.DefaultKey
	}
	_, err := conn.Exec(`
		INSERT INTO storage_slot (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to write storage slot: %v", err)
	}
}

// TestSignature is a minimal but valid signature data URI.
const TestSignature = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUg=="

// SeedInspection appends a saved inspection with one completed item and
// returns it. date must be in the stored ISO form.
func SeedInspection(t *testing.T, st *store.Store, unit, inspector, date string) models.PersistedInspection {
	t.Helper()

	checklist, err := json.Marshal(map[string]models.InspectionSection{
		"general": {
			Title: "General",
			Items: []models.ChecklistItem{
				{ID: models.NewItemID(), Text: "Current State Inspection", Completed: true},
				{ID: models.NewItemID(), Text: "Exterior Clean", Completed: false},
			},
		},
	})
	if err != nil {
		t.Fatalf("Failed to marshal checklist: %v", err)
	}

	entry := models.PersistedInspection{
		ID:            models.NewRecordID(),
		UnitNumber:    unit,
		InspectorName: inspector,
		Signature:     TestSignature,
		Date:          date,
		Duration:      742,
		Checklist:     checklist,
	}
	if err := st.Append(entry); err != nil {
		t.Fatalf("Failed to seed inspection: %v", err)
	}
	return entry
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
