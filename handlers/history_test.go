// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/truck-check/inspection"
	"github.com/danielhkuo/truck-check/models"
	"github.com/danielhkuo/truck-check/session"
	"github.com/danielhkuo/truck-check/store"
	"github.com/danielhkuo/truck-check/testutil"
)

func newHistoryTest(t *testing.T) (*HistoryHandler, *session.Session, *store.Store) {
	t.Helper()
	st, _ := testutil.NewTestStore(t)
	sess := session.New()
	return NewHistoryHandler(sess, st), sess, st
}

func isoDate(t time.Time) string {
	return t.UTC().Format(models.ISOMillis)
}

func TestListEmptyHistory(t *testing.T) {
	h, _, _ := newHistoryTest(t)

	w := httptest.NewRecorder()
	h.List(w, testutil.MakeRequest("GET", "/inspections", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var summaries []models.HistorySummary
	testutil.AssertJSON(t, w, &summaries)
	if len(summaries) != 0 {
		t.Errorf("expected no rows, got %d", len(summaries))
	}
}

func TestListSummaries(t *testing.T) {
	h, _, st := newHistoryTest(t)
	old := testutil.SeedInspection(t, st, "Medic 1", "A. Smith", isoDate(time.Now().Add(-48*time.Hour)))
	recent := testutil.SeedInspection(t, st, "Medic 4", "J. Doe", isoDate(time.Now().Add(-time.Hour)))

	w := httptest.NewRecorder()
	h.List(w, testutil.MakeRequest("GET", "/inspections", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var summaries []models.HistorySummary
	testutil.AssertJSON(t, w, &summaries)
	if len(summaries) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(summaries))
	}
	if summaries[0].ID != recent.ID || summaries[1].ID != old.ID {
		t.Error("rows not newest-first")
	}

	row := summaries[0]
	if row.UnitNumber != "Medic 4" || row.InspectorName != "J. Doe" {
		t.Errorf("row metadata wrong: %+v", row)
	}
	if row.CompletedItems != 1 || row.TotalItems != 2 {
		t.Errorf("expected 1/2 items, got %d/%d", row.CompletedItems, row.TotalItems)
	}
	if row.DurationDisplay != "00:12:22" {
		t.Errorf("expected duration display 00:12:22, got %q", row.DurationDisplay)
	}
	if row.SavedAgo == "" {
		t.Error("expected a relative saved_ago value")
	}
}

func TestGetHistoryEntry(t *testing.T) {
	h, _, st := newHistoryTest(t)
	seeded := testutil.SeedInspection(t, st, "Medic 4", "J. Doe", isoDate(time.Now()))

	req := testutil.MakeRequest("GET", "/inspections/"+seeded.ID, nil, nil)
	req.SetPathValue("id", seeded.ID)
	w := httptest.NewRecorder()
	h.Get(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var entry models.PersistedInspection
	testutil.AssertJSON(t, w, &entry)
	if entry.ID != seeded.ID || entry.UnitNumber != "Medic 4" {
		t.Errorf("wrong entry: %+v", entry)
	}
}

func TestGetHistoryEntryNotFound(t *testing.T) {
	h, _, _ := newHistoryTest(t)

	req := testutil.MakeRequest("GET", "/inspections/nope", nil, nil)
	req.SetPathValue("id", "nope")
	w := httptest.NewRecorder()
	h.Get(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestLoadRequiresConfirmation(t *testing.T) {
	h, sess, st := newHistoryTest(t)
	seeded := testutil.SeedInspection(t, st, "Medic 4", "J. Doe", isoDate(time.Now()))
	sess.SetMeta("Medic 1", "In Progress")

	req := testutil.MakeRequest("POST", "/inspections/"+seeded.ID+"/load", nil, nil)
	req.SetPathValue("id", seeded.ID)
	w := httptest.NewRecorder()
	h.Load(w, req)

	testutil.AssertStatus(t, w, http.StatusConflict)
	if sess.View().Record.UnitNumber != "Medic 1" {
		t.Error("declined load must leave the live form untouched")
	}
}

func TestLoad(t *testing.T) {
	h, sess, st := newHistoryTest(t)
	seeded := testutil.SeedInspection(t, st, "Medic 4", "J. Doe", isoDate(time.Now()))

	req := testutil.MakeRequest("POST", "/inspections/"+seeded.ID+"/load?confirm=true", nil, nil)
	req.SetPathValue("id", seeded.ID)
	w := httptest.NewRecorder()
	h.Load(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.LoadResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != "Loaded inspection for Medic 4" {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if resp.Record.UnitNumber != "Medic 4" {
		t.Errorf("loaded record wrong: %+v", resp.Record)
	}

	view := sess.View()
	if view.Record.InspectorName != "J. Doe" || view.Record.Signature != testutil.TestSignature {
		t.Error("stored entry not copied into the live form")
	}
	if completed, _ := inspection.Counts(view.Record); completed != 1 {
		t.Errorf("expected 1 completed item after load, got %d", completed)
	}
	if view.Timer.State != "paused" || view.Timer.ElapsedSeconds != 742 {
		t.Errorf("expected timer paused at 742s, got %+v", view.Timer)
	}

	// Loading copies; the stored snapshot stays.
	if _, ok := st.Get(seeded.ID); !ok {
		t.Error("stored entry vanished after load")
	}
}

func TestLoadNotFound(t *testing.T) {
	h, _, _ := newHistoryTest(t)

	req := testutil.MakeRequest("POST", "/inspections/nope/load?confirm=true", nil, nil)
	req.SetPathValue("id", "nope")
	w := httptest.NewRecorder()
	h.Load(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	h, _, st := newHistoryTest(t)
	seeded := testutil.SeedInspection(t, st, "Medic 4", "J. Doe", isoDate(time.Now()))

	req := testutil.MakeRequest("DELETE", "/inspections/"+seeded.ID, nil, nil)
	req.SetPathValue("id", seeded.ID)
	w := httptest.NewRecorder()
	h.Delete(w, req)

	testutil.AssertStatus(t, w, http.StatusConflict)
	if len(st.List()) != 1 {
		t.Error("declined delete must leave the history untouched")
	}
}

func TestDelete(t *testing.T) {
	h, _, st := newHistoryTest(t)
	seeded := testutil.SeedInspection(t, st, "Medic 4", "J. Doe", isoDate(time.Now()))

	req := testutil.MakeRequest("DELETE", "/inspections/"+seeded.ID+"?confirm=true", nil, nil)
	req.SetPathValue("id", seeded.ID)
	w := httptest.NewRecorder()
	h.Delete(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if len(st.List()) != 0 {
		t.Error("entry not deleted")
	}

	// Deleting again is a 404.
	req = testutil.MakeRequest("DELETE", "/inspections/"+seeded.ID+"?confirm=true", nil, nil)
	req.SetPathValue("id", seeded.ID)
	w = httptest.NewRecorder()
	h.Delete(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}
