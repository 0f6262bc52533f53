// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/truck-check/inspection"
	"github.com/danielhkuo/truck-check/models"
	"github.com/danielhkuo/truck-check/session"
	"github.com/danielhkuo/truck-check/store"
	"github.com/danielhkuo/truck-check/testutil"
)

func newInspectionTest(t *testing.T) (*InspectionHandler, *session.Session, *store.Store) {
	t.Helper()
	st, _ := testutil.NewTestStore(t)
	sess := session.New()
	return NewInspectionHandler(sess, st), sess, st
}

func viewItemID(t *testing.T, sess *session.Session, sectionID string) string {
	t.Helper()
	sec, ok := sess.View().Record.Sections[sectionID]
	if !ok || len(sec.Items) == 0 {
		t.Fatalf("section %q missing or empty", sectionID)
	}
	return sec.Items[0].ID
}

func makeSaveable(t *testing.T, sess *session.Session) {
	t.Helper()
	sess.SetMeta("Medic 4", "J. Doe")
	if err := sess.SetSignature(testutil.TestSignature); err != nil {
		t.Fatalf("SetSignature failed: %v", err)
	}
	if err := sess.Toggle("general", viewItemID(t, sess, "general")); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
}

func TestGetInspection(t *testing.T) {
	h, _, _ := newInspectionTest(t)

	req := testutil.MakeRequest("GET", "/inspection", nil, nil)
	w := httptest.NewRecorder()
	h.Get(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var view models.InspectionView
	testutil.AssertJSON(t, w, &view)
	if view.Saveable {
		t.Error("fresh inspection should not be saveable")
	}
	if view.MissingRequirement != inspection.MsgMissingName {
		t.Errorf("expected %q, got %q", inspection.MsgMissingName, view.MissingRequirement)
	}
	if view.Timer.State != "idle" {
		t.Errorf("expected idle timer, got %q", view.Timer.State)
	}
}

func TestToggleItem(t *testing.T) {
	h, sess, _ := newInspectionTest(t)
	itemID := viewItemID(t, sess, "general")

	req := testutil.MakeRequest("POST", "/inspection/items/general/"+itemID+"/toggle", nil, nil)
	req.SetPathValue("sectionID", "general")
	req.SetPathValue("itemID", itemID)
	w := httptest.NewRecorder()
	h.ToggleItem(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var view models.InspectionView
	testutil.AssertJSON(t, w, &view)
	if !view.Record.Sections["general"].Items[0].Completed {
		t.Error("expected item completed")
	}
	if view.Timer.State != "running" {
		t.Errorf("first toggle should start the timer, got %q", view.Timer.State)
	}
}

func TestToggleItemNotFound(t *testing.T) {
	h, _, _ := newInspectionTest(t)

	req := testutil.MakeRequest("POST", "/inspection/items/general/id_bogus/toggle", nil, nil)
	req.SetPathValue("sectionID", "general")
	req.SetPathValue("itemID", "id_bogus")
	w := httptest.NewRecorder()
	h.ToggleItem(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestUpdateMeta(t *testing.T) {
	h, sess, _ := newInspectionTest(t)

	req := testutil.MakeRequest("PUT", "/inspection/meta",
		models.UpdateMetaRequest{UnitNumber: "Medic 4", InspectorName: "J. Doe"}, nil)
	w := httptest.NewRecorder()
	h.UpdateMeta(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	view := sess.View()
	if view.Record.UnitNumber != "Medic 4" || view.Record.InspectorName != "J. Doe" {
		t.Errorf("metadata not applied: %+v", view.Record)
	}
}

func TestUpdateMetaInvalidJSON(t *testing.T) {
	h, _, _ := newInspectionTest(t)

	req := httptest.NewRequest("PUT", "/inspection/meta", nil)
	w := httptest.NewRecorder()
	h.UpdateMeta(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestPutSignature(t *testing.T) {
	h, sess, _ := newInspectionTest(t)

	req := testutil.MakeRequest("PUT", "/inspection/signature",
		models.SetSignatureRequest{Signature: testutil.TestSignature}, nil)
	w := httptest.NewRecorder()
	h.PutSignature(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if sess.View().Record.Signature != testutil.TestSignature {
		t.Error("signature not applied")
	}
}

func TestPutSignatureRejectsNonImage(t *testing.T) {
	h, sess, _ := newInspectionTest(t)

	req := testutil.MakeRequest("PUT", "/inspection/signature",
		models.SetSignatureRequest{Signature: "hello"}, nil)
	w := httptest.NewRecorder()
	h.PutSignature(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
	if sess.View().Record.Signature != "" {
		t.Error("rejected signature must not stick")
	}
}

func TestClearSignature(t *testing.T) {
	h, sess, _ := newInspectionTest(t)
	if err := sess.SetSignature(testutil.TestSignature); err != nil {
		t.Fatal(err)
	}

	req := testutil.MakeRequest("DELETE", "/inspection/signature", nil, nil)
	w := httptest.NewRecorder()
	h.ClearSignature(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if sess.View().Record.Signature != "" {
		t.Error("signature should be cleared")
	}
}

func TestSaveIncomplete(t *testing.T) {
	h, _, st := newInspectionTest(t)

	req := testutil.MakeRequest("POST", "/inspection/save", nil, nil)
	w := httptest.NewRecorder()
	h.Save(w, req)

	testutil.AssertStatus(t, w, http.StatusUnprocessableEntity)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != inspection.MsgMissingName {
		t.Errorf("expected %q, got %q", inspection.MsgMissingName, resp.Message)
	}
	if got := st.List(); len(got) != 0 {
		t.Error("refused save must not touch the history")
	}
}

func TestSaveCompletes(t *testing.T) {
	h, sess, st := newInspectionTest(t)
	makeSaveable(t, sess)

	req := testutil.MakeRequest("POST", "/inspection/save", nil, nil)
	w := httptest.NewRecorder()
	h.Save(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.SaveResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.InspectionID == "" {
		t.Error("expected an inspection id")
	}
	if resp.Message != "Inspection for Unit Medic 4 saved successfully" {
		t.Errorf("unexpected message %q", resp.Message)
	}

	entries := st.List()
	if len(entries) != 1 {
		t.Fatalf("expected 1 stored entry, got %d", len(entries))
	}
	if entries[0].ID != resp.InspectionID || entries[0].UnitNumber != "Medic 4" {
		t.Errorf("stored entry wrong: %+v", entries[0])
	}

	// Saving resets the form.
	view := sess.View()
	if view.Record.UnitNumber != "" || view.Record.Signature != "" {
		t.Error("form not reset after save")
	}
	if view.Timer.State != "idle" {
		t.Errorf("timer not reset after save, state %q", view.Timer.State)
	}
}

func TestNewInspectionRequiresConfirmation(t *testing.T) {
	h, sess, _ := newInspectionTest(t)
	sess.SetMeta("Medic 4", "J. Doe")

	req := testutil.MakeRequest("POST", "/inspection/new", nil, nil)
	w := httptest.NewRecorder()
	h.NewInspection(w, req)

	testutil.AssertStatus(t, w, http.StatusConflict)
	if sess.View().Record.UnitNumber != "Medic 4" {
		t.Error("declined confirmation must leave the form untouched")
	}

	req = testutil.MakeRequest("POST", "/inspection/new?confirm=true", nil, nil)
	w = httptest.NewRecorder()
	h.NewInspection(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if sess.View().Record.UnitNumber != "" {
		t.Error("confirmed new inspection should reset the form")
	}
}

func TestNewInspectionConfirmHeader(t *testing.T) {
	h, sess, _ := newInspectionTest(t)
	sess.SetMeta("Medic 4", "J. Doe")

	req := testutil.MakeRequest("POST", "/inspection/new", nil, map[string]string{"X-Confirm": "true"})
	w := httptest.NewRecorder()
	h.NewInspection(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if sess.View().Record.UnitNumber != "" {
		t.Error("X-Confirm header should satisfy the confirmation gate")
	}
}
