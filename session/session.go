// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"errors"
	"sync"
	"time"

	"github.com/danielhkuo/truck-check/inspection"
	"github.com/danielhkuo/truck-check/models"
	"github.com/danielhkuo/truck-check/reconcile"
	"github.com/danielhkuo/truck-check/signature"
	"github.com/danielhkuo/truck-check/timer"
)

// ErrItemNotFound reports a toggle against a section/item id the live
// record does not have.
var ErrItemNotFound = errors.New("checklist item not found")

// ValidationError refuses a save and names the single most relevant
// missing requirement.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Session owns the live inspection state: the record being edited, its
// timer, and the signature pad. All access goes through the session, one
// writer at a time — there is no other holder of this state.
type Session struct {
	mu  sync.Mutex
	rec *models.InspectionRecord
	tmr *timer.Timer
	pad signature.Capability
}

// Option configures a Session.
type Option func(*Session)

// WithTimer substitutes the inspection timer (tests inject a fake clock).
func WithTimer(t *timer.Timer) Option {
	return func(s *Session) { s.tmr = t }
}

// WithPad substitutes the signature capability.
func WithPad(p signature.Capability) Option {
	return func(s *Session) { s.pad = p }
}

// New returns a session holding a fresh default inspection.
func New(opts ...Option) *Session {
	s := &Session{
		rec: inspection.New(),
		tmr: timer.New(),
		pad: signature.NewPad(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// View returns a snapshot of the live record plus timer and saveability
// state. The returned record is a copy; mutations must go through session
// methods.
func (s *Session) View() models.InspectionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.rec.Clone()
	rec.DurationSeconds = s.tmr.Elapsed()
	missing := inspection.MissingRequirement(s.rec)
	return models.InspectionView{
		Record:             rec,
		Timer:              s.timerStateLocked(),
		Saveable:           missing == "",
		MissingRequirement: missing,
	}
}

// Toggle flips one checklist item. The first interaction of a fresh form
// also starts the inspection timer.
func (s *Session) Toggle(sectionID, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.tmr.Interacted() {
		s.tmr.Start()
	}
	if !inspection.Toggle(s.rec, sectionID, itemID) {
		return ErrItemNotFound
	}
	return nil
}

// SetMeta updates the unit number and inspector name.
func (s *Session) SetMeta(unitNumber, inspectorName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec.UnitNumber = unitNumber
	s.rec.InspectorName = inspectorName
}

// SetSignature imports a drawn signature (data:image/ URI).
func (s *Session) SetSignature(dataURI string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.pad.Import(dataURI); err != nil {
		return err
	}
	s.rec.Signature = s.pad.Export()
	return nil
}

// ClearSignature empties the pad.
func (s *Session) ClearSignature() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pad.Clear()
	s.rec.Signature = ""
}

// PrepareSave validates the record and, if saveable, pauses the timer and
// returns the frozen snapshot to append. A *ValidationError leaves all
// state untouched. The caller finishes with CompleteSave or, if the append
// failed, AbortSave.
func (s *Session) PrepareSave() (models.PersistedInspection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if missing := inspection.MissingRequirement(s.rec); missing != "" {
		return models.PersistedInspection{}, &ValidationError{Message: missing}
	}
	duration := s.tmr.Pause()
	snap, err := inspection.Snapshot(s.rec, duration, time.Now())
	if err != nil {
		s.tmr.Start()
		return models.PersistedInspection{}, err
	}
	return snap, nil
}

// CompleteSave resets the session to a fresh default inspection after a
// successful append: new record, cleared signature, timer back to idle.
func (s *Session) CompleteSave() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

// AbortSave resumes the timer after a failed append so no inspection time
// is lost. The record and signature stay as entered.
func (s *Session) AbortSave() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tmr.Elapsed() > 0 {
		s.tmr.Start()
	}
}

// Reset discards the current inspection for a new one. The caller is
// responsible for confirmation gating; once called, unsaved state is gone.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

func (s *Session) resetLocked() {
	s.rec = inspection.New()
	s.pad.Clear()
	s.tmr.Reset()
}

// LoadFrom reconciles a stored snapshot into a fresh live record (copy-in,
// no shared ownership), restores its signature into the pad, and freezes
// the timer at the stored duration. Returns a copy of the loaded record.
func (s *Session) LoadFrom(persisted models.PersistedInspection) *models.InspectionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pad.Clear()
	s.tmr.Reset()
	s.rec = reconcile.Reconcile(inspection.New(), persisted)
	if s.rec.Signature != "" {
		// Reconcile already vetted the data-URI form.
		_ = s.pad.Import(s.rec.Signature)
	}
	if persisted.Duration > 0 {
		s.tmr.SetElapsed(persisted.Duration)
	}
	return s.rec.Clone()
}

// TimerState reports the timer for display.
func (s *Session) TimerState() models.TimerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timerStateLocked()
}

// PauseTimer freezes the timer and returns elapsed whole seconds.
func (s *Session) PauseTimer() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tmr.Pause()
}

// ResumeTimer starts or resumes the timer.
func (s *Session) ResumeTimer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tmr.Start()
}

// ResetTimer zeroes the timer. Confirmation gating is the caller's job.
func (s *Session) ResetTimer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tmr.Reset()
}

func (s *Session) timerStateLocked() models.TimerState {
	elapsed := s.tmr.Elapsed()
	return models.TimerState{
		State:          s.tmr.State(),
		ElapsedSeconds: elapsed,
		Display:        timer.Format(elapsed),
	}
}
