package edit

import (
	"context"
	"log/slog"
	"sync"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/record"
	"github.com/google/uuid"
)

var (
	ErrNotEditing     = record.ErrNotEditing
	ErrSubmitInFlight = record.ErrSubmitInFlight
)

// Store is the part of a record store an edit session needs.
type Store[T record.Record] interface {
	Get(id string) (T, bool)
	Update(ctx context.Context, id string, patch record.Patch[T]) error
}

// Form converts between a record and its editable draft.
type Form[T record.Record, D any] struct {
	// Load copies the editable fields of a record into a draft
	Load func(T) D
	// Patch validates a draft and turns it into the update sent on submit
	Patch func(D) (record.Patch[T], error)
	// NotFound is returned by Start for ids missing from the store
	NotFound error
}

// Session is the edit form of one list. At most one record is edited at a
// time; starting another edit replaces the draft.
//
//	idle -> editing -> submitting -> idle     (update confirmed)
//	                              -> editing  (update failed, draft kept)
//	        editing -> idle                   (cancel)
type Session[T record.Record, D any] struct {
	name  string
	store Store[T]
	form  Form[T, D]

	mu        sync.Mutex
	sessionID string
	state     record.EditState
	recordID  string
	draft     D
	lastErr   string
	// token identifies the current submission so late results can be recognised
	token uint64
}

func NewSession[T record.Record, D any](name string, store Store[T], form Form[T, D]) *Session[T, D] {
	return &Session[T, D]{
		name:  name,
		store: store,
		form:  form,
		state: record.EditIdle,
	}
}

// Start loads record id into a fresh draft.
func (s *Session[T, D]) Start(id string) (record.EditSnapshot[D], error) {
	rec, found := s.store.Get(id)
	if !found {
		return s.Snapshot(), s.form.NotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != record.EditIdle {
		slog.Debug("edit replaced", "session", s.name, "previous_record", s.recordID, "record", id)
	}
	s.sessionID = uuid.NewString()
	s.state = record.EditEditing
	s.recordID = id
	s.draft = s.form.Load(rec)
	s.lastErr = ""
	s.token++

	return s.snapshotLocked(), nil
}

// Change applies fn to the draft.
func (s *Session[T, D]) Change(fn func(draft *D)) (record.EditSnapshot[D], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireEditingLocked(); err != nil {
		return s.snapshotLocked(), err
	}
	fn(&s.draft)
	return s.snapshotLocked(), nil
}

// Cancel discards the draft. The store is never touched.
func (s *Session[T, D]) Cancel() record.EditSnapshot[D] {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetLocked()
	return s.snapshotLocked()
}

// Submit sends the draft through the store. On failure the session returns
// to editing with the draft intact. A result that arrives after the session
// was cancelled or moved to another record is dropped.
func (s *Session[T, D]) Submit(ctx context.Context) (record.EditSnapshot[D], error) {
	s.mu.Lock()
	if err := s.requireEditingLocked(); err != nil {
		defer s.mu.Unlock()
		return s.snapshotLocked(), err
	}

	patch, err := s.form.Patch(s.draft)
	if err != nil {
		s.lastErr = err.Error()
		defer s.mu.Unlock()
		return s.snapshotLocked(), err
	}

	s.state = record.EditSubmitting
	s.lastErr = ""
	s.token++
	recordID, token := s.recordID, s.token
	s.mu.Unlock()

	err = s.store.Update(ctx, recordID, patch)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != record.EditSubmitting || s.recordID != recordID || s.token != token {
		slog.Debug("stale edit result discarded", "session", s.name, "record", recordID, "error", err)
		return s.snapshotLocked(), err
	}

	if err != nil {
		s.state = record.EditEditing
		s.lastErr = err.Error()
		slog.Warn("edit submit failed", "session", s.name, "record", recordID, "error", err)
		return s.snapshotLocked(), err
	}

	s.resetLocked()
	return s.snapshotLocked(), nil
}

// Snapshot returns the current state with a copy of the draft.
func (s *Session[T, D]) Snapshot() record.EditSnapshot[D] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session[T, D]) requireEditingLocked() error {
	switch s.state {
	case record.EditEditing:
		return nil
	case record.EditSubmitting:
		return ErrSubmitInFlight
	default:
		return ErrNotEditing
	}
}

func (s *Session[T, D]) resetLocked() {
	var zero D
	s.sessionID = ""
	s.state = record.EditIdle
	s.recordID = ""
	s.draft = zero
	s.lastErr = ""
	s.token++
}

func (s *Session[T, D]) snapshotLocked() record.EditSnapshot[D] {
	snap := record.EditSnapshot[D]{
		SessionID: s.sessionID,
		State:     s.state,
		RecordID:  s.recordID,
		Error:     s.lastErr,
	}
	if s.state != record.EditIdle {
		draft := s.draft
		snap.Draft = &draft
	}
	return snap
}
