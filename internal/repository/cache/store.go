package cache

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/record"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/sse"
	"golang.org/x/sync/singleflight"
)

// Events published on the store's topic after a confirmed change.
const (
	EventLoaded  = "records.loaded"
	EventCreated = "records.created"
	EventUpdated = "records.updated"
	EventRemoved = "records.removed"
)

// Gateway is the remote CRUD surface of one record kind.
type Gateway[T record.Record] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, draft any) (T, error)
	Update(ctx context.Context, id string, patch any) error
	Delete(ctx context.Context, id string) error
}

// Store is the in-memory copy of one record collection. Local state changes
// only after the gateway confirmed the matching remote change.
type Store[T record.Record] struct {
	topic string
	gw    Gateway[T]
	hub   *sse.Hub
	sf    *singleflight.Group

	mu      sync.RWMutex
	records []T
	loaded  bool
}

func NewStore[T record.Record](topic string, gw Gateway[T], hub *sse.Hub) *Store[T] {
	return &Store[T]{
		topic: topic,
		gw:    gw,
		hub:   hub,
		sf:    &singleflight.Group{},
	}
}

// Topic is the sse topic the store publishes on.
func (s *Store[T]) Topic() string {
	return s.topic
}

// Load replaces the contents with the full remote collection. Concurrent
// callers share one request, which runs detached from any single caller's
// cancellation; each caller stops waiting when its own ctx is done. On
// failure the previous contents are kept.
func (s *Store[T]) Load(ctx context.Context) error {
	results := s.sf.DoChan("load", func() (interface{}, error) {
		return nil, s.load(context.WithoutCancel(ctx))
	})

	select {
	case res := <-results:
		if res.Err != nil {
			slog.Error("failed to load records", "topic", s.topic, "error", res.Err)
			return fmt.Errorf("%w: %w", record.ErrFetch, res.Err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", record.ErrFetch, ctx.Err())
	}
}

func (s *Store[T]) load(ctx context.Context) error {
	records, err := s.gw.List(ctx)
	if err != nil {
		return err
	}

	if records == nil {
		records = []T{}
	}
	s.mu.Lock()
	s.records = records
	s.loaded = true
	s.mu.Unlock()

	slog.Debug("records loaded", "topic", s.topic, "count", len(records))
	s.publish(EventLoaded, len(records))
	return nil
}

// Loaded reports whether a Load has succeeded at least once.
func (s *Store[T]) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// List returns a copy of the current records in server order.
func (s *Store[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.records[i], true
	}
	var zero T
	return zero, false
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Create sends draft to the gateway and appends the record it returns.
// When the service confirms the create without returning the record, the
// collection is reloaded instead and the returned record has no id.
func (s *Store[T]) Create(ctx context.Context, draft any) (T, error) {
	var zero T

	created, err := s.gw.Create(ctx, draft)
	if err != nil {
		return zero, fmt.Errorf("%w: %w", record.ErrCreate, err)
	}
	if created.RecordID() == "" {
		slog.Warn("created record not returned, reloading", "topic", s.topic)
		if err := s.Load(ctx); err != nil {
			slog.Error("reload after create failed", "topic", s.topic, "error", err)
		}
		return created, nil
	}

	s.mu.Lock()
	s.records = append(s.records, created)
	s.mu.Unlock()

	s.publish(EventCreated, created)
	return created, nil
}

// Update sends patch to the gateway and, once confirmed, overwrites the
// patched fields of the local record. Unknown ids change nothing locally.
func (s *Store[T]) Update(ctx context.Context, id string, patch record.Patch[T]) error {
	if err := s.gw.Update(ctx, id, patch); err != nil {
		return fmt.Errorf("%w: %w", record.ErrUpdate, err)
	}

	s.mu.Lock()
	i := s.indexOf(id)
	var updated T
	if i >= 0 {
		s.records[i] = patch.Apply(s.records[i])
		updated = s.records[i]
	}
	s.mu.Unlock()

	if i >= 0 {
		s.publish(EventUpdated, updated)
	}
	return nil
}

// Remove deletes id remotely and then drops it from the local list.
// Removing an id that is not held locally is not an error.
func (s *Store[T]) Remove(ctx context.Context, id string) error {
	if err := s.gw.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %w", record.ErrDelete, err)
	}

	s.mu.Lock()
	i := s.indexOf(id)
	if i >= 0 {
		s.records = append(s.records[:i:i], s.records[i+1:]...)
	}
	s.mu.Unlock()

	if i >= 0 {
		s.publish(EventRemoved, id)
	}
	return nil
}

// indexOf must be called with mu held.
func (s *Store[T]) indexOf(id string) int {
	for i, r := range s.records {
		if r.RecordID() == id {
			return i
		}
	}
	return -1
}

func (s *Store[T]) publish(event string, data interface{}) {
	s.hub.Publish(sse.Event{Topic: s.topic, Event: event, Data: data})
}
