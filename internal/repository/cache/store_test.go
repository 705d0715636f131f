package cache

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/record"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/sse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   string
	Name string
	Note string
}

func (i item) RecordID() string { return i.ID }

type notePatch struct {
	Note string
}

func (p notePatch) Apply(i item) item {
	i.Note = p.Note
	return i
}

var errUnavailable = errors.New("service unavailable")

type fakeGateway struct {
	mu        sync.Mutex
	items     []item
	created   item
	listErr   error
	createErr error
	updateErr error
	deleteErr error
	patches   map[string]any
	deleted   []string
	// listStarted and listRelease hold List until the test releases it
	listStarted chan struct{}
	listRelease chan struct{}
}

func (g *fakeGateway) List(ctx context.Context) ([]item, error) {
	if g.listRelease != nil {
		g.listStarted <- struct{}{}
		<-g.listRelease
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.listErr != nil {
		return nil, g.listErr
	}
	return append([]item(nil), g.items...), nil
}

func (g *fakeGateway) Create(ctx context.Context, draft any) (item, error) {
	if g.createErr != nil {
		return item{}, g.createErr
	}
	return g.created, nil
}

func (g *fakeGateway) Update(ctx context.Context, id string, patch any) error {
	if g.updateErr != nil {
		return g.updateErr
	}
	if g.patches == nil {
		g.patches = make(map[string]any)
	}
	g.patches[id] = patch
	return nil
}

func (g *fakeGateway) Delete(ctx context.Context, id string) error {
	if g.deleteErr != nil {
		return g.deleteErr
	}
	g.deleted = append(g.deleted, id)
	return nil
}

func newLoadedStore(t *testing.T, gw *fakeGateway, hub *sse.Hub) *Store[item] {
	t.Helper()
	s := NewStore[item]("items", gw, hub)
	require.NoError(t, s.Load(context.Background()))
	return s
}

func TestStore_Load(t *testing.T) {
	// Setup
	hub := sse.NewHub()
	events, cleanup := hub.Subscribe("items")
	defer cleanup()
	gw := &fakeGateway{items: []item{{ID: "a", Name: "Asha"}, {ID: "b", Name: "Bilal"}}}
	s := NewStore[item]("items", gw, hub)
	assert.False(t, s.Loaded())

	// Act
	err := s.Load(context.Background())

	// Assert
	require.NoError(t, err)
	assert.True(t, s.Loaded())
	assert.Equal(t, gw.items, s.List())
	require.Len(t, events, 1)
	ev := <-events
	assert.Equal(t, EventLoaded, ev.Event)
	assert.Equal(t, 2, ev.Data)
}

func TestStore_LoadEmptyCollection(t *testing.T) {
	s := newLoadedStore(t, &fakeGateway{}, nil)

	assert.True(t, s.Loaded())
	assert.NotNil(t, s.List())
	assert.Equal(t, 0, s.Len())
}

func TestStore_LoadFailureKeepsContents(t *testing.T) {
	// Setup
	gw := &fakeGateway{items: []item{{ID: "a", Name: "Asha"}}}
	s := newLoadedStore(t, gw, nil)
	gw.items = []item{{ID: "z"}}
	gw.listErr = errUnavailable

	// Act
	err := s.Load(context.Background())

	// Assert
	assert.ErrorIs(t, err, record.ErrFetch)
	assert.ErrorIs(t, err, errUnavailable)
	assert.Equal(t, []item{{ID: "a", Name: "Asha"}}, s.List())
}

func TestStore_ConcurrentLoads(t *testing.T) {
	gw := &fakeGateway{items: []item{{ID: "a"}}}
	s := NewStore[item]("items", gw, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.Load(context.Background()))
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, s.Len())
}

func TestStore_LoadSharedWithCanceledCaller(t *testing.T) {
	// Setup
	gw := &fakeGateway{
		items:       []item{{ID: "a"}},
		listStarted: make(chan struct{}, 2),
		listRelease: make(chan struct{}),
	}
	s := NewStore[item]("items", gw, nil)

	ctx, cancel := context.WithCancel(context.Background())
	first := make(chan error, 1)
	go func() { first <- s.Load(ctx) }()
	<-gw.listStarted

	// Act
	second := make(chan error, 1)
	go func() { second <- s.Load(context.Background()) }()
	cancel()
	firstErr := <-first
	close(gw.listRelease)

	// Assert
	assert.ErrorIs(t, firstErr, record.ErrFetch)
	assert.ErrorIs(t, firstErr, context.Canceled)
	require.NoError(t, <-second)
	assert.True(t, s.Loaded())
	assert.Equal(t, 1, s.Len())
}

func TestStore_Remove(t *testing.T) {
	// Setup
	hub := sse.NewHub()
	gw := &fakeGateway{items: []item{{ID: "a"}, {ID: "b"}, {ID: "c"}}}
	s := newLoadedStore(t, gw, hub)
	events, cleanup := hub.Subscribe("items")
	defer cleanup()

	// Act
	err := s.Remove(context.Background(), "b")

	// Assert
	require.NoError(t, err)
	_, found := s.Get("b")
	assert.False(t, found)
	assert.Equal(t, []item{{ID: "a"}, {ID: "c"}}, s.List())
	assert.Equal(t, []string{"b"}, gw.deleted)
	require.Len(t, events, 1)
	assert.Equal(t, EventRemoved, (<-events).Event)
}

func TestStore_RemoveUnknownIsNoop(t *testing.T) {
	hub := sse.NewHub()
	gw := &fakeGateway{items: []item{{ID: "a"}}}
	s := newLoadedStore(t, gw, hub)
	events, cleanup := hub.Subscribe("items")
	defer cleanup()

	err := s.Remove(context.Background(), "missing")

	assert.NoError(t, err)
	assert.Equal(t, 1, s.Len())
	assert.Empty(t, events)
}

func TestStore_RemoveFailure(t *testing.T) {
	gw := &fakeGateway{items: []item{{ID: "a"}}}
	s := newLoadedStore(t, gw, nil)
	gw.deleteErr = errUnavailable

	err := s.Remove(context.Background(), "a")

	assert.ErrorIs(t, err, record.ErrDelete)
	_, found := s.Get("a")
	assert.True(t, found)
}

func TestStore_RemoveDoesNotAliasListedSlice(t *testing.T) {
	gw := &fakeGateway{items: []item{{ID: "a"}, {ID: "b"}, {ID: "c"}}}
	s := newLoadedStore(t, gw, nil)
	before := s.List()

	require.NoError(t, s.Remove(context.Background(), "a"))

	assert.Equal(t, []item{{ID: "a"}, {ID: "b"}, {ID: "c"}}, before)
}

func TestStore_Update(t *testing.T) {
	// Setup
	gw := &fakeGateway{items: []item{{ID: "a", Name: "Asha", Note: "old"}, {ID: "b", Name: "Bilal"}}}
	s := newLoadedStore(t, gw, nil)

	// Act
	err := s.Update(context.Background(), "a", notePatch{Note: "new"})

	// Assert
	require.NoError(t, err)
	got, found := s.Get("a")
	require.True(t, found)
	assert.Equal(t, item{ID: "a", Name: "Asha", Note: "new"}, got)
	other, _ := s.Get("b")
	assert.Equal(t, item{ID: "b", Name: "Bilal"}, other)
	assert.Equal(t, notePatch{Note: "new"}, gw.patches["a"])
}

func TestStore_UpdateFailure(t *testing.T) {
	gw := &fakeGateway{items: []item{{ID: "a", Note: "old"}}}
	s := newLoadedStore(t, gw, nil)
	gw.updateErr = errUnavailable

	err := s.Update(context.Background(), "a", notePatch{Note: "new"})

	assert.ErrorIs(t, err, record.ErrUpdate)
	got, _ := s.Get("a")
	assert.Equal(t, "old", got.Note)
}

func TestStore_Create(t *testing.T) {
	gw := &fakeGateway{items: []item{{ID: "a"}}, created: item{ID: "n", Name: "Nadia"}}
	s := newLoadedStore(t, gw, nil)

	created, err := s.Create(context.Background(), map[string]string{"name": "Nadia"})

	require.NoError(t, err)
	assert.Equal(t, "n", created.ID)
	assert.Equal(t, []item{{ID: "a"}, {ID: "n", Name: "Nadia"}}, s.List())
}

func TestStore_CreateFailure(t *testing.T) {
	cases := []struct {
		name string
		gw   *fakeGateway
	}{
		{"gateway error", &fakeGateway{items: []item{{ID: "a"}}, createErr: errUnavailable}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := newLoadedStore(t, c.gw, nil)

			_, err := s.Create(context.Background(), struct{}{})

			assert.ErrorIs(t, err, record.ErrCreate)
			assert.Equal(t, 1, s.Len())
		})
	}
}

func TestStore_CreateConfirmedWithoutRecord(t *testing.T) {
	// Setup
	hub := sse.NewHub()
	gw := &fakeGateway{items: []item{{ID: "a"}}, created: item{Name: "Nadia"}}
	s := newLoadedStore(t, gw, hub)
	events, cleanup := hub.Subscribe("items")
	defer cleanup()
	gw.items = append(gw.items, item{ID: "n", Name: "Nadia"})

	// Act
	created, err := s.Create(context.Background(), map[string]string{"name": "Nadia"})

	// Assert
	require.NoError(t, err)
	assert.Empty(t, created.ID)
	assert.Equal(t, []item{{ID: "a"}, {ID: "n", Name: "Nadia"}}, s.List())
	require.Len(t, events, 1)
	assert.Equal(t, EventLoaded, (<-events).Event)
}
