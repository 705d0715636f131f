// Package cachetest provides an in-memory records service for tests.
package cachetest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/record"
)

var ErrNotFound = errors.New("record not found")

// Gateway keeps records as JSON documents keyed by "_id", the way the
// records service does, so drafts and patches go through the real encoding.
type Gateway[T record.Record] struct {
	mu     sync.Mutex
	docs   []map[string]interface{}
	nextID int

	// Err, when set, fails every call.
	Err error
	// Calls counts requests per operation: list, create, update, delete.
	Calls map[string]int
}

func NewGateway[T record.Record](records ...T) *Gateway[T] {
	g := &Gateway[T]{Calls: make(map[string]int)}
	for _, r := range records {
		doc, err := toDoc(r)
		if err != nil {
			panic(err)
		}
		g.docs = append(g.docs, doc)
	}
	return g
}

func (g *Gateway[T]) List(ctx context.Context) ([]T, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Calls["list"]++
	if g.Err != nil {
		return nil, g.Err
	}
	return g.decodeAll()
}

func (g *Gateway[T]) decodeAll() ([]T, error) {
	out := make([]T, 0, len(g.docs))
	for _, doc := range g.docs {
		r, err := fromDoc[T](doc)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func (g *Gateway[T]) Create(ctx context.Context, draft any) (T, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Calls["create"]++

	var zero T
	if g.Err != nil {
		return zero, g.Err
	}

	doc, err := toDoc(draft)
	if err != nil {
		return zero, err
	}
	g.nextID++
	doc["_id"] = fmt.Sprintf("gen-%d", g.nextID)
	g.docs = append(g.docs, doc)
	return fromDoc[T](doc)
}

func (g *Gateway[T]) Update(ctx context.Context, id string, patch any) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Calls["update"]++
	if g.Err != nil {
		return g.Err
	}

	i := g.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	fields, err := toDoc(patch)
	if err != nil {
		return err
	}
	for k, v := range fields {
		g.docs[i][k] = v
	}
	return nil
}

func (g *Gateway[T]) Delete(ctx context.Context, id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Calls["delete"]++
	if g.Err != nil {
		return g.Err
	}

	i := g.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	g.docs = append(g.docs[:i], g.docs[i+1:]...)
	return nil
}

// Records returns the remote state decoded into T.
func (g *Gateway[T]) Records() []T {
	g.mu.Lock()
	defer g.mu.Unlock()

	records, err := g.decodeAll()
	if err != nil {
		panic(err)
	}
	return records
}

func (g *Gateway[T]) indexOf(id string) int {
	for i, doc := range g.docs {
		if doc["_id"] == id {
			return i
		}
	}
	return -1
}

func toDoc(v any) (map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	doc := make(map[string]interface{})
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func fromDoc[T any](doc map[string]interface{}) (T, error) {
	var out T
	raw, err := json.Marshal(doc)
	if err != nil {
		return out, err
	}
	err = json.Unmarshal(raw, &out)
	return out, err
}
