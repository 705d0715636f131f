package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
)

// Paths of the records service collections.
const (
	PathEmployees          = "employees"
	PathAttendance         = "attendance"
	PathLeaves             = "leaves"
	PathAttendanceDownload = "attendance/download-attendance"
)

// Resource is the CRUD surface of one collection, e.g. /employees.
type Resource[T any] struct {
	client *Client
	path   string
}

func NewResource[T any](client *Client, path string) *Resource[T] {
	return &Resource[T]{client: client, path: path}
}

func NewEmployeeResource(client *Client) *Resource[employee.Employee] {
	return NewResource[employee.Employee](client, PathEmployees)
}

func NewAttendanceResource(client *Client) *Resource[attendance.Attendance] {
	return NewResource[attendance.Attendance](client, PathAttendance)
}

func NewLeaveResource(client *Client) *Resource[leave.Leave] {
	return NewResource[leave.Leave](client, PathLeaves)
}

// List fetches the whole collection. A null body is an empty collection.
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	var raw json.RawMessage
	if err := r.client.do(ctx, http.MethodGet, r.path, nil, &raw); err != nil {
		return nil, err
	}

	items := []T{}
	if isNull(raw) {
		return items, nil
	}
	if err := json.Unmarshal(unwrapData(raw), &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.path, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Create posts draft and returns the stored record. Both a bare record and
// a {"message","data"} envelope are accepted.
func (r *Resource[T]) Create(ctx context.Context, draft any) (T, error) {
	var created T

	var raw json.RawMessage
	if err := r.client.do(ctx, http.MethodPost, r.path, draft, &raw); err != nil {
		return created, err
	}
	if isNull(raw) {
		return created, nil
	}
	if err := json.Unmarshal(unwrapData(raw), &created); err != nil {
		return created, fmt.Errorf("decode created %s: %w", r.path, err)
	}
	return created, nil
}

// Update replaces the fields in patch of record id.
func (r *Resource[T]) Update(ctx context.Context, id string, patch any) error {
	return r.client.do(ctx, http.MethodPut, r.itemPath(id), patch, nil)
}

func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	return r.client.do(ctx, http.MethodDelete, r.itemPath(id), nil, nil)
}

func (r *Resource[T]) itemPath(id string) string {
	return r.path + "/" + url.PathEscape(id)
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// unwrapData returns the value a response carries. Accepted shapes are the
// bare value, {"data": value} and an envelope holding a single record next to
// its message, e.g. {"message": "...", "leave": {"_id": ...}}.
func unwrapData(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return raw
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return raw
	}
	if _, ok := envelope["_id"]; ok {
		return raw
	}
	if data, ok := envelope["data"]; ok && !isNull(data) {
		return data
	}

	var found json.RawMessage
	for key, member := range envelope {
		if key == "message" || !hasID(member) {
			continue
		}
		if found != nil {
			return raw
		}
		found = member
	}
	if found != nil {
		return found
	}
	return raw
}

// hasID reports whether member is an object with an "_id" field.
func hasID(member json.RawMessage) bool {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(member, &doc); err != nil {
		return false
	}
	_, ok := doc["_id"]
	return ok
}
