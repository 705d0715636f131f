package record

// Record is implemented by every entity kept by the records service.
type Record interface {
	RecordID() string
}

// Patch is a set of field changes. Apply returns a copy of r with the changes
// overwritten and every other field preserved.
type Patch[T any] interface {
	Apply(r T) T
}
