package employee

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// NotAvailable is displayed wherever a value cannot be resolved.
const NotAvailable = "N/A"

// Ref points from an attendance or leave record to an employee. The records
// service sends it as a bare id, as the populated employee document, or as null
// once the employee has been deleted.
type Ref struct {
	ID   string
	Name string
}

// RefTo builds an unpopulated reference.
func RefTo(id string) Ref {
	return Ref{ID: id}
}

func (r Ref) IsZero() bool {
	return r.ID == ""
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*r = Ref{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return fmt.Errorf("employee reference: %w", err)
		}
		*r = Ref{ID: id}
		return nil
	}

	var doc struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("employee reference: %w", err)
	}
	*r = Ref{ID: doc.ID, Name: doc.Name}
	return nil
}

// MarshalJSON always writes the bare id, which is what the records service expects.
func (r Ref) MarshalJSON() ([]byte, error) {
	if r.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(r.ID)
}
