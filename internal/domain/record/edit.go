package record

// EditState is the lifecycle position of an edit session.
type EditState string

const (
	EditIdle       EditState = "idle"
	EditEditing    EditState = "editing"
	EditSubmitting EditState = "submitting"
)

// EditSnapshot is a read-only view of an edit session for the UI.
type EditSnapshot[D any] struct {
	SessionID string    `json:"session_id,omitempty"`
	State     EditState `json:"state"`
	RecordID  string    `json:"record_id,omitempty"`
	Draft     *D        `json:"draft,omitempty"`
	Error     string    `json:"error,omitempty"`
}
