package employee

import "github.com/cmlabs-hris/hris-dashboard-go/internal/domain/record"

// DefaultAvatarURL is shown for employees registered without an avatar.
const DefaultAvatarURL = "https://via.placeholder.com/150"

type Employee struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Position string  `json:"position"`
	Email    string  `json:"email"`
	Mobile   string  `json:"mob"`
	Avatar   *string `json:"avatar,omitempty"`
}

var _ record.Record = Employee{}

func (e Employee) RecordID() string {
	return e.ID
}

func (e Employee) AvatarURL() string {
	if e.Avatar == nil || *e.Avatar == "" {
		return DefaultAvatarURL
	}
	return *e.Avatar
}
