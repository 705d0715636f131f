package attendance

import (
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/record"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/calendar"
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusHalfDay Status = "Half Day"
)

// Statuses lists the values accepted by the records service.
var Statuses = []string{string(StatusPresent), string(StatusAbsent), string(StatusHalfDay)}

func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusHalfDay:
		return true
	}
	return false
}

// Label is the display text, employee.NotAvailable for unknown values.
func (s Status) Label() string {
	if !s.Valid() {
		return employee.NotAvailable
	}
	return string(s)
}

type Attendance struct {
	ID       string        `json:"_id"`
	Employee employee.Ref  `json:"employeeId"`
	Date     calendar.Date `json:"date"`
	Status   Status        `json:"status"`
	WorkDone string        `json:"workDone,omitempty"`
}

var _ record.Record = Attendance{}

func (a Attendance) RecordID() string {
	return a.ID
}
