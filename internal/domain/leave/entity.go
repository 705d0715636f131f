package leave

import (
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/record"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/calendar"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusDeclined Status = "Declined"
)

var Statuses = []string{string(StatusPending), string(StatusApproved), string(StatusDeclined)}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDeclined:
		return true
	}
	return false
}

func (s Status) Label() string {
	if !s.Valid() {
		return employee.NotAvailable
	}
	return string(s)
}

// Leave is a leave request
type Leave struct {
	ID        string        `json:"_id"`
	Employee  employee.Ref  `json:"employeeId"`
	StartDate calendar.Date `json:"startDate"`
	EndDate   calendar.Date `json:"endDate"`
	Reason    string        `json:"reason"`
	Status    Status        `json:"status"`
}

var _ record.Record = Leave{}

func (l Leave) RecordID() string {
	return l.ID
}
