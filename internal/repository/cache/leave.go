package cache

import (
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/sse"
)

const TopicLeaves = "leaves"

var _ leave.LeaveRepository = (*Store[leave.Leave])(nil)

func NewLeaveStore(gw Gateway[leave.Leave], hub *sse.Hub) *Store[leave.Leave] {
	return NewStore(TopicLeaves, gw, hub)
}
