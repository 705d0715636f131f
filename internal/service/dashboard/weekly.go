package dashboard

import (
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/dashboard"
	"github.com/shopspring/decimal"
)

// WeeklyAttendance counts present and absent records per weekday, Monday
// through Saturday. Records dated on a Sunday, records without a valid date
// and statuses other than Present or Absent are not counted. The result always
// has six buckets in weekday order, whatever the input order.
func WeeklyAttendance(records []attendance.Attendance) []dashboard.WeeklyBucket {
	buckets := make([]dashboard.WeeklyBucket, len(dashboard.Weekdays))
	for i, day := range dashboard.Weekdays {
		buckets[i].Day = day
	}

	for _, r := range records {
		if r.Date.IsZero() {
			continue
		}
		weekday := r.Date.Weekday()
		if weekday == time.Sunday {
			continue
		}

		b := &buckets[int(weekday)-1]
		switch r.Status {
		case attendance.StatusPresent:
			b.Present++
		case attendance.StatusAbsent:
			b.Absent++
		}
	}

	return buckets
}

// Summarize adds totals, the present rate and chart datasets to the buckets.
func Summarize(buckets []dashboard.WeeklyBucket) *dashboard.WeeklyAttendanceResponse {
	resp := &dashboard.WeeklyAttendanceResponse{
		Buckets:     buckets,
		PresentRate: decimal.Zero,
	}

	labels := make([]string, 0, len(buckets))
	present := make([]int, 0, len(buckets))
	absent := make([]int, 0, len(buckets))
	for _, b := range buckets {
		labels = append(labels, b.Day)
		present = append(present, b.Present)
		absent = append(absent, b.Absent)
		resp.TotalPresent += b.Present
		resp.TotalAbsent += b.Absent
	}

	if total := resp.TotalPresent + resp.TotalAbsent; total > 0 {
		resp.PresentRate = decimal.NewFromInt(int64(resp.TotalPresent)).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(int64(total))).
			Round(2)
	}

	resp.Chart = dashboard.ChartData{
		Labels: labels,
		Datasets: []dashboard.ChartDataset{
			{Label: string(attendance.StatusPresent), Data: present},
			{Label: string(attendance.StatusAbsent), Data: absent},
		},
	}
	return resp
}
