package dashboard

import (
	"math/rand"
	"testing"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/calendar"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-01-01 is a Monday, 2024-01-07 a Sunday.
func rec(day int, status attendance.Status) attendance.Attendance {
	return attendance.Attendance{Date: calendar.New(2024, 1, day), Status: status}
}

func emptyBuckets() []dashboard.WeeklyBucket {
	buckets := make([]dashboard.WeeklyBucket, 6)
	for i, day := range dashboard.Weekdays {
		buckets[i].Day = day
	}
	return buckets
}

func TestWeeklyAttendance_MondayAndSunday(t *testing.T) {
	records := []attendance.Attendance{
		rec(1, attendance.StatusPresent),
		rec(1, attendance.StatusAbsent),
		rec(7, attendance.StatusPresent),
	}

	buckets := WeeklyAttendance(records)

	want := emptyBuckets()
	want[0].Present = 1
	want[0].Absent = 1
	assert.Equal(t, want, buckets)
}

func TestWeeklyAttendance_Empty(t *testing.T) {
	assert.Equal(t, emptyBuckets(), WeeklyAttendance(nil))
}

func TestWeeklyAttendance_IgnoresOtherStatusesAndBadDates(t *testing.T) {
	records := []attendance.Attendance{
		rec(2, attendance.StatusHalfDay),
		rec(3, "Sick"),
		{Status: attendance.StatusPresent},
		rec(6, attendance.StatusAbsent),
	}

	buckets := WeeklyAttendance(records)

	want := emptyBuckets()
	want[5].Absent = 1
	assert.Equal(t, want, buckets)
}

func TestWeeklyAttendance_OrderIndependentAndIdempotent(t *testing.T) {
	var records []attendance.Attendance
	statuses := []attendance.Status{attendance.StatusPresent, attendance.StatusAbsent, attendance.StatusHalfDay}
	for day := 1; day <= 28; day++ {
		for i, s := range statuses {
			for n := 0; n <= i+day%3; n++ {
				records = append(records, rec(day, s))
			}
		}
	}

	first := WeeklyAttendance(records)
	second := WeeklyAttendance(records)
	assert.Equal(t, first, second)

	shuffled := append([]attendance.Attendance(nil), records...)
	rand.New(rand.NewSource(7)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	assert.Equal(t, first, WeeklyAttendance(shuffled))

	require.Len(t, first, 6)
	for i, b := range first {
		assert.Equal(t, dashboard.Weekdays[i], b.Day)
	}
}

func TestWeeklyAttendance_TimestampDates(t *testing.T) {
	// Stored as midnight UTC; the written day decides the bucket.
	d, err := calendar.Parse("2024-01-06T00:00:00.000Z")
	require.NoError(t, err)

	buckets := WeeklyAttendance([]attendance.Attendance{{Date: d, Status: attendance.StatusPresent}})

	assert.Equal(t, 1, buckets[5].Present)
}

func TestSummarize(t *testing.T) {
	buckets := WeeklyAttendance([]attendance.Attendance{
		rec(1, attendance.StatusPresent),
		rec(2, attendance.StatusPresent),
		rec(2, attendance.StatusAbsent),
	})

	resp := Summarize(buckets)

	assert.Equal(t, 2, resp.TotalPresent)
	assert.Equal(t, 1, resp.TotalAbsent)
	assert.True(t, decimal.RequireFromString("66.67").Equal(resp.PresentRate), resp.PresentRate.String())
	assert.Equal(t, dashboard.Weekdays[:], resp.Chart.Labels)
	require.Len(t, resp.Chart.Datasets, 2)
	assert.Equal(t, "Present", resp.Chart.Datasets[0].Label)
	assert.Equal(t, []int{1, 1, 0, 0, 0, 0}, resp.Chart.Datasets[0].Data)
	assert.Equal(t, "Absent", resp.Chart.Datasets[1].Label)
	assert.Equal(t, []int{0, 1, 0, 0, 0, 0}, resp.Chart.Datasets[1].Data)
}

func TestSummarize_NoRecords(t *testing.T) {
	resp := Summarize(WeeklyAttendance(nil))

	assert.True(t, resp.PresentRate.IsZero())
	assert.Zero(t, resp.TotalPresent)
}
