package dashboard

import "github.com/shopspring/decimal"

// Weekdays are the business days charted, in bucket order. Sunday is not one of them.
var Weekdays = [6]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// ========== WEEKLY ATTENDANCE ==========

// WeeklyBucket holds the present and absent counts of one weekday
type WeeklyBucket struct {
	Day     string `json:"day"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
}

// WeeklyAttendanceResponse is the weekly attendance chart with its totals
type WeeklyAttendanceResponse struct {
	Buckets      []WeeklyBucket  `json:"buckets"`
	TotalPresent int             `json:"total_present"`
	TotalAbsent  int             `json:"total_absent"`
	PresentRate  decimal.Decimal `json:"present_rate"` // percent of present among present+absent
	Chart        ChartData       `json:"chart"`
}

// ChartData is the bar chart input: one label per weekday, one dataset per status
type ChartData struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

type ChartDataset struct {
	Label string `json:"label"`
	Data  []int  `json:"data"`
}

// ========== REFRESH ==========

// RefreshResponse reports how many records each collection holds after a refresh
type RefreshResponse struct {
	Employees  int `json:"employees"`
	Attendance int `json:"attendance"`
	Leaves     int `json:"leaves"`
}
