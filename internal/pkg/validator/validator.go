package validator

import (
	"regexp"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/calendar"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// Date validation, strict YYYY-MM-DD as sent by date inputs.
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse(calendar.Layout, dateStr)
	return date, err == nil
}

var mobileRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// Mobile number validation: optional leading +, 7-15 digits, spaces and dashes ignored.
func IsValidMobileNumber(mobile string) bool {
	mobile = strings.ReplaceAll(mobile, " ", "")
	mobile = strings.ReplaceAll(mobile, "-", "")
	return mobileRegex.MatchString(mobile)
}
