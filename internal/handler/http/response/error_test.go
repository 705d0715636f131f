package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/record"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/gateway"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/storage"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{
			name:     "validation",
			err:      validator.ValidationErrors{{Field: "email", Message: "email is required"}},
			wantCode: http.StatusUnprocessableEntity,
			wantErr:  "VALIDATION_ERROR",
		},
		{
			name:     "wrapped not found",
			err:      fmt.Errorf("lookup: %w", employee.ErrEmployeeNotFound),
			wantCode: http.StatusNotFound,
			wantErr:  "NOT_FOUND",
		},
		{
			name:     "no employee selected",
			err:      leave.ErrNoEmployeeSelected,
			wantCode: http.StatusBadRequest,
			wantErr:  "BAD_REQUEST",
		},
		{
			name:     "already processed",
			err:      leave.ErrLeaveAlreadyProcessed,
			wantCode: http.StatusConflict,
			wantErr:  "CONFLICT",
		},
		{
			name:     "edit in flight",
			err:      record.ErrSubmitInFlight,
			wantCode: http.StatusConflict,
			wantErr:  "CONFLICT",
		},
		{
			name:     "records service 404",
			err:      fmt.Errorf("%w: %w", record.ErrDelete, &gateway.APIError{StatusCode: http.StatusNotFound, Message: "gone"}),
			wantCode: http.StatusNotFound,
			wantErr:  "NOT_FOUND",
		},
		{
			name:     "records service failure",
			err:      fmt.Errorf("%w: %w", record.ErrUpdate, &gateway.APIError{StatusCode: http.StatusInternalServerError, Message: "boom"}),
			wantCode: http.StatusBadGateway,
			wantErr:  "BAD_GATEWAY",
		},
		{
			name:     "download failure",
			err:      fmt.Errorf("%w: %w", report.ErrDownloadFailed, errors.New("connection refused")),
			wantCode: http.StatusBadGateway,
			wantErr:  "BAD_GATEWAY",
		},
		{
			name:     "missing file",
			err:      fmt.Errorf("%w: %s", storage.ErrFileNotFound, "a.pdf"),
			wantCode: http.StatusNotFound,
			wantErr:  "NOT_FOUND",
		},
		{
			name:     "file outside exports",
			err:      fmt.Errorf("%w: %s", storage.ErrInvalidPath, "../a.pdf"),
			wantCode: http.StatusBadRequest,
			wantErr:  "BAD_REQUEST",
		},
		{
			name:     "unknown",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantErr:  "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			HandleError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantErr, body.Error.Code)
		})
	}
}
