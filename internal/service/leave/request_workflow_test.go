package leave

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/record"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillDraft(w *RequestWorkflowImpl) {
	w.ChangeDraft(context.Background(), leave.ChangeRequestDraftRequest{
		StartDate: strPtr("2024-05-06"),
		EndDate:   strPtr("2024-05-07"),
		Reason:    strPtr("Medical appointment"),
	})
}

func TestRequestWorkflow_SelectEmployee(t *testing.T) {
	f := newFixture([]employee.Employee{asha})
	w := NewRequestWorkflow(f.leaves, f.employees)
	ctx := context.Background()

	state := w.SelectEmployee(ctx, "e1")
	require.NotNil(t, state.Employee)
	assert.Equal(t, employee.EmployeeOption{ID: "e1", Label: "Asha - Engineer"}, *state.Employee)

	state = w.SelectEmployee(ctx, "missing-id")
	assert.Nil(t, state.Employee)
}

func TestRequestWorkflow_SelectEmployee_EmptyStore(t *testing.T) {
	f := newFixture(nil)
	w := NewRequestWorkflow(f.leaves, f.employees)

	var state leave.RequestState
	assert.NotPanics(t, func() { state = w.SelectEmployee(context.Background(), "missing-id") })
	assert.Nil(t, state.Employee)
}

func TestRequestWorkflow_SubmitRequiresEmployee(t *testing.T) {
	f := newFixture([]employee.Employee{asha})
	w := NewRequestWorkflow(f.leaves, f.employees)
	fillDraft(w)

	state, err := w.Submit(context.Background())

	assert.ErrorIs(t, err, leave.ErrNoEmployeeSelected)
	assert.Equal(t, "Medical appointment", state.Draft.Reason)
	assert.Zero(t, f.leaveGW.Calls["create"])
}

func TestRequestWorkflow_Submit(t *testing.T) {
	// Setup
	f := newFixture([]employee.Employee{asha})
	w := NewRequestWorkflow(f.leaves, f.employees)
	ctx := context.Background()
	w.SelectEmployee(ctx, "e1")
	fillDraft(w)

	// Act
	state, err := w.Submit(ctx)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, MessageSubmitted, state.Message)
	assert.Equal(t, leave.NewRequestDraft(), state.Draft)
	require.NotNil(t, state.Employee)
	require.NotNil(t, state.Created)
	assert.Equal(t, "Pending", state.Created.Status)
	assert.Equal(t, "Asha", state.Created.EmployeeName)

	remote := f.leaveGW.Records()
	require.Len(t, remote, 1)
	assert.Equal(t, "e1", remote[0].Employee.ID)
	assert.Equal(t, leave.StatusPending, remote[0].Status)
	assert.Equal(t, 1, f.leaves.Len())
}

func TestRequestWorkflow_SubmitFailureKeepsDraft(t *testing.T) {
	f := newFixture([]employee.Employee{asha})
	w := NewRequestWorkflow(f.leaves, f.employees)
	ctx := context.Background()
	w.SelectEmployee(ctx, "e1")
	fillDraft(w)
	f.leaveGW.Err = errors.New("service unavailable")

	state, err := w.Submit(ctx)

	assert.ErrorIs(t, err, record.ErrCreate)
	assert.Equal(t, MessageSubmitError, state.Message)
	assert.Equal(t, "Medical appointment", state.Draft.Reason)
	assert.False(t, state.Submitting)
	assert.Equal(t, 0, f.leaves.Len())
}

func TestRequestWorkflow_SubmitInvalidPeriod(t *testing.T) {
	f := newFixture([]employee.Employee{asha})
	w := NewRequestWorkflow(f.leaves, f.employees)
	ctx := context.Background()
	w.SelectEmployee(ctx, "e1")
	fillDraft(w)
	w.ChangeDraft(ctx, leave.ChangeRequestDraftRequest{EndDate: strPtr("2024-05-01")})

	_, err := w.Submit(ctx)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "endDate")
	assert.Zero(t, f.leaveGW.Calls["create"])
}

// blockingLeaves holds Create until release is closed.
type blockingLeaves struct {
	leave.LeaveRepository
	entered chan struct{}
	release chan struct{}
}

func (b *blockingLeaves) Create(ctx context.Context, draft any) (leave.Leave, error) {
	b.entered <- struct{}{}
	<-b.release
	return b.LeaveRepository.Create(ctx, draft)
}

func TestRequestWorkflow_SubmitInFlight(t *testing.T) {
	f := newFixture([]employee.Employee{asha})
	repo := &blockingLeaves{LeaveRepository: f.leaves, entered: make(chan struct{}), release: make(chan struct{})}
	w := NewRequestWorkflow(repo, f.employees)
	ctx := context.Background()
	w.SelectEmployee(ctx, "e1")
	fillDraft(w)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := w.Submit(ctx)
		assert.NoError(t, err)
	}()
	<-repo.entered

	state, err := w.Submit(ctx)
	assert.ErrorIs(t, err, leave.ErrSubmitInFlight)
	assert.True(t, state.Submitting)

	close(repo.release)
	wg.Wait()
	assert.Equal(t, 1, f.leaveGW.Calls["create"])
	assert.False(t, w.State(ctx).Submitting)
}
