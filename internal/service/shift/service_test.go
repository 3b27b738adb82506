package shift

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/surtimax/payroll-backend/internal/domain/employee"
	"github.com/surtimax/payroll-backend/internal/domain/shift"
	"github.com/surtimax/payroll-backend/internal/domain/workhours"
	"github.com/surtimax/payroll-backend/internal/pkg/clock"
)

// ========== IN-MEMORY FAKES ==========

type fakeShiftRepo struct {
	shift.ShiftRepository
	shifts map[string]*shift.Shift
}

func (f *fakeShiftRepo) Create(_ context.Context, s shift.Shift) (shift.Shift, error) {
	s.CreatedAt = time.Now().UTC()
	f.shifts[s.ID] = &s
	return s, nil
}

func (f *fakeShiftRepo) GetByID(_ context.Context, id string) (shift.Shift, error) {
	sh, ok := f.shifts[id]
	if !ok {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return *sh, nil
}

func (f *fakeShiftRepo) GetOpenByEmployee(_ context.Context, employeeID string) (*shift.Shift, error) {
	for _, sh := range f.shifts {
		if sh.EmployeeID == employeeID && sh.EndAt == nil {
			copied := *sh
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeShiftRepo) SetEnd(_ context.Context, id string, end time.Time) error {
	sh, ok := f.shifts[id]
	if !ok {
		return shift.ErrShiftNotFound
	}
	sh.EndAt = &end
	return nil
}

func (f *fakeShiftRepo) UpdateTimes(_ context.Context, id string, start time.Time, end *time.Time) error {
	sh, ok := f.shifts[id]
	if !ok {
		return shift.ErrShiftNotFound
	}
	sh.StartAt = start
	sh.EndAt = end
	return nil
}

func (f *fakeShiftRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.shifts[id]; !ok {
		return shift.ErrShiftNotFound
	}
	delete(f.shifts, id)
	return nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

// fakeWorkHoursService records which shifts were derived and removed.
type fakeWorkHoursService struct {
	derived []shift.Shift
	removed []string
}

func (f *fakeWorkHoursService) DeriveForShift(_ context.Context, s shift.Shift) error {
	f.derived = append(f.derived, s)
	return nil
}

func (f *fakeWorkHoursService) RemoveForShift(_ context.Context, shiftID string) error {
	f.removed = append(f.removed, shiftID)
	return nil
}

func (f *fakeWorkHoursService) SyncRange(_ context.Context, _ workhours.SyncRangeRequest) (workhours.SyncRangeResponse, error) {
	return workhours.SyncRangeResponse{}, nil
}

// ========== FIXTURE ==========

const (
	activeEmployeeID   = "2b9a7c4e-0000-4000-8000-000000000001"
	inactiveEmployeeID = "2b9a7c4e-0000-4000-8000-000000000002"
)

var testNow = time.Date(2024, 3, 11, 7, 0, 0, 0, time.UTC)

type fixture struct {
	svc          *ShiftServiceImpl
	shiftRepo    *fakeShiftRepo
	workHoursSvc *fakeWorkHoursService
}

func newFixture() *fixture {
	shiftRepo := &fakeShiftRepo{shifts: map[string]*shift.Shift{}}
	workHoursSvc := &fakeWorkHoursService{}

	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		activeEmployeeID:   {ID: activeEmployeeID, FullName: "Ana Acosta", DailyWage: decimal.NewFromInt(100000), Active: true},
		inactiveEmployeeID: {ID: inactiveEmployeeID, FullName: "Bruno Diaz", DailyWage: decimal.NewFromInt(80000)},
	}}

	svc := &ShiftServiceImpl{
		shiftRepo:    shiftRepo,
		employeeRepo: employeeRepo,
		workHoursSvc: workHoursSvc,
		clock:        clock.Fixed{Instant: testNow},
		runTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}

	return &fixture{svc: svc, shiftRepo: shiftRepo, workHoursSvc: workHoursSvc}
}

func (f *fixture) openShift(t *testing.T) shift.ShiftResponse {
	t.Helper()
	resp, err := f.svc.Open(context.Background(), shift.OpenShiftRequest{EmployeeID: activeEmployeeID})
	require.NoError(t, err)
	return resp
}

// ========== OPEN ==========

func TestOpen(t *testing.T) {
	f := newFixture()

	resp := f.openShift(t)
	assert.Equal(t, activeEmployeeID, resp.EmployeeID)
	assert.Equal(t, testNow.Format(time.RFC3339), resp.StartAt)
	assert.Nil(t, resp.EndAt)

	stored := f.shiftRepo.shifts[resp.ID]
	require.NotNil(t, stored)
	assert.True(t, stored.IsOpen())
}

func TestOpen_SecondOpenShiftRejected(t *testing.T) {
	f := newFixture()
	f.openShift(t)

	_, err := f.svc.Open(context.Background(), shift.OpenShiftRequest{EmployeeID: activeEmployeeID})
	assert.ErrorIs(t, err, shift.ErrShiftAlreadyOpen)
}

func TestOpen_AllowedAgainAfterClose(t *testing.T) {
	f := newFixture()
	opened := f.openShift(t)

	at := testNow.Add(8 * time.Hour).Format(time.RFC3339)
	_, err := f.svc.Close(context.Background(), shift.CloseShiftRequest{ShiftID: opened.ID, At: &at})
	require.NoError(t, err)

	_, err = f.svc.Open(context.Background(), shift.OpenShiftRequest{EmployeeID: activeEmployeeID})
	assert.NoError(t, err)
}

func TestOpen_InactiveEmployee(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Open(context.Background(), shift.OpenShiftRequest{EmployeeID: inactiveEmployeeID})
	assert.ErrorIs(t, err, employee.ErrEmployeeInactive)
}

// ========== CLOSE ==========

func TestClose_DerivesHours(t *testing.T) {
	f := newFixture()
	opened := f.openShift(t)

	at := testNow.Add(10*time.Hour + 30*time.Minute).Format(time.RFC3339)
	resp, err := f.svc.Close(context.Background(), shift.CloseShiftRequest{ShiftID: opened.ID, At: &at})
	require.NoError(t, err)
	require.NotNil(t, resp.EndAt)

	require.Len(t, f.workHoursSvc.derived, 1)
	derived := f.workHoursSvc.derived[0]
	assert.Equal(t, opened.ID, derived.ID)
	require.NotNil(t, derived.EndAt)
	assert.Equal(t, testNow.Add(10*time.Hour+30*time.Minute), derived.EndAt.UTC())
}

func TestClose_AlreadyClosed(t *testing.T) {
	f := newFixture()
	opened := f.openShift(t)

	at := testNow.Add(8 * time.Hour).Format(time.RFC3339)
	_, err := f.svc.Close(context.Background(), shift.CloseShiftRequest{ShiftID: opened.ID, At: &at})
	require.NoError(t, err)

	_, err = f.svc.Close(context.Background(), shift.CloseShiftRequest{ShiftID: opened.ID})
	assert.ErrorIs(t, err, shift.ErrShiftAlreadyClosed)
}

func TestClose_EndBeforeStart(t *testing.T) {
	f := newFixture()
	opened := f.openShift(t)

	at := testNow.Add(-time.Hour).Format(time.RFC3339)
	_, err := f.svc.Close(context.Background(), shift.CloseShiftRequest{ShiftID: opened.ID, At: &at})
	assert.ErrorIs(t, err, shift.ErrEndBeforeStart)

	// The shift stays open and nothing was derived.
	assert.True(t, f.shiftRepo.shifts[opened.ID].IsOpen())
	assert.Empty(t, f.workHoursSvc.derived)
}

// ========== MANUAL ==========

func TestCreateManual_DerivesHours(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.CreateManual(context.Background(), shift.CreateManualShiftRequest{
		EmployeeID: activeEmployeeID,
		StartAt:    "2024-03-10T07:00:00Z",
		EndAt:      "2024-03-10T15:00:00Z",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.EndAt)

	require.Len(t, f.workHoursSvc.derived, 1)
	assert.Equal(t, resp.ID, f.workHoursSvc.derived[0].ID)
}

// ========== UPDATE ==========

func TestUpdate_RederivesWhenClosed(t *testing.T) {
	f := newFixture()
	opened := f.openShift(t)

	at := testNow.Add(8 * time.Hour).Format(time.RFC3339)
	_, err := f.svc.Close(context.Background(), shift.CloseShiftRequest{ShiftID: opened.ID, At: &at})
	require.NoError(t, err)

	newEnd := testNow.Add(9 * time.Hour).Format(time.RFC3339)
	resp, err := f.svc.Update(context.Background(), shift.UpdateShiftRequest{ShiftID: opened.ID, EndAt: &newEnd})
	require.NoError(t, err)
	require.NotNil(t, resp.EndAt)
	assert.Equal(t, newEnd, *resp.EndAt)

	// Once for the close, once for the correction.
	assert.Len(t, f.workHoursSvc.derived, 2)
}

func TestUpdate_EndBeforeStart(t *testing.T) {
	f := newFixture()
	opened := f.openShift(t)

	bad := testNow.Add(-time.Minute).Format(time.RFC3339)
	_, err := f.svc.Update(context.Background(), shift.UpdateShiftRequest{ShiftID: opened.ID, EndAt: &bad})
	assert.ErrorIs(t, err, shift.ErrEndBeforeStart)
}

func TestUpdate_PaidShiftImmutable(t *testing.T) {
	f := newFixture()
	opened := f.openShift(t)
	f.shiftRepo.shifts[opened.ID].Paid = true

	start := testNow.Add(time.Hour).Format(time.RFC3339)
	_, err := f.svc.Update(context.Background(), shift.UpdateShiftRequest{ShiftID: opened.ID, StartAt: &start})
	assert.ErrorIs(t, err, shift.ErrShiftAlreadyPaid)
}

// ========== DELETE ==========

func TestDelete_RemovesDerivedRows(t *testing.T) {
	f := newFixture()
	opened := f.openShift(t)

	err := f.svc.Delete(context.Background(), opened.ID)
	require.NoError(t, err)

	assert.NotContains(t, f.shiftRepo.shifts, opened.ID)
	assert.Equal(t, []string{opened.ID}, f.workHoursSvc.removed)
}

func TestDelete_PaidShiftRejected(t *testing.T) {
	f := newFixture()
	opened := f.openShift(t)
	f.shiftRepo.shifts[opened.ID].Paid = true

	err := f.svc.Delete(context.Background(), opened.ID)
	assert.ErrorIs(t, err, shift.ErrShiftAlreadyPaid)
	assert.Contains(t, f.shiftRepo.shifts, opened.ID)
}
