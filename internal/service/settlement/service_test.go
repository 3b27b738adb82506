package settlement

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/surtimax/payroll-backend/internal/domain/discount"
	"github.com/surtimax/payroll-backend/internal/domain/employee"
	"github.com/surtimax/payroll-backend/internal/domain/payconfig"
	"github.com/surtimax/payroll-backend/internal/domain/settlement"
	"github.com/surtimax/payroll-backend/internal/domain/shift"
	"github.com/surtimax/payroll-backend/internal/domain/workhours"
)

// ========== IN-MEMORY FAKES ==========

type fakeShiftRepo struct {
	shift.ShiftRepository
	shifts map[string]*shift.Shift
}

func (f *fakeShiftRepo) ListClosedUnpaid(_ context.Context, from, to *time.Time, employeeIDs []string) ([]shift.Shift, error) {
	allowed := map[string]bool{}
	for _, id := range employeeIDs {
		allowed[id] = true
	}
	var out []shift.Shift
	for _, sh := range f.shifts {
		if sh.EndAt == nil || sh.Paid {
			continue
		}
		if from != nil && sh.StartAt.Before(*from) {
			continue
		}
		if to != nil && !sh.StartAt.Before(*to) {
			continue
		}
		if len(allowed) > 0 && !allowed[sh.EmployeeID] {
			continue
		}
		out = append(out, *sh)
	}
	return out, nil
}

func (f *fakeShiftRepo) MarkPaidBySettlement(_ context.Context, ids []string, settlementID string) (int64, error) {
	var affected int64
	for _, id := range ids {
		sh, ok := f.shifts[id]
		if !ok || sh.Paid {
			continue
		}
		sh.Paid = true
		sid := settlementID
		sh.SettlementID = &sid
		affected++
	}
	return affected, nil
}

func (f *fakeShiftRepo) Release(_ context.Context, ids []string) error {
	for _, id := range ids {
		if sh, ok := f.shifts[id]; ok {
			sh.Paid = false
			sh.SettlementID = nil
			sh.PaymentID = nil
		}
	}
	return nil
}

type fakeWorkHoursRepo struct {
	workhours.WorkHoursRepository
	hours    map[string]workhours.HoursRecord
	overtime map[string]*workhours.OvertimeRecord
}

func (f *fakeWorkHoursRepo) ListHoursByShiftIDs(_ context.Context, shiftIDs []string) ([]workhours.HoursRecord, error) {
	var out []workhours.HoursRecord
	for _, id := range shiftIDs {
		if rec, ok := f.hours[id]; ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeWorkHoursRepo) ListUnpaidOvertime(_ context.Context, from, to *time.Time, employeeIDs []string) ([]workhours.OvertimeRecord, error) {
	allowed := map[string]bool{}
	for _, id := range employeeIDs {
		allowed[id] = true
	}
	var out []workhours.OvertimeRecord
	for _, ot := range f.overtime {
		if ot.Paid {
			continue
		}
		if from != nil && ot.WorkDate.Before(*from) {
			continue
		}
		if to != nil && !ot.WorkDate.Before(*to) {
			continue
		}
		if len(allowed) > 0 && !allowed[ot.EmployeeID] {
			continue
		}
		out = append(out, *ot)
	}
	return out, nil
}

func (f *fakeWorkHoursRepo) MarkOvertimePaidBySettlement(_ context.Context, ids []string, settlementID string) (int64, error) {
	var affected int64
	for _, id := range ids {
		ot, ok := f.overtime[id]
		if !ok || ot.Paid {
			continue
		}
		ot.Paid = true
		sid := settlementID
		ot.SettlementID = &sid
		affected++
	}
	return affected, nil
}

func (f *fakeWorkHoursRepo) ReleaseOvertime(_ context.Context, ids []string) error {
	for _, id := range ids {
		if ot, ok := f.overtime[id]; ok {
			ot.Paid = false
			ot.SettlementID = nil
			ot.PaymentID = nil
		}
	}
	return nil
}

type fakeDiscountRepo struct {
	discount.DiscountRepository
	discounts map[string]*discount.Discount
}

func (f *fakeDiscountRepo) ListUnpaid(_ context.Context, from, to *time.Time, employeeIDs []string) ([]discount.Discount, error) {
	allowed := map[string]bool{}
	for _, id := range employeeIDs {
		allowed[id] = true
	}
	var out []discount.Discount
	for _, d := range f.discounts {
		if d.Paid {
			continue
		}
		if from != nil && d.Date.Before(*from) {
			continue
		}
		if to != nil && !d.Date.Before(*to) {
			continue
		}
		if len(allowed) > 0 && !allowed[d.EmployeeID] {
			continue
		}
		out = append(out, *d)
	}
	return out, nil
}

func (f *fakeDiscountRepo) MarkPaidBySettlement(_ context.Context, ids []string, settlementID string) (int64, error) {
	var affected int64
	for _, id := range ids {
		d, ok := f.discounts[id]
		if !ok || d.Paid {
			continue
		}
		d.Paid = true
		sid := settlementID
		d.SettlementID = &sid
		affected++
	}
	return affected, nil
}

func (f *fakeDiscountRepo) Release(_ context.Context, ids []string) error {
	for _, id := range ids {
		if d, ok := f.discounts[id]; ok {
			d.Paid = false
			d.SettlementID = nil
			d.PaymentID = nil
		}
	}
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

type fakeConfigService struct {
	payconfig.ConfigService
	subsidyPercent decimal.Decimal
}

func (f *fakeConfigService) Get(_ context.Context, _ string) (decimal.Decimal, error) {
	return f.subsidyPercent, nil
}

type fakeSettlementRepo struct {
	settlement.SettlementRepository
	settlements map[string]*settlement.Settlement
	details     map[string]*settlement.SettlementDetail
}

func newFakeSettlementRepo() *fakeSettlementRepo {
	return &fakeSettlementRepo{
		settlements: map[string]*settlement.Settlement{},
		details:     map[string]*settlement.SettlementDetail{},
	}
}

func (f *fakeSettlementRepo) Create(_ context.Context, s settlement.Settlement) (settlement.Settlement, error) {
	s.CreatedAt = time.Now().UTC()
	f.settlements[s.ID] = &s
	return s, nil
}

func (f *fakeSettlementRepo) GetByID(_ context.Context, id string) (settlement.Settlement, error) {
	s, ok := f.settlements[id]
	if !ok {
		return settlement.Settlement{}, settlement.ErrSettlementNotFound
	}
	return *s, nil
}

func (f *fakeSettlementRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.settlements[id]; !ok {
		return settlement.ErrSettlementNotFound
	}
	delete(f.settlements, id)
	return nil
}

func (f *fakeSettlementRepo) UpdateStatus(_ context.Context, id string, expected, next settlement.Status) (int64, error) {
	s, ok := f.settlements[id]
	if !ok || s.Status != expected {
		return 0, nil
	}
	s.Status = next
	return 1, nil
}

func (f *fakeSettlementRepo) UpdateTotals(_ context.Context, id string, gross, discounts, net decimal.Decimal) error {
	s, ok := f.settlements[id]
	if !ok {
		return settlement.ErrSettlementNotFound
	}
	s.GrossTotal = gross
	s.DiscountTotal = discounts
	s.NetTotal = net
	return nil
}

func (f *fakeSettlementRepo) CreateDetail(_ context.Context, d settlement.SettlementDetail) (settlement.SettlementDetail, error) {
	f.details[d.ID] = &d
	return d, nil
}

func (f *fakeSettlementRepo) GetDetailByID(_ context.Context, id string) (settlement.SettlementDetail, error) {
	d, ok := f.details[id]
	if !ok {
		return settlement.SettlementDetail{}, settlement.ErrDetailNotFound
	}
	return *d, nil
}

func (f *fakeSettlementRepo) ListDetails(_ context.Context, settlementID string) ([]settlement.SettlementDetail, error) {
	var out []settlement.SettlementDetail
	for _, d := range f.details {
		if d.SettlementID == settlementID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (f *fakeSettlementRepo) UpdateDetailAdjustment(_ context.Context, id string, adjustment, netTotal decimal.Decimal, observations string) error {
	d, ok := f.details[id]
	if !ok {
		return settlement.ErrDetailNotFound
	}
	d.ManualAdjustment = adjustment
	d.NetTotal = netTotal
	d.Observations = observations
	return nil
}

func (f *fakeSettlementRepo) DeleteDetails(_ context.Context, settlementID string) error {
	for id, d := range f.details {
		if d.SettlementID == settlementID {
			delete(f.details, id)
		}
	}
	return nil
}

// ========== FIXTURE ==========

type fixture struct {
	svc            *SettlementServiceImpl
	shiftRepo      *fakeShiftRepo
	workHoursRepo  *fakeWorkHoursRepo
	discountRepo   *fakeDiscountRepo
	settlementRepo *fakeSettlementRepo
}

const (
	empA = "emp-aaaaaaaa-0000-0000-0000-000000000001"
	empB = "emp-bbbbbbbb-0000-0000-0000-000000000002"
)

func day(d int, hour int) time.Time {
	return time.Date(2024, 3, d, hour, 0, 0, 0, time.UTC)
}

// newFixture seeds two employees over a March 1-15 period:
// employee A works two shifts (10.5h and 8h, 2.5h overtime on the first)
// with a 50,000 meal consumption; employee B works one 8h shift with a
// 20,000 loan deduction.
func newFixture() *fixture {
	end1 := day(1, 17).Add(30 * time.Minute) // 07:00 -> 17:30 = 10.5h
	end2 := day(2, 15)                       // 07:00 -> 15:00 = 8h
	end3 := day(3, 15)

	shiftRepo := &fakeShiftRepo{shifts: map[string]*shift.Shift{
		"shift-1": {ID: "shift-1", EmployeeID: empA, StartAt: day(1, 7), EndAt: &end1},
		"shift-2": {ID: "shift-2", EmployeeID: empA, StartAt: day(2, 7), EndAt: &end2},
		"shift-3": {ID: "shift-3", EmployeeID: empB, StartAt: day(3, 7), EndAt: &end3},
	}}

	workHoursRepo := &fakeWorkHoursRepo{
		hours: map[string]workhours.HoursRecord{
			"shift-1": {ID: "hours-1", ShiftID: "shift-1", EmployeeID: empA, WorkDate: day(1, 0), HoursWorked: decimal.RequireFromString("10.5")},
			"shift-2": {ID: "hours-2", ShiftID: "shift-2", EmployeeID: empA, WorkDate: day(2, 0), HoursWorked: decimal.NewFromInt(8)},
			"shift-3": {ID: "hours-3", ShiftID: "shift-3", EmployeeID: empB, WorkDate: day(3, 0), HoursWorked: decimal.NewFromInt(8)},
		},
		overtime: map[string]*workhours.OvertimeRecord{
			"ot-1": {ID: "ot-1", ShiftID: "shift-1", EmployeeID: empA, WorkDate: day(1, 0), OvertimeHours: decimal.RequireFromString("2.5")},
		},
	}

	discountRepo := &fakeDiscountRepo{discounts: map[string]*discount.Discount{
		"disc-1": {ID: "disc-1", EmployeeID: empA, Type: discount.TypeMealConsumption, Value: decimal.NewFromInt(50000), Date: day(1, 0)},
		"disc-2": {ID: "disc-2", EmployeeID: empB, Type: discount.TypeLoan, Value: decimal.NewFromInt(20000), Date: day(3, 0)},
	}}

	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		empA: {ID: empA, FullName: "Ana Acosta", DailyWage: decimal.NewFromInt(100000), Active: true},
		empB: {ID: empB, FullName: "Bruno Diaz", DailyWage: decimal.NewFromInt(80000), Active: true},
	}}

	settlementRepo := newFakeSettlementRepo()

	svc := &SettlementServiceImpl{
		settlementRepo: settlementRepo,
		shiftRepo:      shiftRepo,
		workHoursRepo:  workHoursRepo,
		discountRepo:   discountRepo,
		employeeRepo:   employeeRepo,
		configSvc:      &fakeConfigService{subsidyPercent: decimal.NewFromInt(10)},
		runTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}

	return &fixture{
		svc:            svc,
		shiftRepo:      shiftRepo,
		workHoursRepo:  workHoursRepo,
		discountRepo:   discountRepo,
		settlementRepo: settlementRepo,
	}
}

func previewRequest() settlement.BuildPreviewRequest {
	return settlement.BuildPreviewRequest{From: "2024-03-01", To: "2024-03-15"}
}

// ========== PREVIEW ==========

func TestBuildPreview_GroupsAndPrices(t *testing.T) {
	f := newFixture()

	preview, err := f.svc.BuildPreview(context.Background(), previewRequest())
	require.NoError(t, err)
	require.Len(t, preview.Rows, 2)

	rowA := preview.Rows[0]
	assert.Equal(t, empA, rowA.EmployeeID)
	assert.Equal(t, 2, rowA.DaysWorked)
	assert.True(t, rowA.HoursWorked.Equal(decimal.RequireFromString("18.5")))
	assert.True(t, rowA.OvertimeHours.Equal(decimal.RequireFromString("2.5")))
	assert.True(t, rowA.OvertimeValue.Equal(decimal.RequireFromString("39062.5")), "overtime value = %s", rowA.OvertimeValue)
	assert.True(t, rowA.GrossSubtotal.Equal(decimal.RequireFromString("239062.5")), "gross = %s", rowA.GrossSubtotal)
	assert.True(t, rowA.MealGross.Equal(decimal.NewFromInt(50000)))
	assert.True(t, rowA.MealNet.Equal(decimal.NewFromInt(45000)), "meal net = %s", rowA.MealNet)
	assert.True(t, rowA.NetTotal.Equal(decimal.RequireFromString("194062.5")), "net = %s", rowA.NetTotal)
	assert.ElementsMatch(t, []string{"shift-1", "shift-2"}, rowA.ShiftIDs)
	assert.Equal(t, []string{"ot-1"}, rowA.OvertimeIDs)
	assert.Equal(t, []string{"disc-1"}, rowA.DiscountIDs)

	rowB := preview.Rows[1]
	assert.Equal(t, empB, rowB.EmployeeID)
	assert.Equal(t, 1, rowB.DaysWorked)
	assert.True(t, rowB.GrossSubtotal.Equal(decimal.NewFromInt(80000)))
	assert.True(t, rowB.OtherDiscounts.Equal(decimal.NewFromInt(20000)))
	assert.True(t, rowB.NetTotal.Equal(decimal.NewFromInt(60000)))

	assert.True(t, preview.GrossTotal.Equal(decimal.RequireFromString("319062.5")))
	assert.True(t, preview.DiscountTotal.Equal(decimal.NewFromInt(65000)))
	assert.True(t, preview.NetTotal.Equal(decimal.RequireFromString("254062.5")))
}

func TestBuildPreview_AppliesDraftAdjustment(t *testing.T) {
	f := newFixture()

	req := previewRequest()
	req.Adjustments = map[string]decimal.Decimal{
		empB: decimal.NewFromInt(-5000),
	}

	preview, err := f.svc.BuildPreview(context.Background(), req)
	require.NoError(t, err)

	rowB := preview.Rows[1]
	assert.True(t, rowB.ManualAdjustment.Equal(decimal.NewFromInt(-5000)))
	assert.True(t, rowB.NetTotal.Equal(decimal.NewFromInt(55000)))
}

func TestBuildPreview_DoesNotMutate(t *testing.T) {
	f := newFixture()

	_, err := f.svc.BuildPreview(context.Background(), previewRequest())
	require.NoError(t, err)

	for _, sh := range f.shiftRepo.shifts {
		assert.False(t, sh.Paid)
	}
	for _, d := range f.discountRepo.discounts {
		assert.False(t, d.Paid)
	}
}

func TestBuildPreview_EmptyScope(t *testing.T) {
	f := newFixture()

	req := settlement.BuildPreviewRequest{From: "2024-06-01", To: "2024-06-15"}
	_, err := f.svc.BuildPreview(context.Background(), req)
	assert.ErrorIs(t, err, settlement.ErrEmptyScope)
}

// ========== COMMIT ==========

func TestCommit_MarksEveryLinkedRecord(t *testing.T) {
	f := newFixture()

	preview, err := f.svc.BuildPreview(context.Background(), previewRequest())
	require.NoError(t, err)

	resp, err := f.svc.Commit(context.Background(), settlement.CommitRequest{Preview: preview})
	require.NoError(t, err)
	assert.Equal(t, string(settlement.StatusPending), resp.Status)
	assert.Len(t, resp.Details, 2)

	for _, sh := range f.shiftRepo.shifts {
		assert.True(t, sh.Paid, "shift %s should be paid", sh.ID)
		require.NotNil(t, sh.SettlementID)
		assert.Equal(t, resp.ID, *sh.SettlementID)
	}
	assert.True(t, f.workHoursRepo.overtime["ot-1"].Paid)
	assert.True(t, f.discountRepo.discounts["disc-1"].Paid)
	assert.True(t, f.discountRepo.discounts["disc-2"].Paid)
}

func TestCommit_ScopedToPreviewedEmployees(t *testing.T) {
	f := newFixture()

	req := previewRequest()
	req.EmployeeIDs = []string{empA}
	preview, err := f.svc.BuildPreview(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, preview.Rows, 1)

	_, err = f.svc.Commit(context.Background(), settlement.CommitRequest{Preview: preview})
	require.NoError(t, err)

	assert.True(t, f.shiftRepo.shifts["shift-1"].Paid)
	assert.True(t, f.shiftRepo.shifts["shift-2"].Paid)
	assert.False(t, f.shiftRepo.shifts["shift-3"].Paid, "unselected employee's shift must stay unpaid")
	assert.False(t, f.discountRepo.discounts["disc-2"].Paid)
}

func TestCommit_ConcurrentConsumptionFails(t *testing.T) {
	f := newFixture()

	preview, err := f.svc.BuildPreview(context.Background(), previewRequest())
	require.NoError(t, err)

	// Another writer consumes one shift between preview and commit.
	otherID := "settlement-other"
	f.shiftRepo.shifts["shift-2"].Paid = true
	f.shiftRepo.shifts["shift-2"].SettlementID = &otherID

	_, err = f.svc.Commit(context.Background(), settlement.CommitRequest{Preview: preview})
	assert.ErrorIs(t, err, settlement.ErrAlreadyConsumed)
}

func TestCommit_SnapshotsSubsidyPercent(t *testing.T) {
	f := newFixture()
	committed := commitFixture(t, f)

	// Raising the live percent must not rewrite committed history.
	f.svc.configSvc = &fakeConfigService{subsidyPercent: decimal.NewFromInt(50)}

	resp, err := f.svc.GetSettlement(context.Background(), committed.ID)
	require.NoError(t, err)
	for _, d := range resp.Details {
		assert.True(t, d.SubsidyPercent.Equal(decimal.NewFromInt(10)), "subsidy = %s", d.SubsidyPercent)
	}
}

func TestCommit_EmptyPreview(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Commit(context.Background(), settlement.CommitRequest{})
	assert.ErrorIs(t, err, settlement.ErrEmptyScope)
}

// ========== STATUS ==========

func commitFixture(t *testing.T, f *fixture) settlement.SettlementResponse {
	t.Helper()
	preview, err := f.svc.BuildPreview(context.Background(), previewRequest())
	require.NoError(t, err)
	resp, err := f.svc.Commit(context.Background(), settlement.CommitRequest{Preview: preview})
	require.NoError(t, err)
	return resp
}

func TestMarkPaid(t *testing.T) {
	f := newFixture()
	committed := commitFixture(t, f)

	resp, err := f.svc.MarkPaid(context.Background(), committed.ID)
	require.NoError(t, err)
	assert.Equal(t, string(settlement.StatusPaid), resp.Status)

	// Records stay consumed; paying is a status transition only.
	assert.True(t, f.shiftRepo.shifts["shift-1"].Paid)

	_, err = f.svc.MarkPaid(context.Background(), committed.ID)
	assert.ErrorIs(t, err, settlement.ErrInvalidStatus)
}

func TestMarkPaid_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.svc.MarkPaid(context.Background(), "missing")
	assert.ErrorIs(t, err, settlement.ErrSettlementNotFound)
}

func TestVoid_ReleasesLinkedRecords(t *testing.T) {
	f := newFixture()
	committed := commitFixture(t, f)

	resp, err := f.svc.Void(context.Background(), committed.ID)
	require.NoError(t, err)
	assert.Equal(t, string(settlement.StatusVoided), resp.Status)

	for _, sh := range f.shiftRepo.shifts {
		assert.False(t, sh.Paid, "shift %s should be released", sh.ID)
		assert.Nil(t, sh.SettlementID)
	}
	assert.False(t, f.workHoursRepo.overtime["ot-1"].Paid)
	assert.False(t, f.discountRepo.discounts["disc-1"].Paid)
}

func TestVoid_ReleasedRecordsAreSettleableAgain(t *testing.T) {
	f := newFixture()
	committed := commitFixture(t, f)

	_, err := f.svc.Void(context.Background(), committed.ID)
	require.NoError(t, err)

	preview, err := f.svc.BuildPreview(context.Background(), previewRequest())
	require.NoError(t, err)
	assert.Len(t, preview.Rows, 2)
}

func TestVoid_AlreadyVoided(t *testing.T) {
	f := newFixture()
	committed := commitFixture(t, f)

	_, err := f.svc.Void(context.Background(), committed.ID)
	require.NoError(t, err)

	_, err = f.svc.Void(context.Background(), committed.ID)
	assert.ErrorIs(t, err, settlement.ErrSettlementAlreadyVoided)
}

func TestVoid_PaidSettlement(t *testing.T) {
	f := newFixture()
	committed := commitFixture(t, f)

	_, err := f.svc.MarkPaid(context.Background(), committed.ID)
	require.NoError(t, err)

	resp, err := f.svc.Void(context.Background(), committed.ID)
	require.NoError(t, err)
	assert.Equal(t, string(settlement.StatusVoided), resp.Status)
}

func TestDelete_ReleasesAndRemoves(t *testing.T) {
	f := newFixture()
	committed := commitFixture(t, f)

	err := f.svc.Delete(context.Background(), committed.ID)
	require.NoError(t, err)

	for _, sh := range f.shiftRepo.shifts {
		assert.False(t, sh.Paid)
	}
	_, err = f.svc.GetSettlement(context.Background(), committed.ID)
	assert.ErrorIs(t, err, settlement.ErrSettlementNotFound)
	assert.Empty(t, f.settlementRepo.details)
}

// ========== EDIT ==========

func TestEditDetail_RecomputesNetAndParentTotals(t *testing.T) {
	f := newFixture()
	committed := commitFixture(t, f)

	var detailB settlement.DetailResponse
	for _, d := range committed.Details {
		if d.EmployeeID == empB {
			detailB = d
		}
	}
	require.NotEmpty(t, detailB.ID)

	resp, err := f.svc.EditDetail(context.Background(), settlement.EditDetailRequest{
		DetailID:        detailB.ID,
		NewAdjustment:   decimal.NewFromInt(-5000),
		NewObservations: "uniform deposit",
	})
	require.NoError(t, err)

	// 80,000 gross - 20,000 loan - 5,000 adjustment
	assert.True(t, resp.NetTotal.Equal(decimal.NewFromInt(55000)), "net = %s", resp.NetTotal)
	assert.Equal(t, "uniform deposit", resp.Observations)

	parent, err := f.svc.GetSettlement(context.Background(), committed.ID)
	require.NoError(t, err)
	assert.True(t, parent.NetTotal.Equal(decimal.RequireFromString("249062.5")), "parent net = %s", parent.NetTotal)
}

func TestEditDetail_VoidedParent(t *testing.T) {
	f := newFixture()
	committed := commitFixture(t, f)

	_, err := f.svc.Void(context.Background(), committed.ID)
	require.NoError(t, err)

	_, err = f.svc.EditDetail(context.Background(), settlement.EditDetailRequest{
		DetailID:      committed.Details[0].ID,
		NewAdjustment: decimal.NewFromInt(1000),
	})
	assert.ErrorIs(t, err, settlement.ErrInvalidStatus)
}
