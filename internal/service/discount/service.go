package discount

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/surtimax/payroll-backend/internal/domain/discount"
	"github.com/surtimax/payroll-backend/internal/domain/employee"
	"github.com/surtimax/payroll-backend/internal/pkg/database"
	"github.com/surtimax/payroll-backend/internal/pkg/validator"
	"github.com/surtimax/payroll-backend/internal/repository/postgresql"
)

type DiscountServiceImpl struct {
	discountRepo discount.DiscountRepository
	employeeRepo employee.EmployeeRepository
	runTx        func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewDiscountService(
	db *database.DB,
	discountRepo discount.DiscountRepository,
	employeeRepo employee.EmployeeRepository,
) discount.DiscountService {
	return &DiscountServiceImpl{
		discountRepo: discountRepo,
		employeeRepo: employeeRepo,
		runTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

func (s *DiscountServiceImpl) Add(ctx context.Context, req discount.AddDiscountRequest) (discount.DiscountResponse, error) {
	if err := req.Validate(); err != nil {
		return discount.DiscountResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return discount.DiscountResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	// The gross value is stored untouched; the meal subsidy is applied only
	// when a settlement or payment consumes the discount.
	created, err := s.discountRepo.Create(ctx, discount.Discount{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		Type:       discount.Type(req.Type),
		Detail:     req.Detail,
		Value:      req.Value,
		Date:       date,
	})
	if err != nil {
		return discount.DiscountResponse{}, err
	}

	return discount.ToResponse(created), nil
}

func (s *DiscountServiceImpl) Delete(ctx context.Context, id string) error {
	current, err := s.discountRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.Paid {
		return discount.ErrDiscountAlreadyPaid
	}

	return s.discountRepo.Delete(ctx, id)
}

// DeferToAccount is the one place a discount becomes paid without a payment
// link: the money moves to an on-account row collected later by a daily
// payment.
func (s *DiscountServiceImpl) DeferToAccount(ctx context.Context, req discount.DeferToAccountRequest) (discount.ConsumptionResponse, error) {
	if err := req.Validate(); err != nil {
		return discount.ConsumptionResponse{}, err
	}

	d, err := s.discountRepo.GetByID(ctx, req.DiscountID)
	if err != nil {
		return discount.ConsumptionResponse{}, err
	}
	if d.Paid {
		return discount.ConsumptionResponse{}, discount.ErrDiscountAlreadyPaid
	}

	description := req.Description
	if validator.IsEmpty(description) {
		description = d.Detail
	}

	var created discount.AccountConsumption
	err = s.runTx(ctx, func(txCtx context.Context) error {
		if err := s.discountRepo.MarkDeferred(txCtx, d.ID); err != nil {
			return err
		}
		var txErr error
		created, txErr = s.discountRepo.CreateConsumption(txCtx, discount.AccountConsumption{
			ID:          uuid.NewString(),
			EmployeeID:  d.EmployeeID,
			DiscountID:  &d.ID,
			Value:       d.Value,
			Description: description,
		})
		return txErr
	})
	if err != nil {
		return discount.ConsumptionResponse{}, err
	}

	return discount.ToConsumptionResponse(created), nil
}

func (s *DiscountServiceImpl) ListUnpaid(ctx context.Context, filter discount.DiscountFilter) ([]discount.DiscountResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	from, to := filter.Range()
	discounts, err := s.discountRepo.ListUnpaid(ctx, from, to, filter.EmployeeIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]discount.DiscountResponse, 0, len(discounts))
	for _, d := range discounts {
		responses = append(responses, discount.ToResponse(d))
	}
	return responses, nil
}

func (s *DiscountServiceImpl) AccountBalance(ctx context.Context, employeeID string) (discount.AccountBalanceResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return discount.AccountBalanceResponse{}, err
	}

	consumptions, err := s.discountRepo.ListUnpaidConsumptions(ctx, employeeID)
	if err != nil {
		return discount.AccountBalanceResponse{}, err
	}

	total := decimal.Zero
	items := make([]discount.ConsumptionResponse, 0, len(consumptions))
	for _, c := range consumptions {
		total = total.Add(c.Value)
		items = append(items, discount.ToConsumptionResponse(c))
	}

	return discount.AccountBalanceResponse{
		EmployeeID:   employeeID,
		Total:        total,
		Consumptions: items,
	}, nil
}
