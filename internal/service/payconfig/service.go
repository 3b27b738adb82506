package payconfig

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/surtimax/payroll-backend/internal/domain/payconfig"
)

type ConfigServiceImpl struct {
	configRepo payconfig.ConfigRepository
}

func NewConfigService(configRepo payconfig.ConfigRepository) payconfig.ConfigService {
	return &ConfigServiceImpl{configRepo: configRepo}
}

func (s *ConfigServiceImpl) Get(ctx context.Context, name string) (decimal.Decimal, error) {
	setting, err := s.configRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, payconfig.ErrSettingNotFound) {
			if def, ok := payconfig.Defaults[name]; ok {
				return def, nil
			}
		}
		return decimal.Zero, err
	}
	if !setting.Active {
		if def, ok := payconfig.Defaults[name]; ok {
			return def, nil
		}
		return decimal.Zero, payconfig.ErrSettingNotFound
	}
	return setting.Value, nil
}

func (s *ConfigServiceImpl) Set(ctx context.Context, req payconfig.SetConfigRequest) (payconfig.SettingResponse, error) {
	if err := req.Validate(); err != nil {
		return payconfig.SettingResponse{}, err
	}

	updated, err := s.configRepo.Upsert(ctx, payconfig.Setting{
		ID:     uuid.NewString(),
		Name:   req.Name,
		Value:  req.Value,
		Active: true,
	})
	if err != nil {
		return payconfig.SettingResponse{}, err
	}

	return payconfig.ToResponse(updated), nil
}

func (s *ConfigServiceImpl) List(ctx context.Context) ([]payconfig.SettingResponse, error) {
	settings, err := s.configRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]payconfig.SettingResponse, 0, len(settings))
	for _, st := range settings {
		responses = append(responses, payconfig.ToResponse(st))
	}
	return responses, nil
}
