package payconfig

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/surtimax/payroll-backend/internal/domain/payconfig"
)

type fakeConfigRepo struct {
	settings map[string]*payconfig.Setting
}

func (f *fakeConfigRepo) GetByName(_ context.Context, name string) (payconfig.Setting, error) {
	st, ok := f.settings[name]
	if !ok {
		return payconfig.Setting{}, payconfig.ErrSettingNotFound
	}
	return *st, nil
}

func (f *fakeConfigRepo) Upsert(_ context.Context, s payconfig.Setting) (payconfig.Setting, error) {
	if existing, ok := f.settings[s.Name]; ok {
		existing.Value = s.Value
		existing.Active = s.Active
		return *existing, nil
	}
	f.settings[s.Name] = &s
	return s, nil
}

func (f *fakeConfigRepo) List(_ context.Context) ([]payconfig.Setting, error) {
	var out []payconfig.Setting
	for _, st := range f.settings {
		out = append(out, *st)
	}
	return out, nil
}

func newService() (*ConfigServiceImpl, *fakeConfigRepo) {
	repo := &fakeConfigRepo{settings: map[string]*payconfig.Setting{}}
	return &ConfigServiceImpl{configRepo: repo}, repo
}

func TestGet_StoredValueWins(t *testing.T) {
	svc, repo := newService()
	repo.settings[payconfig.KeyMealSubsidyPercent] = &payconfig.Setting{
		ID:     "cfg-1",
		Name:   payconfig.KeyMealSubsidyPercent,
		Value:  decimal.NewFromInt(25),
		Active: true,
	}

	got, err := svc.Get(context.Background(), payconfig.KeyMealSubsidyPercent)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(25)))
}

func TestGet_FallsBackToDefaultWhenUnset(t *testing.T) {
	svc, _ := newService()

	got, err := svc.Get(context.Background(), payconfig.KeyMealSubsidyPercent)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(10)), "got %s", got)
}

func TestGet_FallsBackToDefaultWhenInactive(t *testing.T) {
	svc, repo := newService()
	repo.settings[payconfig.KeyMealSubsidyPercent] = &payconfig.Setting{
		ID:    "cfg-1",
		Name:  payconfig.KeyMealSubsidyPercent,
		Value: decimal.NewFromInt(25),
	}

	got, err := svc.Get(context.Background(), payconfig.KeyMealSubsidyPercent)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(10)), "got %s", got)
}

func TestGet_UnknownSettingWithoutDefault(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Get(context.Background(), "no_such_setting")
	assert.ErrorIs(t, err, payconfig.ErrSettingNotFound)
}

func TestSet_UpsertsAndActivates(t *testing.T) {
	svc, repo := newService()

	resp, err := svc.Set(context.Background(), payconfig.SetConfigRequest{
		Name:  payconfig.KeyMealSubsidyPercent,
		Value: decimal.NewFromInt(15),
	})
	require.NoError(t, err)
	assert.True(t, resp.Value.Equal(decimal.NewFromInt(15)))
	assert.True(t, resp.Active)

	// A second set updates in place.
	_, err = svc.Set(context.Background(), payconfig.SetConfigRequest{
		Name:  payconfig.KeyMealSubsidyPercent,
		Value: decimal.NewFromInt(20),
	})
	require.NoError(t, err)
	require.Len(t, repo.settings, 1)

	got, err := svc.Get(context.Background(), payconfig.KeyMealSubsidyPercent)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(20)))
}
