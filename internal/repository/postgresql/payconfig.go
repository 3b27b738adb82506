package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/surtimax/payroll-backend/internal/domain/payconfig"
	"github.com/surtimax/payroll-backend/internal/pkg/database"
)

type configRepositoryImpl struct {
	db *database.DB
}

func NewConfigRepository(db *database.DB) payconfig.ConfigRepository {
	return &configRepositoryImpl{db: db}
}

// GetByName implements payconfig.ConfigRepository.
func (c *configRepositoryImpl) GetByName(ctx context.Context, name string) (payconfig.Setting, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, name, value, active, updated_at
		FROM pay_config
		WHERE name = $1
	`

	var setting payconfig.Setting
	err := q.QueryRow(ctx, query, name).Scan(
		&setting.ID, &setting.Name, &setting.Value, &setting.Active, &setting.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payconfig.Setting{}, payconfig.ErrSettingNotFound
		}
		return payconfig.Setting{}, fmt.Errorf("failed to get config setting: %w", err)
	}

	return setting, nil
}

// Upsert implements payconfig.ConfigRepository. Settings are keyed by name;
// writing an existing name replaces its value.
func (c *configRepositoryImpl) Upsert(ctx context.Context, s payconfig.Setting) (payconfig.Setting, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO pay_config (id, name, value, active, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (name) DO UPDATE
		SET value = EXCLUDED.value, active = EXCLUDED.active, updated_at = NOW()
		RETURNING id, updated_at
	`

	err := q.QueryRow(ctx, query, s.ID, s.Name, s.Value, s.Active).Scan(&s.ID, &s.UpdatedAt)
	if err != nil {
		return payconfig.Setting{}, fmt.Errorf("failed to upsert config setting: %w", err)
	}

	return s, nil
}

// List implements payconfig.ConfigRepository.
func (c *configRepositoryImpl) List(ctx context.Context) ([]payconfig.Setting, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, name, value, active, updated_at
		FROM pay_config
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list config settings: %w", err)
	}
	defer rows.Close()

	var settings []payconfig.Setting
	for rows.Next() {
		var setting payconfig.Setting
		if err := rows.Scan(
			&setting.ID, &setting.Name, &setting.Value, &setting.Active, &setting.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan config setting: %w", err)
		}
		settings = append(settings, setting)
	}

	return settings, rows.Err()
}
