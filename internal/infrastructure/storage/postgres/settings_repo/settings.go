// Package settings_repo provides the PostgreSQL implementation of the
// settings key value store.
package settings_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"festa/internal/core/apperror"
	"festa/internal/domain/settings"
	"festa/internal/infrastructure/storage/postgres"
)

// SettingsRepo implements settings.Repository on top of sys_settings.
type SettingsRepo struct {
	txm *postgres.TxManager
}

// NewSettingsRepo creates a new settings repository.
func NewSettingsRepo(txm *postgres.TxManager) *SettingsRepo {
	return &SettingsRepo{txm: txm}
}

// Get retrieves one setting by key.
func (r *SettingsRepo) Get(ctx context.Context, key string) (*settings.Setting, error) {
	q := r.txm.GetQuerier(ctx)

	query := `SELECT key, value, updated_at, COALESCE(updated_by, '') FROM sys_settings WHERE key = $1`

	var s settings.Setting
	err := q.QueryRow(ctx, query, key).Scan(&s.Key, &s.Value, &s.UpdatedAt, &s.UpdatedBy)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperror.NewNotFound("setting", key)
	}
	if err != nil {
		return nil, fmt.Errorf("query setting: %w", err)
	}

	return &s, nil
}

// GetAll retrieves every stored setting ordered by key.
func (r *SettingsRepo) GetAll(ctx context.Context) ([]settings.Setting, error) {
	q := r.txm.GetQuerier(ctx)

	query := `SELECT key, value, updated_at, COALESCE(updated_by, '') FROM sys_settings ORDER BY key`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query settings: %w", err)
	}
	defer rows.Close()

	var out []settings.Setting
	for rows.Next() {
		var s settings.Setting
		if err := rows.Scan(&s.Key, &s.Value, &s.UpdatedAt, &s.UpdatedBy); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		out = append(out, s)
	}

	return out, nil
}

// Put upserts a setting.
func (r *SettingsRepo) Put(ctx context.Context, setting *settings.Setting) error {
	q := r.txm.GetQuerier(ctx)

	query := `
		INSERT INTO sys_settings (key, value, updated_at, updated_by)
		VALUES ($1, $2, $3, NULLIF($4, ''))
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at,
			updated_by = EXCLUDED.updated_by
	`

	_, err := q.Exec(ctx, query, setting.Key, setting.Value, setting.UpdatedAt, setting.UpdatedBy)
	if err != nil {
		return fmt.Errorf("upsert setting: %w", err)
	}

	return nil
}

// Delete removes a setting.
func (r *SettingsRepo) Delete(ctx context.Context, key string) error {
	q := r.txm.GetQuerier(ctx)

	result, err := q.Exec(ctx, `DELETE FROM sys_settings WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("delete setting: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("setting", key)
	}

	return nil
}

// Ensure interface compliance
var _ settings.Repository = (*SettingsRepo)(nil)
