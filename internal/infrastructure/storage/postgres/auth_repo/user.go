// Package auth_repo provides PostgreSQL implementations for auth repositories.
package auth_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"festa/internal/core/apperror"
	"festa/internal/core/id"
	"festa/internal/domain/auth"
	"festa/internal/infrastructure/storage/postgres"
)

// UserRepo implements auth.UserRepository on top of sys_users.
type UserRepo struct {
	txm *postgres.TxManager
}

// NewUserRepo creates a new user repository.
func NewUserRepo(txm *postgres.TxManager) *UserRepo {
	return &UserRepo{txm: txm}
}

const userColumns = `id, email, password_hash, display_name, role, employee_id,
	   is_active, last_login_at, failed_login_attempts, locked_until,
	   created_at, updated_at, deleted_at, version`

func scanUser(row pgx.Row) (*auth.User, error) {
	var user auth.User
	err := row.Scan(
		&user.ID, &user.Email, &user.PasswordHash,
		&user.DisplayName, &user.Role, &user.EmployeeID,
		&user.IsActive, &user.LastLoginAt,
		&user.FailedLoginAttempts, &user.LockedUntil,
		&user.CreatedAt, &user.UpdatedAt, &user.DeletedAt, &user.Version,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user account.
func (r *UserRepo) Create(ctx context.Context, user *auth.User) error {
	q := r.txm.GetQuerier(ctx)

	query := `
		INSERT INTO sys_users (
			id, email, password_hash, display_name, role, employee_id,
			is_active, created_at, updated_at, version
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := q.Exec(ctx, query,
		user.ID, user.Email, user.PasswordHash,
		user.DisplayName, user.Role, user.EmployeeID,
		user.IsActive, user.CreatedAt, user.UpdatedAt, user.Version,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID.
func (r *UserRepo) GetByID(ctx context.Context, userID id.ID) (*auth.User, error) {
	q := r.txm.GetQuerier(ctx)

	query := `SELECT ` + userColumns + ` FROM sys_users WHERE id = $1 AND deleted_at IS NULL`

	user, err := scanUser(q.QueryRow(ctx, query, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperror.NewNotFound("user", userID.String())
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	q := r.txm.GetQuerier(ctx)

	query := `SELECT ` + userColumns + ` FROM sys_users WHERE lower(email) = lower($1) AND deleted_at IS NULL`

	user, err := scanUser(q.QueryRow(ctx, query, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperror.NewNotFound("user", email)
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}

	return user, nil
}

// Update persists user changes with optimistic locking.
func (r *UserRepo) Update(ctx context.Context, user *auth.User) error {
	q := r.txm.GetQuerier(ctx)

	query := `
		UPDATE sys_users SET
			display_name = $2,
			role = $3,
			employee_id = $4,
			password_hash = $5,
			is_active = $6,
			last_login_at = $7,
			failed_login_attempts = $8,
			locked_until = $9,
			updated_at = now(),
			version = version + 1
		WHERE id = $1 AND deleted_at IS NULL AND version = $10
	`

	result, err := q.Exec(ctx, query,
		user.ID, user.DisplayName, user.Role, user.EmployeeID,
		user.PasswordHash, user.IsActive, user.LastLoginAt,
		user.FailedLoginAttempts, user.LockedUntil,
		user.Version,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewConcurrentModification("user", user.ID)
	}

	user.Version++
	return nil
}

// Delete soft-deletes a user account.
func (r *UserRepo) Delete(ctx context.Context, userID id.ID) error {
	q := r.txm.GetQuerier(ctx)

	query := `UPDATE sys_users SET deleted_at = now(), is_active = FALSE WHERE id = $1 AND deleted_at IS NULL`
	result, err := q.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("user", userID.String())
	}

	return nil
}

// List retrieves users with filtering.
func (r *UserRepo) List(ctx context.Context, filter auth.UserFilter) ([]auth.User, int, error) {
	q := r.txm.GetQuerier(ctx)

	query := `SELECT ` + userColumns + ` FROM sys_users WHERE deleted_at IS NULL`
	countQuery := `SELECT COUNT(*) FROM sys_users WHERE deleted_at IS NULL`

	var args []interface{}
	argIdx := 1

	if filter.Search != "" {
		cond := fmt.Sprintf(" AND (email ILIKE $%d OR display_name ILIKE $%d)", argIdx, argIdx)
		query += cond
		countQuery += cond
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}

	if filter.Role != "" {
		cond := fmt.Sprintf(" AND role = $%d", argIdx)
		query += cond
		countQuery += cond
		args = append(args, filter.Role)
		argIdx++
	}

	if filter.IsActive != nil {
		cond := fmt.Sprintf(" AND is_active = $%d", argIdx)
		query += cond
		countQuery += cond
		args = append(args, *filter.IsActive)
		argIdx++
	}

	var total int
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	query += " ORDER BY email ASC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []auth.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *user)
	}

	return users, total, nil
}

// Exists reports whether an account with the given email already exists.
func (r *UserRepo) Exists(ctx context.Context, email string) (bool, error) {
	q := r.txm.GetQuerier(ctx)

	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM sys_users WHERE lower(email) = lower($1) AND deleted_at IS NULL)`
	if err := q.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}

	return exists, nil
}

// Ensure interface compliance
var _ auth.UserRepository = (*UserRepo)(nil)
