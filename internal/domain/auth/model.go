// Package auth provides authentication and account management.
package auth

import (
	"context"
	"regexp"
	"time"

	"festa/internal/core/apperror"
	"festa/internal/core/id"
)

// Role is the fixed access level of an account. Authorization rules are
// evaluated against this single value by the security policy.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleSecretary Role = "secretary"
	RoleEmployee  Role = "employee"
)

// Valid reports whether the role is one of the known levels.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSecretary, RoleEmployee:
		return true
	}
	return false
}

var emailRE = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// User represents a system account.
type User struct {
	ID           id.ID  `db:"id" json:"id"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password_hash" json:"-"`
	DisplayName  string `db:"display_name" json:"displayName"`
	Role         Role   `db:"role" json:"role"`

	// EmployeeID links the account to an employee catalog record. Set for
	// employee accounts so "own" checks can match time records.
	EmployeeID *id.ID `db:"employee_id" json:"employeeId,omitempty"`

	IsActive            bool       `db:"is_active" json:"isActive"`
	LastLoginAt         *time.Time `db:"last_login_at" json:"lastLoginAt,omitempty"`
	FailedLoginAttempts int        `db:"failed_login_attempts" json:"-"`
	LockedUntil         *time.Time `db:"locked_until" json:"-"`
	CreatedAt           time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt           time.Time  `db:"updated_at" json:"updatedAt"`
	DeletedAt           *time.Time `db:"deleted_at" json:"-"`
	Version             int        `db:"version" json:"version"`
}

// NewUser creates a new active account.
func NewUser(email, passwordHash string, role Role) *User {
	now := time.Now().UTC()
	return &User{
		ID:           id.New(),
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
		Version:      1,
	}
}

// Validate validates account data.
func (u *User) Validate(ctx context.Context) error {
	if u.Email == "" {
		return apperror.NewValidation("email is required").WithDetail("field", "email")
	}
	if !emailRE.MatchString(u.Email) {
		return apperror.NewValidation("invalid email").WithDetail("field", "email")
	}
	if !u.Role.Valid() {
		return apperror.NewValidation("unknown role").WithDetail("role", string(u.Role))
	}
	if u.Role == RoleEmployee && u.EmployeeID == nil {
		return apperror.NewValidation("employee accounts must reference an employee record").
			WithDetail("field", "employeeId")
	}
	return nil
}

// IsLocked returns true while the account is locked out.
func (u *User) IsLocked() bool {
	if u.LockedUntil == nil {
		return false
	}
	return time.Now().Before(*u.LockedUntil)
}

// CanLogin checks whether the account may authenticate.
func (u *User) CanLogin() error {
	if !u.IsActive {
		return apperror.NewForbidden("account is disabled")
	}
	if u.IsLocked() {
		return apperror.NewForbidden("account is temporarily locked")
	}
	return nil
}

// RecordFailedLogin increments the failure counter and locks the account
// once the limit is reached.
func (u *User) RecordFailedLogin(maxAttempts int, lockDuration time.Duration) {
	u.FailedLoginAttempts++
	if u.FailedLoginAttempts >= maxAttempts {
		lockUntil := time.Now().Add(lockDuration)
		u.LockedUntil = &lockUntil
	}
}

// RecordSuccessfulLogin resets the failure counter.
func (u *User) RecordSuccessfulLogin() {
	u.FailedLoginAttempts = 0
	u.LockedUntil = nil
	now := time.Now()
	u.LastLoginAt = &now
}

// FullName returns the display name, falling back to the email.
func (u *User) FullName() string {
	if u.DisplayName == "" {
		return u.Email
	}
	return u.DisplayName
}

// RefreshToken represents a stored refresh token. Only the SHA256 hash of
// the raw token touches the database.
type RefreshToken struct {
	ID            id.ID      `db:"id"`
	UserID        id.ID      `db:"user_id"`
	TokenHash     string     `db:"token_hash"`
	ExpiresAt     time.Time  `db:"expires_at"`
	CreatedAt     time.Time  `db:"created_at"`
	RevokedAt     *time.Time `db:"revoked_at"`
	RevokedReason string     `db:"revoked_reason"`
	UserAgent     string     `db:"user_agent"`
	IPAddress     string     `db:"ip_address"`
}

// IsValid checks if the refresh token is usable.
func (t *RefreshToken) IsValid() bool {
	if t.RevokedAt != nil {
		return false
	}
	return time.Now().Before(t.ExpiresAt)
}

// TokenPair contains access and refresh tokens.
type TokenPair struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
	TokenType    string    `json:"tokenType"`
}

// Credentials for login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest for creating an account. Only admins reach this path.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName,omitempty"`
	Role        Role   `json:"role"`
	EmployeeID  *id.ID `json:"employeeId,omitempty"`
}

// ChangePasswordRequest for password changes by the account owner.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
