package dto

import (
	"time"

	"festa/internal/core/id"
	"festa/internal/domain/auth"
)

// --- Request DTOs ---

// RegisterRequest for user registration (admin only).
type RegisterRequest struct {
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,min=8"`
	DisplayName string  `json:"displayName"`
	Role        string  `json:"role" binding:"required,oneof=admin secretary employee"`
	EmployeeID  *string `json:"employeeId"`
}

// ToAuthRequest converts to domain request.
func (r *RegisterRequest) ToAuthRequest() (auth.RegisterRequest, error) {
	req := auth.RegisterRequest{
		Email:       r.Email,
		Password:    r.Password,
		DisplayName: r.DisplayName,
		Role:        auth.Role(r.Role),
	}
	if r.EmployeeID != nil && *r.EmployeeID != "" {
		empID, err := id.Parse(*r.EmployeeID)
		if err != nil {
			return req, err
		}
		req.EmployeeID = &empID
	}
	return req, nil
}

// LoginRequest for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ToCredentials converts to domain credentials.
func (r *LoginRequest) ToCredentials() auth.Credentials {
	return auth.Credentials{
		Email:    r.Email,
		Password: r.Password,
	}
}

// RefreshTokenRequest for token refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// ChangePasswordRequest for password changes.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// SetActiveRequest enables or disables an account.
type SetActiveRequest struct {
	Active bool `json:"active"`
}

// --- Response DTOs ---

// TokenResponse represents token pair response.
type TokenResponse struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
	TokenType    string    `json:"tokenType"`
}

// FromTokenPair creates response from domain token pair.
func FromTokenPair(tp *auth.TokenPair) *TokenResponse {
	return &TokenResponse{
		AccessToken:  tp.AccessToken,
		RefreshToken: tp.RefreshToken,
		ExpiresAt:    tp.ExpiresAt,
		TokenType:    tp.TokenType,
	}
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"displayName,omitempty"`
	Role        string     `json:"role"`
	EmployeeID  *string    `json:"employeeId,omitempty"`
	IsActive    bool       `json:"isActive"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// FromUser creates response from domain user.
func FromUser(u *auth.User) *UserResponse {
	resp := &UserResponse{
		ID:          u.ID.String(),
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        string(u.Role),
		IsActive:    u.IsActive,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
	if u.EmployeeID != nil {
		s := u.EmployeeID.String()
		resp.EmployeeID = &s
	}
	return resp
}

// LoginResponse includes tokens and user info.
type LoginResponse struct {
	Tokens *TokenResponse `json:"tokens"`
	User   *UserResponse  `json:"user"`
}
