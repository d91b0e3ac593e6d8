// Package settings provides the system-wide key value store used for
// company data and operational defaults.
package settings

import (
	"context"
	"strconv"
	"time"

	"festa/internal/core/apperror"
	"festa/pkg/logger"
)

// Well-known keys. The store accepts arbitrary keys but these are the ones
// the rest of the system reads.
const (
	KeyCompanyName          = "company_name"
	KeyCompanyTaxID         = "company_tax_id"
	KeyContractFooter       = "contract_footer"
	KeyDefaultEventDuration = "default_event_duration_minutes"
)

// Setting is one stored key value pair.
type Setting struct {
	Key       string    `db:"key" json:"key"`
	Value     string    `db:"value" json:"value"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
	UpdatedBy string    `db:"updated_by" json:"updatedBy,omitempty"`
}

// Repository defines settings storage operations.
type Repository interface {
	Get(ctx context.Context, key string) (*Setting, error)
	GetAll(ctx context.Context) ([]Setting, error)
	Put(ctx context.Context, setting *Setting) error
	Delete(ctx context.Context, key string) error
}

// Service wraps the repository with typed accessors and defaults.
type Service struct {
	repo Repository
}

// NewService creates a settings service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns one setting.
func (s *Service) Get(ctx context.Context, key string) (*Setting, error) {
	if key == "" {
		return nil, apperror.NewValidation("key is required").WithDetail("field", "key")
	}
	return s.repo.Get(ctx, key)
}

// GetAll returns every stored setting.
func (s *Service) GetAll(ctx context.Context) ([]Setting, error) {
	return s.repo.GetAll(ctx)
}

// Put stores a setting, stamping the editing user.
func (s *Service) Put(ctx context.Context, key, value, updatedBy string) (*Setting, error) {
	if key == "" {
		return nil, apperror.NewValidation("key is required").WithDetail("field", "key")
	}
	setting := &Setting{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
		UpdatedBy: updatedBy,
	}
	if err := s.repo.Put(ctx, setting); err != nil {
		return nil, err
	}
	logger.Info(ctx, "setting updated", "key", key, "updated_by", updatedBy)
	return setting, nil
}

// Delete removes a setting.
func (s *Service) Delete(ctx context.Context, key string) error {
	return s.repo.Delete(ctx, key)
}

// StringOr returns the value of key or fallback when absent.
func (s *Service) StringOr(ctx context.Context, key, fallback string) string {
	setting, err := s.repo.Get(ctx, key)
	if err != nil || setting == nil || setting.Value == "" {
		return fallback
	}
	return setting.Value
}

// IntOr returns the integer value of key or fallback when absent or
// unparsable.
func (s *Service) IntOr(ctx context.Context, key string, fallback int) int {
	setting, err := s.repo.Get(ctx, key)
	if err != nil || setting == nil {
		return fallback
	}
	n, err := strconv.Atoi(setting.Value)
	if err != nil {
		return fallback
	}
	return n
}
