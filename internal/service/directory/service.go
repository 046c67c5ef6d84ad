// Package directory manages the portal's user records: admins, caregivers
// and patients all live in a single persisted list.
package directory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/careportal-backend/internal/config"
	"github.com/heartmarshall/careportal-backend/internal/domain"
	"github.com/heartmarshall/careportal-backend/internal/record"
)

// Service implements user directory operations over the record store.
type Service struct {
	log   *slog.Logger
	store *record.Store
	codes config.DirectoryConfig
}

// NewService creates a new directory service.
func NewService(logger *slog.Logger, store *record.Store, codes config.DirectoryConfig) *Service {
	return &Service{
		log:   logger.With("service", "directory"),
		store: store,
		codes: codes,
	}
}

// DefaultAccessCode returns the code given to new users of role that were
// created without one.
func (s *Service) DefaultAccessCode(role domain.Role) string {
	switch role {
	case domain.RoleAdmin:
		return s.codes.AdminAccessCode
	case domain.RoleCaregiver:
		return s.codes.CaregiverAccessCode
	default:
		return s.codes.PatientAccessCode
	}
}

func (s *Service) load(ctx context.Context) ([]domain.User, error) {
	users, err := record.Get(ctx, s.store, record.KeyUsers, []domain.User{})
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	return users, nil
}

func (s *Service) save(ctx context.Context, users []domain.User) error {
	if err := s.store.Set(ctx, record.KeyUsers, users); err != nil {
		return fmt.Errorf("save users: %w", err)
	}
	return nil
}
