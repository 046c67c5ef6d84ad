// Package session resolves who is using the device. The login state is a
// set of persisted scalars with no expiry; only Logout clears it.
package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/careportal-backend/internal/domain"
	"github.com/heartmarshall/careportal-backend/internal/record"
)

type userDirectory interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
}

// Service implements login, logout and session lookups.
type Service struct {
	log   *slog.Logger
	store *record.Store
	users userDirectory
}

// NewService creates a new session service.
func NewService(logger *slog.Logger, store *record.Store, users userDirectory) *Service {
	return &Service{
		log:   logger.With("service", "session"),
		store: store,
		users: users,
	}
}

// Current returns the persisted session state.
func (s *Service) Current(ctx context.Context) (domain.SessionContext, error) {
	userID, err := record.GetString(ctx, s.store, record.KeyCurrentUserID, "")
	if err != nil {
		return domain.SessionContext{}, fmt.Errorf("session.Current: %w", err)
	}
	patientID, err := record.GetString(ctx, s.store, record.KeyCurrentPatientID, "")
	if err != nil {
		return domain.SessionContext{}, fmt.Errorf("session.Current: %w", err)
	}
	adminFlag, err := record.GetString(ctx, s.store, record.KeyAdminLogged, "")
	if err != nil {
		return domain.SessionContext{}, fmt.Errorf("session.Current: %w", err)
	}

	return domain.SessionContext{
		UserID:             userID,
		PatientID:          patientID,
		AdminAuthenticated: adminFlag == record.AdminLoggedValue,
	}, nil
}

// Logout clears the whole session in one store operation.
func (s *Service) Logout(ctx context.Context) error {
	err := s.store.Atomic(ctx, func(ctx context.Context) error {
		return s.store.Remove(ctx,
			record.KeyCurrentUserID,
			record.KeyCurrentPatientID,
			record.KeyAdminLogged,
		)
	})
	if err != nil {
		return fmt.Errorf("session.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "session cleared")
	return nil
}
