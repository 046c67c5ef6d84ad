package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/careportal-backend/internal/domain"
	"github.com/heartmarshall/careportal-backend/internal/record"
)

// CurrentUser resolves the logged-in user for a page of the given role.
//
// Caregiver and patient pages need the current user to exist with that role.
// The admin page only needs the admin flag; the returned user is nil when no
// admin record can be resolved. Anything else is domain.ErrUnauthorized.
func (s *Service) CurrentUser(ctx context.Context, role domain.Role) (*domain.User, domain.SessionContext, error) {
	sess, err := s.Current(ctx)
	if err != nil {
		return nil, sess, err
	}

	if role == domain.RoleAdmin {
		if !sess.AdminAuthenticated {
			return nil, sess, domain.ErrUnauthorized
		}
		if sess.UserID == "" {
			return nil, sess, nil
		}
		u, err := s.users.FindByID(ctx, sess.UserID)
		if err != nil {
			return nil, sess, fmt.Errorf("session.CurrentUser: %w", err)
		}
		if u == nil || u.Role != domain.RoleAdmin {
			return nil, sess, nil
		}
		return u, sess, nil
	}

	if sess.UserID == "" {
		return nil, sess, domain.ErrUnauthorized
	}
	u, err := s.users.FindByID(ctx, sess.UserID)
	if err != nil {
		return nil, sess, fmt.Errorf("session.CurrentUser: %w", err)
	}
	if u == nil || u.Role != role {
		return nil, sess, domain.ErrUnauthorized
	}
	return u, sess, nil
}

// SelectPatient makes patientID the caregiver's active patient.
func (s *Service) SelectPatient(ctx context.Context, patientID string) (domain.SessionContext, error) {
	u, err := s.users.FindByID(ctx, patientID)
	if err != nil {
		return domain.SessionContext{}, fmt.Errorf("session.SelectPatient: %w", err)
	}
	if u == nil || !u.IsPatient() {
		return domain.SessionContext{}, fmt.Errorf("patient %s: %w", patientID, domain.ErrNotFound)
	}

	if err := s.store.Set(ctx, record.KeyCurrentPatientID, u.ID); err != nil {
		return domain.SessionContext{}, fmt.Errorf("session.SelectPatient: %w", err)
	}

	s.log.InfoContext(ctx, "patient selected", slog.String("patient_id", u.ID))
	return s.Current(ctx)
}
