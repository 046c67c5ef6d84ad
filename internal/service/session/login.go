package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/careportal-backend/internal/domain"
	"github.com/heartmarshall/careportal-backend/internal/record"
)

// Authenticate logs a user of role in. Username and password are tried
// against every user of the role first, then the access code. Any failure
// is reported as domain.ErrAuthenticationFailed.
func (s *Service) Authenticate(ctx context.Context, role domain.Role, creds Credentials) (*Result, error) {
	if !role.IsValid() {
		return nil, domain.NewValidationError("role", "must be admin, caregiver or patient")
	}
	creds = creds.normalize()

	candidates, err := s.users.FindByRole(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("session.Authenticate: %w", err)
	}

	user, method := match(candidates, creds)
	if user == nil {
		s.log.WarnContext(ctx, "login failed", slog.String("role", role.String()))
		return nil, domain.ErrAuthenticationFailed
	}

	sess, err := s.begin(ctx, *user)
	if err != nil {
		return nil, fmt.Errorf("session.Authenticate: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID),
		slog.String("role", role.String()),
		slog.String("method", method),
	)

	return &Result{User: *user, Session: sess}, nil
}

func match(candidates []domain.User, creds Credentials) (*domain.User, string) {
	for i := range candidates {
		if creds.matchesPassword(candidates[i]) {
			return &candidates[i], "password"
		}
	}
	for i := range candidates {
		if creds.matchesCode(candidates[i]) {
			return &candidates[i], "access_code"
		}
	}
	return nil, ""
}

// begin persists the session scalars for u and returns the resulting state.
// A caregiver keeps whichever patient was selected before.
func (s *Service) begin(ctx context.Context, u domain.User) (domain.SessionContext, error) {
	if err := s.store.Set(ctx, record.KeyCurrentUserID, u.ID); err != nil {
		return domain.SessionContext{}, err
	}

	switch u.Role {
	case domain.RolePatient:
		if err := s.store.Set(ctx, record.KeyCurrentPatientID, u.ID); err != nil {
			return domain.SessionContext{}, err
		}
	case domain.RoleAdmin:
		if err := s.store.Set(ctx, record.KeyAdminLogged, record.AdminLoggedValue); err != nil {
			return domain.SessionContext{}, err
		}
	}

	return s.Current(ctx)
}
