package directory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/careportal-backend/internal/domain"
)

// UpsertByUsername creates the user named by input.Username or updates it.
//
// On update, role and full name are always replaced; password and access
// code only when the new value is non-empty. A patient keeps its chart
// unless input.Chart supplies a new one. Nothing is written when the input
// is invalid.
func (s *Service) UpsertByUsername(ctx context.Context, input UpsertInput) (*domain.User, error) {
	input = input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	users, err := s.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("directory.UpsertByUsername: %w", err)
	}

	idx := -1
	for i := range users {
		if users[i].Username == input.Username {
			idx = i
			break
		}
	}

	var u domain.User
	created := idx < 0
	if created {
		u = domain.NewUser(uuid.NewString(), input.Role)
		u.Username = input.Username
		u.FullName = input.FullName
		u.Password = input.Password
		u.AccessCode = input.AccessCode
		if u.AccessCode == "" {
			u.AccessCode = s.DefaultAccessCode(input.Role)
		}
	} else {
		u = users[idx].Clone()
		u.SetRole(input.Role)
		u.FullName = input.FullName
		if input.Password != "" {
			u.Password = input.Password
		}
		if input.AccessCode != "" {
			u.AccessCode = input.AccessCode
		}
	}

	if input.Chart != nil {
		chart := *input.Chart
		chart.Meds = append([]domain.Medication(nil), input.Chart.Meds...)
		u.SetChart(chart)
	}

	if created {
		users = append(users, u)
	} else {
		users[idx] = u
	}

	if err := s.save(ctx, users); err != nil {
		return nil, fmt.Errorf("directory.UpsertByUsername: %w", err)
	}

	msg := "user updated"
	if created {
		msg = "user created"
	}
	s.log.InfoContext(ctx, msg,
		slog.String("user_id", u.ID),
		slog.String("username", u.Username),
		slog.String("role", u.Role.String()),
	)

	return &u, nil
}
