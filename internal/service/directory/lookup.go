package directory

import (
	"context"
	"fmt"

	"github.com/heartmarshall/careportal-backend/internal/domain"
)

// List returns every user in stored order.
func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("directory.List: %w", err)
	}
	return users, nil
}

// FindByID returns the user with id, or nil when there is none.
func (s *Service) FindByID(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.FindByField(ctx, domain.UserFieldID, id)
	if err != nil {
		return nil, fmt.Errorf("directory.FindByID: %w", err)
	}
	return u, nil
}

// FindByField returns the first user whose field equals value exactly, or
// nil. Patient-only fields never match other roles.
func (s *Service) FindByField(ctx context.Context, field domain.UserField, value string) (*domain.User, error) {
	if !field.IsValid() {
		return nil, domain.NewValidationError("field", fmt.Sprintf("unknown user field %q", field))
	}

	users, err := s.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("directory.FindByField: %w", err)
	}

	for i := range users {
		if v, ok := users[i].FieldValue(field); ok && v == value {
			u := users[i]
			return &u, nil
		}
	}
	return nil, nil
}

// FindByRole returns all users of role in stored order.
func (s *Service) FindByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	users, err := s.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("directory.FindByRole: %w", err)
	}

	out := make([]domain.User, 0, len(users))
	for _, u := range users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}
