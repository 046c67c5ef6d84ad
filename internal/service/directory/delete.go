package directory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/careportal-backend/internal/domain"
)

// Delete removes the user record with id. Message logs, issue logs and
// tickets that mention the user are left alone.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	users, err := s.load(ctx)
	if err != nil {
		return false, fmt.Errorf("directory.Delete: %w", err)
	}

	kept := make([]domain.User, 0, len(users))
	for _, u := range users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	if len(kept) == len(users) {
		return false, nil
	}

	if err := s.save(ctx, kept); err != nil {
		return false, fmt.Errorf("directory.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "user deleted", slog.String("user_id", id))
	return true, nil
}
