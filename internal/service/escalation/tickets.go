package escalation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/careportal-backend/internal/domain"
)

// List returns all tickets in creation order.
func (s *Service) List(ctx context.Context) ([]domain.Ticket, error) {
	tickets, err := s.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("escalation.List: %w", err)
	}
	return tickets, nil
}

// Resolve flips the done flag of a ticket. It returns nil when there is no
// ticket with that id.
func (s *Service) Resolve(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	tickets, err := s.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("escalation.Resolve: %w", err)
	}

	for i := range tickets {
		if tickets[i].ID != ticketID {
			continue
		}
		tickets[i].Done = !tickets[i].Done
		if err := s.save(ctx, tickets); err != nil {
			return nil, fmt.Errorf("escalation.Resolve: %w", err)
		}

		s.log.InfoContext(ctx, "ticket toggled",
			slog.String("ticket_id", ticketID),
			slog.Bool("done", tickets[i].Done),
		)
		t := tickets[i]
		return &t, nil
	}
	return nil, nil
}

// Remove deletes a ticket. The message it was created from is untouched.
func (s *Service) Remove(ctx context.Context, ticketID string) (bool, error) {
	tickets, err := s.load(ctx)
	if err != nil {
		return false, fmt.Errorf("escalation.Remove: %w", err)
	}

	kept := make([]domain.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if t.ID != ticketID {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(tickets) {
		return false, nil
	}

	if err := s.save(ctx, kept); err != nil {
		return false, fmt.Errorf("escalation.Remove: %w", err)
	}

	s.log.InfoContext(ctx, "ticket removed", slog.String("ticket_id", ticketID))
	return true, nil
}
