// Package escalation turns caregiver messages into admin tickets and lets
// the admin work through them.
package escalation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/careportal-backend/internal/domain"
	"github.com/heartmarshall/careportal-backend/internal/record"
	"github.com/heartmarshall/careportal-backend/internal/service/journal"
)

type userDirectory interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// Service creates tickets from message events and manages the ticket list.
type Service struct {
	log   *slog.Logger
	store *record.Store
	users userDirectory
	clock clockwork.Clock
}

var _ journal.Listener = (*Service)(nil)

// NewService creates a new escalation service.
func NewService(logger *slog.Logger, store *record.Store, users userDirectory, clock clockwork.Clock) *Service {
	return &Service{
		log:   logger.With("service", "escalation"),
		store: store,
		users: users,
		clock: clock,
	}
}

// OnEntryAppended writes a ticket for every caregiver message. Other
// namespaces and patient entries are ignored. Unresolvable names are left
// empty; the ticket is written regardless.
func (s *Service) OnEntryAppended(ctx context.Context, ev domain.EntryAppended) error {
	if ev.Namespace != journal.Messages.Name || ev.Entry.AuthorRole != domain.AuthorCaregiver {
		return nil
	}

	t := domain.Ticket{
		ID:              uuid.NewString(),
		FromCaregiverID: ev.AuthorID,
		PatientID:       ev.PeerID,
		Text:            ev.Entry.Text,
		CreatedAt:       s.clock.Now().UTC(),
	}

	var err error
	if t.FromCaregiverName, err = s.nameOf(ctx, ev.AuthorID); err != nil {
		return fmt.Errorf("escalation.OnEntryAppended: %w", err)
	}
	if t.PatientName, err = s.nameOf(ctx, ev.PeerID); err != nil {
		return fmt.Errorf("escalation.OnEntryAppended: %w", err)
	}
	if t.FromCaregiverName == "" || t.PatientName == "" {
		s.log.WarnContext(ctx, "ticket participant not found",
			slog.String("caregiver_id", ev.AuthorID),
			slog.String("patient_id", ev.PeerID),
		)
	}

	tickets, err := s.load(ctx)
	if err != nil {
		return fmt.Errorf("escalation.OnEntryAppended: %w", err)
	}
	tickets = append(tickets, t)
	if err := s.save(ctx, tickets); err != nil {
		return fmt.Errorf("escalation.OnEntryAppended: %w", err)
	}

	s.log.InfoContext(ctx, "ticket created",
		slog.String("ticket_id", t.ID),
		slog.String("caregiver_id", t.FromCaregiverID),
		slog.String("patient_id", t.PatientID),
	)
	return nil
}

func (s *Service) nameOf(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", nil
	}
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", nil
	}
	return u.FullName, nil
}

func (s *Service) load(ctx context.Context) ([]domain.Ticket, error) {
	tickets, err := record.Get(ctx, s.store, record.KeyTickets, []domain.Ticket{})
	if err != nil {
		return nil, fmt.Errorf("load tickets: %w", err)
	}
	return tickets, nil
}

func (s *Service) save(ctx context.Context, tickets []domain.Ticket) error {
	if err := s.store.Set(ctx, record.KeyTickets, tickets); err != nil {
		return fmt.Errorf("save tickets: %w", err)
	}
	return nil
}
