// Package journal implements the peer-scoped append-only logs: caregiver and
// patient messages, and patient-reported issues. Both share one
// implementation and differ only in their key namespace and listeners.
package journal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/careportal-backend/internal/domain"
	"github.com/heartmarshall/careportal-backend/internal/record"
)

// Namespace names a family of logs and the record key prefix they live under.
type Namespace struct {
	Name      string
	KeyPrefix string
}

// Key returns the record key of the log for peerID.
func (n Namespace) Key(peerID string) string {
	return n.KeyPrefix + peerID
}

var (
	// Messages is the caregiver/patient conversation, one log per patient.
	Messages = Namespace{Name: "messages", KeyPrefix: record.MessagesPrefix}
	// Issues is the patient-reported issue log.
	Issues = Namespace{Name: "issues", KeyPrefix: record.IssuesPrefix}
)

// Listener receives an event after every successful append.
type Listener interface {
	OnEntryAppended(ctx context.Context, ev domain.EntryAppended) error
}

// Service appends to and reads the logs of one namespace.
type Service struct {
	log       *slog.Logger
	store     *record.Store
	clock     clockwork.Clock
	ns        Namespace
	listeners []Listener
}

// NewService creates a journal over ns. Listeners are called synchronously,
// in order, after each append.
func NewService(logger *slog.Logger, store *record.Store, clock clockwork.Clock, ns Namespace, listeners ...Listener) *Service {
	return &Service{
		log:       logger.With("service", "journal", slog.String("namespace", ns.Name)),
		store:     store,
		clock:     clock,
		ns:        ns,
		listeners: listeners,
	}
}

// Namespace returns the namespace this journal writes to.
func (s *Service) Namespace() Namespace {
	return s.ns
}

// Read returns the log for peerID in insertion order.
func (s *Service) Read(ctx context.Context, peerID string) ([]domain.Entry, error) {
	entries, err := record.Get(ctx, s.store, s.ns.Key(peerID), []domain.Entry{})
	if err != nil {
		return nil, fmt.Errorf("journal.Read: %w", err)
	}
	return entries, nil
}
