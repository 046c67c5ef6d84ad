package journal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/careportal-backend/internal/domain"
)

// AppendInput is one submitted entry.
type AppendInput struct {
	PeerID     string
	AuthorRole domain.AuthorRole
	// AuthorID is the logged-in user who wrote the entry.
	AuthorID string
	Text     string
}

// Validate checks peer and author. Blank text is not an error.
func (i AppendInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.PeerID) == "" {
		errs = append(errs, domain.FieldError{Field: "peerId", Message: "required"})
	}
	if !i.AuthorRole.IsValid() {
		errs = append(errs, domain.FieldError{Field: "from", Message: "must be caregiver or patient"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AppendResult is the log after an append attempt.
type AppendResult struct {
	Log      []domain.Entry
	Entry    domain.Entry
	Appended bool
}

// Append adds a trimmed entry to the peer's log and notifies listeners.
// Blank text is dropped silently: the log is returned unchanged with
// Appended false. A listener error is returned after the entry is saved.
func (s *Service) Append(ctx context.Context, input AppendInput) (AppendResult, error) {
	if err := input.Validate(); err != nil {
		return AppendResult{}, err
	}
	peerID := strings.TrimSpace(input.PeerID)

	entries, err := s.Read(ctx, peerID)
	if err != nil {
		return AppendResult{}, fmt.Errorf("journal.Append: %w", err)
	}

	text := strings.TrimSpace(input.Text)
	if text == "" {
		return AppendResult{Log: entries}, nil
	}

	entry := domain.Entry{
		AuthorRole: input.AuthorRole,
		Text:       text,
		CreatedAt:  s.clock.Now().UTC(),
	}
	entries = append(entries, entry)

	if err := s.store.Set(ctx, s.ns.Key(peerID), entries); err != nil {
		return AppendResult{}, fmt.Errorf("journal.Append: %w", err)
	}

	s.log.InfoContext(ctx, "entry appended",
		slog.String("peer_id", peerID),
		slog.String("from", input.AuthorRole.String()),
		slog.Int("length", len(entries)),
	)

	result := AppendResult{Log: entries, Entry: entry, Appended: true}

	ev := domain.EntryAppended{
		Namespace: s.ns.Name,
		PeerID:    peerID,
		AuthorID:  input.AuthorID,
		Entry:     entry,
	}
	for _, l := range s.listeners {
		if err := l.OnEntryAppended(ctx, ev); err != nil {
			return result, fmt.Errorf("journal.Append notify: %w", err)
		}
	}

	return result, nil
}
