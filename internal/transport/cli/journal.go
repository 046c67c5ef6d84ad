package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/careportal-backend/internal/domain"
	"github.com/heartmarshall/careportal-backend/internal/service/journal"
)

var errNoPatient = errors.New("no active patient: run patients select first")

// actorContext is who is writing and which patient log they write to.
type actorContext struct {
	user   *domain.User
	role   domain.AuthorRole
	peerID string
}

// actor resolves the logged-in caregiver or patient. A patient always writes
// to their own log; a caregiver writes to the active patient's.
func (st *state) actor(ctx context.Context) (actorContext, error) {
	sess, err := st.portal.Session.Current(ctx)
	if err != nil {
		return actorContext{}, err
	}
	if sess.UserID == "" {
		return actorContext{}, fmt.Errorf("log in as caregiver or patient first: %w", domain.ErrUnauthorized)
	}

	u, err := st.portal.Directory.FindByID(ctx, sess.UserID)
	if err != nil {
		return actorContext{}, err
	}
	switch {
	case u == nil:
		return actorContext{}, fmt.Errorf("log in as caregiver or patient first: %w", domain.ErrUnauthorized)
	case u.Role == domain.RolePatient:
		return actorContext{user: u, role: domain.AuthorPatient, peerID: u.ID}, nil
	case u.Role == domain.RoleCaregiver:
		if sess.PatientID == "" {
			return actorContext{}, errNoPatient
		}
		return actorContext{user: u, role: domain.AuthorCaregiver, peerID: sess.PatientID}, nil
	}
	return actorContext{}, fmt.Errorf("%s has no patient log: %w", u.Role, domain.ErrUnauthorized)
}

func (st *state) journal(name string) *journal.Service {
	if name == journal.Issues.Name {
		return st.portal.Issues
	}
	return st.portal.Messages
}

func newJournalCommand(st *state, name, verb, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name,
		Short: short,
	}

	write := &cobra.Command{
		Use:   verb + " <text>",
		Short: "Append to the active patient's " + name,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := st.actor(ctx)
			if err != nil {
				return err
			}

			res, err := st.journal(name).Append(ctx, journal.AppendInput{
				PeerID:     a.peerID,
				AuthorRole: a.role,
				AuthorID:   a.user.ID,
				Text:       strings.Join(args, " "),
			})
			if err != nil {
				return err
			}
			if !res.Appended {
				st.printf("nothing to send\n")
				return nil
			}
			return st.printEntries(res.Log)
		},
	}

	read := &cobra.Command{
		Use:   "read",
		Short: "Show the active patient's " + name,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, err := st.actor(ctx)
			if err != nil {
				return err
			}
			log, err := st.journal(name).Read(ctx, a.peerID)
			if err != nil {
				return err
			}
			if len(log) == 0 && !st.json {
				st.printf("no %s yet\n", name)
				return nil
			}
			return st.printEntries(log)
		},
	}

	cmd.AddCommand(write, read)
	return cmd
}
