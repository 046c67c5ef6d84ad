// Package cli is the operator command line over the portal core. Session
// state lives in the record store, so consecutive invocations behave like
// consecutive page loads on the same device.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/careportal-backend/internal/app"
	"github.com/heartmarshall/careportal-backend/internal/domain"
)

// Opener builds the portal for one invocation.
type Opener func(ctx context.Context) (*app.Portal, error)

const annotationNoPortal = "no-portal"

type state struct {
	open   Opener
	portal *app.Portal
	out    io.Writer
	json   bool
}

// Execute runs the command line with args and releases the portal afterwards.
func Execute(ctx context.Context, open Opener, out io.Writer, args []string) error {
	st := &state{open: open, out: out}
	root := newRootCommand(st)
	root.SetArgs(args)
	root.SetOut(out)

	err := root.ExecuteContext(ctx)
	if st.portal != nil {
		if cerr := st.portal.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

func newRootCommand(st *state) *cobra.Command {
	root := &cobra.Command{
		Use:           "portal",
		Short:         "Care portal records, sessions and messaging",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[annotationNoPortal] == "true" || cmd.Name() == "help" {
				return nil
			}
			p, err := st.open(cmd.Context())
			if err != nil {
				return err
			}
			st.portal = p
			return nil
		},
	}
	root.PersistentFlags().BoolVar(&st.json, "json", false, "print results as JSON")

	root.AddCommand(
		newLoginCommand(st),
		newLogoutCommand(st),
		newWhoamiCommand(st),
		newUsersCommand(st),
		newPatientsCommand(st),
		newChartCommand(st),
		newJournalCommand(st, "messages", "send", "Caregiver and patient messages"),
		newJournalCommand(st, "issues", "report", "Patient-reported issues"),
		newTicketsCommand(st),
		newSeedCommand(st),
		newVersionCommand(st),
	)
	return root
}

// require resolves the logged-in user for a command restricted to role.
func (st *state) require(ctx context.Context, role domain.Role) (*domain.User, domain.SessionContext, error) {
	u, sess, err := st.portal.Session.CurrentUser(ctx, role)
	if errors.Is(err, domain.ErrUnauthorized) {
		return nil, sess, fmt.Errorf("log in as %s first: %w", role, err)
	}
	return u, sess, err
}

func parseRole(s string) (domain.Role, error) {
	r := domain.Role(s)
	if !r.IsValid() {
		return "", domain.NewValidationError("role", fmt.Sprintf("unknown role %q", s))
	}
	return r, nil
}
