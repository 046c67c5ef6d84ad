package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/careportal-backend/internal/domain"
)

func newTicketsCommand(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tickets",
		Short: "Work through escalated caregiver messages (admin)",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List tickets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if _, _, err := st.require(ctx, domain.RoleAdmin); err != nil {
				return err
			}
			tickets, err := st.portal.Escalation.List(ctx)
			if err != nil {
				return err
			}
			return st.printTickets(tickets)
		},
	}

	resolve := &cobra.Command{
		Use:   "resolve <id>",
		Short: "Toggle a ticket between open and done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, _, err := st.require(ctx, domain.RoleAdmin); err != nil {
				return err
			}
			t, err := st.portal.Escalation.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			if t == nil {
				return fmt.Errorf("ticket %s: %w", args[0], domain.ErrNotFound)
			}
			return st.printTickets([]domain.Ticket{*t})
		},
	}

	remove := &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a ticket; the message stays",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, _, err := st.require(ctx, domain.RoleAdmin); err != nil {
				return err
			}
			ok, err := st.portal.Escalation.Remove(ctx, args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("ticket %s: %w", args[0], domain.ErrNotFound)
			}
			st.printf("removed %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(list, resolve, remove)
	return cmd
}
