package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/careportal-backend/internal/domain"
	"github.com/heartmarshall/careportal-backend/internal/service/directory"
)

func newUsersCommand(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage portal accounts (admin)",
	}
	cmd.AddCommand(newUsersListCommand(st), newUsersUpsertCommand(st), newUsersDeleteCommand(st))
	return cmd
}

func newUsersListCommand(st *state) *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if _, _, err := st.require(ctx, domain.RoleAdmin); err != nil {
				return err
			}

			var (
				users []domain.User
				err   error
			)
			if role == "" {
				users, err = st.portal.Directory.List(ctx)
			} else {
				r, perr := parseRole(role)
				if perr != nil {
					return perr
				}
				users, err = st.portal.Directory.FindByRole(ctx, r)
			}
			if err != nil {
				return err
			}
			return st.printUsers(users)
		},
	}
	cmd.Flags().StringVar(&role, "role", "", "only list accounts of this role")
	return cmd
}

func newUsersUpsertCommand(st *state) *cobra.Command {
	var (
		role  string
		in    directory.UpsertInput
		chart chartFlags
	)

	cmd := &cobra.Command{
		Use:   "upsert",
		Short: "Create or update an account, matched by username",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if _, _, err := st.require(ctx, domain.RoleAdmin); err != nil {
				return err
			}

			in.Role = domain.Role(role)
			if chart.changed(cmd) {
				existing, err := st.portal.Directory.FindByField(ctx, domain.UserFieldUsername, in.Username)
				if err != nil {
					return err
				}
				base := domain.PatientChart{}
				if existing != nil {
					if c, ok := existing.Patient(); ok {
						base = *c
					}
				}
				merged, err := chart.apply(cmd, base)
				if err != nil {
					return err
				}
				in.Chart = &merged
			}

			u, err := st.portal.Directory.UpsertByUsername(ctx, in)
			if err != nil {
				return err
			}
			if st.json {
				return st.printJSON(u)
			}
			st.printf("saved %s %s (%s)\n", u.Role, u.Username, u.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&role, "role", "", "admin, caregiver or patient")
	cmd.Flags().StringVar(&in.FullName, "full-name", "", "display name")
	cmd.Flags().StringVar(&in.Username, "username", "", "login name")
	cmd.Flags().StringVar(&in.Password, "password", "", "password (kept when empty)")
	cmd.Flags().StringVar(&in.AccessCode, "code", "", "access code (kept when empty)")
	chart.register(cmd)
	return cmd
}

func newUsersDeleteCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account; its messages and tickets are kept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, _, err := st.require(ctx, domain.RoleAdmin); err != nil {
				return err
			}
			ok, err := st.portal.Directory.Delete(ctx, args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("user %s: %w", args[0], domain.ErrNotFound)
			}
			st.printf("deleted %s\n", args[0])
			return nil
		},
	}
}
