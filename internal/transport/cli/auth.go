package cli

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/careportal-backend/internal/service/session"
)

func newLoginCommand(st *state) *cobra.Command {
	var creds session.Credentials

	cmd := &cobra.Command{
		Use:   "login <admin|caregiver|patient>",
		Short: "Log in with username and password or an access code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := parseRole(args[0])
			if err != nil {
				return err
			}
			res, err := st.portal.Session.Authenticate(cmd.Context(), role, creds)
			if err != nil {
				return err
			}
			if st.json {
				return st.printJSON(res.Session)
			}
			st.printf("logged in as %s (%s)\n", res.User.FullName, res.User.Role)
			return nil
		},
	}
	cmd.Flags().StringVarP(&creds.Username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&creds.Password, "password", "p", "", "password")
	cmd.Flags().StringVarP(&creds.AccessCode, "code", "c", "", "access code")
	return cmd
}

func newLogoutCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the session on this device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := st.portal.Session.Logout(cmd.Context()); err != nil {
				return err
			}
			st.printf("logged out\n")
			return nil
		},
	}
}

func newWhoamiCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			sess, err := st.portal.Session.Current(ctx)
			if err != nil {
				return err
			}
			if st.json {
				return st.printJSON(sess)
			}
			if sess.IsZero() {
				st.printf("not logged in\n")
				return nil
			}

			name := "(unknown)"
			if sess.UserID != "" {
				u, err := st.portal.Directory.FindByID(ctx, sess.UserID)
				if err != nil {
					return err
				}
				if u != nil {
					name = u.FullName + " (" + u.Role.String() + ")"
				}
			}
			st.printf("user: %s\n", name)
			if sess.PatientID != "" {
				st.printf("patient: %s\n", sess.PatientID)
			}
			if sess.AdminAuthenticated {
				st.printf("admin: yes\n")
			}
			return nil
		},
	}
}
