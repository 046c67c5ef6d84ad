package cli

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/careportal-backend/internal/app"
)

func newSeedCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Write the demo accounts into an empty directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			seeded, err := st.portal.Seeder.EnsureSeeded(cmd.Context())
			if err != nil {
				return err
			}
			if seeded {
				st.printf("demo accounts created\n")
			} else {
				st.printf("directory already has accounts\n")
			}
			return nil
		},
	}
}

func newVersionCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoPortal: "true"},
		RunE: func(*cobra.Command, []string) error {
			st.printf("%s\n", app.BuildVersion())
			return nil
		},
	}
}
