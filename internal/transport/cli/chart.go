package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/careportal-backend/internal/domain"
	"github.com/heartmarshall/careportal-backend/internal/service/directory"
)

// chartFlags are the patient chart fields shared by users upsert and chart update.
type chartFlags struct {
	mrn       string
	dob       string
	blood     string
	allergies string
	meds      []string
}

var chartFlagNames = []string{"mrn", "dob", "blood", "allergies", "med"}

func (f *chartFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.mrn, "mrn", "", "medical record number")
	cmd.Flags().StringVar(&f.dob, "dob", "", "date of birth")
	cmd.Flags().StringVar(&f.blood, "blood", "", "blood type")
	cmd.Flags().StringVar(&f.allergies, "allergies", "", "allergies")
	cmd.Flags().StringArrayVar(&f.meds, "med", nil, `medication line, e.g. "Loratadine 10 mg — Take 1 tablet daily"; repeat per medication, replaces the list`)
}

func (f *chartFlags) changed(cmd *cobra.Command) bool {
	for _, name := range chartFlagNames {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// apply overlays the flags that were set on base.
func (f *chartFlags) apply(cmd *cobra.Command, base domain.PatientChart) (domain.PatientChart, error) {
	flags := cmd.Flags()
	if flags.Changed("mrn") {
		base.MRN = f.mrn
	}
	if flags.Changed("dob") {
		base.DOB = f.dob
	}
	if flags.Changed("blood") {
		base.Blood = f.blood
	}
	if flags.Changed("allergies") {
		base.Allergies = f.allergies
	}
	if flags.Changed("med") {
		meds := make([]domain.Medication, 0, len(f.meds))
		for _, line := range f.meds {
			if line == "" {
				continue
			}
			m, err := domain.ParseMedicationLine(line)
			if err != nil {
				return base, err
			}
			meds = append(meds, m)
		}
		base.Meds = meds
	}
	return base, nil
}

func newPatientsCommand(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patients",
		Short: "Browse patients (caregiver)",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List patients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if _, _, err := st.require(ctx, domain.RoleCaregiver); err != nil {
				return err
			}
			patients, err := st.portal.Directory.FindByRole(ctx, domain.RolePatient)
			if err != nil {
				return err
			}
			return st.printUsers(patients)
		},
	}

	sel := &cobra.Command{
		Use:   "select <id|mrn>",
		Short: "Make a patient the active one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, _, err := st.require(ctx, domain.RoleCaregiver); err != nil {
				return err
			}
			id, err := st.resolvePatient(cmd, args[0])
			if err != nil {
				return err
			}
			sess, err := st.portal.Session.SelectPatient(ctx, id)
			if err != nil {
				return err
			}
			st.printf("active patient: %s\n", sess.PatientID)
			return nil
		},
	}

	cmd.AddCommand(list, sel)
	return cmd
}

// resolvePatient accepts either a user id or an MRN.
func (st *state) resolvePatient(cmd *cobra.Command, ref string) (string, error) {
	ctx := cmd.Context()
	u, err := st.portal.Directory.FindByID(ctx, ref)
	if err != nil {
		return "", err
	}
	if u == nil {
		if u, err = st.portal.Directory.FindByField(ctx, domain.UserFieldMRN, ref); err != nil {
			return "", err
		}
	}
	if u == nil || !u.IsPatient() {
		return "", fmt.Errorf("patient %s: %w", ref, domain.ErrNotFound)
	}
	return u.ID, nil
}

func newChartCommand(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "View or edit the active patient's chart",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the chart of the active patient",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := st.actor(cmd.Context())
			if err != nil {
				return err
			}
			p, err := st.portal.Directory.FindByID(cmd.Context(), a.peerID)
			if err != nil {
				return err
			}
			if p == nil || !p.IsPatient() {
				return fmt.Errorf("patient %s: %w", a.peerID, domain.ErrNotFound)
			}
			return st.printChart(p)
		},
	}

	var (
		in    directory.ChartInput
		flags chartFlags
	)
	update := &cobra.Command{
		Use:   "update",
		Short: "Edit the chart of the active patient (caregiver)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			_, sess, err := st.require(ctx, domain.RoleCaregiver)
			if err != nil {
				return err
			}
			if sess.PatientID == "" {
				return errNoPatient
			}
			p, err := st.portal.Directory.FindByID(ctx, sess.PatientID)
			if err != nil {
				return err
			}
			if p == nil || !p.IsPatient() {
				return fmt.Errorf("patient %s: %w", sess.PatientID, domain.ErrNotFound)
			}

			current, _ := p.Patient()
			merged, err := flags.apply(cmd, *current)
			if err != nil {
				return err
			}
			in.MRN, in.DOB, in.Blood, in.Allergies, in.Meds = merged.MRN, merged.DOB, merged.Blood, merged.Allergies, merged.Meds

			u, err := st.portal.Directory.UpdateChart(ctx, p.ID, in)
			if err != nil {
				return err
			}
			if u == nil {
				return fmt.Errorf("patient %s: %w", p.ID, domain.ErrNotFound)
			}
			return st.printChart(u)
		},
	}
	update.Flags().StringVar(&in.FullName, "full-name", "", "display name (kept when empty)")
	update.Flags().StringVar(&in.AccessCode, "code", "", "access code (kept when empty)")
	flags.register(update)

	cmd.AddCommand(show, update)
	return cmd
}
