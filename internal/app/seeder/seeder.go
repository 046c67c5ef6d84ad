// Package seeder bootstraps the demo accounts on a fresh store.
package seeder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/careportal-backend/internal/domain"
	"github.com/heartmarshall/careportal-backend/internal/service/directory"
)

type userDirectory interface {
	List(ctx context.Context) ([]domain.User, error)
	UpsertByUsername(ctx context.Context, input directory.UpsertInput) (*domain.User, error)
}

// demoMeds are the seeded patient's prescriptions in the single-line format.
var demoMeds = []string{
	"Loratadine 10 mg — Take 1 tablet daily · 30 tabs · 2 refills",
	"Metformin 500 mg — 1 tablet twice daily with meals · 60 tabs · 0 refills",
}

// Seeder creates the demo admin, caregiver and patient.
type Seeder struct {
	log   *slog.Logger
	users userDirectory
}

// New creates a new Seeder.
func New(logger *slog.Logger, users userDirectory) *Seeder {
	return &Seeder{
		log:   logger.With("component", "seeder"),
		users: users,
	}
}

// DemoUsers returns the accounts written on first start. Access codes are
// left empty so each user receives its role default.
func DemoUsers() ([]directory.UpsertInput, error) {
	meds := make([]domain.Medication, 0, len(demoMeds))
	for _, line := range demoMeds {
		m, err := domain.ParseMedicationLine(line)
		if err != nil {
			return nil, fmt.Errorf("parse demo medication %q: %w", line, err)
		}
		meds = append(meds, m)
	}

	return []directory.UpsertInput{
		{Role: domain.RoleAdmin, FullName: "Administrator", Username: "admin", Password: "admin123"},
		{Role: domain.RoleCaregiver, FullName: "Care Team", Username: "caregiver", Password: "password123"},
		{
			Role:     domain.RolePatient,
			FullName: "Patrick Tobe",
			Username: "ptobe",
			Password: "patient123",
			Chart: &domain.PatientChart{
				MRN:       "00298371",
				DOB:       "2005-07-22",
				Blood:     "O+",
				Allergies: "Penicillin",
				Meds:      meds,
			},
		},
	}, nil
}

// EnsureSeeded writes the demo users when the directory is empty. It
// reports whether anything was written and is safe to call on every start.
func (s *Seeder) EnsureSeeded(ctx context.Context) (bool, error) {
	existing, err := s.users.List(ctx)
	if err != nil {
		return false, fmt.Errorf("seeder.EnsureSeeded: %w", err)
	}
	if len(existing) > 0 {
		s.log.DebugContext(ctx, "directory not empty, skipping seed", slog.Int("users", len(existing)))
		return false, nil
	}

	inputs, err := DemoUsers()
	if err != nil {
		return false, fmt.Errorf("seeder.EnsureSeeded: %w", err)
	}

	for _, in := range inputs {
		u, err := s.users.UpsertByUsername(ctx, in)
		if err != nil {
			return false, fmt.Errorf("seeder.EnsureSeeded %s: %w", in.Username, err)
		}
		s.log.InfoContext(ctx, "seeded user",
			slog.String("username", u.Username),
			slog.String("role", u.Role.String()),
		)
	}

	return true, nil
}
