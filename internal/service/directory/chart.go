package directory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/careportal-backend/internal/domain"
)

// UpdateChart saves the caregiver form for a patient. Empty full name and
// access code keep their stored values; every chart field is replaced.
// It returns nil when patientID is not a patient.
func (s *Service) UpdateChart(ctx context.Context, patientID string, input ChartInput) (*domain.User, error) {
	input = input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	users, err := s.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("directory.UpdateChart: %w", err)
	}

	idx := -1
	for i := range users {
		if users[i].ID == patientID && users[i].IsPatient() {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, nil
	}

	u := users[idx].Clone()
	if input.FullName != "" {
		u.FullName = input.FullName
	}
	if input.AccessCode != "" {
		u.AccessCode = input.AccessCode
	}
	u.SetChart(domain.PatientChart{
		MRN:       input.MRN,
		DOB:       input.DOB,
		Blood:     input.Blood,
		Allergies: input.Allergies,
		Meds:      append([]domain.Medication(nil), input.Meds...),
	})
	users[idx] = u

	if err := s.save(ctx, users); err != nil {
		return nil, fmt.Errorf("directory.UpdateChart: %w", err)
	}

	s.log.InfoContext(ctx, "patient chart updated",
		slog.String("patient_id", u.ID),
		slog.Int("meds", len(input.Meds)),
	)

	return &u, nil
}
