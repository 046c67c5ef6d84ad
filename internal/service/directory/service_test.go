package directory

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/careportal-backend/internal/adapter/memory"
	"github.com/heartmarshall/careportal-backend/internal/config"
	"github.com/heartmarshall/careportal-backend/internal/domain"
	"github.com/heartmarshall/careportal-backend/internal/record"
)

var testCodes = config.DirectoryConfig{
	AdminAccessCode:     "0000",
	CaregiverAccessCode: "9999",
	PatientAccessCode:   "0000",
}

func newTestService(t *testing.T) (*Service, *record.Store) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := record.NewStore(logger, memory.New())
	return NewService(logger, store, testCodes), store
}

func mustUpsert(t *testing.T, svc *Service, in UpsertInput) *domain.User {
	t.Helper()
	u, err := svc.UpsertByUsername(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, u)
	return u
}

// ---------------------------------------------------------------------------
// UpsertByUsername
// ---------------------------------------------------------------------------

func TestUpsertByUsername_CreatesWithDefaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role     domain.Role
		wantCode string
	}{
		{domain.RoleAdmin, "0000"},
		{domain.RoleCaregiver, "9999"},
		{domain.RolePatient, "0000"},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			t.Parallel()
			svc, _ := newTestService(t)

			u := mustUpsert(t, svc, UpsertInput{
				Role:     tt.role,
				FullName: "  Sam Doe ",
				Username: " sdoe ",
				Password: "pw",
			})

			assert.NotEmpty(t, u.ID)
			assert.Equal(t, "Sam Doe", u.FullName)
			assert.Equal(t, "sdoe", u.Username)
			assert.Equal(t, tt.wantCode, u.AccessCode)

			_, hasChart := u.Patient()
			assert.Equal(t, tt.role == domain.RolePatient, hasChart)
		})
	}
}

func TestUpsertByUsername_ExplicitAccessCode(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	u := mustUpsert(t, svc, UpsertInput{Role: domain.RoleCaregiver, FullName: "C", Username: "c", AccessCode: "1111"})
	assert.Equal(t, "1111", u.AccessCode)
}

func TestUpsertByUsername_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input UpsertInput
		field string
	}{
		{"empty username", UpsertInput{Role: domain.RoleAdmin, FullName: "A"}, "username"},
		{"blank username", UpsertInput{Role: domain.RoleAdmin, FullName: "A", Username: "   "}, "username"},
		{"empty full name", UpsertInput{Role: domain.RoleAdmin, Username: "a"}, "fullName"},
		{"bad role", UpsertInput{Role: "doctor", FullName: "A", Username: "a"}, "role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, _ := newTestService(t)

			u, err := svc.UpsertByUsername(context.Background(), tt.input)
			require.ErrorIs(t, err, domain.ErrValidation)
			assert.Nil(t, u)

			var ve *domain.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Errors[0].Field)

			users, err := svc.List(context.Background())
			require.NoError(t, err)
			assert.Empty(t, users, "nothing may be written on invalid input")
		})
	}
}

func TestUpsertByUsername_UpdateKeepsUnsetSecrets(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	orig := mustUpsert(t, svc, UpsertInput{Role: domain.RoleCaregiver, FullName: "Care", Username: "cg", Password: "old", AccessCode: "4444"})
	upd := mustUpsert(t, svc, UpsertInput{Role: domain.RoleCaregiver, FullName: "Care Team", Username: "cg"})

	assert.Equal(t, orig.ID, upd.ID)
	assert.Equal(t, "Care Team", upd.FullName)
	assert.Equal(t, "old", upd.Password)
	assert.Equal(t, "4444", upd.AccessCode)

	upd = mustUpsert(t, svc, UpsertInput{Role: domain.RoleCaregiver, FullName: "Care Team", Username: "cg", Password: "new", AccessCode: "5555"})
	assert.Equal(t, "new", upd.Password)
	assert.Equal(t, "5555", upd.AccessCode)

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUpsertByUsername_RoleOnlyUpsertPreservesChart(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	p := mustUpsert(t, svc, UpsertInput{
		Role: domain.RolePatient, FullName: "Pat", Username: "pat",
		Chart: &domain.PatientChart{MRN: "123", Allergies: "Latex", Meds: []domain.Medication{{Name: "Aspirin"}}},
	})

	mustUpsert(t, svc, UpsertInput{Role: domain.RolePatient, FullName: "Pat", Username: "pat"})

	got, err := svc.FindByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	chart, ok := got.Patient()
	require.True(t, ok)
	assert.Equal(t, "123", chart.MRN)
	assert.Equal(t, "Latex", chart.Allergies)
	assert.Equal(t, []domain.Medication{{Name: "Aspirin"}}, chart.Meds)
}

func TestUpsertByUsername_SwitchToPatientInitializesChart(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	mustUpsert(t, svc, UpsertInput{Role: domain.RoleCaregiver, FullName: "X", Username: "x"})
	u := mustUpsert(t, svc, UpsertInput{Role: domain.RolePatient, FullName: "X", Username: "x"})

	chart, ok := u.Patient()
	require.True(t, ok)
	assert.Equal(t, domain.PatientChart{Meds: []domain.Medication{}}, *chart)

	u = mustUpsert(t, svc, UpsertInput{Role: domain.RoleAdmin, FullName: "X", Username: "x"})
	_, ok = u.Patient()
	assert.False(t, ok)
}

func TestUpsertByUsername_ChartIgnoredForNonPatient(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	u := mustUpsert(t, svc, UpsertInput{
		Role: domain.RoleAdmin, FullName: "A", Username: "a",
		Chart: &domain.PatientChart{MRN: "1"},
	})
	_, ok := u.Patient()
	assert.False(t, ok)
}

// ---------------------------------------------------------------------------
// Lookups
// ---------------------------------------------------------------------------

func TestFindByField(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	admin := mustUpsert(t, svc, UpsertInput{Role: domain.RoleAdmin, FullName: "Admin", Username: "admin"})
	pat := mustUpsert(t, svc, UpsertInput{
		Role: domain.RolePatient, FullName: "Pat", Username: "pat",
		Chart: &domain.PatientChart{MRN: "00298371"},
	})

	tests := []struct {
		name   string
		field  domain.UserField
		value  string
		wantID string
	}{
		{"username", domain.UserFieldUsername, "pat", pat.ID},
		{"username is case sensitive", domain.UserFieldUsername, "PAT", ""},
		{"first access code match", domain.UserFieldAccessCode, "0000", admin.ID},
		{"mrn", domain.UserFieldMRN, "00298371", pat.ID},
		{"role", domain.UserFieldRole, "patient", pat.ID},
		{"miss", domain.UserFieldUsername, "nobody", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := svc.FindByField(ctx, tt.field, tt.value)
			require.NoError(t, err)
			if tt.wantID == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestFindByField_MRNNeverMatchesNonPatients(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	mustUpsert(t, svc, UpsertInput{Role: domain.RoleCaregiver, FullName: "C", Username: "c"})

	got, err := svc.FindByField(context.Background(), domain.UserFieldMRN, "")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFindByField_UnknownField(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	_, err := svc.FindByField(context.Background(), "password", "x")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestFindByID_Miss(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	got, err := svc.FindByID(context.Background(), "u_missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFindByRole_KeepsOrder(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	mustUpsert(t, svc, UpsertInput{Role: domain.RolePatient, FullName: "P1", Username: "p1"})
	mustUpsert(t, svc, UpsertInput{Role: domain.RoleAdmin, FullName: "A", Username: "a"})
	mustUpsert(t, svc, UpsertInput{Role: domain.RolePatient, FullName: "P2", Username: "p2"})

	got, err := svc.FindByRole(context.Background(), domain.RolePatient)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "p1", got[0].Username)
	assert.Equal(t, "p2", got[1].Username)
}

func TestList_CorruptStoreYieldsEmpty(t *testing.T) {
	t.Parallel()
	svc, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, record.KeyUsers, map[string]string{"not": "a list"}))

	users, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

// ---------------------------------------------------------------------------
// UpdateChart
// ---------------------------------------------------------------------------

func TestUpdateChart(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	p := mustUpsert(t, svc, UpsertInput{Role: domain.RolePatient, FullName: "Pat", Username: "pat", AccessCode: "2468"})

	got, err := svc.UpdateChart(ctx, p.ID, ChartInput{
		FullName:  " Patrick Tobe ",
		MRN:       "00298371",
		DOB:       "2005-07-22",
		Blood:     "O+",
		Allergies: "Penicillin",
		Meds:      []domain.Medication{{Name: "Loratadine", Strength: "10 mg"}},
	})
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "Patrick Tobe", got.FullName)
	assert.Equal(t, "2468", got.AccessCode, "empty access code keeps the stored one")

	stored, err := svc.FindByID(ctx, p.ID)
	require.NoError(t, err)
	chart, ok := stored.Patient()
	require.True(t, ok)
	assert.Equal(t, "00298371", chart.MRN)
	assert.Equal(t, "O+", chart.Blood)
	assert.Len(t, chart.Meds, 1)
}

func TestUpdateChart_NotAPatient(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	c := mustUpsert(t, svc, UpsertInput{Role: domain.RoleCaregiver, FullName: "C", Username: "c"})

	got, err := svc.UpdateChart(ctx, c.ID, ChartInput{MRN: "1"})
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = svc.UpdateChart(ctx, "missing", ChartInput{})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateChart_RejectsNamelessMedication(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	p := mustUpsert(t, svc, UpsertInput{Role: domain.RolePatient, FullName: "P", Username: "p"})

	_, err := svc.UpdateChart(context.Background(), p.ID, ChartInput{Meds: []domain.Medication{{Strength: "5 mg"}}})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestChart_RejectsNegativeRefills(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	p := mustUpsert(t, svc, UpsertInput{Role: domain.RolePatient, FullName: "P", Username: "p"})
	meds := []domain.Medication{{Name: "Aspirin", Refills: -1}}

	_, err := svc.UpdateChart(ctx, p.ID, ChartInput{Meds: meds})
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.UpsertByUsername(ctx, UpsertInput{
		Role: domain.RolePatient, FullName: "P", Username: "p",
		Chart: &domain.PatientChart{Meds: meds},
	})
	require.ErrorIs(t, err, domain.ErrValidation)

	got, err := svc.FindByID(ctx, p.ID)
	require.NoError(t, err)
	chart, _ := got.Patient()
	assert.Empty(t, chart.Meds)
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

func TestDelete(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	u := mustUpsert(t, svc, UpsertInput{Role: domain.RoleCaregiver, FullName: "C", Username: "c"})

	ok, err := svc.Delete(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Delete(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDelete_LeavesLogsAndTickets(t *testing.T) {
	t.Parallel()
	svc, store := newTestService(t)
	ctx := context.Background()

	p := mustUpsert(t, svc, UpsertInput{Role: domain.RolePatient, FullName: "P", Username: "p"})
	log := []domain.Entry{{AuthorRole: domain.AuthorPatient, Text: "hello"}}
	tickets := []domain.Ticket{{ID: "t1", PatientID: p.ID, Text: "hello"}}
	require.NoError(t, store.Set(ctx, record.MessagesKey(p.ID), log))
	require.NoError(t, store.Set(ctx, record.KeyTickets, tickets))

	ok, err := svc.Delete(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, ok)

	gotLog, err := record.Get(ctx, store, record.MessagesKey(p.ID), []domain.Entry(nil))
	require.NoError(t, err)
	assert.Len(t, gotLog, 1)

	gotTickets, err := record.Get(ctx, store, record.KeyTickets, []domain.Ticket(nil))
	require.NoError(t, err)
	assert.Len(t, gotTickets, 1)
}
