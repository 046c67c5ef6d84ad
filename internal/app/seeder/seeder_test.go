package seeder

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
	"github.com/heartmarshall/careportal-backend/internal/service/directory"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newDirectory(t *testing.T) *directory.Service {
	t.Helper()
	store := record.NewStore(discard(), memory.New())
	return directory.NewService(discard(), store, config.DirectoryConfig{
		AdminAccessCode:     "0000",
		CaregiverAccessCode: "9999",
		PatientAccessCode:   "0000",
	})
}

func TestEnsureSeeded_Idempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := newDirectory(t)
	s := New(discard(), dir)

	seeded, err := s.EnsureSeeded(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)

	first, err := dir.List(ctx)
	require.NoError(t, err)
	require.Len(t, first, 3)

	seeded, err = s.EnsureSeeded(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)

	second, err := dir.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEnsureSeeded_DemoAccounts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := newDirectory(t)
	_, err := New(discard(), dir).EnsureSeeded(ctx)
	require.NoError(t, err)

	tests := []struct {
		username string
		role     domain.Role
		password string
		code     string
	}{
		{"admin", domain.RoleAdmin, "admin123", "0000"},
		{"caregiver", domain.RoleCaregiver, "password123", "9999"},
		{"ptobe", domain.RolePatient, "patient123", "0000"},
	}
	for _, tt := range tests {
		u, err := dir.FindByField(ctx, domain.UserFieldUsername, tt.username)
		require.NoError(t, err)
		require.NotNil(t, u, tt.username)
		assert.Equal(t, tt.role, u.Role)
		assert.Equal(t, tt.password, u.Password)
		assert.Equal(t, tt.code, u.AccessCode)
	}

	p, err := dir.FindByField(ctx, domain.UserFieldMRN, "00298371")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Patrick Tobe", p.FullName)

	chart, ok := p.Patient()
	require.True(t, ok)
	assert.Equal(t, "O+", chart.Blood)
	assert.Equal(t, "Penicillin", chart.Allergies)
	require.Len(t, chart.Meds, 2)
	assert.Equal(t, domain.Medication{
		Name: "Metformin", Strength: "500 mg",
		Directions: "1 tablet twice daily with meals", Quantity: "60 tabs",
	}, chart.Meds[1])
}

func TestEnsureSeeded_SkipsNonEmptyDirectory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := newDirectory(t)
	_, err := dir.UpsertByUsername(ctx, directory.UpsertInput{Role: domain.RoleCaregiver, FullName: "Only", Username: "only"})
	require.NoError(t, err)

	seeded, err := New(discard(), dir).EnsureSeeded(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)

	users, err := dir.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

type failingDirectory struct{ err error }

func (f failingDirectory) List(context.Context) ([]domain.User, error) { return nil, f.err }
func (f failingDirectory) UpsertByUsername(context.Context, directory.UpsertInput) (*domain.User, error) {
	return nil, f.err
}

func TestEnsureSeeded_ListError(t *testing.T) {
	t.Parallel()

	boom := errors.New("unreadable")
	_, err := New(discard(), failingDirectory{err: boom}).EnsureSeeded(context.Background())
	require.ErrorIs(t, err, boom)
}
