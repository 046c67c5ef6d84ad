package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/careportal-backend/internal/domain"
)

func TestBackend_GetMissing(t *testing.T) {
	t.Parallel()

	b := New()
	_, err := b.Get(context.Background(), "nope")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBackend_SetGetCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b := New()

	in := []byte(`"abc"`)
	require.NoError(t, b.Set(ctx, "k", in))
	in[1] = 'X'

	out, err := b.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `"abc"`, string(out))

	out[1] = 'Y'
	again, err := b.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `"abc"`, string(again))
}

func TestBackend_Remove(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b := New()
	require.NoError(t, b.Set(ctx, "a", []byte("1")))
	require.NoError(t, b.Set(ctx, "b", []byte("2")))

	require.NoError(t, b.Remove(ctx, "a", "missing"))

	_, err := b.Get(ctx, "a")
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 1, b.Keys())
}
