package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/posixshim/pkg/backend/volume"
)

func TestStore_GetPutDelete(t *testing.T) {
	ctx := context.Background()
	s := NewWithSerial(0xCAFE)

	_, err := s.GetEntry(ctx, `c:\a`)
	assert.ErrorIs(t, err, volume.ErrNotFound)

	e := &volume.Entry{Name: "A", Kind: volume.KindFile, Size: 10}
	require.NoError(t, s.PutEntry(ctx, `c:\a`, e))

	got, err := s.GetEntry(ctx, `c:\a`)
	require.NoError(t, err)
	assert.Equal(t, *e, *got)

	// Returned entries are copies.
	got.Size = 99
	again, err := s.GetEntry(ctx, `c:\a`)
	require.NoError(t, err)
	assert.Equal(t, int64(10), again.Size)

	require.NoError(t, s.DeleteEntry(ctx, `c:\a`))
	require.NoError(t, s.DeleteEntry(ctx, `c:\a`))
	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	serial, err := s.Serial(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xCAFE), serial)
}

func TestStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().GetEntry(ctx, `c:\`)
	assert.ErrorIs(t, err, context.Canceled)
}
