package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "commands.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	base := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	for i, angle := range []int{0, 90, 180} {
		err := s.Append(ctx, Record{
			Angle: angle,
			Pwm:   50 + angle,
			At:    base.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}

	recs, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recs, 3)

	// Newest first, auto-increment ids.
	assert.Equal(t, int64(3), recs[0].ID)
	assert.Equal(t, 180, recs[0].Angle)
	assert.Equal(t, 230, recs[0].Pwm)
	assert.True(t, recs[0].At.Equal(base.Add(2*time.Second)), "timestamp round-trip")
	assert.Equal(t, int64(1), recs[2].ID)
	assert.Equal(t, 0, recs[2].Angle)
}

func TestSQLiteRecentLimit(t *testing.T) {
	ctx := context.Background()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "commands.db"))
	require.NoError(t, err)
	defer s.Close()

	for angle := 0; angle < 5; angle++ {
		require.NoError(t, s.Append(ctx, Record{Angle: angle, Pwm: angle, At: time.Now()}))
	}

	recs, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, 4, recs[0].Angle)
	assert.Equal(t, 3, recs[1].Angle)
}

func TestSQLiteReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "commands.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Append(ctx, Record{Angle: 45, Pwm: 83, At: time.Now()}))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	recs, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 45, recs[0].Angle)
}

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	for angle := 0; angle < 3; angle++ {
		require.NoError(t, m.Append(ctx, Record{Angle: angle * 10, Pwm: angle, At: time.Now()}))
	}

	recs, err := m.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, 20, recs[0].Angle)
	assert.Equal(t, 10, recs[1].Angle)

	all, err := m.Recent(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	assert.NoError(t, m.Close())
}
