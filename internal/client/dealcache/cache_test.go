//go:build unit

package dealcache

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"dealswap/internal/pkg/clock"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cache.db")
	s, err := Open(path, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func sampleRecord() Record {
	return Record{
		Day:       clock.Day{Year: 2026, Month: time.October, Day: 17},
		Deal:      Deal{ID: "d-1001", Description: "Two for one lattes"},
		FetchedAt: time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC),
	}
}

func TestStore_LoadMiss(t *testing.T) {
	s, _ := openTemp(t)

	rec, err := s.Load(context.Background(), "alice")

	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestStore_RoundTrip(t *testing.T) {
	s, _ := openTemp(t)
	ctx := context.Background()
	want := sampleRecord()

	require.NoError(t, s.Store(ctx, "alice", want))
	got, err := s.Load(ctx, "alice")

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, want.FetchedAt.Equal(got.FetchedAt))
	got.FetchedAt = want.FetchedAt
	if diff := cmp.Diff(want, *got); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_SurvivesReopen(t *testing.T) {
	s, path := openTemp(t)
	ctx := context.Background()
	require.NoError(t, s.Store(ctx, "alice", sampleRecord()))
	require.NoError(t, s.Close())

	reopened, err := Open(path, nil)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Load(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "d-1001", got.Deal.ID)
}

func TestStore_OverwritesSlot(t *testing.T) {
	s, _ := openTemp(t)
	ctx := context.Background()
	first := sampleRecord()
	first.Saved = true
	require.NoError(t, s.Store(ctx, "alice", first))

	second := sampleRecord()
	second.Day = first.Day.Next()
	second.Deal = Deal{ID: "d-1002", Description: "Free fries"}
	require.NoError(t, s.Store(ctx, "alice", second))

	got, err := s.Load(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "d-1002", got.Deal.ID)
	assert.Equal(t, "2026-10-18", got.Day.String())
	assert.False(t, got.Saved)
}

func TestStore_CorruptPayloadIsMiss(t *testing.T) {
	s, _ := openTemp(t)
	ctx := context.Background()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO daily_deal_slot(username, deal_id, payload, saved, updated_at) VALUES (?, ?, ?, 0, ?)`,
		"alice", "d-1001", []byte("{not json"), time.Now().UnixMilli())
	require.NoError(t, err)

	rec, err := s.Load(ctx, "alice")

	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestStore_MarkSaved(t *testing.T) {
	s, _ := openTemp(t)
	ctx := context.Background()
	require.NoError(t, s.Store(ctx, "alice", sampleRecord()))

	ok, err := s.MarkSaved(ctx, "alice", "d-9999")
	require.NoError(t, err)
	assert.False(t, ok, "different deal in slot")

	ok, err = s.MarkSaved(ctx, "alice", "d-1001")
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := s.Load(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, got.Saved)
}

func TestStore_SlotsArePerUser(t *testing.T) {
	s, _ := openTemp(t)
	ctx := context.Background()
	require.NoError(t, s.Store(ctx, "alice", sampleRecord()))

	rec, err := s.Load(ctx, "bob")

	require.NoError(t, err)
	assert.Nil(t, rec)
}
