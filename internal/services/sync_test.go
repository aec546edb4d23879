package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"convoy_tracker/internal/models"
	"convoy_tracker/internal/repository"
	"convoy_tracker/internal/services"
	"convoy_tracker/internal/testutil"
)

func TestParseSyncTimestamp(t *testing.T) {
	nairobi := time.FixedZone("EAT", 3*60*60)

	tests := []struct {
		given    string
		expected time.Time
	}{
		{"2025-05-01T12:00:00Z", time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)},
		{"2025-05-01T12:00:00.123Z", time.Date(2025, 5, 1, 12, 0, 0, 123000000, time.UTC)},
		{"2025-05-01T15:00:00+03:00", time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)},
		{"2025-05-01T15:00:00.654321+03:00", time.Date(2025, 5, 1, 12, 0, 0, 654321000, time.UTC)},
		{"2025-05-01T15:00:00+0300", time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)},
		{"2025-05-01 12:00:00Z", time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)},
		{"2025-05-01T15:00:00+03", time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)},
		{"2025-05-01T09:30:00.25-02", time.Date(2025, 5, 1, 11, 30, 0, 250000000, time.UTC)},
		{"20250501T120000Z", time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)},
		{"20250501T150000+0300", time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)},
		{"20250501T150000.5+03", time.Date(2025, 5, 1, 12, 0, 0, 500000000, time.UTC)},
		{"20250501T150000", time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)},
		// No offset: read in the configured zone.
		{"2025-05-01T15:00:00", time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)},
		{"2025-05-01T15:00:00.5", time.Date(2025, 5, 1, 12, 0, 0, 500000000, time.UTC)},
		{"2025-05-01 15:00:00", time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)},
		{"2025-05-01T15:00", time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)},
		{"2025-05-01", time.Date(2025, 4, 30, 21, 0, 0, 0, time.UTC)},
		{"  2025-05-01T12:00:00Z ", time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)},
	}
	for _, test := range tests {
		t.Run(test.given, func(t *testing.T) {
			got, err := services.ParseSyncTimestamp(test.given, nairobi)
			require.NoError(t, err)
			assert.True(t, test.expected.Equal(got), "expected %s, got %s", test.expected, got)
		})
	}
}

func TestParseSyncTimestampRejectsGarbage(t *testing.T) {
	for _, given := range []string{"", "yesterday", "2025-13-01T00:00:00Z", "2025-05-01T25:00:00", "1714564800", "2025-05-01T15:00:00+3", "20250501"} {
		_, err := services.ParseSyncTimestamp(given, time.UTC)
		assert.ErrorIs(t, err, services.ErrInvalidTimestamp, given)
	}
}

func TestDeltaReturnsRowsStrictlyAfterWatermark(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewNavigationRepository(db)

	base := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	serverNow := base.Add(time.Hour)
	svc := services.NewSyncService(repo, time.UTC, func() time.Time { return serverNow })

	a := testutil.Checkpoint(t, db, "A", 0, 0)
	b := testutil.Checkpoint(t, db, "B", 1, 1)
	c := testutil.Checkpoint(t, db, "C", 2, 2)
	ab := testutil.Route(t, db, "A-B", a, b)
	bc := testutil.Route(t, db, "B-C", b, c)

	testutil.Touch(t, db, &models.Checkpoint{}, a.ID, base.Add(-time.Minute))
	testutil.Touch(t, db, &models.Checkpoint{}, b.ID, base)
	testutil.Touch(t, db, &models.Checkpoint{}, c.ID, base.Add(30*time.Minute))
	testutil.Touch(t, db, &models.Route{}, ab.ID, base.Add(-time.Minute))
	testutil.Touch(t, db, &models.Route{}, bc.ID, base.Add(time.Millisecond))

	ctx := context.Background()
	result, err := svc.Delta(ctx, base.Format(time.RFC3339Nano))
	require.NoError(t, err)

	require.Len(t, result.Checkpoints, 1)
	assert.Equal(t, c.ID, result.Checkpoints[0].ID)
	require.Len(t, result.Routes, 1)
	assert.Equal(t, bc.ID, result.Routes[0].ID)
	assert.True(t, serverNow.Equal(result.ServerTime))

	// Feeding the watermark back with no writes in between yields nothing.
	again, err := svc.Delta(ctx, result.ServerTime.Format(time.RFC3339Nano))
	require.NoError(t, err)
	assert.Empty(t, again.Checkpoints)
	assert.Empty(t, again.Routes)

	// A watermark before everything returns everything.
	all, err := svc.Delta(ctx, "2000-01-01T00:00:00Z")
	require.NoError(t, err)
	assert.Len(t, all.Checkpoints, 3)
	assert.Len(t, all.Routes, 2)
}

func TestDeltaExcludesRowsStampedAtWatermark(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewNavigationRepository(db)

	watermark := time.Date(2025, 5, 1, 12, 0, 0, 123456000, time.UTC)
	svc := services.NewSyncService(repo, time.UTC, func() time.Time { return watermark })

	same := testutil.Checkpoint(t, db, "Same", 0, 0)
	later := testutil.Checkpoint(t, db, "Later", 1, 1)
	testutil.Touch(t, db, &models.Checkpoint{}, same.ID, watermark)
	testutil.Touch(t, db, &models.Checkpoint{}, later.ID, watermark.Add(time.Microsecond))

	result, err := svc.Delta(context.Background(), watermark.Format(time.RFC3339Nano))
	require.NoError(t, err)
	require.Len(t, result.Checkpoints, 1)
	assert.Equal(t, later.ID, result.Checkpoints[0].ID)
}

func TestDeltaNaiveTimestampUsesServerZone(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewNavigationRepository(db)
	eat := time.FixedZone("EAT", 3*60*60)
	svc := services.NewSyncService(repo, eat, nil)

	cp := testutil.Checkpoint(t, db, "A", 0, 0)
	// 13:00 UTC is 16:00 in the server zone.
	testutil.Touch(t, db, &models.Checkpoint{}, cp.ID, time.Date(2025, 5, 1, 13, 0, 0, 0, time.UTC))

	before, err := svc.Delta(context.Background(), "2025-05-01T15:59:59")
	require.NoError(t, err)
	assert.Len(t, before.Checkpoints, 1)

	after, err := svc.Delta(context.Background(), "2025-05-01T16:00:00")
	require.NoError(t, err)
	assert.Empty(t, after.Checkpoints)
}

func TestDeltaRejectsBadTimestamp(t *testing.T) {
	db := testutil.NewDB(t)
	svc := services.NewSyncService(repository.NewNavigationRepository(db), time.UTC, nil)

	_, err := svc.Delta(context.Background(), "last tuesday")
	assert.ErrorIs(t, err, services.ErrInvalidTimestamp)
}
