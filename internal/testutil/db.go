// Package testutil provides an in-memory database for package tests.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"convoy_tracker/internal/config"
	"convoy_tracker/internal/models"
)

// NewDB opens a private in-memory SQLite database with the schema migrated
// and foreign keys enforced, as they are on Postgres.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), config.GormConfig())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, config.Migrate(db))
	return db
}

// Checkpoint stores a checkpoint and returns it.
func Checkpoint(t *testing.T, db *gorm.DB, name string, lat, lng float64) models.Checkpoint {
	t.Helper()
	cp := models.Checkpoint{Name: name, Latitude: lat, Longitude: lng}
	require.NoError(t, db.Create(&cp).Error)
	return cp
}

// Touch sets updated_at on a row directly, bypassing GORM's auto timestamps.
func Touch(t *testing.T, db *gorm.DB, model interface{}, id uuid.UUID, at time.Time) {
	t.Helper()
	require.NoError(t, db.Model(model).Where("id = ?", id).UpdateColumn("updated_at", at.UTC()).Error)
}

// Route stores a route through the given checkpoints, one segment per hop,
// with segments inserted in reverse order so callers see sorting at work.
func Route(t *testing.T, db *gorm.DB, name string, stops ...models.Checkpoint) models.Route {
	t.Helper()
	require.GreaterOrEqual(t, len(stops), 2)

	route := models.Route{
		Name:                  name,
		StartCheckpointID:     stops[0].ID,
		EndCheckpointID:       stops[len(stops)-1].ID,
		EstimatedDurationMins: 60,
	}
	for i := len(stops) - 2; i >= 0; i-- {
		route.Segments = append(route.Segments, models.RouteSegment{
			StartCheckpointID: stops[i].ID,
			EndCheckpointID:   stops[i+1].ID,
			Order:             i + 1,
			Distance:          10,
			TerrainRiskScore:  i % (models.MaxTerrainRisk + 1),
		})
		route.TotalDistance += 10
	}
	require.NoError(t, db.Create(&route).Error)
	return route
}
