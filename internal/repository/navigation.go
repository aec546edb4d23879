package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"convoy_tracker/internal/models"
)

// ErrNotFound is returned when a lookup by id matches no row.
var ErrNotFound = errors.New("record not found")

type NavigationRepository struct {
	db *gorm.DB
}

func NewNavigationRepository(db *gorm.DB) *NavigationRepository {
	return &NavigationRepository{db: db}
}

func (r *NavigationRepository) CreateCheckpoint(ctx context.Context, cp *models.Checkpoint) error {
	if err := r.db.WithContext(ctx).Create(cp).Error; err != nil {
		return fmt.Errorf("failed to create checkpoint: %w", err)
	}
	return nil
}

// CreateRoute inserts the route together with its segments.
func (r *NavigationRepository) CreateRoute(ctx context.Context, route *models.Route) error {
	if err := r.db.WithContext(ctx).Create(route).Error; err != nil {
		return fmt.Errorf("failed to create route: %w", err)
	}
	return nil
}

func (r *NavigationRepository) GetCheckpoint(ctx context.Context, id uuid.UUID) (*models.Checkpoint, error) {
	var cp models.Checkpoint
	if err := r.db.WithContext(ctx).First(&cp, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("checkpoint %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get checkpoint: %w", err)
	}
	return &cp, nil
}

func (r *NavigationRepository) FindCheckpointByName(ctx context.Context, name string) (*models.Checkpoint, error) {
	var cp models.Checkpoint
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&cp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("checkpoint %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find checkpoint: %w", err)
	}
	return &cp, nil
}

func (r *NavigationRepository) ListCheckpoints(ctx context.Context) ([]models.Checkpoint, error) {
	var checkpoints []models.Checkpoint
	if err := r.db.WithContext(ctx).Find(&checkpoints).Error; err != nil {
		return nil, fmt.Errorf("failed to list checkpoints: %w", err)
	}
	return checkpoints, nil
}

// ListRoutes returns every route with both checkpoints and its ordered
// segments resolved.
func (r *NavigationRepository) ListRoutes(ctx context.Context) ([]models.Route, error) {
	var routes []models.Route
	if err := withRouteDetails(r.db.WithContext(ctx)).Find(&routes).Error; err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}
	sortSegments(routes)
	return routes, nil
}

func (r *NavigationRepository) FindRouteByName(ctx context.Context, name string) (*models.Route, error) {
	var route models.Route
	if err := withRouteDetails(r.db.WithContext(ctx)).Where("name = ?", name).First(&route).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("route %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find route: %w", err)
	}
	sortSegments([]models.Route{route})
	return &route, nil
}

// CheckpointsUpdatedAfter returns checkpoints with updated_at strictly after since.
func (r *NavigationRepository) CheckpointsUpdatedAfter(ctx context.Context, since time.Time) ([]models.Checkpoint, error) {
	var checkpoints []models.Checkpoint
	if err := r.db.WithContext(ctx).Where("updated_at > ?", since.UTC()).Find(&checkpoints).Error; err != nil {
		return nil, fmt.Errorf("failed to list updated checkpoints: %w", err)
	}
	return checkpoints, nil
}

// RoutesUpdatedAfter returns routes with updated_at strictly after since.
func (r *NavigationRepository) RoutesUpdatedAfter(ctx context.Context, since time.Time) ([]models.Route, error) {
	var routes []models.Route
	if err := withRouteDetails(r.db.WithContext(ctx)).Where("updated_at > ?", since.UTC()).Find(&routes).Error; err != nil {
		return nil, fmt.Errorf("failed to list updated routes: %w", err)
	}
	sortSegments(routes)
	return routes, nil
}

func withRouteDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("StartCheckpoint").
		Preload("EndCheckpoint").
		Preload("Segments", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("segment_order ASC")
		}).
		Preload("Segments.StartCheckpoint").
		Preload("Segments.EndCheckpoint")
}

func sortSegments(routes []models.Route) {
	for i := range routes {
		segs := routes[i].Segments
		sort.SliceStable(segs, func(a, b int) bool { return segs[a].Order < segs[b].Order })
	}
}
