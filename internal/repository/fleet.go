package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"convoy_tracker/internal/models"
)

type FleetRepository struct {
	db *gorm.DB
}

func NewFleetRepository(db *gorm.DB) *FleetRepository {
	return &FleetRepository{db: db}
}

func (r *FleetRepository) CreateVehicle(ctx context.Context, v *models.Vehicle) error {
	if err := r.db.WithContext(ctx).Create(v).Error; err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}

// CreateConvoy inserts the convoy and links the given vehicles, which must
// already exist.
func (r *FleetRepository) CreateConvoy(ctx context.Context, c *models.Convoy) error {
	err := r.db.WithContext(ctx).
		Omit("Vehicles.*").
		Create(c).Error
	if err != nil {
		return fmt.Errorf("failed to create convoy: %w", err)
	}
	return nil
}

func (r *FleetRepository) FindVehicleByName(ctx context.Context, name string) (*models.Vehicle, error) {
	var v models.Vehicle
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&v).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("vehicle %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find vehicle: %w", err)
	}
	return &v, nil
}

func (r *FleetRepository) FindConvoyByName(ctx context.Context, name string) (*models.Convoy, error) {
	var c models.Convoy
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("convoy %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find convoy: %w", err)
	}
	return &c, nil
}

// ListVehicles returns the whole fleet ordered by name.
func (r *FleetRepository) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&vehicles).Error; err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return vehicles, nil
}

// ListConvoys returns every convoy with its vehicles, both ordered by name.
func (r *FleetRepository) ListConvoys(ctx context.Context) ([]models.Convoy, error) {
	var convoys []models.Convoy
	err := r.db.WithContext(ctx).
		Preload("Vehicles").
		Order("name ASC").
		Find(&convoys).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list convoys: %w", err)
	}
	for i := range convoys {
		vs := convoys[i].Vehicles
		sort.Slice(vs, func(a, b int) bool { return vs[a].Name < vs[b].Name })
	}
	return convoys, nil
}

func (r *FleetRepository) CountVehicles(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Vehicle{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count vehicles: %w", err)
	}
	return n, nil
}

func (r *FleetRepository) CountConvoysByStatus(ctx context.Context, status models.ConvoyStatus) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Convoy{}).Where("status = ?", status).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count convoys: %w", err)
	}
	return n, nil
}
