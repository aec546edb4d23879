// internal/models/vehicle.go
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VehicleStatus string

const (
	VehicleOperational    VehicleStatus = "OPERATIONAL"
	VehicleMaintenanceDue VehicleStatus = "MAINTENANCE_DUE"
	VehicleOutOfService   VehicleStatus = "OUT_OF_SERVICE"
)

func (s VehicleStatus) Valid() bool {
	switch s {
	case VehicleOperational, VehicleMaintenanceDue, VehicleOutOfService:
		return true
	}
	return false
}

// Vehicle is a fleet unit. It can belong to any number of convoys.
type Vehicle struct {
	ID                  uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Name                string        `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Status              VehicleStatus `gorm:"size:20;not null" json:"status"`
	OperatingHours      float64       `gorm:"not null;default:0" json:"operating_hours"`
	LastMaintenanceDate *time.Time    `gorm:"type:date" json:"last_maintenance_date"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

func (v *Vehicle) BeforeSave(tx *gorm.DB) error {
	if v.Status == "" {
		v.Status = VehicleOperational
	}
	if !v.Status.Valid() {
		return fmt.Errorf("%w: vehicle %q has unknown status %q", ErrInvalidModel, v.Name, v.Status)
	}
	if !isFinite(v.OperatingHours) || v.OperatingHours < 0 {
		return fmt.Errorf("%w: vehicle %q has invalid operating hours %v", ErrInvalidModel, v.Name, v.OperatingHours)
	}
	return nil
}
