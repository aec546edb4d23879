package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Checkpoint is a named point on the map. Routes and their segments start
// and end at checkpoints.
type Checkpoint struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Latitude     float64   `gorm:"not null" json:"latitude"`
	Longitude    float64   `gorm:"not null" json:"longitude"`
	IsChokePoint bool      `gorm:"not null;default:false" json:"is_choke_point"` // known traffic bottleneck
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `gorm:"index" json:"updated_at"`
}

func (Checkpoint) TableName() string {
	return "checkpoints"
}

func (c *Checkpoint) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (c *Checkpoint) BeforeSave(tx *gorm.DB) error {
	if !isFinite(c.Latitude) || !isFinite(c.Longitude) {
		return fmt.Errorf("%w: checkpoint %q has non-finite coordinates", ErrInvalidModel, c.Name)
	}
	return nil
}
