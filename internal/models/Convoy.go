package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConvoyStatus string

const (
	ConvoyEnRoute ConvoyStatus = "EN_ROUTE"
	ConvoyIdle    ConvoyStatus = "IDLE"
	ConvoyHalted  ConvoyStatus = "HALTED"
)

func (s ConvoyStatus) Valid() bool {
	switch s {
	case ConvoyEnRoute, ConvoyIdle, ConvoyHalted:
		return true
	}
	return false
}

// Convoy groups vehicles travelling together and carries the last known
// position of the group.
type Convoy struct {
	ID               uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Name             string       `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Status           ConvoyStatus `gorm:"size:20;not null" json:"status"`
	CurrentLatitude  float64      `gorm:"not null" json:"current_latitude"`
	CurrentLongitude float64      `gorm:"not null" json:"current_longitude"`
	UpdatedAt        time.Time    `json:"updated_at"`

	Vehicles []Vehicle `gorm:"many2many:convoy_vehicles;" json:"vehicles"`
}

func (Convoy) TableName() string {
	return "convoys"
}

func (c *Convoy) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (c *Convoy) BeforeSave(tx *gorm.DB) error {
	if c.Status == "" {
		c.Status = ConvoyIdle
	}
	if !c.Status.Valid() {
		return fmt.Errorf("%w: convoy %q has unknown status %q", ErrInvalidModel, c.Name, c.Status)
	}
	if !isFinite(c.CurrentLatitude) || !isFinite(c.CurrentLongitude) {
		return fmt.Errorf("%w: convoy %q has non-finite position", ErrInvalidModel, c.Name)
	}
	return nil
}
