package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Route represents a planned convoy route between two checkpoints.
// A route owns an ordered list of segments; deleting the route deletes them.
type Route struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"size:255;not null" json:"name"`

	StartCheckpointID uuid.UUID  `gorm:"type:uuid;not null;index" json:"start_checkpoint_id"`
	StartCheckpoint   Checkpoint `gorm:"foreignKey:StartCheckpointID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"start_checkpoint"`
	EndCheckpointID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"end_checkpoint_id"`
	EndCheckpoint     Checkpoint `gorm:"foreignKey:EndCheckpointID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"end_checkpoint"`

	TotalDistance         float64 `gorm:"not null" json:"total_distance"`          // kilometers
	EstimatedDurationMins int     `gorm:"not null" json:"estimated_duration_mins"` // travel time without stops

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`

	Segments []RouteSegment `gorm:"foreignKey:RouteID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"segments,omitempty"`
}

func (Route) TableName() string {
	return "routes"
}

func (r *Route) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (r *Route) BeforeSave(tx *gorm.DB) error {
	if r.StartCheckpointID == r.EndCheckpointID {
		return fmt.Errorf("%w: route %q starts and ends at the same checkpoint", ErrInvalidModel, r.Name)
	}
	if !isFinite(r.TotalDistance) || r.TotalDistance < 0 {
		return fmt.Errorf("%w: route %q has invalid total distance %v", ErrInvalidModel, r.Name, r.TotalDistance)
	}
	if r.EstimatedDurationMins < 0 {
		return fmt.Errorf("%w: route %q has negative duration", ErrInvalidModel, r.Name)
	}
	return nil
}
