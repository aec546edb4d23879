package models

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Terrain risk (TARI) bounds for a segment.
const (
	MinTerrainRisk = 0
	MaxTerrainRisk = 5
)

// RouteSegment is one leg of a Route between two checkpoints.
// Order is the position in the traversal sequence and is unique per route.
type RouteSegment struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	RouteID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_route_segment_order" json:"route"`

	StartCheckpointID uuid.UUID  `gorm:"type:uuid;not null" json:"start_checkpoint_id"`
	StartCheckpoint   Checkpoint `gorm:"foreignKey:StartCheckpointID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"start_checkpoint"`
	EndCheckpointID   uuid.UUID  `gorm:"type:uuid;not null" json:"end_checkpoint_id"`
	EndCheckpoint     Checkpoint `gorm:"foreignKey:EndCheckpointID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"end_checkpoint"`

	Order            int     `gorm:"column:segment_order;not null;uniqueIndex:idx_route_segment_order" json:"order"`
	Distance         float64 `gorm:"not null" json:"distance"` // kilometers
	TerrainRiskScore int     `gorm:"not null;default:0" json:"terrain_risk_score"`
}

func (RouteSegment) TableName() string {
	return "route_segments"
}

func (s *RouteSegment) BeforeSave(tx *gorm.DB) error {
	if s.Order < 0 {
		return fmt.Errorf("%w: segment order %d is negative", ErrInvalidModel, s.Order)
	}
	if !isFinite(s.Distance) || s.Distance < 0 {
		return fmt.Errorf("%w: segment %d has invalid distance %v", ErrInvalidModel, s.Order, s.Distance)
	}
	if s.TerrainRiskScore < MinTerrainRisk || s.TerrainRiskScore > MaxTerrainRisk {
		return fmt.Errorf("%w: segment %d risk score %d outside [%d,%d]",
			ErrInvalidModel, s.Order, s.TerrainRiskScore, MinTerrainRisk, MaxTerrainRisk)
	}
	return nil
}
