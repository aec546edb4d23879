package controllers

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"convoy_tracker/internal/geo"
	"convoy_tracker/internal/models"
)

// APIVersion names the field lists below. Bump it when a response type
// gains or loses a field.
const APIVersion = "v1"

type CheckpointResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	IsChokePoint bool      `json:"is_choke_point"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type RouteSegmentResponse struct {
	ID               uint               `json:"id"`
	Route            uuid.UUID          `json:"route"`
	StartCheckpoint  CheckpointResponse `json:"start_checkpoint"`
	EndCheckpoint    CheckpointResponse `json:"end_checkpoint"`
	Order            int                `json:"order"`
	Distance         float64            `json:"distance"`
	TerrainRiskScore int                `json:"terrain_risk_score"`
}

type RouteResponse struct {
	ID                    uuid.UUID              `json:"id"`
	Name                  string                 `json:"name"`
	StartCheckpoint       CheckpointResponse     `json:"start_checkpoint"`
	EndCheckpoint         CheckpointResponse     `json:"end_checkpoint"`
	TotalDistance         float64                `json:"total_distance"`
	EstimatedDurationMins int                    `json:"estimated_duration_mins"`
	CreatedAt             time.Time              `json:"created_at"`
	UpdatedAt             time.Time              `json:"updated_at"`
	Segments              []RouteSegmentResponse `json:"segments"`
	Geometry              json.RawMessage        `json:"geometry"` // GeoJSON through the segment chain, null without segments
}

type VehicleResponse struct {
	ID                  uuid.UUID            `json:"id"`
	Name                string               `json:"name"`
	Status              models.VehicleStatus `json:"status"`
	OperatingHours      float64              `json:"operating_hours"`
	LastMaintenanceDate *string              `json:"last_maintenance_date"` // YYYY-MM-DD
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`
}

type ConvoyResponse struct {
	ID               uuid.UUID           `json:"id"`
	Name             string              `json:"name"`
	Status           models.ConvoyStatus `json:"status"`
	CurrentLatitude  float64             `json:"current_latitude"`
	CurrentLongitude float64             `json:"current_longitude"`
	UpdatedAt        time.Time           `json:"updated_at"`
	Vehicles         []VehicleResponse   `json:"vehicles"`
}

func toCheckpointResponse(cp models.Checkpoint) CheckpointResponse {
	return CheckpointResponse{
		ID:           cp.ID,
		Name:         cp.Name,
		Latitude:     cp.Latitude,
		Longitude:    cp.Longitude,
		IsChokePoint: cp.IsChokePoint,
		UpdatedAt:    cp.UpdatedAt,
	}
}

func toCheckpointResponses(cps []models.Checkpoint) []CheckpointResponse {
	out := make([]CheckpointResponse, 0, len(cps))
	for _, cp := range cps {
		out = append(out, toCheckpointResponse(cp))
	}
	return out
}

// toRouteResponse converts a models.Route, with its associations preloaded,
// to a RouteResponse
func toRouteResponse(route models.Route) RouteResponse {
	segments := make([]RouteSegmentResponse, 0, len(route.Segments))
	for _, s := range route.Segments {
		segments = append(segments, RouteSegmentResponse{
			ID:               s.ID,
			Route:            s.RouteID,
			StartCheckpoint:  toCheckpointResponse(s.StartCheckpoint),
			EndCheckpoint:    toCheckpointResponse(s.EndCheckpoint),
			Order:            s.Order,
			Distance:         s.Distance,
			TerrainRiskScore: s.TerrainRiskScore,
		})
	}
	return RouteResponse{
		ID:                    route.ID,
		Name:                  route.Name,
		StartCheckpoint:       toCheckpointResponse(route.StartCheckpoint),
		EndCheckpoint:         toCheckpointResponse(route.EndCheckpoint),
		TotalDistance:         route.TotalDistance,
		EstimatedDurationMins: route.EstimatedDurationMins,
		CreatedAt:             route.CreatedAt,
		UpdatedAt:             route.UpdatedAt,
		Segments:              segments,
		Geometry:              routeGeometry(route),
	}
}

func toRouteResponses(routes []models.Route) []RouteResponse {
	out := make([]RouteResponse, 0, len(routes))
	for _, r := range routes {
		out = append(out, toRouteResponse(r))
	}
	return out
}

// routeGeometry walks the segment chain: the first segment's start and
// then every segment's end.
func routeGeometry(route models.Route) json.RawMessage {
	if len(route.Segments) == 0 {
		return nil
	}
	first := route.Segments[0].StartCheckpoint
	points := []geo.Point{{Lat: first.Latitude, Lng: first.Longitude}}
	for _, s := range route.Segments {
		points = append(points, geo.Point{Lat: s.EndCheckpoint.Latitude, Lng: s.EndCheckpoint.Longitude})
	}
	raw, err := geo.LineString(points)
	if err != nil {
		logrus.WithError(err).WithField("route_id", route.ID).Warn("route geometry could not be encoded")
		return nil
	}
	return raw
}

func toVehicleResponse(v models.Vehicle) VehicleResponse {
	var maintained *string
	if v.LastMaintenanceDate != nil {
		d := v.LastMaintenanceDate.Format(time.DateOnly)
		maintained = &d
	}
	return VehicleResponse{
		ID:                  v.ID,
		Name:                v.Name,
		Status:              v.Status,
		OperatingHours:      v.OperatingHours,
		LastMaintenanceDate: maintained,
		CreatedAt:           v.CreatedAt,
		UpdatedAt:           v.UpdatedAt,
	}
}

func toVehicleResponses(vs []models.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, toVehicleResponse(v))
	}
	return out
}

func toConvoyResponses(convoys []models.Convoy) []ConvoyResponse {
	out := make([]ConvoyResponse, 0, len(convoys))
	for _, c := range convoys {
		out = append(out, ConvoyResponse{
			ID:               c.ID,
			Name:             c.Name,
			Status:           c.Status,
			CurrentLatitude:  c.CurrentLatitude,
			CurrentLongitude: c.CurrentLongitude,
			UpdatedAt:        c.UpdatedAt,
			Vehicles:         toVehicleResponses(c.Vehicles),
		})
	}
	return out
}
