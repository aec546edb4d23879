package services

import (
	"context"
	"encoding/json"

	"convoy_tracker/internal/geo"
	"convoy_tracker/internal/models"
)

// RouteSynthesizer plans a route between two resolved checkpoints. The
// result is never persisted.
type RouteSynthesizer interface {
	Synthesize(ctx context.Context, start, end models.Checkpoint) (*SmartRoute, error)
}

type SmartRoute struct {
	PrimaryRoute      PlannedRoute   `json:"primary_route"`
	AlternativeRoutes []PlannedRoute `json:"alternative_routes"`
}

type PlannedRoute struct {
	Segments              []PlannedSegment `json:"segments"`
	TotalDistanceKm       float64          `json:"total_distance_km"`
	EstimatedDurationMins int              `json:"estimated_duration_mins"`
	Geometry              json.RawMessage  `json:"geometry,omitempty"` // GeoJSON LineString
}

type PlannedSegment struct {
	Order     int          `json:"order"`
	From      string       `json:"from"`
	To        string       `json:"to"`
	TariScore int          `json:"tari_score"`
	Path      [][2]float64 `json:"path"` // [lat, lng] pairs
}

// Values returned by MockSynthesizer. Distance and duration are fixed and
// do not follow from the generated path.
const (
	MockMidpointOffset  = 0.005
	MockMidpointName    = "Midpoint A"
	MockFirstLegRisk    = 1
	MockSecondLegRisk   = 3
	MockTotalDistanceKm = 150
	MockDurationMins    = 180
)

// MockSynthesizer bows a two-leg path through a shifted midpoint and
// assigns constant risk scores. It does no terrain analysis.
type MockSynthesizer struct{}

func (MockSynthesizer) Synthesize(_ context.Context, start, end models.Checkpoint) (*SmartRoute, error) {
	a := geo.Point{Lat: start.Latitude, Lng: start.Longitude}
	b := geo.Point{Lat: end.Latitude, Lng: end.Longitude}
	mid := geo.Midpoint(a, b, MockMidpointOffset)

	geometry, err := geo.LineString([]geo.Point{a, mid, b})
	if err != nil {
		return nil, err
	}

	return &SmartRoute{
		PrimaryRoute: PlannedRoute{
			Segments: []PlannedSegment{
				{
					Order:     1,
					From:      start.Name,
					To:        MockMidpointName,
					TariScore: MockFirstLegRisk,
					Path:      [][2]float64{a.LatLng(), mid.LatLng()},
				},
				{
					Order:     2,
					From:      MockMidpointName,
					To:        end.Name,
					TariScore: MockSecondLegRisk,
					Path:      [][2]float64{mid.LatLng(), b.LatLng()},
				},
			},
			TotalDistanceKm:       MockTotalDistanceKm,
			EstimatedDurationMins: MockDurationMins,
			Geometry:              geometry,
		},
		AlternativeRoutes: []PlannedRoute{},
	}, nil
}
