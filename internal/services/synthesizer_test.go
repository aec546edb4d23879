package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"convoy_tracker/internal/models"
)

func TestMockSynthesizer(t *testing.T) {
	a := models.Checkpoint{Name: "A", Latitude: 0, Longitude: 0}
	b := models.Checkpoint{Name: "B", Latitude: 2, Longitude: 2}

	route, err := MockSynthesizer{}.Synthesize(context.Background(), a, b)
	require.NoError(t, err)

	primary := route.PrimaryRoute
	require.Len(t, primary.Segments, 2)
	assert.Empty(t, route.AlternativeRoutes)
	assert.NotNil(t, route.AlternativeRoutes, "serializes as [] rather than null")

	first, second := primary.Segments[0], primary.Segments[1]
	assert.Equal(t, 1, first.TariScore)
	assert.Equal(t, 3, second.TariScore)
	assert.Equal(t, "A", first.From)
	assert.Equal(t, "B", second.To)
	assert.Equal(t, first.To, second.From)

	mid := first.Path[1]
	assert.InDelta(t, 1.005, mid[0], 1e-9)
	assert.InDelta(t, 1.005, mid[1], 1e-9)
	assert.Equal(t, mid, second.Path[0])

	assert.Equal(t, [2]float64{0, 0}, first.Path[0])
	assert.Equal(t, [2]float64{2, 2}, second.Path[1])

	assert.Equal(t, 150.0, primary.TotalDistanceKm)
	assert.Equal(t, 180, primary.EstimatedDurationMins)
	assert.Contains(t, string(primary.Geometry), `"LineString"`)
}

func TestMockSynthesizerConstantsIgnoreGeometry(t *testing.T) {
	pairs := [][2]models.Checkpoint{
		{{Name: "near", Latitude: 10, Longitude: 10}, {Name: "nearer", Latitude: 10.001, Longitude: 10.001}},
		{{Name: "far", Latitude: -45, Longitude: -170}, {Name: "farther", Latitude: 60, Longitude: 170}},
	}
	for _, p := range pairs {
		route, err := MockSynthesizer{}.Synthesize(context.Background(), p[0], p[1])
		require.NoError(t, err)
		assert.Equal(t, float64(MockTotalDistanceKm), route.PrimaryRoute.TotalDistanceKm)
		assert.Equal(t, MockDurationMins, route.PrimaryRoute.EstimatedDurationMins)

		segs := route.PrimaryRoute.Segments
		assert.Equal(t, [2]float64{p[0].Latitude, p[0].Longitude}, segs[0].Path[0])
		assert.Equal(t, [2]float64{p[1].Latitude, p[1].Longitude}, segs[1].Path[1])
	}
}
