// Package geo holds the small amount of geometry the service needs: points
// in latitude/longitude and GeoJSON encoding through go-geom.
package geo

import (
	"encoding/json"
	"errors"

	"github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"
)

type Point struct {
	Lat float64
	Lng float64
}

// LatLng returns the point as a [lat, lng] pair, the order map clients expect.
func (p Point) LatLng() [2]float64 {
	return [2]float64{p.Lat, p.Lng}
}

// Midpoint is the arithmetic mean of a and b shifted by offset on both axes.
func Midpoint(a, b Point, offset float64) Point {
	return Point{
		Lat: (a.Lat+b.Lat)/2 + offset,
		Lng: (a.Lng+b.Lng)/2 + offset,
	}
}

// LineString encodes points as a GeoJSON LineString. GeoJSON orders
// coordinates [lng, lat].
func LineString(points []Point) (json.RawMessage, error) {
	if len(points) < 2 {
		return nil, errors.New("geo: a line string needs at least two points")
	}
	coords := make([]geom.Coord, 0, len(points))
	for _, p := range points {
		coords = append(coords, geom.Coord{p.Lng, p.Lat})
	}
	ls, err := geom.NewLineString(geom.XY).SetCoords(coords)
	if err != nil {
		return nil, err
	}
	b, err := gjson.Marshal(ls)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(b), nil
}
