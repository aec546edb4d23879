// Package seed loads the demo dataset used by the dashboard and front-end.
// Running it twice leaves the database unchanged.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"convoy_tracker/internal/models"
	"convoy_tracker/internal/repository"
)

// uniqueViolation is the Postgres SQLSTATE for a duplicate key.
const uniqueViolation = "23505"

type Seeder struct {
	navigation *repository.NavigationRepository
	fleet      *repository.FleetRepository
}

func New(db *gorm.DB) *Seeder {
	return &Seeder{
		navigation: repository.NewNavigationRepository(db),
		fleet:      repository.NewFleetRepository(db),
	}
}

var checkpoints = []models.Checkpoint{
	{Name: "Base Alpha", Latitude: 34.5281, Longitude: 69.1723},
	{Name: "Outpost Sierra", Latitude: 34.6012, Longitude: 69.2544},
	{Name: "Choke Point Valley", Latitude: 34.6530, Longitude: 69.3318, IsChokePoint: true},
	{Name: "FOB Delta", Latitude: 34.7421, Longitude: 69.5102},
}

type segmentSpec struct {
	from, to string
	distance float64
	risk     int
}

var demoRoute = struct {
	name     string
	segments []segmentSpec
	duration int
}{
	name: "Alpha to Delta",
	segments: []segmentSpec{
		{"Base Alpha", "Outpost Sierra", 12, 1},
		{"Outpost Sierra", "Choke Point Valley", 8, 4},
		{"Choke Point Valley", "FOB Delta", 25, 2},
	},
	duration: 95,
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

var vehicles = []models.Vehicle{
	{Name: "Hauler-01", Status: models.VehicleOperational, OperatingHours: 1240.5, LastMaintenanceDate: date(2025, time.March, 2)},
	{Name: "Hauler-02", Status: models.VehicleMaintenanceDue, OperatingHours: 2980},
	{Name: "Scout-07", Status: models.VehicleOperational, OperatingHours: 410.25, LastMaintenanceDate: date(2025, time.June, 18)},
	{Name: "Tanker-03", Status: models.VehicleOutOfService, OperatingHours: 5120},
}

var convoys = []struct {
	convoy   models.Convoy
	vehicles []string
}{
	{models.Convoy{Name: "Convoy Bravo", Status: models.ConvoyEnRoute, CurrentLatitude: 34.6100, CurrentLongitude: 69.2700}, []string{"Hauler-01", "Scout-07"}},
	{models.Convoy{Name: "Convoy Echo", Status: models.ConvoyIdle, CurrentLatitude: 34.5281, CurrentLongitude: 69.1723}, []string{"Hauler-02"}},
}

// Run inserts whatever part of the demo dataset is missing.
func (s *Seeder) Run(ctx context.Context) error {
	byName := make(map[string]models.Checkpoint, len(checkpoints))
	for _, cp := range checkpoints {
		stored, err := s.ensureCheckpoint(ctx, cp)
		if err != nil {
			return err
		}
		byName[stored.Name] = *stored
	}

	if err := s.ensureRoute(ctx, byName); err != nil {
		return err
	}

	fleet := make(map[string]models.Vehicle, len(vehicles))
	for _, v := range vehicles {
		stored, err := s.ensureVehicle(ctx, v)
		if err != nil {
			return err
		}
		fleet[stored.Name] = *stored
	}

	for _, c := range convoys {
		convoy := c.convoy
		for _, name := range c.vehicles {
			convoy.Vehicles = append(convoy.Vehicles, fleet[name])
		}
		if err := s.ensureConvoy(ctx, convoy); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) ensureCheckpoint(ctx context.Context, cp models.Checkpoint) (*models.Checkpoint, error) {
	existing, err := s.navigation.FindCheckpointByName(ctx, cp.Name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if err := s.navigation.CreateCheckpoint(ctx, &cp); err != nil {
		return nil, err
	}
	logrus.WithField("checkpoint", cp.Name).Info("seeded checkpoint")
	return &cp, nil
}

func (s *Seeder) ensureRoute(ctx context.Context, byName map[string]models.Checkpoint) error {
	_, err := s.navigation.FindRouteByName(ctx, demoRoute.name)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	first := demoRoute.segments[0]
	last := demoRoute.segments[len(demoRoute.segments)-1]
	route := models.Route{
		Name:                  demoRoute.name,
		StartCheckpointID:     byName[first.from].ID,
		EndCheckpointID:       byName[last.to].ID,
		EstimatedDurationMins: demoRoute.duration,
	}
	for i, seg := range demoRoute.segments {
		route.TotalDistance += seg.distance
		route.Segments = append(route.Segments, models.RouteSegment{
			StartCheckpointID: byName[seg.from].ID,
			EndCheckpointID:   byName[seg.to].ID,
			Order:             i + 1,
			Distance:          seg.distance,
			TerrainRiskScore:  seg.risk,
		})
	}
	if err := s.navigation.CreateRoute(ctx, &route); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"route": route.Name, "segments": len(route.Segments)}).Info("seeded route")
	return nil
}

func (s *Seeder) ensureVehicle(ctx context.Context, v models.Vehicle) (*models.Vehicle, error) {
	existing, err := s.fleet.FindVehicleByName(ctx, v.Name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if err := s.fleet.CreateVehicle(ctx, &v); err != nil {
		if isUniqueViolation(err) {
			// Another seeder got there first.
			return s.fleet.FindVehicleByName(ctx, v.Name)
		}
		return nil, err
	}
	logrus.WithField("vehicle", v.Name).Info("seeded vehicle")
	return &v, nil
}

func (s *Seeder) ensureConvoy(ctx context.Context, c models.Convoy) error {
	_, err := s.fleet.FindConvoyByName(ctx, c.Name)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if err := s.fleet.CreateConvoy(ctx, &c); err != nil {
		if isUniqueViolation(err) {
			return nil
		}
		return fmt.Errorf("convoy %q: %w", c.Name, err)
	}
	logrus.WithFields(logrus.Fields{"convoy": c.Name, "vehicles": len(c.Vehicles)}).Info("seeded convoy")
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
