package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"convoy_tracker/internal/models"
	"convoy_tracker/internal/repository"
)

// CheckpointStore is the read side of the navigation store.
type CheckpointStore interface {
	GetCheckpoint(ctx context.Context, id uuid.UUID) (*models.Checkpoint, error)
	ListCheckpoints(ctx context.Context) ([]models.Checkpoint, error)
	ListRoutes(ctx context.Context) ([]models.Route, error)
}

type NavigationService struct {
	store       CheckpointStore
	synthesizer RouteSynthesizer
}

func NewNavigationService(store CheckpointStore, synthesizer RouteSynthesizer) *NavigationService {
	return &NavigationService{store: store, synthesizer: synthesizer}
}

// SmartRoute resolves both checkpoint ids and asks the synthesizer for a
// route between them. An id that is malformed or unknown yields
// ErrCheckpointNotFound.
func (s *NavigationService) SmartRoute(ctx context.Context, startID, endID string) (*SmartRoute, error) {
	start, err := s.resolveCheckpoint(ctx, startID)
	if err != nil {
		return nil, err
	}
	end, err := s.resolveCheckpoint(ctx, endID)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"start_checkpoint": start.ID,
		"end_checkpoint":   end.ID,
	}).Debug("synthesizing route")

	route, err := s.synthesizer.Synthesize(ctx, *start, *end)
	if err != nil {
		return nil, fmt.Errorf("synthesize route: %w", err)
	}
	return route, nil
}

func (s *NavigationService) resolveCheckpoint(ctx context.Context, raw string) (*models.Checkpoint, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrCheckpointNotFound, raw)
	}
	cp, err := s.store.GetCheckpoint(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCheckpointNotFound, id)
		}
		return nil, err
	}
	return cp, nil
}

// OfflineData is the full navigation dataset for clients working offline.
type OfflineData struct {
	Checkpoints []models.Checkpoint
	Routes      []models.Route
}

func (s *NavigationService) OfflineData(ctx context.Context) (*OfflineData, error) {
	checkpoints, err := s.store.ListCheckpoints(ctx)
	if err != nil {
		return nil, err
	}
	routes, err := s.store.ListRoutes(ctx)
	if err != nil {
		return nil, err
	}
	return &OfflineData{Checkpoints: checkpoints, Routes: routes}, nil
}
