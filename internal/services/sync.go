package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"convoy_tracker/internal/models"
)

// ChangeStore returns rows modified strictly after a given instant.
type ChangeStore interface {
	CheckpointsUpdatedAfter(ctx context.Context, since time.Time) ([]models.Checkpoint, error)
	RoutesUpdatedAfter(ctx context.Context, since time.Time) ([]models.Route, error)
}

type SyncService struct {
	store ChangeStore
	loc   *time.Location
	now   func() time.Time
}

// NewSyncService builds the delta-sync service. loc is the zone applied to
// timestamps that carry no offset; now is the server clock.
func NewSyncService(store ChangeStore, loc *time.Location, now func() time.Time) *SyncService {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &SyncService{store: store, loc: loc, now: now}
}

type SyncResult struct {
	Checkpoints []models.Checkpoint
	Routes      []models.Route
	// ServerTime is the watermark the client sends back on its next call.
	ServerTime time.Time
}

// Delta returns everything changed after the client's last watermark.
//
// The comparison is strictly greater-than at the store's microsecond
// precision, so a write stamped in the same microsecond as ServerTime that
// commits after the reads is never returned to a client that feeds
// ServerTime back.
func (s *SyncService) Delta(ctx context.Context, lastSync string) (*SyncResult, error) {
	since, err := ParseSyncTimestamp(lastSync, s.loc)
	if err != nil {
		return nil, err
	}

	// Taken before the reads so a write landing during them is picked up
	// by the next call instead of being skipped.
	serverTime := s.now().UTC()

	checkpoints, err := s.store.CheckpointsUpdatedAfter(ctx, since)
	if err != nil {
		return nil, err
	}
	routes, err := s.store.RoutesUpdatedAfter(ctx, since)
	if err != nil {
		return nil, err
	}
	return &SyncResult{Checkpoints: checkpoints, Routes: routes, ServerTime: serverTime}, nil
}

var (
	zonedLayouts = []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05.999999999Z0700",
		"2006-01-02T15:04:05.999999999Z07",
		"2006-01-02 15:04:05.999999999Z07:00",
		"2006-01-02T15:04Z07:00",
		// ISO-8601 basic format.
		"20060102T150405.999999999Z0700",
		"20060102T150405.999999999Z07",
	}
	naiveLayouts = []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02 15:04:05.999999999",
		"2006-01-02T15:04",
		"2006-01-02 15:04",
		"2006-01-02",
		"20060102T150405.999999999",
	}
)

// ParseSyncTimestamp parses an ISO-8601 timestamp. Values without an offset
// are read in loc.
func ParseSyncTimestamp(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidTimestamp)
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q is not ISO-8601", ErrInvalidTimestamp, raw)
}
