package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/anujthakur2004/Fashion-Hub/internal/model"
)

const (
	pendingOrderField = "pending_order"
	lastOrderField    = "last_order"
)

// SnapshotStore holds the pending checkout snapshot and the "last order"
// record shown on the confirmation page, both scoped to one session.
type SnapshotStore struct {
	store Store
}

func NewSnapshotStore(store Store) *SnapshotStore {
	return &SnapshotStore{store: store}
}

func (s *SnapshotStore) SavePending(ctx context.Context, sessionID string, snap *model.OrderSnapshot) error {
	return s.save(ctx, sessionID, pendingOrderField, snap)
}

// LoadPending returns ErrNoValue when no checkout is in flight, which
// the orchestrator treats as a stale payment callback.
func (s *SnapshotStore) LoadPending(ctx context.Context, sessionID string) (*model.OrderSnapshot, error) {
	return s.load(ctx, sessionID, pendingOrderField)
}

func (s *SnapshotStore) DeletePending(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID, pendingOrderField)
}

func (s *SnapshotStore) SaveLast(ctx context.Context, sessionID string, snap *model.OrderSnapshot) error {
	return s.save(ctx, sessionID, lastOrderField, snap)
}

func (s *SnapshotStore) LoadLast(ctx context.Context, sessionID string) (*model.OrderSnapshot, error) {
	return s.load(ctx, sessionID, lastOrderField)
}

func (s *SnapshotStore) save(ctx context.Context, sessionID, field string, snap *model.OrderSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.store.Set(ctx, sessionID, field, data); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (s *SnapshotStore) load(ctx context.Context, sessionID, field string) (*model.OrderSnapshot, error) {
	data, err := s.store.Get(ctx, sessionID, field)
	if errors.Is(err, ErrNoValue) {
		return nil, ErrNoValue
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var snap model.OrderSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}
