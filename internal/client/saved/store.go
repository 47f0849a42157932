// Package saved implements the per-user saved-items list: create, list
// newest-first, delete by id. Lists are scoped by owner email and never
// cross owners.
package saved

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dara283/clio-client/internal/client/models"
	"github.com/dara283/clio-client/internal/client/repositories/kv"
	"github.com/dara283/clio-client/internal/common"
)

// keyPrefix is kept name-stable for backward compatibility of persisted data.
const keyPrefix = "saved_searches_"

// Test seams.
var (
	newID = uuid.NewString
	now   = time.Now
)

// Store persists each owner's list as one JSON array under its own key.
type Store struct {
	repo kv.Repository
}

func NewStore(repo kv.Repository) *Store {
	return &Store{repo: repo}
}

func ownerKey(owner string) string {
	return keyPrefix + models.NormalizeEmail(owner)
}

// List returns the owner's saved items, most recent first. An owner with
// nothing saved gets an empty slice.
func (s *Store) List(ctx context.Context, owner string) ([]models.SavedItem, error) {
	raw, err := s.repo.Get(ctx, ownerKey(owner))
	if err != nil {
		return nil, fmt.Errorf("%w: load saved items: %v", common.ErrInfra, err)
	}
	if raw == nil {
		return []models.SavedItem{}, nil
	}

	var items []models.SavedItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: decode saved items: %v", common.ErrInfra, err)
	}
	return items, nil
}

// Save stores a new item at the head of the owner's list and returns its
// generated id. Ids are random, not time-based, so rapid successive saves
// never collide.
func (s *Store) Save(ctx context.Context, owner string, fields map[string]any) (string, error) {
	items, err := s.List(ctx, owner)
	if err != nil {
		return "", err
	}

	item := models.SavedItem{
		ID:        newID(),
		CreatedAt: now().UTC(),
		Fields:    fields,
	}
	items = append([]models.SavedItem{item}, items...)

	if err := s.persist(ctx, owner, items); err != nil {
		return "", err
	}
	return item.ID, nil
}

// Delete removes the item with the given id from the owner's list.
// Deleting an absent id is a no-op.
func (s *Store) Delete(ctx context.Context, owner string, id string) error {
	items, err := s.List(ctx, owner)
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(items) {
		return nil
	}
	return s.persist(ctx, owner, kept)
}

func (s *Store) persist(ctx context.Context, owner string, items []models.SavedItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: encode saved items: %v", common.ErrInfra, err)
	}
	if err := s.repo.Set(ctx, ownerKey(owner), raw); err != nil {
		return fmt.Errorf("%w: save items: %v", common.ErrInfra, err)
	}
	return nil
}
