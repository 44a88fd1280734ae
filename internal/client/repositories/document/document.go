// Package document stores a typed JSON array under a single key of a
// kv.Repository. Every write replaces the whole array.
package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/carmarket/internal/client/repositories/kv"
	"github.com/dmitrijs2005/carmarket/internal/common"
)

// ErrCorrupt is returned when the stored value is not a JSON array of T.
var ErrCorrupt = errors.New("corrupt document")

type Document[T any] struct {
	store kv.Repository
	key   string
}

func New[T any](store kv.Repository, key string) *Document[T] {
	return &Document[T]{store: store, key: key}
}

func (d *Document[T]) Key() string { return d.key }

// Read returns the stored items, or nil when the key was never written.
// Store failures wrap common.ErrStorage.
func (d *Document[T]) Read(ctx context.Context) ([]T, error) {
	raw, err := d.store.Get(ctx, d.key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrStorage, err)
	}
	if raw == nil {
		return nil, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorrupt, d.key, err)
	}
	return items, nil
}

// Write encodes items and overwrites the stored value. A nil slice is stored
// as an empty array.
func (d *Document[T]) Write(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", d.key, err)
	}
	if err := d.store.Set(ctx, d.key, raw); err != nil {
		return fmt.Errorf("%w: %w", common.ErrStorage, err)
	}
	return nil
}
