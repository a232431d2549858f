// Package registry implements the reconciliation layer between the
// in-memory collections and the remote gateway. Every single-entity
// mutation first attempts the gateway and falls back to a deterministic
// local substitute on failure, so the registry stays usable when no
// backend is reachable. Bulk import is the one exception: it has no local
// fallback and surfaces gateway errors to the caller.
package registry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/universal-funeral/columbary/pkg/types"
)

// Origin tags where an entity value came from.
type Origin int

const (
	// OriginRemote marks a value returned by the gateway.
	OriginRemote Origin = iota
	// OriginLocal marks a value synthesized locally after a gateway failure.
	OriginLocal
)

// String returns "remote" or "local".
func (o Origin) String() string {
	if o == OriginLocal {
		return "local"
	}
	return "remote"
}

// Outcome is the tagged result of a single-entity operation. Callers treat
// both origins uniformly; the tag exists for logging and for the UI banner.
type Outcome[T any] struct {
	Entity T
	Origin Origin
}

// Spec parameterizes a Collection by entity shape: its table name, default
// refresh ordering, seed dataset, row conversions, and required-field
// predicate.
type Spec[T types.Entity] struct {
	Table      string
	OrderBy    string
	Descending bool
	Seed       []T
	FromRow    func(types.Row) T
	Fields     func(T) types.Row // user-editable columns submitted on create/update
	Validate   func(T) error
}

// Collection is the in-memory ordered collection of one entity kind,
// mutated only through its reconciled CRUD operations.
type Collection[T types.Entity] struct {
	spec Spec[T]
	gw   types.Gateway
	log  zerolog.Logger

	mu        sync.RWMutex
	items     []T
	connected bool
}

// NewCollection builds an empty collection over the given gateway.
func NewCollection[T types.Entity](gw types.Gateway, log zerolog.Logger, spec Spec[T]) *Collection[T] {
	return &Collection[T]{spec: spec, gw: gw, log: log.With().Str("table", spec.Table).Logger()}
}

// Items returns a snapshot copy of the collection in its current order.
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Connected reports whether a refresh has ever returned real backend data.
// The flag is one-way: it never reverts within a session, and no operation
// branches on it.
func (c *Collection[T]) Connected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

// Refresh replaces the collection from the gateway, ordered by the spec's
// default key. On a non-empty result the collection is marked connected.
// On an empty result or any gateway error the seed dataset is loaded
// instead, so the registry is demonstrable before a backend exists.
func (c *Collection[T]) Refresh(ctx context.Context) Origin {
	rows, err := c.gw.Select(ctx, c.spec.Table, types.SelectOptions{
		OrderBy:    c.spec.OrderBy,
		Descending: c.spec.Descending,
	})
	if err != nil || len(rows) == 0 {
		if err != nil {
			c.log.Warn().Err(err).Msg("refresh failed, loading seed dataset")
		}
		seed := make([]T, len(c.spec.Seed))
		copy(seed, c.spec.Seed)
		c.mu.Lock()
		c.items = seed
		c.mu.Unlock()
		return OriginLocal
	}

	items := make([]T, len(rows))
	for i, row := range rows {
		items[i] = c.spec.FromRow(row)
	}
	c.mu.Lock()
	c.items = items
	c.connected = true
	c.mu.Unlock()
	return OriginRemote
}

// Create validates the entity, attempts a gateway insert, and prepends the
// result to the collection. On gateway failure a synthetic entity with a
// locally generated id and timestamp is prepended instead; the only
// difference between the two outcomes is id provenance.
func (c *Collection[T]) Create(ctx context.Context, e T) (Outcome[T], error) {
	if err := c.spec.Validate(e); err != nil {
		return Outcome[T]{}, err
	}

	rows, err := c.gw.Insert(ctx, c.spec.Table, []types.Row{c.spec.Fields(e)})
	if err == nil && len(rows) > 0 {
		created := c.spec.FromRow(rows[0])
		c.prepend(created)
		return Outcome[T]{Entity: created, Origin: OriginRemote}, nil
	}
	if err != nil {
		c.log.Warn().Err(err).Msg("insert failed, keeping local entity")
	}

	row := c.spec.Fields(e)
	row[types.FieldID] = newLocalID()
	row[types.FieldCreatedAt] = nowTimestamp()
	local := c.spec.FromRow(row)
	c.prepend(local)
	return Outcome[T]{Entity: local, Origin: OriginLocal}, nil
}

// Update validates the entity and attempts a gateway update by id. On
// success the matching local entity is replaced with the gateway's value.
// On failure the submitted field values are merged into the existing local
// entity, preserving its id and created_at. Returns ErrNotFound when the
// id is not in the local collection.
func (c *Collection[T]) Update(ctx context.Context, id string, e T) (Outcome[T], error) {
	if id == "" {
		return Outcome[T]{}, types.ErrInvalidID
	}
	if err := c.spec.Validate(e); err != nil {
		return Outcome[T]{}, err
	}

	existing, ok := c.Get(id)
	if !ok {
		return Outcome[T]{}, types.ErrNotFound
	}

	row, err := c.gw.Update(ctx, c.spec.Table, id, c.spec.Fields(e))
	if err == nil {
		updated := c.spec.FromRow(row)
		c.replace(id, updated)
		return Outcome[T]{Entity: updated, Origin: OriginRemote}, nil
	}
	c.log.Warn().Err(err).Str("id", id).Msg("update failed, merging locally")

	// Field-by-field overwrite onto the existing entity; id and created_at
	// are never submitted and so survive the merge.
	merged := c.spec.Fields(existing)
	merged[types.FieldID] = existing.EntityID()
	merged[types.FieldCreatedAt] = existing.Field(types.FieldCreatedAt)
	for k, v := range c.spec.Fields(e) {
		merged[k] = v
	}
	local := c.spec.FromRow(merged)
	c.replace(id, local)
	return Outcome[T]{Entity: local, Origin: OriginLocal}, nil
}

// Delete attempts a gateway delete and removes the entity from the local
// collection regardless of the gateway's answer. A later refresh restores
// the entity if the remote delete in fact failed.
func (c *Collection[T]) Delete(ctx context.Context, id string) Origin {
	origin := OriginRemote
	if err := c.gw.Delete(ctx, c.spec.Table, id); err != nil {
		c.log.Warn().Err(err).Str("id", id).Msg("delete failed, removing locally anyway")
		origin = OriginLocal
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.items[:0]
	for _, it := range c.items {
		if it.EntityID() != id {
			out = append(out, it)
		}
	}
	c.items = out
	return origin
}

// BulkCreate inserts all entities in one gateway batch and prepends the
// returned entities to the collection. There is no local fallback: a
// gateway failure leaves the collection unchanged and is returned to the
// caller. Entities are assumed pre-validated.
func (c *Collection[T]) BulkCreate(ctx context.Context, entities []T) ([]T, error) {
	rows := make([]types.Row, len(entities))
	for i, e := range entities {
		rows[i] = c.spec.Fields(e)
	}
	inserted, err := c.gw.Insert(ctx, c.spec.Table, rows)
	if err != nil {
		return nil, fmt.Errorf("batch insert: %w", err)
	}

	created := make([]T, len(inserted))
	for i, row := range inserted {
		created[i] = c.spec.FromRow(row)
	}
	c.mu.Lock()
	c.items = append(append([]T{}, created...), c.items...)
	c.mu.Unlock()
	return created, nil
}

// prepend puts the entity at the head of the collection.
func (c *Collection[T]) prepend(e T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T{e}, c.items...)
}

// replace swaps the entity with the given id in place.
func (c *Collection[T]) replace(id string, e T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, it := range c.items {
		if it.EntityID() == id {
			c.items[i] = e
			return
		}
	}
}

// Get returns the entity with the given id from the local collection.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, it := range c.items {
		if it.EntityID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// newLocalID generates a process-unique pseudo-random id for entities
// created while the gateway is unreachable.
func newLocalID() string {
	return uuid.NewString()
}

// nowTimestamp returns the current time in the created_at wire format.
func nowTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
